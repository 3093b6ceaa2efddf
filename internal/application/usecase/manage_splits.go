package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/logging"
)

// ManageSplitsUseCase owns a forest of split trees and keeps every tree in
// sync with the container that hosts it.
//
// Each tree lives in exactly one container and each container hosts at most
// one tree. Leaves carry content, internal nodes carry an orientation.
// Structural changes are applied to the tree first; container calls follow
// and their failures are reported without rolling the tree back.
//
// Not safe for concurrent use.
type ManageSplitsUseCase struct {
	lifecycle port.ContentLifecycle
	focus     port.FocusController

	nextID        entity.NodeID
	trees         []*entity.SplitTree // creation order
	treeOf        map[entity.NodeID]*entity.SplitTree
	contentOf     map[entity.NodeID]port.Content
	containerOf   map[*entity.SplitTree]port.Container
	orientationOf map[entity.NodeID]entity.Orientation
	activeLeaf    map[*entity.SplitTree]entity.NodeID
}

// NewManageSplitsUseCase creates an empty forest.
func NewManageSplitsUseCase(lifecycle port.ContentLifecycle, focus port.FocusController) *ManageSplitsUseCase {
	return &ManageSplitsUseCase{
		lifecycle:     lifecycle,
		focus:         focus,
		treeOf:        make(map[entity.NodeID]*entity.SplitTree),
		contentOf:     make(map[entity.NodeID]port.Content),
		containerOf:   make(map[*entity.SplitTree]port.Container),
		orientationOf: make(map[entity.NodeID]entity.Orientation),
		activeLeaf:    make(map[*entity.SplitTree]entity.NodeID),
	}
}

// CreateRoot starts a new single-node tree in container. content may be nil,
// in which case the root waits for AttachContent.
func (uc *ManageSplitsUseCase) CreateRoot(ctx context.Context, container port.Container, content port.Content) (entity.NodeID, error) {
	log := logging.FromContext(ctx)

	if container == nil {
		return entity.NoNode, fmt.Errorf("container is required")
	}
	if root, hosted := uc.RootForContainer(container); hosted {
		return entity.NoNode, fmt.Errorf("%w: container already hosts the tree rooted at %s", entity.ErrInvariantViolation, root)
	}

	root := uc.allocate()
	log.Debug().Str("root", root.String()).Bool("with_content", content != nil).Msg("creating split tree")

	if err := container.AttachSubtree(ctx, entity.NoNode, 0, root); err != nil {
		return entity.NoNode, fmt.Errorf("attach root slot %s: %w", root, err)
	}

	tree := entity.NewSplitTree(root)
	uc.trees = append(uc.trees, tree)
	uc.treeOf[root] = tree
	uc.containerOf[tree] = container
	container.SetSplitsVisible(ctx, false)

	if content != nil {
		if err := uc.AttachContent(ctx, root, content); err != nil {
			uc.forget(tree)
			delete(uc.treeOf, root)
			delete(uc.contentOf, root)
			return entity.NoNode, errors.Join(err, container.DetachSubtree(ctx, root))
		}
	}

	log.Info().Str("root", root.String()).Int("trees", len(uc.trees)).Msg("split tree created")
	return root, nil
}

// AttachContent shows content in a leaf that has none yet and focuses it.
func (uc *ManageSplitsUseCase) AttachContent(ctx context.Context, leaf entity.NodeID, content port.Content) error {
	log := logging.FromContext(ctx)

	if content == nil {
		return fmt.Errorf("content is required")
	}
	tree, err := uc.leafTree(leaf)
	if err != nil {
		return err
	}
	if _, attached := uc.contentOf[leaf]; attached {
		return fmt.Errorf("%w: leaf %s already hosts content", entity.ErrInvariantViolation, leaf)
	}

	container := uc.containerOf[tree]
	if err := container.AttachContent(ctx, leaf, content); err != nil {
		return fmt.Errorf("attach content to %s: %w", leaf, err)
	}
	uc.contentOf[leaf] = content

	log.Debug().Str("leaf", leaf.String()).Str("session", string(content.Session())).Msg("content attached")
	return uc.focusLeaf(ctx, tree, leaf)
}

// SplitInput contains parameters for splitting a leaf.
type SplitInput struct {
	Leaf        entity.NodeID
	Content     port.Content // hosted by the new second child
	Orientation entity.Orientation
}

// SplitOutput contains the two leaves created by a split.
type SplitOutput struct {
	First  entity.NodeID // keeps the content the split leaf had
	Second entity.NodeID // hosts the new content
}

// Split turns a leaf into an internal node with two leaf children laid out
// along the requested orientation. The existing content moves to the first
// child, the new content goes to the second and receives focus. Both slots
// start at half of the available size.
func (uc *ManageSplitsUseCase) Split(ctx context.Context, input SplitInput) (*SplitOutput, error) {
	log := logging.FromContext(ctx)
	log.Debug().
		Str("leaf", input.Leaf.String()).
		Str("orientation", input.Orientation.String()).
		Msg("splitting leaf")

	tree, err := uc.leafTree(input.Leaf)
	if err != nil {
		return nil, err
	}
	existing, attached := uc.contentOf[input.Leaf]
	if !attached {
		return nil, fmt.Errorf("%w: cannot split %s", entity.ErrNotAttached, input.Leaf)
	}
	if input.Content == nil {
		return nil, fmt.Errorf("%w: split of %s needs new content", entity.ErrNotAttached, input.Leaf)
	}
	if input.Orientation != entity.OrientationHorizontal && input.Orientation != entity.OrientationVertical {
		return nil, fmt.Errorf("split of %s needs an orientation, got %s", input.Leaf, input.Orientation)
	}

	container := uc.containerOf[tree]
	var errs []error
	if err := container.DetachContent(ctx, input.Leaf); err != nil {
		errs = append(errs, fmt.Errorf("detach content from %s: %w", input.Leaf, err))
	}
	delete(uc.contentOf, input.Leaf)

	first, second, err := uc.splitNode(ctx, tree, input.Leaf, input.Orientation)
	if first == entity.NoNode {
		// The tree refused the split; put the content back.
		uc.contentOf[input.Leaf] = existing
		return nil, errors.Join(append(errs, err, container.AttachContent(ctx, input.Leaf, existing))...)
	}
	if err != nil {
		errs = append(errs, err)
	}

	uc.contentOf[first] = existing
	uc.contentOf[second] = input.Content
	if err := container.AttachContent(ctx, first, existing); err != nil {
		errs = append(errs, fmt.Errorf("attach content to %s: %w", first, err))
	}
	if err := container.AttachContent(ctx, second, input.Content); err != nil {
		errs = append(errs, fmt.Errorf("attach content to %s: %w", second, err))
	}
	if err := uc.focusLeaf(ctx, tree, second); err != nil {
		errs = append(errs, err)
	}

	log.Info().
		Str("leaf", input.Leaf.String()).
		Str("first", first.String()).
		Str("second", second.String()).
		Int("nodes", tree.NumberOfNodes()).
		Msg("leaf split completed")

	out := &SplitOutput{First: first, Second: second}
	return out, errors.Join(errs...)
}

// splitNode performs the structural half of a split: two new empty leaves
// under leaf, mirrored in the container with equal slot sizes. first is
// NoNode when the tree refused the split; otherwise err only reports
// container failures.
func (uc *ManageSplitsUseCase) splitNode(
	ctx context.Context,
	tree *entity.SplitTree,
	leaf entity.NodeID,
	orientation entity.Orientation,
) (first, second entity.NodeID, err error) {
	first, second = uc.allocate(), uc.allocate()
	if err := tree.InsertNewNodes(leaf, first, second); err != nil {
		return entity.NoNode, entity.NoNode, err
	}
	uc.treeOf[first] = tree
	uc.treeOf[second] = tree
	uc.orientationOf[leaf] = orientation

	container := uc.containerOf[tree]
	var errs []error
	errs = append(errs,
		container.SetSplitOrientation(ctx, leaf, orientation),
		container.AttachSubtree(ctx, leaf, 0, first),
		container.AttachSubtree(ctx, leaf, 1, second),
	)

	sizes, err := container.SlotSizes(leaf)
	if err != nil {
		errs = append(errs, fmt.Errorf("read slot sizes: %w", err))
	} else if total := sizes[0] + sizes[1]; total > 0 {
		errs = append(errs, container.SetSlotSizes(ctx, leaf, [2]int{total / 2, total - total/2}))
	}
	container.SetSplitsVisible(ctx, true)

	if err := errors.Join(errs...); err != nil {
		return first, second, fmt.Errorf("mirror split of %s: %w", leaf, err)
	}
	return first, second, nil
}

// Remove closes the content of leaf and removes the leaf. Its sibling takes
// the parent's place; when the leaf was the only node the tree is gone.
//
// Returns the promoted sibling, or entity.NoNode when the tree was removed.
// If the content owner refuses to close, nothing changes.
func (uc *ManageSplitsUseCase) Remove(ctx context.Context, leaf entity.NodeID) (entity.NodeID, error) {
	log := logging.FromContext(ctx)
	log.Debug().Str("leaf", leaf.String()).Msg("removing leaf")

	tree, err := uc.leafTree(leaf)
	if err != nil {
		return entity.NoNode, err
	}
	container := uc.containerOf[tree]

	var errs []error
	if content, attached := uc.contentOf[leaf]; attached {
		if err := uc.lifecycle.RequestClose(ctx, content); err != nil {
			return entity.NoNode, fmt.Errorf("close content of %s: %w", leaf, err)
		}
		delete(uc.contentOf, leaf)
		if err := container.DetachContent(ctx, leaf); err != nil {
			errs = append(errs, fmt.Errorf("detach content from %s: %w", leaf, err))
		}
	}
	if uc.activeLeaf[tree] == leaf {
		delete(uc.activeLeaf, tree)
	}

	if tree.IsRoot(leaf) {
		if _, err := tree.RemoveNode(leaf); err != nil {
			return entity.NoNode, err
		}
		delete(uc.treeOf, leaf)
		uc.forget(tree)
		if err := container.DetachSubtree(ctx, leaf); err != nil {
			errs = append(errs, fmt.Errorf("detach root slot %s: %w", leaf, err))
		}
		uc.focus.ClearFocus(ctx, container)

		log.Info().Str("leaf", leaf.String()).Int("trees", len(uc.trees)).Msg("last leaf removed, tree closed")
		return entity.NoNode, errors.Join(errs...)
	}

	parent, _ := tree.ParentOf(leaf)
	grandparent, hasGrandparent := tree.ParentOf(parent)

	var (
		grandSizes [2]int
		parentSlot int
		sizesErr   error
	)
	if hasGrandparent {
		parentSlot, _ = tree.SlotOf(parent)
		grandSizes, sizesErr = container.SlotSizes(grandparent)
	}

	sibling, err := tree.RemoveNode(leaf)
	if err != nil {
		return entity.NoNode, err
	}
	delete(uc.treeOf, leaf)
	delete(uc.treeOf, parent)
	delete(uc.orientationOf, parent)

	attachTo, slot := entity.NoNode, 0
	if hasGrandparent {
		attachTo, slot = grandparent, parentSlot
	}
	if err := container.AttachSubtree(ctx, attachTo, slot, sibling); err != nil {
		errs = append(errs, fmt.Errorf("move %s into %s: %w", sibling, attachTo, err))
	}
	if err := container.DetachSubtree(ctx, parent); err != nil {
		errs = append(errs, fmt.Errorf("detach slot %s: %w", parent, err))
	}

	// The grandparent keeps its total size: the untouched child keeps its
	// absolute size and the promoted sibling takes the rest.
	if hasGrandparent {
		if sizesErr != nil {
			errs = append(errs, fmt.Errorf("read slot sizes of %s: %w", grandparent, sizesErr))
		} else if total := grandSizes[0] + grandSizes[1]; total > 0 {
			var sizes [2]int
			sizes[1-parentSlot] = grandSizes[1-parentSlot]
			sizes[parentSlot] = total - grandSizes[1-parentSlot]
			errs = append(errs, container.SetSlotSizes(ctx, grandparent, sizes))
		}
	}

	if tree.NumberOfNodes() == 1 {
		container.SetSplitsVisible(ctx, false)
	}

	next := tree.LeafOfSubtree(sibling)
	if err := uc.focusLeaf(ctx, tree, next); err != nil {
		errs = append(errs, err)
	}

	log.Info().
		Str("leaf", leaf.String()).
		Str("promoted", sibling.String()).
		Str("focus", next.String()).
		Int("nodes", tree.NumberOfNodes()).
		Msg("leaf removed")

	return sibling, errors.Join(errs...)
}

// Dismiss removes every leaf of the tree containing anyNode, closing all of
// their content, until the tree is gone.
//
// It stops early only when a leaf could not be removed. Container errors
// reported by a removal that did happen are collected and returned once the
// tree is gone.
func (uc *ManageSplitsUseCase) Dismiss(ctx context.Context, anyNode entity.NodeID) error {
	log := logging.FromContext(ctx)

	tree, err := uc.lookup(anyNode)
	if err != nil {
		return err
	}
	bound := tree.LeafCount()
	log.Debug().Str("node", anyNode.String()).Int("leaves", bound).Msg("dismissing split tree")

	var errs []error
	for i := 0; i < bound && !tree.IsEmpty(); i++ {
		leaf := tree.LeafOfSubtree(tree.Root())
		before := tree.NumberOfNodes()
		if _, err := uc.Remove(ctx, leaf); err != nil {
			errs = append(errs, fmt.Errorf("dismiss: remove %s: %w", leaf, err))
			if !tree.IsEmpty() && tree.NumberOfNodes() == before {
				return errors.Join(errs...)
			}
			log.Warn().Err(err).Str("leaf", leaf.String()).Msg("leaf removed with container errors")
		}
	}

	if !tree.IsEmpty() || uc.registered(tree) {
		errs = append(errs, fmt.Errorf("%w: tree still has %d nodes after dismissing %d leaves",
			entity.ErrInvariantViolation, tree.NumberOfNodes(), bound))
		return errors.Join(errs...)
	}

	log.Info().Int("closed", bound).Int("trees", len(uc.trees)).Msg("split tree dismissed")
	return errors.Join(errs...)
}

// focusLeaf moves focus to the content of leaf and remembers it as the
// tree's active leaf. Leaves without content are skipped.
func (uc *ManageSplitsUseCase) focusLeaf(ctx context.Context, tree *entity.SplitTree, leaf entity.NodeID) error {
	content, ok := uc.contentOf[leaf]
	if !ok {
		return nil
	}
	uc.activeLeaf[tree] = leaf
	if err := uc.focus.RequestFocus(ctx, uc.containerOf[tree], content); err != nil {
		return fmt.Errorf("focus %s: %w", leaf, err)
	}
	return nil
}

func (uc *ManageSplitsUseCase) allocate() entity.NodeID {
	uc.nextID++
	return uc.nextID
}

func (uc *ManageSplitsUseCase) lookup(node entity.NodeID) (*entity.SplitTree, error) {
	tree, ok := uc.treeOf[node]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrUnknownNode, node)
	}
	return tree, nil
}

func (uc *ManageSplitsUseCase) leafTree(node entity.NodeID) (*entity.SplitTree, error) {
	tree, err := uc.lookup(node)
	if err != nil {
		return nil, err
	}
	if !tree.IsLeaf(node) {
		return nil, fmt.Errorf("%w: %s", entity.ErrNotALeaf, node)
	}
	return tree, nil
}

func (uc *ManageSplitsUseCase) registered(tree *entity.SplitTree) bool {
	_, ok := uc.containerOf[tree]
	return ok
}

// forget unregisters an emptied tree from the forest.
func (uc *ManageSplitsUseCase) forget(tree *entity.SplitTree) {
	delete(uc.containerOf, tree)
	delete(uc.activeLeaf, tree)
	for i, t := range uc.trees {
		if t == tree {
			uc.trees = append(uc.trees[:i], uc.trees[i+1:]...)
			return
		}
	}
}
