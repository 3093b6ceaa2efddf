package usecase

import (
	"context"
	"fmt"
	"math"

	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/logging"
)

// LeafAnchor pairs a leaf with the on-screen position of its content.
type LeafAnchor struct {
	Leaf   entity.NodeID
	Anchor entity.Point
}

// FocusedLeaf returns the leaf of anyNode's tree whose content has focus.
func (uc *ManageSplitsUseCase) FocusedLeaf(anyNode entity.NodeID) (entity.NodeID, error) {
	tree, err := uc.lookup(anyNode)
	if err != nil {
		return entity.NoNode, err
	}
	container := uc.containerOf[tree]
	for _, leaf := range tree.Leaves() {
		content, ok := uc.contentOf[leaf]
		if ok && uc.focus.HasFocus(container, content) {
			return leaf, nil
		}
	}
	return entity.NoNode, fmt.Errorf("%w: tree rooted at %s", entity.ErrNoFocusedLeaf, tree.Root())
}

// FocusGained records that the content of leaf received focus from outside
// the layout (a click, the window manager) and brings the focus controller
// in line with it.
func (uc *ManageSplitsUseCase) FocusGained(ctx context.Context, leaf entity.NodeID) error {
	log := logging.FromContext(ctx)

	tree, err := uc.leafTree(leaf)
	if err != nil {
		return err
	}
	content, ok := uc.contentOf[leaf]
	if !ok {
		return fmt.Errorf("%w: %s cannot take focus", entity.ErrNotAttached, leaf)
	}

	uc.activeLeaf[tree] = leaf
	container := uc.containerOf[tree]
	if uc.focus.HasFocus(container, content) {
		return nil
	}
	log.Debug().Str("leaf", leaf.String()).Msg("focus gained")
	if err := uc.focus.RequestFocus(ctx, container, content); err != nil {
		return fmt.Errorf("focus %s: %w", leaf, err)
	}
	return nil
}

// ActiveLeaf returns the leaf that last received focus in anyNode's tree.
func (uc *ManageSplitsUseCase) ActiveLeaf(anyNode entity.NodeID) (entity.NodeID, bool) {
	tree, ok := uc.treeOf[anyNode]
	if !ok {
		return entity.NoNode, false
	}
	leaf, ok := uc.activeLeaf[tree]
	return leaf, ok
}

// NearestInDirection finds the leaf of within's tree whose content lies
// closest to fromLeaf's content on the given side. found is false when no
// leaf lies on that side.
func (uc *ManageSplitsUseCase) NearestInDirection(
	ctx context.Context,
	fromLeaf entity.NodeID,
	direction entity.Direction,
	within entity.NodeID,
) (entity.NodeID, bool, error) {
	log := logging.FromContext(ctx)

	fromTree, err := uc.leafTree(fromLeaf)
	if err != nil {
		return entity.NoNode, false, err
	}
	tree, err := uc.lookup(within)
	if err != nil {
		return entity.NoNode, false, err
	}
	content, ok := uc.contentOf[fromLeaf]
	if !ok {
		return entity.NoNode, false, fmt.Errorf("%w: %s has no position", entity.ErrNotAttached, fromLeaf)
	}
	source, ok := uc.containerOf[fromTree].ScreenAnchor(content)
	if !ok {
		return entity.NoNode, false, fmt.Errorf("%w: %s is not on screen", entity.ErrNotAttached, fromLeaf)
	}

	container := uc.containerOf[tree]
	leaves := tree.Leaves()
	candidates := make([]LeafAnchor, 0, len(leaves))
	for _, leaf := range leaves {
		if leaf == fromLeaf {
			continue
		}
		c, attached := uc.contentOf[leaf]
		if !attached {
			continue
		}
		anchor, shown := container.ScreenAnchor(c)
		if !shown {
			continue
		}
		candidates = append(candidates, LeafAnchor{Leaf: leaf, Anchor: anchor})
	}

	log.Debug().
		Str("from", fromLeaf.String()).
		Str("direction", string(direction)).
		Int("candidates", len(candidates)).
		Msg("directional search")

	target, found := NearestInDirection(source, candidates, direction)
	return target, found, nil
}

// MoveFocus moves focus from the focused leaf of anyNode's tree to its
// nearest neighbour in direction. moved is false when there is none.
func (uc *ManageSplitsUseCase) MoveFocus(
	ctx context.Context,
	anyNode entity.NodeID,
	direction entity.Direction,
) (target entity.NodeID, moved bool, err error) {
	log := logging.FromContext(ctx)

	from, err := uc.FocusedLeaf(anyNode)
	if err != nil {
		return entity.NoNode, false, err
	}
	target, found, err := uc.NearestInDirection(ctx, from, direction, anyNode)
	if err != nil {
		return entity.NoNode, false, err
	}
	if !found {
		log.Debug().Str("from", from.String()).Str("direction", string(direction)).Msg("no leaf in direction")
		return entity.NoNode, false, nil
	}

	if err := uc.focusLeaf(ctx, uc.treeOf[target], target); err != nil {
		return entity.NoNode, false, err
	}
	log.Info().
		Str("from", from.String()).
		Str("to", target.String()).
		Str("direction", string(direction)).
		Msg("focus moved")
	return target, true, nil
}

// NearestInDirection picks, among candidates lying strictly on the given
// side of source, the one at the smallest Euclidean distance. Ties go to the
// earliest candidate.
func NearestInDirection(source entity.Point, candidates []LeafAnchor, direction entity.Direction) (entity.NodeID, bool) {
	best := entity.NoNode
	bestDist := math.Inf(1)

	for _, c := range candidates {
		if !onSide(source, c.Anchor, direction) {
			continue
		}
		if d := source.DistanceTo(c.Anchor); d < bestDist {
			best, bestDist = c.Leaf, d
		}
	}
	return best, best != entity.NoNode
}

func onSide(source, p entity.Point, direction entity.Direction) bool {
	switch direction {
	case entity.DirectionLeft:
		return p.X < source.X
	case entity.DirectionRight:
		return p.X > source.X
	case entity.DirectionUp:
		return p.Y < source.Y
	case entity.DirectionDown:
		return p.Y > source.Y
	default:
		return false
	}
}
