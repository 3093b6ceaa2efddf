package usecase

import (
	"fmt"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/domain/entity"
)

// Root returns the root of anyNode's tree.
func (uc *ManageSplitsUseCase) Root(anyNode entity.NodeID) (entity.NodeID, error) {
	tree, err := uc.lookup(anyNode)
	if err != nil {
		return entity.NoNode, err
	}
	return tree.Root(), nil
}

func (uc *ManageSplitsUseCase) IsRoot(node entity.NodeID) bool {
	tree, ok := uc.treeOf[node]
	return ok && tree.IsRoot(node)
}

// NumberOfNodes counts the nodes of anyNode's tree.
func (uc *ManageSplitsUseCase) NumberOfNodes(anyNode entity.NodeID) (int, error) {
	tree, err := uc.lookup(anyNode)
	if err != nil {
		return 0, err
	}
	return tree.NumberOfNodes(), nil
}

// Leaves returns the leaves of anyNode's tree in visual order.
func (uc *ManageSplitsUseCase) Leaves(anyNode entity.NodeID) ([]entity.NodeID, error) {
	tree, err := uc.lookup(anyNode)
	if err != nil {
		return nil, err
	}
	return tree.Leaves(), nil
}

func (uc *ManageSplitsUseCase) ChildrenOf(node entity.NodeID) ([2]entity.NodeID, bool) {
	tree, ok := uc.treeOf[node]
	if !ok {
		return [2]entity.NodeID{}, false
	}
	return tree.ChildrenOf(node)
}

func (uc *ManageSplitsUseCase) SiblingOf(node entity.NodeID) (entity.NodeID, bool) {
	tree, ok := uc.treeOf[node]
	if !ok {
		return entity.NoNode, false
	}
	return tree.SiblingOf(node)
}

// OrientationOf returns how an internal node splits its children, or
// OrientationNone for leaves and unknown nodes.
func (uc *ManageSplitsUseCase) OrientationOf(node entity.NodeID) entity.Orientation {
	return uc.orientationOf[node]
}

func (uc *ManageSplitsUseCase) ContentOf(leaf entity.NodeID) (port.Content, bool) {
	content, ok := uc.contentOf[leaf]
	return content, ok
}

// Contents lists all content hosted by the forest, tree by tree in creation
// order and leaves in visual order within a tree.
func (uc *ManageSplitsUseCase) Contents() []port.Content {
	out := make([]port.Content, 0, len(uc.contentOf))
	for _, tree := range uc.trees {
		for _, leaf := range tree.Leaves() {
			if content, ok := uc.contentOf[leaf]; ok {
				out = append(out, content)
			}
		}
	}
	return out
}

func (uc *ManageSplitsUseCase) ContainerOf(node entity.NodeID) (port.Container, bool) {
	tree, ok := uc.treeOf[node]
	if !ok {
		return nil, false
	}
	container, ok := uc.containerOf[tree]
	return container, ok
}

// RootForContainer returns the root of the tree hosted by container.
func (uc *ManageSplitsUseCase) RootForContainer(container port.Container) (entity.NodeID, bool) {
	for _, tree := range uc.trees {
		if uc.containerOf[tree] == container {
			return tree.Root(), true
		}
	}
	return entity.NoNode, false
}

// TreeCount returns the number of live trees.
func (uc *ManageSplitsUseCase) TreeCount() int {
	return len(uc.trees)
}

// Validate checks anyNode's tree and the forest tables that describe it.
func (uc *ManageSplitsUseCase) Validate(anyNode entity.NodeID) error {
	tree, err := uc.lookup(anyNode)
	if err != nil {
		return err
	}
	if err := tree.Validate(); err != nil {
		return err
	}
	if !uc.registered(tree) {
		return fmt.Errorf("%w: tree rooted at %s has no container", entity.ErrInvariantViolation, tree.Root())
	}

	nodes := 0
	cursor := tree.Traverse()
	for node, ok := cursor.Next(); ok; node, ok = cursor.Next() {
		nodes++
		if uc.treeOf[node] != tree {
			return fmt.Errorf("%w: %s is not mapped to its tree", entity.ErrInvariantViolation, node)
		}
		_, hasContent := uc.contentOf[node]
		_, hasOrientation := uc.orientationOf[node]
		if tree.IsLeaf(node) && hasOrientation {
			return fmt.Errorf("%w: leaf %s has an orientation", entity.ErrInvariantViolation, node)
		}
		if !tree.IsLeaf(node) && (hasContent || !hasOrientation) {
			return fmt.Errorf("%w: internal node %s must have an orientation and no content", entity.ErrInvariantViolation, node)
		}
	}

	mapped := 0
	for _, t := range uc.treeOf {
		if t == tree {
			mapped++
		}
	}
	if mapped != nodes {
		return fmt.Errorf("%w: %d handles mapped to a tree of %d nodes", entity.ErrInvariantViolation, mapped, nodes)
	}
	return nil
}
