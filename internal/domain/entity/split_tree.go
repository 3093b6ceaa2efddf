package entity

import "fmt"

// SplitTree is a binary tree over node handles.
//
// Properties of the tree:
//   - each node has exactly one parent, except the root which has none
//   - each node has zero children (leaf) or exactly two (internal)
//
// The tree only records relationships; it knows nothing about the content,
// geometry or host surface of its nodes.
type SplitTree struct {
	root     NodeID
	parent   map[NodeID]NodeID // root maps to NoNode
	children map[NodeID][2]NodeID
	leaves   map[NodeID]struct{}
}

// NewSplitTree creates a tree whose single node is both root and leaf.
func NewSplitTree(root NodeID) *SplitTree {
	return &SplitTree{
		root:     root,
		parent:   map[NodeID]NodeID{root: NoNode},
		children: make(map[NodeID][2]NodeID),
		leaves:   map[NodeID]struct{}{root: {}},
	}
}

// Root returns the root node, or NoNode once the tree is empty.
func (t *SplitTree) Root() NodeID {
	return t.root
}

// IsEmpty reports whether the last node has been removed.
func (t *SplitTree) IsEmpty() bool {
	return t.root == NoNode
}

// Contains reports whether node belongs to this tree.
func (t *SplitTree) Contains(node NodeID) bool {
	_, ok := t.parent[node]
	return ok
}

// IsLeaf reports whether node is a leaf of this tree.
func (t *SplitTree) IsLeaf(node NodeID) bool {
	_, ok := t.leaves[node]
	return ok
}

// IsRoot reports whether node is the root of this tree.
func (t *SplitTree) IsRoot(node NodeID) bool {
	return node != NoNode && t.root == node
}

// NumberOfNodes returns how many nodes make up the tree.
func (t *SplitTree) NumberOfNodes() int {
	return len(t.parent)
}

// LeafCount returns the number of leaves.
func (t *SplitTree) LeafCount() int {
	return len(t.leaves)
}

// Leaves returns all leaves in visual order (first child before second).
func (t *SplitTree) Leaves() []NodeID {
	leaves := make([]NodeID, 0, len(t.leaves))
	if t.IsEmpty() {
		return leaves
	}
	cursor := t.Traverse()
	for node, ok := cursor.Next(); ok; node, ok = cursor.Next() {
		if t.IsLeaf(node) {
			leaves = append(leaves, node)
		}
	}
	return leaves
}

// ParentOf returns node's parent. ok is false for the root and for nodes
// outside the tree.
func (t *SplitTree) ParentOf(node NodeID) (NodeID, bool) {
	parent, ok := t.parent[node]
	if !ok || parent == NoNode {
		return NoNode, false
	}
	return parent, true
}

// ChildrenOf returns the ordered children of an internal node.
func (t *SplitTree) ChildrenOf(node NodeID) ([2]NodeID, bool) {
	pair, ok := t.children[node]
	return pair, ok
}

// SiblingOf returns the other child of node's parent.
// Unless node is the root, there is always a sibling.
func (t *SplitTree) SiblingOf(node NodeID) (NodeID, bool) {
	parent, ok := t.ParentOf(node)
	if !ok {
		return NoNode, false
	}
	pair := t.children[parent]
	if pair[0] == node {
		return pair[1], true
	}
	return pair[0], true
}

// SlotOf returns node's position (0 or 1) in its parent's child pair.
func (t *SplitTree) SlotOf(node NodeID) (int, bool) {
	parent, ok := t.ParentOf(node)
	if !ok {
		return 0, false
	}
	if t.children[parent][0] == node {
		return 0, true
	}
	return 1, true
}

// LeafOfSubtree returns a representative leaf of the subtree rooted at node.
// It always descends through the first child, so the result is the
// leftmost/topmost leaf.
func (t *SplitTree) LeafOfSubtree(node NodeID) NodeID {
	for {
		pair, ok := t.children[node]
		if !ok {
			return node
		}
		node = pair[0]
	}
}

// InsertNewNodes promotes the leaf parent into an internal node with the
// ordered children (child1, child2).
func (t *SplitTree) InsertNewNodes(parent, child1, child2 NodeID) error {
	if !t.IsLeaf(parent) {
		return fmt.Errorf("%w: parent %s must be a leaf before insertion", ErrInvariantViolation, parent)
	}
	if child1 == NoNode || child2 == NoNode || child1 == child2 {
		return fmt.Errorf("%w: children %s and %s must be two distinct nodes", ErrInvariantViolation, child1, child2)
	}
	if t.Contains(child1) || t.Contains(child2) {
		return fmt.Errorf("%w: children %s and %s must be new to the tree", ErrInvariantViolation, child1, child2)
	}

	t.parent[child1] = parent
	t.parent[child2] = parent
	t.children[parent] = [2]NodeID{child1, child2}

	delete(t.leaves, parent)
	t.leaves[child1] = struct{}{}
	t.leaves[child2] = struct{}{}
	return nil
}

// RemoveNode removes a leaf and collapses its now redundant parent: the
// sibling subtree takes the parent's place, in the same ordered slot of the
// grandparent. Returns the promoted sibling, or NoNode when the removed leaf
// was the last node and the tree is now empty.
func (t *SplitTree) RemoveNode(node NodeID) (NodeID, error) {
	if !t.IsLeaf(node) {
		return NoNode, fmt.Errorf("%w: cannot remove %s, it is not a leaf", ErrInvariantViolation, node)
	}

	if t.root == node {
		t.root = NoNode
		delete(t.parent, node)
		delete(t.leaves, node)
		return NoNode, nil
	}

	parent := t.parent[node]
	sibling, _ := t.SiblingOf(node)
	grandparent := t.parent[parent]

	if grandparent == NoNode {
		t.root = sibling
	} else {
		pair := t.children[grandparent]
		if pair[0] == parent {
			pair[0] = sibling
		} else {
			pair[1] = sibling
		}
		t.children[grandparent] = pair
	}

	delete(t.parent, node)
	delete(t.parent, parent)
	delete(t.children, parent)
	delete(t.leaves, node)
	t.parent[sibling] = grandparent

	return sibling, nil
}

// Traverse returns a new depth-first cursor over the tree. Cursors are
// independent of each other; each one keeps its own stack.
func (t *SplitTree) Traverse() *Traversal {
	return newTraversal(t)
}

// Validate checks the structural invariants of the tree.
func (t *SplitTree) Validate() error {
	if t.IsEmpty() {
		if len(t.parent) != 0 || len(t.children) != 0 || len(t.leaves) != 0 {
			return fmt.Errorf("%w: empty tree still holds nodes", ErrInvariantViolation)
		}
		return nil
	}
	if p, ok := t.parent[t.root]; !ok || p != NoNode {
		return fmt.Errorf("%w: root %s has a parent or is unregistered", ErrInvariantViolation, t.root)
	}

	seen := make(map[NodeID]struct{}, len(t.parent))
	stack := []NodeID{t.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if _, dup := seen[node]; dup {
			return fmt.Errorf("%w: %s reached twice", ErrInvariantViolation, node)
		}
		seen[node] = struct{}{}

		pair, internal := t.children[node]
		_, leaf := t.leaves[node]
		if internal == leaf {
			return fmt.Errorf("%w: %s must be exactly one of leaf or internal", ErrInvariantViolation, node)
		}
		if !internal {
			continue
		}
		for _, child := range pair {
			if child == NoNode {
				return fmt.Errorf("%w: %s has only one child", ErrInvariantViolation, node)
			}
			if t.parent[child] != node {
				return fmt.Errorf("%w: %s does not point back to parent %s", ErrInvariantViolation, child, node)
			}
			stack = append(stack, child)
		}
	}

	if len(seen) != len(t.parent) {
		return fmt.Errorf("%w: %d nodes registered, %d reachable from root", ErrInvariantViolation, len(t.parent), len(seen))
	}
	return nil
}
