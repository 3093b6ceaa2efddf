package entity

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// idSource hands out sequential handles the way the forest arena does.
type idSource struct{ next NodeID }

func (s *idSource) new() NodeID {
	s.next++
	return s.next
}

// split promotes leaf and returns its two new children.
func split(t *testing.T, tree *SplitTree, ids *idSource, leaf NodeID) (NodeID, NodeID) {
	t.Helper()
	a, b := ids.new(), ids.new()
	require.NoError(t, tree.InsertNewNodes(leaf, a, b))
	return a, b
}

func TestSplitTree_SingleNode(t *testing.T) {
	tree := NewSplitTree(1)

	assert.True(t, tree.IsRoot(1))
	assert.True(t, tree.IsLeaf(1))
	assert.Equal(t, 1, tree.NumberOfNodes())
	assert.Equal(t, []NodeID{1}, tree.Leaves())
	assert.Equal(t, NodeID(1), tree.LeafOfSubtree(1))

	_, ok := tree.ParentOf(1)
	assert.False(t, ok)
	_, ok = tree.SiblingOf(1)
	assert.False(t, ok)
	_, ok = tree.ChildrenOf(1)
	assert.False(t, ok)
	require.NoError(t, tree.Validate())
}

func TestSplitTree_InsertNewNodes(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)

	a, b := split(t, tree, ids, 1)

	assert.False(t, tree.IsLeaf(1))
	assert.True(t, tree.IsLeaf(a))
	assert.True(t, tree.IsLeaf(b))
	pair, ok := tree.ChildrenOf(1)
	require.True(t, ok)
	assert.Equal(t, [2]NodeID{a, b}, pair)

	sib, ok := tree.SiblingOf(a)
	require.True(t, ok)
	assert.Equal(t, b, sib)

	slot, ok := tree.SlotOf(b)
	require.True(t, ok)
	assert.Equal(t, 1, slot)
	require.NoError(t, tree.Validate())
}

func TestSplitTree_InsertNewNodes_Rejects(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	a, _ := split(t, tree, ids, 1)

	tests := []struct {
		name           string
		parent, c1, c2 NodeID
	}{
		{name: "internal parent", parent: 1, c1: 10, c2: 11},
		{name: "unknown parent", parent: 99, c1: 10, c2: 11},
		{name: "same child twice", parent: a, c1: 10, c2: 10},
		{name: "zero child", parent: a, c1: NoNode, c2: 11},
		{name: "child already in tree", parent: a, c1: 1, c2: 11},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tree.NumberOfNodes()
			err := tree.InsertNewNodes(tt.parent, tt.c1, tt.c2)
			require.ErrorIs(t, err, ErrInvariantViolation)
			assert.Equal(t, before, tree.NumberOfNodes())
			require.NoError(t, tree.Validate())
		})
	}
}

func TestSplitTree_RemoveNode_LastNodeEmptiesTree(t *testing.T) {
	tree := NewSplitTree(1)

	promoted, err := tree.RemoveNode(1)
	require.NoError(t, err)

	assert.Equal(t, NoNode, promoted)
	assert.True(t, tree.IsEmpty())
	assert.Equal(t, 0, tree.NumberOfNodes())
	assert.Empty(t, tree.Leaves())
	require.NoError(t, tree.Validate())
}

func TestSplitTree_RemoveNode_RejectsInternal(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	split(t, tree, ids, 1)

	_, err := tree.RemoveNode(1)
	require.ErrorIs(t, err, ErrInvariantViolation)

	_, err = tree.RemoveNode(42)
	require.ErrorIs(t, err, ErrInvariantViolation)
	assert.Equal(t, 3, tree.NumberOfNodes())
}

func TestSplitTree_RemoveNode_SiblingBecomesRoot(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	a, b := split(t, tree, ids, 1)

	promoted, err := tree.RemoveNode(a)
	require.NoError(t, err)

	assert.Equal(t, b, promoted)
	assert.True(t, tree.IsRoot(b))
	assert.Equal(t, 1, tree.NumberOfNodes())
	assert.False(t, tree.Contains(1))
	require.NoError(t, tree.Validate())
}

func TestSplitTree_RemoveNode_PreservesGrandparentOrder(t *testing.T) {
	for _, splitFirst := range []bool{true, false} {
		ids := &idSource{next: 1}
		tree := NewSplitTree(1)
		a, b := split(t, tree, ids, 1)

		// Split one side of the root, then remove a grandchild: its sibling
		// must land in the exact slot the intermediate parent used.
		target, other := b, a
		if splitFirst {
			target, other = a, b
		}
		c, d := split(t, tree, ids, target)

		promoted, err := tree.RemoveNode(c)
		require.NoError(t, err)
		assert.Equal(t, d, promoted)

		pair, ok := tree.ChildrenOf(1)
		require.True(t, ok)
		if splitFirst {
			assert.Equal(t, [2]NodeID{d, other}, pair)
		} else {
			assert.Equal(t, [2]NodeID{other, d}, pair)
		}
		parent, ok := tree.ParentOf(d)
		require.True(t, ok)
		assert.Equal(t, NodeID(1), parent)
		require.NoError(t, tree.Validate())
	}
}

func TestSplitTree_RemoveNode_PromotesWholeSubtree(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	a, b := split(t, tree, ids, 1)
	c, d := split(t, tree, ids, b)

	promoted, err := tree.RemoveNode(a)
	require.NoError(t, err)

	assert.Equal(t, b, promoted)
	assert.True(t, tree.IsRoot(b))
	assert.Equal(t, []NodeID{c, d}, tree.Leaves())
	assert.Equal(t, c, tree.LeafOfSubtree(tree.Root()))
	require.NoError(t, tree.Validate())
}

func TestSplitTree_RoundTrip(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	a, b := split(t, tree, ids, 1)
	before := tree.Leaves()

	// Split b into (x, y) then remove y: x stands where b stood.
	x, y := split(t, tree, ids, b)
	promoted, err := tree.RemoveNode(y)
	require.NoError(t, err)
	assert.Equal(t, x, promoted)

	pair, _ := tree.ChildrenOf(1)
	assert.Equal(t, [2]NodeID{a, x}, pair)
	assert.Len(t, tree.Leaves(), len(before))
	assert.Equal(t, 3, tree.NumberOfNodes())
	require.NoError(t, tree.Validate())
}

func TestSplitTree_CountAfterSplits(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)

	for n := 1; n <= 10; n++ {
		leaves := tree.Leaves()
		split(t, tree, ids, leaves[len(leaves)/2])
		assert.Equal(t, 2*n+1, tree.NumberOfNodes())
		assert.Equal(t, n+1, tree.LeafCount())
	}
}

func TestSplitTree_LeafOfSubtreeIsDeterministic(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	a, b := split(t, tree, ids, 1)
	c, _ := split(t, tree, ids, a)
	e, _ := split(t, tree, ids, b)

	assert.Equal(t, c, tree.LeafOfSubtree(1))
	assert.Equal(t, e, tree.LeafOfSubtree(b))
	assert.Equal(t, c, tree.LeafOfSubtree(c))
}

func TestSplitTree_RandomSequencesKeepInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 50; round++ {
		ids := &idSource{next: 1}
		tree := NewSplitTree(1)

		for step := 0; step < 60 && !tree.IsEmpty(); step++ {
			leaves := tree.Leaves()
			leaf := leaves[rng.Intn(len(leaves))]

			if rng.Intn(3) > 0 {
				split(t, tree, ids, leaf)
			} else {
				_, err := tree.RemoveNode(leaf)
				require.NoError(t, err)
			}

			require.NoError(t, tree.Validate(), "round %d step %d", round, step)
			for _, l := range tree.Leaves() {
				_, internal := tree.ChildrenOf(l)
				assert.False(t, internal)
			}
			if !tree.IsEmpty() {
				assert.Equal(t, 2*tree.LeafCount()-1, tree.NumberOfNodes())
			}
		}
	}
}
