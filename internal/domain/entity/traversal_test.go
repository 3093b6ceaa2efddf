package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(tr *Traversal) []NodeID {
	var out []NodeID
	for node, ok := tr.Next(); ok; node, ok = tr.Next() {
		out = append(out, node)
	}
	return out
}

func TestTraversal_PreOrderFirstChildFirst(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	a, b := split(t, tree, ids, 1) // 2, 3
	c, d := split(t, tree, ids, b) // 4, 5

	got := collect(tree.Traverse())

	assert.Equal(t, []NodeID{1, a, b, c, d}, got)
}

func TestTraversal_SingleAndEmpty(t *testing.T) {
	tree := NewSplitTree(1)
	assert.Equal(t, []NodeID{1}, collect(tree.Traverse()))

	_, err := tree.RemoveNode(1)
	require.NoError(t, err)

	_, ok := tree.Traverse().Next()
	assert.False(t, ok)
}

func TestTraversal_ExhaustedStaysDone(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	split(t, tree, ids, 1)

	tr := tree.Traverse()
	assert.Len(t, collect(tr), 3)

	node, ok := tr.Next()
	assert.False(t, ok)
	assert.Equal(t, NoNode, node)
}

func TestTraversal_IndependentCursors(t *testing.T) {
	ids := &idSource{next: 1}
	tree := NewSplitTree(1)
	a, b := split(t, tree, ids, 1)
	split(t, tree, ids, a)

	first := tree.Traverse()
	second := tree.Traverse()

	n1, _ := first.Next()
	n2, _ := first.Next()
	m1, _ := second.Next()

	assert.Equal(t, NodeID(1), n1)
	assert.Equal(t, a, n2)
	assert.Equal(t, NodeID(1), m1)

	rest := collect(first)
	assert.Equal(t, b, rest[len(rest)-1])
	assert.Len(t, collect(second), 4)
}
