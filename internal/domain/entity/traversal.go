package entity

// Traversal is a depth-first cursor over one SplitTree. Internal nodes are
// expanded into their children when popped, first child first, so nodes come
// out in pre-order.
//
// A Traversal reads the live tree; mutating the tree it walks while the
// cursor is unfinished is not supported. Separate cursors never interfere.
type Traversal struct {
	tree    *SplitTree
	stack   []NodeID
	visited map[NodeID]struct{}
}

func newTraversal(t *SplitTree) *Traversal {
	tr := &Traversal{
		tree:    t,
		visited: make(map[NodeID]struct{}, t.NumberOfNodes()),
	}
	if !t.IsEmpty() {
		tr.stack = append(tr.stack, t.root)
	}
	return tr
}

// Next returns the next unvisited node. ok is false once the walk is done.
func (tr *Traversal) Next() (node NodeID, ok bool) {
	for len(tr.stack) > 0 {
		node = tr.stack[len(tr.stack)-1]
		tr.stack = tr.stack[:len(tr.stack)-1]
		if _, seen := tr.visited[node]; seen {
			continue
		}
		tr.visited[node] = struct{}{}

		if pair, internal := tr.tree.children[node]; internal {
			tr.stack = append(tr.stack, pair[1], pair[0])
		}
		return node, true
	}
	return NoNode, false
}
