package entity

import "errors"

// Error kinds for layout operations. All of them signal a broken caller
// contract rather than an expected runtime condition.
var (
	// ErrInvariantViolation is returned when an operation's preconditions on
	// tree shape are not met, e.g. splitting or removing a non-leaf.
	ErrInvariantViolation = errors.New("split tree invariant violation")

	// ErrUnknownNode is returned when a handle is not registered with any tree.
	ErrUnknownNode = errors.New("unknown node")

	// ErrNoFocusedLeaf is returned when no leaf of a tree holds input focus.
	ErrNoFocusedLeaf = errors.New("no focused leaf")

	// ErrNotAttached is returned when a leaf expected to hold content does not.
	ErrNotAttached = errors.New("leaf has no content attached")

	// ErrNotALeaf is returned when a leaf-only operation targets an internal node.
	ErrNotALeaf = errors.New("node is not a leaf")
)
