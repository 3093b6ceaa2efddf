// Package entity contains the layout domain: node handles, orientations,
// directions and the split tree itself.
// These are pure Go types with no infrastructure dependencies.
package entity

import (
	"fmt"
	"strings"
)

// NodeID is a stable handle for one position in a layout hierarchy.
// Handles are allocated by the forest and never reused.
type NodeID uint64

// NoNode is the zero handle, meaning "absent".
const NoNode NodeID = 0

// String implements fmt.Stringer.
func (id NodeID) String() string {
	if id == NoNode {
		return "none"
	}
	return fmt.Sprintf("n%d", uint64(id))
}

// Orientation indicates how an internal node splits its two children.
type Orientation int

const (
	OrientationNone       Orientation = iota // Leaf or not yet split
	OrientationHorizontal                    // Left/right split
	OrientationVertical                      // Top/bottom split
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case OrientationHorizontal:
		return "horizontal"
	case OrientationVertical:
		return "vertical"
	default:
		return "none"
	}
}

// ParseOrientation parses "horizontal"/"h" or "vertical"/"v".
func ParseOrientation(s string) (Orientation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "horizontal", "h":
		return OrientationHorizontal, nil
	case "vertical", "v":
		return OrientationVertical, nil
	default:
		return OrientationNone, fmt.Errorf("unknown orientation %q", s)
	}
}

// Direction is a side of a leaf used for directional focus navigation.
type Direction string

const (
	DirectionLeft  Direction = "left"
	DirectionRight Direction = "right"
	DirectionUp    Direction = "up"
	DirectionDown  Direction = "down"
)

// ParseDirection parses a direction name. "top" and "bottom" are accepted
// as aliases for up and down.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "left":
		return DirectionLeft, nil
	case "right":
		return DirectionRight, nil
	case "up", "top":
		return DirectionUp, nil
	case "down", "bottom":
		return DirectionDown, nil
	default:
		return "", fmt.Errorf("unknown direction %q", s)
	}
}
