package layout

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/logging"
)

// ErrNodeNotFound is returned when a node has no slot on the surface.
var ErrNodeNotFound = errors.New("node not found")

// ErrNotSplit is returned when sizes are read from or written to a slot that
// does not hold two children.
var ErrNotSplit = errors.New("slot is not split")

// ErrSlotOccupied is returned when content is attached to a slot that cannot
// take it.
var ErrSlotOccupied = errors.New("slot cannot host content")

const defaultRatio = 0.5

// slot mirrors one tree node on the surface.
type slot struct {
	parent      entity.NodeID
	index       int
	children    [2]entity.NodeID
	orientation entity.Orientation
	ratio       float64 // share of the first child along the split axis
	content     port.Content
}

func (s *slot) isSplit() bool {
	return s.children[0] != entity.NoNode && s.children[1] != entity.NoNode
}

// Surface is a character-cell host for one split tree. It lays its slots
// out inside a width x height area whose top-left corner sits at origin on
// screen.
type Surface struct {
	name          string
	origin        entity.Point
	width, height int
	root          entity.NodeID
	slots         map[entity.NodeID]*slot
	hosting       map[port.Content]entity.NodeID
	splitsVisible bool
	logger        zerolog.Logger
}

// NewSurface creates an empty surface of the given size.
func NewSurface(ctx context.Context, name string, width, height int) *Surface {
	log := logging.FromContext(ctx)
	log.Debug().Str("surface", name).Int("width", width).Int("height", height).Msg("creating surface")

	return &Surface{
		name:    name,
		width:   max(width, 0),
		height:  max(height, 0),
		slots:   make(map[entity.NodeID]*slot),
		hosting: make(map[port.Content]entity.NodeID),
		logger:  log.With().Str("component", "surface").Str("surface", name).Logger(),
	}
}

func (s *Surface) Name() string { return s.name }

// Root returns the node occupying the whole surface.
func (s *Surface) Root() entity.NodeID { return s.root }

func (s *Surface) Size() (width, height int) { return s.width, s.height }

func (s *Surface) Origin() entity.Point { return s.origin }

// SplitsVisible reports whether split handles and pane chrome are shown.
func (s *Surface) SplitsVisible() bool { return s.splitsVisible }

// SlotCount returns the number of slots, including detached ones not yet
// destroyed.
func (s *Surface) SlotCount() int { return len(s.slots) }

// Resize changes the surface area. Split ratios are kept.
func (s *Surface) Resize(width, height int) {
	s.width, s.height = max(width, 0), max(height, 0)
	s.logger.Debug().Int("width", s.width).Int("height", s.height).Msg("surface resized")
}

// SetOrigin moves the surface on screen.
func (s *Surface) SetOrigin(origin entity.Point) {
	s.origin = origin
}

// AttachSubtree implements port.Container.
func (s *Surface) AttachSubtree(_ context.Context, parent entity.NodeID, index int, node entity.NodeID) error {
	if node == entity.NoNode {
		return fmt.Errorf("attach: %w: %s", ErrNodeNotFound, node)
	}
	if index != 0 && index != 1 {
		return fmt.Errorf("attach %s: invalid slot index %d", node, index)
	}
	var p *slot
	if parent != entity.NoNode {
		var ok bool
		if p, ok = s.slots[parent]; !ok {
			return fmt.Errorf("attach %s: parent %w: %s", node, ErrNodeNotFound, parent)
		}
	}

	sl, exists := s.slots[node]
	if exists {
		s.unlink(node, sl)
	} else {
		sl = &slot{ratio: defaultRatio}
		s.slots[node] = sl
	}

	if p == nil {
		s.root = node
		sl.parent, sl.index = entity.NoNode, 0
	} else {
		p.children[index] = node
		sl.parent, sl.index = parent, index
	}

	s.logger.Trace().
		Str("node", node.String()).
		Str("parent", parent.String()).
		Int("index", index).
		Bool("moved", exists).
		Msg("subtree attached")
	return nil
}

// DetachSubtree implements port.Container.
func (s *Surface) DetachSubtree(_ context.Context, node entity.NodeID) error {
	sl, ok := s.slots[node]
	if !ok {
		return fmt.Errorf("detach: %w: %s", ErrNodeNotFound, node)
	}
	s.unlink(node, sl)
	s.destroy(node)
	s.logger.Trace().Str("node", node.String()).Int("slots", len(s.slots)).Msg("subtree detached")
	return nil
}

// unlink clears the position node occupies, if it still occupies it.
func (s *Surface) unlink(node entity.NodeID, sl *slot) {
	if sl.parent == entity.NoNode {
		if s.root == node {
			s.root = entity.NoNode
		}
		return
	}
	if p, ok := s.slots[sl.parent]; ok && p.children[sl.index] == node {
		p.children[sl.index] = entity.NoNode
	}
}

func (s *Surface) destroy(node entity.NodeID) {
	sl, ok := s.slots[node]
	if !ok {
		return
	}
	for _, child := range sl.children {
		if child == entity.NoNode {
			continue
		}
		// Children moved elsewhere no longer point back here.
		if c, ok := s.slots[child]; ok && c.parent == node {
			s.destroy(child)
		}
	}
	if sl.content != nil {
		delete(s.hosting, sl.content)
	}
	delete(s.slots, node)
}

// AttachContent implements port.Container.
func (s *Surface) AttachContent(_ context.Context, leaf entity.NodeID, content port.Content) error {
	sl, ok := s.slots[leaf]
	if !ok {
		return fmt.Errorf("attach content: %w: %s", ErrNodeNotFound, leaf)
	}
	if sl.isSplit() || sl.content != nil {
		return fmt.Errorf("attach content to %s: %w", leaf, ErrSlotOccupied)
	}
	if other, shown := s.hosting[content]; shown {
		return fmt.Errorf("attach content to %s: already shown in %s: %w", leaf, other, ErrSlotOccupied)
	}
	sl.content = content
	s.hosting[content] = leaf
	return nil
}

// DetachContent implements port.Container.
func (s *Surface) DetachContent(_ context.Context, leaf entity.NodeID) error {
	sl, ok := s.slots[leaf]
	if !ok {
		return fmt.Errorf("detach content: %w: %s", ErrNodeNotFound, leaf)
	}
	if sl.content != nil {
		delete(s.hosting, sl.content)
		sl.content = nil
	}
	return nil
}

// SetSplitOrientation implements port.Container. A slot split for the first
// time starts with an even ratio.
func (s *Surface) SetSplitOrientation(_ context.Context, node entity.NodeID, orientation entity.Orientation) error {
	sl, ok := s.slots[node]
	if !ok {
		return fmt.Errorf("orient: %w: %s", ErrNodeNotFound, node)
	}
	if sl.orientation == entity.OrientationNone {
		sl.ratio = defaultRatio
	}
	sl.orientation = orientation
	return nil
}

// SlotSizes implements port.Container. Sizes are in cells along the split
// axis.
func (s *Surface) SlotSizes(node entity.NodeID) ([2]int, error) {
	sl, ok := s.slots[node]
	if !ok {
		return [2]int{}, fmt.Errorf("slot sizes: %w: %s", ErrNodeNotFound, node)
	}
	if sl.orientation == entity.OrientationNone {
		return [2]int{}, fmt.Errorf("slot sizes of %s: %w", node, ErrNotSplit)
	}
	rect, ok := s.Rect(node)
	if !ok {
		return [2]int{}, fmt.Errorf("slot sizes of %s: not on the surface: %w", node, ErrNodeNotFound)
	}
	extent := rect.Extent(sl.orientation)
	first := splitPoint(extent, sl.ratio)
	return [2]int{first, extent - first}, nil
}

// SetSlotSizes implements port.Container. Only the proportion between the
// two sizes is kept, so slots follow later resizes.
func (s *Surface) SetSlotSizes(_ context.Context, node entity.NodeID, sizes [2]int) error {
	sl, ok := s.slots[node]
	if !ok {
		return fmt.Errorf("set slot sizes: %w: %s", ErrNodeNotFound, node)
	}
	if sl.orientation == entity.OrientationNone {
		return fmt.Errorf("set slot sizes of %s: %w", node, ErrNotSplit)
	}
	total := sizes[0] + sizes[1]
	if sizes[0] < 0 || sizes[1] < 0 || total <= 0 {
		return fmt.Errorf("set slot sizes of %s: invalid sizes %v", node, sizes)
	}
	sl.ratio = float64(sizes[0]) / float64(total)
	return nil
}

// ScreenAnchor implements port.Container: the top-left cell of the leaf
// showing content, in screen coordinates.
func (s *Surface) ScreenAnchor(content port.Content) (entity.Point, bool) {
	leaf, ok := s.hosting[content]
	if !ok {
		return entity.Point{}, false
	}
	rect, ok := s.Rect(leaf)
	if !ok {
		return entity.Point{}, false
	}
	return entity.Point{X: s.origin.X + rect.X, Y: s.origin.Y + rect.Y}, true
}

// SetSplitsVisible implements port.Container.
func (s *Surface) SetSplitsVisible(_ context.Context, visible bool) {
	s.splitsVisible = visible
}

// Rect returns the area of node relative to the surface origin.
func (s *Surface) Rect(node entity.NodeID) (entity.Rect, bool) {
	sl, ok := s.slots[node]
	if !ok {
		return entity.Rect{}, false
	}
	if sl.parent == entity.NoNode {
		if s.root != node {
			return entity.Rect{}, false
		}
		return entity.Rect{W: s.width, H: s.height}, true
	}

	p := s.slots[sl.parent]
	if p == nil || p.children[sl.index] != node {
		return entity.Rect{}, false
	}
	outer, ok := s.Rect(sl.parent)
	if !ok {
		return entity.Rect{}, false
	}
	first, second := outer.Split(p.orientation, splitPoint(outer.Extent(p.orientation), p.ratio))
	if sl.index == 0 {
		return first, true
	}
	return second, true
}

// LeafAt returns the leaf covering the screen cell (x, y).
func (s *Surface) LeafAt(x, y int) (entity.NodeID, bool) {
	x, y = x-s.origin.X, y-s.origin.Y
	node := s.root
	for node != entity.NoNode {
		rect, ok := s.Rect(node)
		if !ok || !rect.Contains(x, y) {
			return entity.NoNode, false
		}
		sl := s.slots[node]
		if !sl.isSplit() {
			return node, true
		}
		if first, ok := s.Rect(sl.children[0]); ok && first.Contains(x, y) {
			node = sl.children[0]
		} else {
			node = sl.children[1]
		}
	}
	return entity.NoNode, false
}

// NodeView is a read-only snapshot of one slot, used for rendering.
type NodeView struct {
	ID          entity.NodeID
	Children    [2]entity.NodeID
	Orientation entity.Orientation
	Content     port.Content
	Rect        entity.Rect
}

// IsLeaf reports whether the slot shows content rather than two children.
func (v NodeView) IsLeaf() bool {
	return v.Children[0] == entity.NoNode || v.Children[1] == entity.NoNode
}

// Node returns a snapshot of node's slot.
func (s *Surface) Node(node entity.NodeID) (NodeView, bool) {
	sl, ok := s.slots[node]
	if !ok {
		return NodeView{}, false
	}
	rect, _ := s.Rect(node)
	return NodeView{
		ID:          node,
		Children:    sl.children,
		Orientation: sl.orientation,
		Content:     sl.content,
		Rect:        rect,
	}, true
}

// Placement is a leaf together with where it sits on the surface.
type Placement struct {
	Leaf    entity.NodeID
	Rect    entity.Rect
	Content port.Content
}

// Placements lists the leaves reachable from the root, first child first.
func (s *Surface) Placements() []Placement {
	var out []Placement
	var walk func(node entity.NodeID)
	walk = func(node entity.NodeID) {
		view, ok := s.Node(node)
		if !ok {
			return
		}
		if view.IsLeaf() {
			out = append(out, Placement{Leaf: node, Rect: view.Rect, Content: view.Content})
			return
		}
		walk(view.Children[0])
		walk(view.Children[1])
	}
	if s.root != entity.NoNode {
		walk(s.root)
	}
	return out
}

// splitPoint returns the size of the first part of extent cells at ratio.
func splitPoint(extent int, ratio float64) int {
	first := int(math.Round(float64(extent) * ratio))
	return min(max(first, 0), extent)
}
