package port

import (
	"context"

	"github.com/bnema/splitforest/internal/domain/entity"
)

// Container is the host surface mirroring one split tree.
//
// Every tree node has a slot in the container. Internal slots hold two child
// slots laid out along their orientation; leaf slots hold at most one content.
type Container interface {
	// AttachSubtree places node in position slot (0 or 1) of parent. A parent
	// of entity.NoNode designates the container root. If node already has a
	// slot it is moved along with everything below it.
	AttachSubtree(ctx context.Context, parent entity.NodeID, slot int, node entity.NodeID) error

	// DetachSubtree destroys node's slot and everything still below it.
	DetachSubtree(ctx context.Context, node entity.NodeID) error

	// AttachContent shows content in a leaf slot.
	AttachContent(ctx context.Context, leaf entity.NodeID, content Content) error

	// DetachContent empties a leaf slot without closing the content.
	DetachContent(ctx context.Context, leaf entity.NodeID) error

	// SetSplitOrientation sets how an internal slot arranges its children.
	SetSplitOrientation(ctx context.Context, node entity.NodeID, orientation entity.Orientation) error

	// SlotSizes returns the sizes of node's two child slots along its split axis.
	SlotSizes(node entity.NodeID) ([2]int, error)

	// SetSlotSizes resizes node's two child slots.
	SetSlotSizes(ctx context.Context, node entity.NodeID, sizes [2]int) error

	// ScreenAnchor returns the on-screen position of the leaf hosting content.
	// ok is false when content is not shown by this container.
	ScreenAnchor(content Content) (entity.Point, bool)

	// SetSplitsVisible toggles split handles and pane chrome.
	SetSplitsVisible(ctx context.Context, visible bool)
}
