package port

import (
	"context"

	"github.com/bnema/splitforest/internal/domain/entity"
)

// Content is whatever a leaf hosts. The layout core only needs to know which
// logical session the content shows, so that a cloned layout can re-create
// an equivalent view.
type Content interface {
	Session() entity.SessionID
}

// ContentFactory creates new content bound to an existing session.
type ContentFactory interface {
	Create(ctx context.Context, session entity.SessionID) (Content, error)
}

// ContentLifecycle closes content on behalf of the layout.
type ContentLifecycle interface {
	// RequestClose asks the owner to release content. The layout removes the
	// hosting leaf only when this returns nil.
	RequestClose(ctx context.Context, content Content) error
}
