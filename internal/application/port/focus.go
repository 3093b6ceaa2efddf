package port

import "context"

// FocusController owns keyboard focus. Focus is scoped per container: each
// container remembers which of its contents is focused.
type FocusController interface {
	RequestFocus(ctx context.Context, scope Container, content Content) error
	HasFocus(scope Container, content Content) bool
	ClearFocus(ctx context.Context, scope Container)
}
