// Package focus keeps track of which content holds keyboard focus.
package focus

import (
	"context"
	"fmt"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/logging"
)

// Tracker remembers one focused content per container. A container with no
// entry has nothing focused.
type Tracker struct {
	focused map[port.Container]port.Content
	changes int
}

// NewTracker creates a tracker with nothing focused.
func NewTracker() *Tracker {
	return &Tracker{focused: make(map[port.Container]port.Content)}
}

// RequestFocus implements port.FocusController.
func (t *Tracker) RequestFocus(ctx context.Context, scope port.Container, content port.Content) error {
	if scope == nil || content == nil {
		return fmt.Errorf("focus request needs a scope and content")
	}
	if t.focused[scope] == content {
		return nil
	}
	t.focused[scope] = content
	t.changes++
	logging.FromContext(ctx).Trace().Str("session", string(content.Session())).Msg("focus changed")
	return nil
}

// HasFocus implements port.FocusController.
func (t *Tracker) HasFocus(scope port.Container, content port.Content) bool {
	focused, ok := t.focused[scope]
	return ok && focused == content
}

// ClearFocus implements port.FocusController.
func (t *Tracker) ClearFocus(_ context.Context, scope port.Container) {
	delete(t.focused, scope)
}

// Focused returns the content focused in scope.
func (t *Tracker) Focused(scope port.Container) (port.Content, bool) {
	content, ok := t.focused[scope]
	return content, ok
}

// Changes counts effective focus changes, for status display.
func (t *Tracker) Changes() int {
	return t.changes
}
