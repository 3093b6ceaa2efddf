package usecase_test

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/logging"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

type testContent struct {
	name    string
	session entity.SessionID
}

func (c *testContent) Session() entity.SessionID { return c.session }

func newContent(name string) *testContent {
	return &testContent{name: name, session: entity.SessionID("session-" + name)}
}

// fakeContainer records the calls it receives and remembers slot sizes and
// screen anchors so tests can assert on them.
type fakeContainer struct {
	calls   []string
	sizes   map[entity.NodeID][2]int
	anchors map[port.Content]entity.Point
	hosted  map[entity.NodeID]port.Content
	visible bool

	// sizesErr makes every SetSlotSizes call fail once set.
	sizesErr error
}

func newFakeContainer() *fakeContainer {
	return &fakeContainer{
		sizes:   make(map[entity.NodeID][2]int),
		anchors: make(map[port.Content]entity.Point),
		hosted:  make(map[entity.NodeID]port.Content),
	}
}

func (f *fakeContainer) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

func (f *fakeContainer) AttachSubtree(_ context.Context, parent entity.NodeID, slot int, node entity.NodeID) error {
	f.record("attach %s[%d] %s", parent, slot, node)
	return nil
}

func (f *fakeContainer) DetachSubtree(_ context.Context, node entity.NodeID) error {
	f.record("detach %s", node)
	return nil
}

func (f *fakeContainer) AttachContent(_ context.Context, leaf entity.NodeID, content port.Content) error {
	f.record("show %s %s", leaf, content.(*testContent).name)
	f.hosted[leaf] = content
	return nil
}

func (f *fakeContainer) DetachContent(_ context.Context, leaf entity.NodeID) error {
	f.record("hide %s", leaf)
	delete(f.hosted, leaf)
	return nil
}

func (f *fakeContainer) SetSplitOrientation(_ context.Context, node entity.NodeID, o entity.Orientation) error {
	f.record("orient %s %s", node, o)
	return nil
}

func (f *fakeContainer) SlotSizes(node entity.NodeID) ([2]int, error) {
	if sizes, ok := f.sizes[node]; ok {
		return sizes, nil
	}
	return [2]int{50, 50}, nil
}

func (f *fakeContainer) SetSlotSizes(_ context.Context, node entity.NodeID, sizes [2]int) error {
	f.record("size %s %d/%d", node, sizes[0], sizes[1])
	if f.sizesErr != nil {
		return f.sizesErr
	}
	f.sizes[node] = sizes
	return nil
}

func (f *fakeContainer) ScreenAnchor(content port.Content) (entity.Point, bool) {
	p, ok := f.anchors[content]
	return p, ok
}

func (f *fakeContainer) SetSplitsVisible(_ context.Context, visible bool) {
	f.visible = visible
}

// fakeFocus keeps one focused content per scope.
type fakeFocus struct {
	focused  map[port.Container]port.Content
	requests int
}

func newFakeFocus() *fakeFocus {
	return &fakeFocus{focused: make(map[port.Container]port.Content)}
}

func (f *fakeFocus) RequestFocus(_ context.Context, scope port.Container, content port.Content) error {
	f.requests++
	f.focused[scope] = content
	return nil
}

func (f *fakeFocus) HasFocus(scope port.Container, content port.Content) bool {
	focused, ok := f.focused[scope]
	return ok && focused == content
}

func (f *fakeFocus) ClearFocus(_ context.Context, scope port.Container) {
	delete(f.focused, scope)
}

var errRefused = errors.New("close refused")

// fakeLifecycle records closed content and can refuse specific ones.
type fakeLifecycle struct {
	closed []port.Content
	refuse map[port.Content]bool
}

func newFakeLifecycle() *fakeLifecycle {
	return &fakeLifecycle{refuse: make(map[port.Content]bool)}
}

func (f *fakeLifecycle) RequestClose(_ context.Context, content port.Content) error {
	if f.refuse[content] {
		return errRefused
	}
	f.closed = append(f.closed, content)
	return nil
}

// fakeFactory creates content on the requested session and fails once
// failAt creations have succeeded (0 disables failures).
type fakeFactory struct {
	created []*testContent
	failAt  int
}

func (f *fakeFactory) Create(_ context.Context, session entity.SessionID) (port.Content, error) {
	if f.failAt > 0 && len(f.created) == f.failAt {
		return nil, errors.New("factory exhausted")
	}
	c := &testContent{name: fmt.Sprintf("clone-%d", len(f.created)+1), session: session}
	f.created = append(f.created, c)
	return c, nil
}
