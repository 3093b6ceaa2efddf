package coordinator_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/logging"
	"github.com/bnema/splitforest/internal/ui/coordinator"
)

func testContext() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

func newWorkbench(t *testing.T, mutate ...func(*config.WorkspaceConfig)) *coordinator.Workbench {
	t.Helper()
	settings := config.DefaultConfig().Workspace
	for _, m := range mutate {
		m(&settings)
	}
	return coordinator.NewDefaultWorkbench(testContext(), settings, 80, 25)
}

func leafCount(t *testing.T, wb *coordinator.Workbench) int {
	t.Helper()
	tab, ok := wb.ActiveTab()
	require.True(t, ok)
	root, ok := wb.Root(tab)
	require.True(t, ok)
	leaves, err := wb.Forest().Leaves(root)
	require.NoError(t, err)
	return len(leaves)
}

func TestWorkbench_NewTab(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)

	tab, err := wb.NewTab(ctx, "")
	require.NoError(t, err)

	assert.Equal(t, "tab-1", tab.ID)
	assert.Equal(t, "shell", tab.Title)
	assert.Equal(t, 0, wb.ActiveIndex())
	assert.Equal(t, 1, leafCount(t, wb))
	assert.False(t, tab.Surface.SplitsVisible())
	assert.Equal(t, entity.Point{X: 0, Y: coordinator.TabBarHeight}, tab.Surface.Origin())
	w, h := tab.Surface.Size()
	assert.Equal(t, 80, w)
	assert.Equal(t, 24, h)

	focused, ok := wb.FocusedContent(tab)
	require.True(t, ok)
	leaf, err := wb.ActiveLeaf()
	require.NoError(t, err)
	content, ok := wb.Forest().ContentOf(leaf)
	require.True(t, ok)
	assert.Same(t, content, focused)
	assert.Len(t, wb.Views().Sessions(), 1)
}

func TestWorkbench_SplitThenCloseRestoresSinglePane(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	tab, err := wb.NewTab(ctx, "work")
	require.NoError(t, err)
	original, err := wb.ActiveLeaf()
	require.NoError(t, err)
	originalContent, _ := wb.Forest().ContentOf(original)

	out, err := wb.SplitActive(ctx, entity.OrientationHorizontal)
	require.NoError(t, err)
	assert.Equal(t, 2, leafCount(t, wb))
	assert.True(t, tab.Surface.SplitsVisible())

	active, err := wb.ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, out.Second, active)
	moved, _ := wb.Forest().ContentOf(out.First)
	assert.Same(t, originalContent, moved)

	require.NoError(t, wb.CloseActive(ctx))

	assert.Equal(t, 1, leafCount(t, wb))
	assert.Equal(t, 1, tab.Surface.SlotCount())
	assert.False(t, tab.Surface.SplitsVisible())
	active, err = wb.ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, out.First, active)
	rect, ok := tab.Surface.Rect(out.First)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{W: 80, H: 24}, rect)
	require.NoError(t, wb.Validate())
}

func TestWorkbench_SplitUsesDefaultOrientation(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t, func(c *config.WorkspaceConfig) {
		c.DefaultOrientation = config.SplitVertical
	})
	tab, err := wb.NewTab(ctx, "")
	require.NoError(t, err)

	out, err := wb.SplitActive(ctx, entity.OrientationNone)
	require.NoError(t, err)

	root, ok := wb.Root(tab)
	require.True(t, ok)
	assert.Equal(t, entity.OrientationVertical, wb.Forest().OrientationOf(root))
	rect, ok := tab.Surface.Rect(out.Second)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 0, Y: 12, W: 80, H: 12}, rect)
}

func TestWorkbench_SplitSessionSharing(t *testing.T) {
	tests := []struct {
		name     string
		share    bool
		sessions int
	}{
		{name: "new session per pane", share: false, sessions: 2},
		{name: "shared session", share: true, sessions: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			wb := newWorkbench(t, func(c *config.WorkspaceConfig) { c.ShareSessionOnSplit = tt.share })
			_, err := wb.NewTab(ctx, "")
			require.NoError(t, err)

			out, err := wb.SplitActive(ctx, entity.OrientationHorizontal)
			require.NoError(t, err)

			first, _ := wb.Forest().ContentOf(out.First)
			second, _ := wb.Forest().ContentOf(out.Second)
			assert.Equal(t, tt.share, first.Session() == second.Session())
			assert.Len(t, wb.Views().Sessions(), tt.sessions)
		})
	}
}

// grid builds a 2x2 layout and returns the leaves tl, tr, bl, br.
func grid(t *testing.T, wb *coordinator.Workbench) [4]entity.NodeID {
	t.Helper()
	ctx := testContext()
	_, err := wb.NewTab(ctx, "grid")
	require.NoError(t, err)

	_, err = wb.SplitActive(ctx, entity.OrientationHorizontal)
	require.NoError(t, err)
	right, err := wb.SplitActive(ctx, entity.OrientationVertical)
	require.NoError(t, err)
	_, err = wb.FocusAt(ctx, 1, 2)
	require.NoError(t, err)
	left, err := wb.SplitActive(ctx, entity.OrientationVertical)
	require.NoError(t, err)

	return [4]entity.NodeID{left.First, right.First, left.Second, right.Second}
}

func TestWorkbench_MoveFocus(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	g := grid(t, wb)
	tl, tr, bl, br := g[0], g[1], g[2], g[3]

	active, err := wb.ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, bl, active)

	steps := []struct {
		dir   entity.Direction
		moved bool
		want  entity.NodeID
	}{
		{entity.DirectionRight, true, br},
		{entity.DirectionUp, true, tr},
		{entity.DirectionUp, false, tr},
		{entity.DirectionLeft, true, tl},
		{entity.DirectionDown, true, bl},
	}
	for _, step := range steps {
		moved, err := wb.MoveFocus(ctx, step.dir)
		require.NoError(t, err)
		assert.Equal(t, step.moved, moved, "move %s", step.dir)
		active, err := wb.ActiveLeaf()
		require.NoError(t, err)
		assert.Equal(t, step.want, active, "after %s", step.dir)
	}
}

func TestWorkbench_FocusAt(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	_, err := wb.NewTab(ctx, "")
	require.NoError(t, err)
	out, err := wb.SplitActive(ctx, entity.OrientationHorizontal)
	require.NoError(t, err)

	ok, err := wb.FocusAt(ctx, 5, 5)
	require.NoError(t, err)
	assert.True(t, ok)
	active, err := wb.ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, out.First, active)

	// The tab bar row holds no pane.
	ok, err = wb.FocusAt(ctx, 50, 0)
	require.NoError(t, err)
	assert.False(t, ok)
	active, err = wb.ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, out.First, active)

	ok, err = wb.FocusAt(ctx, 50, 10)
	require.NoError(t, err)
	assert.True(t, ok)
	active, err = wb.ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, out.Second, active)
}

func TestWorkbench_CloneActiveTab(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	grid(t, wb)
	source, _ := wb.ActiveTab()

	clone, err := wb.CloneActiveTab(ctx)
	require.NoError(t, err)

	assert.Len(t, wb.Tabs(), 2)
	assert.Equal(t, 1, wb.ActiveIndex())
	assert.Equal(t, source.Title, clone.Title)
	assert.Equal(t, 4, leafCount(t, wb))

	srcPlacements := source.Surface.Placements()
	clonePlacements := clone.Surface.Placements()
	require.Len(t, clonePlacements, len(srcPlacements))
	for i := range srcPlacements {
		assert.Equal(t, srcPlacements[i].Rect, clonePlacements[i].Rect)
		assert.NotSame(t, srcPlacements[i].Content, clonePlacements[i].Content)
		assert.Equal(t, srcPlacements[i].Content.Session(), clonePlacements[i].Content.Session())
		assert.Equal(t, 2, wb.Views().SessionViews(srcPlacements[i].Content.Session()))
	}
	require.NoError(t, wb.Validate())
}

func TestWorkbench_CloseTabEndsSessions(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	grid(t, wb)
	_, err := wb.NewTab(ctx, "other")
	require.NoError(t, err)
	require.NoError(t, wb.SelectTab(0))

	require.NoError(t, wb.CloseActiveTab(ctx))

	require.Len(t, wb.Tabs(), 1)
	assert.Equal(t, "other", wb.Tabs()[0].Title)
	assert.Equal(t, 0, wb.ActiveIndex())
	assert.Len(t, wb.Views().Sessions(), 1)
	assert.Equal(t, 1, wb.Forest().TreeCount())
}

func TestWorkbench_ClosingLastPaneClosesTab(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	_, err := wb.NewTab(ctx, "")
	require.NoError(t, err)

	require.NoError(t, wb.CloseActive(ctx))

	assert.Empty(t, wb.Tabs())
	assert.Equal(t, -1, wb.ActiveIndex())
	_, ok := wb.ActiveTab()
	assert.False(t, ok)
	assert.Empty(t, wb.Views().Sessions())
	assert.Equal(t, 0, wb.Forest().TreeCount())
}

func TestWorkbench_TabCycling(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	for _, title := range []string{"a", "b", "c"} {
		_, err := wb.NewTab(ctx, title)
		require.NoError(t, err)
	}
	assert.Equal(t, 2, wb.ActiveIndex())

	wb.NextTab()
	assert.Equal(t, 0, wb.ActiveIndex())
	wb.PrevTab()
	assert.Equal(t, 2, wb.ActiveIndex())
	wb.PrevTab()
	assert.Equal(t, 1, wb.ActiveIndex())

	require.Error(t, wb.SelectTab(3))
	require.NoError(t, wb.SelectTab(0))
	assert.Equal(t, 0, wb.ActiveIndex())
}

func TestWorkbench_ResizeKeepsProportions(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	tab, err := wb.NewTab(ctx, "")
	require.NoError(t, err)
	out, err := wb.SplitActive(ctx, entity.OrientationHorizontal)
	require.NoError(t, err)

	wb.Resize(ctx, 120, 41)

	w, h := wb.Size()
	assert.Equal(t, 120, w)
	assert.Equal(t, 41, h)
	rect, ok := tab.Surface.Rect(out.Second)
	require.True(t, ok)
	assert.Equal(t, entity.Rect{X: 60, Y: 0, W: 60, H: 40}, rect)
}

func TestWorkbench_StateChangedCallback(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	calls := 0
	wb.SetOnStateChanged(func() { calls++ })

	_, err := wb.NewTab(ctx, "")
	require.NoError(t, err)
	_, err = wb.SplitActive(ctx, entity.OrientationHorizontal)
	require.NoError(t, err)
	moved, err := wb.MoveFocus(ctx, entity.DirectionRight)
	require.NoError(t, err)
	assert.False(t, moved)

	assert.Equal(t, 2, calls)
}

func TestWorkbench_Shutdown(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	grid(t, wb)
	_, err := wb.CloneActiveTab(ctx)
	require.NoError(t, err)
	_, err = wb.NewTab(ctx, "")
	require.NoError(t, err)

	require.NoError(t, wb.Shutdown(ctx))

	assert.Empty(t, wb.Tabs())
	assert.Empty(t, wb.Views().Sessions())
	assert.Equal(t, 0, wb.Forest().TreeCount())
}

func TestWorkbench_IntentsWithoutTab(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)

	_, err := wb.SplitActive(ctx, entity.OrientationHorizontal)
	require.ErrorIs(t, err, coordinator.ErrNoActiveTab)
	require.ErrorIs(t, wb.CloseActive(ctx), coordinator.ErrNoActiveTab)
	_, err = wb.MoveFocus(ctx, entity.DirectionLeft)
	require.ErrorIs(t, err, coordinator.ErrNoActiveTab)
	_, err = wb.FocusAt(ctx, 1, 1)
	require.ErrorIs(t, err, coordinator.ErrNoActiveTab)
	_, err = wb.CloneActiveTab(ctx)
	require.ErrorIs(t, err, coordinator.ErrNoActiveTab)
	require.ErrorIs(t, wb.CloseActiveTab(ctx), coordinator.ErrNoActiveTab)
	require.Error(t, wb.CloseTab(ctx, 0))
	_, err = wb.ActiveLeaf()
	require.ErrorIs(t, err, coordinator.ErrNoActiveTab)

	wb.NextTab()
	wb.PrevTab()
	require.NoError(t, wb.Shutdown(ctx))
}

func TestWorkbench_SplitFailureReleasesView(t *testing.T) {
	ctx := testContext()
	wb := newWorkbench(t)
	_, err := wb.NewTab(ctx, "")
	require.NoError(t, err)

	_, err = wb.SplitActive(ctx, entity.Orientation(42))
	require.Error(t, err)
	assert.Equal(t, 1, leafCount(t, wb))
	assert.Len(t, wb.Views().Sessions(), 1)
}
