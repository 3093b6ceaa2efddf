package model

import (
	"context"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/splitforest/internal/cli/styles"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/ui/coordinator"
)

func newTestModel(t *testing.T) WorkbenchModel {
	t.Helper()
	ctx := context.Background()
	cfg := config.DefaultConfig()
	wb := coordinator.NewDefaultWorkbench(ctx, cfg.Workspace, 80, 24)
	m := NewWorkbenchModel(ctx, styles.NewTheme(cfg), WorkbenchModelConfig{
		Workbench:    wb,
		Appearance:   cfg.Appearance,
		InitialTitle: "main",
	})

	cmd := m.Init()
	require.NotNil(t, cmd)
	return update(t, m, cmd())
}

func update(t *testing.T, m WorkbenchModel, msg tea.Msg) WorkbenchModel {
	t.Helper()
	next, _ := m.Update(msg)
	out, ok := next.(WorkbenchModel)
	require.True(t, ok)
	return out
}

func press(t *testing.T, m WorkbenchModel, keys string) (WorkbenchModel, tea.Cmd) {
	t.Helper()
	var msg tea.KeyMsg
	switch keys {
	case "tab":
		msg = tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		msg = tea.KeyMsg{Type: tea.KeyShiftTab}
	case "left":
		msg = tea.KeyMsg{Type: tea.KeyLeft}
	default:
		msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(keys)}
	}
	next, cmd := m.Update(msg)
	out, ok := next.(WorkbenchModel)
	require.True(t, ok)
	return out, cmd
}

func panes(t *testing.T, m WorkbenchModel) int {
	t.Helper()
	tab, ok := m.Workbench().ActiveTab()
	require.True(t, ok)
	return paneCount(m.Workbench(), tab)
}

func isQuit(cmd tea.Cmd) bool {
	if cmd == nil {
		return false
	}
	_, ok := cmd().(tea.QuitMsg)
	return ok
}

func TestWorkbenchModel_InitOpensTab(t *testing.T) {
	m := newTestModel(t)

	tabs := m.Workbench().Tabs()
	require.Len(t, tabs, 1)
	assert.Equal(t, "main", tabs[0].Title)
	assert.Nil(t, m.Init(), "no initial tab once one is open")
}

func TestWorkbenchModel_SplitAndClose(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "|")
	assert.Equal(t, 2, panes(t, m))
	m, _ = press(t, m, "-")
	assert.Equal(t, 3, panes(t, m))
	m, _ = press(t, m, "s")
	assert.Equal(t, 4, panes(t, m))
	require.NoError(t, m.Workbench().Validate())

	var cmd tea.Cmd
	for want := 3; want >= 1; want-- {
		m, cmd = press(t, m, "x")
		assert.False(t, isQuit(cmd))
		assert.Equal(t, want, panes(t, m))
	}

	_, cmd = press(t, m, "x")
	assert.True(t, isQuit(cmd), "closing the last pane quits")
}

func TestWorkbenchModel_MoveFocus(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "|")
	right, err := m.Workbench().ActiveLeaf()
	require.NoError(t, err)

	m, _ = press(t, m, "h")
	left, err := m.Workbench().ActiveLeaf()
	require.NoError(t, err)
	assert.NotEqual(t, right, left)

	m, _ = press(t, m, "left")
	assert.Equal(t, "no pane to the left", m.status)
	assert.False(t, m.statusIsError)

	m, _ = press(t, m, "l")
	active, err := m.Workbench().ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, right, active)
	assert.Empty(t, m.status)
}

func TestWorkbenchModel_MouseClickFocusesPane(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "|")
	tab, _ := m.Workbench().ActiveTab()
	left, ok := tab.Surface.LeafAt(5, 5)
	require.True(t, ok)

	m = update(t, m, tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	active, err := m.Workbench().ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, left, active)

	// releases and other buttons are ignored
	m = update(t, m, tea.MouseMsg{X: 60, Y: 5, Button: tea.MouseButtonLeft, Action: tea.MouseActionRelease})
	m = update(t, m, tea.MouseMsg{X: 60, Y: 5, Button: tea.MouseButtonRight, Action: tea.MouseActionPress})
	active, err = m.Workbench().ActiveLeaf()
	require.NoError(t, err)
	assert.Equal(t, left, active)
}

func TestWorkbenchModel_TabKeys(t *testing.T) {
	m := newTestModel(t)

	m, _ = press(t, m, "t")
	require.Len(t, m.Workbench().Tabs(), 2)
	assert.Equal(t, 1, m.Workbench().ActiveIndex())

	m, _ = press(t, m, "tab")
	assert.Equal(t, 0, m.Workbench().ActiveIndex())
	m, _ = press(t, m, "shift+tab")
	assert.Equal(t, 1, m.Workbench().ActiveIndex())

	// clicking the first tab label selects it
	m = update(t, m, tea.MouseMsg{X: 1, Y: 0, Button: tea.MouseButtonLeft, Action: tea.MouseActionPress})
	assert.Equal(t, 0, m.Workbench().ActiveIndex())

	m, _ = press(t, m, "|")
	m, _ = press(t, m, "c")
	require.Len(t, m.Workbench().Tabs(), 3)
	assert.Equal(t, 1, m.Workbench().ActiveIndex())
	assert.Equal(t, 2, panes(t, m))
	assert.Contains(t, m.status, "cloned layout")
}

func TestWorkbenchModel_CloseTabAsksWhenSplit(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "t")
	m, _ = press(t, m, "|")

	m, _ = press(t, m, "X")
	require.NotNil(t, m.confirm)
	assert.Contains(t, m.View(), "Close tab with 2 panes?")

	m, _ = press(t, m, "n")
	assert.Nil(t, m.confirm)
	assert.Len(t, m.Workbench().Tabs(), 2)

	m, _ = press(t, m, "X")
	m, cmd := press(t, m, "y")
	assert.Nil(t, m.confirm)
	assert.Len(t, m.Workbench().Tabs(), 1)
	assert.False(t, isQuit(cmd))

	// a single pane tab closes without asking
	_, cmd = press(t, m, "X")
	assert.True(t, isQuit(cmd))
}

func TestWorkbenchModel_WindowResize(t *testing.T) {
	m := newTestModel(t)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})

	w, h := m.Workbench().Size()
	assert.Equal(t, 100, w)
	assert.Equal(t, 29, h)
	tab, _ := m.Workbench().ActiveTab()
	sw, sh := tab.Surface.Size()
	assert.Equal(t, 100, sw)
	assert.Equal(t, 28, sh)
}

func TestWorkbenchModel_ViewFillsScreen(t *testing.T) {
	m := newTestModel(t)
	m = update(t, m, tea.WindowSizeMsg{Width: 70, Height: 20})
	m, _ = press(t, m, "|")

	lines := strings.Split(m.View(), "\n")
	require.Len(t, lines, 20)
	for i, line := range lines[:19] {
		assert.Equal(t, 70, lipgloss.Width(line), "line %d", i)
	}
	assert.Contains(t, lines[0], "1 main")
	assert.Contains(t, lines[1], "main #1")
}

func TestWorkbenchModel_ConfigReload(t *testing.T) {
	m := newTestModel(t)
	cfg := config.DefaultConfig()
	cfg.Workspace.DefaultOrientation = config.SplitVertical
	cfg.Appearance.ShowNodeIDs = true

	m = update(t, m, ConfigReloadedMsg{Config: cfg})

	assert.Equal(t, config.SplitVertical, m.Workbench().Settings().DefaultOrientation)
	assert.True(t, m.appearance.ShowNodeIDs)
	assert.Equal(t, "config reloaded", m.status)

	m, _ = press(t, m, "s")
	tab, _ := m.Workbench().ActiveTab()
	root, ok := m.Workbench().Root(tab)
	require.True(t, ok)
	view, ok := tab.Surface.Node(root)
	require.True(t, ok)
	assert.Equal(t, entity.OrientationVertical, view.Orientation)

	leaf, err := m.Workbench().ActiveLeaf()
	require.NoError(t, err)
	assert.Contains(t, m.View(), leaf.String())
}

func TestWorkbenchModel_Quit(t *testing.T) {
	m := newTestModel(t)
	_, cmd := press(t, m, "q")
	assert.True(t, isQuit(cmd))
}

func TestRenderScreen(t *testing.T) {
	m := newTestModel(t)
	m, _ = press(t, m, "|")
	theme := styles.NewTheme(nil)

	lines := strings.Split(RenderScreen(m.Workbench(), theme, config.AppearanceConfig{}), "\n")

	require.Len(t, lines, 24)
	assert.Contains(t, lines[0], "1 main")
	assert.Contains(t, lines[1], "main #2")

	empty := coordinator.NewDefaultWorkbench(context.Background(), config.DefaultConfig().Workspace, 10, 5)
	assert.Empty(t, RenderScreen(empty, theme, config.AppearanceConfig{}))
}
