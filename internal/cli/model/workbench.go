// Package model provides Bubble Tea models for CLI commands.
package model

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/splitforest/internal/cli/styles"
	"github.com/bnema/splitforest/internal/domain/entity"
	"github.com/bnema/splitforest/internal/infrastructure/config"
	"github.com/bnema/splitforest/internal/logging"
	"github.com/bnema/splitforest/internal/ui/coordinator"
)

// footerHeight is the number of rows below the surfaces (status or help).
const footerHeight = 1

// WorkbenchModel is the Bubble Tea model driving a coordinator.Workbench.
type WorkbenchModel struct {
	// UI components
	help     help.Model
	keys     styles.WorkbenchKeyMap
	confirm  *styles.ConfirmModel
	renderer *styles.SurfaceRenderer

	// State
	width, height int
	status        string
	statusIsError bool
	initialTitle  string
	appearance    config.AppearanceConfig

	// Dependencies
	ctx   context.Context
	wb    *coordinator.Workbench
	theme *styles.Theme
}

// WorkbenchModelConfig holds configuration for the workbench model.
type WorkbenchModelConfig struct {
	Workbench  *coordinator.Workbench
	Appearance config.AppearanceConfig
	// InitialTitle names the tab opened on start.
	InitialTitle string
}

// ConfigReloadedMsg carries a configuration reloaded from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// openInitialTabMsg is sent by Init when the workbench has no tab yet.
type openInitialTabMsg struct{}

// NewWorkbenchModel creates a new workbench model.
func NewWorkbenchModel(ctx context.Context, theme *styles.Theme, cfg WorkbenchModelConfig) WorkbenchModel {
	width, height := cfg.Workbench.Size()
	return WorkbenchModel{
		help:         styles.NewStyledHelp(theme),
		keys:         styles.DefaultWorkbenchKeyMap(),
		renderer:     styles.NewSurfaceRenderer(theme),
		width:        width,
		height:       height + footerHeight,
		initialTitle: cfg.InitialTitle,
		appearance:   cfg.Appearance,
		ctx:          logging.WithComponent(ctx, "tui"),
		wb:           cfg.Workbench,
		theme:        theme,
	}
}

// Workbench returns the driven workbench.
func (m WorkbenchModel) Workbench() *coordinator.Workbench {
	return m.wb
}

// Init implements tea.Model.
func (m WorkbenchModel) Init() tea.Cmd {
	if len(m.wb.Tabs()) > 0 {
		return nil
	}
	return func() tea.Msg { return openInitialTabMsg{} }
}

// Update implements tea.Model.
func (m WorkbenchModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if m.confirm != nil {
		if _, ok := msg.(tea.KeyMsg); ok {
			return m.handleConfirmModal(msg)
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.wb.Resize(m.ctx, msg.Width, max(msg.Height-footerHeight, 0))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		return m.handleMouseMsg(msg)

	case ConfigReloadedMsg:
		return m.applyConfig(msg.Config), nil

	case openInitialTabMsg:
		_, err := m.wb.NewTab(m.ctx, m.initialTitle)
		m.setResult(err, "")
		return m, nil
	}

	return m, nil
}

func (m WorkbenchModel) handleConfirmModal(msg tea.Msg) (tea.Model, tea.Cmd) {
	confirm, cmd := m.confirm.Update(msg)
	m.confirm = &confirm
	if !m.confirm.Done() {
		return m, cmd
	}

	yes := m.confirm.Result()
	m.confirm = nil
	if !yes {
		m.setStatus("kept tab open", false)
		return m, cmd
	}
	return m.closeActiveTab()
}

func (m WorkbenchModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.SplitHorizontal):
		return m.split(entity.OrientationHorizontal), nil

	case key.Matches(msg, m.keys.SplitVertical):
		return m.split(entity.OrientationVertical), nil

	case key.Matches(msg, m.keys.SplitDefault):
		return m.split(entity.OrientationNone), nil

	case key.Matches(msg, m.keys.ClosePane):
		err := m.wb.CloseActive(m.ctx)
		m.setResult(err, "")
		return m, m.quitWhenEmpty()

	case key.Matches(msg, m.keys.Left):
		return m.moveFocus(entity.DirectionLeft), nil

	case key.Matches(msg, m.keys.Right):
		return m.moveFocus(entity.DirectionRight), nil

	case key.Matches(msg, m.keys.Up):
		return m.moveFocus(entity.DirectionUp), nil

	case key.Matches(msg, m.keys.Down):
		return m.moveFocus(entity.DirectionDown), nil

	case key.Matches(msg, m.keys.NewTab):
		_, err := m.wb.NewTab(m.ctx, "")
		m.setResult(err, "")
		return m, nil

	case key.Matches(msg, m.keys.CloneTab):
		tab, err := m.wb.CloneActiveTab(m.ctx)
		if err == nil {
			m.setStatus(fmt.Sprintf("cloned layout into %s", tab.ID), false)
		} else {
			m.setResult(err, "")
		}
		return m, nil

	case key.Matches(msg, m.keys.CloseTab):
		if panes := m.activePaneCount(); panes > 1 {
			confirm := styles.NewConfirm(m.theme, fmt.Sprintf("Close tab with %d panes?", panes))
			m.confirm = &confirm
			return m, nil
		}
		return m.closeActiveTab()

	case key.Matches(msg, m.keys.NextTab):
		m.wb.NextTab()
		return m, nil

	case key.Matches(msg, m.keys.PrevTab):
		m.wb.PrevTab()
		return m, nil
	}

	return m, nil
}

func (m WorkbenchModel) handleMouseMsg(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}

	if msg.Y < coordinator.TabBarHeight {
		if index, ok := m.tabBar().TabAt(msg.X); ok {
			m.setResult(m.wb.SelectTab(index), "")
		}
		return m, nil
	}

	_, err := m.wb.FocusAt(m.ctx, msg.X, msg.Y)
	m.setResult(err, "")
	return m, nil
}

func (m WorkbenchModel) split(orientation entity.Orientation) WorkbenchModel {
	_, err := m.wb.SplitActive(m.ctx, orientation)
	m.setResult(err, "")
	return m
}

func (m WorkbenchModel) moveFocus(direction entity.Direction) WorkbenchModel {
	moved, err := m.wb.MoveFocus(m.ctx, direction)
	switch {
	case err != nil:
		m.setResult(err, "")
	case !moved:
		m.setStatus(fmt.Sprintf("no pane %s", directionPhrase(direction)), false)
	}
	return m
}

func (m WorkbenchModel) closeActiveTab() (tea.Model, tea.Cmd) {
	err := m.wb.CloseActiveTab(m.ctx)
	m.setResult(err, "")
	return m, m.quitWhenEmpty()
}

func (m WorkbenchModel) quitWhenEmpty() tea.Cmd {
	if len(m.wb.Tabs()) == 0 {
		return tea.Quit
	}
	return nil
}

func (m WorkbenchModel) applyConfig(cfg *config.Config) WorkbenchModel {
	if cfg == nil {
		return m
	}
	m.wb.ApplySettings(cfg.Workspace)
	m.appearance = cfg.Appearance
	m.theme = styles.NewTheme(cfg)
	m.renderer = styles.NewSurfaceRenderer(m.theme)

	showAll := m.help.ShowAll
	m.help = styles.NewStyledHelp(m.theme)
	m.help.ShowAll = showAll
	m.help.Width = m.width

	logging.FromContext(m.ctx).Info().Msg("applied reloaded config")
	m.setStatus("config reloaded", false)
	return m
}

func (m *WorkbenchModel) setStatus(status string, isError bool) {
	m.status = status
	m.statusIsError = isError
}

// setResult shows err when set, otherwise okStatus.
func (m *WorkbenchModel) setResult(err error, okStatus string) {
	if err != nil {
		logging.FromContext(m.ctx).Warn().Err(err).Msg("workbench intent failed")
		m.setStatus(err.Error(), true)
		return
	}
	m.setStatus(okStatus, false)
}

func (m WorkbenchModel) activePaneCount() int {
	tab, ok := m.wb.ActiveTab()
	if !ok {
		return 0
	}
	return paneCount(m.wb, tab)
}

func (m WorkbenchModel) tabBar() styles.TabsModel {
	return tabBar(m.wb, m.theme, m.width)
}

// View implements tea.Model.
func (m WorkbenchModel) View() string {
	tab, ok := m.wb.ActiveTab()
	if !ok {
		return ""
	}
	_, surfaceHeight := tab.Surface.Size()

	var body string
	switch {
	case m.confirm != nil:
		body = lipgloss.Place(m.width, surfaceHeight, lipgloss.Center, lipgloss.Center, m.confirm.View())
	case m.help.ShowAll:
		body = lipgloss.Place(m.width, surfaceHeight, lipgloss.Center, lipgloss.Center,
			m.theme.Box.Render(m.help.View(m.keys)))
	default:
		body = renderSurface(m.wb, tab, m.renderer, m.appearance)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.tabBar().View(), body, m.footer())
}

func (m WorkbenchModel) footer() string {
	line := m.help.ShortHelpView(m.keys.ShortHelp())
	if m.status != "" {
		style := m.theme.StatusBar
		if m.statusIsError {
			style = m.theme.ErrorStyle
		}
		line = style.Render(m.status)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

func directionPhrase(d entity.Direction) string {
	switch d {
	case entity.DirectionLeft:
		return "to the left"
	case entity.DirectionRight:
		return "to the right"
	case entity.DirectionUp:
		return "above"
	default:
		return "below"
	}
}

// RenderScreen draws the tab bar and the active surface of wb without the
// interactive footer.
func RenderScreen(wb *coordinator.Workbench, theme *styles.Theme, appearance config.AppearanceConfig) string {
	tab, ok := wb.ActiveTab()
	if !ok {
		return ""
	}
	width, _ := wb.Size()
	surface := renderSurface(wb, tab, styles.NewSurfaceRenderer(theme), appearance)
	return lipgloss.JoinVertical(lipgloss.Left, tabBar(wb, theme, width).View(), surface)
}

func renderSurface(wb *coordinator.Workbench, tab *coordinator.Tab, r *styles.SurfaceRenderer, appearance config.AppearanceConfig) string {
	focused, _ := wb.FocusedContent(tab)
	return r.Render(styles.PaneFrame{
		Surface:     tab.Surface,
		Focused:     focused,
		ShowNodeIDs: appearance.ShowNodeIDs,
		Chrome:      tab.Surface.SplitsVisible() || !wb.Settings().HideSinglePaneChrome,
	})
}

func tabBar(wb *coordinator.Workbench, theme *styles.Theme, width int) styles.TabsModel {
	tabs := wb.Tabs()
	labels := make([]string, len(tabs))
	for i, tab := range tabs {
		labels[i] = fmt.Sprintf("%d %s", i+1, tab.Title)
		if n := paneCount(wb, tab); n > 1 {
			labels[i] = fmt.Sprintf("%s %s%d", labels[i], styles.IconPane, n)
		}
	}
	bar := styles.NewTabs(theme, labels...)
	bar.SetActive(wb.ActiveIndex())
	bar.Width = width
	return bar
}

func paneCount(wb *coordinator.Workbench, tab *coordinator.Tab) int {
	root, ok := wb.Root(tab)
	if !ok {
		return 0
	}
	leaves, err := wb.Forest().Leaves(root)
	if err != nil {
		return 0
	}
	return len(leaves)
}
