package styles

import (
	"github.com/charmbracelet/lipgloss"
)

const tabGap = " "

// TabsModel represents a horizontal tab bar.
type TabsModel struct {
	Tabs   []string
	Active int
	Width  int
	theme  *Theme
}

// NewTabs creates a new tab bar with the given labels.
func NewTabs(theme *Theme, tabs ...string) TabsModel {
	return TabsModel{
		Tabs:   tabs,
		Active: 0,
		theme:  theme,
	}
}

// SetActive sets the active tab index.
func (m *TabsModel) SetActive(index int) {
	if index >= 0 && index < len(m.Tabs) {
		m.Active = index
	}
}

// Next moves to the next tab.
func (m *TabsModel) Next() {
	if len(m.Tabs) == 0 {
		return
	}
	m.Active = (m.Active + 1) % len(m.Tabs)
}

// Prev moves to the previous tab.
func (m *TabsModel) Prev() {
	if len(m.Tabs) == 0 {
		return
	}
	m.Active = (m.Active - 1 + len(m.Tabs)) % len(m.Tabs)
}

func (m TabsModel) renderTab(i int) string {
	style := m.theme.InactiveTab
	if i == m.Active {
		style = m.theme.ActiveTab
	}
	return style.Render(m.Tabs[i])
}

// View renders the tab bar on a single line. With Width set the bar is
// clipped or padded to exactly that many cells.
func (m TabsModel) View() string {
	tabs := make([]string, 0, len(m.Tabs))
	for i := range m.Tabs {
		tabs = append(tabs, m.renderTab(i))
	}
	gap := m.theme.TabBar.Render(tabGap)
	row := lipgloss.JoinHorizontal(lipgloss.Top, join(tabs, gap)...)

	if m.Width <= 0 {
		return row
	}
	row = lipgloss.NewStyle().MaxWidth(m.Width).Render(row)
	return m.theme.TabBar.Width(m.Width).Render(row)
}

// TabAt returns the index of the tab drawn at column x.
func (m TabsModel) TabAt(x int) (int, bool) {
	if x < 0 || (m.Width > 0 && x >= m.Width) {
		return -1, false
	}
	start := 0
	gap := lipgloss.Width(tabGap)
	for i := range m.Tabs {
		end := start + lipgloss.Width(m.renderTab(i))
		if x >= start && x < end {
			return i, true
		}
		start = end + gap
	}
	return -1, false
}

// join inserts a separator between items.
func join(items []string, sep string) []string {
	if len(items) == 0 {
		return items
	}
	result := make([]string, 0, len(items)*2-1)
	for i, item := range items {
		if i > 0 {
			result = append(result, sep)
		}
		result = append(result, item)
	}
	return result
}
