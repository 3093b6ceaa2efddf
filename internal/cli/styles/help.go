package styles

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
)

// KeyMap defines keybindings that can be rendered as help.
type KeyMap interface {
	ShortHelp() []key.Binding
	FullHelp() [][]key.Binding
}

// WorkbenchKeyMap defines keybindings for the split workbench.
type WorkbenchKeyMap struct {
	SplitHorizontal key.Binding
	SplitVertical   key.Binding
	SplitDefault    key.Binding
	ClosePane       key.Binding
	Left            key.Binding
	Right           key.Binding
	Up              key.Binding
	Down            key.Binding
	NewTab          key.Binding
	CloneTab        key.Binding
	CloseTab        key.Binding
	NextTab         key.Binding
	PrevTab         key.Binding
	Help            key.Binding
	Quit            key.Binding
}

// ShortHelp returns keybindings to show in compact help.
func (k WorkbenchKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.SplitHorizontal, k.SplitVertical, k.ClosePane, k.NewTab, k.Help, k.Quit}
}

// FullHelp returns keybindings for expanded help.
func (k WorkbenchKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.SplitHorizontal, k.SplitVertical, k.SplitDefault, k.ClosePane},
		{k.Left, k.Right, k.Up, k.Down},
		{k.NewTab, k.CloneTab, k.CloseTab, k.NextTab, k.PrevTab},
		{k.Help, k.Quit},
	}
}

// DefaultWorkbenchKeyMap returns the default workbench keybindings.
func DefaultWorkbenchKeyMap() WorkbenchKeyMap {
	return WorkbenchKeyMap{
		SplitHorizontal: key.NewBinding(
			key.WithKeys("|"),
			key.WithHelp("|", "split side by side"),
		),
		SplitVertical: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "split stacked"),
		),
		SplitDefault: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "split (default)"),
		),
		ClosePane: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "close pane"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "focus left"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "focus right"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "focus up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "focus down"),
		),
		NewTab: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "new tab"),
		),
		CloneTab: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "clone tab"),
		),
		CloseTab: key.NewBinding(
			key.WithKeys("X"),
			key.WithHelp("X", "close tab"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next tab"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("S-tab", "prev tab"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// NewStyledHelp creates a themed help model.
func NewStyledHelp(theme *Theme) help.Model {
	h := help.New()
	h.Styles.ShortKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.ShortDesc = lipgloss.NewStyle().Foreground(theme.Muted)
	h.Styles.ShortSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	h.Styles.FullKey = lipgloss.NewStyle().Foreground(theme.Accent)
	h.Styles.FullDesc = lipgloss.NewStyle().Foreground(theme.Text)
	h.Styles.FullSeparator = lipgloss.NewStyle().Foreground(theme.Border)
	return h
}
