package styles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/bnema/splitforest/internal/application/port"
	"github.com/bnema/splitforest/internal/ui/layout"
)

// PaneFrame is everything needed to draw one surface.
type PaneFrame struct {
	Surface     *layout.Surface
	Focused     port.Content
	ShowNodeIDs bool
	// Chrome draws borders around panes. Without it panes are drawn as bare
	// text blocks.
	Chrome bool
}

// box-drawing sets for unfocused and focused panes
type paneBorder struct {
	h, v           string
	tl, tr, bl, br string
}

var (
	thinBorder  = paneBorder{h: "─", v: "│", tl: "┌", tr: "┐", bl: "└", br: "┘"}
	thickBorder = paneBorder{h: "━", v: "┃", tl: "┏", tr: "┓", bl: "┗", br: "┛"}
)

// SurfaceRenderer draws the panes of a surface as text.
type SurfaceRenderer struct {
	theme *Theme
}

// NewSurfaceRenderer creates a renderer with the given theme.
func NewSurfaceRenderer(theme *Theme) *SurfaceRenderer {
	return &SurfaceRenderer{theme: theme}
}

// Render returns exactly height lines, each width cells wide. Leaves tile the
// surface, so every row is the concatenation of the panes crossing it.
func (r *SurfaceRenderer) Render(f PaneFrame) string {
	if f.Surface == nil {
		return ""
	}
	width, height := f.Surface.Size()
	if width <= 0 || height <= 0 {
		return ""
	}

	placements := f.Surface.Placements()
	if len(placements) == 0 {
		return r.renderEmpty(width, height)
	}
	sort.SliceStable(placements, func(i, j int) bool {
		return placements[i].Rect.X < placements[j].Rect.X
	})

	panes := make([][]string, len(placements))
	for i, p := range placements {
		panes[i] = r.renderPane(p, f)
	}

	rows := make([]string, height)
	for y := 0; y < height; y++ {
		var sb strings.Builder
		x := 0
		for i, p := range placements {
			if p.Rect.W <= 0 || y < p.Rect.Y || y >= p.Rect.Y+p.Rect.H {
				continue
			}
			if p.Rect.X > x {
				sb.WriteString(strings.Repeat(" ", p.Rect.X-x))
			}
			sb.WriteString(panes[i][y-p.Rect.Y])
			x = p.Rect.X + p.Rect.W
		}
		if x < width {
			sb.WriteString(strings.Repeat(" ", width-x))
		}
		rows[y] = sb.String()
	}
	return strings.Join(rows, "\n")
}

func (r *SurfaceRenderer) renderEmpty(width, height int) string {
	rows := make([]string, height)
	for y := range rows {
		rows[y] = strings.Repeat(" ", width)
	}
	hint := fit("no panes", width)
	rows[height/2] = r.theme.Subtle.Render(center(hint, width))
	return strings.Join(rows, "\n")
}

// renderPane returns rect.H lines of rect.W cells.
func (r *SurfaceRenderer) renderPane(p layout.Placement, f PaneFrame) []string {
	w, h := p.Rect.W, p.Rect.H
	focused := f.Focused != nil && p.Content == f.Focused
	body := r.paneBody(p, f, focused)

	lines := make([]string, h)
	if !f.Chrome || w < 2 || h < 2 {
		for i := range lines {
			text := ""
			if i < len(body) {
				text = body[i]
			}
			lines[i] = r.bodyStyle(focused).Render(pad(fit(text, w), w))
		}
		return lines
	}

	b, style := thinBorder, r.theme.PaneBorder
	if focused {
		b, style = thickBorder, r.theme.PaneBorderFocused
	}
	inner := w - 2

	title := fit(paneLabel(p.Content), max(inner-2, 0))
	var top string
	if title != "" {
		rest := inner - runewidth.StringWidth(title) - 2
		titleStyle := r.theme.PaneTitle
		if focused {
			titleStyle = r.theme.PaneTitleFocused
		}
		top = style.Render(b.tl+b.h) + titleStyle.Render(title) + style.Render(strings.Repeat(b.h, rest+1)+b.tr)
	} else {
		top = style.Render(b.tl + strings.Repeat(b.h, inner) + b.tr)
	}
	lines[0] = top

	for i := 1; i < h-1; i++ {
		text := ""
		if i-1 < len(body) {
			text = body[i-1]
		}
		lines[i] = style.Render(b.v) + r.bodyStyle(focused).Render(pad(fit(text, inner), inner)) + style.Render(b.v)
	}
	lines[h-1] = style.Render(b.bl + strings.Repeat(b.h, inner) + b.br)
	return lines
}

// paneBody lists the text lines shown inside a pane.
func (r *SurfaceRenderer) paneBody(p layout.Placement, f PaneFrame, focused bool) []string {
	var body []string
	if !f.Chrome {
		body = append(body, paneLabel(p.Content))
	}
	if p.Content != nil {
		body = append(body, "session "+p.Content.Session().Short())
	}
	if f.ShowNodeIDs {
		body = append(body, p.Leaf.String())
	}
	if focused {
		body = append(body, IconCursor+" focused")
	}
	return body
}

func (r *SurfaceRenderer) bodyStyle(focused bool) lipgloss.Style {
	if focused {
		return r.theme.PaneBody
	}
	return r.theme.Subtle
}

func paneLabel(content port.Content) string {
	switch c := content.(type) {
	case nil:
		return "empty"
	case fmt.Stringer:
		return c.String()
	default:
		return "session " + c.Session().Short()
	}
}

// fit truncates s to at most width cells.
func fit(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if runewidth.StringWidth(s) <= width {
		return s
	}
	if width == 1 {
		return runewidth.Truncate(s, width, "")
	}
	return runewidth.Truncate(s, width, "…")
}

// pad right-fills s with spaces up to width cells.
func pad(s string, width int) string {
	return runewidth.FillRight(s, width)
}

func center(s string, width int) string {
	left := (width - runewidth.StringWidth(s)) / 2
	if left < 0 {
		left = 0
	}
	return pad(strings.Repeat(" ", left)+s, width)
}
