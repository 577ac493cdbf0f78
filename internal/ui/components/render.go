package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// StyleDirection selects how a container lays out its children. The value
// "row" places them side by side; anything else stacks them.
const StyleDirection = "flex-direction"

const rowGap = 1

// RenderContext provides the theme and viewport to components during rendering.
type RenderContext struct {
	Theme    Theme
	Viewport dom.Size
}

// NewRenderContext returns a context for the given theme and viewport.
func NewRenderContext(theme Theme, viewport dom.Size) RenderContext {
	return RenderContext{Theme: theme, Viewport: viewport}
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// Layout renders children top to bottom starting at cell at, constrained to
// width columns, and records each element's rectangle so hit testing matches
// the output.
// Overlay subtrees are skipped; their surfaces lay them out.
func Layout(ctx RenderContext, children []*dom.Element, at dom.Point, width int) []string {
	var lines []string
	for _, child := range children {
		if child.HasAttr(dom.AttrOverlay) {
			continue
		}
		rows := layoutElement(ctx, child, dom.Point{Top: at.Top + len(lines), Left: at.Left}, width)
		lines = append(lines, rows...)
	}
	return lines
}

func layoutElement(ctx RenderContext, el *dom.Element, at dom.Point, width int) []string {
	if el.Hidden() || width <= 0 {
		clearRects(el)
		return nil
	}

	var lines []string
	children := el.Children()
	switch {
	case len(children) > 0 && el.Style(StyleDirection) == "row":
		lines = layoutRow(ctx, children, at, width)
	case len(children) > 0:
		lines = Layout(ctx, children, at, width)
	default:
		lines = renderLeaf(ctx, el, width)
	}

	el.SetRect(dom.Rect{Top: at.Top, Left: at.Left, Width: blockWidth(lines), Height: len(lines)})
	return lines
}

func layoutRow(ctx RenderContext, children []*dom.Element, at dom.Point, width int) []string {
	var blocks []string
	left := at.Left
	for _, child := range children {
		if child.HasAttr(dom.AttrOverlay) {
			continue
		}
		remaining := width - (left - at.Left)
		rows := layoutElement(ctx, child, dom.Point{Top: at.Top, Left: left}, remaining)
		if len(rows) == 0 {
			continue
		}
		if len(blocks) > 0 {
			blocks = append(blocks, strings.Repeat(" ", rowGap))
		}
		block := strings.Join(rows, "\n")
		blocks = append(blocks, block)
		left += lipgloss.Width(block) + rowGap
	}
	if len(blocks) == 0 {
		return nil
	}
	return strings.Split(lipgloss.JoinHorizontal(lipgloss.Top, blocks...), "\n")
}

func renderLeaf(ctx RenderContext, el *dom.Element, width int) []string {
	styles := ctx.Theme.Overlay
	text := el.Text()

	var out string
	switch el.Tag() {
	case dom.TagButton:
		style := styles.Button
		label := "[ " + text + " ]"
		switch {
		case el.Disabled():
			style = styles.ButtonDisabled
		case el.Focused():
			style = styles.ButtonFocused
			label = "[>" + text + "<]"
		}
		out = style.Render(label)
	case dom.TagAnchor:
		if el.Focused() {
			text = "> " + text
		}
		out = styles.Link.Render(text)
	case dom.TagInput, dom.TagSelect, dom.TagTextarea:
		style := styles.Input
		if el.Focused() {
			style = styles.InputFocused
		}
		out = style.Render("[" + text + "_]")
	case dom.TagHeading:
		out = ctx.Theme.Typography.Title.Render(text)
	case dom.TagParagraph:
		style := ctx.Theme.Typography.Body
		if ansi.StringWidth(text) > width {
			style = style.Width(width)
		}
		out = style.Render(text)
	default:
		if text == "" {
			return nil
		}
		out = ctx.Theme.Typography.Body.Render(text)
	}

	lines := strings.Split(out, "\n")
	for i, line := range lines {
		lines[i] = ansi.Truncate(line, width, "…")
	}
	return lines
}

// renderFrame lays content out inside the theme's bordered frame with its
// outer top-left corner at origin. A zero height sizes the frame to its
// content; a positive height clips or pads it.
func renderFrame(ctx RenderContext, content []*dom.Element, origin dom.Point, width, height int) (string, dom.Size) {
	py, px := ctx.Theme.SurfacePadding()
	inner := max(width-2-2*px, 1)
	at := dom.Point{Top: origin.Top + 1 + py, Left: origin.Left + 1 + px}

	lines := Layout(ctx, content, at, inner)
	style := ctx.Theme.Overlay.Frame.Padding(py, px).Width(inner + 2*px)
	if height > 0 {
		rows := max(height-2-2*py, 0)
		if len(lines) > rows {
			lines = lines[:rows]
			clip(content, at.Top+rows)
		}
		style = style.Height(rows + 2*py)
	}

	box := style.Render(strings.Join(lines, "\n"))
	return box, dom.Size{Width: lipgloss.Width(box), Height: lipgloss.Height(box)}
}

// naturalWidth returns the outer frame width needed for content, capped at limit.
func naturalWidth(ctx RenderContext, content []*dom.Element, limit int) int {
	_, px := ctx.Theme.SurfacePadding()
	chrome := 2 + 2*px
	lines := Layout(ctx, content, dom.Point{}, max(limit-chrome, 1))
	return min(blockWidth(lines)+chrome, limit)
}

func blockWidth(lines []string) int {
	w := 0
	for _, line := range lines {
		w = max(w, ansi.StringWidth(line))
	}
	return w
}

func clearRects(el *dom.Element) {
	el.Walk(func(n *dom.Element) bool {
		n.ClearRect()
		return true
	})
}

// clip drops the rectangles of anything laid out at or below row bottom.
func clip(content []*dom.Element, bottom int) {
	for _, el := range content {
		el.Walk(func(n *dom.Element) bool {
			if r := n.Rect(); !r.IsZero() && r.Top >= bottom {
				n.ClearRect()
			}
			return true
		})
	}
}
