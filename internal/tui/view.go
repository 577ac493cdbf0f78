package tui

import (
	"cmp"
	"slices"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/alexisbeaulieu97/lattice/internal/ui/components"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// backdropped is implemented by modal surfaces.
type backdropped interface {
	Backdrop() *dom.Element
}

// View renders the page and help line, then draws every open surface on
// top: in-place surfaces first, portalled ones above them, each group in
// opening order. The page is dimmed under the first modal.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	canvas := strings.Split(m.page.View(), "\n")
	footer := ansi.Truncate(helpStyle.Render(m.help.View(m.keys)), m.page.Width, "")
	canvas = append(canvas, footer)

	dimmed := false
	for _, s := range m.drawOrder() {
		block, origin := s.View(m.ctx)
		if block == "" {
			continue
		}
		if b, ok := s.(backdropped); ok && b.Backdrop() != nil && !dimmed {
			dim(canvas)
			dimmed = true
		}
		canvas = place(canvas, block, origin)
	}
	return strings.Join(canvas, "\n")
}

// drawOrder returns the open surfaces in compositing order.
func (m Model) drawOrder() []components.Surface {
	open := make([]components.Surface, 0, len(m.surfaces))
	for _, s := range m.surfaces {
		if s.IsOpen() {
			open = append(open, s)
		}
	}
	slices.SortStableFunc(open, func(a, b components.Surface) int {
		if a.Portal() != b.Portal() {
			if a.Portal() {
				return 1
			}
			return -1
		}
		return cmp.Compare(a.Order(), b.Order())
	})
	return open
}

func dim(canvas []string) {
	for i, line := range canvas {
		canvas[i] = backdropStyle.Render(ansi.Strip(line))
	}
}

// place splices block into base with its top-left cell at origin. Rows and
// columns falling outside base are dropped.
func place(base []string, block string, origin dom.Point) []string {
	for i, row := range strings.Split(block, "\n") {
		y := origin.Top + i
		if y < 0 || y >= len(base) {
			continue
		}
		x := origin.Left
		if x < 0 {
			row = ansi.TruncateLeft(row, -x, "")
			x = 0
		}
		line := base[y]
		left := ansi.Truncate(line, x, "")
		if pad := x - ansi.StringWidth(left); pad > 0 {
			left += strings.Repeat(" ", pad)
		}
		right := ansi.TruncateLeft(line, x+ansi.StringWidth(row), "")
		base[y] = left + ansi.ResetStyle + row + ansi.ResetStyle + right
	}
	return base
}
