package components

import (
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/overlay"
)

// Dialog is a centered modal surface. It traps focus while open, closes on
// Escape and backdrop clicks, and hands focus back to whatever held it
// before opening.
//
// Dialogs do not join the overlay stack: every open Dialog answers Escape.
type Dialog struct {
	*modal
}

// NewDialog creates a closed dialog rendering children below its header.
func NewDialog(env *overlay.Env, props ModalProps, children ...*dom.Element) *Dialog {
	d := &Dialog{}
	d.modal = newModal(env, "dialog", props, false, children)
	d.content = func(m *modal) []*dom.Element {
		return append(m.header(), Column(m.children...))
	}
	return d
}

// View renders the dialog centered in the viewport.
func (d *Dialog) View(ctx RenderContext) (string, dom.Point) {
	vp := ctx.Viewport
	width := min(ctx.Theme.Overlay.DialogWidth, max(vp.Width-2, 1))
	return d.view(ctx, width, 0, func(size dom.Size) dom.Point {
		return dom.Point{
			Top:  max((vp.Height-size.Height)/2, 0),
			Left: max((vp.Width-size.Width)/2, 0),
		}
	})
}

var _ Surface = (*Dialog)(nil)
