package components

import (
	"strings"

	"github.com/alexisbeaulieu97/lattice/internal/logger"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/overlay"
	"github.com/alexisbeaulieu97/lattice/pkg/errors"
)

// DrawerSide is the viewport edge a drawer is attached to.
type DrawerSide string

const (
	DrawerLeft   DrawerSide = "left"
	DrawerRight  DrawerSide = "right"
	DrawerTop    DrawerSide = "top"
	DrawerBottom DrawerSide = "bottom"
)

// ParseDrawerSide resolves a side name. The empty string selects DrawerRight.
func ParseDrawerSide(s string) (DrawerSide, error) {
	side := DrawerSide(strings.ToLower(strings.TrimSpace(s)))
	switch side {
	case "":
		return DrawerRight, nil
	case DrawerLeft, DrawerRight, DrawerTop, DrawerBottom:
		return side, nil
	default:
		return DrawerRight, errors.NewLookupError("drawer side", s, "left", "right", "top", "bottom")
	}
}

func (s DrawerSide) horizontal() bool { return s == DrawerTop || s == DrawerBottom }

// Default drawer extents, in cells, across the attached edge.
const (
	DefaultDrawerWidth  = 36
	DefaultDrawerHeight = 10
)

// Slot names recognised in drawer children.
const (
	SlotDrawerHeader = "drawer-header"
	SlotDrawerFooter = "drawer-footer"
)

// DrawerHeader wraps children for the drawer's header region.
func DrawerHeader(children ...*dom.Element) *dom.Element {
	return dom.NewElement(dom.TagDiv,
		dom.WithAttr(dom.AttrSlot, SlotDrawerHeader),
		dom.WithChildren(children...),
	)
}

// DrawerFooter wraps children for the drawer's footer region, laid out as a row.
func DrawerFooter(children ...*dom.Element) *dom.Element {
	f := Row(children...)
	f.SetAttr(dom.AttrSlot, SlotDrawerFooter)
	return f
}

// DrawerProps configures a Drawer.
type DrawerProps struct {
	ModalProps
	Side DrawerSide
	// Size is the drawer's extent away from its edge. Zero selects the default.
	Size int
	// Footer replaces any DrawerFooter found among the children.
	Footer *dom.Element
}

// DefaultDrawerProps returns right-side drawer props with the modal defaults.
func DefaultDrawerProps() DrawerProps {
	return DrawerProps{ModalProps: DefaultModalProps(), Side: DrawerRight}
}

// Drawer is an edge-anchored modal surface. Drawers join the overlay stack
// so that with several open only the most recent answers Escape, and every
// open drawer holds a scroll lock.
type Drawer struct {
	*modal
	side   DrawerSide
	size   int
	footer *dom.Element
}

// NewDrawer creates a closed drawer. Children may include one DrawerHeader
// and one DrawerFooter; everything else forms the body.
func NewDrawer(env *overlay.Env, props DrawerProps, children ...*dom.Element) *Drawer {
	d := &Drawer{side: props.Side, size: props.Size, footer: props.Footer}
	if d.side == "" {
		d.side = DrawerRight
	}
	d.modal = newModal(env, "drawer", props.ModalProps, true, children)
	d.content = d.compose
	return d
}

// Side returns the attached edge.
func (d *Drawer) Side() DrawerSide { return d.side }

func (d *Drawer) compose(m *modal) []*dom.Element {
	header, footer, body := splitSlots(m.children, m.log)
	if d.footer != nil {
		footer = d.footer
	}

	out := m.header()
	if header != nil {
		out = append(out, header)
	}
	out = append(out, Column(body...))
	if footer != nil {
		out = append(out, footer)
	}
	return out
}

// splitSlots separates the first header and footer slot from the body.
// Later slot duplicates are dropped.
func splitSlots(children []*dom.Element, log *logger.Logger) (header, footer *dom.Element, body []*dom.Element) {
	for _, child := range children {
		slot, _ := child.Attr(dom.AttrSlot)
		switch slot {
		case SlotDrawerHeader:
			if header != nil {
				log.Debug("dropping duplicate drawer header")
				continue
			}
			header = child
		case SlotDrawerFooter:
			if footer != nil {
				log.Debug("dropping duplicate drawer footer")
				continue
			}
			footer = child
		default:
			body = append(body, child)
		}
	}
	return header, footer, body
}

// View renders the drawer along its edge, spanning the other axis.
func (d *Drawer) View(ctx RenderContext) (string, dom.Point) {
	vp := ctx.Viewport
	width, height := vp.Width, vp.Height
	if d.side.horizontal() {
		height = min(d.extent(DefaultDrawerHeight), vp.Height)
	} else {
		width = min(d.extent(DefaultDrawerWidth), vp.Width)
	}

	return d.view(ctx, width, height, func(size dom.Size) dom.Point {
		switch d.side {
		case DrawerLeft, DrawerTop:
			return dom.Point{}
		case DrawerBottom:
			return dom.Point{Top: max(vp.Height-size.Height, 0)}
		default:
			return dom.Point{Left: max(vp.Width-size.Width, 0)}
		}
	})
}

func (d *Drawer) extent(fallback int) int {
	if d.size > 0 {
		return d.size
	}
	return fallback
}

var _ Surface = (*Drawer)(nil)
