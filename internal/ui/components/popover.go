package components

import (
	"github.com/alexisbeaulieu97/lattice/internal/logger"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/focus"
	"github.com/alexisbeaulieu97/lattice/internal/ui/overlay"
)

// DefaultPopoverOffset is the gap between anchor and popover. The value is
// the pixel-scale web default; in a terminal it is eight cells, so hosts
// usually set Offset explicitly (the config default is 1).
const DefaultPopoverOffset = 8

// PopoverProps configures a Popover.
type PopoverProps struct {
	// Anchor is the element the popover is positioned against. It may be
	// unset or detached while open; positioning is skipped until it resolves.
	Anchor    *Ref
	Placement overlay.Placement
	Offset    int

	CloseOnEsc          bool
	CloseOnOutsideClick bool
	// AutoFocus moves focus into the popover on open and restores it on close.
	AutoFocus bool
	TrapFocus bool

	Role      string
	AriaLabel string

	Portal bool
	Parent *dom.Element

	// Width and Height fix the outer size. Zero sizes to the content.
	Width  int
	Height int

	OnClose func()
}

// DefaultPopoverProps returns bottom-start popover props that close on
// Escape and outside clicks.
func DefaultPopoverProps() PopoverProps {
	return PopoverProps{
		Placement:           overlay.PlacementBottomStart,
		Offset:              DefaultPopoverOffset,
		CloseOnEsc:          true,
		CloseOnOutsideClick: true,
		Role:                "dialog",
		Portal:              true,
	}
}

// Popover is a non-modal surface positioned next to an anchor. It stays
// invisible until its first measurement and follows the anchor on window
// resize and scroll. Popovers never join the overlay stack.
type Popover struct {
	env      *overlay.Env
	handle   overlay.Handle
	log      *logger.Logger
	props    PopoverProps
	life     *overlay.Lifecycle
	order    uint64
	children []*dom.Element

	// theme of the most recent render; measurement between renders uses it.
	theme Theme

	container  *dom.Element
	positioner *overlay.Positioner
}

// NewPopover creates a closed popover.
func NewPopover(env *overlay.Env, props PopoverProps, children ...*dom.Element) *Popover {
	if props.Role == "" {
		props.Role = "dialog"
	}
	if !props.Placement.Valid() {
		props.Placement = overlay.PlacementBottomStart
	}
	p := &Popover{
		env:      env,
		handle:   overlay.NewHandle("popover"),
		props:    props,
		children: children,
		theme:    DefaultTheme(),
	}
	p.log = env.Log.WithFields(map[string]any{"overlay": p.handle.String(), "kind": "popover"})
	p.life = overlay.NewLifecycle(p.enter)
	return p
}

func (p *Popover) requestClose() {
	if p.props.OnClose != nil {
		p.props.OnClose()
	}
}

func (p *Popover) enter() (exit func()) {
	doc := p.env.Doc
	p.order = nextOrder()

	p.container = dom.NewElement(dom.TagDiv,
		dom.WithID(p.handle.String()),
		dom.WithAttr(dom.AttrRole, p.props.Role),
		dom.WithAttr(dom.AttrTabIndex, "-1"),
		dom.WithAttr(dom.AttrOverlay, "popover"),
		dom.WithChildren(p.children...),
	)
	if p.props.AriaLabel != "" {
		p.container.SetAttr(dom.AttrAriaLabel, p.props.AriaLabel)
	}
	p.mountPoint().Append(p.container)

	p.positioner = p.env.NewPositioner(overlay.PositionerOptions{
		Handle:    p.handle,
		Anchor:    p.props.Anchor.Get,
		Target:    p.container,
		Placement: p.props.Placement,
		Offset:    p.props.Offset,
		Measure:   p.measure,
	})
	p.positioner.Start()

	var snapshot *focus.Snapshot
	if p.props.AutoFocus {
		s := focus.Capture(doc)
		snapshot = &s
		focus.MoveInitial(p.container, nil)
	}

	p.env.Layers.Enter(p.handle, overlay.LayerOptions{
		ClosesOnEsc: p.props.CloseOnEsc,
		TrapsFocus:  p.props.TrapFocus,
	})
	removeKeys := doc.AddKeyListener(func(ev *dom.KeyEvent) {
		switch ev.Key {
		case dom.KeyEscape:
			if !p.props.CloseOnEsc {
				return
			}
			ev.StopPropagation()
			p.log.Debug("closing on escape")
			p.requestClose()
		case dom.KeyTab:
			if p.props.TrapFocus && p.env.Layers.OwnsTab(p.handle) {
				focus.Trap(p.container, ev)
			}
		}
	})

	removePointer := doc.AddPointerListener(func(ev *dom.MouseEvent) {
		if !p.props.CloseOnOutsideClick || p.container == nil {
			return
		}
		if p.container.Contains(ev.Target) {
			return
		}
		if anchor := p.props.Anchor.Get(); anchor != nil && anchor.Contains(ev.Target) {
			return
		}
		p.log.Debug("closing on outside click")
		p.requestClose()
	})

	p.log.Debug("opened")

	return func() {
		removeKeys()
		removePointer()
		p.env.Layers.Leave(p.handle)
		p.positioner.Stop()
		if snapshot != nil {
			if err := snapshot.Restore(); err != nil {
				p.log.DebugErr(err, "focus restore skipped")
			}
		}
		p.container.Remove()
		p.container, p.positioner = nil, nil
		p.log.Debug("closed")
	}
}

func (p *Popover) mountPoint() *dom.Element {
	if p.props.Portal {
		return p.env.Doc.Layer()
	}
	if p.props.Parent != nil {
		return p.props.Parent
	}
	return p.env.Doc.Body()
}

func (p *Popover) outerWidth(ctx RenderContext) int {
	if p.props.Width > 0 {
		return p.props.Width
	}
	limit := max(ctx.Viewport.Width-2*p.env.ViewportPadding, 1)
	return naturalWidth(ctx, p.container.Children(), limit)
}

func (p *Popover) measure() dom.Size {
	ctx := NewRenderContext(p.theme, p.env.Doc.Viewport())
	_, size := renderFrame(ctx, p.container.Children(), dom.Point{}, p.outerWidth(ctx), p.props.Height)
	return size
}

// SetOpen drives the open state. It reports whether the state changed.
func (p *Popover) SetOpen(open bool) bool { return p.life.Set(open) }

func (p *Popover) IsOpen() bool  { return p.life.IsOpen() }
func (p *Popover) Portal() bool  { return p.props.Portal }
func (p *Popover) Order() uint64 { return p.order }

// Handle returns the overlay's identifier.
func (p *Popover) Handle() overlay.Handle { return p.handle }

// Container returns the popover element while open.
func (p *Popover) Container() *dom.Element { return p.container }

// Placed reports whether the popover has been measured and positioned.
func (p *Popover) Placed() bool {
	return p.positioner != nil && p.positioner.Placed()
}

// Position returns the last computed top-left cell.
func (p *Popover) Position() dom.Point {
	if p.positioner == nil {
		return dom.Point{}
	}
	return p.positioner.Position()
}

// View renders the popover at its computed position. Nothing is drawn until
// the first measurement has succeeded.
func (p *Popover) View(ctx RenderContext) (string, dom.Point) {
	p.theme = ctx.Theme
	if !p.IsOpen() || !p.Placed() || p.container.Hidden() {
		return "", dom.Point{}
	}
	origin := p.positioner.Position()
	box, size := renderFrame(ctx, p.container.Children(), origin, p.outerWidth(ctx), p.props.Height)
	p.container.SetRect(dom.RectAt(origin, size))
	return box, origin
}

var _ Surface = (*Popover)(nil)
