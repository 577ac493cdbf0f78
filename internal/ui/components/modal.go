package components

import (
	"github.com/alexisbeaulieu97/lattice/internal/logger"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/overlay"
)

// CloseLabel is the accessible name of the built-in close button.
const CloseLabel = "Close"

// ModalProps configures a Dialog or Drawer.
type ModalProps struct {
	Title       string
	Description string
	// AriaLabel names the surface when there is no Title.
	AriaLabel string

	CloseOnOverlayClick bool
	CloseOnEsc          bool
	ShowCloseButton     bool
	// Portal renders into the document layer. Otherwise the surface mounts
	// under Parent, or body when Parent is nil.
	Portal bool
	Parent *dom.Element
	// LockScroll locks body scrolling while a Dialog is open. Drawers always
	// lock.
	LockScroll bool

	InitialFocus *dom.Element
	// OnClose is called when the surface asks to be closed. The owner is
	// expected to call SetOpen(false).
	OnClose func()
}

// DefaultModalProps returns props with overlay click, Escape, the close
// button and portal rendering enabled.
func DefaultModalProps() ModalProps {
	return ModalProps{
		CloseOnOverlayClick: true,
		CloseOnEsc:          true,
		ShowCloseButton:     true,
		Portal:              true,
	}
}

// modal holds the lifecycle shared by Dialog and Drawer. The content func
// builds the container's children on every open.
type modal struct {
	env     *overlay.Env
	kind    string
	handle  overlay.Handle
	log     *logger.Logger
	props   ModalProps
	stacked bool
	lock    bool
	life    *overlay.Lifecycle
	order   uint64
	content func(m *modal) []*dom.Element

	children    []*dom.Element
	backdrop    *dom.Element
	container   *dom.Element
	closeButton *dom.Element
}

func newModal(env *overlay.Env, kind string, props ModalProps, stacked bool, children []*dom.Element) *modal {
	m := &modal{
		env:      env,
		kind:     kind,
		handle:   overlay.NewHandle(kind),
		props:    props,
		stacked:  stacked,
		lock:     stacked || props.LockScroll,
		children: children,
	}
	m.log = env.Log.WithFields(map[string]any{"overlay": m.handle.String(), "kind": kind})
	m.life = overlay.NewLifecycle(m.enter)
	return m
}

func (m *modal) titleID() string       { return m.handle.String() + "-title" }
func (m *modal) descriptionID() string { return m.handle.String() + "-description" }

func (m *modal) requestClose() {
	if m.props.OnClose != nil {
		m.props.OnClose()
	}
}

func (m *modal) enter() (exit func()) {
	m.order = nextOrder()

	m.container = dom.NewElement(dom.TagDiv,
		dom.WithID(m.handle.String()),
		dom.WithAttr(dom.AttrRole, "dialog"),
		dom.WithAttr(dom.AttrAriaModal, "true"),
		dom.WithAttr(dom.AttrTabIndex, "-1"),
	)
	switch {
	case m.props.Title != "":
		m.container.SetAttr(dom.AttrAriaLabelledBy, m.titleID())
	case m.props.AriaLabel != "":
		m.container.SetAttr(dom.AttrAriaLabel, m.props.AriaLabel)
	}
	if m.props.Description != "" {
		m.container.SetAttr(dom.AttrAriaDescribedBy, m.descriptionID())
	}
	if m.props.ShowCloseButton {
		m.closeButton = Button("x", m.requestClose)
		m.closeButton.SetAttr(dom.AttrAriaLabel, CloseLabel)
	}
	m.container.Append(m.content(m)...)

	m.backdrop = dom.NewElement(dom.TagDiv,
		dom.WithID(m.handle.String()+"-backdrop"),
		dom.WithAttr(dom.AttrOverlay, m.kind),
		dom.WithChildren(m.container),
	)
	m.mountPoint().Append(m.backdrop)

	teardown := m.env.MountModal(overlay.ModalOptions{
		Handle:         m.handle,
		Container:      m.container,
		Backdrop:       m.backdrop,
		InitialFocus:   m.props.InitialFocus,
		CloseOnEsc:     m.props.CloseOnEsc,
		CloseOnOverlay: m.props.CloseOnOverlayClick,
		Stacked:        m.stacked,
		LockScroll:     m.lock,
		OnClose:        m.requestClose,
	})
	m.log.Debug("opened")

	return func() {
		teardown()
		m.backdrop.Remove()
		m.backdrop, m.container, m.closeButton = nil, nil, nil
		m.log.Debug("closed")
	}
}

func (m *modal) mountPoint() *dom.Element {
	if m.props.Portal {
		return m.env.Doc.Layer()
	}
	if m.props.Parent != nil {
		return m.props.Parent
	}
	return m.env.Doc.Body()
}

// header builds the title row and the description paragraph.
func (m *modal) header() []*dom.Element {
	var out []*dom.Element
	var row []*dom.Element
	if m.props.Title != "" {
		row = append(row, dom.NewElement(dom.TagHeading,
			dom.WithID(m.titleID()),
			dom.WithText(m.props.Title),
		))
	}
	if m.closeButton != nil {
		row = append(row, m.closeButton)
	}
	if len(row) > 0 {
		out = append(out, Row(row...))
	}
	if m.props.Description != "" {
		out = append(out, dom.NewElement(dom.TagParagraph,
			dom.WithID(m.descriptionID()),
			dom.WithText(m.props.Description),
		))
	}
	return out
}

// view renders the open surface with the given outer size (height 0 fits
// the content) at the origin chosen by place.
func (m *modal) view(ctx RenderContext, width, height int, place func(dom.Size) dom.Point) (string, dom.Point) {
	if !m.life.IsOpen() || m.container == nil {
		return "", dom.Point{}
	}
	vp := ctx.Viewport
	m.backdrop.SetRect(dom.Rect{Width: vp.Width, Height: vp.Height})

	content := m.container.Children()
	_, size := renderFrame(ctx, content, dom.Point{}, width, height)
	origin := place(size)
	box, size := renderFrame(ctx, content, origin, width, height)
	m.container.SetRect(dom.RectAt(origin, size))
	return box, origin
}

func (m *modal) IsOpen() bool  { return m.life.IsOpen() }
func (m *modal) Portal() bool  { return m.props.Portal }
func (m *modal) Order() uint64 { return m.order }

// Handle returns the overlay's identifier.
func (m *modal) Handle() overlay.Handle { return m.handle }

// Container returns the element carrying the dialog role while open.
func (m *modal) Container() *dom.Element { return m.container }

// CloseButton returns the built-in close button while open.
func (m *modal) CloseButton() *dom.Element { return m.closeButton }

// Backdrop returns the element that receives overlay clicks while open.
func (m *modal) Backdrop() *dom.Element { return m.backdrop }

// SetOpen drives the open state. It reports whether the state changed.
func (m *modal) SetOpen(open bool) bool { return m.life.Set(open) }
