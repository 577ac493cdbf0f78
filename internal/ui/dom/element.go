package dom

import (
	"errors"
	"slices"
)

// ErrDetached is returned when an operation needs a connected element.
var ErrDetached = errors.New("dom: element is not attached to a document")

// Tag names the kind of an element.
type Tag string

const (
	TagRoot      Tag = "html"
	TagBody      Tag = "body"
	TagDiv       Tag = "div"
	TagSpan      Tag = "span"
	TagHeading   Tag = "h2"
	TagParagraph Tag = "p"
	TagAnchor    Tag = "a"
	TagButton    Tag = "button"
	TagInput     Tag = "input"
	TagSelect    Tag = "select"
	TagTextarea  Tag = "textarea"
)

// Common attribute and style names.
const (
	AttrHref            = "href"
	AttrDisabled        = "disabled"
	AttrTabIndex        = "tabindex"
	AttrRole            = "role"
	AttrAriaHidden      = "aria-hidden"
	AttrAriaModal       = "aria-modal"
	AttrAriaLabel       = "aria-label"
	AttrAriaLabelledBy  = "aria-labelledby"
	AttrAriaDescribedBy = "aria-describedby"
	AttrSlot            = "data-slot"
	AttrOverlay         = "data-overlay"

	StyleOverflow   = "overflow"
	StyleVisibility = "visibility"
)

// MouseHandler receives click events bubbling through an element.
type MouseHandler func(*MouseEvent)

// Element is a node in a document tree.
type Element struct {
	tag      Tag
	id       string
	text     string
	attrs    map[string]string
	style    map[string]string
	parent   *Element
	children []*Element
	rect     Rect
	doc      *Document // set on the root element only
	clicks   listeners[MouseHandler]
}

// Option configures an element at construction time.
type Option func(*Element)

// WithID sets the element id.
func WithID(id string) Option {
	return func(e *Element) { e.id = id }
}

// WithText sets the element text.
func WithText(text string) Option {
	return func(e *Element) { e.text = text }
}

// WithAttr sets an attribute.
func WithAttr(name, value string) Option {
	return func(e *Element) { e.attrs[name] = value }
}

// WithChildren appends children.
func WithChildren(children ...*Element) Option {
	return func(e *Element) { e.Append(children...) }
}

// NewElement creates a detached element.
func NewElement(tag Tag, opts ...Option) *Element {
	e := &Element{
		tag:   tag,
		attrs: make(map[string]string),
		style: make(map[string]string),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

func (e *Element) Tag() Tag { return e.tag }
func (e *Element) ID() string { return e.id }
func (e *Element) SetID(id string) { e.id = id }
func (e *Element) Text() string { return e.text }
func (e *Element) SetText(t string) { e.text = t }

// Attr returns an attribute value and whether it is present.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// HasAttr reports whether the attribute is present, whatever its value.
func (e *Element) HasAttr(name string) bool {
	_, ok := e.attrs[name]
	return ok
}

func (e *Element) SetAttr(name, value string) { e.attrs[name] = value }
func (e *Element) RemoveAttr(name string) { delete(e.attrs, name) }

// Style returns an inline style property, or "" when unset.
func (e *Element) Style(prop string) string { return e.style[prop] }

// SetStyle sets an inline style property. An empty value clears it.
func (e *Element) SetStyle(prop, value string) {
	if value == "" {
		delete(e.style, prop)
		return
	}
	e.style[prop] = value
}

// Hidden reports whether the element is styled invisible.
func (e *Element) Hidden() bool { return e.style[StyleVisibility] == "hidden" }

func (e *Element) Parent() *Element { return e.parent }

// Children returns a copy of the child list.
func (e *Element) Children() []*Element { return slices.Clone(e.children) }

// Append adds children at the end, detaching them from any previous parent.
func (e *Element) Append(children ...*Element) {
	for _, c := range children {
		if c == nil || c == e {
			continue
		}
		c.Remove()
		c.parent = e
		e.children = append(e.children, c)
	}
}

// Remove detaches the element from its parent.
func (e *Element) Remove() {
	p := e.parent
	if p == nil {
		return
	}
	if i := slices.Index(p.children, e); i >= 0 {
		p.children = slices.Delete(p.children, i, i+1)
	}
	e.parent = nil
}

// Contains reports whether other is e or one of its descendants.
func (e *Element) Contains(other *Element) bool {
	for n := other; n != nil; n = n.parent {
		if n == e {
			return true
		}
	}
	return false
}

func (e *Element) root() *Element {
	n := e
	for n.parent != nil {
		n = n.parent
	}
	return n
}

// OwnerDocument returns the document the element is attached to, or nil.
func (e *Element) OwnerDocument() *Document {
	if e == nil {
		return nil
	}
	return e.root().doc
}

// IsConnected reports whether the element is attached to a document.
func (e *Element) IsConnected() bool { return e.OwnerDocument() != nil }

// Walk visits e and its descendants in document order. Returning false from
// fn skips the subtree of the visited element.
func (e *Element) Walk(fn func(*Element) bool) {
	if !fn(e) {
		return
	}
	for _, c := range slices.Clone(e.children) {
		c.Walk(fn)
	}
}

func (e *Element) Rect() Rect { return e.rect }
func (e *Element) SetRect(r Rect) { e.rect = r }
func (e *Element) ClearRect() { e.rect = Rect{} }
func (e *Element) Disabled() bool { return e.HasAttr(AttrDisabled) }
func (e *Element) SetDisabled(b bool) {
	if b {
		e.attrs[AttrDisabled] = ""
		return
	}
	delete(e.attrs, AttrDisabled)
}

// OnClick registers a click handler and returns its removal func.
func (e *Element) OnClick(fn MouseHandler) (remove func()) {
	return e.clicks.add(fn)
}

// Focus makes the element the document's active element.
func (e *Element) Focus() error {
	doc := e.OwnerDocument()
	if doc == nil {
		return ErrDetached
	}
	doc.active = e
	return nil
}

// Focused reports whether the element is the active element of its document.
func (e *Element) Focused() bool {
	doc := e.OwnerDocument()
	return doc != nil && doc.ActiveElement() == e
}
