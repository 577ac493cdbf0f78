package components

import (
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// Button creates a button that calls onClick when clicked. A nil onClick
// leaves the button inert.
func Button(label string, onClick func()) *dom.Element {
	b := dom.NewElement(dom.TagButton, dom.WithText(label))
	if onClick != nil {
		b.OnClick(func(*dom.MouseEvent) { onClick() })
	}
	return b
}

// Link creates an anchor. Anchors are focusable only when href is set.
func Link(label, href string) *dom.Element {
	a := dom.NewElement(dom.TagAnchor, dom.WithText(label))
	if href != "" {
		a.SetAttr(dom.AttrHref, href)
	}
	return a
}

// TextInput creates a single-line input showing value.
func TextInput(value string) *dom.Element {
	return dom.NewElement(dom.TagInput, dom.WithText(value))
}

// Heading creates a section title.
func Heading(text string) *dom.Element {
	return dom.NewElement(dom.TagHeading, dom.WithText(text))
}

// Paragraph creates a block of body text that wraps to the available width.
func Paragraph(text string) *dom.Element {
	return dom.NewElement(dom.TagParagraph, dom.WithText(text))
}

// Column stacks children vertically.
func Column(children ...*dom.Element) *dom.Element {
	return dom.NewElement(dom.TagDiv, dom.WithChildren(children...))
}

// Row places children side by side.
func Row(children ...*dom.Element) *dom.Element {
	r := dom.NewElement(dom.TagDiv, dom.WithChildren(children...))
	r.SetStyle(StyleDirection, "row")
	return r
}

// Ref is a late-bound element reference. Overlays read it on every use, so
// it may be set after the overlay is created.
type Ref struct {
	el *dom.Element
}

// NewRef returns a Ref pointing at el, which may be nil.
func NewRef(el *dom.Element) *Ref { return &Ref{el: el} }

// Set points the reference at el.
func (r *Ref) Set(el *dom.Element) { r.el = el }

// Get returns the referenced element. A nil Ref yields nil.
func (r *Ref) Get() *dom.Element {
	if r == nil {
		return nil
	}
	return r.el
}
