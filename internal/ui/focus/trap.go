package focus

import (
	"slices"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// Trap keeps Tab navigation inside container. It only intervenes at the
// edges: when focus is outside the focusable set it is pulled to the first
// (or last, with shift) item, and at either end it wraps around. Everything
// in between is left to native navigation. It reports whether the event was
// handled.
func Trap(container *dom.Element, ev *dom.KeyEvent) bool {
	if container == nil || ev == nil || ev.Key != dom.KeyTab {
		return false
	}

	items := Focusables(container)
	if len(items) == 0 {
		ev.PreventDefault()
		_ = container.Focus()
		return true
	}

	doc := container.OwnerDocument()
	if doc == nil {
		return false
	}

	first, last := items[0], items[len(items)-1]
	active := doc.ActiveElement()

	switch {
	case !slices.Contains(items, active):
		ev.PreventDefault()
		if ev.Shift {
			_ = last.Focus()
		} else {
			_ = first.Focus()
		}
	case ev.Shift && active == first:
		ev.PreventDefault()
		_ = last.Focus()
	case !ev.Shift && active == last:
		ev.PreventDefault()
		_ = first.Focus()
	default:
		return false
	}
	return true
}

// Advance performs native sequential navigation over the whole document,
// wrapping at both ends. It returns the newly focused element, or nil when
// nothing in the document is focusable.
func Advance(doc *dom.Document, shift bool) *dom.Element {
	items := Focusables(doc.Root())
	if len(items) == 0 {
		return nil
	}

	idx := slices.Index(items, doc.ActiveElement())
	var next int
	switch {
	case idx < 0 && shift:
		next = len(items) - 1
	case idx < 0:
		next = 0
	case shift:
		next = (idx - 1 + len(items)) % len(items)
	default:
		next = (idx + 1) % len(items)
	}

	target := items[next]
	if err := target.Focus(); err != nil {
		return nil
	}
	return target
}
