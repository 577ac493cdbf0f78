// Package focus discovers keyboard-focusable elements and implements the
// focus trap, initial focus and focus restoration used by overlays.
package focus

import (
	"slices"
	"strconv"
	"strings"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// IsFocusable reports whether el takes part in sequential keyboard
// navigation: anchors with an href, enabled form controls and anything with
// a non-negative tabindex, unless marked aria-hidden.
func IsFocusable(el *dom.Element) bool {
	if el == nil || el.HasAttr(dom.AttrAriaHidden) {
		return false
	}

	switch el.Tag() {
	case dom.TagAnchor:
		if el.HasAttr(dom.AttrHref) {
			return true
		}
	case dom.TagButton, dom.TagInput, dom.TagSelect, dom.TagTextarea:
		if !el.Disabled() {
			return true
		}
	}

	raw, ok := el.Attr(dom.AttrTabIndex)
	if !ok {
		return false
	}
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	return err == nil && n >= 0
}

// Focusables returns the focusable descendants of container in document
// order. The container itself is never included.
func Focusables(container *dom.Element) []*dom.Element {
	if container == nil {
		return nil
	}

	var out []*dom.Element
	for _, child := range container.Children() {
		child.Walk(func(el *dom.Element) bool {
			if IsFocusable(el) {
				out = append(out, el)
			}
			return true
		})
	}
	return out
}

// First returns the first focusable descendant, or nil.
func First(container *dom.Element) *dom.Element {
	items := Focusables(container)
	if len(items) == 0 {
		return nil
	}
	return items[0]
}

// Last returns the last focusable descendant, or nil.
func Last(container *dom.Element) *dom.Element {
	items := Focusables(container)
	if len(items) == 0 {
		return nil
	}
	return items[len(items)-1]
}

// Within reports whether el is one of container's focusable descendants.
func Within(container, el *dom.Element) bool {
	return slices.Contains(Focusables(container), el)
}
