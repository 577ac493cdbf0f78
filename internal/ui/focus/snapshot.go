package focus

import (
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// Snapshot remembers the element that was focused before an overlay opened.
type Snapshot struct {
	el *dom.Element
}

// Capture records the document's active element.
func Capture(doc *dom.Document) Snapshot {
	if doc == nil {
		return Snapshot{}
	}
	return Snapshot{el: doc.ActiveElement()}
}

// Element returns the captured element, if any.
func (s Snapshot) Element() *dom.Element { return s.el }

// Restore moves focus back to the captured element when it is still in the
// document. The snapshot is emptied either way. The returned error is
// informational; callers are expected to drop it.
func (s *Snapshot) Restore() error {
	el := s.el
	s.el = nil
	if el == nil {
		return nil
	}
	if !el.IsConnected() {
		return dom.ErrDetached
	}
	return el.Focus()
}

// MoveInitial focuses the first usable target in order: initial when it is
// still connected, the first focusable descendant of container, then the
// container itself. It returns the element that received focus.
func MoveInitial(container, initial *dom.Element) *dom.Element {
	candidates := []*dom.Element{initial, First(container), container}
	for _, el := range candidates {
		if el == nil || !el.IsConnected() {
			continue
		}
		if err := el.Focus(); err == nil {
			return el
		}
	}
	return nil
}
