package overlay

import (
	"sync"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// ScrollLock is a reference-counted lock on the scrolling of one element,
// normally the document body. The element's original overflow value is
// captured on the first Lock and put back when the last holder unlocks.
type ScrollLock struct {
	mu     sync.Mutex
	target *dom.Element
	count  int
	saved  string
}

// NewScrollLock returns a lock over target.
func NewScrollLock(target *dom.Element) *ScrollLock {
	return &ScrollLock{target: target}
}

// Lock takes one reference.
func (l *ScrollLock) Lock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count == 0 {
		l.saved = l.target.Style(dom.StyleOverflow)
		l.target.SetStyle(dom.StyleOverflow, "hidden")
	}
	l.count++
}

// Unlock releases one reference. Extra calls are ignored.
func (l *ScrollLock) Unlock() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.count == 0 {
		return
	}
	l.count--
	if l.count == 0 {
		l.target.SetStyle(dom.StyleOverflow, l.saved)
		l.saved = ""
	}
}

// Count reports the number of outstanding references.
func (l *ScrollLock) Count() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.count
}

// Locked reports whether any reference is held.
func (l *ScrollLock) Locked() bool { return l.Count() > 0 }
