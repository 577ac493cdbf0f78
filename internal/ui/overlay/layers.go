package overlay

import (
	"slices"
	"sync"
)

// LayerOptions describes how a mounted surface takes part in keyboard
// handling.
type LayerOptions struct {
	// ClosesOnEsc marks a surface that answers Escape.
	ClosesOnEsc bool
	// TrapsFocus marks a surface that keeps Tab inside itself.
	TrapsFocus bool
}

type layer struct {
	id   Handle
	opts LayerOptions
}

// Layers records every mounted surface in opening order, whether or not it
// joins the Stack. It decides which surface owns Tab and which ones a
// stacked surface must yield Escape to.
type Layers struct {
	mu      sync.Mutex
	entries []layer
}

// NewLayers returns an empty registry.
func NewLayers() *Layers {
	return &Layers{}
}

// Enter records id as the newest layer. Entering again moves it to the front.
func (l *Layers) Enter(id Handle, opts LayerOptions) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = slices.DeleteFunc(l.entries, func(e layer) bool { return e.id == id })
	l.entries = append(l.entries, layer{id: id, opts: opts})
}

// Leave removes id if present.
func (l *Layers) Leave(id Handle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = slices.DeleteFunc(l.entries, func(e layer) bool { return e.id == id })
}

// OwnsTab reports whether id is the newest layer that traps focus.
func (l *Layers) OwnsTab(id Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, e := range slices.Backward(l.entries) {
		if e.opts.TrapsFocus {
			return e.id == id
		}
	}
	return false
}

// EscapeCoveredAbove reports whether a layer opened after id answers Escape.
func (l *Layers) EscapeCoveredAbove(id Handle) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	i := slices.IndexFunc(l.entries, func(e layer) bool { return e.id == id })
	if i < 0 {
		return false
	}
	return slices.ContainsFunc(l.entries[i+1:], func(e layer) bool { return e.opts.ClosesOnEsc })
}

// Len reports how many layers are mounted.
func (l *Layers) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.entries)
}
