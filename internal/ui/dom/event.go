package dom

// Key names carried by KeyEvent.
const (
	KeyEscape = "Escape"
	KeyTab    = "Tab"
	KeyEnter  = "Enter"
)

// KeyEvent is a keyboard event dispatched through a Document.
type KeyEvent struct {
	Key   string
	Shift bool
	Ctrl  bool
	Alt   bool

	stopped   bool
	immediate bool
	prevented bool
}

// NewKeyEvent builds an event for key.
func NewKeyEvent(key string, shift bool) *KeyEvent {
	return &KeyEvent{Key: key, Shift: shift}
}

// StopPropagation keeps the event from reaching window-level listeners.
func (e *KeyEvent) StopPropagation() { e.stopped = true }

// StopImmediatePropagation also skips the remaining listeners at the current level.
func (e *KeyEvent) StopImmediatePropagation() {
	e.stopped = true
	e.immediate = true
}

// PreventDefault cancels the host's default action (native Tab navigation, Enter activation).
func (e *KeyEvent) PreventDefault() { e.prevented = true }

func (e *KeyEvent) DefaultPrevented() bool   { return e.prevented }
func (e *KeyEvent) PropagationStopped() bool { return e.stopped }

// MouseEvent is a pointer event targeting an element.
type MouseEvent struct {
	Target *Element

	stopped bool
}

// StopPropagation ends bubbling after the current element.
func (e *MouseEvent) StopPropagation() { e.stopped = true }

func (e *MouseEvent) PropagationStopped() bool { return e.stopped }

// listeners is an ordered listener list. Removed entries are skipped even
// when removal happens mid-dispatch.
type listeners[T any] struct {
	entries []*listenerEntry[T]
}

type listenerEntry[T any] struct {
	fn      T
	removed bool
}

func (l *listeners[T]) add(fn T) func() {
	entry := &listenerEntry[T]{fn: fn}
	l.entries = append(l.entries, entry)
	return func() {
		if entry.removed {
			return
		}
		entry.removed = true
		for i, e := range l.entries {
			if e == entry {
				l.entries = append(l.entries[:i:i], l.entries[i+1:]...)
				break
			}
		}
	}
}

func (l *listeners[T]) snapshot() []*listenerEntry[T] {
	out := make([]*listenerEntry[T], len(l.entries))
	copy(out, l.entries)
	return out
}

func (l *listeners[T]) len() int { return len(l.entries) }
