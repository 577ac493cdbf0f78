package dom

import "slices"

// KeyListener handles a key event.
type KeyListener func(*KeyEvent)

// WindowEvent names the window-level notifications a Document emits.
type WindowEvent int

const (
	WindowResize WindowEvent = iota
	WindowScroll
)

// Document is the root of an element tree together with focus state,
// event registration and viewport measurement.
//
// A Document is not safe for concurrent use; it is driven from a single UI
// loop in the same way a browser main thread drives its DOM.
type Document struct {
	root   *Element
	body   *Element
	layer  *Element
	active *Element

	viewport Size

	keys       listeners[KeyListener]
	windowKeys listeners[KeyListener]
	pointers   listeners[MouseHandler]
	resize     listeners[func()]
	scroll     listeners[func()]
}

// NewDocument creates an empty document with the given viewport.
func NewDocument(width, height int) *Document {
	d := &Document{viewport: Size{Width: width, Height: height}}
	d.root = NewElement(TagRoot)
	d.root.doc = d
	d.body = NewElement(TagBody)
	d.layer = NewElement(TagDiv, WithID("layer"))
	d.root.Append(d.body, d.layer)
	return d
}

// Root returns the document element.
func (d *Document) Root() *Element { return d.root }

// Body returns the body element, the default in-place mount point.
func (d *Document) Body() *Element { return d.body }

// Layer returns the top-level layer used as the portal target.
func (d *Document) Layer() *Element { return d.layer }

// ActiveElement returns the focused element, or body when the previously
// focused element was detached or nothing has focus.
func (d *Document) ActiveElement() *Element {
	if d.active == nil || d.active.OwnerDocument() != d {
		return d.body
	}
	return d.active
}

// Blur drops focus back to body.
func (d *Document) Blur() { d.active = nil }

// Viewport returns the current viewport size.
func (d *Document) Viewport() Size { return d.viewport }

// Resize updates the viewport and notifies resize listeners.
func (d *Document) Resize(width, height int) {
	d.viewport = Size{Width: width, Height: height}
	d.notify(&d.resize)
}

// Scroll notifies scroll listeners.
func (d *Document) Scroll() { d.notify(&d.scroll) }

func (d *Document) notify(l *listeners[func()]) {
	for _, e := range l.snapshot() {
		if !e.removed {
			e.fn()
		}
	}
}

// AddKeyListener registers a document-level keydown listener.
func (d *Document) AddKeyListener(fn KeyListener) (remove func()) {
	return d.keys.add(fn)
}

// AddWindowKeyListener registers a page-level keydown listener. These run
// after document listeners and only if propagation was not stopped.
func (d *Document) AddWindowKeyListener(fn KeyListener) (remove func()) {
	return d.windowKeys.add(fn)
}

// AddPointerListener registers a listener that sees every pointer press
// before click handlers run.
func (d *Document) AddPointerListener(fn MouseHandler) (remove func()) {
	return d.pointers.add(fn)
}

// AddWindowListener registers a resize or scroll listener.
func (d *Document) AddWindowListener(kind WindowEvent, fn func()) (remove func()) {
	if kind == WindowScroll {
		return d.scroll.add(fn)
	}
	return d.resize.add(fn)
}

// KeyListenerCount reports the number of document-level key listeners.
func (d *Document) KeyListenerCount() int { return d.keys.len() }

// PointerListenerCount reports the number of pointer listeners.
func (d *Document) PointerListenerCount() int { return d.pointers.len() }

// WindowListenerCount reports the number of resize plus scroll listeners.
func (d *Document) WindowListenerCount() int { return d.resize.len() + d.scroll.len() }

// DispatchKey delivers ev to document listeners, then window listeners.
func (d *Document) DispatchKey(ev *KeyEvent) *KeyEvent {
	dispatchKey(&d.keys, ev)
	if !ev.stopped {
		dispatchKey(&d.windowKeys, ev)
	}
	return ev
}

func dispatchKey(l *listeners[KeyListener], ev *KeyEvent) {
	for _, e := range l.snapshot() {
		if e.removed {
			continue
		}
		e.fn(ev)
		if ev.immediate {
			return
		}
	}
}

// Click runs pointer listeners and then bubbles a click from target to the root.
func (d *Document) Click(target *Element) *MouseEvent {
	ev := &MouseEvent{Target: target}
	for _, e := range d.pointers.snapshot() {
		if !e.removed {
			e.fn(ev)
		}
	}
	for n := target; n != nil && !ev.stopped; n = n.parent {
		for _, e := range n.clicks.snapshot() {
			if !e.removed {
				e.fn(ev)
			}
		}
	}
	return ev
}

// ElementAt returns the deepest visible element whose rectangle contains the
// cell at column x, row y. The layer is searched before body, and later
// siblings before earlier ones.
func (d *Document) ElementAt(x, y int) *Element {
	if hit := hitTest(d.layer, x, y); hit != nil {
		return hit
	}
	if hit := hitTest(d.body, x, y); hit != nil {
		return hit
	}
	return d.body
}

func hitTest(e *Element, x, y int) *Element {
	if e.Hidden() {
		return nil
	}
	for _, c := range slices.Backward(e.children) {
		if hit := hitTest(c, x, y); hit != nil {
			return hit
		}
	}
	if e.rect.Contains(x, y) {
		return e
	}
	return nil
}
