package overlay

import (
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/focus"
)

// ModalOptions describes one modal surface for MountModal.
type ModalOptions struct {
	Handle    Handle
	Container *dom.Element
	// Backdrop receives overlay clicks; nil disables overlay dismissal.
	Backdrop     *dom.Element
	InitialFocus *dom.Element

	CloseOnEsc     bool
	CloseOnOverlay bool
	// Stacked surfaces register with the Stack and only answer Escape while
	// topmost and no later layer answers it.
	Stacked    bool
	LockScroll bool

	OnClose func()
}

// MountModal performs the open-side effects of a modal surface in order:
// register (stack and layers), capture focus, move focus, lock scroll, attach the keydown
// listener and attach the backdrop click handler. The returned func undoes
// them in order: listeners, registrations, scroll lock, focus restoration.
func (e *Env) MountModal(opts ModalOptions) (teardown func()) {
	log := e.Log.With("overlay", opts.Handle.String())
	onClose := opts.OnClose
	if onClose == nil {
		onClose = func() {}
	}

	if opts.Stacked {
		e.Stack.Register(opts.Handle)
	}
	e.Layers.Enter(opts.Handle, LayerOptions{ClosesOnEsc: opts.CloseOnEsc, TrapsFocus: true})

	snapshot := focus.Capture(e.Doc)
	focus.MoveInitial(opts.Container, opts.InitialFocus)

	if opts.LockScroll {
		e.ScrollLock.Lock()
	}

	removeKeys := e.Doc.AddKeyListener(func(ev *dom.KeyEvent) {
		switch ev.Key {
		case dom.KeyEscape:
			if !opts.CloseOnEsc {
				return
			}
			if opts.Stacked && (!e.Stack.IsTopmost(opts.Handle) || e.Layers.EscapeCoveredAbove(opts.Handle)) {
				return
			}
			ev.StopImmediatePropagation()
			log.Debug("closing on escape")
			onClose()
		case dom.KeyTab:
			if e.Layers.OwnsTab(opts.Handle) {
				focus.Trap(opts.Container, ev)
			}
		}
	})

	removeClick := func() {}
	if opts.Backdrop != nil {
		backdrop := opts.Backdrop
		removeClick = backdrop.OnClick(func(ev *dom.MouseEvent) {
			if ev.Target != backdrop || !opts.CloseOnOverlay {
				return
			}
			log.Debug("closing on overlay click")
			onClose()
		})
	}

	log.Debug("modal mounted")

	return func() {
		removeKeys()
		removeClick()
		e.Layers.Leave(opts.Handle)
		if opts.Stacked {
			e.Stack.Unregister(opts.Handle)
		}
		if opts.LockScroll {
			e.ScrollLock.Unlock()
		}
		if err := snapshot.Restore(); err != nil {
			log.DebugErr(err, "focus restore skipped")
		}
		log.Debug("modal unmounted")
	}
}
