package overlay

import (
	"errors"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// ErrNoAnchor is reported when an anchored surface has nothing connected to
// measure against.
var ErrNoAnchor = errors.New("anchor is not attached")

// PositionerOptions configures a Positioner.
type PositionerOptions struct {
	Handle Handle
	// Anchor is read on every pass so a late-resolving anchor is picked up.
	Anchor    func() *dom.Element
	Target    *dom.Element
	Placement Placement
	Offset    int
	// Measure returns the target's own size.
	Measure func() dom.Size
}

// Positioner keeps an anchored surface placed next to its anchor. The
// first pass runs on the frame after Start; window resize and scroll
// schedule further passes, at most one per frame. Until a pass succeeds the
// target stays hidden.
type Positioner struct {
	env     *Env
	opts    PositionerOptions
	pos     dom.Point
	placed  bool
	cancel  func()
	removes []func()
}

// NewPositioner returns an idle positioner.
func (e *Env) NewPositioner(opts PositionerOptions) *Positioner {
	return &Positioner{env: e, opts: opts}
}

// Start hides the target, schedules the first measurement and subscribes to
// window resize and scroll.
func (p *Positioner) Start() {
	p.placed = false
	p.opts.Target.SetStyle(dom.StyleVisibility, "hidden")
	p.schedule()
	p.removes = append(p.removes,
		p.env.Doc.AddWindowListener(dom.WindowResize, p.schedule),
		p.env.Doc.AddWindowListener(dom.WindowScroll, p.schedule),
	)
}

// Stop cancels any pending frame and unsubscribes.
func (p *Positioner) Stop() {
	if p.cancel != nil {
		p.cancel()
		p.cancel = nil
	}
	for _, remove := range p.removes {
		remove()
	}
	p.removes = nil
	p.placed = false
}

// Placed reports whether a measurement has succeeded since Start.
func (p *Positioner) Placed() bool { return p.placed }

// Position returns the last computed position.
func (p *Positioner) Position() dom.Point { return p.pos }

func (p *Positioner) schedule() {
	if p.cancel != nil {
		return
	}
	p.cancel = p.env.Frames.RequestFrame(func() {
		p.cancel = nil
		if err := p.Update(); err != nil {
			p.env.Log.With("overlay", p.opts.Handle.String()).DebugErr(err, "positioning skipped")
		}
	})
}

// Update recomputes the position immediately.
func (p *Positioner) Update() error {
	var anchor *dom.Element
	if p.opts.Anchor != nil {
		anchor = p.opts.Anchor()
	}
	if anchor == nil || !anchor.IsConnected() {
		return ErrNoAnchor
	}

	size := p.opts.Measure()
	p.pos = Position(anchor.Rect(), size, p.opts.Placement, p.opts.Offset, p.env.Doc.Viewport(), p.env.ViewportPadding)
	p.opts.Target.SetRect(dom.RectAt(p.pos, size))
	p.opts.Target.SetStyle(dom.StyleVisibility, "")
	p.placed = true
	return nil
}
