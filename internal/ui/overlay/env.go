package overlay

import (
	"github.com/alexisbeaulieu97/lattice/internal/logger"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// DefaultViewportPadding keeps anchored surfaces this many units away from
// the viewport edges. The value is the pixel-scale web default; terminal
// hosts normally pass WithViewportPadding(1), as the config layer does.
const DefaultViewportPadding = 8

// Env bundles the collaborators shared by every overlay on one document: the
// stacking registry, the layer order, the body scroll lock, the frame
// scheduler and the logger. Overlays only reach the registries and the lock
// through their methods.
type Env struct {
	Doc             *dom.Document
	Stack           *Stack
	Layers          *Layers
	ScrollLock      *ScrollLock
	Frames          dom.FrameScheduler
	Log             *logger.Logger
	ViewportPadding int
}

// EnvOption customises an Env.
type EnvOption func(*Env)

// WithFrames sets the frame scheduler used for deferred measurement.
func WithFrames(frames dom.FrameScheduler) EnvOption {
	return func(e *Env) { e.Frames = frames }
}

// WithLogger sets the logger.
func WithLogger(log *logger.Logger) EnvOption {
	return func(e *Env) { e.Log = log }
}

// WithViewportPadding overrides DefaultViewportPadding.
func WithViewportPadding(padding int) EnvOption {
	return func(e *Env) {
		if padding >= 0 {
			e.ViewportPadding = padding
		}
	}
}

// NewEnv creates the overlay environment for doc with an empty stack and an
// unlocked body.
func NewEnv(doc *dom.Document, opts ...EnvOption) *Env {
	env := &Env{
		Doc:             doc,
		Stack:           NewStack(),
		Layers:          NewLayers(),
		ScrollLock:      NewScrollLock(doc.Body()),
		ViewportPadding: DefaultViewportPadding,
	}
	for _, opt := range opts {
		opt(env)
	}
	if env.Frames == nil {
		env.Frames = dom.NewFrameQueue()
	}
	return env
}
