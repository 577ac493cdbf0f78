package components

import (
	"sync/atomic"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

// Surface is an overlay a host composites above its page.
type Surface interface {
	// IsOpen reports whether the surface currently renders anything.
	IsOpen() bool
	// Portal reports whether the surface lives in the document layer rather
	// than in place.
	Portal() bool
	// Order is the opening sequence number; later surfaces draw on top.
	Order() uint64
	// View lays the surface out for ctx and returns its rendering and the
	// viewport cell of its top-left corner. An empty string means there is
	// nothing to draw yet.
	View(ctx RenderContext) (string, dom.Point)
}

var openSequence atomic.Uint64

func nextOrder() uint64 { return openSequence.Add(1) }
