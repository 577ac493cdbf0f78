package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

func newPositionerFixture(t *testing.T) (*Env, *dom.FrameQueue, *dom.Element, *dom.Element) {
	t.Helper()

	frames := dom.NewFrameQueue()
	doc := dom.NewDocument(80, 24)
	env := NewEnv(doc, WithFrames(frames), WithViewportPadding(1))

	anchor := dom.NewElement(dom.TagButton)
	anchor.SetRect(dom.Rect{Top: 2, Left: 10, Width: 8, Height: 1})
	target := dom.NewElement(dom.TagDiv)
	doc.Body().Append(anchor)
	doc.Layer().Append(target)
	return env, frames, anchor, target
}

func TestPositionerHiddenUntilFirstFrame(t *testing.T) {
	t.Parallel()

	env, frames, anchor, target := newPositionerFixture(t)
	p := env.NewPositioner(PositionerOptions{
		Anchor:    func() *dom.Element { return anchor },
		Target:    target,
		Placement: PlacementBottomStart,
		Offset:    1,
		Measure:   func() dom.Size { return dom.Size{Width: 20, Height: 5} },
	})

	p.Start()
	defer p.Stop()
	assert.True(t, target.Hidden())
	assert.False(t, p.Placed())

	frames.Flush()
	assert.True(t, p.Placed())
	assert.False(t, target.Hidden())
	assert.Equal(t, dom.Rect{Top: 4, Left: 10, Width: 20, Height: 5}, target.Rect())
}

func TestPositionerSkipsMissingAnchor(t *testing.T) {
	t.Parallel()

	env, frames, anchor, target := newPositionerFixture(t)
	var current *dom.Element
	p := env.NewPositioner(PositionerOptions{
		Anchor:    func() *dom.Element { return current },
		Target:    target,
		Placement: PlacementBottomStart,
		Measure:   func() dom.Size { return dom.Size{Width: 20, Height: 5} },
	})

	p.Start()
	defer p.Stop()
	frames.Flush()
	assert.False(t, p.Placed())
	assert.True(t, target.Hidden())
	require.ErrorIs(t, p.Update(), ErrNoAnchor)

	current = anchor
	env.Doc.Resize(80, 24)
	frames.Flush()
	assert.True(t, p.Placed())
}

func TestPositionerThrottlesToOneFrame(t *testing.T) {
	t.Parallel()

	env, frames, anchor, target := newPositionerFixture(t)
	measured := 0
	p := env.NewPositioner(PositionerOptions{
		Anchor:    func() *dom.Element { return anchor },
		Target:    target,
		Placement: PlacementBottomStart,
		Measure: func() dom.Size {
			measured++
			return dom.Size{Width: 20, Height: 5}
		},
	})

	p.Start()
	frames.Flush()
	require.Equal(t, 1, measured)

	for i := 0; i < 10; i++ {
		env.Doc.Scroll()
		env.Doc.Resize(60+i, 20)
	}
	assert.Equal(t, 1, frames.Pending())
	frames.Flush()
	assert.Equal(t, 2, measured)

	p.Stop()
	assert.Equal(t, 0, env.Doc.WindowListenerCount())
	env.Doc.Scroll()
	assert.Equal(t, 0, frames.Pending())
}

func TestPositionerRecomputesOnResize(t *testing.T) {
	t.Parallel()

	env, frames, anchor, target := newPositionerFixture(t)
	anchor.SetRect(dom.Rect{Top: 20, Left: 70, Width: 5, Height: 1})
	p := env.NewPositioner(PositionerOptions{
		Anchor:    func() *dom.Element { return anchor },
		Target:    target,
		Placement: PlacementBottomStart,
		Measure:   func() dom.Size { return dom.Size{Width: 20, Height: 5} },
	})
	p.Start()
	defer p.Stop()
	frames.Flush()
	assert.Equal(t, dom.Point{Top: 18, Left: 59}, p.Position())

	env.Doc.Resize(120, 40)
	frames.Flush()
	assert.Equal(t, dom.Point{Top: 21, Left: 70}, p.Position())
}
