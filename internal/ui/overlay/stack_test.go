package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

func TestStackRegisterIsIdempotent(t *testing.T) {
	t.Parallel()

	s := NewStack()
	a, b := NewHandle("drawer"), NewHandle("drawer")
	require.NotEqual(t, a, b)

	assert.False(t, s.IsTopmost(a), "empty stack has no topmost")

	s.Register(a)
	s.Register(a)
	assert.Equal(t, 1, s.Len())
	assert.True(t, s.IsTopmost(a))

	s.Register(b)
	assert.True(t, s.IsTopmost(b))
	assert.False(t, s.IsTopmost(a))

	s.Register(a)
	assert.True(t, s.IsTopmost(b), "re-registering does not reorder")
}

func TestStackUnregister(t *testing.T) {
	t.Parallel()

	s := NewStack()
	a, b, c := Handle("a"), Handle("b"), Handle("c")
	s.Register(a)
	s.Register(b)
	s.Register(c)

	s.Unregister(b)
	assert.True(t, s.IsTopmost(c))
	s.Unregister(c)
	assert.True(t, s.IsTopmost(a))
	s.Unregister(Handle("missing"))
	assert.Equal(t, 1, s.Len())
	s.Unregister(a)
	assert.Equal(t, 0, s.Len())
}

func TestLayersTabBelongsToNewestTrap(t *testing.T) {
	t.Parallel()

	l := NewLayers()
	a, b, pop := Handle("a"), Handle("b"), Handle("pop")
	assert.False(t, l.OwnsTab(a), "nothing owns tab with no layers")

	l.Enter(a, LayerOptions{ClosesOnEsc: true, TrapsFocus: true})
	assert.True(t, l.OwnsTab(a))

	l.Enter(b, LayerOptions{ClosesOnEsc: true, TrapsFocus: true})
	assert.False(t, l.OwnsTab(a))
	assert.True(t, l.OwnsTab(b))

	l.Enter(pop, LayerOptions{ClosesOnEsc: true})
	assert.True(t, l.OwnsTab(b), "a non-trapping layer leaves tab alone")

	l.Leave(b)
	assert.True(t, l.OwnsTab(a))
	assert.Equal(t, 2, l.Len())
}

func TestLayersEscapeCoveredAbove(t *testing.T) {
	t.Parallel()

	l := NewLayers()
	drawer, menu, tip := Handle("drawer"), Handle("menu"), Handle("tip")

	l.Enter(drawer, LayerOptions{ClosesOnEsc: true, TrapsFocus: true})
	assert.False(t, l.EscapeCoveredAbove(drawer))

	l.Enter(tip, LayerOptions{})
	assert.False(t, l.EscapeCoveredAbove(drawer), "layers that ignore escape do not cover it")

	l.Enter(menu, LayerOptions{ClosesOnEsc: true})
	assert.True(t, l.EscapeCoveredAbove(drawer))
	assert.False(t, l.EscapeCoveredAbove(menu))

	l.Leave(menu)
	assert.False(t, l.EscapeCoveredAbove(drawer))
	assert.False(t, l.EscapeCoveredAbove(Handle("unknown")))
}

func TestScrollLockReferenceCounting(t *testing.T) {
	t.Parallel()

	body := dom.NewElement(dom.TagBody)
	body.SetStyle(dom.StyleOverflow, "scroll")
	lock := NewScrollLock(body)

	lock.Lock()
	assert.Equal(t, "hidden", body.Style(dom.StyleOverflow))

	body.SetStyle(dom.StyleOverflow, "auto")
	lock.Lock()
	assert.Equal(t, 2, lock.Count())
	assert.Equal(t, "auto", body.Style(dom.StyleOverflow), "second lock does not touch the style")

	lock.Unlock()
	assert.True(t, lock.Locked())
	assert.Equal(t, "auto", body.Style(dom.StyleOverflow))

	lock.Unlock()
	assert.False(t, lock.Locked())
	assert.Equal(t, "scroll", body.Style(dom.StyleOverflow), "value from the first lock is restored")

	lock.Unlock()
	assert.Equal(t, 0, lock.Count(), "count never goes negative")
	assert.Equal(t, "scroll", body.Style(dom.StyleOverflow))
}

func TestScrollLockRestoresUnsetOverflow(t *testing.T) {
	t.Parallel()

	body := dom.NewElement(dom.TagBody)
	lock := NewScrollLock(body)

	lock.Lock()
	lock.Unlock()
	assert.Equal(t, "", body.Style(dom.StyleOverflow))
}

func TestLifecycleToggling(t *testing.T) {
	t.Parallel()

	active := 0
	enters := 0
	l := NewLifecycle(func() func() {
		enters++
		active++
		return func() { active-- }
	})

	assert.False(t, l.Set(false))
	assert.True(t, l.Set(true))
	assert.False(t, l.Set(true))
	assert.Equal(t, 1, active)

	for i := 0; i < 25; i++ {
		l.Set(i%2 == 0)
		l.Set(i%3 == 0)
	}
	l.Set(true)
	assert.Equal(t, StateOpen, l.State())
	assert.Equal(t, 1, active)

	l.Set(false)
	assert.Equal(t, 0, active)
	assert.Equal(t, "closed", l.State().String())
	assert.Greater(t, enters, 1)
}

func TestLifecycleClosedDuringEnter(t *testing.T) {
	t.Parallel()

	active := 0
	var l *Lifecycle
	l = NewLifecycle(func() func() {
		active++
		l.Set(false)
		return func() { active-- }
	})

	l.Set(true)
	assert.False(t, l.IsOpen())
	assert.Equal(t, 0, active)
}
