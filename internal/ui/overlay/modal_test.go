package overlay

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

type modalFixture struct {
	env       *Env
	trigger   *dom.Element
	backdrop  *dom.Element
	container *dom.Element
	first     *dom.Element
	last      *dom.Element
	closes    int
}

func newModalFixture(t *testing.T) *modalFixture {
	t.Helper()

	doc := dom.NewDocument(80, 24)
	f := &modalFixture{env: NewEnv(doc)}
	f.trigger = dom.NewElement(dom.TagButton)
	f.first = dom.NewElement(dom.TagButton)
	f.last = dom.NewElement(dom.TagInput)
	f.container = dom.NewElement(dom.TagDiv,
		dom.WithAttr(dom.AttrTabIndex, "-1"),
		dom.WithChildren(f.first, f.last),
	)
	f.backdrop = dom.NewElement(dom.TagDiv, dom.WithChildren(f.container))

	doc.Body().Append(f.trigger)
	doc.Layer().Append(f.backdrop)
	require.NoError(t, f.trigger.Focus())
	return f
}

func (f *modalFixture) options(stacked bool) ModalOptions {
	return ModalOptions{
		Handle:         NewHandle("modal"),
		Container:      f.container,
		Backdrop:       f.backdrop,
		CloseOnEsc:     true,
		CloseOnOverlay: true,
		Stacked:        stacked,
		LockScroll:     stacked,
		OnClose:        func() { f.closes++ },
	}
}

func TestMountModalFocusesAndRestores(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	teardown := f.env.MountModal(f.options(false))

	assert.Same(t, f.first, f.env.Doc.ActiveElement())
	assert.Equal(t, 1, f.env.Doc.KeyListenerCount())

	teardown()
	assert.Same(t, f.trigger, f.env.Doc.ActiveElement())
	assert.Equal(t, 0, f.env.Doc.KeyListenerCount())
}

func TestMountModalInitialFocusOverride(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	opts := f.options(false)
	opts.InitialFocus = f.last
	teardown := f.env.MountModal(opts)
	defer teardown()

	assert.Same(t, f.last, f.env.Doc.ActiveElement())
}

func TestMountModalEscape(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	windowSaw := false
	f.env.Doc.AddWindowKeyListener(func(*dom.KeyEvent) { windowSaw = true })

	teardown := f.env.MountModal(f.options(false))
	defer teardown()

	f.env.Doc.DispatchKey(dom.NewKeyEvent(dom.KeyEscape, false))
	assert.Equal(t, 1, f.closes)
	assert.False(t, windowSaw, "escape does not reach page listeners")
}

func TestMountModalEscapeDisabled(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	windowSaw := false
	f.env.Doc.AddWindowKeyListener(func(*dom.KeyEvent) { windowSaw = true })

	opts := f.options(false)
	opts.CloseOnEsc = false
	teardown := f.env.MountModal(opts)
	defer teardown()

	f.env.Doc.DispatchKey(dom.NewKeyEvent(dom.KeyEscape, false))
	assert.Equal(t, 0, f.closes)
	assert.True(t, windowSaw)
}

func TestMountModalBackdropClick(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	teardown := f.env.MountModal(f.options(false))

	f.env.Doc.Click(f.first)
	assert.Equal(t, 0, f.closes, "clicks bubbling from content are ignored")

	f.env.Doc.Click(f.backdrop)
	assert.Equal(t, 1, f.closes)

	teardown()
	f.env.Doc.Click(f.backdrop)
	assert.Equal(t, 1, f.closes, "handler removed on teardown")
}

func TestMountModalBackdropClickDisabled(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	opts := f.options(false)
	opts.CloseOnOverlay = false
	teardown := f.env.MountModal(opts)
	defer teardown()

	f.env.Doc.Click(f.backdrop)
	assert.Equal(t, 0, f.closes)
}

func TestMountModalTrapsTab(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	teardown := f.env.MountModal(f.options(false))
	defer teardown()

	require.NoError(t, f.last.Focus())
	ev := f.env.Doc.DispatchKey(dom.NewKeyEvent(dom.KeyTab, false))
	assert.True(t, ev.DefaultPrevented())
	assert.Same(t, f.first, f.env.Doc.ActiveElement())
}

func TestMountModalStackedRegistersAndLocks(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	opts := f.options(true)
	teardown := f.env.MountModal(opts)

	assert.True(t, f.env.Stack.IsTopmost(opts.Handle))
	assert.True(t, f.env.ScrollLock.Locked())

	teardown()
	assert.Equal(t, 0, f.env.Stack.Len())
	assert.False(t, f.env.ScrollLock.Locked())
}

func TestMountModalStackedEscapeOnlyWhenTopmost(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	opts := f.options(true)
	teardown := f.env.MountModal(opts)
	defer teardown()

	other := NewHandle("modal")
	f.env.Stack.Register(other)

	f.env.Doc.DispatchKey(dom.NewKeyEvent(dom.KeyEscape, false))
	assert.Equal(t, 0, f.closes)

	f.env.Stack.Unregister(other)
	f.env.Doc.DispatchKey(dom.NewKeyEvent(dom.KeyEscape, false))
	assert.Equal(t, 1, f.closes)
}

func TestMountModalRestoreSkipsDetachedTrigger(t *testing.T) {
	t.Parallel()

	f := newModalFixture(t)
	teardown := f.env.MountModal(f.options(false))

	f.trigger.Remove()
	require.NotPanics(t, teardown)
	assert.Same(t, f.first, f.env.Doc.ActiveElement())
}
