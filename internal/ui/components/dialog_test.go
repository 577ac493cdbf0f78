package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/overlay"
)

func newTestEnv(t *testing.T) (*overlay.Env, *dom.FrameQueue) {
	t.Helper()
	frames := dom.NewFrameQueue()
	env := overlay.NewEnv(dom.NewDocument(80, 24), overlay.WithFrames(frames), overlay.WithViewportPadding(1))
	return env, frames
}

func newTrigger(t *testing.T, env *overlay.Env, label string) *dom.Element {
	t.Helper()
	trigger := Button(label, nil)
	env.Doc.Body().Append(trigger)
	require.NoError(t, trigger.Focus())
	return trigger
}

func testContext(env *overlay.Env) RenderContext {
	return NewRenderContext(DefaultTheme(), env.Doc.Viewport())
}

func TestDialogCloseButtonRoundTrip(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	trigger := newTrigger(t, env, "Delete")

	var d *Dialog
	props := DefaultModalProps()
	props.Title = "Delete item"
	props.OnClose = func() { d.SetOpen(false) }
	d = NewDialog(env, props, Paragraph("This cannot be undone."), Button("Cancel", nil))

	require.True(t, d.SetOpen(true))
	closeButton := d.CloseButton()
	require.NotNil(t, closeButton)

	label, _ := closeButton.Attr(dom.AttrAriaLabel)
	assert.Equal(t, CloseLabel, label)
	assert.True(t, closeButton.Focused(), "close button is the first focusable element")

	env.Doc.Click(closeButton)
	assert.False(t, d.IsOpen())
	assert.True(t, trigger.Focused())
	assert.Empty(t, env.Doc.Layer().Children())
}

func TestDialogAccessibilityAttributes(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	props := DefaultModalProps()
	props.Title = "Delete item"
	props.Description = "The item is removed for everyone."
	d := NewDialog(env, props)
	d.SetOpen(true)
	defer d.SetOpen(false)

	c := d.Container()
	attr := func(name string) string {
		v, ok := c.Attr(name)
		require.True(t, ok, name)
		return v
	}

	assert.Equal(t, "dialog", attr(dom.AttrRole))
	assert.Equal(t, "true", attr(dom.AttrAriaModal))

	var title, description *dom.Element
	c.Walk(func(el *dom.Element) bool {
		switch el.ID() {
		case attr(dom.AttrAriaLabelledBy):
			title = el
		case attr(dom.AttrAriaDescribedBy):
			description = el
		}
		return true
	})
	require.NotNil(t, title)
	require.NotNil(t, description)
	assert.Equal(t, "Delete item", title.Text())
	assert.Equal(t, "The item is removed for everyone.", description.Text())
	assert.False(t, c.HasAttr(dom.AttrAriaLabel))
}

func TestDialogAriaLabelWithoutTitle(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	props := DefaultModalProps()
	props.AriaLabel = "Settings"
	props.ShowCloseButton = false
	d := NewDialog(env, props, Button("Save", nil))
	d.SetOpen(true)
	defer d.SetOpen(false)

	label, ok := d.Container().Attr(dom.AttrAriaLabel)
	assert.True(t, ok)
	assert.Equal(t, "Settings", label)
	assert.False(t, d.Container().HasAttr(dom.AttrAriaLabelledBy))
	assert.False(t, d.Container().HasAttr(dom.AttrAriaDescribedBy))
	assert.Nil(t, d.CloseButton())
}

func TestDialogRendersNothingWhileClosed(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	d := NewDialog(env, DefaultModalProps(), Paragraph("hello"))

	view, _ := d.View(testContext(env))
	assert.Empty(t, view)
	assert.Nil(t, d.Container())
	assert.Equal(t, 0, env.Doc.KeyListenerCount())
	assert.Empty(t, env.Doc.Layer().Children())
}

func TestDialogPortalTarget(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	host := Column()
	env.Doc.Body().Append(host)

	inPlace := DefaultModalProps()
	inPlace.Portal = false
	inPlace.Parent = host
	d := NewDialog(env, inPlace)
	d.SetOpen(true)
	assert.Same(t, host, d.Backdrop().Parent())
	assert.False(t, d.Portal())
	d.SetOpen(false)

	portal := NewDialog(env, DefaultModalProps())
	portal.SetOpen(true)
	assert.Same(t, env.Doc.Layer(), portal.Backdrop().Parent())
	portal.SetOpen(false)
}

func TestDialogEscapeAndInitialFocus(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	trigger := newTrigger(t, env, "Open")

	save := Button("Save", nil)
	var d *Dialog
	props := DefaultModalProps()
	props.InitialFocus = save
	props.OnClose = func() { d.SetOpen(false) }
	d = NewDialog(env, props, TextInput("name"), save)

	d.SetOpen(true)
	assert.True(t, save.Focused())

	env.Doc.DispatchKey(dom.NewKeyEvent(dom.KeyEscape, false))
	assert.False(t, d.IsOpen())
	assert.True(t, trigger.Focused())
}

func TestDialogOptionalScrollLock(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	plain := NewDialog(env, DefaultModalProps())
	plain.SetOpen(true)
	assert.False(t, env.ScrollLock.Locked())
	assert.Equal(t, 0, env.Stack.Len(), "dialogs do not join the stack")
	plain.SetOpen(false)

	props := DefaultModalProps()
	props.LockScroll = true
	locking := NewDialog(env, props)
	locking.SetOpen(true)
	assert.True(t, env.ScrollLock.Locked())
	locking.SetOpen(false)
	assert.False(t, env.ScrollLock.Locked())
}

func TestDialogViewCentersAndHitTests(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	closes := 0
	props := DefaultModalProps()
	props.Title = "Confirm"
	props.OnClose = func() { closes++ }
	d := NewDialog(env, props, Paragraph("Proceed?"))
	d.SetOpen(true)
	defer d.SetOpen(false)

	view, origin := d.View(testContext(env))
	require.NotEmpty(t, view)

	rect := d.Container().Rect()
	assert.Equal(t, origin, rect.Origin())
	assert.Equal(t, DefaultTheme().Overlay.DialogWidth, rect.Width)
	assert.Equal(t, (80-rect.Width)/2, rect.Left)
	assert.Equal(t, (24-rect.Height)/2, rect.Top)

	closeRect := d.CloseButton().Rect()
	require.False(t, closeRect.IsZero())
	assert.Same(t, d.CloseButton(), env.Doc.ElementAt(closeRect.Left, closeRect.Top))

	hit := env.Doc.ElementAt(0, 0)
	assert.Same(t, d.Backdrop(), hit)
	env.Doc.Click(hit)
	assert.Equal(t, 1, closes)

	env.Doc.Click(env.Doc.ElementAt(rect.Left, rect.Top))
	assert.Equal(t, 1, closes, "the frame belongs to the container")
}

func TestDialogToggleLeavesNoResidue(t *testing.T) {
	t.Parallel()

	env, _ := newTestEnv(t)
	newTrigger(t, env, "Open")
	props := DefaultModalProps()
	props.LockScroll = true
	d := NewDialog(env, props, Button("OK", nil))

	for i := 0; i < 20; i++ {
		d.SetOpen(true)
		d.SetOpen(false)
		d.SetOpen(true)
	}
	assert.Equal(t, 1, env.Doc.KeyListenerCount())
	assert.Len(t, env.Doc.Layer().Children(), 1)
	assert.Equal(t, 1, env.ScrollLock.Count())

	d.SetOpen(false)
	assert.Equal(t, 0, env.Doc.KeyListenerCount())
	assert.Empty(t, env.Doc.Layer().Children())
	assert.Equal(t, 0, env.ScrollLock.Count())
}
