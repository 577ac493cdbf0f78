package focus

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
)

func el(tag dom.Tag, opts ...dom.Option) *dom.Element {
	return dom.NewElement(tag, opts...)
}

func TestIsFocusable(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		el   *dom.Element
		want bool
	}{
		{"anchor with href", el(dom.TagAnchor, dom.WithAttr(dom.AttrHref, "#")), true},
		{"anchor without href", el(dom.TagAnchor), false},
		{"button", el(dom.TagButton), true},
		{"disabled button", el(dom.TagButton, dom.WithAttr(dom.AttrDisabled, "")), false},
		{"disabled button with tabindex", el(dom.TagButton, dom.WithAttr(dom.AttrDisabled, ""), dom.WithAttr(dom.AttrTabIndex, "0")), true},
		{"input", el(dom.TagInput), true},
		{"select", el(dom.TagSelect), true},
		{"textarea", el(dom.TagTextarea), true},
		{"disabled textarea", el(dom.TagTextarea, dom.WithAttr(dom.AttrDisabled, "")), false},
		{"div", el(dom.TagDiv), false},
		{"div tabindex 0", el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "0")), true},
		{"div tabindex 3", el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "3")), true},
		{"div tabindex -1", el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "-1")), false},
		{"div tabindex junk", el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "x")), false},
		{"aria-hidden button", el(dom.TagButton, dom.WithAttr(dom.AttrAriaHidden, "true")), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, IsFocusable(tc.el))
		})
	}
}

func TestFocusablesDocumentOrder(t *testing.T) {
	t.Parallel()

	b1 := el(dom.TagButton, dom.WithID("b1"))
	link := el(dom.TagAnchor, dom.WithID("link"), dom.WithAttr(dom.AttrHref, "/x"))
	in := el(dom.TagInput, dom.WithID("in"))
	late := el(dom.TagDiv, dom.WithID("late"), dom.WithAttr(dom.AttrTabIndex, "5"))
	hidden := el(dom.TagButton, dom.WithAttr(dom.AttrAriaHidden, "true"))

	container := el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "0"), dom.WithChildren(
		late,
		el(dom.TagDiv, dom.WithChildren(b1, hidden)),
		link,
		el(dom.TagParagraph, dom.WithChildren(in)),
	))

	got := Focusables(container)
	require.Len(t, got, 4)
	assert.Equal(t, []*dom.Element{late, b1, link, in}, got, "tabindex does not reorder")
	assert.Same(t, late, First(container))
	assert.Same(t, in, Last(container))
	assert.True(t, Within(container, link))
	assert.False(t, Within(container, container), "the container is not its own descendant")
}

func TestFocusablesEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Focusables(nil))
	assert.Nil(t, First(nil))
	assert.Nil(t, Last(el(dom.TagDiv, dom.WithChildren(el(dom.TagSpan)))))
}

type trapFixture struct {
	doc       *dom.Document
	outside   *dom.Element
	container *dom.Element
	a, b, c   *dom.Element
}

func newTrapFixture(t *testing.T) trapFixture {
	t.Helper()

	f := trapFixture{doc: dom.NewDocument(80, 24)}
	f.outside = el(dom.TagButton, dom.WithID("outside"))
	f.a = el(dom.TagButton, dom.WithID("a"))
	f.b = el(dom.TagInput, dom.WithID("b"))
	f.c = el(dom.TagButton, dom.WithID("c"))
	f.container = el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "-1"), dom.WithChildren(f.a, f.b, f.c))
	f.doc.Body().Append(f.outside, f.container)
	return f
}

// press dispatches Tab through the trap and then performs native navigation
// unless the trap cancelled it.
func (f trapFixture) press(shift bool) *dom.Element {
	ev := dom.NewKeyEvent(dom.KeyTab, shift)
	Trap(f.container, ev)
	if !ev.DefaultPrevented() {
		Advance(f.doc, shift)
	}
	return f.doc.ActiveElement()
}

func TestTrapWrapsForward(t *testing.T) {
	t.Parallel()

	f := newTrapFixture(t)
	require.NoError(t, f.a.Focus())

	assert.Same(t, f.b, f.press(false))
	assert.Same(t, f.c, f.press(false))
	assert.Same(t, f.a, f.press(false), "last wraps to first")
}

func TestTrapWrapsBackward(t *testing.T) {
	t.Parallel()

	f := newTrapFixture(t)
	require.NoError(t, f.a.Focus())

	assert.Same(t, f.c, f.press(true), "first wraps to last")
	assert.Same(t, f.b, f.press(true))
}

func TestTrapPullsFocusBackInside(t *testing.T) {
	t.Parallel()

	f := newTrapFixture(t)
	require.NoError(t, f.outside.Focus())
	assert.Same(t, f.a, f.press(false))

	require.NoError(t, f.outside.Focus())
	assert.Same(t, f.c, f.press(true))
}

func TestTrapNeverLeaks(t *testing.T) {
	t.Parallel()

	f := newTrapFixture(t)
	require.NoError(t, f.container.Focus())

	seq := []bool{false, false, true, false, false, false, true, true, true, true, false}
	for i, shift := range seq {
		got := f.press(shift)
		assert.True(t, Within(f.container, got), "step %d leaked focus to %s", i, got.ID())
	}
}

func TestTrapWithoutFocusables(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument(80, 24)
	container := el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "-1"))
	doc.Body().Append(el(dom.TagButton), container)

	ev := dom.NewKeyEvent(dom.KeyTab, false)
	assert.True(t, Trap(container, ev))
	assert.True(t, ev.DefaultPrevented())
	assert.Same(t, container, doc.ActiveElement())
}

func TestTrapIgnoresOtherKeys(t *testing.T) {
	t.Parallel()

	f := newTrapFixture(t)
	ev := dom.NewKeyEvent(dom.KeyEnter, false)
	assert.False(t, Trap(f.container, ev))
	assert.False(t, ev.DefaultPrevented())
}

func TestSnapshotRestore(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument(80, 24)
	trigger := el(dom.TagButton)
	other := el(dom.TagButton)
	doc.Body().Append(trigger, other)
	require.NoError(t, trigger.Focus())

	snap := Capture(doc)
	require.NoError(t, other.Focus())

	require.NoError(t, snap.Restore())
	assert.Same(t, trigger, doc.ActiveElement())
	assert.Nil(t, snap.Element(), "snapshot is discarded after restoring")
	assert.NoError(t, snap.Restore())
}

func TestSnapshotRestoreDetached(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument(80, 24)
	trigger := el(dom.TagButton)
	other := el(dom.TagButton)
	doc.Body().Append(trigger, other)
	require.NoError(t, trigger.Focus())

	snap := Capture(doc)
	require.NoError(t, other.Focus())
	trigger.Remove()

	assert.ErrorIs(t, snap.Restore(), dom.ErrDetached)
	assert.Same(t, other, doc.ActiveElement(), "focus is left alone")
}

func TestMoveInitialFallbacks(t *testing.T) {
	t.Parallel()

	doc := dom.NewDocument(80, 24)
	first := el(dom.TagButton)
	explicit := el(dom.TagInput)
	container := el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "-1"), dom.WithChildren(first, explicit))
	doc.Body().Append(container)

	assert.Same(t, explicit, MoveInitial(container, explicit))
	assert.Same(t, first, MoveInitial(container, nil))

	detached := el(dom.TagButton)
	assert.Same(t, first, MoveInitial(container, detached), "detached targets are skipped")

	empty := el(dom.TagDiv, dom.WithAttr(dom.AttrTabIndex, "-1"))
	doc.Body().Append(empty)
	assert.Same(t, empty, MoveInitial(empty, nil))

	assert.Nil(t, MoveInitial(el(dom.TagDiv), nil), "nothing connected to focus")
}
