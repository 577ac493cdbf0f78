package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/focus"
)

// Update handles Bubbletea messages. Every message ends with a relayout
// followed by a frame flush, so deferred measurements see current rects.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.Quit) {
			m.quitting = true
			return m, tea.Quit
		}
		m.handleKey(msg)
	case tea.MouseMsg:
		m.handleMouse(msg)
	}

	m.relayout()
	m.flush()
	return m, nil
}

func (m *Model) resize(width, height int) {
	m.page.Width = width
	m.page.Height = pageHeight(height)
	m.help.Width = width
	m.relayout()
	m.doc.Resize(width, height)
}

// handleKey dispatches the key to the document and performs the default
// action unless a listener cancelled it.
func (m *Model) handleKey(msg tea.KeyMsg) {
	ev := m.doc.DispatchKey(keyEvent(msg))
	if ev.DefaultPrevented() {
		return
	}

	switch {
	case key.Matches(msg, m.keys.Next, m.keys.Prev):
		if el := focus.Advance(m.doc, ev.Shift); el != nil {
			m.log.With("element", el.ID()).Debug("focus advanced")
		}
	case key.Matches(msg, m.keys.Activate):
		m.activate()
	case key.Matches(msg, m.keys.ScrollUp):
		m.scroll(-1)
	case key.Matches(msg, m.keys.ScrollDown):
		m.scroll(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scroll(-m.page.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scroll(m.page.Height)
	}
}

// keyEvent translates a terminal key into document key names.
func keyEvent(msg tea.KeyMsg) *dom.KeyEvent {
	var ev *dom.KeyEvent
	switch msg.Type {
	case tea.KeyEsc:
		ev = dom.NewKeyEvent(dom.KeyEscape, false)
	case tea.KeyTab:
		ev = dom.NewKeyEvent(dom.KeyTab, false)
	case tea.KeyShiftTab:
		ev = dom.NewKeyEvent(dom.KeyTab, true)
	case tea.KeyEnter:
		ev = dom.NewKeyEvent(dom.KeyEnter, false)
	case tea.KeySpace:
		ev = dom.NewKeyEvent(" ", false)
	case tea.KeyRunes:
		ev = dom.NewKeyEvent(string(msg.Runes), false)
	default:
		name := msg.String()
		ev = dom.NewKeyEvent(name, false)
		ev.Ctrl = strings.HasPrefix(name, "ctrl+")
	}
	ev.Alt = msg.Alt
	return ev
}

// activate clicks the focused button or link.
func (m *Model) activate() {
	el := m.doc.ActiveElement()
	if el.Disabled() {
		return
	}
	switch el.Tag() {
	case dom.TagButton, dom.TagAnchor:
		m.doc.Click(el)
	}
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		m.scroll(-1)
	case msg.Button == tea.MouseButtonWheelDown:
		m.scroll(1)
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		target := m.doc.ElementAt(msg.X, msg.Y)
		if focus.IsFocusable(target) {
			_ = target.Focus()
		}
		m.doc.Click(target)
	}
}

// scrollLocked reports whether an overlay holds the scroll lock or the
// body's overflow is hidden.
func (m *Model) scrollLocked() bool {
	return m.env.ScrollLock.Locked() || m.doc.Body().Style(dom.StyleOverflow) == "hidden"
}

// scroll moves the page by delta rows and notifies window scroll listeners
// when the offset changed. It does nothing while the body is locked.
func (m *Model) scroll(delta int) {
	if m.scrollLocked() {
		m.log.Debug("scroll ignored while locked")
		return
	}
	before := m.page.YOffset
	m.page.SetYOffset(before + delta)
	if m.page.YOffset == before {
		return
	}
	m.relayout()
	m.doc.Scroll()
}
