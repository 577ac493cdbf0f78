package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/lattice/internal/logger"
	"github.com/alexisbeaulieu97/lattice/internal/ui/components"
	"github.com/alexisbeaulieu97/lattice/internal/ui/dom"
	"github.com/alexisbeaulieu97/lattice/internal/ui/overlay"
)

// flusher runs queued animation frames. dom.FrameQueue satisfies it.
type flusher interface {
	Flush() int
}

// Model hosts a document in a Bubbletea program. It renders the body as a
// scrollable page, composites the registered surfaces above it and turns
// terminal input into document events.
type Model struct {
	env      *overlay.Env
	doc      *dom.Document
	frames   flusher
	ctx      components.RenderContext
	surfaces []components.Surface
	keys     KeyMap
	help     help.Model
	page     viewport.Model
	log      *logger.Logger
	quitting bool
}

// Option customises a Model.
type Option func(*Model)

// WithKeyMap replaces DefaultKeyMap.
func WithKeyMap(keys KeyMap) Option {
	return func(m *Model) { m.keys = keys }
}

// WithSurfaces registers surfaces for compositing.
func WithSurfaces(surfaces ...components.Surface) Option {
	return func(m *Model) { m.surfaces = append(m.surfaces, surfaces...) }
}

// NewModel constructs a host for env's document. Frames are flushed after
// every update when the environment's scheduler can be flushed.
func NewModel(env *overlay.Env, theme components.Theme, opts ...Option) Model {
	vp := env.Doc.Viewport()
	m := Model{
		env:  env,
		doc:  env.Doc,
		ctx:  components.NewRenderContext(theme, vp),
		keys: DefaultKeyMap(),
		help: help.New(),
		log:  env.Log,
	}
	if f, ok := env.Frames.(flusher); ok {
		m.frames = f
	}
	for _, opt := range opts {
		opt(&m)
	}
	m.page = viewport.New(vp.Width, pageHeight(vp.Height))
	m.help.Width = vp.Width
	m.relayout()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Document returns the hosted document.
func (m Model) Document() *dom.Document {
	return m.doc
}

// ScrollOffset returns the first page row on screen.
func (m Model) ScrollOffset() int {
	return m.page.YOffset
}

// Quitting reports whether the quit binding was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

// pageHeight leaves the last row for the help line.
func pageHeight(rows int) int {
	return max(rows-1, 0)
}

// relayout lays the body out at the current scroll offset so element
// rectangles are in screen cells.
func (m *Model) relayout() {
	m.ctx.Viewport = m.doc.Viewport()
	for range 2 {
		offset := m.page.YOffset
		lines := components.Layout(m.ctx, m.doc.Body().Children(), dom.Point{Top: -offset}, m.page.Width)
		m.page.SetContent(strings.Join(lines, "\n"))
		if m.page.YOffset == offset {
			return
		}
	}
}

func (m *Model) flush() {
	if m.frames == nil {
		return
	}
	if n := m.frames.Flush(); n > 0 {
		m.log.WithFields(map[string]any{"frames": n}).Debug("flushed frames")
	}
}
