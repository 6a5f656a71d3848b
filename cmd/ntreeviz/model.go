package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/cagrimmett/ntree"
)

// KeyMap groups the key bindings the viewer responds to. Override
// fields on a DefaultKeyMap() to remap them.
type KeyMap struct {
	Quit []string
	Up   []string
	Down []string
}

// DefaultKeyMap returns the viewer's built-in key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: []string{"esc", "q", "ctrl+c"},
		Up:   []string{"up", "k"},
		Down: []string{"down", "j"},
	}
}

// Model is a read-only Bubble Tea viewer over an ntree. It never
// mutates the tree it displays: ntree has no expand/collapse state of
// its own, so the whole subtree is always shown and the model only
// tracks which line the cursor sits on.
//
// Concurrency: like any Bubble Tea model, Update runs on Tea's single
// event-loop goroutine, so no locking is needed here.
type Model[T any] struct {
	root     *ntree.Node[T]
	provider Provider[T]
	keyMap   KeyMap

	width, height int
	viewport      viewport.Model

	lines  []line[T]
	cursor int
}

// ModelOption configures a Model.
type ModelOption[T any] func(*Model[T])

// WithKeyMap overrides the viewer's key bindings.
func WithKeyMap[T any](k KeyMap) ModelOption[T] {
	return func(m *Model[T]) { m.keyMap = k }
}

// WithSize sets the initial viewport dimensions.
func WithSize[T any](w, h int) ModelOption[T] {
	return func(m *Model[T]) { m.width, m.height = w, h }
}

// NewModel builds a viewer over the subtree rooted at root, using
// provider to render each node. Defaults to an 80x24 viewport and
// DefaultKeyMap.
func NewModel[T any](root *ntree.Node[T], provider Provider[T], opts ...ModelOption[T]) *Model[T] {
	m := &Model[T]{
		root:     root,
		provider: provider,
		keyMap:   DefaultKeyMap(),
		width:    80,
		height:   24,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.viewport = viewport.New(m.width, m.height-1)
	m.refresh()
	return m
}

func (m *Model[T]) refresh() {
	focused := m.root
	if m.cursor >= 0 && m.cursor < len(m.lines) {
		focused = m.lines[m.cursor].node
	}
	m.lines = flatten(m.root, m.provider, focused)
}

// Init satisfies tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update satisfies tea.Model.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeypress(msg)
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.viewport.Width = m.width
		m.viewport.Height = m.height - 1
		return m, nil
	}
	return m, nil
}

func (m *Model[T]) handleKeypress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch {
	case contains(m.keyMap.Quit, key):
		return m, tea.Quit
	case contains(m.keyMap.Up, key):
		if m.cursor > 0 {
			m.cursor--
		}
		m.refresh()
	case contains(m.keyMap.Down, key):
		if m.cursor < len(m.lines)-1 {
			m.cursor++
		}
		m.refresh()
	}
	return m, nil
}

func contains(keys []string, key string) bool {
	for _, k := range keys {
		if k == key {
			return true
		}
	}
	return false
}

// View satisfies tea.Model.
func (m *Model[T]) View() string {
	focused := m.root
	if m.cursor >= 0 && m.cursor < len(m.lines) {
		focused = m.lines[m.cursor].node
	}

	var b strings.Builder
	b.WriteString(renderWithViewport(m.root, m.provider, focused, &m.viewport))
	b.WriteString("\n")
	b.WriteString(m.navBar())
	return b.String()
}

func (m *Model[T]) navBar() string {
	return fmt.Sprintf("%s: up  %s: down  %s: quit  (%d/%d)",
		strings.Join(m.keyMap.Up, "/"),
		strings.Join(m.keyMap.Down, "/"),
		strings.Join(m.keyMap.Quit, "/"),
		m.cursor+1, len(m.lines))
}
