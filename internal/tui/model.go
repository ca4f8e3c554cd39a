// Package tui implements the interactive code preview.
package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	defaultWidth  = 100
	defaultHeight = 30
	// chromeHeight is the number of lines used by the title, tab bar, footer
	// and viewport border.
	chromeHeight = 6
)

// Tab is one generated program shown in the preview.
type Tab struct {
	// Title is shown in the tab bar, e.g. "React".
	Title string
	// Name is the generated file name, e.g. "landing.jsx".
	Name string
	// Content is the program text, possibly already highlighted.
	Content string
}

// Model is the Bubble Tea model of the preview: one tab per framework with a
// scrolling viewport over the active program.
type Model struct {
	title    string
	tabs     []Tab
	active   int
	viewport viewport.Model
	width    int
	height   int
	quitting bool
}

// NewModel returns a preview over tabs.
func NewModel(title string, tabs []Tab) Model {
	vp := viewport.New(defaultWidth-4, defaultHeight-chromeHeight)
	vp.Style = viewportStyle
	m := Model{
		title:    title,
		tabs:     tabs,
		viewport: vp,
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Active returns the index of the visible tab.
func (m Model) Active() int {
	return m.active
}

// Quitting reports whether the user asked to leave.
func (m Model) Quitting() bool {
	return m.quitting
}

func (m *Model) refresh() {
	if len(m.tabs) == 0 {
		m.viewport.SetContent("Nothing to preview.")
		return
	}
	m.viewport.SetContent(m.tabs[m.active].Content)
	m.viewport.GotoTop()
}

func (m *Model) move(delta int) {
	if len(m.tabs) == 0 {
		return
	}
	m.active = (m.active + delta + len(m.tabs)) % len(m.tabs)
	m.refresh()
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	w := width - 2
	h := height - chromeHeight
	if w < 20 {
		w = 20
	}
	if h < 3 {
		h = 3
	}
	m.viewport.Width = w
	m.viewport.Height = h
}
