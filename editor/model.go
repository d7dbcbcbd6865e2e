// ABOUTME: Interactive shot list editor widget and core state management
// ABOUTME: Bubble Tea model with drag controller, undo history, and change notification

// Package editor provides an interactive terminal widget for building,
// reordering, and editing a bounded sequence of shots. All invariant
// enforcement lives in the shot package; the editor translates input into
// model mutations and notifies its host with a detached snapshot after each
// committed change.
package editor

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"shotlist-editor/config"
	"shotlist-editor/shot"
)

// Layout constants for UI dimensions
const (
	itemHeight = 3 // Lines per shot card: insertion edge, affordances, description

	// Rows within a card, as offsets from the card top
	cardEdgeRow        = 0
	cardAffordanceRow  = 1
	cardDescriptionRow = 2

	// UI chrome heights (elements that reduce available viewport space)
	listTop        = 2 // Title + blank line above the list
	bottomChrome   = 3 // Add-shot line, status bar, help line
	minListHeight  = itemHeight
	maxDescDisplay = 60 // Description truncation width in the card
)

// Mouse hit zones on a card's affordance line, as terminal columns.
// The line is rendered with fixed-width fields so these stay stable:
//
//	≡ Shot1   [-]  2s [+]  [x]
//	0123456789012345678901234567
const (
	handleColEnd   = 1
	minusColStart  = 10
	minusColEnd    = 12
	plusColStart   = 18
	plusColEnd     = 20
	deleteColStart = 23
	deleteColEnd   = 25
)

// Navigation and interaction constants
const (
	statusMessageDuration = 5 * time.Second // How long to show transient status messages
	maxUndoStackSize      = 50              // Maximum undo/redo history items
)

// Model holds the editor state. Construct with New; the zero value is not usable.
type Model struct {
	// Shot list model (owns all invariant enforcement)
	list *shot.List

	// External contract
	onChange func([]shot.Shot) // Invoked once per committed mutation with a detached snapshot
	disabled bool              // Read-only mode: mutating affordances render but are inert
	debugf   func(string, ...interface{})

	// UI state
	width    int
	height   int
	ready    bool
	quitting bool

	cursorPos    int
	viewport     viewport.Model
	statusMsg    string
	statusMsgAge time.Time

	// Description editing
	editing bool
	input   textinput.Model

	// Undo snapshot taken when editing began, pushed on the session's
	// first actual change so an edit that types nothing leaves no history
	pendingEditUndo *ListState

	// Drag-and-drop reordering
	drag *dragController

	// Undo/redo history
	undoMgr *UndoManager
}

// Option configures the editor
type Option func(*Model)

// WithOnChange sets the change callback. It receives a deep copy of the
// ordered shot list after every committed mutation.
func WithOnChange(fn func([]shot.Shot)) Option {
	return func(m *Model) { m.onChange = fn }
}

// WithDisabled makes the widget read-only
func WithDisabled(disabled bool) Option {
	return func(m *Model) { m.disabled = disabled }
}

// WithDebugf sets the debug logger. The editor never writes to the terminal
// it draws on.
func WithDebugf(fn func(string, ...interface{})) Option {
	return func(m *Model) { m.debugf = fn }
}

// New creates an editor seeded from a host-supplied initial value.
// A nil or empty initial value seeds a single default shot.
func New(initial []shot.Shot, limits config.Limits, opts ...Option) Model {
	input := textinput.New()
	input.CharLimit = limits.MaxDescriptionLength
	input.Prompt = ""

	m := Model{
		list:     shot.NewList(initial, limits),
		viewport: viewport.New(0, 0), // Sized on first WindowSizeMsg
		input:    input,
		drag:     newDragController(),
		undoMgr:  NewUndoManager(maxUndoStackSize),
		debugf:   func(string, ...interface{}) {},
	}

	for _, opt := range opts {
		opt(&m)
	}

	return m
}

// Init initializes the model
func (m Model) Init() tea.Cmd {
	return nil
}

// Shots returns a detached snapshot of the current ordered shot list
func (m Model) Shots() []shot.Shot {
	return m.list.Shots()
}

// Key bindings
type keyMap struct {
	Up       key.Binding
	Down     key.Binding
	MoveUp   key.Binding
	MoveDown key.Binding
	Longer   key.Binding
	Shorter  key.Binding
	Add      key.Binding
	Delete   key.Binding
	Edit     key.Binding
	Undo     key.Binding
	Redo     key.Binding
	Quit     key.Binding
}

var keys = keyMap{
	Up: key.NewBinding(
		key.WithKeys("up", "k"),
		key.WithHelp("↑/k", "navigate"),
	),
	Down: key.NewBinding(
		key.WithKeys("down", "j"),
		key.WithHelp("↓/j", "navigate"),
	),
	MoveUp: key.NewBinding(
		key.WithKeys("shift+up", "K"),
		key.WithHelp("shift+↑", "move shot up"),
	),
	MoveDown: key.NewBinding(
		key.WithKeys("shift+down", "J"),
		key.WithHelp("shift+↓", "move shot down"),
	),
	Longer: key.NewBinding(
		key.WithKeys("right", "l", "+"),
		key.WithHelp("→/+", "longer"),
	),
	Shorter: key.NewBinding(
		key.WithKeys("left", "h", "-"),
		key.WithHelp("←/-", "shorter"),
	),
	Add: key.NewBinding(
		key.WithKeys("a"),
		key.WithHelp("a", "add shot"),
	),
	Delete: key.NewBinding(
		key.WithKeys("d"),
		key.WithHelp("d", "delete shot"),
	),
	Edit: key.NewBinding(
		key.WithKeys("e", "enter"),
		key.WithHelp("e", "edit description"),
	),
	Undo: key.NewBinding(
		key.WithKeys("u"),
		key.WithHelp("u", "undo"),
	),
	Redo: key.NewBinding(
		key.WithKeys("ctrl+r"),
		key.WithHelp("ctrl+r", "redo"),
	),
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	cursorStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("240")).
			Foreground(lipgloss.Color("15"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	cloneStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("57")).
			Foreground(lipgloss.Color("15")).
			Bold(true)

	edgeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("48")).
			Bold(true)

	disabledAffordanceStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("241"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250"))

	descErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("15")).
			Padding(0, 1)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// ========== Helper Methods ==========

// emitChange hands the host a deep, detached snapshot of the new state.
// Called exactly once per committed mutation, after the model has finished
// validating, so the host never observes an invariant-violating value.
func (m *Model) emitChange() {
	if m.onChange != nil {
		m.onChange(m.list.Shots())
	}
}

// pushUndo saves the current state to the undo stack
func (m *Model) pushUndo() {
	m.undoMgr.Push(ListState{
		Shots:     m.list.Shots(),
		CursorPos: m.cursorPos,
	})
}

// setStatusMsg sets a transient status message with current timestamp
func (m *Model) setStatusMsg(msg string) {
	m.statusMsg = msg
	m.statusMsgAge = time.Now()
}

// itemRects returns the current card bounds in list-content coordinates.
// The drag controller snapshots these at drag start.
func (m *Model) itemRects() []itemRect {
	rects := make([]itemRect, m.list.Len())
	for i := range rects {
		rects[i] = itemRect{Top: i * itemHeight, Height: itemHeight}
	}

	return rects
}

// ensureCursorVisible scrolls the viewport to keep the cursor's card in view
func (m *Model) ensureCursorVisible() {
	top := m.cursorPos * itemHeight
	bottom := top + itemHeight - 1

	if top < m.viewport.YOffset {
		m.viewport.SetYOffset(top)
	} else if bottom > m.viewport.YOffset+m.viewport.Height-1 {
		m.viewport.SetYOffset(bottom - m.viewport.Height + 1)
	}
}

// clampCursor keeps the cursor on an existing card after deletions
func (m *Model) clampCursor() {
	if m.cursorPos >= m.list.Len() {
		m.cursorPos = m.list.Len() - 1
	}

	if m.cursorPos < 0 {
		m.cursorPos = 0
	}
}

// ========== Mutations ==========
// Each checks the live affordance predicate, saves undo state, mutates the
// model, and notifies the host. Disabled mode is checked by the callers in
// update.go before input is routed here.

// addShot appends a new shot if the count limit and budget allow
func (m *Model) addShot() {
	if !m.list.CanAdd() {
		return
	}

	m.pushUndo()
	m.list.Add("")
	m.cursorPos = m.list.Len() - 1
	m.ensureCursorVisible()
	m.setStatusMsg("Added " + mustName(m.list, m.cursorPos))
	m.emitChange()
	m.updateViewportContent()
}

// deleteShot removes the shot under the cursor if above the minimum count
func (m *Model) deleteShot() {
	if !m.list.CanDelete() {
		return
	}

	name := mustName(m.list, m.cursorPos)

	m.pushUndo()
	if !m.list.Delete(m.cursorPos) {
		return
	}

	m.clampCursor()
	m.ensureCursorVisible()
	m.setStatusMsg("Deleted " + name)
	m.emitChange()
	m.updateViewportContent()
}

// stepDuration adjusts the cursor shot's duration by delta seconds,
// gated by the live budget and per-shot bounds
func (m *Model) stepDuration(index, delta int) {
	if index < 0 || index >= m.list.Len() {
		return
	}

	if delta > 0 && !m.list.CanIncrease(index) {
		return
	}

	if delta < 0 && !m.list.CanDecrease(index) {
		return
	}

	s, _ := m.list.Get(index)

	m.pushUndo()
	if !m.list.SetDuration(index, s.Duration+delta) {
		return
	}

	m.emitChange()
	m.updateViewportContent()
}

// moveShot reorders the cursor shot by keyboard, one position at a time
func (m *Model) moveShot(delta int) {
	from := m.cursorPos
	to := from + delta

	if to < 0 || to >= m.list.Len() {
		return
	}

	m.pushUndo()
	if !m.list.Reorder(from, to) {
		return
	}

	m.cursorPos = to
	m.ensureCursorVisible()
	m.emitChange()
	m.updateViewportContent()
}

// commitReorder applies a drag commit via the model
func (m *Model) commitReorder(from, to int) {
	m.pushUndo()
	if !m.list.Reorder(from, to) {
		return
	}

	m.cursorPos = to
	m.clampCursor()
	m.ensureCursorVisible()
	m.setStatusMsg("Moved " + mustName(m.list, m.cursorPos))
	m.emitChange()
}

// beginEdit opens the description input for the shot under the cursor
func (m *Model) beginEdit() {
	s, ok := m.list.Get(m.cursorPos)
	if !ok {
		return
	}

	snapshot := ListState{Shots: m.list.Shots(), CursorPos: m.cursorPos}
	m.pendingEditUndo = &snapshot
	m.editing = true
	m.input.SetValue(s.Description)
	m.input.CursorEnd()
	m.input.Focus()
	m.updateViewportContent()
}

// endEdit closes the description input
func (m *Model) endEdit() {
	m.editing = false
	m.pendingEditUndo = nil
	m.input.Blur()
	m.updateViewportContent()
}

// commitDescription pushes the input's current value into the model.
// The input already enforces the character cap; the model truncates again.
func (m *Model) commitDescription() {
	if !m.list.SetDescription(m.cursorPos, m.input.Value()) {
		return
	}

	if m.pendingEditUndo != nil {
		m.undoMgr.Push(*m.pendingEditUndo)
		m.pendingEditUndo = nil
	}

	m.emitChange()
}

// undo restores the previous state from the undo stack
func (m *Model) undo() {
	state, ok := m.undoMgr.Undo(ListState{Shots: m.list.Shots(), CursorPos: m.cursorPos})
	if !ok {
		m.setStatusMsg("Nothing to undo")

		return
	}

	m.list.Restore(state.Shots)
	m.cursorPos = state.CursorPos
	m.clampCursor()
	m.ensureCursorVisible()
	m.setStatusMsg("Undo")
	m.emitChange()
	m.updateViewportContent()
}

// redo restores the next state from the redo stack
func (m *Model) redo() {
	state, ok := m.undoMgr.Redo(ListState{Shots: m.list.Shots(), CursorPos: m.cursorPos})
	if !ok {
		m.setStatusMsg("Nothing to redo")

		return
	}

	m.list.Restore(state.Shots)
	m.cursorPos = state.CursorPos
	m.clampCursor()
	m.ensureCursorVisible()
	m.setStatusMsg("Redo")
	m.emitChange()
	m.updateViewportContent()
}

// mustName returns the display name at index, empty when out of range
func mustName(l *shot.List, index int) string {
	s, _ := l.Get(index)

	return s.Name
}

// truncate shortens a string to maxLen, adding "..." if truncated
func truncate(s string, maxLen int) string {
	runes := []rune(s)
	if len(runes) <= maxLen {
		return s
	}

	if maxLen <= 3 {
		return string(runes[:maxLen])
	}

	return string(runes[:maxLen-3]) + "..."
}
