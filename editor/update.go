// ABOUTME: Event handling and state updates for the shot list editor
// ABOUTME: Routes key and mouse input into model mutations and drag transitions

package editor

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// Update handles messages and updates the model
//
//nolint:ireturn // Bubble Tea framework requires returning tea.Model interface
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

		listHeight := msg.Height - listTop - bottomChrome
		if listHeight < minListHeight {
			listHeight = minListHeight
		}

		m.viewport.Width = msg.Width
		m.viewport.Height = listHeight
		m.input.Width = msg.Width - 6
		m.ready = true

		m.ensureCursorVisible()
		m.updateViewportContent()

		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	return m, nil
}

// handleKey handles keyboard input
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Description edit mode captures everything except the exit keys
	if m.editing {
		switch msg.String() {
		case "enter", "esc":
			m.endEdit()

			return m, nil
		}

		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		m.commitDescription()
		m.updateViewportContent()

		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Quit):
		m.quitting = true
		// Teardown is an exit path too: never leak an active drag
		m.drag.cancel()

		return m, tea.Quit

	case key.Matches(msg, keys.Up):
		if m.cursorPos > 0 {
			m.cursorPos--
			m.ensureCursorVisible()
			m.updateViewportContent()
		}

	case key.Matches(msg, keys.Down):
		if m.cursorPos < m.list.Len()-1 {
			m.cursorPos++
			m.ensureCursorVisible()
			m.updateViewportContent()
		}

	case key.Matches(msg, keys.MoveUp):
		if !m.disabled {
			m.moveShot(-1)
		}

	case key.Matches(msg, keys.MoveDown):
		if !m.disabled {
			m.moveShot(1)
		}

	case key.Matches(msg, keys.Longer):
		if !m.disabled {
			m.stepDuration(m.cursorPos, 1)
		}

	case key.Matches(msg, keys.Shorter):
		if !m.disabled {
			m.stepDuration(m.cursorPos, -1)
		}

	case key.Matches(msg, keys.Add):
		if !m.disabled {
			m.addShot()
		}

	case key.Matches(msg, keys.Delete):
		if !m.disabled {
			m.deleteShot()
		}

	case key.Matches(msg, keys.Edit):
		if !m.disabled {
			m.beginEdit()
		}

	case key.Matches(msg, keys.Undo):
		if !m.disabled {
			m.undo()
		}

	case key.Matches(msg, keys.Redo):
		if !m.disabled {
			m.redo()
		}
	}

	return m, nil
}

// handleMouse handles pointer input, including the drag state machine
func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	switch msg.Action {
	case tea.MouseActionPress:
		switch msg.Button {
		case tea.MouseButtonWheelUp:
			// Scrolling mid-drag would desynchronize the bounds snapshot
			if !m.drag.dragging() {
				m.viewport.SetYOffset(m.viewport.YOffset - 1)
			}

		case tea.MouseButtonWheelDown:
			if !m.drag.dragging() {
				m.viewport.SetYOffset(m.viewport.YOffset + 1)
			}

		case tea.MouseButtonLeft:
			m.handlePress(msg.X, msg.Y)
		}

	case tea.MouseActionMotion:
		if m.drag.dragging() {
			if m.drag.move(m.contentY(msg.Y)) {
				// Candidate insertion index changed: redraw the edge feedback.
				// The floating clone is overlaid in View each frame.
				m.updateViewportContent()
			}
		}

	case tea.MouseActionRelease:
		if m.drag.dragging() {
			if from, to, ok := m.drag.drop(); ok {
				m.debugf("[DRAG] commit %d -> %d", from, to)
				m.commitReorder(from, to)
			}

			// Re-render unconditionally: covers committed, cancelled,
			// and no-op releases alike
			m.updateViewportContent()
		}
	}

	return m, nil
}

// handlePress routes a left-button press to the affordance under the pointer
func (m *Model) handlePress(x, y int) {
	// Re-entrant starts are not defended beyond ignoring them
	if m.drag.dragging() {
		return
	}

	// Add-shot line sits directly below the list viewport
	if y == listTop+m.viewport.Height {
		if m.editing {
			m.endEdit()
		}

		if !m.disabled {
			m.addShot()
		}

		return
	}

	cy, ok := m.contentYChecked(y)
	if !ok {
		return
	}

	index := cy / itemHeight
	if index >= m.list.Len() {
		return
	}

	if m.editing {
		m.endEdit()
	}

	row := cy % itemHeight

	switch row {
	case cardAffordanceRow:
		switch {
		case x <= handleColEnd:
			// Drag handle: suppressed entirely while disabled
			if !m.disabled {
				m.cursorPos = index
				if m.drag.start(index, cy, m.itemRects()) {
					m.debugf("[DRAG] start on %d", index)
				}
			}
			m.updateViewportContent()

		case x >= minusColStart && x <= minusColEnd:
			m.cursorPos = index
			if m.disabled {
				m.updateViewportContent()
			} else {
				m.stepDuration(index, -1)
			}

		case x >= plusColStart && x <= plusColEnd:
			m.cursorPos = index
			if m.disabled {
				m.updateViewportContent()
			} else {
				m.stepDuration(index, 1)
			}

		case x >= deleteColStart && x <= deleteColEnd:
			m.cursorPos = index
			if m.disabled {
				m.updateViewportContent()
			} else {
				m.deleteShot()
			}

		default:
			m.cursorPos = index
			m.updateViewportContent()
		}

	case cardDescriptionRow:
		m.cursorPos = index
		if m.disabled {
			m.updateViewportContent()
		} else {
			m.beginEdit()
		}

	default:
		// Insertion-edge row: selection only
		m.cursorPos = index
		m.updateViewportContent()
	}
}

// contentY converts a screen row to list-content coordinates
func (m *Model) contentY(y int) int {
	return y - listTop + m.viewport.YOffset
}

// contentYChecked converts a screen row to content coordinates, reporting
// whether the row lies inside the list viewport
func (m *Model) contentYChecked(y int) (int, bool) {
	if y < listTop || y >= listTop+m.viewport.Height {
		return 0, false
	}

	cy := m.contentY(y)
	if cy < 0 {
		return 0, false
	}

	return cy, true
}
