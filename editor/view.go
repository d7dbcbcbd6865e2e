// ABOUTME: Rendering for the shot list editor
// ABOUTME: Draws shot cards, drag feedback, the add-shot line, status bar, and help

package editor

import (
	"fmt"
	"strings"
	"time"

	"shotlist-editor/shot"
)

// cardWidth is the fixed width of a card's affordance line, which keeps the
// mouse hit zones at stable columns
const cardWidth = 26

// View renders the editor
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Shot List"))
	b.WriteString("\n\n")

	listView := m.viewport.View()
	if m.drag.dragging() {
		listView = m.overlayClone(listView)
	}

	b.WriteString(listView)
	b.WriteString("\n")

	b.WriteString(m.renderAddLine())
	b.WriteString("\n")
	b.WriteString(m.renderStatusBar())
	b.WriteString("\n")
	b.WriteString(m.renderHelp())

	return b.String()
}

// updateViewportContent rebuilds the list content. Called after every state
// change that affects the cards; during a drag it runs only when the
// candidate insertion index changes.
func (m *Model) updateViewportContent() {
	dragging := m.drag.dragging()

	lines := make([]string, 0, m.list.Len()*itemHeight+1)

	for i := 0; i < m.list.Len(); i++ {
		s, _ := m.list.Get(i)

		lines = append(lines, m.renderEdgeRow(i))

		if dragging && i == m.drag.sourceIndex {
			// The source stays in place, dimmed, while its clone floats
			lines = append(lines,
				dimStyle.Render(m.plainAffordanceLine(s)),
				dimStyle.Render("  "+descriptionText(s)))

			continue
		}

		lines = append(lines, m.renderAffordanceRow(i, s))
		lines = append(lines, m.renderDescriptionRow(i, s))
	}

	// Trailing edge closes the last card and carries the end-of-list marker
	lines = append(lines, m.renderEdgeRow(m.list.Len()))

	m.viewport.SetContent(strings.Join(lines, "\n"))
}

// renderEdgeRow draws the insertion edge above the card at index (or below
// the last card when index equals the list length). The edge is highlighted
// while it is the drag candidate, unless dropping there would be a no-op.
func (m *Model) renderEdgeRow(index int) string {
	if !m.drag.dragging() || m.drag.overIndex != index {
		return ""
	}

	// A candidate that resolves back to the source position gets no marker:
	// the source item is never marked as its own target
	resolved := m.drag.overIndex
	if resolved > m.drag.sourceIndex {
		resolved--
	}

	if resolved == m.drag.sourceIndex {
		return ""
	}

	return edgeStyle.Render(strings.Repeat("▔", cardWidth))
}

// renderAffordanceRow draws the handle, name, duration stepper, and delete
// affordance for one card. Fields are width-formatted before styling so ANSI
// sequences never shift the hit-zone columns.
func (m *Model) renderAffordanceRow(index int, s shot.Shot) string {
	name := fmt.Sprintf("%-6s", s.Name)
	dur := fmt.Sprintf("%2ds", s.Duration)

	minus := "[-]"
	if m.disabled || !m.list.CanDecrease(index) {
		minus = disabledAffordanceStyle.Render(minus)
	}

	plus := "[+]"
	if m.disabled || !m.list.CanIncrease(index) {
		plus = disabledAffordanceStyle.Render(plus)
	}

	del := "[x]"
	if m.disabled || !m.list.CanDelete() {
		del = disabledAffordanceStyle.Render(del)
	}

	if index == m.cursorPos {
		name = cursorStyle.Render(name)
	}

	line := "≡ " + name + "  " + minus + " " + dur + " " + plus + "  " + del

	if index == m.cursorPos && !m.disabled {
		line += helpStyle.Render(fmt.Sprintf("  up to %ds", m.list.Budget(index)))
	}

	return line
}

// renderDescriptionRow draws a card's description, or the live text input
// while that card is being edited
func (m *Model) renderDescriptionRow(index int, s shot.Shot) string {
	if m.editing && index == m.cursorPos {
		if m.atDescriptionCap(m.input.Value()) {
			return "  " + descErrorStyle.Render(m.input.View())
		}

		return "  " + m.input.View()
	}

	text := descriptionText(s)

	style := descStyle
	if s.Description == "" {
		style = dimStyle
	} else if m.atDescriptionCap(s.Description) {
		style = descErrorStyle
	}

	return "  " + style.Render(text)
}

// atDescriptionCap reports whether text has reached the description length
// cap, in characters rather than bytes
func (m *Model) atDescriptionCap(text string) bool {
	return len([]rune(text)) >= m.list.Limits().MaxDescriptionLength
}

// plainAffordanceLine renders a card's affordance row with no styling,
// for the dimmed source and the floating clone
func (m *Model) plainAffordanceLine(s shot.Shot) string {
	return fmt.Sprintf("≡ %-6s  [-] %2ds [+]  [x]", s.Name, s.Duration)
}

// descriptionText returns the card's display description
func descriptionText(s shot.Shot) string {
	if s.Description == "" {
		return "(no description)"
	}

	return truncate(s.Description, maxDescDisplay)
}

// overlayClone paints the floating drag clone over the rendered list at its
// current pointer-tracked position
func (m Model) overlayClone(listView string) string {
	row := m.drag.cloneTop - m.viewport.YOffset
	if row < 0 || row >= m.viewport.Height {
		return listView
	}

	s, ok := m.list.Get(m.drag.sourceIndex)
	if !ok {
		return listView
	}

	lines := strings.Split(listView, "\n")
	if row >= len(lines) {
		return listView
	}

	lines[row] = cloneStyle.Render(m.plainAffordanceLine(s))

	return strings.Join(lines, "\n")
}

// renderAddLine draws the add-shot affordance below the list
func (m Model) renderAddLine() string {
	line := "[ + Add Shot ]"

	if m.disabled || !m.list.CanAdd() {
		return disabledAffordanceStyle.Render(line)
	}

	return line
}

// renderStatusBar shows a transient message if recent, otherwise a summary
func (m Model) renderStatusBar() string {
	if m.statusMsg != "" && time.Since(m.statusMsgAge) < statusMessageDuration {
		return statusStyle.Render(m.statusMsg)
	}

	limits := m.list.Limits()

	summary := fmt.Sprintf("%d/%d shots | %d/%ds",
		m.list.Len(), limits.MaxShots,
		m.list.TotalDuration(), limits.MaxTotalDuration)

	if m.disabled {
		summary += " | READ-ONLY"
	}

	if m.undoMgr.UndoSize() > 0 || m.undoMgr.RedoSize() > 0 {
		summary += fmt.Sprintf(" | u:%d r:%d", m.undoMgr.UndoSize(), m.undoMgr.RedoSize())
	}

	return statusStyle.Width(m.width).Render(summary)
}

// renderHelp draws the context-sensitive key hint line
func (m Model) renderHelp() string {
	if m.editing {
		return helpStyle.Render("type to edit | enter/esc: done")
	}

	if m.disabled {
		return helpStyle.Render("↑/↓: navigate | q: quit")
	}

	return helpStyle.Render(
		"↑/↓: navigate | ←/→: duration | shift+↑/↓: move | a: add | d: delete | e: edit | u: undo | ctrl+r: redo | q: quit")
}
