// ABOUTME: Undo/redo stack manager for shot list editing
// ABOUTME: Manages state history with maximum stack size limit

package editor

import "shotlist-editor/shot"

// ListState captures a snapshot of the shot list for undo/redo
type ListState struct {
	Shots     []shot.Shot
	CursorPos int
}

// UndoManager manages undo/redo stacks with maximum size limit
type UndoManager struct {
	undoStack []ListState
	redoStack []ListState
	maxSize   int
}

// NewUndoManager creates a new undo manager with the specified max stack size
func NewUndoManager(maxSize int) *UndoManager {
	return &UndoManager{
		undoStack: []ListState{},
		redoStack: []ListState{},
		maxSize:   maxSize,
	}
}

// Push saves a new state to the undo stack
// Clears the redo stack (you can't redo after a new action)
func (um *UndoManager) Push(state ListState) {
	// Make a deep copy of shots
	stateCopy := ListState{
		Shots:     append([]shot.Shot{}, state.Shots...),
		CursorPos: state.CursorPos,
	}

	um.undoStack = append(um.undoStack, stateCopy)

	// Enforce max size
	if len(um.undoStack) > um.maxSize {
		um.undoStack = um.undoStack[1:]
	}

	// Clear redo stack on new edit
	um.redoStack = []ListState{}
}

// Undo restores the previous state
// Returns the state and true if undo was successful, or zero value and false if nothing to undo
func (um *UndoManager) Undo(currentState ListState) (ListState, bool) {
	if len(um.undoStack) == 0 {
		return ListState{}, false
	}

	// Save current state to redo stack
	redoState := ListState{
		Shots:     append([]shot.Shot{}, currentState.Shots...),
		CursorPos: currentState.CursorPos,
	}

	um.redoStack = append(um.redoStack, redoState)

	// Enforce max size on redo stack
	if len(um.redoStack) > um.maxSize {
		um.redoStack = um.redoStack[1:]
	}

	// Pop from undo stack
	state := um.undoStack[len(um.undoStack)-1]
	um.undoStack = um.undoStack[:len(um.undoStack)-1]

	return state, true
}

// Redo restores the next state
// Returns the state and true if redo was successful, or zero value and false if nothing to redo
func (um *UndoManager) Redo(currentState ListState) (ListState, bool) {
	if len(um.redoStack) == 0 {
		return ListState{}, false
	}

	// Save current state to undo stack
	undoState := ListState{
		Shots:     append([]shot.Shot{}, currentState.Shots...),
		CursorPos: currentState.CursorPos,
	}

	um.undoStack = append(um.undoStack, undoState)

	// Enforce max size on undo stack
	if len(um.undoStack) > um.maxSize {
		um.undoStack = um.undoStack[1:]
	}

	// Pop from redo stack
	state := um.redoStack[len(um.redoStack)-1]
	um.redoStack = um.redoStack[:len(um.redoStack)-1]

	return state, true
}

// UndoSize returns the number of items in the undo stack
func (um *UndoManager) UndoSize() int {
	return len(um.undoStack)
}

// RedoSize returns the number of items in the redo stack
func (um *UndoManager) RedoSize() int {
	return len(um.redoStack)
}

// Clear clears both stacks
func (um *UndoManager) Clear() {
	um.undoStack = []ListState{}
	um.redoStack = []ListState{}
}
