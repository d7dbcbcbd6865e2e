// ABOUTME: Drag-and-drop reorder controller with hit-testing over snapshotted item bounds
// ABOUTME: Owns the Idle/Dragging state machine and the reinsertion index arithmetic

package editor

// dragPhase identifies the controller state
type dragPhase int

const (
	phaseIdle dragPhase = iota
	phaseDragging
)

// itemRect is the vertical bounding box of one shot card in list-content
// coordinates (viewport scrolling already removed)
type itemRect struct {
	Top    int
	Height int
}

// mid returns the vertical midpoint of the rect
func (r itemRect) mid() int {
	return r.Top + r.Height/2
}

// dragController owns all drag bookkeeping for one editor instance.
// Hit-testing runs against the bounds snapshotted when the drag started, not
// live re-measurement, so layout never shifts under the pointer mid-drag.
type dragController struct {
	phase       dragPhase
	sourceIndex int        // Item the drag started on
	overIndex   int        // Candidate insertion index, -1 until the first move
	grabOffset  int        // Pointer offset within the pressed item
	cloneTop    int        // Current floating clone position
	rects       []itemRect // Bounds snapshot taken on drag start
}

func newDragController() *dragController {
	return &dragController{
		phase:     phaseIdle,
		overIndex: -1,
	}
}

// dragging reports whether a drag is in progress
func (d *dragController) dragging() bool {
	return d.phase == phaseDragging
}

// start transitions Idle -> Dragging for a press on the item at source.
// A press while already dragging is ignored (single-pointer model).
func (d *dragController) start(source, pointerY int, rects []itemRect) bool {
	if d.phase != phaseIdle {
		return false
	}

	if source < 0 || source >= len(rects) {
		return false
	}

	d.phase = phaseDragging
	d.sourceIndex = source
	d.overIndex = -1
	d.grabOffset = pointerY - rects[source].Top
	d.cloneTop = rects[source].Top
	d.rects = append([]itemRect{}, rects...)

	return true
}

// move tracks a pointer move, repositioning the floating clone and
// recomputing the candidate insertion index against the snapshot.
// Returns true only when the candidate changed, so feedback is redrawn
// only on an actual change.
func (d *dragController) move(pointerY int) bool {
	if d.phase != phaseDragging {
		return false
	}

	d.cloneTop = pointerY - d.grabOffset

	candidate := d.hitTest(pointerY)
	if candidate == d.overIndex {
		return false
	}

	d.overIndex = candidate

	return true
}

// hitTest scans the snapshot top to bottom and returns the index of the
// first item whose vertical midpoint lies below the pointer; if none
// qualifies the candidate is the end of the list.
func (d *dragController) hitTest(pointerY int) int {
	for i, r := range d.rects {
		if pointerY < r.mid() {
			return i
		}
	}

	return len(d.rects)
}

// drop ends the drag and returns the reorder parameters when a candidate was
// recorded that resolves to a position other than the source's own. The
// destination is adjusted by -1 when the candidate lies past the source,
// because removing the source shifts later positions left before reinsertion;
// a candidate that adjusts back onto the source (the edge directly below it)
// is a non-commit. The controller always resets to Idle and discards the
// snapshot, commit or not.
func (d *dragController) drop() (from, to int, ok bool) {
	if d.phase != phaseDragging {
		return 0, 0, false
	}

	from = d.sourceIndex
	over := d.overIndex
	d.cancel()

	if over < 0 {
		return 0, 0, false
	}

	to = over
	if over > from {
		to = over - 1
	}

	if to == from {
		return 0, 0, false
	}

	return from, to, true
}

// cancel unconditionally returns the controller to Idle and discards the
// snapshot. Safe on every exit path, including widget teardown.
func (d *dragController) cancel() {
	d.phase = phaseIdle
	d.sourceIndex = 0
	d.overIndex = -1
	d.grabOffset = 0
	d.cloneTop = 0
	d.rects = nil
}
