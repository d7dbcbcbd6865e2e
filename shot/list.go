// ABOUTME: Ordered shot list model with atomic mutation operations
// ABOUTME: Enforces count bounds, duration budget, and name renumbering on every change

package shot

import (
	"fmt"

	"shotlist-editor/config"
)

// List is the ordered shot sequence. All mutations go through the five
// operations below; each fully succeeds or has no effect, and display names
// are renumbered before any caller sees the new state.
type List struct {
	shots  []Shot
	limits config.Limits
	nextID int // Monotonic id counter, seeded from the highest shot-<n> suffix
}

// NewList builds a list from a host-supplied initial value.
// A nil or empty initial value seeds a single default shot. Out-of-range
// durations are clamped, over-long descriptions truncated, missing or
// duplicate ids replaced; the input slice is never retained.
func NewList(initial []Shot, limits config.Limits) *List {
	l := &List{
		limits: limits,
		nextID: 1,
	}
	l.Restore(initial)

	return l
}

// Restore replaces the list contents with the given shots, applying the same
// normalization as construction. The id counter is only ever raised, so ids
// dropped by a restore are never reissued for the lifetime of the list.
func (l *List) Restore(shots []Shot) {
	// Seed the id counter before assigning any fresh ids so externally
	// supplied shot-<n> ids never collide with generated ones
	for _, s := range shots {
		if suffix, ok := parseIDSuffix(s.ID); ok && suffix >= l.nextID {
			l.nextID = suffix + 1
		}
	}

	l.shots = nil

	for _, s := range shots {
		if len(l.shots) == l.limits.MaxShots {
			break
		}

		remaining := l.limits.MaxTotalDuration - l.totalDuration()
		if remaining < l.limits.MinDuration {
			// Budget exhausted, remaining shots cannot fit
			break
		}

		s.Duration = clamp(s.Duration, l.limits.MinDuration, l.limits.MaxDuration)
		if s.Duration > remaining {
			s.Duration = remaining
		}

		s.Description = truncateDescription(s.Description, l.limits.MaxDescriptionLength)

		if s.ID == "" || l.hasID(s.ID) {
			s.ID = l.newID()
		}

		l.shots = append(l.shots, s)
	}

	if len(l.shots) == 0 {
		l.shots = append(l.shots, Shot{
			ID:       l.newID(),
			Duration: clamp(l.limits.DefaultAddDuration, l.limits.MinDuration, l.limits.MaxTotalDuration),
		})
	}

	l.renumber()
}

// ========== Operations ==========

// Add appends a new shot with a fresh id and duration
// min(default_add_duration, remaining budget).
// Returns false when the list is full or the budget cannot fit another shot.
func (l *List) Add(description string) bool {
	if len(l.shots) == l.limits.MaxShots {
		return false
	}

	remaining := l.RemainingBudget()
	if remaining < l.limits.MinDuration {
		return false
	}

	duration := l.limits.DefaultAddDuration
	if duration > remaining {
		duration = remaining
	}

	l.shots = append(l.shots, Shot{
		ID:          l.newID(),
		Duration:    duration,
		Description: truncateDescription(description, l.limits.MaxDescriptionLength),
	})
	l.renumber()

	return true
}

// Delete removes the shot at index and renumbers names.
// Returns false at the minimum count or for an out-of-range index.
func (l *List) Delete(index int) bool {
	if len(l.shots) == l.limits.MinShots {
		return false
	}

	if index < 0 || index >= len(l.shots) {
		return false
	}

	l.shots = append(l.shots[:index], l.shots[index+1:]...)
	l.renumber()

	return true
}

// SetDuration clamps duration to the per-shot bounds and then to the room
// the shared budget leaves for this shot. Returns false if nothing changed.
func (l *List) SetDuration(index, duration int) bool {
	if index < 0 || index >= len(l.shots) {
		return false
	}

	duration = clamp(duration, l.limits.MinDuration, l.limits.MaxDuration)

	// Room available for this shot given every other shot's current value
	if room := l.Budget(index); duration > room {
		duration = room
	}

	if l.shots[index].Duration == duration {
		return false
	}

	l.shots[index].Duration = duration

	return true
}

// SetDescription stores text truncated to the description cap.
// Returns false if nothing changed.
func (l *List) SetDescription(index int, text string) bool {
	if index < 0 || index >= len(l.shots) {
		return false
	}

	text = truncateDescription(text, l.limits.MaxDescriptionLength)
	if l.shots[index].Description == text {
		return false
	}

	l.shots[index].Description = text

	return true
}

// Reorder removes the shot at from and reinserts it at to, where to is
// interpreted as the index after removal. Returns false for a no-op move
// or out-of-range indexes.
func (l *List) Reorder(from, to int) bool {
	if from < 0 || from >= len(l.shots) {
		return false
	}

	if to < 0 {
		to = 0
	}

	if to > len(l.shots)-1 {
		to = len(l.shots) - 1
	}

	if from == to {
		return false
	}

	moved := l.shots[from]
	l.shots = append(l.shots[:from], l.shots[from+1:]...)

	l.shots = append(l.shots, Shot{})
	copy(l.shots[to+1:], l.shots[to:])
	l.shots[to] = moved

	l.renumber()

	return true
}

// ========== Queries ==========

// Len returns the number of shots
func (l *List) Len() int {
	return len(l.shots)
}

// Get returns the shot at index and whether the index was in range
func (l *List) Get(index int) (Shot, bool) {
	if index < 0 || index >= len(l.shots) {
		return Shot{}, false
	}

	return l.shots[index], true
}

// Shots returns a deep, detached copy of the current ordered sequence.
// Callers can never mutate the list's internal state through it.
func (l *List) Shots() []Shot {
	snapshot := make([]Shot, len(l.shots))
	copy(snapshot, l.shots)

	return snapshot
}

// TotalDuration returns the sum of all shot durations
func (l *List) TotalDuration() int {
	return l.totalDuration()
}

// RemainingBudget returns the unallocated portion of the total duration budget
func (l *List) RemainingBudget() int {
	return l.limits.MaxTotalDuration - l.totalDuration()
}

// Budget returns the room available for the shot at index: the total budget
// minus the sum over all other shots. Depends on every other shot's current
// value, so affordances must recompute it on every render.
func (l *List) Budget(index int) int {
	if index < 0 || index >= len(l.shots) {
		return 0
	}

	return l.limits.MaxTotalDuration - (l.totalDuration() - l.shots[index].Duration)
}

// CanAdd reports whether another shot fits under both the count limit
// and the duration budget
func (l *List) CanAdd() bool {
	return len(l.shots) < l.limits.MaxShots && l.RemainingBudget() >= l.limits.MinDuration
}

// CanDelete reports whether a shot may be removed
func (l *List) CanDelete() bool {
	return len(l.shots) > l.limits.MinShots
}

// CanIncrease reports whether the shot at index may grow by one second
func (l *List) CanIncrease(index int) bool {
	if index < 0 || index >= len(l.shots) {
		return false
	}

	d := l.shots[index].Duration

	return d < l.limits.MaxDuration && d < l.Budget(index)
}

// CanDecrease reports whether the shot at index may shrink by one second
func (l *List) CanDecrease(index int) bool {
	if index < 0 || index >= len(l.shots) {
		return false
	}

	return l.shots[index].Duration > l.limits.MinDuration
}

// Limits returns the bounds this list enforces
func (l *List) Limits() config.Limits {
	return l.limits
}

// String returns a compact summary for logging
func (l *List) String() string {
	return fmt.Sprintf("%d shots, %d/%ds", len(l.shots), l.totalDuration(), l.limits.MaxTotalDuration)
}

// ========== Helpers ==========

// renumber re-derives every display name from its 1-based position.
// Part of the same atomic operation as every structural mutation.
func (l *List) renumber() {
	for i := range l.shots {
		l.shots[i].Name = displayName(i + 1)
	}
}

func (l *List) totalDuration() int {
	total := 0
	for _, s := range l.shots {
		total += s.Duration
	}

	return total
}

// newID returns a fresh id that cannot collide with any existing one,
// including opaque host-supplied ids
func (l *List) newID() string {
	for {
		id := "shot-" + fmt.Sprint(l.nextID)
		l.nextID++

		if !l.hasID(id) {
			return id
		}
	}
}

func (l *List) hasID(id string) bool {
	for _, s := range l.shots {
		if s.ID == id {
			return true
		}
	}

	return false
}

func clamp(v, minVal, maxVal int) int {
	if v < minVal {
		return minVal
	}

	if v > maxVal {
		return maxVal
	}

	return v
}

// truncateDescription caps text at maxLen characters (runes, so a multi-byte
// character is never split)
func truncateDescription(text string, maxLen int) string {
	runes := []rune(text)
	if len(runes) <= maxLen {
		return text
	}

	return string(runes[:maxLen])
}
