// ABOUTME: Tests for the shot list model operations and invariants
// ABOUTME: Covers count bounds, duration budget, name renumbering, and id stability

package shot

import (
	"testing"

	"shotlist-editor/config"
)

func newTestList(initial []Shot) *List {
	return NewList(initial, config.DefaultLimits())
}

// checkInvariants verifies the cross-shot invariants that must hold after
// every operation
func checkInvariants(t *testing.T, l *List) {
	t.Helper()

	limits := l.Limits()

	if l.Len() < limits.MinShots || l.Len() > limits.MaxShots {
		t.Errorf("Shot count %d outside [%d, %d]", l.Len(), limits.MinShots, limits.MaxShots)
	}

	if l.TotalDuration() > limits.MaxTotalDuration {
		t.Errorf("Total duration %d exceeds budget %d", l.TotalDuration(), limits.MaxTotalDuration)
	}

	seen := make(map[string]bool)

	for i, s := range l.Shots() {
		if want := displayName(i + 1); s.Name != want {
			t.Errorf("Shot at position %d named %q, want %q", i, s.Name, want)
		}

		if s.Duration < limits.MinDuration || s.Duration > limits.MaxDuration {
			t.Errorf("Shot %d duration %d outside [%d, %d]", i, s.Duration, limits.MinDuration, limits.MaxDuration)
		}

		if seen[s.ID] {
			t.Errorf("Duplicate id %q", s.ID)
		}
		seen[s.ID] = true
	}
}

func TestNewListSeedsDefaultShot(t *testing.T) {
	l := newTestList(nil)

	if l.Len() != 1 {
		t.Fatalf("Expected 1 default shot, got %d", l.Len())
	}

	s, _ := l.Get(0)
	if s.Name != "Shot1" {
		t.Errorf("Expected name Shot1, got %q", s.Name)
	}

	if s.Duration != 2 {
		t.Errorf("Expected default duration 2, got %d", s.Duration)
	}

	if s.Description != "" {
		t.Errorf("Expected empty description, got %q", s.Description)
	}

	checkInvariants(t, l)
}

func TestNewListNormalizesHostInput(t *testing.T) {
	tests := []struct {
		name    string
		initial []Shot
		check   func(t *testing.T, l *List)
	}{
		{
			name: "oversized duration clamped",
			initial: []Shot{
				{ID: "shot-1", Duration: 99},
			},
			check: func(t *testing.T, l *List) {
				s, _ := l.Get(0)
				if s.Duration != 15 {
					t.Errorf("Expected duration clamped to 15, got %d", s.Duration)
				}
			},
		},
		{
			name: "durations clamped to shared budget",
			initial: []Shot{
				{ID: "shot-1", Duration: 10},
				{ID: "shot-2", Duration: 10},
			},
			check: func(t *testing.T, l *List) {
				if l.TotalDuration() != 15 {
					t.Errorf("Expected total 15, got %d", l.TotalDuration())
				}
			},
		},
		{
			name: "duplicate ids replaced",
			initial: []Shot{
				{ID: "shot-1", Duration: 2},
				{ID: "shot-1", Duration: 2},
			},
			check: func(t *testing.T, l *List) {
				a, _ := l.Get(0)
				b, _ := l.Get(1)
				if a.ID == b.ID {
					t.Errorf("Expected distinct ids, both are %q", a.ID)
				}
			},
		},
		{
			name: "stale names renumbered",
			initial: []Shot{
				{ID: "shot-1", Name: "Shot7", Duration: 2},
				{ID: "shot-2", Name: "", Duration: 2},
			},
			check: func(t *testing.T, l *List) {
				a, _ := l.Get(0)
				b, _ := l.Get(1)
				if a.Name != "Shot1" || b.Name != "Shot2" {
					t.Errorf("Expected Shot1/Shot2, got %q/%q", a.Name, b.Name)
				}
			},
		},
		{
			name: "excess shots beyond count limit dropped",
			initial: []Shot{
				{Duration: 1}, {Duration: 1}, {Duration: 1}, {Duration: 1},
				{Duration: 1}, {Duration: 1}, {Duration: 1}, {Duration: 1},
			},
			check: func(t *testing.T, l *List) {
				if l.Len() != 6 {
					t.Errorf("Expected 6 shots, got %d", l.Len())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList(tt.initial)
			tt.check(t, l)
			checkInvariants(t, l)
		})
	}
}

func TestIDCounterSeededFromHighestSuffix(t *testing.T) {
	l := newTestList([]Shot{
		{ID: "shot-3", Duration: 2},
		{ID: "shot-7", Duration: 2},
	})

	if !l.Add("") {
		t.Fatal("Add failed")
	}

	s, _ := l.Get(2)
	if suffix, ok := parseIDSuffix(s.ID); !ok || suffix < 8 {
		t.Errorf("Expected next id shot-8 or higher, got %q", s.ID)
	}

	checkInvariants(t, l)
}

func TestMalformedIDsTolerated(t *testing.T) {
	l := newTestList([]Shot{
		{ID: "clip_42", Duration: 2},
		{ID: "shot-abc", Duration: 2},
	})

	a, _ := l.Get(0)
	if a.ID != "clip_42" {
		t.Errorf("Expected opaque id preserved, got %q", a.ID)
	}

	if !l.Add("") {
		t.Fatal("Add failed")
	}

	checkInvariants(t, l)
}

func TestAdd(t *testing.T) {
	l := newTestList(nil)

	// One default shot (duration 2). Four more adds fit comfortably.
	for i := 0; i < 4; i++ {
		if !l.Add("") {
			t.Fatalf("Add %d failed", i+1)
		}
		checkInvariants(t, l)
	}

	if l.Len() != 5 {
		t.Fatalf("Expected 5 shots, got %d", l.Len())
	}

	// Sixth shot still fits: min(2, 15-10) = 2
	if !l.Add("") {
		t.Fatal("Expected sixth add to succeed")
	}

	s, _ := l.Get(5)
	if s.Duration != 2 {
		t.Errorf("Expected new shot duration 2, got %d", s.Duration)
	}

	// List is at the count limit now
	before := l.Shots()
	if l.Add("") {
		t.Error("Expected add at max count to be rejected")
	}

	after := l.Shots()
	if len(before) != len(after) {
		t.Fatalf("Rejected add changed length: %d -> %d", len(before), len(after))
	}

	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Rejected add changed shot %d: %+v -> %+v", i, before[i], after[i])
		}
	}
}

func TestAddClampsToRemainingBudget(t *testing.T) {
	l := newTestList([]Shot{
		{Duration: 14},
	})

	if !l.Add("") {
		t.Fatal("Add failed")
	}

	s, _ := l.Get(1)
	if s.Duration != 1 {
		t.Errorf("Expected duration min(2, 1) = 1, got %d", s.Duration)
	}

	// Budget is now exhausted: remaining 0 < MinDuration
	if l.Add("") {
		t.Error("Expected add with exhausted budget to be rejected")
	}

	checkInvariants(t, l)
}

func TestDelete(t *testing.T) {
	l := newTestList([]Shot{
		{Duration: 2}, {Duration: 3}, {Duration: 4},
	})

	if !l.Delete(1) {
		t.Fatal("Delete failed")
	}

	if l.Len() != 2 {
		t.Fatalf("Expected 2 shots, got %d", l.Len())
	}

	a, _ := l.Get(0)
	b, _ := l.Get(1)
	if a.Duration != 2 || b.Duration != 4 {
		t.Errorf("Expected durations 2, 4 after delete, got %d, %d", a.Duration, b.Duration)
	}

	checkInvariants(t, l)
}

func TestDeleteAtMinCountRejected(t *testing.T) {
	l := newTestList(nil)

	before := l.Shots()
	if l.Delete(0) {
		t.Error("Expected delete at min count to be rejected")
	}

	after := l.Shots()
	if len(after) != len(before) || after[0] != before[0] {
		t.Error("Rejected delete changed the list")
	}
}

func TestDeleteOutOfRange(t *testing.T) {
	l := newTestList([]Shot{{Duration: 2}, {Duration: 2}})

	if l.Delete(-1) || l.Delete(2) {
		t.Error("Expected out-of-range delete to be rejected")
	}
}

func TestSetDuration(t *testing.T) {
	tests := []struct {
		name     string
		initial  []Shot
		index    int
		value    int
		want     int
		expectOK bool
	}{
		{
			name:     "within bounds",
			initial:  []Shot{{Duration: 2}},
			index:    0,
			value:    5,
			want:     5,
			expectOK: true,
		},
		{
			name:     "clamped to per-shot max",
			initial:  []Shot{{Duration: 2}},
			index:    0,
			value:    99,
			want:     15,
			expectOK: true,
		},
		{
			name:     "clamped to per-shot min",
			initial:  []Shot{{Duration: 2}},
			index:    0,
			value:    -3,
			want:     1,
			expectOK: true,
		},
		{
			name:     "clamped to shared budget",
			initial:  []Shot{{Duration: 2}, {Duration: 10}},
			index:    0,
			value:    14, // within [1, 15] but budget leaves room for only 5
			want:     5,
			expectOK: true,
		},
		{
			name:     "unchanged value is a no-op",
			initial:  []Shot{{Duration: 2}},
			index:    0,
			value:    2,
			want:     2,
			expectOK: false,
		},
		{
			name:     "out of range index",
			initial:  []Shot{{Duration: 2}},
			index:    3,
			value:    5,
			want:     2,
			expectOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList(tt.initial)

			changed := l.SetDuration(tt.index, tt.value)
			if changed != tt.expectOK {
				t.Errorf("SetDuration returned %v, want %v", changed, tt.expectOK)
			}

			s, _ := l.Get(0)
			if s.Duration != tt.want {
				t.Errorf("Expected duration %d, got %d", tt.want, s.Duration)
			}

			checkInvariants(t, l)
		})
	}
}

func TestSetDescription(t *testing.T) {
	limits := config.DefaultLimits()
	limits.MaxDescriptionLength = 10
	l := NewList([]Shot{{Duration: 2}}, limits)

	if !l.SetDescription(0, "wide shot") {
		t.Fatal("SetDescription failed")
	}

	s, _ := l.Get(0)
	if s.Description != "wide shot" {
		t.Errorf("Expected description stored, got %q", s.Description)
	}

	// Over-cap text is truncated
	l.SetDescription(0, "a very long description")

	s, _ = l.Get(0)
	if s.Description != "a very lon" {
		t.Errorf("Expected truncation to 10 chars, got %q", s.Description)
	}

	// Same value again is a no-op
	if l.SetDescription(0, "a very long description") {
		t.Error("Expected no-op for unchanged truncated value")
	}
}

func TestReorder(t *testing.T) {
	tests := []struct {
		name      string
		from, to  int
		wantOrder []int // durations identify the shots: A=2, B=3, C=4
		expectOK  bool
	}{
		{"move first to end", 0, 2, []int{3, 4, 2}, true},
		{"move last to front", 2, 0, []int{4, 2, 3}, true},
		{"same index is a no-op", 1, 1, []int{2, 3, 4}, false},
		{"adjacent swap forward", 0, 1, []int{3, 2, 4}, true},
		{"adjacent swap backward", 2, 1, []int{2, 4, 3}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newTestList([]Shot{
				{Duration: 2}, {Duration: 3}, {Duration: 4},
			})

			changed := l.Reorder(tt.from, tt.to)
			if changed != tt.expectOK {
				t.Errorf("Reorder returned %v, want %v", changed, tt.expectOK)
			}

			for i, want := range tt.wantOrder {
				s, _ := l.Get(i)
				if s.Duration != want {
					t.Errorf("Position %d: expected duration %d, got %d", i, want, s.Duration)
				}
			}

			checkInvariants(t, l)
		})
	}
}

func TestReorderPreservesIDs(t *testing.T) {
	l := newTestList([]Shot{
		{ID: "shot-1", Duration: 2},
		{ID: "shot-2", Duration: 3},
		{ID: "shot-3", Duration: 4},
	})

	l.Reorder(0, 2)

	s, _ := l.Get(2)
	if s.ID != "shot-1" {
		t.Errorf("Expected moved shot to keep id shot-1, got %q", s.ID)
	}

	if s.Name != "Shot3" {
		t.Errorf("Expected moved shot renamed to Shot3, got %q", s.Name)
	}
}

func TestBudget(t *testing.T) {
	l := newTestList([]Shot{
		{Duration: 4}, {Duration: 6},
	})

	// Budget for shot 0: 15 - 6 = 9
	if got := l.Budget(0); got != 9 {
		t.Errorf("Expected budget 9 for shot 0, got %d", got)
	}

	// Budget for shot 1: 15 - 4 = 11
	if got := l.Budget(1); got != 11 {
		t.Errorf("Expected budget 11 for shot 1, got %d", got)
	}

	if got := l.RemainingBudget(); got != 5 {
		t.Errorf("Expected remaining budget 5, got %d", got)
	}
}

func TestCanIncreaseBoundary(t *testing.T) {
	// Single shot at 14 of a 15-second budget: one second of headroom left
	l := newTestList([]Shot{{Duration: 14}})

	if !l.CanIncrease(0) {
		t.Error("Expected increase to 15 to be allowed")
	}

	l.SetDuration(0, 15)

	if l.CanIncrease(0) {
		t.Error("Expected increase at 15 to be disabled")
	}

	if !l.CanDecrease(0) {
		t.Error("Expected decrease at 15 to be allowed")
	}
}

func TestCanDecreaseBoundary(t *testing.T) {
	l := newTestList([]Shot{{Duration: 1}})

	if l.CanDecrease(0) {
		t.Error("Expected decrease at min duration to be disabled")
	}
}

func TestCanIncreaseLimitedByOtherShots(t *testing.T) {
	// Two shots consuming the whole budget: neither can grow even though
	// both are far below the per-shot max
	l := newTestList([]Shot{
		{Duration: 7}, {Duration: 8},
	})

	if l.CanIncrease(0) || l.CanIncrease(1) {
		t.Error("Expected increase to be disabled with exhausted budget")
	}

	// Shrinking shot 1 opens room for shot 0
	l.SetDuration(1, 7)

	if !l.CanIncrease(0) {
		t.Error("Expected increase to be enabled after freeing budget")
	}
}

func TestSnapshotIsDetached(t *testing.T) {
	l := newTestList([]Shot{{Duration: 2}})

	snapshot := l.Shots()
	snapshot[0].Duration = 99
	snapshot[0].Name = "hacked"

	s, _ := l.Get(0)
	if s.Duration != 2 || s.Name != "Shot1" {
		t.Error("Mutating the snapshot changed internal state")
	}
}

func TestRestoreNeverReissuesIDs(t *testing.T) {
	l := newTestList(nil)

	snapshot := l.Shots()

	l.Add("")
	added, _ := l.Get(1)

	// Roll back to the pre-add state, then add again: the new shot must not
	// reuse the id issued by the first add
	l.Restore(snapshot)
	l.Add("")

	readded, _ := l.Get(1)
	if readded.ID == added.ID {
		t.Errorf("Restore reissued id %q", added.ID)
	}

	checkInvariants(t, l)
}

func TestOperationSequenceHoldsInvariants(t *testing.T) {
	l := newTestList(nil)

	ops := []func() bool{
		func() bool { return l.Add("first") },
		func() bool { return l.Add("second") },
		func() bool { return l.SetDuration(1, 9) },
		func() bool { return l.Reorder(2, 0) },
		func() bool { return l.Add("") },
		func() bool { return l.SetDuration(0, 99) },
		func() bool { return l.Delete(1) },
		func() bool { return l.Reorder(0, 2) },
		func() bool { return l.SetDescription(2, "closing shot") },
		func() bool { return l.Add("") },
		func() bool { return l.Add("") },
		func() bool { return l.Add("") },
	}

	for i, op := range ops {
		op()
		checkInvariants(t, l)

		if t.Failed() {
			t.Fatalf("Invariant violated after operation %d", i)
		}
	}
}
