package uc2000

import "testing"

func TestSetting(t *testing.T) {
	var s Setting[int]

	// Seeded state: one sentinel entry, no previous value.
	if s.Len() != 1 || s.Assignments() != 0 {
		t.Fatalf("seeded Len=%d Assignments=%d, want 1/0", s.Len(), s.Assignments())
	}
	if _, ok := s.Previous(); ok {
		t.Error("Previous() reported a value before any assignment")
	}

	// First assignment is always a change, even to the zero value.
	if !s.record(0) {
		t.Error("first assignment not reported as a change")
	}
	if _, ok := s.Previous(); ok {
		t.Error("Previous() reported a value while the slot holds the sentinel")
	}

	if s.record(0) {
		t.Error("re-assigning the same value reported as a change")
	}
	if prev, ok := s.Previous(); !ok || prev != 0 {
		t.Errorf("Previous() = %d, %v, want 0, true", prev, ok)
	}

	if !s.record(7) {
		t.Error("assigning a new value not reported as a change")
	}
	if s.Value() != 7 {
		t.Errorf("Value() = %d, want 7", s.Value())
	}
	if prev, _ := s.Previous(); prev != 0 {
		t.Errorf("Previous() = %d, want 0", prev)
	}

	// Len tracks assignments + 1.
	if s.Len() != 4 {
		t.Errorf("Len() = %d, want 4", s.Len())
	}
}
