// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2026 Photonbench

package uc2000

// Setting is a two-slot current/previous holder for one controller setting.
// It is seeded with a sentinel "unset" entry, so the first real assignment
// always counts as a change, and it tracks the total number of assignments:
// Len() is always assignments + 1.
type Setting[T comparable] struct {
	cur     T
	prev    T
	assigns int
}

// record stores v as the current value and reports whether it differs from
// the value held before this assignment. The first assignment after the
// sentinel seed is always a change.
func (s *Setting[T]) record(v T) bool {
	s.prev = s.cur
	changed := s.assigns == 0 || s.prev != v
	s.cur = v
	s.assigns++
	return changed
}

// Value returns the current value.
func (s Setting[T]) Value() T {
	return s.cur
}

// Previous returns the value held before the most recent assignment. The
// second return is false while that slot still holds the sentinel seed,
// i.e. until the setting has been assigned at least twice.
func (s Setting[T]) Previous() (T, bool) {
	if s.assigns < 2 {
		var zero T
		return zero, false
	}
	return s.prev, true
}

// Assignments returns how many times the setting has been assigned.
func (s Setting[T]) Assignments() int {
	return s.assigns
}

// Len returns the logical history length: one sentinel seed entry plus one
// entry per assignment.
func (s Setting[T]) Len() int {
	return s.assigns + 1
}
