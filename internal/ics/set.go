// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package ics

import "slices"

// Set is a set of object ids or change numbers. The zero value is an empty
// set ready for use.
type Set struct {
	items map[int]struct{}
}

// NewSet returns a set holding values.
func NewSet(values ...int) *Set {
	s := &Set{}
	for _, v := range values {
		s.Add(v)
	}
	return s
}

// Add inserts v. Adding a present value is a no-op.
func (s *Set) Add(v int) {
	if s.items == nil {
		s.items = make(map[int]struct{})
	}
	s.items[v] = struct{}{}
}

// Remove deletes v if present.
func (s *Set) Remove(v int) {
	delete(s.items, v)
}

// Contains reports whether v is in the set.
func (s *Set) Contains(v int) bool {
	if s == nil {
		return false
	}
	_, ok := s.items[v]
	return ok
}

// Len returns the number of values in the set.
func (s *Set) Len() int {
	if s == nil {
		return 0
	}
	return len(s.items)
}

// Values returns the values in ascending order.
func (s *Set) Values() []int {
	if s == nil {
		return []int{}
	}
	out := make([]int, 0, len(s.items))
	for v := range s.items {
		out = append(out, v)
	}
	slices.Sort(out)
	return out
}

// Clone returns an independent copy.
func (s *Set) Clone() *Set {
	c := &Set{}
	if s == nil {
		return c
	}
	for v := range s.items {
		c.Add(v)
	}
	return c
}

// Equal reports whether both sets hold the same values.
func (s *Set) Equal(other *Set) bool {
	if s.Len() != other.Len() {
		return false
	}
	if s == nil {
		return true
	}
	for v := range s.items {
		if !other.Contains(v) {
			return false
		}
	}
	return true
}
