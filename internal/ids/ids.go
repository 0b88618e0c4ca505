// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ids issues the integer surrogates the oracle uses in place of
// protocol identifiers: object handles, object ids, stream-buffer indices,
// ICS-state indices and change numbers.
//
// Every category has its own strictly increasing counter starting at 1, so
// zero is free to mean "not allocated". Change numbers are global across the
// simulated mailbox: any change number issued before another is smaller.
package ids

// Category selects one of the allocator counters.
type Category int

const (
	// Handle is a session-scoped object or context handle.
	Handle Category = iota
	// ObjectID is a persistent folder or message id.
	ObjectID
	// BufferIndex identifies a produced FastTransfer stream buffer.
	BufferIndex
	// StateIndex identifies an ICS state snapshot stored on a folder.
	StateIndex

	categoryCount
)

// Allocator hands out the next integer per category. It is not safe for
// concurrent use; the owning engine serializes access.
type Allocator struct {
	counters [categoryCount]int
}

// NewAllocator returns an allocator whose first value in every category is 1.
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Next returns the next value of category c.
func (a *Allocator) Next(c Category) int {
	a.counters[c]++
	return a.counters[c]
}

// Reserve returns the first value of a block of n consecutive values of
// category c. A non-positive n reserves nothing and returns the next value
// without consuming it.
func (a *Allocator) Reserve(c Category, n int) int {
	first := a.counters[c] + 1
	if n > 0 {
		a.counters[c] += n
	}
	return first
}

// Last returns the most recently issued value of category c, zero if none.
func (a *Allocator) Last(c Category) int {
	return a.counters[c]
}

// ChangeNumbers is the global change-number generator.
type ChangeNumbers struct {
	last int
}

// NewChangeNumbers returns a generator whose first change number is 1.
func NewChangeNumbers() *ChangeNumbers {
	return &ChangeNumbers{}
}

// Next returns a change number greater than every number issued before.
func (c *ChangeNumbers) Next() int {
	c.last++
	return c.last
}

// Last returns the most recently issued change number, zero if none.
func (c *ChangeNumbers) Last() int {
	return c.last
}
