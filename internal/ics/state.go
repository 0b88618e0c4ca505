// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package ics tracks what a synchronization peer has already been told.
//
// A State holds the four ICS sets:
//   - IdsetGiven: ids of objects already communicated;
//   - CnsetSeen: change numbers of normal objects already communicated;
//   - CnsetSeenFAI: change numbers of FAI messages already communicated;
//   - CnsetRead: read-state change numbers already communicated.
//
// Difference detection reports an object when its id is not in IdsetGiven
// (new object) or its change number is not in the relevant Cnset (changed
// object). Deletion detection reports ids that are in IdsetGiven but were
// not found among the live objects of the synchronization scope.
package ics

import (
	"errors"

	"github.com/MKhiriev/go-ics-oracle/models"
)

// ErrUnknownProperty is returned for an ICS property name outside the four
// defined ones.
var ErrUnknownProperty = errors.New("unknown ICS state property")

// State is the ICS updated state of one context or one stored snapshot.
type State struct {
	IdsetGiven   *Set
	CnsetSeen    *Set
	CnsetSeenFAI *Set
	CnsetRead    *Set
}

// NewState returns a state with four empty sets.
func NewState() *State {
	return &State{
		IdsetGiven:   NewSet(),
		CnsetSeen:    NewSet(),
		CnsetSeenFAI: NewSet(),
		CnsetRead:    NewSet(),
	}
}

func (s *State) cnset(associated bool) *Set {
	if associated {
		return s.CnsetSeenFAI
	}
	return s.CnsetSeen
}

// Changed reports whether the object id with change number cn must be
// reported: it is new to the peer or its current version is unseen.
func (s *State) Changed(id, cn int, associated bool) bool {
	return !s.IdsetGiven.Contains(id) || !s.cnset(associated).Contains(cn)
}

// Known reports whether id was already communicated.
func (s *State) Known(id int) bool {
	return s.IdsetGiven.Contains(id)
}

// MarkSent records that id at change number cn was communicated.
func (s *State) MarkSent(id, cn int, associated bool) {
	s.IdsetGiven.Add(id)
	if cn != 0 {
		s.cnset(associated).Add(cn)
	}
}

// ReadStateChanged reports whether a read-state change number must be
// reported. Zero means no read-state change is pending.
func (s *State) ReadStateChanged(readCN int) bool {
	return readCN != 0 && !s.CnsetRead.Contains(readCN)
}

// MarkReadSent records that the read-state change readCN was communicated.
func (s *State) MarkReadSent(readCN int) {
	if readCN != 0 {
		s.CnsetRead.Add(readCN)
	}
}

// Forget removes id from IdsetGiven.
func (s *State) Forget(id int) {
	s.IdsetGiven.Remove(id)
}

// DetectDeletions returns the ids of IdsetGiven that are not in live, in
// ascending order, and removes them from IdsetGiven.
func (s *State) DetectDeletions(live *Set) []int {
	deleted := make([]int, 0)
	for _, id := range s.IdsetGiven.Values() {
		if !live.Contains(id) {
			deleted = append(deleted, id)
		}
	}
	for _, id := range deleted {
		s.IdsetGiven.Remove(id)
	}
	return deleted
}

// Clone returns a deep copy.
func (s *State) Clone() *State {
	return &State{
		IdsetGiven:   s.IdsetGiven.Clone(),
		CnsetSeen:    s.CnsetSeen.Clone(),
		CnsetSeenFAI: s.CnsetSeenFAI.Clone(),
		CnsetRead:    s.CnsetRead.Clone(),
	}
}

// Property returns the set stored under the ICS property name p.
func (s *State) Property(p models.ICSProperty) (*Set, error) {
	switch p {
	case models.PidTagIdsetGiven:
		return s.IdsetGiven, nil
	case models.PidTagCnsetSeen:
		return s.CnsetSeen, nil
	case models.PidTagCnsetSeenFAI:
		return s.CnsetSeenFAI, nil
	case models.PidTagCnsetRead:
		return s.CnsetRead, nil
	default:
		return nil, ErrUnknownProperty
	}
}

// SetProperty replaces the set stored under p with a copy of value.
func (s *State) SetProperty(p models.ICSProperty, value *Set) error {
	c := value.Clone()
	switch p {
	case models.PidTagIdsetGiven:
		s.IdsetGiven = c
	case models.PidTagCnsetSeen:
		s.CnsetSeen = c
	case models.PidTagCnsetSeenFAI:
		s.CnsetSeenFAI = c
	case models.PidTagCnsetRead:
		s.CnsetRead = c
	default:
		return ErrUnknownProperty
	}
	return nil
}

// Snapshot returns the wire description of the state.
func (s *State) Snapshot(stateIndex int) models.ICSState {
	return models.ICSState{
		StateIndex:   stateIndex,
		IdsetGiven:   s.IdsetGiven.Values(),
		CnsetSeen:    s.CnsetSeen.Values(),
		CnsetSeenFAI: s.CnsetSeenFAI.Values(),
		CnsetRead:    s.CnsetRead.Values(),
	}
}
