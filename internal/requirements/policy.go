// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package requirements holds the two collaborators the oracle consults about
// protocol requirements:
//   - Policy: which version-specific server behaviours are enabled. This is
//     configuration supplied by the harness and the only requirement input
//     that changes control flow;
//   - Sink: an observer notified whenever a requirement is exercised. Sinks
//     are purely observational.
package requirements

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownBehavior is returned when a configured toggle name is not known.
var ErrUnknownBehavior = errors.New("unknown behavior toggle")

// Behavior is a version-gated server behaviour toggle.
type Behavior int

const (
	// SyncTypeFourNotSupported makes SynchronizationConfigure answer
	// NotSupported (instead of InvalidParameter) for synchronization type 0x04.
	SyncTypeFourNotSupported Behavior = iota + 1

	// HardDeleteNotSupported makes SynchronizationImportDeletes answer
	// NotSupported for the HardDelete flag.
	HardDeleteNotSupported

	// ImportMessageChangeUnknownFlagRejected rejects undefined import flag bits.
	ImportMessageChangeUnknownFlagRejected

	// CopyToMoveNotSupported rejects the Move copy flag on CopyTo.
	CopyToMoveNotSupported

	// CopyToUnknownFlagRejected rejects undefined CopyTo copy flag bits.
	CopyToUnknownFlagRejected

	// CopyPropertiesMoveNotSupported rejects the Move copy flag on CopyProperties.
	CopyPropertiesMoveNotSupported

	// CopyPropertiesUnknownFlagRejected rejects undefined CopyProperties flag bits.
	CopyPropertiesUnknownFlagRejected

	// CopyMessagesMoveNotSupported rejects the Move copy flag on CopyMessages.
	CopyMessagesMoveNotSupported

	// CopyMessagesUnknownFlagRejected rejects undefined CopyMessages flag bits.
	CopyMessagesUnknownFlagRejected

	// CopyFolderMoveNotSupported rejects the Move copy flag on CopyFolder.
	CopyFolderMoveNotSupported

	// CopyFolderUnknownFlagRejected rejects undefined CopyFolder flag bits.
	CopyFolderUnknownFlagRejected

	// DestinationUnknownFlagRejected rejects undefined copy flag bits on
	// FastTransferDestinationConfigure.
	DestinationUnknownFlagRejected

	// SendOptionsUnknownFlagRejected rejects undefined SendOptions bits.
	SendOptionsUnknownFlagRejected

	// PartialItemNotSupported makes the server ignore the PartialItem send
	// option and always send full message changes.
	PartialItemNotSupported
)

var behaviorNames = map[Behavior]string{
	SyncTypeFourNotSupported:               "sync-type-four-not-supported",
	HardDeleteNotSupported:                 "hard-delete-not-supported",
	ImportMessageChangeUnknownFlagRejected: "import-message-change-unknown-flag-rejected",
	CopyToMoveNotSupported:                 "copy-to-move-not-supported",
	CopyToUnknownFlagRejected:              "copy-to-unknown-flag-rejected",
	CopyPropertiesMoveNotSupported:         "copy-properties-move-not-supported",
	CopyPropertiesUnknownFlagRejected:      "copy-properties-unknown-flag-rejected",
	CopyMessagesMoveNotSupported:           "copy-messages-move-not-supported",
	CopyMessagesUnknownFlagRejected:        "copy-messages-unknown-flag-rejected",
	CopyFolderMoveNotSupported:             "copy-folder-move-not-supported",
	CopyFolderUnknownFlagRejected:          "copy-folder-unknown-flag-rejected",
	DestinationUnknownFlagRejected:         "destination-unknown-flag-rejected",
	SendOptionsUnknownFlagRejected:         "send-options-unknown-flag-rejected",
	PartialItemNotSupported:                "partial-item-not-supported",
}

func (b Behavior) String() string {
	if name, ok := behaviorNames[b]; ok {
		return name
	}
	return fmt.Sprintf("behavior(%d)", int(b))
}

// ParseBehavior resolves a configuration name to a Behavior.
func ParseBehavior(name string) (Behavior, error) {
	for b, n := range behaviorNames {
		if n == name {
			return b, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownBehavior, name)
}

// BehaviorNames returns every known toggle name in sorted order.
func BehaviorNames() []string {
	names := make([]string, 0, len(behaviorNames))
	for _, n := range behaviorNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Policy is the set of enabled behaviours. A toggle absent from the policy
// is disabled, so the engine takes its default branch.
type Policy struct {
	enabled map[Behavior]bool
}

// NewPolicy returns a policy with the given behaviours enabled.
func NewPolicy(enabled ...Behavior) Policy {
	p := Policy{enabled: make(map[Behavior]bool, len(enabled))}
	for _, b := range enabled {
		p.enabled[b] = true
	}
	return p
}

// PolicyFromConfig builds a policy from toggle names mapped to on/off.
func PolicyFromConfig(toggles map[string]bool) (Policy, error) {
	p := NewPolicy()
	for name, on := range toggles {
		b, err := ParseBehavior(name)
		if err != nil {
			return Policy{}, err
		}
		p.enabled[b] = on
	}
	return p, nil
}

// Enabled reports whether behaviour b is switched on.
func (p Policy) Enabled(b Behavior) bool {
	return p.enabled[b]
}

// Toggles maps every known behaviour name to its state in p.
func (p Policy) Toggles() map[string]bool {
	out := make(map[string]bool, len(behaviorNames))
	for b, name := range behaviorNames {
		out[name] = p.enabled[b]
	}
	return out
}

// With returns a copy of p with b set to on.
func (p Policy) With(b Behavior, on bool) Policy {
	c := NewPolicy()
	for k, v := range p.enabled {
		c.enabled[k] = v
	}
	c.enabled[b] = on
	return c
}
