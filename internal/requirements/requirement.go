// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package requirements

import "fmt"

// Requirement identifies a protocol rule the engine exercised.
type Requirement int

// Lifecycle capture points.
const (
	LogonCreatesInbox Requirement = 100 + iota
	FolderIDAssignedAtCreation
	MessageIDAssignedOnFirstSave
	SaveAssignsChangeNumber
	SoftDeleteCounted
)

// Synchronization configure capture points.
const (
	SyncTypeInvalid Requirement = 200 + iota
	SyncTypeFourRejected
	ReservedFlagRejected
	UnicodeFlagMismatch
	SendOptionsUnknownBits
	ExtraFlagsUnknownBits
	DownloadContextCreated
)

// Import capture points.
const (
	ImportDeleteUndefinedFlag Requirement = 300 + iota
	ImportHardDeleteNotSupported
	ImportDeleteRemovesGiven
	ImportHierarchyNoParent
	ImportHierarchyConflictIgnored
	ImportMessageUnknownFlag
	ImportMessageOnHierarchyCollector
	ReadStateOwnChangeNumber
	ReadStateAccessDenied
	MoveAssignsNewID
	MoveNewerClientChange
	TransferStateCopiesState
	UploadStateRestoresProperty
	ImportHierarchyCycleRejected
)

// Stream production capture points.
const (
	BufferTooSmall Requirement = 400 + iota
	HierarchyParentBeforeChild
	HierarchyDeletionsReported
	ContentsFAISelection
	ContentsReadStateReported
	ContentsOrderedByDelivery
	ContentsPartialItem
	StringEncodingSelected
	MoveOmitsNoPermission
	FXDelPropPrecedesCollection
	StateStreamSnapshotted
)

// FastTransfer configure capture points.
const (
	CopyMoveNotSupported Requirement = 500 + iota
	CopyUnknownFlagRejected
	DestinationRootMismatch
)

var descriptions = map[Requirement]string{
	LogonCreatesInbox:                 "Logon creates the root Inbox folder with ReadAny permission.",
	FolderIDAssignedAtCreation:        "A folder receives its id when it is created.",
	MessageIDAssignedOnFirstSave:      "A message receives its id on the first save.",
	SaveAssignsChangeNumber:           "Saving a message assigns a new change number.",
	SoftDeleteCounted:                 "A soft delete is counted in the folder's deleted-row counters.",
	SyncTypeInvalid:                   "SynchronizationType outside Contents and Hierarchy is rejected.",
	SyncTypeFourRejected:              "SynchronizationType 0x04 is not supported.",
	ReservedFlagRejected:              "The Reserved synchronization flag fails with a format error.",
	UnicodeFlagMismatch:               "The Unicode synchronization flag must match the Unicode send option.",
	SendOptionsUnknownBits:            "Undefined SendOptions bits are rejected.",
	ExtraFlagsUnknownBits:             "Undefined SynchronizationExtraFlags bits are rejected.",
	DownloadContextCreated:            "A configured synchronization gets a download context with empty state.",
	ImportDeleteUndefinedFlag:         "ImportDeleteFlags with an undefined bit is rejected.",
	ImportHardDeleteNotSupported:      "HardDelete is not supported by this server version.",
	ImportDeleteRemovesGiven:          "Imported deletes are removed from the context's IdsetGiven.",
	ImportHierarchyNoParent:           "A hierarchy change with an unresolved parent fails with NoParentFolder.",
	ImportHierarchyConflictIgnored:    "The conflict type of a hierarchy change is recorded but not applied.",
	ImportMessageUnknownFlag:          "Undefined ImportFlag bits are rejected.",
	ImportMessageOnHierarchyCollector: "A message change on a hierarchy collector is rejected.",
	ReadStateOwnChangeNumber:          "A read-state change gets its own change number.",
	ReadStateAccessDenied:             "Read-state import needs more than None permission on the folder.",
	MoveAssignsNewID:                  "A moved message receives a new id and change number.",
	MoveNewerClientChange:             "A move over a newer client change reports NewerClientChange.",
	TransferStateCopiesState:          "GetTransferState produces a state stream from the context's state.",
	UploadStateRestoresProperty:       "UploadState restores one ICS property from a stored snapshot.",
	ImportHierarchyCycleRejected:      "A hierarchy change that moves a folder under itself or a descendant is rejected.",
	BufferTooSmall:                    "A buffer request larger than the server limit fails with BufferTooSmall.",
	HierarchyParentBeforeChild:        "Hierarchy sync sends a parent before its children.",
	HierarchyDeletionsReported:        "Hierarchy sync reports folders the client knows but the server lost.",
	ContentsFAISelection:              "Contents sync selects FAI and normal messages by the FAI and Normal flags.",
	ContentsReadStateReported:         "Contents sync reports read-state changes when ReadState is set.",
	ContentsOrderedByDelivery:         "Contents sync orders messages by delivery time when requested.",
	ContentsPartialItem:               "Contents sync sends partial changes for known messages with PartialItem.",
	StringEncodingSelected:            "The stream string encoding follows the send options.",
	MoveOmitsNoPermission:             "Move copies omit objects the client cannot delete.",
	FXDelPropPrecedesCollection:       "A requested collection in CopyProperties is preceded by FXDelProp.",
	StateStreamSnapshotted:            "A state stream is stored on the folder under a new state index.",
	CopyMoveNotSupported:              "The Move copy flag is not supported by this server version.",
	CopyUnknownFlagRejected:           "Undefined copy flag bits are rejected.",
	DestinationRootMismatch:           "PutBuffer needs a buffer whose root matches the destination operation.",
}

// Description returns the human readable text of r.
func (r Requirement) Description() string {
	if d, ok := descriptions[r]; ok {
		return d
	}
	return fmt.Sprintf("requirement %d", int(r))
}
