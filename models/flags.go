// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ConnectionType describes how a simulated client reaches the server.
type ConnectionType int

const (
	PrivateMailboxServer ConnectionType = iota
	PublicFolderServer
)

// LogonFlag selects the kind of store a connection logs on to.
type LogonFlag int

const (
	// LogonPrivate is a normal private mailbox logon.
	LogonPrivate LogonFlag = iota
	// LogonGhosted is a public folder logon to a ghosted replica.
	LogonGhosted
	// LogonPublicFolder is a public folder logon.
	LogonPublicFolder
)

// SynchronizationType selects between contents and hierarchy synchronization.
type SynchronizationType uint8

const (
	SyncTypeContents  SynchronizationType = 0x01
	SyncTypeHierarchy SynchronizationType = 0x02
)

// SynchronizationFlags control what a synchronization download contains.
type SynchronizationFlags uint16

const (
	SyncFlagUnicode                 SynchronizationFlags = 0x0001
	SyncFlagNoDeletions             SynchronizationFlags = 0x0002
	SyncFlagIgnoreNoLongerInScope   SynchronizationFlags = 0x0004
	SyncFlagReadState               SynchronizationFlags = 0x0008
	SyncFlagFAI                     SynchronizationFlags = 0x0010
	SyncFlagNormal                  SynchronizationFlags = 0x0020
	SyncFlagOnlySpecifiedProperties SynchronizationFlags = 0x0080
	SyncFlagNoForeignIdentifiers    SynchronizationFlags = 0x0100
	SyncFlagReserved                SynchronizationFlags = 0x1000
	SyncFlagBestBody                SynchronizationFlags = 0x2000
	SyncFlagIgnoreSpecifiedOnFAI    SynchronizationFlags = 0x4000
	SyncFlagProgress                SynchronizationFlags = 0x8000
)

// Has reports whether every bit of f is set.
func (s SynchronizationFlags) Has(f SynchronizationFlags) bool { return s&f == f }

// SynchronizationExtraFlags add optional properties to message and folder changes.
type SynchronizationExtraFlags uint32

const (
	ExtraFlagEid                 SynchronizationExtraFlags = 0x01
	ExtraFlagMessageSize         SynchronizationExtraFlags = 0x02
	ExtraFlagCn                  SynchronizationExtraFlags = 0x04
	ExtraFlagOrderByDeliveryTime SynchronizationExtraFlags = 0x08

	extraFlagsKnown = ExtraFlagEid | ExtraFlagMessageSize | ExtraFlagCn | ExtraFlagOrderByDeliveryTime
)

func (e SynchronizationExtraFlags) Has(f SynchronizationExtraFlags) bool { return e&f == f }

// Unknown returns the bits that have no defined meaning.
func (e SynchronizationExtraFlags) Unknown() SynchronizationExtraFlags { return e &^ extraFlagsKnown }

// SendOptions control string encoding and other output choices of a stream.
type SendOptions uint8

const (
	SendOptionUnicode      SendOptions = 0x01
	SendOptionUseCpid      SendOptions = 0x02
	SendOptionForUpload    SendOptions = SendOptionUnicode | SendOptionUseCpid
	SendOptionRecoverMode  SendOptions = 0x04
	SendOptionForceUnicode SendOptions = 0x08
	SendOptionPartialItem  SendOptions = 0x10

	sendOptionsKnown = SendOptionUnicode | SendOptionUseCpid | SendOptionRecoverMode |
		SendOptionForceUnicode | SendOptionPartialItem
)

func (s SendOptions) Has(f SendOptions) bool { return s&f == f }

func (s SendOptions) Unknown() SendOptions { return s &^ sendOptionsKnown }

// CopyFlags are the flags of the FastTransfer source and destination
// configure operations. Each operation defines its own valid subset.
type CopyFlags uint32

const (
	CopyFlagMove           CopyFlags = 0x01
	CopyFlagUnused1        CopyFlags = 0x02
	CopyFlagUnused2        CopyFlags = 0x04
	CopyFlagUnused3        CopyFlags = 0x08
	CopyFlagCopySubfolders CopyFlags = 0x10
	CopyFlagSendEntryID    CopyFlags = 0x20
	CopyFlagBestBody       CopyFlags = 0x2000
)

func (c CopyFlags) Has(f CopyFlags) bool { return c&f == f }

// Valid copy flag sets per operation.
const (
	CopyToFlagsKnown         = CopyFlagMove | CopyFlagUnused1 | CopyFlagUnused2 | CopyFlagUnused3 | CopyFlagBestBody
	CopyPropertiesFlagsKnown = CopyFlagMove | CopyFlagUnused1 | CopyFlagUnused2 | CopyFlagUnused3
	CopyMessagesFlagsKnown   = CopyFlagMove | CopyMessagesFlagBestBody | CopyFlagSendEntryID
	CopyFolderFlagsKnown     = CopyFlagMove | CopyFlagUnused1 | CopyFlagUnused2 | CopyFlagUnused3 | CopyFlagCopySubfolders
	DestinationFlagsKnown    = CopyFlagMove
)

// The CopyMessages operation reuses bit 0x10 for BestBody.
const CopyMessagesFlagBestBody = CopyFlagCopySubfolders

// SourceOperation names the source operation a FastTransfer upload is fed from.
type SourceOperation uint8

const (
	SourceOperationCopyTo         SourceOperation = 0x01
	SourceOperationCopyProperties SourceOperation = 0x02
	SourceOperationCopyMessages   SourceOperation = 0x03
	SourceOperationCopyFolder     SourceOperation = 0x04
)

// ImportDeleteFlags control SynchronizationImportDeletes.
type ImportDeleteFlags uint8

const (
	ImportDeleteHierarchy  ImportDeleteFlags = 0x01
	ImportDeleteHardDelete ImportDeleteFlags = 0x02
	// ImportDeleteUndefined is a bit with no defined meaning that servers
	// must reject.
	ImportDeleteUndefined ImportDeleteFlags = 0x10

	importDeleteKnown = ImportDeleteHierarchy | ImportDeleteHardDelete
)

func (d ImportDeleteFlags) Has(f ImportDeleteFlags) bool { return d&f == f }

func (d ImportDeleteFlags) Unknown() ImportDeleteFlags { return d &^ importDeleteKnown }

// ImportFlag controls SynchronizationImportMessageChange.
type ImportFlag uint8

const (
	ImportFlagAssociated     ImportFlag = 0x10
	ImportFlagFailOnConflict ImportFlag = 0x40

	importFlagKnown = ImportFlagAssociated | ImportFlagFailOnConflict
)

func (i ImportFlag) Has(f ImportFlag) bool { return i&f == f }

func (i ImportFlag) Unknown() ImportFlag { return i &^ importFlagKnown }

// ConflictType is the conflict hint of ImportHierarchyChangeWithConflict.
type ConflictType int

const (
	ConflictNone ConflictType = iota
	ConflictParentFolder
	ConflictSameFolder
)

// BufferSize is the abstract size a client requests from GetBuffer.
type BufferSize int

const (
	BufferSizeNormal BufferSize = iota
	// BufferSizeGreater exceeds the maximum a server accepts.
	BufferSizeGreater
)

// ICSProperty names one of the four ICS state properties.
type ICSProperty string

const (
	PidTagIdsetGiven   ICSProperty = "PidTagIdsetGiven"
	PidTagCnsetSeen    ICSProperty = "PidTagCnsetSeen"
	PidTagCnsetSeenFAI ICSProperty = "PidTagCnsetSeenFAI"
	PidTagCnsetRead    ICSProperty = "PidTagCnsetRead"
)

// ObjectType is the kind of object a handle resolves to.
type ObjectType int

const (
	ObjectNone ObjectType = iota
	ObjectFolder
	ObjectMessage
	ObjectAttachment
)

func (o ObjectType) String() string {
	switch o {
	case ObjectFolder:
		return "folder"
	case ObjectMessage:
		return "message"
	case ObjectAttachment:
		return "attachment"
	default:
		return "none"
	}
}
