// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"

	"github.com/MKhiriev/go-ics-oracle/internal/ics"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// PropertySet is the set of property names present on an object.
type PropertySet map[models.PropertyName]struct{}

func NewPropertySet(names ...models.PropertyName) PropertySet {
	p := make(PropertySet, len(names))
	p.Add(names...)
	return p
}

// Add inserts names; names already present are skipped.
func (p PropertySet) Add(names ...models.PropertyName) {
	for _, n := range names {
		p[n] = struct{}{}
	}
}

func (p PropertySet) Has(name models.PropertyName) bool {
	_, ok := p[name]
	return ok
}

// Names returns the names in lexical order.
func (p PropertySet) Names() []models.PropertyName {
	out := make([]models.PropertyName, 0, len(p))
	for n := range p {
		out = append(out, n)
	}
	slices.Sort(out)
	return out
}

// Folder is a folder record of one connection.
type Folder struct {
	ID           int
	Handle       int
	Name         string
	ParentID     int
	ParentHandle int

	SubFolderIDs *ics.Set
	MessageIDs   *ics.Set
	Properties   PropertySet

	ChangeNumber int
	Permission   models.PermissionLevel

	// StateContainer maps a state index to an ICS state snapshot produced
	// by a state stream rooted at this folder.
	StateContainer map[int]*ics.State

	SoftDeletedFolders     int
	SoftDeletedMessages    int
	SoftDeletedFAIMessages int

	// SoftDeleted holds the ids removed from this folder by soft deletes.
	SoftDeleted *ics.Set

	DeletedRanges []models.IDRange
}

func newFolder(id, handle int) *Folder {
	return &Folder{
		ID:             id,
		Handle:         handle,
		SubFolderIDs:   ics.NewSet(),
		MessageIDs:     ics.NewSet(),
		SoftDeleted:    ics.NewSet(),
		Properties:     NewPropertySet(),
		StateContainer: make(map[int]*ics.State),
	}
}

// Message is a message record. ID stays zero until the first save or import.
type Message struct {
	ID           int
	Handle       int
	FolderID     int
	FolderHandle int
	Associated   bool
	Read         bool

	AttachmentCount int
	Properties      PropertySet

	ChangeNumber          int
	ReadStateChangeNumber int

	// DeliveryOrder is set on first save; imported messages keep zero.
	DeliveryOrder int
	LastModified  int
}

// Attachment belongs to exactly one message.
type Attachment struct {
	Handle        int
	MessageHandle int
	Properties    PropertySet
}

// Origin names the operation that created a context.
type Origin string

const (
	OriginSynchronizationConfigure     Origin = "SynchronizationConfigure"
	OriginSynchronizationOpenCollector Origin = "SynchronizationOpenCollector"
	OriginGetTransferState             Origin = "SynchronizationGetTransferState"
	OriginCopyTo                       Origin = "FastTransferSourceCopyTo"
	OriginCopyProperties               Origin = "FastTransferSourceCopyProperties"
	OriginCopyMessages                 Origin = "FastTransferSourceCopyMessages"
	OriginCopyFolder                   Origin = "FastTransferSourceCopyFolder"
	OriginDestinationConfigure         Origin = "FastTransferDestinationConfigure"
)

// DownloadContext produces one FastTransfer stream per GetBuffer call.
type DownloadContext struct {
	Handle       int
	ObjectHandle int
	ObjectType   models.ObjectType

	// FolderID is the synchronization or copy root folder. For message and
	// attachment copies it is the folder holding the message.
	FolderID      int
	MessageHandle int
	MessageIDs    []int
	Level         int

	SyncType     models.SynchronizationType
	SyncFlags    models.SynchronizationFlags
	ExtraFlags   models.SynchronizationExtraFlags
	SendOptions  models.SendOptions
	CopyFlags    models.CopyFlags
	PropertyTags []models.PropertyName

	Root         models.StreamType
	State        *ics.State
	ConfiguredBy Origin
	Retired      bool
}

// UploadContext receives imported changes or a FastTransfer buffer.
type UploadContext struct {
	Handle       int
	ObjectHandle int
	ObjectType   models.ObjectType
	FolderID     int

	IsContentsCollector bool
	SourceOperation     models.SourceOperation
	CopyFlags           models.CopyFlags
	ConflictTypes       []models.ConflictType

	State        *ics.State
	ConfiguredBy Origin
	Retired      bool
}
