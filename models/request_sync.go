// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SynchronizationConfigureRequest configures a synchronization download on
// the folder FolderHandle.
type SynchronizationConfigureRequest struct {
	ServerID             int                       `json:"server_id"`
	FolderHandle         int                       `json:"folder_handle"`
	SynchronizationType  SynchronizationType       `json:"synchronization_type"`
	SendOptions          SendOptions               `json:"send_options"`
	SynchronizationFlags SynchronizationFlags      `json:"synchronization_flags"`
	ExtraFlags           SynchronizationExtraFlags `json:"extra_flags"`

	// PropertyTags are excluded from the download unless
	// OnlySpecifiedProperties is set, in which case only they are included.
	PropertyTags []PropertyName `json:"property_tags,omitempty"`
}

// SynchronizationOpenCollectorRequest opens an upload collector on a folder.
type SynchronizationOpenCollectorRequest struct {
	ServerID            int  `json:"server_id"`
	FolderHandle        int  `json:"folder_handle"`
	IsContentsCollector bool `json:"is_contents_collector"`
}

// SynchronizationImportDeletesRequest imports deletions of ObjectIDs.
type SynchronizationImportDeletesRequest struct {
	ServerID            int               `json:"server_id"`
	UploadContextHandle int               `json:"upload_context_handle"`
	Flags               ImportDeleteFlags `json:"flags"`
	ObjectIDs           []int             `json:"object_ids"`
}

// SynchronizationImportHierarchyChangeRequest imports a folder creation or
// update. A FolderID of zero (or unknown) creates a new folder.
type SynchronizationImportHierarchyChangeRequest struct {
	ServerID            int            `json:"server_id"`
	UploadContextHandle int            `json:"upload_context_handle"`
	ParentFolderHandle  int            `json:"parent_folder_handle"`
	FolderID            int            `json:"folder_id"`
	Properties          []PropertyName `json:"properties,omitempty"`
	ConflictType        ConflictType   `json:"conflict_type"`
}

// SynchronizationImportMessageChangeRequest imports a message creation or
// update. A MessageID of zero (or unknown) creates a new message.
type SynchronizationImportMessageChangeRequest struct {
	ServerID            int            `json:"server_id"`
	UploadContextHandle int            `json:"upload_context_handle"`
	MessageID           int            `json:"message_id"`
	ImportFlag          ImportFlag     `json:"import_flag"`
	Properties          []PropertyName `json:"properties,omitempty"`
}

// SynchronizationImportReadStateChangesRequest imports a read flag change.
type SynchronizationImportReadStateChangesRequest struct {
	ServerID            int  `json:"server_id"`
	UploadContextHandle int  `json:"upload_context_handle"`
	MessageID           int  `json:"message_id"`
	Read                bool `json:"read"`
}

// SynchronizationImportMessageMoveRequest moves MessageID from
// SourceFolderHandle into the collector's folder.
type SynchronizationImportMessageMoveRequest struct {
	ServerID            int  `json:"server_id"`
	UploadContextHandle int  `json:"upload_context_handle"`
	SourceFolderHandle  int  `json:"source_folder_handle"`
	MessageID           int  `json:"message_id"`
	NewerClientChange   bool `json:"newer_client_change"`
}

// SynchronizationGetTransferStateRequest captures the ICS state of a
// download or upload context.
type SynchronizationGetTransferStateRequest struct {
	ServerID      int `json:"server_id"`
	ContextHandle int `json:"context_handle"`
}

// SynchronizationUploadStateRequest restores one ICS property of a context
// from the snapshot StateIndex.
type SynchronizationUploadStateRequest struct {
	ServerID      int         `json:"server_id"`
	ContextHandle int         `json:"context_handle"`
	Property      ICSProperty `json:"property"`
	StateIndex    int         `json:"state_index"`
}
