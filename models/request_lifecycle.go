// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// InvalidHandle is the handle value a client sends for "no object".
const InvalidHandle = -1

// ConnectRequest opens a simulated session against the server ServerID.
type ConnectRequest struct {
	ServerID       int            `json:"server_id"`
	ConnectionType ConnectionType `json:"connection_type"`
}

// DisconnectRequest tears the session of ServerID down.
type DisconnectRequest struct {
	ServerID int `json:"server_id"`
}

// LogonRequest logs on to the mailbox behind an existing connection.
type LogonRequest struct {
	ServerID int       `json:"server_id"`
	Flag     LogonFlag `json:"flag"`
}

// OpenFolderRequest opens an existing folder by id.
type OpenFolderRequest struct {
	ServerID    int `json:"server_id"`
	LogonHandle int `json:"logon_handle"`
	FolderID    int `json:"folder_id"`
}

// CreateFolderRequest creates a folder under ParentFolderHandle.
type CreateFolderRequest struct {
	ServerID           int    `json:"server_id"`
	ParentFolderHandle int    `json:"parent_folder_handle"`
	Name               string `json:"name"`
}

// DeleteFolderRequest deletes FolderID, a child of ParentFolderHandle.
type DeleteFolderRequest struct {
	ServerID           int `json:"server_id"`
	ParentFolderHandle int `json:"parent_folder_handle"`
	FolderID           int `json:"folder_id"`
}

// CreateMessageRequest creates an unsaved message in FolderHandle.
type CreateMessageRequest struct {
	ServerID     int  `json:"server_id"`
	FolderHandle int  `json:"folder_handle"`
	Associated   bool `json:"associated"`
}

// OpenMessageRequest opens a saved message by id.
type OpenMessageRequest struct {
	ServerID     int `json:"server_id"`
	FolderHandle int `json:"folder_handle"`
	FolderID     int `json:"folder_id"`
	MessageID    int `json:"message_id"`
}

// SaveChangesMessageRequest commits a message.
type SaveChangesMessageRequest struct {
	ServerID      int `json:"server_id"`
	MessageHandle int `json:"message_handle"`
}

// CreateAttachmentRequest adds an attachment to a message.
type CreateAttachmentRequest struct {
	ServerID      int `json:"server_id"`
	MessageHandle int `json:"message_handle"`
}

// SetPropertiesRequest sets property names on a folder, message or attachment.
type SetPropertiesRequest struct {
	ServerID   int            `json:"server_id"`
	Handle     int            `json:"handle"`
	Properties []PropertyName `json:"properties"`
}

// GetPropertiesSpecificRequest queries which of Properties are present.
type GetPropertiesSpecificRequest struct {
	ServerID   int            `json:"server_id"`
	Handle     int            `json:"handle"`
	Properties []PropertyName `json:"properties"`
}

// ModifyPermissionsRequest sets the permission level of a folder.
type ModifyPermissionsRequest struct {
	ServerID     int             `json:"server_id"`
	FolderHandle int             `json:"folder_handle"`
	Permission   PermissionLevel `json:"permission"`
}

// ReleaseRequest releases an object or context handle.
type ReleaseRequest struct {
	ServerID int `json:"server_id"`
	Handle   int `json:"handle"`
}

// GetTableRequest asks for the row count of a folder's hierarchy or contents
// table. Deleted selects soft-deleted rows; Associated selects FAI rows of a
// contents table.
type GetTableRequest struct {
	ServerID     int  `json:"server_id"`
	FolderHandle int  `json:"folder_handle"`
	Deleted      bool `json:"deleted"`
	Associated   bool `json:"associated"`
}

// GetLocalReplicaIdsRequest reserves IDCount local ids.
type GetLocalReplicaIdsRequest struct {
	ServerID    int `json:"server_id"`
	LogonHandle int `json:"logon_handle"`
	IDCount     int `json:"id_count"`
}

// IDRange is an inclusive range of local ids.
type IDRange struct {
	Low  int `json:"low"`
	High int `json:"high"`
}

// SetLocalReplicaMidsetDeletedRequest records deleted local id ranges.
type SetLocalReplicaMidsetDeletedRequest struct {
	ServerID     int       `json:"server_id"`
	FolderHandle int       `json:"folder_handle"`
	Ranges       []IDRange `json:"ranges"`
}
