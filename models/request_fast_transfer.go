// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// FastTransferSourceCopyToRequest configures a full copy of an object.
// Level zero copies sub-objects; ExcludedProperties are left out.
type FastTransferSourceCopyToRequest struct {
	ServerID           int            `json:"server_id"`
	ObjectHandle       int            `json:"object_handle"`
	Level              int            `json:"level"`
	CopyFlags          CopyFlags      `json:"copy_flags"`
	SendOptions        SendOptions    `json:"send_options"`
	ExcludedProperties []PropertyName `json:"excluded_properties,omitempty"`
}

// FastTransferSourceCopyPropertiesRequest configures a copy of the listed
// properties of an object.
type FastTransferSourceCopyPropertiesRequest struct {
	ServerID     int            `json:"server_id"`
	ObjectHandle int            `json:"object_handle"`
	Level        int            `json:"level"`
	CopyFlags    CopyFlags      `json:"copy_flags"`
	SendOptions  SendOptions    `json:"send_options"`
	Properties   []PropertyName `json:"properties"`
}

// FastTransferSourceCopyMessagesRequest configures a copy of a message list.
type FastTransferSourceCopyMessagesRequest struct {
	ServerID     int         `json:"server_id"`
	FolderHandle int         `json:"folder_handle"`
	MessageIDs   []int       `json:"message_ids"`
	CopyFlags    CopyFlags   `json:"copy_flags"`
	SendOptions  SendOptions `json:"send_options"`
}

// FastTransferSourceCopyFolderRequest configures a copy of a whole folder.
type FastTransferSourceCopyFolderRequest struct {
	ServerID     int         `json:"server_id"`
	FolderHandle int         `json:"folder_handle"`
	CopyFlags    CopyFlags   `json:"copy_flags"`
	SendOptions  SendOptions `json:"send_options"`
}

// FastTransferSourceGetBufferRequest downloads the next stream buffer of a
// download context.
type FastTransferSourceGetBufferRequest struct {
	ServerID              int        `json:"server_id"`
	DownloadContextHandle int        `json:"download_context_handle"`
	BufferSize            BufferSize `json:"buffer_size"`
}

// FastTransferDestinationConfigureRequest prepares an object to receive a
// FastTransfer stream produced by SourceOperation.
type FastTransferDestinationConfigureRequest struct {
	ServerID        int             `json:"server_id"`
	ObjectHandle    int             `json:"object_handle"`
	SourceOperation SourceOperation `json:"source_operation"`
	CopyFlags       CopyFlags       `json:"copy_flags"`
}

// FastTransferDestinationPutBufferRequest feeds a previously produced buffer
// into an upload context.
type FastTransferDestinationPutBufferRequest struct {
	ServerID            int `json:"server_id"`
	UploadContextHandle int `json:"upload_context_handle"`
	BufferIndex         int `json:"buffer_index"`
}
