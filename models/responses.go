// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ROPResponse is the response of operations that return only a result code.
type ROPResponse struct {
	ResultCode ResultCode `json:"result_code"`
}

// LogonResponse carries the logon handle and the root Inbox folder.
type LogonResponse struct {
	ResultCode        ResultCode `json:"result_code"`
	LogonHandle       int        `json:"logon_handle"`
	InboxFolderHandle int        `json:"inbox_folder_handle"`
	InboxFolderID     int        `json:"inbox_folder_id"`
}

// FolderResponse carries a folder handle and, when allocated, its id.
type FolderResponse struct {
	ResultCode   ResultCode `json:"result_code"`
	FolderHandle int        `json:"folder_handle"`
	FolderID     int        `json:"folder_id"`
}

// MessageResponse carries a message handle and, once saved, its id.
type MessageResponse struct {
	ResultCode    ResultCode `json:"result_code"`
	MessageHandle int        `json:"message_handle"`
	MessageID     int        `json:"message_id"`
}

// AttachmentResponse carries a new attachment handle.
type AttachmentResponse struct {
	ResultCode       ResultCode `json:"result_code"`
	AttachmentHandle int        `json:"attachment_handle"`
}

// PropertiesResponse lists the requested properties present on an object.
type PropertiesResponse struct {
	ResultCode ResultCode     `json:"result_code"`
	Properties []PropertyName `json:"properties"`
}

// TableResponse carries a table row count.
type TableResponse struct {
	ResultCode ResultCode `json:"result_code"`
	RowCount   int        `json:"row_count"`
}

// LocalReplicaIdsResponse carries the first id of a reserved local id range.
type LocalReplicaIdsResponse struct {
	ResultCode   ResultCode `json:"result_code"`
	FirstLocalID int        `json:"first_local_id"`
}

// ContextResponse carries the handle of a new download or upload context.
type ContextResponse struct {
	ResultCode    ResultCode `json:"result_code"`
	ContextHandle int        `json:"context_handle"`
}

// ImportHierarchyChangeResponse carries the id of the created or updated folder.
type ImportHierarchyChangeResponse struct {
	ResultCode ResultCode `json:"result_code"`
	FolderID   int        `json:"folder_id"`
}

// ImportMessageMoveResponse carries the id the moved message received and
// the conflict indicators.
type ImportMessageMoveResponse struct {
	ResultCode   ResultCode `json:"result_code"`
	MessageID    int        `json:"message_id"`
	OlderVersion bool       `json:"older_version"`
	CnPcl        bool       `json:"cn_pcl"`
}

// GetBufferResponse carries the produced stream description.
type GetBufferResponse struct {
	ResultCode ResultCode          `json:"result_code"`
	Stream     *FastTransferStream `json:"stream,omitempty"`
}
