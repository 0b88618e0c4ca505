// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// StreamType is the root element of a FastTransfer stream.
type StreamType string

const (
	StreamNone              StreamType = ""
	StreamState             StreamType = "state"
	StreamHierarchySync     StreamType = "hierarchySync"
	StreamContentsSync      StreamType = "contentsSync"
	StreamFolderContent     StreamType = "folderContent"
	StreamMessageContent    StreamType = "MessageContent"
	StreamMessageList       StreamType = "MessageList"
	StreamTopFolder         StreamType = "TopFolder"
	StreamAttachmentContent StreamType = "attachmentContent"
)

// StringEncoding is how string properties are written into a stream.
type StringEncoding string

const (
	// EncodingConnectionCodePage uses the code page negotiated at logon.
	EncodingConnectionCodePage StringEncoding = "ConnectionCodePage"
	// EncodingUnicode writes every string property in Unicode.
	EncodingUnicode StringEncoding = "Unicode"
	// EncodingMessageCodePage uses the code page stored on the message.
	EncodingMessageCodePage StringEncoding = "MessageCodePage"
	// EncodingUnicodeOrMessageCodePage writes Unicode when the original was
	// Unicode and the message code page otherwise (upload mode).
	EncodingUnicodeOrMessageCodePage StringEncoding = "UnicodeOrMessageCodePage"
)

// FastTransferStream is the structured description of the content a server
// must place in a FastTransfer stream. Exactly one of the element pointers
// matching StreamType is set.
type FastTransferStream struct {
	BufferIndex int        `json:"buffer_index"`
	StreamType  StreamType `json:"stream_type"`

	HierarchySync     *HierarchySync     `json:"hierarchy_sync,omitempty"`
	ContentsSync      *ContentsSync      `json:"contents_sync,omitempty"`
	State             *ICSState          `json:"state,omitempty"`
	FolderContent     *FolderContent     `json:"folder_content,omitempty"`
	MessageContent    *MessageContent    `json:"message_content,omitempty"`
	MessageList       *MessageList       `json:"message_list,omitempty"`
	TopFolder         *TopFolder         `json:"top_folder,omitempty"`
	AttachmentContent *AttachmentContent `json:"attachment_content,omitempty"`
}

// ICSState is a snapshot of the four ICS sets. StateIndex identifies the
// snapshot stored on the synchronized folder; zero when none was stored.
type ICSState struct {
	StateIndex   int   `json:"state_index"`
	IdsetGiven   []int `json:"idset_given"`
	CnsetSeen    []int `json:"cnset_seen"`
	CnsetSeenFAI []int `json:"cnset_seen_fai"`
	CnsetRead    []int `json:"cnset_read"`
}

// Deletions describes the deletion element of a synchronization stream.
type Deletions struct {
	Present                bool  `json:"present"`
	IDSetDeleted           []int `json:"idset_deleted,omitempty"`
	IDSetSoftDeleted       []int `json:"idset_soft_deleted,omitempty"`
	NoLongerInScopePresent bool  `json:"no_longer_in_scope_present"`
}

// FolderChange is one folderChange element of a hierarchy synchronization.
type FolderChange struct {
	FolderID              int            `json:"folder_id"`
	ParentFolderID        int            `json:"parent_folder_id"`
	ChangeNumber          int            `json:"change_number"`
	FolderIDPresent       bool           `json:"folder_id_present"`
	ParentFolderIDPresent bool           `json:"parent_folder_id_present"`
	ParentSourceKeyEmpty  bool           `json:"parent_source_key_empty"`
	Properties            []PropertyName `json:"properties,omitempty"`
}

// HierarchySync is the hierarchySync stream root.
type HierarchySync struct {
	FolderChanges     []FolderChange `json:"folder_changes"`
	ParentBeforeChild bool           `json:"parent_before_child"`
	Deletions         Deletions      `json:"deletions"`
	FinalState        ICSState       `json:"final_state"`
}

// MessageChange is one messageChange element of a contents synchronization.
type MessageChange struct {
	MessageID           int            `json:"message_id"`
	FolderID            int            `json:"folder_id"`
	Associated          bool           `json:"associated"`
	ChangeNumber        int            `json:"change_number"`
	Partial             bool           `json:"partial"`
	MidPresent          bool           `json:"mid_present"`
	ChangeNumberPresent bool           `json:"change_number_present"`
	MessageSizePresent  bool           `json:"message_size_present"`
	BestBody            bool           `json:"best_body"`
	Encoding            StringEncoding `json:"encoding"`
	Properties          []PropertyName `json:"properties,omitempty"`
}

// ReadStateChange is one entry of the readStateChanges element.
type ReadStateChange struct {
	MessageID int  `json:"message_id"`
	Read      bool `json:"read"`
}

// ContentsSync is the contentsSync stream root.
type ContentsSync struct {
	ProgressTotalPresent         bool              `json:"progress_total_present"`
	ProgressPerMessagePresent    bool              `json:"progress_per_message_present"`
	MessageChanges               []MessageChange   `json:"message_changes"`
	SortedByDeliveryTime         bool              `json:"sorted_by_delivery_time"`
	SortedByLastModificationTime bool              `json:"sorted_by_last_modification_time"`
	Deletions                    Deletions         `json:"deletions"`
	ReadStateChangesPresent      bool              `json:"read_state_changes_present"`
	ReadStateChanges             []ReadStateChange `json:"read_state_changes,omitempty"`
	FinalState                   ICSState          `json:"final_state"`
}

// MessageContent is the MessageContent stream root and the body of every
// message nested in other roots.
type MessageContent struct {
	MessageID                int            `json:"message_id"`
	Associated               bool           `json:"associated"`
	Encoding                 StringEncoding `json:"encoding"`
	BestBody                 bool           `json:"best_body"`
	Properties               []PropertyName `json:"properties,omitempty"`
	RecipientsPresent        bool           `json:"recipients_present"`
	RecipientsPrecededByDel  bool           `json:"recipients_preceded_by_del_prop"`
	AttachmentsPresent       bool           `json:"attachments_present"`
	AttachmentsPrecededByDel bool           `json:"attachments_preceded_by_del_prop"`
	AttachmentCount          int            `json:"attachment_count"`
}

// MessageList is the MessageList stream root.
type MessageList struct {
	Messages                   []MessageContent `json:"messages"`
	NoPermissionObjectsOmitted bool             `json:"no_permission_objects_omitted"`
	EcWarningPresent           bool             `json:"ec_warning_present"`
}

// FolderContent is the folderContent stream root and the body of folders
// nested in TopFolder and in other folderContent elements.
type FolderContent struct {
	FolderID                   int              `json:"folder_id"`
	Encoding                   StringEncoding   `json:"encoding"`
	Properties                 []PropertyName   `json:"properties,omitempty"`
	PropertiesOmitted          bool             `json:"properties_omitted"`
	Messages                   []MessageContent `json:"messages,omitempty"`
	AssociatedMessages         []MessageContent `json:"associated_messages,omitempty"`
	MessagesPrecededByDel      bool             `json:"messages_preceded_by_del_prop"`
	SubFolders                 []FolderContent  `json:"sub_folders,omitempty"`
	SubFoldersPrecededByDel    bool             `json:"sub_folders_preceded_by_del_prop"`
	NoPermissionObjectsOmitted bool             `json:"no_permission_objects_omitted"`
	EcWarningPresent           bool             `json:"ec_warning_present"`
}

// TopFolder is the TopFolder stream root.
type TopFolder struct {
	Folder            FolderContent `json:"folder"`
	SubFoldersInScope bool          `json:"sub_folders_in_scope"`
}

// AttachmentContent is the attachmentContent stream root.
type AttachmentContent struct {
	AttachmentHandle int            `json:"attachment_handle"`
	Encoding         StringEncoding `json:"encoding"`
	Properties       []PropertyName `json:"properties,omitempty"`
}
