// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// PropertyName identifies a property by its canonical name
// (e.g. "PidTagDisplayName"). The binary tag layout belongs to the wire
// encoding layer and is not modelled.
type PropertyName string

// Properties that stand for sub-object collections. Including or excluding
// them in a property list controls whether the sub-objects are copied.
const (
	PidTagMessageRecipients        PropertyName = "PidTagMessageRecipients"
	PidTagMessageAttachments       PropertyName = "PidTagMessageAttachments"
	PidTagContainerHierarchy       PropertyName = "PidTagContainerHierarchy"
	PidTagContainerContents        PropertyName = "PidTagContainerContents"
	PidTagFolderAssociatedContents PropertyName = "PidTagFolderAssociatedContents"
)

// Common scalar properties used by tests and default records.
const (
	PidTagDisplayName  PropertyName = "PidTagDisplayName"
	PidTagSubject      PropertyName = "PidTagSubject"
	PidTagBody         PropertyName = "PidTagBody"
	PidTagMessageClass PropertyName = "PidTagMessageClass"
)

// ContainsProperty reports whether name is in list.
func ContainsProperty(list []PropertyName, name PropertyName) bool {
	for _, p := range list {
		if p == name {
			return true
		}
	}
	return false
}

// PermissionLevel is the access a logged-on user has to a folder.
type PermissionLevel int

const (
	PermissionNone PermissionLevel = iota
	PermissionFolderVisible
	PermissionReadAny
	PermissionCreate
	PermissionDeleteAny
	PermissionFullPermission
)

// CanDelete reports whether the level grants deleting items in the folder.
func (p PermissionLevel) CanDelete() bool {
	return p >= PermissionDeleteAny
}
