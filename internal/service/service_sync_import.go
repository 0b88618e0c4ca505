// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/internal/ids"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// collector resolves an upload context opened by SynchronizationOpenCollector
// and the folder it is bound to.
func collector(conn *store.Connection, handle int) (*store.UploadContext, *store.Folder, error) {
	u, err := conn.Upload(handle)
	if err != nil {
		return nil, nil, err
	}
	if u.ConfiguredBy != store.OriginSynchronizationOpenCollector {
		return nil, nil, ErrUnexpectedContext
	}
	f, err := conn.FolderByID(u.FolderID)
	if err != nil {
		return nil, nil, err
	}
	return u, f, nil
}

// SynchronizationImportDeletes removes subfolders (Hierarchy flag) or
// messages of the collector folder. Ids that do not resolve are skipped.
// Every given id leaves the collector's IdsetGiven.
func (s *oracleService) SynchronizationImportDeletes(ctx context.Context, req models.SynchronizationImportDeletesRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationImportDeletes", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	u, f, err := collector(conn, req.UploadContextHandle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	soft := !req.Flags.Has(models.ImportDeleteHardDelete)
	for _, id := range req.ObjectIDs {
		if req.Flags.Has(models.ImportDeleteHierarchy) {
			s.deleteSubFolder(ctx, conn, f, id, soft)
		} else {
			s.deleteMessage(ctx, conn, f, id, soft)
		}
		u.State.Forget(id)
	}
	s.capture(ctx, requirements.ImportDeleteRemovesGiven)

	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

func (s *oracleService) deleteSubFolder(ctx context.Context, conn *store.Connection, f *store.Folder, id int, soft bool) {
	child, err := conn.FolderByID(id)
	if err != nil || child.ParentID != f.ID {
		return
	}
	conn.RemoveFolder(id)
	if soft {
		f.SoftDeletedFolders++
		f.SoftDeleted.Add(id)
		s.capture(ctx, requirements.SoftDeleteCounted)
	}
}

func (s *oracleService) deleteMessage(ctx context.Context, conn *store.Connection, f *store.Folder, id int, soft bool) {
	m, err := conn.MessageByID(id)
	if err != nil || m.FolderID != f.ID {
		return
	}
	conn.RemoveMessage(id)
	if soft {
		if m.Associated {
			f.SoftDeletedFAIMessages++
		} else {
			f.SoftDeletedMessages++
		}
		f.SoftDeleted.Add(id)
		s.capture(ctx, requirements.SoftDeleteCounted)
	}
}

func (s *oracleService) SynchronizationImportHierarchyChange(ctx context.Context, req models.SynchronizationImportHierarchyChangeRequest) (models.ImportHierarchyChangeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationImportHierarchyChange", req.ServerID)
	if err != nil {
		return models.ImportHierarchyChangeResponse{}, err
	}
	return s.importHierarchyChange(ctx, conn, req, false), nil
}

// SynchronizationImportHierarchyChangeWithConflict records the conflict type
// on the collector and otherwise behaves as SynchronizationImportHierarchyChange.
func (s *oracleService) SynchronizationImportHierarchyChangeWithConflict(ctx context.Context, req models.SynchronizationImportHierarchyChangeRequest) (models.ImportHierarchyChangeResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationImportHierarchyChangeWithConflict", req.ServerID)
	if err != nil {
		return models.ImportHierarchyChangeResponse{}, err
	}
	return s.importHierarchyChange(ctx, conn, req, true), nil
}

// importHierarchyChange updates the folder req.FolderID when it exists and
// creates a new one under the given parent otherwise.
func (s *oracleService) importHierarchyChange(ctx context.Context, conn *store.Connection, req models.SynchronizationImportHierarchyChangeRequest, withConflict bool) models.ImportHierarchyChangeResponse {
	u, _, err := collector(conn, req.UploadContextHandle)
	if err != nil {
		return models.ImportHierarchyChangeResponse{ResultCode: s.fail(ctx, err)}
	}
	if withConflict {
		u.ConflictTypes = append(u.ConflictTypes, req.ConflictType)
		s.capture(ctx, requirements.ImportHierarchyConflictIgnored)
	}

	if req.ParentFolderHandle == models.InvalidHandle {
		s.capture(ctx, requirements.ImportHierarchyNoParent)
		return models.ImportHierarchyChangeResponse{ResultCode: s.fail(ctx, ErrNoParentFolder)}
	}
	parent, err := conn.FolderByHandle(req.ParentFolderHandle)
	if err != nil {
		s.capture(ctx, requirements.ImportHierarchyNoParent)
		return models.ImportHierarchyChangeResponse{ResultCode: s.fail(ctx, ErrNoParentFolder)}
	}

	f, err := conn.FolderByID(req.FolderID)
	if err != nil {
		f = conn.NewFolder(s.ids.Next(ids.ObjectID), s.ids.Next(ids.Handle), parent)
		s.capture(ctx, requirements.FolderIDAssignedAtCreation)
	} else if f.ParentID != parent.ID {
		if err = conn.Reparent(f, parent); err != nil {
			s.capture(ctx, requirements.ImportHierarchyCycleRejected)
			return models.ImportHierarchyChangeResponse{ResultCode: s.fail(ctx, err)}
		}
	}
	f.Properties.Add(req.Properties...)
	f.ChangeNumber = s.nextChange()
	u.State.MarkSent(f.ID, f.ChangeNumber, false)

	return models.ImportHierarchyChangeResponse{ResultCode: s.succeed(ctx), FolderID: f.ID}
}

// SynchronizationImportMessageChange updates the message req.MessageID when it
// exists and creates one in the collector folder otherwise. The returned
// handle is bound to the message for further property upload.
func (s *oracleService) SynchronizationImportMessageChange(ctx context.Context, req models.SynchronizationImportMessageChangeRequest) (models.MessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationImportMessageChange", req.ServerID)
	if err != nil {
		return models.MessageResponse{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.MessageResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	u, f, err := collector(conn, req.UploadContextHandle)
	if err != nil {
		return models.MessageResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if !u.IsContentsCollector {
		s.capture(ctx, requirements.ImportMessageOnHierarchyCollector)
		return models.MessageResponse{ResultCode: s.fail(ctx, ErrUnexpectedContext)}, nil
	}

	handle := s.ids.Next(ids.Handle)
	m, err := conn.MessageByID(req.MessageID)
	if err != nil {
		m = conn.NewMessage(handle, f, req.ImportFlag.Has(models.ImportFlagAssociated))
		conn.AssignMessageID(m, s.ids.Next(ids.ObjectID))
	} else {
		conn.BindMessageHandle(m, handle)
	}
	m.Properties.Add(req.Properties...)
	m.ChangeNumber = s.nextChange()
	m.LastModified = m.ChangeNumber
	u.State.MarkSent(m.ID, m.ChangeNumber, m.Associated)

	return models.MessageResponse{ResultCode: s.succeed(ctx), MessageHandle: m.Handle, MessageID: m.ID}, nil
}

// SynchronizationImportReadStateChanges sets the read flag of a message. An
// actual change gets its own read-state change number.
func (s *oracleService) SynchronizationImportReadStateChanges(ctx context.Context, req models.SynchronizationImportReadStateChangesRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationImportReadStateChanges", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	u, _, err := collector(conn, req.UploadContextHandle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	m, err := conn.MessageByID(req.MessageID)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	owner, err := conn.FolderByID(m.FolderID)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if owner.Permission == models.PermissionNone {
		s.capture(ctx, requirements.ReadStateAccessDenied)
		return models.ROPResponse{ResultCode: s.fail(ctx, ErrAccessDenied)}, nil
	}

	if m.Read != req.Read {
		m.Read = req.Read
		m.ReadStateChangeNumber = s.nextChange()
		u.State.MarkReadSent(m.ReadStateChangeNumber)
		s.capture(ctx, requirements.ReadStateOwnChangeNumber)
	}
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

// SynchronizationImportMessageMove moves a message from the source folder into
// the collector folder. The message gets a new id and change number. A
// newer client change is reported as NewerClientChange; the move still
// happens.
func (s *oracleService) SynchronizationImportMessageMove(ctx context.Context, req models.SynchronizationImportMessageMoveRequest) (models.ImportMessageMoveResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationImportMessageMove", req.ServerID)
	if err != nil {
		return models.ImportMessageMoveResponse{}, err
	}

	u, dst, err := collector(conn, req.UploadContextHandle)
	if err != nil {
		return models.ImportMessageMoveResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	src, err := conn.FolderByHandle(req.SourceFolderHandle)
	if err != nil {
		return models.ImportMessageMoveResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	m, err := conn.MessageByID(req.MessageID)
	if err != nil {
		return models.ImportMessageMoveResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if m.FolderID != src.ID {
		return models.ImportMessageMoveResponse{ResultCode: s.fail(ctx, store.ErrMessageNotFound)}, nil
	}

	conn.Relink(m, dst, s.ids.Next(ids.ObjectID))
	m.ChangeNumber = s.nextChange()
	m.LastModified = m.ChangeNumber
	u.State.MarkSent(m.ID, m.ChangeNumber, m.Associated)
	s.capture(ctx, requirements.MoveAssignsNewID)

	if req.NewerClientChange {
		s.capture(ctx, requirements.MoveNewerClientChange)
		logger.FromContext(ctx).Debug().Str("result", models.NewerClientChange.String()).Msg("move over newer client change")
		return models.ImportMessageMoveResponse{
			ResultCode:   models.NewerClientChange,
			MessageID:    m.ID,
			OlderVersion: true,
			CnPcl:        true,
		}, nil
	}
	return models.ImportMessageMoveResponse{ResultCode: s.succeed(ctx), MessageID: m.ID}, nil
}
