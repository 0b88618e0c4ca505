// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strconv"

	"github.com/MKhiriev/go-ics-oracle/internal/ids"
	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/models"
)

const inboxName = "Inbox"

// Connect creates an empty connection. An existing connection with the same
// server id is replaced.
func (s *oracleService) Connect(ctx context.Context, req models.ConnectRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx = logger.Attach(ctx, s.logger)
	ctx = logger.WithFields(ctx, "rop", "Connect", "server_id", strconv.Itoa(req.ServerID))

	s.mailbox.Connect(req.ServerID, req.ConnectionType)
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

func (s *oracleService) Disconnect(ctx context.Context, req models.DisconnectRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, _, err := s.begin(ctx, "Disconnect", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	s.mailbox.Disconnect(req.ServerID)
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

// Logon discards the connection's objects and creates the root Inbox.
func (s *oracleService) Logon(ctx context.Context, req models.LogonRequest) (models.LogonResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "Logon", req.ServerID)
	if err != nil {
		return models.LogonResponse{}, err
	}

	conn.Logon(s.ids.Next(ids.Handle), req.Flag)

	inbox := conn.NewFolder(s.ids.Next(ids.ObjectID), s.ids.Next(ids.Handle), nil)
	inbox.Name = inboxName
	inbox.Permission = models.PermissionReadAny
	inbox.ChangeNumber = s.nextChange()
	conn.InboxID = inbox.ID
	s.capture(ctx, requirements.LogonCreatesInbox)

	return models.LogonResponse{
		ResultCode:        s.succeed(ctx),
		LogonHandle:       conn.LogonHandle,
		InboxFolderHandle: inbox.Handle,
		InboxFolderID:     inbox.ID,
	}, nil
}

// Release retires a download or upload context bound to the handle. Object
// handles stay resolvable.
func (s *oracleService) Release(ctx context.Context, req models.ReleaseRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "Release", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	if conn.Retire(req.Handle) {
		logger.FromContext(ctx).Debug().Int("handle", req.Handle).Msg("context retired")
	}
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

// GetHierarchyTable returns the number of subfolders, or of soft-deleted
// subfolders when req.Deleted is set.
func (s *oracleService) GetHierarchyTable(ctx context.Context, req models.GetTableRequest) (models.TableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "GetHierarchyTable", req.ServerID)
	if err != nil {
		return models.TableResponse{}, err
	}

	f, err := conn.FolderByHandle(req.FolderHandle)
	if err != nil {
		return models.TableResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	rows := f.SubFolderIDs.Len()
	if req.Deleted {
		rows = f.SoftDeletedFolders
	}
	return models.TableResponse{ResultCode: s.succeed(ctx), RowCount: rows}, nil
}

// GetContentsTable returns the number of normal or FAI messages, or of the
// soft-deleted ones when req.Deleted is set.
func (s *oracleService) GetContentsTable(ctx context.Context, req models.GetTableRequest) (models.TableResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "GetContentsTable", req.ServerID)
	if err != nil {
		return models.TableResponse{}, err
	}

	f, err := conn.FolderByHandle(req.FolderHandle)
	if err != nil {
		return models.TableResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	var rows int
	switch {
	case req.Deleted && req.Associated:
		rows = f.SoftDeletedFAIMessages
	case req.Deleted:
		rows = f.SoftDeletedMessages
	default:
		for _, m := range conn.MessagesIn(f) {
			if m.Associated == req.Associated {
				rows++
			}
		}
	}
	return models.TableResponse{ResultCode: s.succeed(ctx), RowCount: rows}, nil
}

// GetLocalReplicaIds reserves a block of ids from the object id space so
// they never collide with server-assigned ids.
func (s *oracleService) GetLocalReplicaIds(ctx context.Context, req models.GetLocalReplicaIdsRequest) (models.LocalReplicaIdsResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "GetLocalReplicaIds", req.ServerID)
	if err != nil {
		return models.LocalReplicaIdsResponse{}, err
	}

	if !conn.LoggedOn(req.LogonHandle) {
		return models.LocalReplicaIdsResponse{ResultCode: s.fail(ctx, ErrNotLoggedOn)}, nil
	}
	if err = s.validator.Validate(ctx, req); err != nil {
		return models.LocalReplicaIdsResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	first := s.ids.Reserve(ids.ObjectID, req.IDCount)
	conn.LocalIDCount += req.IDCount
	return models.LocalReplicaIdsResponse{ResultCode: s.succeed(ctx), FirstLocalID: first}, nil
}

func (s *oracleService) SetLocalReplicaMidsetDeleted(ctx context.Context, req models.SetLocalReplicaMidsetDeletedRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SetLocalReplicaMidsetDeleted", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	f, err := conn.FolderByHandle(req.FolderHandle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if err = s.validator.Validate(ctx, req); err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	f.DeletedRanges = append(f.DeletedRanges, req.Ranges...)
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}
