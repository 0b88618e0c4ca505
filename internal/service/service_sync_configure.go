// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"slices"

	"github.com/MKhiriev/go-ics-oracle/internal/ics"
	"github.com/MKhiriev/go-ics-oracle/internal/ids"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// SynchronizationConfigure creates a download context with an empty ICS
// state rooted at hierarchySync or contentsSync.
func (s *oracleService) SynchronizationConfigure(ctx context.Context, req models.SynchronizationConfigureRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationConfigure", req.ServerID)
	if err != nil {
		return models.ContextResponse{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	f, err := conn.FolderByHandle(req.FolderHandle)
	if err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	root := models.StreamContentsSync
	if req.SynchronizationType == models.SyncTypeHierarchy {
		root = models.StreamHierarchySync
	}

	d := &store.DownloadContext{
		Handle:       s.ids.Next(ids.Handle),
		ObjectHandle: req.FolderHandle,
		ObjectType:   models.ObjectFolder,
		FolderID:     f.ID,
		SyncType:     req.SynchronizationType,
		SyncFlags:    req.SynchronizationFlags,
		ExtraFlags:   req.ExtraFlags,
		SendOptions:  req.SendOptions,
		PropertyTags: slices.Clone(req.PropertyTags),
		Root:         root,
		State:        ics.NewState(),
		ConfiguredBy: store.OriginSynchronizationConfigure,
	}
	conn.AddDownload(d)
	s.capture(ctx, requirements.DownloadContextCreated)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: d.Handle}, nil
}

// SynchronizationOpenCollector creates an upload context on a folder.
func (s *oracleService) SynchronizationOpenCollector(ctx context.Context, req models.SynchronizationOpenCollectorRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationOpenCollector", req.ServerID)
	if err != nil {
		return models.ContextResponse{}, err
	}

	f, err := conn.FolderByHandle(req.FolderHandle)
	if err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	u := &store.UploadContext{
		Handle:              s.ids.Next(ids.Handle),
		ObjectHandle:        req.FolderHandle,
		ObjectType:          models.ObjectFolder,
		FolderID:            f.ID,
		IsContentsCollector: req.IsContentsCollector,
		State:               ics.NewState(),
		ConfiguredBy:        store.OriginSynchronizationOpenCollector,
	}
	conn.AddUpload(u)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: u.Handle}, nil
}

// SynchronizationGetTransferState creates a download context rooted at a
// state stream that carries a copy of the source context's ICS state.
func (s *oracleService) SynchronizationGetTransferState(ctx context.Context, req models.SynchronizationGetTransferStateRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationGetTransferState", req.ServerID)
	if err != nil {
		return models.ContextResponse{}, err
	}

	src, err := contextState(conn, req.ContextHandle)
	if err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	d := &store.DownloadContext{
		Handle:       s.ids.Next(ids.Handle),
		ObjectHandle: src.objectHandle,
		ObjectType:   src.objectType,
		FolderID:     src.folderID,
		SendOptions:  src.sendOptions,
		Root:         models.StreamState,
		State:        src.state.Clone(),
		ConfiguredBy: store.OriginGetTransferState,
	}
	conn.AddDownload(d)
	s.capture(ctx, requirements.TransferStateCopiesState)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: d.Handle}, nil
}

// SynchronizationUploadState replaces one ICS property of a context with the
// same property of a snapshot stored on the context's folder.
func (s *oracleService) SynchronizationUploadState(ctx context.Context, req models.SynchronizationUploadStateRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SynchronizationUploadState", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	dst, err := contextState(conn, req.ContextHandle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	f, err := conn.FolderByID(dst.folderID)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	snapshot, ok := f.StateContainer[req.StateIndex]
	if !ok {
		return models.ROPResponse{ResultCode: s.fail(ctx, ErrStateNotFound)}, nil
	}

	set, err := snapshot.Property(req.Property)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if err = dst.state.SetProperty(req.Property, set); err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	s.capture(ctx, requirements.UploadStateRestoresProperty)

	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

// stateHolder is the part of a download or upload context the state
// operations need.
type stateHolder struct {
	objectHandle int
	objectType   models.ObjectType
	folderID     int
	sendOptions  models.SendOptions
	state        *ics.State
}

func contextState(conn *store.Connection, handle int) (stateHolder, error) {
	if d, err := conn.Download(handle); err == nil {
		return stateHolder{
			objectHandle: d.ObjectHandle,
			objectType:   d.ObjectType,
			folderID:     d.FolderID,
			sendOptions:  d.SendOptions,
			state:        d.State,
		}, nil
	}
	u, err := conn.Upload(handle)
	if err != nil {
		return stateHolder{}, err
	}
	return stateHolder{
		objectHandle: u.ObjectHandle,
		objectType:   u.ObjectType,
		folderID:     u.FolderID,
		state:        u.State,
	}, nil
}
