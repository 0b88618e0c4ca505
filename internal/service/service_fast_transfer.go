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

// objectRoot returns the stream root a CopyTo or CopyProperties of the
// object produces.
func objectRoot(t models.ObjectType) (models.StreamType, error) {
	switch t {
	case models.ObjectFolder:
		return models.StreamFolderContent, nil
	case models.ObjectMessage:
		return models.StreamMessageContent, nil
	case models.ObjectAttachment:
		return models.StreamAttachmentContent, nil
	default:
		return models.StreamNone, ErrUnexpectedObject
	}
}

// sourceRoot returns the stream root produced by op on an object of type t.
func sourceRoot(op models.SourceOperation, t models.ObjectType) (models.StreamType, error) {
	switch op {
	case models.SourceOperationCopyTo, models.SourceOperationCopyProperties:
		return objectRoot(t)
	case models.SourceOperationCopyMessages:
		if t != models.ObjectFolder {
			return models.StreamNone, ErrUnexpectedObject
		}
		return models.StreamMessageList, nil
	case models.SourceOperationCopyFolder:
		if t != models.ObjectFolder {
			return models.StreamNone, ErrUnexpectedObject
		}
		return models.StreamTopFolder, nil
	default:
		return models.StreamNone, ErrUnknownStreamRoot
	}
}

// objectDownload fills the object part of a CopyTo or CopyProperties
// download context.
func objectDownload(conn *store.Connection, handle int) (*store.DownloadContext, error) {
	t := conn.ObjectType(handle)
	root, err := objectRoot(t)
	if err != nil {
		return nil, err
	}

	d := &store.DownloadContext{ObjectHandle: handle, ObjectType: t, Root: root, State: ics.NewState()}
	switch t {
	case models.ObjectFolder:
		f, err := conn.FolderByHandle(handle)
		if err != nil {
			return nil, err
		}
		d.FolderID = f.ID
	case models.ObjectMessage:
		m, err := conn.MessageByHandle(handle)
		if err != nil {
			return nil, err
		}
		d.FolderID = m.FolderID
		d.MessageHandle = handle
	case models.ObjectAttachment:
		a, err := conn.AttachmentByHandle(handle)
		if err != nil {
			return nil, err
		}
		m, err := conn.MessageByHandle(a.MessageHandle)
		if err != nil {
			return nil, err
		}
		d.FolderID = m.FolderID
		d.MessageHandle = a.MessageHandle
	}
	return d, nil
}

// FastTransferSourceCopyTo copies every property of an object except the
// excluded ones. Level zero includes sub-objects.
func (s *oracleService) FastTransferSourceCopyTo(ctx context.Context, req models.FastTransferSourceCopyToRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "FastTransferSourceCopyTo", req.ServerID)
	if err != nil {
		return models.ContextResponse{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	d, err := objectDownload(conn, req.ObjectHandle)
	if err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	d.Handle = s.ids.Next(ids.Handle)
	d.Level = req.Level
	d.CopyFlags = req.CopyFlags
	d.SendOptions = req.SendOptions
	d.PropertyTags = slices.Clone(req.ExcludedProperties)
	d.ConfiguredBy = store.OriginCopyTo
	conn.AddDownload(d)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: d.Handle}, nil
}

// FastTransferSourceCopyProperties copies only the listed properties of an
// object.
func (s *oracleService) FastTransferSourceCopyProperties(ctx context.Context, req models.FastTransferSourceCopyPropertiesRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "FastTransferSourceCopyProperties", req.ServerID)
	if err != nil {
		return models.ContextResponse{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	d, err := objectDownload(conn, req.ObjectHandle)
	if err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	d.Handle = s.ids.Next(ids.Handle)
	d.Level = req.Level
	d.CopyFlags = req.CopyFlags
	d.SendOptions = req.SendOptions
	d.PropertyTags = slices.Clone(req.Properties)
	d.ConfiguredBy = store.OriginCopyProperties
	conn.AddDownload(d)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: d.Handle}, nil
}

// FastTransferSourceCopyMessages copies the listed messages of a folder.
// Every id must resolve when the context is configured.
func (s *oracleService) FastTransferSourceCopyMessages(ctx context.Context, req models.FastTransferSourceCopyMessagesRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "FastTransferSourceCopyMessages", req.ServerID)
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
	for _, id := range req.MessageIDs {
		if _, err = conn.MessageByID(id); err != nil {
			return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
		}
	}

	d := &store.DownloadContext{
		Handle:       s.ids.Next(ids.Handle),
		ObjectHandle: req.FolderHandle,
		ObjectType:   models.ObjectFolder,
		FolderID:     f.ID,
		MessageIDs:   slices.Clone(req.MessageIDs),
		CopyFlags:    req.CopyFlags,
		SendOptions:  req.SendOptions,
		Root:         models.StreamMessageList,
		State:        ics.NewState(),
		ConfiguredBy: store.OriginCopyMessages,
	}
	conn.AddDownload(d)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: d.Handle}, nil
}

// FastTransferSourceCopyFolder copies a folder with its messages and, with
// CopySubfolders, its subfolders.
func (s *oracleService) FastTransferSourceCopyFolder(ctx context.Context, req models.FastTransferSourceCopyFolderRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "FastTransferSourceCopyFolder", req.ServerID)
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

	d := &store.DownloadContext{
		Handle:       s.ids.Next(ids.Handle),
		ObjectHandle: req.FolderHandle,
		ObjectType:   models.ObjectFolder,
		FolderID:     f.ID,
		CopyFlags:    req.CopyFlags,
		SendOptions:  req.SendOptions,
		Root:         models.StreamTopFolder,
		State:        ics.NewState(),
		ConfiguredBy: store.OriginCopyFolder,
	}
	conn.AddDownload(d)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: d.Handle}, nil
}

// FastTransferDestinationConfigure prepares an object to receive a stream
// produced by req.SourceOperation.
func (s *oracleService) FastTransferDestinationConfigure(ctx context.Context, req models.FastTransferDestinationConfigureRequest) (models.ContextResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "FastTransferDestinationConfigure", req.ServerID)
	if err != nil {
		return models.ContextResponse{}, err
	}

	if err = s.validator.Validate(ctx, req); err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	d, err := objectDownload(conn, req.ObjectHandle)
	if err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if _, err = sourceRoot(req.SourceOperation, d.ObjectType); err != nil {
		return models.ContextResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	u := &store.UploadContext{
		Handle:          s.ids.Next(ids.Handle),
		ObjectHandle:    req.ObjectHandle,
		ObjectType:      d.ObjectType,
		FolderID:        d.FolderID,
		SourceOperation: req.SourceOperation,
		CopyFlags:       req.CopyFlags,
		State:           ics.NewState(),
		ConfiguredBy:    store.OriginDestinationConfigure,
	}
	conn.AddUpload(u)

	return models.ContextResponse{ResultCode: s.succeed(ctx), ContextHandle: u.Handle}, nil
}

// FastTransferDestinationPutBuffer accepts a produced buffer whose root
// matches the destination's source operation. Nothing else changes.
func (s *oracleService) FastTransferDestinationPutBuffer(ctx context.Context, req models.FastTransferDestinationPutBufferRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "FastTransferDestinationPutBuffer", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	u, err := conn.Upload(req.UploadContextHandle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if u.ConfiguredBy != store.OriginDestinationConfigure {
		return models.ROPResponse{ResultCode: s.fail(ctx, ErrUnexpectedContext)}, nil
	}
	buf, err := conn.Buffer(req.BufferIndex)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	want, err := sourceRoot(u.SourceOperation, u.ObjectType)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if buf.StreamType != want {
		s.capture(ctx, requirements.DestinationRootMismatch)
		return models.ROPResponse{ResultCode: s.fail(ctx, ErrRootMismatch)}, nil
	}

	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}
