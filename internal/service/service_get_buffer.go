// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-ics-oracle/internal/ids"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// FastTransferSourceGetBuffer produces the next stream of a download context
// and registers it under a new buffer index. A Greater buffer size always
// fails with BufferTooSmall.
func (s *oracleService) FastTransferSourceGetBuffer(ctx context.Context, req models.FastTransferSourceGetBufferRequest) (models.GetBufferResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "FastTransferSourceGetBuffer", req.ServerID)
	if err != nil {
		return models.GetBufferResponse{}, err
	}

	if req.BufferSize == models.BufferSizeGreater {
		s.capture(ctx, requirements.BufferTooSmall)
		return models.GetBufferResponse{ResultCode: s.fail(ctx, ErrBufferTooSmall)}, nil
	}
	d, err := conn.Download(req.DownloadContextHandle)
	if err != nil {
		return models.GetBufferResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	stream, err := s.produce(ctx, conn, d)
	if err != nil {
		return models.GetBufferResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	stream.BufferIndex = s.ids.Next(ids.BufferIndex)
	stream.StreamType = d.Root
	conn.AddBuffer(stream)

	return models.GetBufferResponse{ResultCode: s.succeed(ctx), Stream: stream}, nil
}

func (s *oracleService) produce(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.FastTransferStream, error) {
	switch d.Root {
	case models.StreamHierarchySync:
		hs, err := s.hierarchySync(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{HierarchySync: hs}, nil
	case models.StreamContentsSync:
		cs, err := s.contentsSync(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{ContentsSync: cs}, nil
	case models.StreamState:
		st, err := s.stateStream(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{State: st}, nil
	case models.StreamFolderContent:
		fc, err := s.folderContentStream(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{FolderContent: fc}, nil
	case models.StreamMessageContent:
		mc, err := s.messageContentStream(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{MessageContent: mc}, nil
	case models.StreamMessageList:
		ml, err := s.messageListStream(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{MessageList: ml}, nil
	case models.StreamTopFolder:
		tf, err := s.topFolderStream(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{TopFolder: tf}, nil
	case models.StreamAttachmentContent:
		ac, err := s.attachmentContentStream(ctx, conn, d)
		if err != nil {
			return nil, err
		}
		return &models.FastTransferStream{AttachmentContent: ac}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownStreamRoot, d.Root)
	}
}

// stringEncoding selects how string properties are written.
func stringEncoding(opts models.SendOptions) models.StringEncoding {
	switch {
	case opts.Has(models.SendOptionForceUnicode):
		return models.EncodingUnicode
	case opts.Has(models.SendOptionForUpload):
		return models.EncodingUnicodeOrMessageCodePage
	case opts.Has(models.SendOptionUnicode):
		return models.EncodingUnicode
	case opts.Has(models.SendOptionUseCpid):
		return models.EncodingMessageCodePage
	default:
		return models.EncodingConnectionCodePage
	}
}

func (s *oracleService) encoding(ctx context.Context, opts models.SendOptions) models.StringEncoding {
	s.capture(ctx, requirements.StringEncodingSelected)
	return stringEncoding(opts)
}

// snapshot stores a clone of the context state on folder f under a new state
// index and returns its description.
func (s *oracleService) snapshot(ctx context.Context, f *store.Folder, d *store.DownloadContext) models.ICSState {
	idx := s.ids.Next(ids.StateIndex)
	f.StateContainer[idx] = d.State.Clone()
	s.capture(ctx, requirements.StateStreamSnapshotted)
	return d.State.Snapshot(idx)
}

func (s *oracleService) stateStream(ctx context.Context, conn *store.Connection, d *store.DownloadContext) (*models.ICSState, error) {
	f, err := conn.FolderByID(d.FolderID)
	if err != nil {
		return nil, err
	}
	st := s.snapshot(ctx, f, d)
	return &st, nil
}
