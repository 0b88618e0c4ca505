// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/internal/ids"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// CreateMessage allocates a handle only; the id comes with the first save.
func (s *oracleService) CreateMessage(ctx context.Context, req models.CreateMessageRequest) (models.MessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "CreateMessage", req.ServerID)
	if err != nil {
		return models.MessageResponse{}, err
	}

	f, err := conn.FolderByHandle(req.FolderHandle)
	if err != nil {
		return models.MessageResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	m := conn.NewMessage(s.ids.Next(ids.Handle), f, req.Associated)
	return models.MessageResponse{ResultCode: s.succeed(ctx), MessageHandle: m.Handle}, nil
}

// OpenMessage binds a new handle to a saved message of the given folder and
// resets its properties.
func (s *oracleService) OpenMessage(ctx context.Context, req models.OpenMessageRequest) (models.MessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "OpenMessage", req.ServerID)
	if err != nil {
		return models.MessageResponse{}, err
	}

	if _, err = conn.FolderByHandle(req.FolderHandle); err != nil {
		return models.MessageResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	m, err := conn.MessageByID(req.MessageID)
	if err != nil {
		return models.MessageResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if m.FolderID != req.FolderID {
		return models.MessageResponse{ResultCode: s.fail(ctx, store.ErrMessageNotFound)}, nil
	}

	conn.BindMessageHandle(m, s.ids.Next(ids.Handle))
	m.Properties = store.NewPropertySet()
	return models.MessageResponse{ResultCode: s.succeed(ctx), MessageHandle: m.Handle, MessageID: m.ID}, nil
}

// SaveChangesMessage commits a message. The first save assigns the id and the
// delivery order; every save assigns a new change number and clears any
// pending read-state change.
func (s *oracleService) SaveChangesMessage(ctx context.Context, req models.SaveChangesMessageRequest) (models.MessageResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SaveChangesMessage", req.ServerID)
	if err != nil {
		return models.MessageResponse{}, err
	}

	m, err := conn.MessageByHandle(req.MessageHandle)
	if err != nil {
		return models.MessageResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	if m.ID == 0 {
		conn.AssignMessageID(m, s.ids.Next(ids.ObjectID))
		m.DeliveryOrder = conn.NextDeliveryOrder()
		s.capture(ctx, requirements.MessageIDAssignedOnFirstSave)
	}
	m.ChangeNumber = s.nextChange()
	m.LastModified = m.ChangeNumber
	m.ReadStateChangeNumber = 0
	s.capture(ctx, requirements.SaveAssignsChangeNumber)

	return models.MessageResponse{ResultCode: s.succeed(ctx), MessageHandle: m.Handle, MessageID: m.ID}, nil
}

func (s *oracleService) CreateAttachment(ctx context.Context, req models.CreateAttachmentRequest) (models.AttachmentResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "CreateAttachment", req.ServerID)
	if err != nil {
		return models.AttachmentResponse{}, err
	}

	m, err := conn.MessageByHandle(req.MessageHandle)
	if err != nil {
		return models.AttachmentResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	a := conn.NewAttachment(s.ids.Next(ids.Handle), m)
	return models.AttachmentResponse{ResultCode: s.succeed(ctx), AttachmentHandle: a.Handle}, nil
}
