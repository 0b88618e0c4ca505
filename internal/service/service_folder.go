// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/internal/ics"
	"github.com/MKhiriev/go-ics-oracle/internal/ids"
	"github.com/MKhiriev/go-ics-oracle/internal/requirements"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/models"
)

// OpenFolder binds a new handle to an existing folder. The folder's view is
// reset: subfolder ids, message ids and properties start empty.
func (s *oracleService) OpenFolder(ctx context.Context, req models.OpenFolderRequest) (models.FolderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "OpenFolder", req.ServerID)
	if err != nil {
		return models.FolderResponse{}, err
	}

	if !conn.LoggedOn(req.LogonHandle) {
		return models.FolderResponse{ResultCode: s.fail(ctx, ErrNotLoggedOn)}, nil
	}
	f, err := conn.FolderByID(req.FolderID)
	if err != nil {
		return models.FolderResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	conn.BindFolderHandle(f, s.ids.Next(ids.Handle))
	f.SubFolderIDs = ics.NewSet()
	f.MessageIDs = ics.NewSet()
	f.Properties = store.NewPropertySet()

	return models.FolderResponse{ResultCode: s.succeed(ctx), FolderHandle: f.Handle, FolderID: f.ID}, nil
}

// CreateFolder allocates the folder's handle and id at once.
func (s *oracleService) CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.FolderResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "CreateFolder", req.ServerID)
	if err != nil {
		return models.FolderResponse{}, err
	}

	parent, err := conn.FolderByHandle(req.ParentFolderHandle)
	if err != nil {
		return models.FolderResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	f := conn.NewFolder(s.ids.Next(ids.ObjectID), s.ids.Next(ids.Handle), parent)
	f.Name = req.Name
	f.ChangeNumber = s.nextChange()
	s.capture(ctx, requirements.FolderIDAssignedAtCreation)

	return models.FolderResponse{ResultCode: s.succeed(ctx), FolderHandle: f.Handle, FolderID: f.ID}, nil
}

// DeleteFolder removes a child of the given parent together with its subtree.
func (s *oracleService) DeleteFolder(ctx context.Context, req models.DeleteFolderRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "DeleteFolder", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	parent, err := conn.FolderByHandle(req.ParentFolderHandle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	f, err := conn.FolderByID(req.FolderID)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	if f.ParentID != parent.ID {
		return models.ROPResponse{ResultCode: s.fail(ctx, ErrNotChildFolder)}, nil
	}

	conn.RemoveFolder(f.ID)
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

func (s *oracleService) ModifyPermissions(ctx context.Context, req models.ModifyPermissionsRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "ModifyPermissions", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	f, err := conn.FolderByHandle(req.FolderHandle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	f.Permission = req.Permission
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

// SetProperties adds property names to a folder, message or attachment.
// A folder gets a new change number.
func (s *oracleService) SetProperties(ctx context.Context, req models.SetPropertiesRequest) (models.ROPResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "SetProperties", req.ServerID)
	if err != nil {
		return models.ROPResponse{}, err
	}

	props, err := objectProperties(conn, req.Handle)
	if err != nil {
		return models.ROPResponse{ResultCode: s.fail(ctx, err)}, nil
	}
	props.Add(req.Properties...)

	if f, err := conn.FolderByHandle(req.Handle); err == nil {
		f.ChangeNumber = s.nextChange()
	}
	return models.ROPResponse{ResultCode: s.succeed(ctx)}, nil
}

// GetPropertiesSpecific returns the requested names present on the object,
// in request order.
func (s *oracleService) GetPropertiesSpecific(ctx context.Context, req models.GetPropertiesSpecificRequest) (models.PropertiesResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ctx, conn, err := s.begin(ctx, "GetPropertiesSpecific", req.ServerID)
	if err != nil {
		return models.PropertiesResponse{}, err
	}

	props, err := objectProperties(conn, req.Handle)
	if err != nil {
		return models.PropertiesResponse{ResultCode: s.fail(ctx, err)}, nil
	}

	present := make([]models.PropertyName, 0, len(req.Properties))
	for _, p := range req.Properties {
		if props.Has(p) {
			present = append(present, p)
		}
	}
	return models.PropertiesResponse{ResultCode: s.succeed(ctx), Properties: present}, nil
}

// objectProperties resolves the property set of any object handle.
func objectProperties(conn *store.Connection, handle int) (store.PropertySet, error) {
	switch conn.ObjectType(handle) {
	case models.ObjectFolder:
		f, err := conn.FolderByHandle(handle)
		if err != nil {
			return nil, err
		}
		return f.Properties, nil
	case models.ObjectMessage:
		m, err := conn.MessageByHandle(handle)
		if err != nil {
			return nil, err
		}
		return m.Properties, nil
	case models.ObjectAttachment:
		a, err := conn.AttachmentByHandle(handle)
		if err != nil {
			return nil, err
		}
		return a.Properties, nil
	default:
		return nil, ErrUnexpectedObject
	}
}
