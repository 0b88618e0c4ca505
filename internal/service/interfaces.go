// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-ics-oracle/models"
)

// Every ROP method returns the protocol outcome in the response's
// ResultCode. The error return is reserved for contract violations of the
// driver, such as an operation on a server id that was never connected.

// LifecycleService covers connection, logon and object lifecycle ROPs.
type LifecycleService interface {
	Connect(ctx context.Context, req models.ConnectRequest) (models.ROPResponse, error)
	Disconnect(ctx context.Context, req models.DisconnectRequest) (models.ROPResponse, error)
	Logon(ctx context.Context, req models.LogonRequest) (models.LogonResponse, error)

	OpenFolder(ctx context.Context, req models.OpenFolderRequest) (models.FolderResponse, error)
	CreateFolder(ctx context.Context, req models.CreateFolderRequest) (models.FolderResponse, error)
	DeleteFolder(ctx context.Context, req models.DeleteFolderRequest) (models.ROPResponse, error)

	CreateMessage(ctx context.Context, req models.CreateMessageRequest) (models.MessageResponse, error)
	OpenMessage(ctx context.Context, req models.OpenMessageRequest) (models.MessageResponse, error)
	SaveChangesMessage(ctx context.Context, req models.SaveChangesMessageRequest) (models.MessageResponse, error)
	CreateAttachment(ctx context.Context, req models.CreateAttachmentRequest) (models.AttachmentResponse, error)

	SetProperties(ctx context.Context, req models.SetPropertiesRequest) (models.ROPResponse, error)
	GetPropertiesSpecific(ctx context.Context, req models.GetPropertiesSpecificRequest) (models.PropertiesResponse, error)
	ModifyPermissions(ctx context.Context, req models.ModifyPermissionsRequest) (models.ROPResponse, error)
	Release(ctx context.Context, req models.ReleaseRequest) (models.ROPResponse, error)

	GetHierarchyTable(ctx context.Context, req models.GetTableRequest) (models.TableResponse, error)
	GetContentsTable(ctx context.Context, req models.GetTableRequest) (models.TableResponse, error)

	GetLocalReplicaIds(ctx context.Context, req models.GetLocalReplicaIdsRequest) (models.LocalReplicaIdsResponse, error)
	SetLocalReplicaMidsetDeleted(ctx context.Context, req models.SetLocalReplicaMidsetDeletedRequest) (models.ROPResponse, error)
}

// SynchronizationService covers ICS download configuration and uploads.
type SynchronizationService interface {
	SynchronizationConfigure(ctx context.Context, req models.SynchronizationConfigureRequest) (models.ContextResponse, error)
	SynchronizationOpenCollector(ctx context.Context, req models.SynchronizationOpenCollectorRequest) (models.ContextResponse, error)

	SynchronizationImportDeletes(ctx context.Context, req models.SynchronizationImportDeletesRequest) (models.ROPResponse, error)
	SynchronizationImportHierarchyChange(ctx context.Context, req models.SynchronizationImportHierarchyChangeRequest) (models.ImportHierarchyChangeResponse, error)
	SynchronizationImportHierarchyChangeWithConflict(ctx context.Context, req models.SynchronizationImportHierarchyChangeRequest) (models.ImportHierarchyChangeResponse, error)
	SynchronizationImportMessageChange(ctx context.Context, req models.SynchronizationImportMessageChangeRequest) (models.MessageResponse, error)
	SynchronizationImportReadStateChanges(ctx context.Context, req models.SynchronizationImportReadStateChangesRequest) (models.ROPResponse, error)
	SynchronizationImportMessageMove(ctx context.Context, req models.SynchronizationImportMessageMoveRequest) (models.ImportMessageMoveResponse, error)

	SynchronizationGetTransferState(ctx context.Context, req models.SynchronizationGetTransferStateRequest) (models.ContextResponse, error)
	SynchronizationUploadState(ctx context.Context, req models.SynchronizationUploadStateRequest) (models.ROPResponse, error)
}

// FastTransferService covers FastTransfer source and destination ROPs.
type FastTransferService interface {
	FastTransferSourceCopyTo(ctx context.Context, req models.FastTransferSourceCopyToRequest) (models.ContextResponse, error)
	FastTransferSourceCopyProperties(ctx context.Context, req models.FastTransferSourceCopyPropertiesRequest) (models.ContextResponse, error)
	FastTransferSourceCopyMessages(ctx context.Context, req models.FastTransferSourceCopyMessagesRequest) (models.ContextResponse, error)
	FastTransferSourceCopyFolder(ctx context.Context, req models.FastTransferSourceCopyFolderRequest) (models.ContextResponse, error)
	FastTransferSourceGetBuffer(ctx context.Context, req models.FastTransferSourceGetBufferRequest) (models.GetBufferResponse, error)

	FastTransferDestinationConfigure(ctx context.Context, req models.FastTransferDestinationConfigureRequest) (models.ContextResponse, error)
	FastTransferDestinationPutBuffer(ctx context.Context, req models.FastTransferDestinationPutBufferRequest) (models.ROPResponse, error)
}

// OracleService is the complete simulated server of one oracle run.
type OracleService interface {
	LifecycleService
	SynchronizationService
	FastTransferService

	// RunID identifies this run in captured requirement records.
	RunID() string
}

// RequirementService reports which requirements were exercised.
type RequirementService interface {
	RunID() string

	// Coverage returns hits per requirement for runID. An empty runID means
	// every run known to the backing store.
	Coverage(ctx context.Context, runID string) ([]models.RequirementCoverage, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	// Behaviors lists every server behaviour toggle and whether this run
	// enables it.
	Behaviors(ctx context.Context) map[string]bool
}
