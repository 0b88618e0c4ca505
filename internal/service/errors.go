// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-ics-oracle/internal/ics"
	"github.com/MKhiriev/go-ics-oracle/internal/store"
	"github.com/MKhiriev/go-ics-oracle/internal/validators"
	"github.com/MKhiriev/go-ics-oracle/models"
)

var (
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrConnectionNotFound is the contract error for an operation on a
	// server id without a connection.
	ErrConnectionNotFound = store.ErrConnectionNotFound
)

// Engine rejections. They never leave the service as errors; resultFromError
// turns them into result codes.
var (
	ErrNotLoggedOn       = errors.New("logon handle is not valid")
	ErrNotChildFolder    = errors.New("folder is not a child of the given parent")
	ErrUnexpectedObject  = errors.New("handle refers to an unexpected object type")
	ErrUnexpectedContext = errors.New("context was not configured for this operation")
	ErrStateNotFound     = errors.New("ICS state snapshot not found")
	ErrUnknownStreamRoot = errors.New("unknown stream root")
	ErrRootMismatch      = errors.New("buffer root does not match the destination")

	ErrNoParentFolder = errors.New("parent folder not found")
	ErrAccessDenied   = errors.New("access denied")
	ErrBufferTooSmall = errors.New("buffer too small")
)

var resultCodes = []struct {
	err  error
	code models.ResultCode
}{
	{validators.ErrRPCFormat, models.RPCFormat},
	{validators.ErrNotSupported, models.NotSupported},
	{validators.ErrNotImplemented, models.NotImplemented},
	{validators.ErrInvalidParameter, models.InvalidParameter},
	{ErrNoParentFolder, models.NoParentFolder},
	{ErrAccessDenied, models.AccessDenied},
	{ErrBufferTooSmall, models.BufferTooSmall},
	{ErrNotLoggedOn, models.InvalidParameter},
	{ErrNotChildFolder, models.InvalidParameter},
	{ErrUnexpectedObject, models.InvalidParameter},
	{ErrUnexpectedContext, models.InvalidParameter},
	{ErrStateNotFound, models.InvalidParameter},
	{ErrUnknownStreamRoot, models.InvalidParameter},
	{ErrRootMismatch, models.InvalidParameter},
	{store.ErrFolderNotFound, models.InvalidParameter},
	{store.ErrMessageNotFound, models.InvalidParameter},
	{store.ErrAttachmentNotFound, models.InvalidParameter},
	{store.ErrContextNotFound, models.InvalidParameter},
	{store.ErrBufferNotFound, models.InvalidParameter},
	{store.ErrFolderCycle, models.InvalidParameter},
	{ics.ErrUnknownProperty, models.InvalidParameter},
}

// resultFromError maps an engine rejection to its result code. Anything
// unrecognised is reported as InvalidParameter.
func resultFromError(err error) models.ResultCode {
	if err == nil {
		return models.Success
	}
	for _, rc := range resultCodes {
		if errors.Is(err, rc.err) {
			return rc.code
		}
	}
	return models.InvalidParameter
}
