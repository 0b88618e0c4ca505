// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-ics-oracle/internal/logger"
	"github.com/MKhiriev/go-ics-oracle/internal/service"
	"github.com/MKhiriev/go-ics-oracle/internal/utils"
)

// maxROPBody bounds a single decoded ROP request.
const maxROPBody = 1 << 20

// rop adapts one engine operation to HTTP: the body is decoded into Req and
// the response, whatever its result code, is written with 200. Only contract
// errors of the engine produce a non-2xx status.
func rop[Req, Resp any](name string, call func(context.Context, Req) (Resp, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var req Req
		dec := json.NewDecoder(io.LimitReader(r.Body, maxROPBody))
		dec.DisallowUnknownFields()
		if err := dec.Decode(&req); err != nil && !errors.Is(err, io.EOF) {
			log.Err(err).Str("func", "rop").Str("operation", name).Msg("invalid JSON was passed")
			http.Error(w, fmt.Sprintf("%s: %v", ErrInvalidJSON, err), http.StatusBadRequest)
			return
		}

		resp, err := call(r.Context(), req)
		if err != nil {
			log.Err(err).Str("func", "rop").Str("operation", name).Msg("operation failed")
			http.Error(w, err.Error(), statusFromError(err))
			return
		}

		if _, err = utils.WriteJSON(w, resp, http.StatusOK); err != nil {
			log.Err(err).Str("func", "rop").Str("operation", name).Msg("error writing response")
		}
	}
}

func ropOperations(s service.OracleService) map[string]http.HandlerFunc {
	ops := map[string]http.HandlerFunc{
		// lifecycle
		"Connect":                      rop("Connect", s.Connect),
		"Disconnect":                   rop("Disconnect", s.Disconnect),
		"Logon":                        rop("Logon", s.Logon),
		"OpenFolder":                   rop("OpenFolder", s.OpenFolder),
		"CreateFolder":                 rop("CreateFolder", s.CreateFolder),
		"DeleteFolder":                 rop("DeleteFolder", s.DeleteFolder),
		"CreateMessage":                rop("CreateMessage", s.CreateMessage),
		"OpenMessage":                  rop("OpenMessage", s.OpenMessage),
		"SaveChangesMessage":           rop("SaveChangesMessage", s.SaveChangesMessage),
		"CreateAttachment":             rop("CreateAttachment", s.CreateAttachment),
		"SetProperties":                rop("SetProperties", s.SetProperties),
		"GetPropertiesSpecific":        rop("GetPropertiesSpecific", s.GetPropertiesSpecific),
		"ModifyPermissions":            rop("ModifyPermissions", s.ModifyPermissions),
		"Release":                      rop("Release", s.Release),
		"GetHierarchyTable":            rop("GetHierarchyTable", s.GetHierarchyTable),
		"GetContentsTable":             rop("GetContentsTable", s.GetContentsTable),
		"GetLocalReplicaIds":           rop("GetLocalReplicaIds", s.GetLocalReplicaIds),
		"SetLocalReplicaMidsetDeleted": rop("SetLocalReplicaMidsetDeleted", s.SetLocalReplicaMidsetDeleted),

		// synchronization
		"SynchronizationConfigure":                         rop("SynchronizationConfigure", s.SynchronizationConfigure),
		"SynchronizationOpenCollector":                     rop("SynchronizationOpenCollector", s.SynchronizationOpenCollector),
		"SynchronizationImportDeletes":                     rop("SynchronizationImportDeletes", s.SynchronizationImportDeletes),
		"SynchronizationImportHierarchyChange":             rop("SynchronizationImportHierarchyChange", s.SynchronizationImportHierarchyChange),
		"SynchronizationImportHierarchyChangeWithConflict": rop("SynchronizationImportHierarchyChangeWithConflict", s.SynchronizationImportHierarchyChangeWithConflict),
		"SynchronizationImportMessageChange":               rop("SynchronizationImportMessageChange", s.SynchronizationImportMessageChange),
		"SynchronizationImportReadStateChanges":            rop("SynchronizationImportReadStateChanges", s.SynchronizationImportReadStateChanges),
		"SynchronizationImportMessageMove":                 rop("SynchronizationImportMessageMove", s.SynchronizationImportMessageMove),
		"SynchronizationGetTransferState":                  rop("SynchronizationGetTransferState", s.SynchronizationGetTransferState),
		"SynchronizationUploadState":                       rop("SynchronizationUploadState", s.SynchronizationUploadState),

		// fast transfer
		"FastTransferSourceCopyTo":         rop("FastTransferSourceCopyTo", s.FastTransferSourceCopyTo),
		"FastTransferSourceCopyProperties": rop("FastTransferSourceCopyProperties", s.FastTransferSourceCopyProperties),
		"FastTransferSourceCopyMessages":   rop("FastTransferSourceCopyMessages", s.FastTransferSourceCopyMessages),
		"FastTransferSourceCopyFolder":     rop("FastTransferSourceCopyFolder", s.FastTransferSourceCopyFolder),
		"FastTransferSourceGetBuffer":      rop("FastTransferSourceGetBuffer", s.FastTransferSourceGetBuffer),
		"FastTransferDestinationConfigure": rop("FastTransferDestinationConfigure", s.FastTransferDestinationConfigure),
		"FastTransferDestinationPutBuffer": rop("FastTransferDestinationPutBuffer", s.FastTransferDestinationPutBuffer),
	}
	return ops
}

// handleROP dispatches POST /api/rop/{operation}.
func (h *Handler) handleROP(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "operation")
	op, ok := h.operations[name]
	if !ok {
		logger.FromRequest(r).Warn().Str("func", "*Handler.handleROP").Str("operation", name).Msg("unknown operation")
		http.Error(w, fmt.Sprintf("%s: %q", ErrUnknownOperation, name), http.StatusNotFound)
		return
	}

	log := logger.FromRequest(r).With().Str("rop", name).Logger()
	op(w, r.WithContext(log.WithContext(r.Context())))
}
