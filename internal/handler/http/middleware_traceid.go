// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-ics-oracle/internal/utils"
)

const traceIDHeader = "X-Trace-ID"

// withTraceID reuses the caller's X-Trace-ID or generates one, echoes it in
// the response and attaches a request logger carrying it. When the oracle is
// wired the logger also carries the run id, so engine logs of one harness
// step can be joined with the captured requirements of that run.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(traceIDHeader)
		if traceID == "" {
			traceID = utils.NewUUIDGenerator().Generate()
		}

		l := h.logger.GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			c = c.Str("trace_id", traceID)
			if h.services != nil && h.services.OracleService != nil {
				c = c.Str("run_id", h.services.OracleService.RunID())
			}
			return c
		})

		w.Header().Set(traceIDHeader, traceID)
		ctx := utils.WithTraceID(l.WithContext(r.Context()), traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
