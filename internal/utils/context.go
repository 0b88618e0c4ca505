// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils holds small helpers shared by the transport layers: typed
// context keys, JSON response writing, the resty client wrapper and id
// generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys so that they cannot collide
// with string keys of other packages.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// TraceIDCtxKey holds the request trace id shared by the HTTP server and the
// oracle client.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns ctx carrying id under [TraceIDCtxKey].
func WithTraceID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, id)
}

// GetTraceIDFromContext reports the trace id stored in ctx; ok is false when
// none or an empty one is stored.
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(TraceIDCtxKey).(string)
	return id, ok && id != ""
}
