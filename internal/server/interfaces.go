// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

// Server is the lifecycle contract of transport servers managed by this
// package. RunServer blocks until shutdown is requested.
type Server interface {
	RunServer()
	Shutdown()
}
