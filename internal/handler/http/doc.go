// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http exposes the oracle over HTTP/JSON so that a test harness in
// another process can drive it.
//
// Every ROP is reachable at POST /api/rop/{operation} with the operation's
// request struct as body. The response body always carries the protocol
// result code; HTTP errors are reserved for transport problems and driver
// contract violations such as an unknown server id. Requirement coverage is
// served at GET /api/requirements and the build version at GET /api/version.
package http
