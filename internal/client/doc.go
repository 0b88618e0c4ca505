// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client replays a scripted sequence of ROPs against a remote oracle
// and reports result codes and requirement coverage.
//
// A script is JSON:
//
//	{"steps": [
//	  {"operation": "Connect", "request": {"server_id": 1}, "expect": "Success"},
//	  {"operation": "Logon", "request": {"server_id": 1}}
//	]}
//
// A step without "expect" only records the result code.
package client
