// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// ResultCode is the protocol-level outcome of a single remote operation.
// It is the value compared against a real server's response, so the set is
// closed: every operation resolves to exactly one of these codes.
type ResultCode int

const (
	// Success means the operation completed as requested.
	Success ResultCode = iota

	// InvalidParameter means malformed input or an unresolved handle/id.
	InvalidParameter

	// NotSupported means the simulated server version does not support the
	// requested feature.
	NotSupported

	// NotImplemented means the simulated server does not implement the
	// requested behaviour at all.
	NotImplemented

	// BufferTooSmall means the requested transfer buffer size is unsatisfiable.
	BufferTooSmall

	// NewerClientChange means the client holds a newer version of the object
	// than the server expects.
	NewerClientChange

	// NoParentFolder means the referenced parent folder does not exist.
	NoParentFolder

	// AccessDenied means a permission check failed.
	AccessDenied

	// RPCFormat means the request is malformed at the wire-format level.
	RPCFormat
)

var resultCodeNames = map[ResultCode]string{
	Success:           "Success",
	InvalidParameter:  "InvalidParameter",
	NotSupported:      "NotSupported",
	NotImplemented:    "NotImplemented",
	BufferTooSmall:    "BufferTooSmall",
	NewerClientChange: "NewerClientChange",
	NoParentFolder:    "NoParentFolder",
	AccessDenied:      "AccessDenied",
	RPCFormat:         "RpcFormat",
}

func (c ResultCode) String() string {
	if name, ok := resultCodeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("ResultCode(%d)", int(c))
}

// MarshalText encodes the code by name so JSON responses stay readable.
func (c ResultCode) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText accepts the names produced by MarshalText (case-insensitive).
func (c *ResultCode) UnmarshalText(text []byte) error {
	for code, name := range resultCodeNames {
		if strings.EqualFold(name, string(text)) {
			*c = code
			return nil
		}
	}
	return fmt.Errorf("unknown result code %q", string(text))
}
