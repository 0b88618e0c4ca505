// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
)

const (
	readRetries     = 2
	readRetryWait   = 100 * time.Millisecond
	readRetryMaxGap = time.Second
)

// HTTPClient embeds *resty.Client so callers use the resty API directly.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client that retries failed GET requests. Other
// methods are never retried: a ROP changes oracle state and must reach the
// server at most once.
func NewHTTPClient() *HTTPClient {
	client := resty.New().
		SetRetryCount(readRetries).
		SetRetryWaitTime(readRetryWait).
		SetRetryMaxWaitTime(readRetryMaxGap).
		AddRetryCondition(func(r *resty.Response, err error) bool {
			if r == nil || r.Request == nil || r.Request.Method != http.MethodGet {
				return false
			}
			return err != nil || r.StatusCode() >= http.StatusInternalServerError
		})

	return &HTTPClient{Client: client}
}
