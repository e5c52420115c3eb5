// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent is sent with every outgoing request.
const UserAgent = "invoice-entry"

// HTTPClient wraps [resty.Client] for calls to remote collaborators such as
// the extraction service.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://extract.local", 10*time.Second)
//	resp, err := client.R().SetContext(ctx).Post("/api/extract")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A positive timeout bounds
// every request; zero leaves requests bounded only by their context.
// Requests are never retried: multipart bodies are streamed once.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent)

	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	return &HTTPClient{Client: client}
}
