// Copyright 2025 The Rivaas Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package requester

import (
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// defaultTimeout bounds a single transport call. The dispatch pipeline has no
// timeout of its own, so the default transport must not hang forever.
const defaultTimeout = 30 * time.Second

// HTTPOption defines functional options for the HTTP requester.
type HTTPOption func(*HTTP)

// WithClient replaces the underlying http.Client.
func WithClient(client *http.Client) HTTPOption {
	return func(h *HTTP) {
		h.client = client
	}
}

// WithBaseURL prefixes relative request URIs with the given base URL. Useful
// when the application routes same-origin paths like "/api/users".
func WithBaseURL(base string) HTTPOption {
	return func(h *HTTP) {
		h.baseURL = strings.TrimRight(base, "/")
	}
}

// HTTP is the default Requester backed by net/http. It plays the role the
// XML-HTTP request object plays in a browser: each Fetch runs asynchronously
// and reports through the success or failure continuation.
type HTTP struct {
	client  *http.Client
	baseURL string
}

// NewHTTP creates the default transport.
func NewHTTP(opts ...HTTPOption) *HTTP {
	h := &HTTP{
		client: &http.Client{Timeout: defaultTimeout},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Fetch performs the request on a separate goroutine and invokes exactly one
// of the continuations. Statuses in [200, 300) are successes; everything else,
// including transport-level errors, is delivered to onFailure with a formatted
// status line in Errors.
func (h *HTTP) Fetch(req *Request, onSuccess, onFailure ResponseFunc) {
	go h.do(req, onSuccess, onFailure)
}

func (h *HTTP) do(req *Request, onSuccess, onFailure ResponseFunc) {
	httpReq, err := h.build(req)
	if err != nil {
		h.fail(req, onFailure, &Response{
			ErrorThrown: err,
			Errors:      "invalid request: " + err.Error(),
		})
		return
	}

	httpRes, err := h.client.Do(httpReq)
	if err != nil {
		h.fail(req, onFailure, &Response{
			ErrorThrown: err,
			Errors:      "request failed: " + err.Error(),
		})
		return
	}
	defer httpRes.Body.Close() //nolint:errcheck // Response body close on read path

	body, err := io.ReadAll(httpRes.Body)
	if err != nil {
		h.fail(req, onFailure, &Response{
			Status:      httpRes.StatusCode,
			StatusText:  http.StatusText(httpRes.StatusCode),
			ErrorThrown: err,
			Errors:      "reading response body: " + err.Error(),
		})
		return
	}

	res := &Response{
		Status:       httpRes.StatusCode,
		StatusText:   http.StatusText(httpRes.StatusCode),
		ResponseText: string(body),
	}

	if res.Status < http.StatusOK || res.Status >= http.StatusMultipleChoices {
		res.Errors = statusLine(res.Status)
		if onFailure != nil {
			onFailure(req, res)
		}
		return
	}

	if onSuccess != nil {
		onSuccess(req, res)
	}
}

// build assembles the net/http request. Body-carrying verbs form-encode Data;
// GET relies on the pipeline's transformer to have folded Data into the URI.
func (h *HTTP) build(req *Request) (*http.Request, error) {
	uri := req.URI
	if h.baseURL != "" && strings.HasPrefix(uri, "/") {
		uri = h.baseURL + uri
	}

	var body io.Reader
	if req.Method != http.MethodGet && len(req.Data) > 0 {
		body = strings.NewReader(req.Data.Encode())
	}

	httpReq, err := http.NewRequest(req.Method, uri, body)
	if err != nil {
		return nil, err
	}
	for k, v := range req.Headers {
		httpReq.Header.Set(k, v)
	}
	if body != nil && httpReq.Header.Get("Content-Type") == "" {
		httpReq.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}
	return httpReq, nil
}

func (h *HTTP) fail(req *Request, onFailure ResponseFunc, res *Response) {
	if onFailure != nil {
		onFailure(req, res)
	}
}

// statusLine formats the failure status line carried in Response.Errors.
func statusLine(status int) string {
	text := http.StatusText(status)
	if text == "" {
		text = "Unknown Status"
	}
	return fmt.Sprintf("HTTP %d %s", status, text)
}
