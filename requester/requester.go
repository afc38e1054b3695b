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
	"net/url"

	"github.com/google/uuid"
)

// HistoryDirective asks the dispatch pipeline to push a browser-history entry
// after a successful response. The entry is keyed by the {request, response}
// pair so a later "back" navigation can replay the same lifecycle.
type HistoryDirective struct {
	// Title is the history entry title.
	Title string

	// URI is the target URI recorded in the history entry. When empty the
	// request URI is used.
	URI string
}

// Request describes a single navigation or AJAX-style request flowing through
// the dispatch pipeline.
//
// Method, URI, Headers and Data may be rewritten by per-method transformers
// before the transport is invoked. History, when non-nil, instructs the
// pipeline to push a history entry on success.
type Request struct {
	// ID is a correlation identifier assigned at construction time. It is
	// carried through logs, observability spans, and history state.
	ID string

	// Method is the HTTP verb (GET, POST, PUT, DELETE).
	Method string

	// URI is the request target. Query string and fragment are allowed; only
	// the path participates in route matching.
	URI string

	// Headers holds request headers.
	Headers map[string]string

	// Data holds request parameters. For GET requests the default transformer
	// serializes it into the query string; for body-carrying verbs the default
	// transport form-encodes it.
	Data url.Values

	// History, when set, requests a history push after a successful response.
	History *HistoryDirective
}

// New creates a request for the given method and URI with a fresh correlation
// ID.
func New(method, uri string) *Request {
	return &Request{
		ID:     uuid.NewString(),
		Method: method,
		URI:    uri,
	}
}

// Response carries the outcome of a transport call.
//
// On success Status/StatusText/ResponseText are populated. On failure
// ErrorThrown holds the underlying transport error (nil for plain HTTP error
// statuses) and Errors holds the formatted status line, e.g.
// "HTTP 404 Not Found".
type Response struct {
	Status       int
	StatusText   string
	ResponseText string
	ErrorThrown  error
	Errors       string
}

// ResponseFunc is a continuation invoked with the final (request, response)
// pair of a transport call.
type ResponseFunc func(req *Request, res *Response)

// Requester is the transport capability performing the actual network call.
//
// Fetch must return promptly: implementations deliver the outcome through
// exactly one of the two continuations, possibly from another goroutine. The
// core defines no cancellation or timeout of its own; a stuck transport stalls
// the corresponding lifecycle phases, so implementations should enforce their
// own deadlines.
type Requester interface {
	Fetch(req *Request, onSuccess, onFailure ResponseFunc)
}
