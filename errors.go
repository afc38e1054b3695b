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

package frontroute

import "errors"

var (
	// ErrMissingArgument indicates a registration call without a middleware,
	// router, or plugin argument.
	ErrMissingArgument = errors.New("registration requires a middleware, router, or plugin argument")

	// ErrTooManyArguments indicates a registration call with more than the
	// optional base URI and the target argument.
	ErrTooManyArguments = errors.New("registration accepts at most a base URI and one target argument")

	// ErrInvalidBaseURI indicates a leading registration argument that is
	// neither a string nor a *regexp.Regexp.
	ErrInvalidBaseURI = errors.New("base URI must be a string or *regexp.Regexp")

	// ErrUnsupportedTarget indicates a registration argument that is not a
	// router, middleware, or plugin.
	ErrUnsupportedTarget = errors.New("target must be a router, middleware, or plugin")

	// ErrMiddlewareRequired indicates that a verb registration method received
	// a router or plugin where only middleware is accepted.
	ErrMiddlewareRequired = errors.New("verb registration accepts middleware only")

	// ErrPluginWithBaseURI indicates a plugin registration carrying a base
	// URI; plugins are not URI-scoped.
	ErrPluginWithBaseURI = errors.New("plugins cannot be registered under a base URI")

	// ErrInvalidRequester indicates a value registered under the
	// "http requester" setting that does not implement requester.Requester.
	ErrInvalidRequester = errors.New(`"http requester" setting must implement requester.Requester`)

	// ErrInvalidTransformer indicates a value registered under a transformer
	// setting that is not a *Transformer.
	ErrInvalidTransformer = errors.New("transformer setting must be a *Transformer")

	// ErrRequesterNotConfigured indicates a dispatch attempt with no transport
	// registered.
	ErrRequesterNotConfigured = errors.New("no http requester configured")

	// ErrInvalidRequestTarget indicates an HTTP-verb dispatch call whose
	// target is neither a URI string nor a *requester.Request.
	ErrInvalidRequestTarget = errors.New("request target must be a URI string or *requester.Request")

	// ErrTooManyCallbacks indicates a dispatch call with more than a resolve
	// and a reject continuation.
	ErrTooManyCallbacks = errors.New("dispatch accepts at most a resolve and a reject continuation")
)
