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

package middleware

import "rivaas.dev/frontroute/requester"

// Next is the continuation passed to Func middleware. A Func that wants the
// current lifecycle phase to keep walking the remaining matched routes must
// invoke it during its synchronous execution; not calling it stops the phase
// at this route.
type Next func()

// Func is bare-callback middleware. It participates only in the updated and
// failed phases, where it is invoked as (request, response, next).
//
// The continuation default is inverted relative to Lifecycle middleware: a
// Func stops the phase unless it explicitly calls next, while a Lifecycle
// handler continues unless its Next method returns false. This asymmetry
// governs how middleware chains compose and is preserved deliberately.
type Func func(req *requester.Request, res *requester.Response, next Next)

// Lifecycle is hook-based middleware. Every field is optional; nil hooks are
// skipped during dispatch.
//
// Hooks fire per lifecycle phase:
//   - Entered: a matched route is about to become active, before transport
//     dispatch. There is no Func fallback for this phase.
//   - Updated: a successful response arrived (or a non-network navigation
//     completed) for a matched route.
//   - Exited: the route was visited by a previous request and a new request
//     cycle (or unload) is draining it. Receives the prior request.
//   - Failed: the transport reported a failure for a matched route.
//
// Next, when non-nil, is consulted immediately after a hook invocation;
// returning false stops the current phase before the remaining matched routes
// run.
type Lifecycle struct {
	Entered func(req *requester.Request)
	Updated func(req *requester.Request, res *requester.Response)
	Exited  func(req *requester.Request)
	Failed  func(req *requester.Request, res *requester.Response)
	Next    func() bool
}

// Middleware is the tagged variant dispatched by the lifecycle state machine:
// either a Func or a Lifecycle handler. The zero value is empty and matches
// nothing; construct values with FromFunc or FromLifecycle.
//
// Dispatch switches on the tag via Fn and Hooks rather than duck-typing method
// presence, so the two cases can never be confused.
type Middleware struct {
	fn    Func
	hooks *Lifecycle
}

// FromFunc wraps a bare callback as Middleware.
func FromFunc(fn Func) Middleware {
	return Middleware{fn: fn}
}

// FromLifecycle wraps a hook set as Middleware. The value is copied, so later
// mutation of l does not affect registered routes.
func FromLifecycle(l Lifecycle) Middleware {
	hooks := l
	return Middleware{hooks: &hooks}
}

// Fn returns the callback case, or nil if this is Lifecycle middleware.
func (m Middleware) Fn() Func {
	return m.fn
}

// Hooks returns the Lifecycle case, or nil if this is Func middleware.
func (m Middleware) Hooks() *Lifecycle {
	return m.hooks
}

// IsZero reports whether the middleware carries neither case.
func (m Middleware) IsZero() bool {
	return m.fn == nil && m.hooks == nil
}
