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

// Package frontroute is a client-side request-routing and middleware-dispatch
// engine. It brings a server-style registration API (Use, Get, Post, Put,
// Delete, All, Route) to code running inside a browser-like host: application
// code registers URI- and method-scoped middleware, and the engine decides,
// for every navigation or AJAX-style request, which middleware run and in
// which lifecycle phase.
//
// # Lifecycle phases
//
// Each route moves between unvisited and visited as navigations come and go:
//
//   - entered: a matched route is about to become active, before transport
//     dispatch.
//   - updated: a successful response arrived; the route is marked visited.
//   - exited: a new request cycle (or page unload) drains every previously
//     visited route, application-wide, and clears its visited marker.
//   - failed: the transport reported a failure for a matched route.
//
// Middleware is either a lifecycle-hook handler or a bare callback; the two
// have inverted continuation defaults (handlers continue unless their Next
// predicate says stop; callbacks stop unless they call next). See the
// middleware package.
//
// # Basic usage
//
//	app := frontroute.MustNew()
//
//	_ = app.Get("/user", middleware.FromLifecycle(middleware.Lifecycle{
//	    Entered: func(req *requester.Request) { showSpinner() },
//	    Updated: func(req *requester.Request, res *requester.Response) {
//	        render(res.ResponseText)
//	    },
//	    Exited: func(req *requester.Request) { hideSpinner() },
//	}))
//
//	_ = app.Boot(context.Background())
//	_ = app.HTTPGet("/user?id=42")
//
// # Request pipeline
//
// Dispatch applies the per-verb transformer (by default GET data is folded
// into the query string, preserving fragments), drains visited routes, runs
// the entered phase, and hands the request to the transport registered under
// the "http requester" setting. The transport's continuation pushes a history
// entry when the request carries a history directive, then runs the updated
// or failed phase and finally the caller's resolve or reject continuation.
//
// Configuration errors surface synchronously at registration time;
// transport failures never do - they flow through the failed phase and the
// reject continuation as a structured response.
package frontroute
