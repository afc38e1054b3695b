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

// Package router implements route registration and matching for the
// frontroute engine.
//
// A Router is an ordered collection of Routes sharing an optional base URI.
// Matching resolves a request (URI + method) to the subsequence of routes
// whose constraints it satisfies, in registration order; the application
// aggregates matches across routers and walks them during lifecycle dispatch.
//
// Only the path participates in matching: query strings and fragments are
// stripped before comparison, so "/a?x=1" and "/a#frag" both match a route
// registered for "/a".
//
// Constraints come in three flavors:
//
//	r.Use(mw)                          // no constraint at all (catch-all)
//	r.Handle(http.MethodGet, mw)       // method-only
//	r.Get("/users", mw)                // method + exact path
//	r.HandlePattern("", re, mw)        // regular-expression path
//
// Configuration mistakes (mixing string and pattern base URIs, registering a
// URI-bearing route on a pattern-based router) surface as errors at
// registration time, never at match time.
package router
