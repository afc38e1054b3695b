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

package router

import (
	"regexp"

	"rivaas.dev/frontroute/middleware"
	"rivaas.dev/frontroute/requester"
)

// Route is one registered (URI, method, middleware) binding owned by a
// Router.
//
// The owning router, URI part, method, and middleware are immutable after
// construction. The visited marker is the only mutable field; it is written
// exclusively by the application's dispatch loop, which runs on a single
// event-dispatch goroutine.
type Route struct {
	owner *Router

	uriPart string
	hasURI  bool
	pattern *regexp.Regexp

	// method is the HTTP verb constraint, or "" for any method.
	method string

	mw middleware.Middleware

	// visited holds the request that last completed the updated phase for
	// this route, or nil. It is cleared when the exited phase drains the
	// route.
	visited *requester.Request
}

// Method returns the route's verb constraint, or "" when the route matches
// any method.
func (rt *Route) Method() string {
	return rt.method
}

// Middleware returns the middleware bound to this route.
func (rt *Route) Middleware() middleware.Middleware {
	return rt.mw
}

// Visited returns the request that last completed the updated phase for this
// route, or nil if the route is not currently active.
func (rt *Route) Visited() *requester.Request {
	return rt.visited
}

// MarkVisited records req as the request that activated this route.
func (rt *Route) MarkVisited(req *requester.Request) {
	rt.visited = req
}

// ClearVisited resets the route to the unvisited state.
func (rt *Route) ClearVisited() {
	rt.visited = nil
}

// Pattern returns the route's effective regular-expression constraint: the
// route's own pattern, or the owning router's base pattern. Nil when the
// route is string- or un-constrained.
func (rt *Route) Pattern() *regexp.Regexp {
	if rt.pattern != nil {
		return rt.pattern
	}
	return rt.owner.basePattern
}

// URI returns the route's resolved string URI and whether one exists. The
// resolution mirrors how a browser-side router derives the final path:
//   - the owning router's base URI concatenated with the route's URI part,
//     duplicate slashes collapsed, when both are present;
//   - the base URI alone when only it exists;
//   - the URI part alone otherwise.
//
// Routes constrained by a regular expression report no string URI; consult
// Pattern for those.
func (rt *Route) URI() (string, bool) {
	if rt.Pattern() != nil {
		return "", false
	}
	switch {
	case rt.hasURI && rt.owner.hasBase:
		return joinURI(rt.owner.base, rt.uriPart), true
	case rt.owner.hasBase:
		return rt.owner.base, true
	case rt.hasURI:
		return rt.uriPart, true
	default:
		return "", false
	}
}

// constrained reports whether the route carries any URI constraint, string or
// pattern.
func (rt *Route) constrained() bool {
	return rt.hasURI || rt.pattern != nil || rt.owner.hasBase || rt.owner.basePattern != nil
}

// matches implements the per-route matching algorithm:
//  1. no method and no URI constraint matches unconditionally;
//  2. a set method that differs from the request's method never matches;
//  3. no URI constraint matches any path (method-only middleware);
//  4. only the path participates: query string and fragment are stripped;
//  5. pattern constraints match by regular expression;
//  6. string constraints match by exact equality.
func (rt *Route) matches(req *requester.Request) bool {
	if rt.method == "" && !rt.constrained() {
		return true
	}
	if rt.method != "" && rt.method != req.Method {
		return false
	}
	if !rt.constrained() {
		return true
	}

	path := StripPath(req.URI)
	if p := rt.Pattern(); p != nil {
		return p.MatchString(path)
	}
	uri, _ := rt.URI()
	return path == uri
}
