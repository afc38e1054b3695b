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
	"net/http"
	"regexp"

	"rivaas.dev/frontroute/middleware"
	"rivaas.dev/frontroute/requester"
)

// Router is an ordered collection of routes sharing an optional base URI.
//
// Route insertion order is significant: Routes returns matches in
// registration order, and that order is the dispatch order the lifecycle
// phases walk, so it determines where a short-circuit stops.
//
// A base URI may be set at most once and is either a string or a regular
// expression; mixing the two forms is a configuration error. A router whose
// base is a regular expression cannot register routes that carry their own
// URI.
//
// Example:
//
//	r := router.New()
//	r.Get("/users", listUsers)
//	r.Post("/users", createUser)
type Router struct {
	base        string
	hasBase     bool
	basePattern *regexp.Regexp

	routes []*Route
}

// New creates a router with no base URI.
func New() *Router {
	return &Router{}
}

// NewWithBase creates a router whose routes resolve under the given base URI.
func NewWithBase(base string) *Router {
	return &Router{base: base, hasBase: true}
}

// NewWithPattern creates a router whose routes all match the given regular
// expression. Such a router rejects routes carrying their own URI.
func NewWithPattern(pattern *regexp.Regexp) *Router {
	return &Router{basePattern: pattern}
}

// SetBase sets the string base URI. The base may be set at most once: a
// second call with a base already in place keeps the first value. Setting a
// string base on a pattern-based router returns ErrMixedBaseURI.
func (r *Router) SetBase(base string) error {
	if r.basePattern != nil {
		return ErrMixedBaseURI
	}
	if r.hasBase {
		return nil
	}
	r.base = base
	r.hasBase = true
	return nil
}

// SetBasePattern sets the regular-expression base. Setting a pattern on a
// router that already has a string base returns ErrMixedBaseURI.
func (r *Router) SetBasePattern(pattern *regexp.Regexp) error {
	if r.hasBase {
		return ErrMixedBaseURI
	}
	if r.basePattern != nil {
		return nil
	}
	r.basePattern = pattern
	return nil
}

// Base returns the string base URI and whether one is set.
func (r *Router) Base() (string, bool) {
	return r.base, r.hasBase
}

// BasePattern returns the regular-expression base, or nil.
func (r *Router) BasePattern() *regexp.Regexp {
	return r.basePattern
}

// Use registers catch-all middleware: no method constraint and no URI part.
// On a router without a base the route matches every request; with a base it
// matches the base URI for every method.
func (r *Router) Use(mw middleware.Middleware) *Route {
	rt := &Route{owner: r, mw: mw}
	r.routes = append(r.routes, rt)
	return rt
}

// Handle registers middleware constrained by method only. An empty method
// means any method.
func (r *Router) Handle(method string, mw middleware.Middleware) *Route {
	rt := &Route{owner: r, method: method, mw: mw}
	r.routes = append(r.routes, rt)
	return rt
}

// HandleURI registers middleware for the given method and URI part. An empty
// method means any method. Registering a URI on a pattern-based router
// returns ErrPatternBaseRouteURI.
func (r *Router) HandleURI(method, uri string, mw middleware.Middleware) (*Route, error) {
	if r.basePattern != nil {
		return nil, ErrPatternBaseRouteURI
	}
	rt := &Route{owner: r, method: method, uriPart: uri, hasURI: true, mw: mw}
	r.routes = append(r.routes, rt)
	return rt, nil
}

// HandlePattern registers middleware whose URI constraint is a regular
// expression. Registering a pattern on a pattern-based router returns
// ErrPatternBaseRouteURI.
func (r *Router) HandlePattern(method string, pattern *regexp.Regexp, mw middleware.Middleware) (*Route, error) {
	if r.basePattern != nil {
		return nil, ErrPatternBaseRouteURI
	}
	rt := &Route{owner: r, method: method, pattern: pattern, mw: mw}
	r.routes = append(r.routes, rt)
	return rt, nil
}

// Get registers GET middleware for the given URI part.
func (r *Router) Get(uri string, mw middleware.Middleware) (*Route, error) {
	return r.HandleURI(http.MethodGet, uri, mw)
}

// Post registers POST middleware for the given URI part.
func (r *Router) Post(uri string, mw middleware.Middleware) (*Route, error) {
	return r.HandleURI(http.MethodPost, uri, mw)
}

// Put registers PUT middleware for the given URI part.
func (r *Router) Put(uri string, mw middleware.Middleware) (*Route, error) {
	return r.HandleURI(http.MethodPut, uri, mw)
}

// Delete registers DELETE middleware for the given URI part.
func (r *Router) Delete(uri string, mw middleware.Middleware) (*Route, error) {
	return r.HandleURI(http.MethodDelete, uri, mw)
}

// All registers middleware for the given URI part matching any method.
func (r *Router) All(uri string, mw middleware.Middleware) (*Route, error) {
	return r.HandleURI("", uri, mw)
}

// Routes returns the ordered subsequence of this router's routes matching the
// request's URI and method. Order follows registration order.
func (r *Router) Routes(req *requester.Request) []*Route {
	var matched []*Route
	for _, rt := range r.routes {
		if rt.matches(req) {
			matched = append(matched, rt)
		}
	}
	return matched
}

// Registered returns all routes in registration order. The returned slice is
// shared with the router and must not be mutated; it exists for the dispatch
// loop's application-wide visited scan and for introspection.
func (r *Router) Registered() []*Route {
	return r.routes
}

// Len returns the number of registered routes.
func (r *Router) Len() int {
	return len(r.routes)
}
