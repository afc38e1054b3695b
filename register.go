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

import (
	"fmt"
	"net/http"
	"regexp"

	"rivaas.dev/frontroute/middleware"
	"rivaas.dev/frontroute/requester"
	"rivaas.dev/frontroute/router"
)

// registration is the decomposition every registration call resolves to.
// Exactly one of router, plugin, or mw is populated.
type registration struct {
	base       string
	hasBase    bool
	pattern    *regexp.Regexp
	target     *router.Router
	plugin     Plugin
	mw         middleware.Middleware
	middleware bool
}

// resolveArgs classifies a registration argument list: an optional leading
// base URI (string or *regexp.Regexp) followed by one middleware, router, or
// plugin argument. Every public registration method funnels through this
// single classifier so all call sites share one set of validation rules.
func resolveArgs(args []any) (registration, error) {
	var reg registration

	var target any
	switch len(args) {
	case 0:
		return reg, ErrMissingArgument
	case 1:
		target = args[0]
	case 2:
		switch b := args[0].(type) {
		case string:
			reg.base = b
			reg.hasBase = true
		case *regexp.Regexp:
			reg.pattern = b
		default:
			return reg, fmt.Errorf("%w, got %T", ErrInvalidBaseURI, args[0])
		}
		target = args[1]
	default:
		return reg, ErrTooManyArguments
	}

	switch t := target.(type) {
	case nil:
		return reg, ErrMissingArgument
	case *router.Router:
		reg.target = t
	case Plugin:
		reg.plugin = t
	case middleware.Middleware:
		reg.mw = t
		reg.middleware = true
	case middleware.Lifecycle:
		reg.mw = middleware.FromLifecycle(t)
		reg.middleware = true
	case *middleware.Lifecycle:
		reg.mw = middleware.FromLifecycle(*t)
		reg.middleware = true
	case middleware.Func:
		reg.mw = middleware.FromFunc(t)
		reg.middleware = true
	case func(*requester.Request, *requester.Response, middleware.Next):
		reg.mw = middleware.FromFunc(t)
		reg.middleware = true
	case func(*requester.Request, *requester.Response, func()):
		reg.mw = middleware.FromFunc(func(req *requester.Request, res *requester.Response, next middleware.Next) {
			t(req, res, func() { next() })
		})
		reg.middleware = true
	default:
		return reg, fmt.Errorf("%w, got %T", ErrUnsupportedTarget, target)
	}

	if reg.middleware && reg.mw.IsZero() {
		return reg, ErrMissingArgument
	}
	return reg, nil
}

// newScopedRouter builds a router for the registration's base URI form.
func newScopedRouter(reg registration) *router.Router {
	switch {
	case reg.pattern != nil:
		return router.NewWithPattern(reg.pattern)
	case reg.hasBase:
		return router.NewWithBase(reg.base)
	default:
		return router.New()
	}
}

// Use registers middleware, a router, or a plugin, optionally scoped by a
// leading base URI:
//
//	_ = app.Use(mw)                  // catch-all middleware
//	_ = app.Use("/api", mw)          // middleware under a base URI
//	_ = app.Use("/api", subRouter)   // adopt a router under a base URI
//	_ = app.Use(analyticsPlugin)     // register a plugin
//
// Configuration errors (unsupported shapes, mixed base URI forms) are
// returned synchronously.
func (a *App) Use(args ...any) error {
	reg, err := resolveArgs(args)
	if err != nil {
		return err
	}

	switch {
	case reg.plugin != nil:
		if reg.hasBase || reg.pattern != nil {
			return ErrPluginWithBaseURI
		}
		a.plugins = append(a.plugins, reg.plugin)
		a.log.Debug("plugin registered", "plugin", reg.plugin.Name())
		return nil

	case reg.target != nil:
		if reg.hasBase {
			if err := reg.target.SetBase(reg.base); err != nil {
				return err
			}
		}
		if reg.pattern != nil {
			if err := reg.target.SetBasePattern(reg.pattern); err != nil {
				return err
			}
		}
		a.routers = append(a.routers, reg.target)
		return nil

	default:
		r := newScopedRouter(reg)
		r.Use(reg.mw)
		a.routers = append(a.routers, r)
		return nil
	}
}

// handle implements the per-verb registration methods: each call creates a
// dedicated router whose base URI is the optional URI argument and registers
// a method-constrained route on it, keeping registration order across the
// application equal to dispatch order.
func (a *App) handle(method string, args []any) error {
	reg, err := resolveArgs(args)
	if err != nil {
		return err
	}
	if !reg.middleware {
		return ErrMiddlewareRequired
	}

	r := newScopedRouter(reg)
	r.Handle(method, reg.mw)
	a.routers = append(a.routers, r)
	a.log.Debug("route registered", "method", method, "base", reg.base)
	return nil
}

// Get registers middleware for GET requests: app.Get([uri,] middleware).
func (a *App) Get(args ...any) error {
	return a.handle(http.MethodGet, args)
}

// Post registers middleware for POST requests: app.Post([uri,] middleware).
func (a *App) Post(args ...any) error {
	return a.handle(http.MethodPost, args)
}

// Put registers middleware for PUT requests: app.Put([uri,] middleware).
func (a *App) Put(args ...any) error {
	return a.handle(http.MethodPut, args)
}

// Delete registers middleware for DELETE requests:
// app.Delete([uri,] middleware).
func (a *App) Delete(args ...any) error {
	return a.handle(http.MethodDelete, args)
}

// All registers middleware matching every method:
// app.All([uri,] middleware).
func (a *App) All(args ...any) error {
	return a.handle("", args)
}

// Route creates a new router under the given base URI, owned by this
// application and participating in matching in registration order.
//
//	users := app.Route("/users")
//	_, _ = users.Get("/profile", profileMW) // matches /users/profile
func (a *App) Route(uri string) *router.Router {
	r := router.NewWithBase(uri)
	a.routers = append(a.routers, r)
	return r
}

// RoutePattern creates a new router whose base URI is a regular expression.
// Such a router rejects routes carrying their own URI.
func (a *App) RoutePattern(pattern *regexp.Regexp) *router.Router {
	r := router.NewWithPattern(pattern)
	a.routers = append(a.routers, r)
	return r
}
