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
	"rivaas.dev/frontroute/middleware"
	"rivaas.dev/frontroute/navigation"
	"rivaas.dev/frontroute/requester"
	"rivaas.dev/frontroute/router"
)

// Phase names a middleware lifecycle phase.
type Phase string

const (
	// PhaseEntered fires when a new navigation begins, before transport
	// dispatch, over the routes about to become active.
	PhaseEntered Phase = "entered"

	// PhaseUpdated fires after a successful response (or immediately for
	// non-network navigations) over the matched routes.
	PhaseUpdated Phase = "updated"

	// PhaseExited fires before the next request begins (or on unload) over
	// every previously visited route, application-wide.
	PhaseExited Phase = "exited"

	// PhaseFailed fires after a failed response over the matched routes.
	PhaseFailed Phase = "failed"
)

// continueAfterHook applies the Lifecycle short-circuit rule: after a hook
// invocation the handler's Next predicate, if present, decides whether the
// phase keeps walking. The Lifecycle default is to continue.
func continueAfterHook(h *middleware.Lifecycle) bool {
	return h.Next == nil || h.Next()
}

// runEntered walks the matched routes signalling that they are about to
// become active. Only Lifecycle middleware participates: there is
// deliberately no fallback to invoking a Func as a bare callback here.
func (a *App) runEntered(routes []*router.Route, req *requester.Request) {
	for _, rt := range routes {
		h := rt.Middleware().Hooks()
		if h == nil || h.Entered == nil {
			continue
		}
		h.Entered(req)
		if !continueAfterHook(h) {
			a.log.Debug("phase short-circuited", "phase", PhaseEntered, "request", req.ID)
			return
		}
	}
}

// runUpdated walks the matched routes after a successful response. Each route
// is marked visited with the triggering request before its middleware runs.
// Lifecycle middleware without an Updated hook is skipped; Func middleware is
// invoked as (request, response, next) and stops the phase unless it calls
// next synchronously.
func (a *App) runUpdated(routes []*router.Route, req *requester.Request, res *requester.Response) {
	for _, rt := range routes {
		rt.MarkVisited(req)

		m := rt.Middleware()
		if h := m.Hooks(); h != nil {
			if h.Updated == nil {
				continue
			}
			h.Updated(req, res)
			if !continueAfterHook(h) {
				a.log.Debug("phase short-circuited", "phase", PhaseUpdated, "request", req.ID)
				return
			}
			continue
		}

		if fn := m.Fn(); fn != nil {
			proceed := false
			fn(req, res, func() { proceed = true })
			if !proceed {
				a.log.Debug("phase short-circuited", "phase", PhaseUpdated, "request", req.ID)
				return
			}
		}
	}
}

// runFailed walks the matched routes after a failed response. It mirrors
// runUpdated's dispatch and short-circuit rules but never marks routes
// visited.
func (a *App) runFailed(routes []*router.Route, req *requester.Request, res *requester.Response) {
	for _, rt := range routes {
		m := rt.Middleware()
		if h := m.Hooks(); h != nil {
			if h.Failed == nil {
				continue
			}
			h.Failed(req, res)
			if !continueAfterHook(h) {
				a.log.Debug("phase short-circuited", "phase", PhaseFailed, "request", req.ID)
				return
			}
			continue
		}

		if fn := m.Fn(); fn != nil {
			proceed := false
			fn(req, res, func() { proceed = true })
			if !proceed {
				a.log.Debug("phase short-circuited", "phase", PhaseFailed, "request", req.ID)
				return
			}
		}
	}
}

// runExited drains every previously visited route across every router,
// independent of any new request: leaving the current view is a global
// signal, not one scoped to the routes the next request will match. The
// Exited hook, when present, receives the request that originally activated
// the route; the visited marker is cleared either way.
func (a *App) runExited() {
	for _, r := range a.routers {
		for _, rt := range r.Registered() {
			prev := rt.Visited()
			if prev == nil {
				continue
			}
			if h := rt.Middleware().Hooks(); h != nil && h.Exited != nil {
				h.Exited(prev)
			}
			rt.ClearVisited()
		}
	}
}

// replay re-runs the lifecycle for a persisted {request, response} pair, as
// delivered by a history traversal: drain the previously visited routes,
// then enter and update the routes the stored request matches. No transport
// call is involved.
func (a *App) replay(state navigation.State) {
	if state.Request == nil {
		return
	}
	a.log.Debug("replaying history state", "request", state.Request.ID, "uri", state.Request.URI)

	a.runExited()
	routes := a.matchedRoutes(state.Request)
	a.runEntered(routes, state.Request)
	a.runUpdated(routes, state.Request, state.Response)
}
