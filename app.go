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
	"context"
	"io"
	"log/slog"
	"net/http"
	"sync"

	"rivaas.dev/frontroute/navigation"
	"rivaas.dev/frontroute/requester"
	"rivaas.dev/frontroute/router"
	"rivaas.dev/frontroute/settings"
)

// noopLogger is a singleton no-op logger used when no logger is configured.
var noopLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Settings keys consumed by the engine.
const (
	// SettingRequester holds the transport implementation. The value must
	// implement requester.Requester; App.Set enforces this at registration
	// time.
	SettingRequester = "http requester"
)

// TransformerKey returns the settings key holding the per-verb request
// transformer, e.g. "http GET transformer".
func TransformerKey(method string) string {
	return "http " + method + " transformer"
}

// App is the application: it owns all routers, the settings registry, and the
// plugin list; it drives the middleware lifecycle state machine and the
// request pipeline.
//
// The engine models a single-threaded, event-driven host: all phase dispatch
// runs to completion on the goroutine that triggered it, and the only
// suspension point is the transport call, whose continuation resumes
// lifecycle dispatch asynchronously. Registration is expected to happen
// during startup, before dispatching begins.
//
// Example:
//
//	app := frontroute.MustNew()
//	_ = app.Get("/user", middleware.FromLifecycle(middleware.Lifecycle{
//	    Updated: func(req *requester.Request, res *requester.Response) {
//	        render(res.ResponseText)
//	    },
//	}))
//	_ = app.Boot(context.Background())
//	_ = app.HTTPGet("/user?id=1")
type App struct {
	// routers in registration order; this order is the match-evaluation and
	// dispatch order across routers.
	routers []*router.Router

	registry *settings.Registry
	plugins  []Plugin

	log      *slog.Logger
	recorder DispatchRecorder
	history  navigation.History
	source   navigation.Source

	baseCtx   context.Context
	bootOnce  sync.Once
	unsubOnce sync.Once
	unsub     func()

	initErr error
}

// New creates an application with the default transport (requester.HTTP) and
// the default GET transformer (data serialized as query parameters)
// registered in its settings.
//
// Returns an error if any option is invalid. Configuration is validated
// immediately at startup rather than at request time.
func New(opts ...Option) (*App, error) {
	a := &App{
		registry: settings.New(),
		log:      noopLogger,
		recorder: nopRecorder{},
		history:  navigation.NoopHistory{},
		baseCtx:  context.Background(),
	}
	a.registry.Set(SettingRequester, requester.NewHTTP())
	a.registry.Set(TransformerKey(http.MethodGet), QueryTransformer())

	for _, opt := range opts {
		opt(a)
	}
	if a.initErr != nil {
		return nil, a.initErr
	}
	return a, nil
}

// MustNew is like New but panics on configuration errors. Intended for
// program startup where an invalid configuration is unrecoverable.
func MustNew(opts ...Option) *App {
	a, err := New(opts...)
	if err != nil {
		panic(err)
	}
	return a
}

// Boot runs every registered plugin exactly once and subscribes to the
// navigation source: an unloading event drains all visited routes through the
// exited phase, and a popstate event replays the persisted lifecycle.
//
// ctx becomes the base context for dispatch observability. Boot is
// idempotent; only the first call has any effect.
func (a *App) Boot(ctx context.Context) error {
	a.bootOnce.Do(func() {
		if ctx != nil {
			a.baseCtx = ctx
		}
		for _, p := range a.plugins {
			a.log.Debug("running plugin", "plugin", p.Name())
			p.Plugin(a)
		}
		if a.source != nil {
			a.unsub = a.source.Subscribe(a.onNavigation)
		}
	})
	return nil
}

// Close detaches the application from its navigation source. Routes,
// settings, and plugins remain registered.
func (a *App) Close() error {
	a.unsubOnce.Do(func() {
		if a.unsub != nil {
			a.unsub()
		}
	})
	return nil
}

// onNavigation reacts to host lifecycle signals.
func (a *App) onNavigation(ev navigation.Event) {
	switch ev.Kind {
	case navigation.KindUnloading:
		a.log.Debug("unloading, draining visited routes")
		a.runExited()
	case navigation.KindPopState:
		a.replay(ev.State)
	default:
		// Started/Completed/Failed are informational; the pipeline drives
		// those transitions itself.
	}
}

// Set stores a settings value, validating engine-reserved keys: the
// "http requester" value must implement requester.Requester and transformer
// values must be *Transformer. Validation failures are returned immediately
// so misconfiguration surfaces at startup, never at request time.
func (a *App) Set(key string, value any) error {
	switch {
	case key == SettingRequester:
		if _, ok := value.(requester.Requester); !ok {
			return ErrInvalidRequester
		}
	case isTransformerKey(key):
		if _, ok := value.(*Transformer); !ok {
			return ErrInvalidTransformer
		}
	}
	a.registry.Set(key, value)
	return nil
}

// Setting returns the settings value stored under key, or nil. It is the
// typed replacement for the single-string lookup form of the verb methods.
func (a *App) Setting(key string) any {
	return a.registry.Get(key)
}

// Settings exposes the underlying registry for typed access and file
// loading.
func (a *App) Settings() *settings.Registry {
	return a.registry
}

// Routers returns the registered routers in registration order. The slice is
// shared with the application and must not be mutated.
func (a *App) Routers() []*router.Router {
	return a.routers
}

// isTransformerKey matches the "http <VERB> transformer" settings keys.
func isTransformerKey(key string) bool {
	for _, m := range verbs {
		if key == TransformerKey(m) {
			return true
		}
	}
	return false
}

// verbs is the fixed HTTP-verb set understood by the engine.
var verbs = []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete}

// requesterImpl returns the active transport from the settings registry.
func (a *App) requesterImpl() (requester.Requester, error) {
	rq, ok := a.registry.Get(SettingRequester).(requester.Requester)
	if !ok {
		return nil, ErrRequesterNotConfigured
	}
	return rq, nil
}

// matchedRoutes aggregates matches across all routers, preserving router
// registration order and route registration order within each router.
func (a *App) matchedRoutes(req *requester.Request) []*router.Route {
	var matched []*router.Route
	for _, r := range a.routers {
		matched = append(matched, r.Routes(req)...)
	}
	return matched
}
