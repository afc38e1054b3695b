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
	"log/slog"
	"strings"

	"rivaas.dev/frontroute/navigation"
	"rivaas.dev/frontroute/requester"
)

// Option defines functional options for application configuration.
type Option func(*App)

// WithLogger sets the structured logger used for dispatch and lifecycle
// debug logs. The default discards everything.
//
// Example:
//
//	app := frontroute.MustNew(frontroute.WithLogger(slog.Default()))
func WithLogger(log *slog.Logger) Option {
	return func(a *App) {
		if log != nil {
			a.log = log
		}
	}
}

// WithRequester replaces the default transport. Equivalent to setting the
// "http requester" key, with the implementation checked at compile time.
func WithRequester(rq requester.Requester) Option {
	return func(a *App) {
		if rq == nil {
			a.fail(ErrInvalidRequester)
			return
		}
		a.registry.Set(SettingRequester, rq)
	}
}

// WithTransformer registers a per-verb request transformer under the
// "http <VERB> transformer" setting.
//
// Example:
//
//	app := frontroute.MustNew(
//	    frontroute.WithTransformer(http.MethodPost, &frontroute.Transformer{
//	        Headers: func(uri string, headers map[string]string, data url.Values) map[string]string {
//	            if headers == nil {
//	                headers = map[string]string{}
//	            }
//	            headers["X-Requested-With"] = "XMLHttpRequest"
//	            return headers
//	        },
//	    }),
//	)
func WithTransformer(method string, t *Transformer) Option {
	return func(a *App) {
		if t == nil {
			a.fail(ErrInvalidTransformer)
			return
		}
		a.registry.Set(TransformerKey(strings.ToUpper(method)), t)
	}
}

// WithHistory binds the host history stack; successful responses whose
// request carries a history directive push entries onto it.
func WithHistory(h navigation.History) Option {
	return func(a *App) {
		if h != nil {
			a.history = h
		}
	}
}

// WithSource binds the navigation event source the application subscribes to
// at Boot.
func WithSource(s navigation.Source) Option {
	return func(a *App) {
		a.source = s
	}
}

// WithRecorder sets the dispatch observability recorder. See OTelRecorder
// and PrometheusRecorder for shipped implementations.
func WithRecorder(rec DispatchRecorder) Option {
	return func(a *App) {
		if rec != nil {
			a.recorder = rec
		}
	}
}

// WithSettingsFile layers a YAML settings file over the application's
// defaults at construction time. Later options win over earlier ones; file
// values win over values already present.
func WithSettingsFile(path string) Option {
	return func(a *App) {
		if err := a.registry.Load(path); err != nil {
			a.fail(fmt.Errorf("loading settings file: %w", err))
		}
	}
}

// fail records the first configuration error for New to return.
func (a *App) fail(err error) {
	if a.initErr == nil {
		a.initErr = err
	}
}
