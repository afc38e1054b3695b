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

// Plugin extends an application. Plugins register through App.Use and their
// Plugin hook runs exactly once, at Boot, after all options are applied.
//
// Example:
//
//	type analytics struct{}
//
//	func (analytics) Name() string { return "analytics" }
//
//	func (analytics) Plugin(app *frontroute.App) {
//	    _ = app.Use(middleware.FromLifecycle(middleware.Lifecycle{
//	        Updated: func(req *requester.Request, res *requester.Response) {
//	            trackPageView(req.URI)
//	        },
//	    }))
//	}
type Plugin interface {
	// Name identifies the plugin in logs.
	Name() string

	// Plugin is the startup hook; it receives the owning application.
	Plugin(app *App)
}
