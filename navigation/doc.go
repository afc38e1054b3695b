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

// Package navigation abstracts the host environment's history stack and
// lifecycle signals.
//
// In a browser the engine would bind to window.history and the popstate and
// beforeunload events. This package replaces those implicit globals with two
// injected capabilities: History (push entries keyed by {request, response}
// state) and Source (emits started/completed/failed/popstate/unloading
// events). The in-memory Bus and MemoryHistory implementations keep the
// engine fully testable without a host run-loop:
//
//	bus := navigation.NewBus()
//	hist := navigation.NewMemoryHistory(bus)
//	// ... wire both into the application, dispatch a request ...
//	hist.Back() // emits a popstate event that replays the stored lifecycle
package navigation
