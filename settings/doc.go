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

// Package settings provides the application's key-value settings registry.
//
// The registry plays two roles: it is where the engine looks up its own
// plumbing (the "http requester" transport and the per-verb request
// transformers), and it is a general store for application values with typed
// accessors:
//
//	reg := settings.New()
//	reg.Set("page size", 25)
//	reg.Int("page size")        // 25
//	reg.Duration("poll every")  // via cast, "30s" -> 30 * time.Second
//
// Values can be layered from YAML files, later layers winning:
//
//	_ = reg.Load("defaults.yaml")
//	_ = reg.Load("${APP_ENV}.yaml")
//
// and decoded into typed structs with Bind.
package settings
