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

package settings

import (
	"sync"
	"time"

	"github.com/spf13/cast"
)

// Registry is a string-keyed settings store. The application uses it both for
// engine plumbing ("http requester", per-verb transformers) and for arbitrary
// application values.
//
// All methods are safe for concurrent use, though the engine itself only ever
// touches the registry from its single event-dispatch goroutine.
type Registry struct {
	mu     sync.RWMutex
	values map[string]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{values: make(map[string]any)}
}

// Set stores value under key, replacing any previous value.
func (r *Registry) Set(key string, value any) {
	r.mu.Lock()
	r.values[key] = value
	r.mu.Unlock()
}

// Get returns the value stored under key, or nil.
func (r *Registry) Get(key string) any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.values[key]
}

// Lookup returns the value stored under key and whether it exists.
func (r *Registry) Lookup(key string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	v, ok := r.values[key]
	return v, ok
}

// Has reports whether key exists.
func (r *Registry) Has(key string) bool {
	_, ok := r.Lookup(key)
	return ok
}

// Delete removes key from the registry.
func (r *Registry) Delete(key string) {
	r.mu.Lock()
	delete(r.values, key)
	r.mu.Unlock()
}

// Keys returns all keys in unspecified order.
func (r *Registry) Keys() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	keys := make([]string, 0, len(r.values))
	for k := range r.values {
		keys = append(keys, k)
	}
	return keys
}

// String returns the value under key converted to a string, or "" when the
// key is absent or not convertible.
func (r *Registry) String(key string) string {
	return cast.ToString(r.Get(key))
}

// Int returns the value under key converted to an int, or 0.
func (r *Registry) Int(key string) int {
	return cast.ToInt(r.Get(key))
}

// Bool returns the value under key converted to a bool, or false.
func (r *Registry) Bool(key string) bool {
	return cast.ToBool(r.Get(key))
}

// Duration returns the value under key converted to a time.Duration, or 0.
// String values use time.ParseDuration syntax ("30s", "1m30s").
func (r *Registry) Duration(key string) time.Duration {
	return cast.ToDuration(r.Get(key))
}

// StringMap returns the value under key converted to a map[string]any, or an
// empty map.
func (r *Registry) StringMap(key string) map[string]any {
	return cast.ToStringMap(r.Get(key))
}

// snapshot copies the current values for merge operations.
func (r *Registry) snapshot() map[string]any {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make(map[string]any, len(r.values))
	for k, v := range r.values {
		out[k] = v
	}
	return out
}

// replace swaps the full value map.
func (r *Registry) replace(values map[string]any) {
	r.mu.Lock()
	r.values = values
	r.mu.Unlock()
}
