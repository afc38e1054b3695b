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

package navigation

import "sync"

// Entry is one persisted history entry: the {request, response} state object
// paired with the title and target URI supplied by the request's history
// directive.
type Entry struct {
	State State
	Title string
	URI   string
}

// History abstracts the host's session-history stack. The engine pushes an
// entry after every successful response whose request carries a history
// directive.
type History interface {
	PushState(state State, title, uri string)
}

// NoopHistory discards every push. It is the default when an application is
// constructed without a history binding.
type NoopHistory struct{}

// PushState implements History.
func (NoopHistory) PushState(State, string, string) {}

// MemoryHistory is an in-memory History with traversal support, used in tests
// and headless environments. When wired to a Bus, Back emits a KindPopState
// event carrying the entry's state, mirroring a browser's popstate signal.
type MemoryHistory struct {
	mu      sync.Mutex
	entries []Entry
	pos     int
	bus     *Bus
}

// NewMemoryHistory creates an empty history. bus may be nil; then Back only
// moves the cursor.
func NewMemoryHistory(bus *Bus) *MemoryHistory {
	return &MemoryHistory{pos: -1, bus: bus}
}

// PushState implements History. Entries after the current position are
// discarded, matching browser semantics for pushes after a back traversal.
func (h *MemoryHistory) PushState(state State, title, uri string) {
	h.mu.Lock()
	h.entries = append(h.entries[:h.pos+1], Entry{State: state, Title: title, URI: uri})
	h.pos = len(h.entries) - 1
	h.mu.Unlock()
}

// Back moves the cursor one entry back and, when a bus is attached, emits the
// corresponding popstate event. It reports whether a traversal happened.
func (h *MemoryHistory) Back() bool {
	h.mu.Lock()
	if h.pos <= 0 {
		h.mu.Unlock()
		return false
	}
	h.pos--
	entry := h.entries[h.pos]
	bus := h.bus
	h.mu.Unlock()

	if bus != nil {
		bus.Emit(Event{Kind: KindPopState, State: entry.State})
	}
	return true
}

// Entries returns a copy of the recorded entries in push order.
func (h *MemoryHistory) Entries() []Entry {
	h.mu.Lock()
	defer h.mu.Unlock()
	out := make([]Entry, len(h.entries))
	copy(out, h.entries)
	return out
}

// Len returns the number of recorded entries.
func (h *MemoryHistory) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.entries)
}
