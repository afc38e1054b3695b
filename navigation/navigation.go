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

import (
	"sync"

	"rivaas.dev/frontroute/requester"
)

// Kind identifies a navigation event emitted by the host environment.
type Kind int

const (
	// KindStarted signals that a new navigation or request began.
	KindStarted Kind = iota

	// KindCompleted signals that a request finished successfully.
	KindCompleted

	// KindFailed signals that a request finished with a failure.
	KindFailed

	// KindPopState signals a history traversal (the browser "back"/"forward"
	// buttons); the event carries the persisted {request, response} state to
	// replay.
	KindPopState

	// KindUnloading signals that the page is about to unload.
	KindUnloading
)

// String returns the event kind name.
func (k Kind) String() string {
	switch k {
	case KindStarted:
		return "started"
	case KindCompleted:
		return "completed"
	case KindFailed:
		return "failed"
	case KindPopState:
		return "popstate"
	case KindUnloading:
		return "unloading"
	default:
		return "unknown"
	}
}

// State is the {request, response} pair persisted as history-entry state. A
// later history traversal replays the lifecycle from it.
type State struct {
	Request  *requester.Request
	Response *requester.Response
}

// Event is a single navigation signal delivered to subscribers.
type Event struct {
	Kind  Kind
	State State
}

// Source emits navigation events. It abstracts the host environment's
// DOM/History bindings so the engine stays testable without a real browser
// run-loop: an application subscribes once at boot and reacts to unload and
// history-traversal signals.
type Source interface {
	// Subscribe registers fn for every subsequent event and returns a cancel
	// function. Delivery is synchronous on the emitter's goroutine, matching
	// the single-threaded event-dispatch model.
	Subscribe(fn func(Event)) (cancel func())
}

// Bus is an in-memory Source. The zero value is not usable; construct with
// NewBus.
type Bus struct {
	mu   sync.Mutex
	next int
	subs map[int]func(Event)
}

// NewBus creates an empty event bus.
func NewBus() *Bus {
	return &Bus{subs: make(map[int]func(Event))}
}

// Subscribe implements Source.
func (b *Bus) Subscribe(fn func(Event)) (cancel func()) {
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = fn
	b.mu.Unlock()

	return func() {
		b.mu.Lock()
		delete(b.subs, id)
		b.mu.Unlock()
	}
}

// Emit delivers ev synchronously to all current subscribers.
func (b *Bus) Emit(ev Event) {
	b.mu.Lock()
	fns := make([]func(Event), 0, len(b.subs))
	for _, fn := range b.subs {
		fns = append(fns, fn)
	}
	b.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}
