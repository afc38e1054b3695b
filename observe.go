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

	"rivaas.dev/frontroute/requester"
)

// DispatchRecorder provides observability lifecycle hooks around request
// dispatch. Implementations typically combine metrics collection, distributed
// tracing, and debug logging.
//
// Lifecycle:
//  1. The pipeline calls DispatchStart(ctx, req) -> (enrichedCtx, state)
//     before transformers run. The enriched context propagates to the rest of
//     the dispatch; state is an opaque token the pipeline never inspects.
//  2. RoutesMatched reports how many routes the request resolved to.
//  3. DispatchEnd fires after the transport continuation and the lifecycle
//     phases complete, with failed reporting the transport outcome.
//
// Returning a nil state from DispatchStart excludes the dispatch:
// RoutesMatched and DispatchEnd are skipped but the enriched context is still
// used, so downstream propagation keeps working for excluded requests.
//
// All methods must be safe for concurrent use.
type DispatchRecorder interface {
	DispatchStart(ctx context.Context, req *requester.Request) (context.Context, any)
	RoutesMatched(ctx context.Context, state any, req *requester.Request, matched int)
	DispatchEnd(ctx context.Context, state any, req *requester.Request, res *requester.Response, failed bool)
}

// nopRecorder is the default recorder; it observes nothing.
type nopRecorder struct{}

func (nopRecorder) DispatchStart(ctx context.Context, _ *requester.Request) (context.Context, any) {
	return ctx, nil
}

func (nopRecorder) RoutesMatched(context.Context, any, *requester.Request, int) {}

func (nopRecorder) DispatchEnd(context.Context, any, *requester.Request, *requester.Response, bool) {
}
