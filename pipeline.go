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
	"net/http"

	"rivaas.dev/frontroute/navigation"
	"rivaas.dev/frontroute/requester"
)

// HTTPGet dispatches a GET request through the pipeline. target is a URI
// string or a *requester.Request carrying {URI, Headers, Data, History};
// callbacks are an optional resolve and an optional reject continuation,
// invoked with the final (request, response) pair.
//
//	_ = app.HTTPGet("/orders?page=2")
//	_ = app.HTTPGet(&requester.Request{
//	    URI:     "/orders",
//	    Data:    url.Values{"page": {"2"}},
//	    History: &requester.HistoryDirective{Title: "Orders", URI: "/orders"},
//	}, onOrders, onError)
func (a *App) HTTPGet(target any, callbacks ...requester.ResponseFunc) error {
	return a.request(http.MethodGet, target, callbacks)
}

// HTTPPost dispatches a POST request through the pipeline.
func (a *App) HTTPPost(target any, callbacks ...requester.ResponseFunc) error {
	return a.request(http.MethodPost, target, callbacks)
}

// HTTPPut dispatches a PUT request through the pipeline.
func (a *App) HTTPPut(target any, callbacks ...requester.ResponseFunc) error {
	return a.request(http.MethodPut, target, callbacks)
}

// HTTPDelete dispatches a DELETE request through the pipeline.
func (a *App) HTTPDelete(target any, callbacks ...requester.ResponseFunc) error {
	return a.request(http.MethodDelete, target, callbacks)
}

// request normalizes the dispatch arguments and hands off to the pipeline.
func (a *App) request(method string, target any, callbacks []requester.ResponseFunc) error {
	var req *requester.Request
	switch t := target.(type) {
	case string:
		req = requester.New(method, t)
	case *requester.Request:
		req = t
		req.Method = method
		if req.ID == "" {
			fresh := requester.New(method, req.URI)
			req.ID = fresh.ID
		}
	default:
		return ErrInvalidRequestTarget
	}

	var resolve, reject requester.ResponseFunc
	switch len(callbacks) {
	case 0:
	case 1:
		resolve = callbacks[0]
	case 2:
		resolve, reject = callbacks[0], callbacks[1]
	default:
		return ErrTooManyCallbacks
	}

	return a.dispatch(req, resolve, reject)
}

// dispatch is the request pipeline. In order: apply the per-verb transformer,
// drain previously visited routes (exited), resolve the matching route set,
// signal the routes about to become active (entered), then hand the request
// to the transport. The transport's continuation finishes the cycle: on
// success an optional history push followed by the updated phase, on failure
// the failed phase; either way the caller's continuation runs last.
//
// dispatch returns before the transport completes; transport failures are
// never returned as errors.
func (a *App) dispatch(req *requester.Request, resolve, reject requester.ResponseFunc) error {
	rq, err := a.requesterImpl()
	if err != nil {
		return err
	}

	ctx, state := a.recorder.DispatchStart(a.baseCtx, req)

	a.applyTransformer(req)
	a.runExited()

	routes := a.matchedRoutes(req)
	if state != nil {
		a.recorder.RoutesMatched(ctx, state, req, len(routes))
	}
	a.log.Debug("dispatching", "method", req.Method, "uri", req.URI, "request", req.ID, "matched", len(routes))

	a.runEntered(routes, req)

	rq.Fetch(req,
		func(req *requester.Request, res *requester.Response) {
			if req.History != nil {
				uri := req.History.URI
				if uri == "" {
					uri = req.URI
				}
				a.history.PushState(navigation.State{Request: req, Response: res}, req.History.Title, uri)
			}
			a.runUpdated(routes, req, res)
			if resolve != nil {
				resolve(req, res)
			}
			if state != nil {
				a.recorder.DispatchEnd(ctx, state, req, res, false)
			}
		},
		func(req *requester.Request, res *requester.Response) {
			a.runFailed(routes, req, res)
			if reject != nil {
				reject(req, res)
			}
			if state != nil {
				a.recorder.DispatchEnd(ctx, state, req, res, true)
			}
		},
	)
	return nil
}

// applyTransformer rewrites the request with the transformer registered for
// its verb, if any: URI first, then headers, then data, each step seeing the
// result of the previous one.
func (a *App) applyTransformer(req *requester.Request) {
	t, ok := a.registry.Get(TransformerKey(req.Method)).(*Transformer)
	if !ok || t == nil {
		return
	}
	if t.URI != nil {
		req.URI = t.URI(req.URI, req.Headers, req.Data)
	}
	if t.Headers != nil {
		req.Headers = t.Headers(req.URI, req.Headers, req.Data)
	}
	if t.Data != nil {
		req.Data = t.Data(req.URI, req.Headers, req.Data)
	}
}
