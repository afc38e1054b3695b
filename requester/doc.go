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

// Package requester defines the transport contract used by the frontroute
// dispatch pipeline, together with the request and response value types that
// travel through it.
//
// A Requester performs the actual network call. The contract is deliberately
// callback-shaped: Fetch returns immediately and the success or failure
// continuation resumes lifecycle dispatch whenever the transport signals
// completion. Transport failures are never surfaced as Go errors; they are
// delivered to the failure continuation as a structured Response carrying the
// formatted status line.
//
// The default implementation, HTTP, synthesizes the contract over net/http:
//
//	rq := requester.NewHTTP()
//	rq.Fetch(requester.New(http.MethodGet, "/users"),
//	    func(req *requester.Request, res *requester.Response) {
//	        fmt.Println(res.Status, res.ResponseText)
//	    },
//	    func(req *requester.Request, res *requester.Response) {
//	        fmt.Println(res.Errors)
//	    })
//
// Custom transports (test doubles, batching layers, offline caches) only need
// to implement the single-method Requester interface and register themselves
// under the application's "http requester" setting.
package requester
