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

// Package middleware defines the two middleware shapes understood by the
// frontroute dispatcher: bare callbacks and lifecycle-hook handlers.
//
// A bare callback runs in the updated and failed phases:
//
//	mw := middleware.FromFunc(func(req *requester.Request, res *requester.Response, next middleware.Next) {
//	    render(res.ResponseText)
//	    next() // without this call the phase stops here
//	})
//
// A lifecycle handler reacts to individual phases and keeps the phase walking
// by default:
//
//	mw := middleware.FromLifecycle(middleware.Lifecycle{
//	    Entered: func(req *requester.Request) { showSpinner() },
//	    Updated: func(req *requester.Request, res *requester.Response) { render(res.ResponseText) },
//	    Exited:  func(req *requester.Request) { teardown() },
//	    Failed:  func(req *requester.Request, res *requester.Response) { showError(res.Errors) },
//	})
package middleware
