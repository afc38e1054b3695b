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

package router

import "errors"

var (
	// ErrMixedBaseURI indicates an attempt to mix a string base URI with a
	// regular-expression base URI on the same router.
	ErrMixedBaseURI = errors.New("router: cannot mix string and regular-expression base URIs")

	// ErrPatternBaseRouteURI indicates an attempt to register a route carrying
	// its own URI on a router whose base URI is a regular expression.
	ErrPatternBaseRouteURI = errors.New("router: pattern-based router cannot register routes with their own URI")
)
