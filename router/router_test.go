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

import (
	"net/http"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/frontroute/middleware"
	"rivaas.dev/frontroute/requester"
)

// noopMW is a minimal middleware for registration in matching tests.
func noopMW() middleware.Middleware {
	return middleware.FromFunc(func(_ *requester.Request, _ *requester.Response, next middleware.Next) {
		next()
	})
}

func TestRoutesRegistrationOrder(t *testing.T) {
	t.Parallel()
	r := New()

	first, err := r.Get("/a", noopMW())
	require.NoError(t, err)
	second, err := r.All("/a", noopMW())
	require.NoError(t, err)
	third := r.Use(noopMW())

	matched := r.Routes(requester.New(http.MethodGet, "/a"))
	require.Len(t, matched, 3)
	assert.Same(t, first, matched[0])
	assert.Same(t, second, matched[1])
	assert.Same(t, third, matched[2])
}

func TestCatchAllMatchesEverything(t *testing.T) {
	t.Parallel()
	r := New()
	r.Use(noopMW())

	for _, req := range []*requester.Request{
		requester.New(http.MethodGet, "/a"),
		requester.New(http.MethodPost, "/b/c"),
		requester.New(http.MethodDelete, ""),
	} {
		assert.Len(t, r.Routes(req), 1, "catch-all should match %s %q", req.Method, req.URI)
	}
}

func TestMethodOnlyRoute(t *testing.T) {
	t.Parallel()
	r := New()
	r.Handle(http.MethodPost, noopMW())

	assert.Len(t, r.Routes(requester.New(http.MethodPost, "/anything")), 1)
	assert.Empty(t, r.Routes(requester.New(http.MethodGet, "/anything")))
}

func TestMethodMismatch(t *testing.T) {
	t.Parallel()
	r := New()
	_, err := r.Get("/a", noopMW())
	require.NoError(t, err)

	assert.Empty(t, r.Routes(requester.New(http.MethodPost, "/a")))
}

func TestQueryAndFragmentStripped(t *testing.T) {
	t.Parallel()
	r := New()
	_, err := r.Get("/a", noopMW())
	require.NoError(t, err)

	tests := []struct {
		name string
		uri  string
		want int
	}{
		{"plain path", "/a", 1},
		{"query string", "/a?x=1", 1},
		{"fragment", "/a#frag", 1},
		{"query and fragment", "/a?x=1#frag", 1},
		{"fragment then question mark", "/a#frag?x=1", 1},
		{"different path", "/a/b", 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Len(t, r.Routes(requester.New(http.MethodGet, tt.uri)), tt.want)
		})
	}
}

func TestPatternRoute(t *testing.T) {
	t.Parallel()
	r := New()
	_, err := r.HandlePattern(http.MethodGet, regexp.MustCompile(`^/users/\d+$`), noopMW())
	require.NoError(t, err)

	assert.Len(t, r.Routes(requester.New(http.MethodGet, "/users/42")), 1)
	assert.Len(t, r.Routes(requester.New(http.MethodGet, "/users/42?tab=posts")), 1)
	assert.Empty(t, r.Routes(requester.New(http.MethodGet, "/users/alice")))
}

func TestBaseURIResolution(t *testing.T) {
	t.Parallel()
	r := NewWithBase("/api/")

	rt, err := r.Get("/users", noopMW())
	require.NoError(t, err)

	uri, ok := rt.URI()
	require.True(t, ok)
	assert.Equal(t, "/api/users", uri, "duplicate slashes should collapse")

	assert.Len(t, r.Routes(requester.New(http.MethodGet, "/api/users")), 1)
	assert.Empty(t, r.Routes(requester.New(http.MethodGet, "/users")))
}

func TestBaseURIOnlyRoute(t *testing.T) {
	t.Parallel()
	r := NewWithBase("/panel")
	rt := r.Use(noopMW())

	uri, ok := rt.URI()
	require.True(t, ok)
	assert.Equal(t, "/panel", uri)

	// The route matches the base exactly, for any method.
	assert.Len(t, r.Routes(requester.New(http.MethodGet, "/panel")), 1)
	assert.Len(t, r.Routes(requester.New(http.MethodPut, "/panel")), 1)
	assert.Empty(t, r.Routes(requester.New(http.MethodGet, "/panel/settings")))
}

func TestSetBaseKeepsFirstValue(t *testing.T) {
	t.Parallel()
	r := New()
	require.NoError(t, r.SetBase("/v1"))
	require.NoError(t, r.SetBase("/v2"))

	base, ok := r.Base()
	require.True(t, ok)
	assert.Equal(t, "/v1", base)
}

func TestMixedBaseURIForms(t *testing.T) {
	t.Parallel()

	r := NewWithBase("/api")
	err := r.SetBasePattern(regexp.MustCompile(`^/api`))
	require.ErrorIs(t, err, ErrMixedBaseURI)

	p := NewWithPattern(regexp.MustCompile(`^/api`))
	err = p.SetBase("/api")
	require.ErrorIs(t, err, ErrMixedBaseURI)
}

func TestPatternBaseRejectsRouteURI(t *testing.T) {
	t.Parallel()
	r := NewWithPattern(regexp.MustCompile(`^/admin`))

	_, err := r.Get("/users", noopMW())
	require.ErrorIs(t, err, ErrPatternBaseRouteURI)

	_, err = r.HandlePattern(http.MethodGet, regexp.MustCompile(`^/x`), noopMW())
	require.ErrorIs(t, err, ErrPatternBaseRouteURI)

	// Routes without their own URI are fine and match the base pattern.
	r.Handle(http.MethodGet, noopMW())
	assert.Len(t, r.Routes(requester.New(http.MethodGet, "/admin/users")), 1)
	assert.Empty(t, r.Routes(requester.New(http.MethodGet, "/public")))
}

func TestVisitedMarker(t *testing.T) {
	t.Parallel()
	r := New()
	rt, err := r.Get("/a", noopMW())
	require.NoError(t, err)

	require.Nil(t, rt.Visited())

	req := requester.New(http.MethodGet, "/a")
	rt.MarkVisited(req)
	assert.Same(t, req, rt.Visited())

	rt.ClearVisited()
	assert.Nil(t, rt.Visited())
}

func TestRegisteredAndLen(t *testing.T) {
	t.Parallel()
	r := New()
	r.Use(noopMW())
	_, err := r.Post("/x", noopMW())
	require.NoError(t, err)

	assert.Equal(t, 2, r.Len())
	assert.Len(t, r.Registered(), 2)
}
