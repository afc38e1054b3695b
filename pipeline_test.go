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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/frontroute/middleware"
	"rivaas.dev/frontroute/navigation"
	"rivaas.dev/frontroute/requester"
)

// stubRequester is a synchronous in-memory transport. Continuations run on
// the caller's goroutine, which keeps dispatch tests deterministic.
type stubRequester struct {
	status int
	body   string
	fail   bool
	calls  int
	last   *requester.Request
}

func (s *stubRequester) Fetch(req *requester.Request, onSuccess, onFailure requester.ResponseFunc) {
	s.calls++
	s.last = req

	status := s.status
	if status == 0 {
		status = http.StatusOK
	}
	res := &requester.Response{
		Status:       status,
		StatusText:   http.StatusText(status),
		ResponseText: s.body,
	}
	if s.fail {
		res.Errors = "HTTP 404 Not Found"
		onFailure(req, res)
		return
	}
	onSuccess(req, res)
}

// recordingLifecycle appends "name:phase" markers to events.
func recordingLifecycle(events *[]string, name string) middleware.Lifecycle {
	return middleware.Lifecycle{
		Entered: func(*requester.Request) { *events = append(*events, name+":entered") },
		Updated: func(*requester.Request, *requester.Response) { *events = append(*events, name+":updated") },
		Exited:  func(*requester.Request) { *events = append(*events, name+":exited") },
		Failed:  func(*requester.Request, *requester.Response) { *events = append(*events, name+":failed") },
	}
}

func TestDispatchSuccessFlow(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{body: "orders page"}
	app := MustNew(WithRequester(stub))

	var events []string
	require.NoError(t, app.Get("/orders", recordingLifecycle(&events, "orders")))

	resolved := false
	require.NoError(t, app.HTTPGet("/orders", func(_ *requester.Request, res *requester.Response) {
		resolved = true
		assert.Equal(t, "orders page", res.ResponseText)
	}))

	assert.Equal(t, []string{"orders:entered", "orders:updated"}, events)
	assert.True(t, resolved)
	assert.Equal(t, 1, stub.calls)
}

func TestDispatchDrainsVisitedBeforeNextRequest(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	app := MustNew(WithRequester(stub))

	var events []string
	require.NoError(t, app.Get("/a", recordingLifecycle(&events, "a")))
	require.NoError(t, app.Get("/b", recordingLifecycle(&events, "b")))

	require.NoError(t, app.HTTPGet("/a"))
	require.NoError(t, app.HTTPGet("/b"))

	assert.Equal(t, []string{
		"a:entered", "a:updated",
		"a:exited",
		"b:entered", "b:updated",
	}, events)
}

func TestDispatchFailureFlow(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{fail: true, status: http.StatusNotFound}
	app := MustNew(WithRequester(stub))

	var events []string
	require.NoError(t, app.Get("/missing", recordingLifecycle(&events, "m")))

	rejected := false
	resolved := false
	require.NoError(t, app.HTTPGet("/missing",
		func(*requester.Request, *requester.Response) { resolved = true },
		func(_ *requester.Request, res *requester.Response) {
			rejected = true
			assert.Equal(t, http.StatusNotFound, res.Status)
			assert.Equal(t, "HTTP 404 Not Found", res.Errors)
		},
	))

	assert.Equal(t, []string{"m:entered", "m:failed"}, events)
	assert.True(t, rejected)
	assert.False(t, resolved)

	// Failure never marks routes visited, so nothing drains on the next
	// request.
	events = nil
	require.NoError(t, app.HTTPGet("/missing"))
	assert.Equal(t, []string{"m:entered", "m:failed"}, events)
}

func TestDefaultGETTransformer(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	app := MustNew(WithRequester(stub))

	req := &requester.Request{URI: "/search#top", Data: url.Values{"q": {"x"}}}
	require.NoError(t, app.HTTPGet(req))

	require.NotNil(t, stub.last)
	assert.Equal(t, "/search?q=x#top", stub.last.URI, "fragment survives query folding")
	assert.Nil(t, stub.last.Data, "data moves into the query string")
}

func TestTransformerRewriteOrder(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	app := MustNew(
		WithRequester(stub),
		WithTransformer(http.MethodPost, &Transformer{
			URI: func(uri string, _ map[string]string, _ url.Values) string {
				return uri + "/v2"
			},
			Headers: func(uri string, headers map[string]string, _ url.Values) map[string]string {
				// The headers rewriter sees the rewritten URI.
				return map[string]string{"X-Target": uri}
			},
			Data: func(_ string, headers map[string]string, data url.Values) url.Values {
				data.Set("target", headers["X-Target"])
				return data
			},
		}),
	)

	req := &requester.Request{URI: "/submit", Data: url.Values{}}
	require.NoError(t, app.HTTPPost(req))

	require.NotNil(t, stub.last)
	assert.Equal(t, "/submit/v2", stub.last.URI)
	assert.Equal(t, "/submit/v2", stub.last.Headers["X-Target"])
	assert.Equal(t, "/submit/v2", stub.last.Data.Get("target"))
}

func TestHistoryPushOnSuccess(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	hist := navigation.NewMemoryHistory(nil)
	app := MustNew(WithRequester(stub), WithHistory(hist))

	require.NoError(t, app.HTTPGet(&requester.Request{
		URI:     "/orders",
		History: &requester.HistoryDirective{Title: "Orders", URI: "/orders?page=1"},
	}))

	entries := hist.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "Orders", entries[0].Title)
	assert.Equal(t, "/orders?page=1", entries[0].URI)
	require.NotNil(t, entries[0].State.Request)
	assert.Equal(t, "/orders", entries[0].State.Request.URI)
}

func TestHistoryDirectiveURIFallback(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	hist := navigation.NewMemoryHistory(nil)
	app := MustNew(WithRequester(stub), WithHistory(hist))

	require.NoError(t, app.HTTPGet(&requester.Request{
		URI:     "/orders",
		History: &requester.HistoryDirective{Title: "Orders"},
	}))

	entries := hist.Entries()
	require.Len(t, entries, 1)
	assert.Equal(t, "/orders", entries[0].URI, "empty directive URI falls back to the request URI")
}

func TestNoHistoryPushWithoutDirective(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	hist := navigation.NewMemoryHistory(nil)
	app := MustNew(WithRequester(stub), WithHistory(hist))

	require.NoError(t, app.HTTPGet("/orders"))
	assert.Equal(t, 0, hist.Len())
}

func TestNoHistoryPushOnFailure(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{fail: true, status: http.StatusNotFound}
	hist := navigation.NewMemoryHistory(nil)
	app := MustNew(WithRequester(stub), WithHistory(hist))

	require.NoError(t, app.HTTPGet(&requester.Request{
		URI:     "/missing",
		History: &requester.HistoryDirective{URI: "/missing"},
	}))
	assert.Equal(t, 0, hist.Len())
}

func TestRequestIDBackfilled(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	app := MustNew(WithRequester(stub))

	require.NoError(t, app.HTTPGet(&requester.Request{URI: "/a"}))
	require.NotNil(t, stub.last)
	assert.NotEmpty(t, stub.last.ID)

	require.NoError(t, app.HTTPPut(&requester.Request{URI: "/a", ID: "fixed"}))
	assert.Equal(t, "fixed", stub.last.ID)
	assert.Equal(t, http.MethodPut, stub.last.Method)
}

func TestInvalidRequestTarget(t *testing.T) {
	t.Parallel()

	app := MustNew(WithRequester(&stubRequester{}))
	err := app.HTTPGet(42)
	require.ErrorIs(t, err, ErrInvalidRequestTarget)
}

func TestTooManyCallbacks(t *testing.T) {
	t.Parallel()

	app := MustNew(WithRequester(&stubRequester{}))
	cb := func(*requester.Request, *requester.Response) {}
	err := app.HTTPGet("/a", cb, cb, cb)
	require.ErrorIs(t, err, ErrTooManyCallbacks)
}

func TestRequesterNotConfigured(t *testing.T) {
	t.Parallel()

	app := MustNew()
	app.Settings().Delete(SettingRequester)

	err := app.HTTPGet("/a")
	require.ErrorIs(t, err, ErrRequesterNotConfigured)
}

func TestVerbMethodsSetRequestMethod(t *testing.T) {
	t.Parallel()

	stub := &stubRequester{}
	app := MustNew(WithRequester(stub))

	require.NoError(t, app.HTTPPost("/a"))
	assert.Equal(t, http.MethodPost, stub.last.Method)
	require.NoError(t, app.HTTPDelete("/a"))
	assert.Equal(t, http.MethodDelete, stub.last.Method)
}
