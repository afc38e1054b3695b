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

package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"rivaas.dev/frontroute/requester"
)

func TestFromFunc(t *testing.T) {
	t.Parallel()

	called := false
	mw := FromFunc(func(_ *requester.Request, _ *requester.Response, next Next) {
		called = true
		next()
	})

	require.NotNil(t, mw.Fn())
	assert.Nil(t, mw.Hooks())
	assert.False(t, mw.IsZero())

	nextCalled := false
	mw.Fn()(nil, nil, func() { nextCalled = true })
	assert.True(t, called)
	assert.True(t, nextCalled)
}

func TestFromLifecycle(t *testing.T) {
	t.Parallel()

	mw := FromLifecycle(Lifecycle{
		Entered: func(*requester.Request) {},
	})

	require.NotNil(t, mw.Hooks())
	assert.Nil(t, mw.Fn())
	assert.NotNil(t, mw.Hooks().Entered)
	assert.Nil(t, mw.Hooks().Updated)
	assert.Nil(t, mw.Hooks().Next)
}

func TestFromLifecycleCopies(t *testing.T) {
	t.Parallel()

	l := Lifecycle{Entered: func(*requester.Request) {}}
	mw := FromLifecycle(l)

	// Mutating the source after wrapping must not affect the middleware.
	l.Entered = nil
	assert.NotNil(t, mw.Hooks().Entered)
}

func TestZeroValue(t *testing.T) {
	t.Parallel()

	var mw Middleware
	assert.True(t, mw.IsZero())
	assert.Nil(t, mw.Fn())
	assert.Nil(t, mw.Hooks())
}
