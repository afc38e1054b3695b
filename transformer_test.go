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
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppendQuery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		uri  string
		data url.Values
		want string
	}{
		{"empty data", "/a", nil, "/a"},
		{"plain append", "/a", url.Values{"q": {"x"}}, "/a?q=x"},
		{"existing query", "/a?p=1", url.Values{"q": {"x"}}, "/a?p=1&q=x"},
		{"fragment preserved", "/s#top", url.Values{"q": {"x"}}, "/s?q=x#top"},
		{"query and fragment", "/s?p=1#top", url.Values{"q": {"x"}}, "/s?p=1&q=x#top"},
		{"encoded values", "/a", url.Values{"q": {"a b"}}, "/a?q=a+b"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, AppendQuery(tt.uri, tt.data))
		})
	}
}

func TestQueryTransformer(t *testing.T) {
	t.Parallel()

	tr := QueryTransformer()
	uri := tr.URI("/s#top", nil, url.Values{"q": {"x"}})
	assert.Equal(t, "/s?q=x#top", uri)
	assert.Nil(t, tr.Data(uri, nil, url.Values{"q": {"x"}}))
	assert.Nil(t, tr.Headers, "the default transformer leaves headers alone")
}
