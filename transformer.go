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
	"strings"
)

// Transformer rewrites a request before transport dispatch. One transformer
// can be registered per HTTP verb under the "http <VERB> transformer"
// setting.
//
// Rewriters run in a fixed order: URI, then Headers, then Data. Each rewriter
// receives the partially updated triple produced by the previous step, so a
// Headers rewriter already sees the rewritten URI. Nil rewriters leave the
// corresponding field untouched.
type Transformer struct {
	URI     func(uri string, headers map[string]string, data url.Values) string
	Headers func(uri string, headers map[string]string, data url.Values) map[string]string
	Data    func(uri string, headers map[string]string, data url.Values) url.Values
}

// QueryTransformer returns the default GET transformer: request data is
// serialized into the URI's query string and cleared from the request body.
// A URI fragment, if present, is split off before the query is appended and
// re-appended after, so "/s#top" with data {q: x} becomes "/s?q=x#top".
func QueryTransformer() *Transformer {
	return &Transformer{
		URI: func(uri string, _ map[string]string, data url.Values) string {
			return AppendQuery(uri, data)
		},
		Data: func(string, map[string]string, url.Values) url.Values {
			return nil
		},
	}
}

// AppendQuery serializes data into uri's query string, preserving any
// trailing fragment. Empty data returns uri unchanged.
func AppendQuery(uri string, data url.Values) string {
	if len(data) == 0 {
		return uri
	}

	fragment := ""
	if i := strings.IndexByte(uri, '#'); i >= 0 {
		uri, fragment = uri[:i], uri[i:]
	}

	sep := "?"
	if strings.Contains(uri, "?") {
		sep = "&"
	}
	return uri + sep + data.Encode() + fragment
}
