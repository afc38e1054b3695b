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

package settings

import (
	"fmt"
	"os"

	"dario.cat/mergo"
	"github.com/go-viper/mapstructure/v2"
	"github.com/goccy/go-yaml"
)

// Load reads a YAML file and merges its values over the registry's current
// contents; file values win on conflict. Environment variables referenced as
// ${VAR} in the path are expanded.
//
// Example file:
//
//	page title: "orders"
//	http timeout: 30s
func (r *Registry) Load(path string) error {
	data, err := os.ReadFile(os.ExpandEnv(path))
	if err != nil {
		return fmt.Errorf("settings: reading %q: %w", path, err)
	}
	return r.Merge(data)
}

// Merge parses YAML content and merges it over the registry's current
// contents; parsed values win on conflict.
func (r *Registry) Merge(content []byte) error {
	var loaded map[string]any
	if err := yaml.Unmarshal(content, &loaded); err != nil {
		return fmt.Errorf("settings: parsing yaml: %w", err)
	}
	if loaded == nil {
		return nil
	}

	merged := r.snapshot()
	if err := mergo.Merge(&merged, loaded, mergo.WithOverride); err != nil {
		return fmt.Errorf("settings: merging values: %w", err)
	}
	r.replace(merged)
	return nil
}

// Bind decodes the value stored under key into out, which must be a pointer
// to a struct or map. Decoding uses mapstructure with weakly-typed input, so
// "8080" binds to an int field and "true" to a bool field.
//
// Example:
//
//	var opts struct {
//	    Endpoint string `mapstructure:"endpoint"`
//	    Retries  int    `mapstructure:"retries"`
//	}
//	err := reg.Bind("api client", &opts)
func (r *Registry) Bind(key string, out any) error {
	v, ok := r.Lookup(key)
	if !ok {
		return fmt.Errorf("settings: %w: %q", ErrKeyNotFound, key)
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           out,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
	})
	if err != nil {
		return fmt.Errorf("settings: building decoder: %w", err)
	}
	if err := dec.Decode(v); err != nil {
		return fmt.Errorf("settings: binding %q: %w", key, err)
	}
	return nil
}
