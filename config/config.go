//
// SPDX-License-Identifier: GPL-3.0-or-later
//
// Copyright (C) 2025 tgedr
//
// This file is part of dataops.
//
// dataops is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// dataops is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with dataops. If not, see https://www.gnu.org/licenses/.

package config

import (
	"fmt"
	"strconv"
)

// Package config holds the configuration type every dataops contract
// implementation is handed, together with parameter resolution and the
// file/env loaders.
//
// A Config is a flat key-value map. Implementations either read keys
// directly through the typed getters or declare the parameters they need
// with Resolve, which fails fast naming every missing required key.

// Config is the configuration handed to contract implementations.
type Config map[string]interface{}

// Has reports whether key is present.
func (c Config) Has(key string) bool {
	_, ok := c[key]
	return ok
}

// String returns the value under key as a string.
func (c Config) String(key string) (string, bool) {
	v, ok := c[key]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	return s, ok
}

// Int returns the value under key as an int. Numeric values decoded from
// JSON (float64) or YAML (int) both convert.
func (c Config) Int(key string) (int, bool) {
	switch v := c[key].(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	case string:
		i, err := strconv.Atoi(v)
		return i, err == nil
	default:
		return 0, false
	}
}

// Float returns the value under key as a float64.
func (c Config) Float(key string) (float64, bool) {
	switch v := c[key].(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// Bool returns the value under key as a bool.
func (c Config) Bool(key string) (bool, bool) {
	switch v := c[key].(type) {
	case bool:
		return v, true
	case string:
		b, err := strconv.ParseBool(v)
		return b, err == nil
	default:
		return false, false
	}
}

// Param declares one configuration parameter an implementation needs.
// Build them with Required and Optional.
type Param struct {
	Name    string
	Default interface{}

	required bool
}

// Required declares a parameter that must be present in the configuration.
func Required(name string) Param {
	return Param{Name: name, required: true}
}

// Optional declares a parameter that falls back to def when the
// configuration does not carry it.
func Optional(name string, def interface{}) Param {
	return Param{Name: name, Default: def}
}

// Resolve maps the declared parameters against the configuration: a
// configured value wins, otherwise the declared default is used, and any
// required parameter left unsatisfied is collected. When one or more
// required parameters are missing, Resolve returns a single error naming
// all of them.
func (c Config) Resolve(params ...Param) (map[string]interface{}, error) {
	resolved := make(map[string]interface{}, len(params))
	var missing []string
	for _, p := range params {
		if v, ok := c[p.Name]; ok {
			resolved[p.Name] = v
			continue
		}
		if p.required {
			missing = append(missing, p.Name)
			continue
		}
		resolved[p.Name] = p.Default
	}
	if len(missing) > 0 {
		return nil, fmt.Errorf("missing required configuration parameters: %v", missing)
	}
	return resolved, nil
}
