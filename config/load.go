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
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// FromJSON reads a flat JSON document from path into a Config.
func FromJSON(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	var c Config
	if err := json.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return c, nil
}

// FromYAML reads a flat YAML document from path into a Config.
func FromYAML(path string) (Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}
	var c Config
	if err := yaml.Unmarshal(raw, &c); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}
	return c, nil
}

// FromEnv collects the environment variables starting with prefix into a
// Config. The prefix is stripped and the remainder lowercased, so with
// prefix "APP_" the variable APP_DB_URL lands under "db_url".
func FromEnv(prefix string) Config {
	c := Config{}
	for _, entry := range os.Environ() {
		name, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(name, prefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(name, prefix))
		if key == "" {
			continue
		}
		c[key] = value
	}
	return c
}

// LoadDotenv loads the given .env files into the process environment
// before FromEnv is called. With no arguments it loads ".env" from the
// working directory.
func LoadDotenv(files ...string) error {
	if err := godotenv.Load(files...); err != nil {
		return fmt.Errorf("config: load dotenv: %w", err)
	}
	return nil
}
