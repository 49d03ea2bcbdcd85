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
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestFromJSON(t *testing.T) {
	path := writeFile(t, "config.json", `{"name": "orders", "workers": 4, "debug": true}`)

	c, err := FromJSON(path)
	require.NoError(t, err)

	name, _ := c.String("name")
	assert.Equal(t, "orders", name)
	workers, _ := c.Int("workers")
	assert.Equal(t, 4, workers)
	debug, _ := c.Bool("debug")
	assert.True(t, debug)
}

func TestFromJSON_Invalid(t *testing.T) {
	path := writeFile(t, "config.json", `{not json`)

	_, err := FromJSON(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestFromJSON_MissingFile(t *testing.T) {
	_, err := FromJSON(filepath.Join(t.TempDir(), "absent.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: read")
}

func TestFromYAML(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: orders\nworkers: 4\nratio: 0.5\n")

	c, err := FromYAML(path)
	require.NoError(t, err)

	name, _ := c.String("name")
	assert.Equal(t, "orders", name)
	workers, _ := c.Int("workers")
	assert.Equal(t, 4, workers)
	ratio, _ := c.Float("ratio")
	assert.Equal(t, 0.5, ratio)
}

func TestFromYAML_Invalid(t *testing.T) {
	path := writeFile(t, "config.yaml", "name: [unclosed\n")

	_, err := FromYAML(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: parse")
}

func TestFromEnv(t *testing.T) {
	t.Setenv("DATAOPS_DB_URL", "postgres://localhost/orders")
	t.Setenv("DATAOPS_WORKERS", "8")
	t.Setenv("OTHER_VAR", "ignored")

	c := FromEnv("DATAOPS_")

	url, ok := c.String("db_url")
	assert.True(t, ok)
	assert.Equal(t, "postgres://localhost/orders", url)

	workers, ok := c.Int("workers")
	assert.True(t, ok)
	assert.Equal(t, 8, workers)

	assert.False(t, c.Has("other_var"))
	assert.False(t, c.Has("var"))
}

func TestLoadDotenv(t *testing.T) {
	path := writeFile(t, "env", "DATAOPS_TEST_DOTENV_KEY=from-dotenv\n")

	// godotenv never overrides variables already present in the process.
	t.Setenv("DATAOPS_TEST_DOTENV_KEY", "")
	require.NoError(t, os.Unsetenv("DATAOPS_TEST_DOTENV_KEY"))

	require.NoError(t, LoadDotenv(path))
	assert.Equal(t, "from-dotenv", os.Getenv("DATAOPS_TEST_DOTENV_KEY"))
}

func TestLoadDotenv_MissingFile(t *testing.T) {
	err := LoadDotenv(filepath.Join(t.TempDir(), "absent.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config: load dotenv")
}
