// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cachergo.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoadAndGetString(t *testing.T) {
	path := writeConfig(t, "cache:\n  dir: /var/tmp/cachergo\n  codec: yaml\n")

	_, err := Load(path)
	require.NoError(t, err)

	dir, err := GetString("cache.dir")
	require.NoError(t, err)
	assert.Equal(t, "/var/tmp/cachergo", dir)

	c, err := GetString("cache.codec")
	require.NoError(t, err)
	assert.Equal(t, "yaml", c)
}

func TestGetStringDefault(t *testing.T) {
	path := writeConfig(t, "cache:\n  dir: /var/tmp/cachergo\n")
	_, err := Load(path)
	require.NoError(t, err)

	got, err := GetString("cache.codec", "json")
	require.NoError(t, err)
	assert.Equal(t, "json", got)

	_, err = GetString("cache.codec")
	assert.Error(t, err)
}

func TestGetDuration(t *testing.T) {
	path := writeConfig(t, "cache:\n  limit: 336h\n")
	_, err := Load(path)
	require.NoError(t, err)

	d, err := GetDuration("cache.limit")
	require.NoError(t, err)
	assert.Equal(t, 336*time.Hour, d)

	d, err = GetDuration("cache.missing", time.Hour)
	require.NoError(t, err)
	assert.Equal(t, time.Hour, d)
}

func TestDirEnvWins(t *testing.T) {
	t.Setenv("CACHERGO_CACHE_DIR", "/from/env")

	dir, ok := Dir()
	require.True(t, ok)
	assert.Equal(t, "/from/env", dir)
}

func TestDirFromConfig(t *testing.T) {
	t.Setenv("CACHERGO_CACHE_DIR", "")
	path := writeConfig(t, "cache:\n  dir: /from/config\n")
	_, err := Load(path)
	require.NoError(t, err)

	dir, ok := Dir()
	require.True(t, ok)
	assert.Equal(t, "/from/config", dir)
}
