// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package command

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staranto/cachergo/internal/scan"
)

const testFP = "bbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbbb"

func run(t *testing.T, args ...string) error {
	t.Helper()
	ctx := context.Background()
	app, err := InitApp(ctx, args)
	require.NoError(t, err)
	return app.Run(ctx, args)
}

func TestPurgeRemovesOnlyOldEntries(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	old := filepath.Join(dir, scan.Filename("jobs", testFP, now.Add(-48*time.Hour), "json"))
	fresh := filepath.Join(dir, scan.Filename("jobs", testFP, now.Add(-time.Minute), "json"))
	stray := filepath.Join(dir, "notes.txt")
	for _, p := range []string{old, fresh, stray} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}

	err := run(t, "cachectl", "purge", "--dir", dir, "--older-than", "24h")
	require.NoError(t, err)

	assert.NoFileExists(t, old)
	assert.FileExists(t, fresh)
	// Files that are not cache entries are left alone.
	assert.FileExists(t, stray)
}

func TestPurgeHonorsNamespace(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()

	mine := filepath.Join(dir, scan.Filename("jobs", testFP, now.Add(-48*time.Hour), "json"))
	other := filepath.Join(dir, scan.Filename("batch", testFP, now.Add(-48*time.Hour), "json"))
	for _, p := range []string{mine, other} {
		require.NoError(t, os.WriteFile(p, []byte("x"), 0o600))
	}

	err := run(t, "cachectl", "purge", "--dir", dir, "--name", "jobs", "--older-than", "24h")
	require.NoError(t, err)

	assert.NoFileExists(t, mine)
	assert.FileExists(t, other)
}

func TestLsMissingDirIsEmptyListing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "never-created")

	assert.NoError(t, run(t, "cachectl", "ls", "--dir", dir))
}

func TestLsRunsCleanly(t *testing.T) {
	dir := t.TempDir()
	name := scan.Filename("jobs", testFP, time.Now(), "json")
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`{"ok":true}`), 0o600))

	assert.NoError(t, run(t, "cachectl", "ls", "--dir", dir))
}

func TestCatPathExtractsField(t *testing.T) {
	dir := t.TempDir()
	name := scan.Filename("", testFP, time.Now(), "json")
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(`{"sum":42}`), 0o600))

	assert.NoError(t, run(t, "cachectl", "cat", "--dir", dir, "--path", "sum", name))
	assert.Error(t, run(t, "cachectl", "cat", "--dir", dir, "../escape.json"))
}
