// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func TestSaveAndLookup(t *testing.T) {
	store := openTestStore(t)

	summary := &Summary{
		Hash:      "abc123",
		Path:      "/tmp/mod.wasm",
		SizeBytes: 1234,
		Sections:  []string{"section 1 (type): 5 bytes", "section 10 (code): 9 bytes"},
	}
	require.NoError(t, store.Save(summary))

	got, err := store.Lookup("abc123")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, summary.Path, got.Path)
	require.Equal(t, summary.SizeBytes, got.SizeBytes)
	require.Equal(t, summary.Sections, got.Sections)

	missing, err := store.Lookup("nope")
	require.NoError(t, err)
	require.Nil(t, missing)
}

func TestSave_ReplacesSameHash(t *testing.T) {
	store := openTestStore(t)

	require.NoError(t, store.Save(&Summary{Hash: "h", Path: "a", Sections: []string{"x"}}))
	require.NoError(t, store.Save(&Summary{Hash: "h", Path: "b", Sections: []string{"y"}}))

	got, err := store.Lookup("h")
	require.NoError(t, err)
	require.Equal(t, "b", got.Path)
	require.Equal(t, []string{"y"}, got.Sections)
}

func TestPrune(t *testing.T) {
	store := openTestStore(t)
	require.NoError(t, store.Save(&Summary{Hash: "old", Path: "a", Sections: []string{}}))

	// Nothing is older than an hour yet.
	removed, err := store.Prune(time.Hour)
	require.NoError(t, err)
	require.Zero(t, removed)

	// Everything is older than a negative cutoff.
	removed, err = store.Prune(-time.Hour)
	require.NoError(t, err)
	require.Equal(t, int64(1), removed)
}
