// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	stderrors "errors"

	"github.com/dotandev/wasmkit/internal/errors"
	"github.com/dotandev/wasmkit/internal/wasm"
)

func TestParseFeatures(t *testing.T) {
	f, err := ParseFeatures([]string{"simd", "threads"})
	require.NoError(t, err)
	assert.True(t, f.SIMD)
	assert.True(t, f.Threads)
	assert.False(t, f.ReferenceTypes)

	f, err = ParseFeatures([]string{"all"})
	require.NoError(t, err)
	assert.Equal(t, wasm.AllFeatures(), f)

	f, err = ParseFeatures(nil)
	require.NoError(t, err)
	assert.Equal(t, wasm.MVP(), f)

	_, err = ParseFeatures([]string{"simd2"})
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrUnknownFeature))
}

func TestValidate(t *testing.T) {
	cfg := &Config{LogLevel: "verbose"}
	err := validate(cfg)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrInvalidConfig))

	cfg = &Config{LogLevel: "debug", Features: []string{"simd"}}
	require.NoError(t, validate(cfg))

	cfg = &Config{MinToolVersion: "not-a-version"}
	require.Error(t, validate(cfg))
}

func TestCheckToolVersion(t *testing.T) {
	cfg := &Config{MinToolVersion: "1.2.0"}

	require.NoError(t, cfg.CheckToolVersion("dev"))
	require.NoError(t, cfg.CheckToolVersion("1.2.0"))
	require.NoError(t, cfg.CheckToolVersion("1.3.1"))

	err := cfg.CheckToolVersion("1.1.9")
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, errors.ErrToolTooOld))

	require.NoError(t, (&Config{}).CheckToolVersion("0.0.1"))
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WASMKIT_FEATURES", "simd,bulk-memory")
	t.Setenv("WASMKIT_LOG_LEVEL", "debug")

	cfg := &Config{}
	applyEnvOverrides(cfg)
	assert.Equal(t, []string{"simd", "bulk-memory"}, cfg.Features)
	assert.Equal(t, "debug", cfg.LogLevel)

	f, err := cfg.FeatureSet()
	require.NoError(t, err)
	assert.True(t, f.SIMD)
	assert.True(t, f.BulkMemory)
}
