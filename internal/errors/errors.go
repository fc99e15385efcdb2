// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for comparison with errors.Is
var (
	ErrReadFile        = errors.New("failed to read module file")
	ErrInvalidConfig   = errors.New("invalid configuration")
	ErrCacheOpenFailed = errors.New("failed to open summary cache")
	ErrDecodeFailed    = errors.New("module decode failed")
	ErrUnknownFeature  = errors.New("unknown feature")
	ErrToolTooOld      = errors.New("tool version too old")
)

// Wrap functions for consistent error wrapping
func WrapReadFile(err error, path string) error {
	return fmt.Errorf("%w: %s: %w", ErrReadFile, path, err)
}

func WrapInvalidConfig(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
}

func WrapCacheOpenFailed(err error) error {
	return fmt.Errorf("%w: %w", ErrCacheOpenFailed, err)
}

func WrapDecodeFailed(path string, count int) error {
	return fmt.Errorf("%w: %s: %d errors", ErrDecodeFailed, path, count)
}

func WrapUnknownFeature(name string) error {
	return fmt.Errorf("%w: %s. Must be one of the known proposal names", ErrUnknownFeature, name)
}

func WrapToolTooOld(have, want string) error {
	return fmt.Errorf("%w: config requires %s, this build is %s", ErrToolTooOld, want, have)
}
