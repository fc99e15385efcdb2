// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/dotandev/wasmkit/internal/errors"
	"github.com/dotandev/wasmkit/internal/wasm"
)

// Config represents the general configuration for wasmkit
type Config struct {
	// Features lists the proposal names enabled by default; the CLI flags
	// add to this set. Set via features in config or WASMKIT_FEATURES
	// (comma-separated).
	Features []string `json:"features,omitempty"`
	LogLevel string   `json:"log_level,omitempty"`
	LogJSON  bool     `json:"log_json,omitempty"`
	// CachePath holds the section-summary cache database.
	CachePath string `json:"cache_path,omitempty"`
	// MinToolVersion rejects older wasmkit builds, for teams pinning a
	// minimum. Checked with hashicorp/go-version.
	MinToolVersion string `json:"min_tool_version,omitempty"`
	// Telemetry enables OTLP trace export; the sections command records a span.
	Telemetry    bool   `json:"telemetry,omitempty"`
	TelemetryURL string `json:"telemetry_url,omitempty"`
}

var defaultConfig = &Config{
	LogLevel:  "info",
	CachePath: filepath.Join(os.ExpandEnv("$HOME"), ".wasmkit", "cache.db"),
}

// GetConfigPath returns the wasmkit configuration directory
func GetConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, ".wasmkit"), nil
}

// GetGeneralConfigPath returns the path to the general configuration file
func GetGeneralConfigPath() (string, error) {
	configDir, err := GetConfigPath()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.json"), nil
}

// LoadConfig loads the general configuration from disk (JSON format),
// falling back to defaults when no file exists, then applies environment
// overrides.
func LoadConfig() (*Config, error) {
	configPath, err := GetGeneralConfigPath()
	if err != nil {
		return nil, err
	}

	cfg := *defaultConfig
	data, err := os.ReadFile(configPath)
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return nil, errors.WrapInvalidConfig(err)
	default:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, errors.WrapInvalidConfig(err)
		}
	}

	applyEnvOverrides(&cfg)
	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// SaveConfig writes the configuration to disk
func SaveConfig(cfg *Config) error {
	configPath, err := GetGeneralConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(configPath), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return errors.WrapInvalidConfig(err)
	}
	return os.WriteFile(configPath, data, 0644)
}

// FeatureSet resolves the configured names into a feature set.
func (c *Config) FeatureSet() (wasm.Features, error) {
	return ParseFeatures(c.Features)
}

// ParseFeatures maps proposal names onto a Features value.
func ParseFeatures(names []string) (wasm.Features, error) {
	var f wasm.Features
	for _, name := range names {
		switch name {
		case "mvp":
		case "all":
			f = wasm.AllFeatures()
		case "mutable-globals":
			f.MutableGlobals = true
		case "saturating-float-to-int":
			f.SaturatingFloatToInt = true
		case "sign-extension":
			f.SignExtension = true
		case "multi-value":
			f.MultiValue = true
		case "reference-types":
			f.ReferenceTypes = true
		case "bulk-memory":
			f.BulkMemory = true
		case "tail-call":
			f.TailCall = true
		case "simd":
			f.SIMD = true
		case "threads":
			f.Threads = true
		case "exceptions":
			f.Exceptions = true
		default:
			return wasm.Features{}, errors.WrapUnknownFeature(name)
		}
	}
	return f, nil
}
