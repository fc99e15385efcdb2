// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

package wasm

// Feature names a WebAssembly proposal that unlocks a slice of the binary
// grammar. The zero value gates nothing (MVP).
type Feature uint

const (
	FeatureNone Feature = iota
	FeatureMutableGlobals
	FeatureSaturatingFloatToInt
	FeatureSignExtension
	FeatureMultiValue
	FeatureReferenceTypes
	FeatureBulkMemory
	FeatureTailCall
	FeatureSIMD
	FeatureThreads
	FeatureExceptions
)

// Features is the immutable bag of proposal switches supplied by the caller.
// Every grammar rule consults it; there is no autodetection.
type Features struct {
	MutableGlobals       bool
	SaturatingFloatToInt bool
	SignExtension        bool
	MultiValue           bool
	ReferenceTypes       bool
	BulkMemory           bool
	TailCall             bool
	SIMD                 bool
	Threads              bool
	Exceptions           bool
}

// MVP returns the feature set with every proposal disabled.
func MVP() Features { return Features{} }

// AllFeatures returns the feature set with every proposal enabled.
func AllFeatures() Features {
	return Features{
		MutableGlobals:       true,
		SaturatingFloatToInt: true,
		SignExtension:        true,
		MultiValue:           true,
		ReferenceTypes:       true,
		BulkMemory:           true,
		TailCall:             true,
		SIMD:                 true,
		Threads:              true,
		Exceptions:           true,
	}
}

// Has reports whether the given proposal is enabled. FeatureNone is always
// enabled.
func (f Features) Has(feature Feature) bool {
	switch feature {
	case FeatureNone:
		return true
	case FeatureMutableGlobals:
		return f.MutableGlobals
	case FeatureSaturatingFloatToInt:
		return f.SaturatingFloatToInt
	case FeatureSignExtension:
		return f.SignExtension
	case FeatureMultiValue:
		return f.MultiValue
	case FeatureReferenceTypes:
		return f.ReferenceTypes
	case FeatureBulkMemory:
		return f.BulkMemory
	case FeatureTailCall:
		return f.TailCall
	case FeatureSIMD:
		return f.SIMD
	case FeatureThreads:
		return f.Threads
	case FeatureExceptions:
		return f.Exceptions
	}
	return false
}
