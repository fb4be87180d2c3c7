// SPDX-License-Identifier: EPL-2.0

package sound

import "errors"

var (
	// ErrInvalidSampleRate indicates a zero or negative sample rate.
	ErrInvalidSampleRate = errors.New("sample rate must be positive")

	// ErrEmptyBuffer indicates a buffer with no samples.
	ErrEmptyBuffer = errors.New("buffer has no samples")

	// ErrSilentBuffer indicates zero RMS, for which intensity is undefined.
	ErrSilentBuffer = errors.New("buffer is silent, intensity is undefined")

	// ErrSampleRateMismatch indicates an attempt to mix buffers with
	// different sample rates.
	ErrSampleRateMismatch = errors.New("sample rates do not match")

	// ErrLengthMismatch indicates an attempt to mix buffers with
	// different lengths.
	ErrLengthMismatch = errors.New("buffer lengths do not match")

	// ErrNilRand indicates a missing random source.
	ErrNilRand = errors.New("random source is nil")

	// ErrUnsupportedFormat indicates no loader is registered for a
	// file extension.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
