// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF decoding for reference recordings.
//
// It uses github.com/go-audio/aiff and downmixes any PCM layout to a
// mono float64 buffer in [-1, 1].
//
//	buf, err := aiff.Load("recordings/a.aiff")
//
// AIFF is an input format only — stimuli are always written as WAV.
package aiff
