// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis decoding for reference recordings.
//
// It uses github.com/jfreymuth/oggvorbis and downmixes any channel
// layout to a mono float64 buffer in [-1, 1].
//
//	buf, err := vorbis.Load("recordings/a.ogg")
//
// Ogg Vorbis is an input format only — stimuli are always written as WAV.
package vorbis
