// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 decoding for reference recordings.
//
// It uses github.com/hajimehoshi/go-mp3, which emits 16-bit stereo PCM
// at the stream's native rate; the loader downmixes that to a mono
// float64 buffer in [-1, 1].
//
//	buf, err := mp3.Load("recordings/a.mp3")
//
// MP3 is an input format only — stimuli are always written as WAV.
package mp3
