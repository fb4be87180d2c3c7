// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// It uses the github.com/go-audio libraries for robust WAV container
// handling.
//
// # Decoding
//
// Load accepts any PCM WAV the go-audio decoder understands (8 to
// 32-bit, any channel count, any sample rate) and normalizes it to a
// mono float64 buffer in [-1, 1]; multi-channel files are downmixed by
// averaging the channels.
//
//	buf, err := wav.Load("recordings/a.wav")
//
// A missing file surfaces the underlying os error (check with
// errors.Is(err, fs.ErrNotExist)); a file that is not a PCM WAV yields
// ErrNotWAVFile.
//
// # Encoding
//
// Save writes a buffer as mono 16-bit PCM WAV at the buffer's sample
// rate, creating parent directories as needed. The file is first written
// to a temporary name in the target directory and renamed into place, so
// a failed write never leaves a truncated file at the final path.
//
//	err := wav.Save(buf, "data/p1_stimulus_0.wav")
//
// Loading a saved buffer reproduces its samples within 16-bit
// quantization tolerance and its exact sample rate.
package wav
