// SPDX-License-Identifier: EPL-2.0

// Package sound provides the mono audio primitives the synthesis
// pipeline is built from.
//
// The central type is Buffer: a mono sequence of float64 samples plus a
// sample rate. Buffers are treated as immutable — every transformation
// (ScaleTo, Mix, Resample) returns a new buffer and leaves its inputs
// untouched.
//
// # Intensity
//
// Intensity measures RMS amplitude in dB relative to a fixed reference
// pressure, and ScaleTo rescales a buffer to a target intensity:
//
//	db, err := sound.Intensity(buf)
//	louder, err := sound.ScaleTo(buf, db+6)
//
// Only differences between intensity values are meaningful; the pipeline
// relies on nothing else.
//
// # Noise and Mixing
//
// Noise draws standard normal samples from an injected *rand.Rand, so a
// fixed seed reproduces a whole session. Mix adds two buffers sample by
// sample and refuses mismatched lengths or sample rates — mixing never
// silently resamples.
//
// # Resampling
//
// Resample converts a buffer to a new rate with windowed-sinc
// interpolation. It is band-limited (the kernel widens when
// downsampling, to suppress aliasing), preserves duration to within one
// sample period, and changes RMS intensity by no more than about 0.1 dB
// for in-band material.
//
// # Loaders
//
// The Loader interface and Registry let file decoders be registered by
// extension; the formats subpackages provide implementations and the
// root stimgen package wires them into a default registry.
package sound
