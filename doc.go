// SPDX-License-Identifier: EPL-2.0

// Package stimgen builds noise-masked speech stimuli for adaptive
// psychoacoustic experiments.
//
// An adaptive staircase procedure presents a listener with a speech
// recording masked by noise, and adjusts the signal-to-noise ratio from
// trial to trial based on the listener's answers. This module implements
// the stimulus side of that loop: loading reference recordings,
// calibrating their intensity, mixing in Gaussian noise at a requested
// SNR, resampling for playback and writing the result to a WAV file with
// a deterministic per-trial name. The staircase rule itself, trial timing
// and response collection stay with the host program.
//
// # Supported Formats
//
// Reference recordings can be loaded from:
//   - WAV (any PCM bit depth) via formats/wav
//   - MP3 via formats/mp3
//   - Ogg Vorbis via formats/vorbis
//   - AIFF via formats/aiff
//
// All decoders downmix to mono float64 samples in [-1, 1]. Stimuli are
// always written as mono 16-bit PCM WAV.
//
// # Quick Start
//
// Load the condition library once, then synthesize one stimulus per trial:
//
//	cfg := experiment.DefaultConfig()
//	cfg.OutputDir = "data"
//
//	lib, _ := experiment.LoadLibrary(stimgen.DefaultRegistry(), map[string]string{
//	    "a": "recordings/a.wav",
//	    "e": "recordings/e.wav",
//	}, cfg.StandardLevelDB)
//
//	rng := rand.New(rand.NewSource(42))
//	synth, _ := experiment.NewSynthesizer(cfg, rng)
//
//	res, _ := synth.RunTrial(lib, experiment.Trial{BaseName: "p1", Index: 0}, 10)
//	// res.Path now names a playable stimulus at SNR +10 dB
//
// # Reproducibility
//
// Every random choice (condition pick, noise samples) draws from the
// *rand.Rand supplied by the caller. Two sessions seeded identically
// produce byte-identical stimulus files; two synthesizers with independent
// generators never interfere.
//
// # Building Blocks
//
// For custom pipelines, the sound subpackage exposes the primitives
// directly:
//
//	ref, _ := stimgen.Open("recordings/a.wav")
//	ref, _ = sound.ScaleTo(ref, 70)
//	noise, _ := sound.Noise(ref.Len(), ref.SampleRate, rng)
//	noise, _ = sound.ScaleTo(noise, 70-level)
//	mixed, _ := sound.Mix(ref, noise)
//	out, _ := sound.ScaleTo(mixed, 70)
//
// See the sound, formats and experiment subpackages for detailed
// documentation.
package stimgen
