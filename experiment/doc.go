// SPDX-License-Identifier: EPL-2.0

// Package experiment orchestrates per-trial stimulus synthesis for an
// adaptive listening experiment.
//
// The Synthesizer implements the fixed per-trial pipeline: generate
// calibrated Gaussian noise at the reference's own rate, scale it so the
// reference exceeds it by exactly the staircase level in dB, mix, and
// renormalize the mixture to the standard presentation level so overall
// loudness never varies — only the speech/noise balance does.
//
//	synth, _ := experiment.NewSynthesizer(cfg, rng)
//	res, err := synth.RunTrial(lib, experiment.Trial{BaseName: "p1", Index: 3}, level)
//
// RunTrial picks a condition with the injected generator, synthesizes,
// resamples to the configured playback rate and saves the stimulus as
// "{baseName}_stimulus_{trialIndex}.wav" under the output directory.
//
// The Library holds the reference recordings, each normalized to the
// standard level once at load time. It is built before the first trial
// and read-only afterwards.
//
// The adaptive rule itself — how the level moves after each answer — is
// deliberately outside this package. Session drives the full
// synthesize/play/collect loop against host-supplied PlaybackSink,
// ResponseSource and LevelSource implementations, and reports each
// finished trial to an optional TrialSink.
//
// All errors are fatal to the current trial and surfaced to the caller;
// there are no retries and never a fallback stimulus. The one exception
// is clipping after renormalization, which is reported on the Result
// (and logged when a logger is set) while synthesis completes.
package experiment
