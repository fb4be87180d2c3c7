// SPDX-License-Identifier: EPL-2.0

package experiment

import (
	"fmt"
	"log/slog"
	"math/rand"
	"path/filepath"

	"github.com/zhanglipku/stimgen/formats/wav"
	"github.com/zhanglipku/stimgen/sound"
)

// Synthesizer builds one noise-masked stimulus per trial.
//
// All randomness — noise samples and condition picks — comes from the
// injected generator, so a Synthesizer seeded identically to another
// reproduces its stimuli byte for byte, and independently seeded
// instances never interfere. A Synthesizer is not safe for concurrent
// use; run interleaved staircases on separate instances with separate
// base names.
type Synthesizer struct {
	cfg Config
	rng *rand.Rand

	// Log, when set, receives a warning each time renormalization
	// pushes samples outside the representable range. Nil disables
	// logging; the clipping flag on results is always populated.
	Log *slog.Logger
}

// NewSynthesizer validates cfg and returns a synthesizer drawing all
// randomness from rng.
func NewSynthesizer(cfg Config, rng *rand.Rand) (*Synthesizer, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, sound.ErrNilRand
	}
	return &Synthesizer{cfg: cfg, rng: rng}, nil
}

// Config returns the session parameters the synthesizer was built with.
func (s *Synthesizer) Config() Config { return s.cfg }

// Synthesize mixes calibrated noise into ref at the given staircase
// level and returns the renormalized mixture plus a clipping flag.
//
// ref must already be normalized to the standard level (the Library
// does this once at load time). The noise is generated at ref's own
// length and rate, scaled to standardLevel-level so the reference
// exceeds it by exactly level dB, mixed sample-wise, and the mixture is
// rescaled back to the standard level. Level zero or below (noise as
// loud as or louder than speech) and very large levels are ordinary
// inputs; the formulas are continuous across the whole range.
//
// Clipping after the final rescale is not an error: the flag is
// returned true, a warning is logged when a logger is set, and the
// buffer is handed back untouched.
func (s *Synthesizer) Synthesize(ref *sound.Buffer, level float64) (*sound.Buffer, bool, error) {
	noise, err := sound.Noise(ref.Len(), ref.SampleRate, s.rng)
	if err != nil {
		return nil, false, fmt.Errorf("generating noise: %w", err)
	}

	noise, err = sound.ScaleTo(noise, s.cfg.StandardLevelDB-level)
	if err != nil {
		return nil, false, fmt.Errorf("calibrating noise: %w", err)
	}

	mixed, err := sound.Mix(ref, noise)
	if err != nil {
		return nil, false, fmt.Errorf("mixing stimulus: %w", err)
	}

	out, err := sound.ScaleTo(mixed, s.cfg.StandardLevelDB)
	if err != nil {
		return nil, false, fmt.Errorf("renormalizing stimulus: %w", err)
	}

	clipped := out.Clipped()
	if clipped && s.Log != nil {
		s.Log.Warn("stimulus clipped after renormalization",
			"level", level, "standard", s.cfg.StandardLevelDB)
	}

	return out, clipped, nil
}

// RunTrial synthesizes, resamples and saves one trial's stimulus for a
// randomly picked condition. The caller owns the returned Result and
// may discard it after use.
func (s *Synthesizer) RunTrial(lib *Library, trial Trial, level float64) (*Result, error) {
	if lib.Len() == 0 {
		return nil, ErrEmptyLibrary
	}
	return s.RunConditionTrial(lib, lib.Pick(s.rng), trial, level)
}

// RunConditionTrial is RunTrial for a host-chosen condition label.
func (s *Synthesizer) RunConditionTrial(lib *Library, label string, trial Trial, level float64) (*Result, error) {
	if trial.Index < 0 {
		return nil, ErrNegativeTrialIndex
	}
	ref, ok := lib.Get(label)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCondition, label)
	}

	buf, clipped, err := s.Synthesize(ref, level)
	if err != nil {
		return nil, err
	}

	if s.cfg.PlaybackRate > 0 && s.cfg.PlaybackRate != buf.SampleRate {
		buf, err = sound.Resample(buf, s.cfg.PlaybackRate)
		if err != nil {
			return nil, fmt.Errorf("resampling for playback: %w", err)
		}
	}

	path := filepath.Join(s.cfg.OutputDir, StimulusName(trial.BaseName, trial.Index))
	if err := wav.Save(buf, path); err != nil {
		return nil, fmt.Errorf("saving stimulus: %w", err)
	}

	return &Result{
		Path:      path,
		Condition: label,
		Buffer:    buf,
		Clipped:   clipped,
	}, nil
}
