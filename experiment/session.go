package experiment

import "fmt"

// Session drives the synthesize → play → collect → record loop for a
// sequence of trials. The adaptive rule stays behind the LevelSource;
// the session only moves data between the synthesizer and the host's
// devices.
type Session struct {
	synth     *Synthesizer
	lib       *Library
	playback  PlaybackSink
	responses ResponseSource

	// Sink, when set, receives every finished trial.
	Sink TrialSink
}

// NewSession wires a synthesizer and library to the host's playback and
// response devices.
func NewSession(synth *Synthesizer, lib *Library, playback PlaybackSink, responses ResponseSource) (*Session, error) {
	if lib.Len() == 0 {
		return nil, ErrEmptyLibrary
	}
	return &Session{
		synth:     synth,
		lib:       lib,
		playback:  playback,
		responses: responses,
	}, nil
}

// Run executes trials consecutive trials under baseName, indices 0
// through trials-1. Each trial asks levels for its level, synthesizes
// and plays the stimulus, collects the answer and feeds it back.
//
// Any error is fatal to the session and returned immediately — a failed
// trial is never silently repeated or replaced, since a fallback
// stimulus would corrupt the staircase.
func (s *Session) Run(baseName string, trials int, levels LevelSource) error {
	for i := range trials {
		trial := Trial{BaseName: baseName, Index: i}
		level := levels.NextLevel()

		res, err := s.synth.RunTrial(s.lib, trial, level)
		if err != nil {
			return fmt.Errorf("trial %d: %w", i, err)
		}

		if err := s.playback.Play(res.Path); err != nil {
			return fmt.Errorf("trial %d: playing stimulus: %w", i, err)
		}

		correct, err := s.responses.Collect(res.Condition)
		if err != nil {
			return fmt.Errorf("trial %d: collecting response: %w", i, err)
		}
		levels.Update(correct)

		if s.Sink != nil {
			if err := s.Sink.Record(trial, res, level, correct); err != nil {
				return fmt.Errorf("trial %d: recording result: %w", i, err)
			}
		}
	}

	return nil
}
