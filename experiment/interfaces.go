package experiment

// PlaybackSink plays a saved stimulus file for the participant. The
// host implements it on top of whatever audio device it drives.
type PlaybackSink interface {
	Play(path string) error
}

// ResponseSource collects the participant's answer to the trial just
// played and reports whether it was correct for the given condition.
type ResponseSource interface {
	Collect(condition string) (correct bool, err error)
}

// LevelSource supplies the presentation level for each trial and
// consumes the correctness stream — typically an adaptive staircase.
// The step rule lives entirely behind this interface.
type LevelSource interface {
	// NextLevel returns the level (dB) for the upcoming trial.
	NextLevel() float64

	// Update feeds back whether the participant answered correctly.
	Update(correct bool)
}

// TrialSink receives the completed record of each trial, e.g. for a
// results file. Implementations must not retain result.Buffer beyond
// the call if they mutate it.
type TrialSink interface {
	Record(trial Trial, result *Result, level float64, correct bool) error
}
