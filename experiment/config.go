package experiment

const (
	// DefaultStandardLevelDB is the presentation level stimuli are
	// normalized to, in dB relative to sound.ReferencePressure.
	DefaultStandardLevelDB = 70.0

	// DefaultPlaybackRate is the sample rate stimuli are converted to
	// before saving.
	DefaultPlaybackRate = 44100
)

// Config holds the fixed presentation parameters of a session. It is
// built once at session start and passed by value into the synthesizer —
// never package-level state.
type Config struct {
	// StandardLevelDB is the intensity every stimulus is renormalized
	// to after mixing, so perceived loudness is constant across SNR
	// levels.
	StandardLevelDB float64

	// PlaybackRate is the output sample rate. Zero keeps each
	// stimulus at its reference's rate.
	PlaybackRate int

	// OutputDir is the directory stimulus files are written to.
	// Empty means the current directory. The host owns the directory's
	// lifecycle; the synthesizer only creates it on demand.
	OutputDir string
}

// DefaultConfig returns the standard presentation parameters.
func DefaultConfig() Config {
	return Config{
		StandardLevelDB: DefaultStandardLevelDB,
		PlaybackRate:    DefaultPlaybackRate,
	}
}

func (c Config) Validate() error {
	if c.PlaybackRate < 0 {
		return ErrInvalidPlaybackRate
	}
	return nil
}
