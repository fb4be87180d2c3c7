package experiment

import "fmt"

// StimulusName returns the canonical file name for one trial's
// stimulus: "{baseName}_stimulus_{trialIndex}.wav".
//
// The function is pure — no hidden counters — so the caller fully
// controls uniqueness by supplying distinct trial indices per base name.
func StimulusName(baseName string, trialIndex int) string {
	return fmt.Sprintf("%s_stimulus_%d.wav", baseName, trialIndex)
}
