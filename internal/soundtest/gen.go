// SPDX-License-Identifier: EPL-2.0

package soundtest

import (
	"math"

	"github.com/zhanglipku/stimgen/sound"
)

// Gen builds deterministic mono buffers for tests from a per-sample
// waveform function.
func Gen(sampleRate, n int, waveform func(sample int) float64) *sound.Buffer {
	samples := make([]float64, n)
	for i := range samples {
		samples[i] = waveform(i)
	}
	return &sound.Buffer{Samples: samples, SampleRate: sampleRate}
}

// Sine returns n samples of a sine wave at the given frequency and
// amplitude.
func Sine(sampleRate, n int, frequency, amplitude float64) *sound.Buffer {
	return Gen(sampleRate, n, func(sample int) float64 {
		t := float64(sample) / float64(sampleRate)
		return amplitude * math.Sin(2*math.Pi*frequency*t)
	})
}

// Constant returns n samples of the given value.
func Constant(sampleRate, n int, value float64) *sound.Buffer {
	return Gen(sampleRate, n, func(int) float64 { return value })
}

// Silence returns n zero samples.
func Silence(sampleRate, n int) *sound.Buffer {
	return Constant(sampleRate, n, 0)
}
