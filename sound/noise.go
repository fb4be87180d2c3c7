// SPDX-License-Identifier: EPL-2.0

package sound

import "math/rand"

// Noise returns n independent samples drawn from a standard normal
// distribution (mean 0, unit variance), tagged with sampleRate.
//
// The generator is always supplied by the caller — never package-level
// state — so a fixed seed deterministically reproduces the full stimulus
// sequence of a session, and independently seeded generators never
// interfere.
func Noise(n, sampleRate int, rng *rand.Rand) (*Buffer, error) {
	if rng == nil {
		return nil, ErrNilRand
	}
	if n <= 0 {
		return nil, ErrEmptyBuffer
	}
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}

	samples := make([]float64, n)
	for i := range samples {
		samples[i] = rng.NormFloat64()
	}

	return &Buffer{Samples: samples, SampleRate: sampleRate}, nil
}
