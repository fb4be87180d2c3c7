// SPDX-License-Identifier: EPL-2.0

package sound

// Mix returns the sample-wise sum of a and b as a new buffer.
//
// Both buffers must have the same length and sample rate. Mixing at
// mismatched rates is an error, never a silent resample — a stimulus
// mixed across rates would play at the wrong SNR.
func Mix(a, b *Buffer) (*Buffer, error) {
	if a.SampleRate != b.SampleRate {
		return nil, ErrSampleRateMismatch
	}
	if len(a.Samples) != len(b.Samples) {
		return nil, ErrLengthMismatch
	}
	if len(a.Samples) == 0 {
		return nil, ErrEmptyBuffer
	}

	samples := make([]float64, len(a.Samples))
	for i := range samples {
		samples[i] = a.Samples[i] + b.Samples[i]
	}

	return &Buffer{Samples: samples, SampleRate: a.SampleRate}, nil
}
