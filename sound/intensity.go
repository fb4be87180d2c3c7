// SPDX-License-Identifier: EPL-2.0

package sound

import "math"

// ReferencePressure is the fixed reference for intensity measurements,
// 20 µPa expressed in the buffer amplitude unit. Every dB value in this
// module is relative to it, so differences between intensities are
// consistent across the whole pipeline.
const ReferencePressure = 2e-5

// Intensity returns the RMS amplitude of b in dB relative to
// ReferencePressure. A buffer with zero RMS has no defined intensity and
// yields ErrSilentBuffer; genuine silence must be special-cased by the
// caller.
func Intensity(b *Buffer) (float64, error) {
	if len(b.Samples) == 0 {
		return 0, ErrEmptyBuffer
	}

	var sum float64
	for _, s := range b.Samples {
		sum += s * s
	}
	rms := math.Sqrt(sum / float64(len(b.Samples)))
	if rms == 0 {
		return 0, ErrSilentBuffer
	}

	return 20 * math.Log10(rms/ReferencePressure), nil
}

// ScaleTo returns a new buffer rescaled so its intensity equals targetDB.
// Applying the same target twice is a no-op within floating-point
// tolerance.
func ScaleTo(b *Buffer, targetDB float64) (*Buffer, error) {
	current, err := Intensity(b)
	if err != nil {
		return nil, err
	}

	factor := math.Pow(10, (targetDB-current)/20)
	samples := make([]float64, len(b.Samples))
	for i, s := range b.Samples {
		samples[i] = s * factor
	}

	return &Buffer{Samples: samples, SampleRate: b.SampleRate}, nil
}
