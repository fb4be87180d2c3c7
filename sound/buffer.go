// SPDX-License-Identifier: EPL-2.0

package sound

import "time"

// Buffer is a mono audio signal: amplitude samples at a fixed sample
// rate. The amplitude unit is arbitrary but consistent across the
// pipeline; decoders produce samples in [-1, 1].
//
// Buffers are immutable by convention. Transformations return new
// buffers rather than mutating shared ones, so a Buffer handed to
// another component can be kept without copying.
type Buffer struct {
	Samples    []float64
	SampleRate int
}

// New constructs a Buffer after validating its invariants.
func New(samples []float64, sampleRate int) (*Buffer, error) {
	if sampleRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(samples) == 0 {
		return nil, ErrEmptyBuffer
	}
	return &Buffer{Samples: samples, SampleRate: sampleRate}, nil
}

// Len returns the number of samples.
func (b *Buffer) Len() int { return len(b.Samples) }

// Duration returns the playing time of the buffer.
func (b *Buffer) Duration() time.Duration {
	return time.Duration(float64(time.Second) * float64(len(b.Samples)) / float64(b.SampleRate))
}

// Clone returns a deep copy that shares no storage with b.
func (b *Buffer) Clone() *Buffer {
	samples := make([]float64, len(b.Samples))
	copy(samples, b.Samples)
	return &Buffer{Samples: samples, SampleRate: b.SampleRate}
}

// Clipped reports whether any sample lies outside the [-1, 1] range
// representable by the 16-bit PCM output codec.
func (b *Buffer) Clipped() bool {
	for _, s := range b.Samples {
		if s > 1 || s < -1 {
			return true
		}
	}
	return false
}
