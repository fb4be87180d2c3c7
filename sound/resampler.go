// SPDX-License-Identifier: EPL-2.0

package sound

import "math"

// sincLobes sets the width of the interpolation kernel: the number of
// sinc lobes kept on each side of the interpolation point. 16 lobes is a
// good balance of quality and speed for speech material.
const sincLobes = 16

// Resample converts b to targetRate using windowed-sinc interpolation.
//
// The kernel is widened when downsampling so the result stays band
// limited below the new Nyquist frequency. Total duration is preserved
// to within one sample period and RMS intensity to within about 0.1 dB
// for in-band material — resampling is a rate conversion, not a
// rescaling.
//
// When targetRate equals the buffer's rate a cheap copy is returned.
func Resample(b *Buffer, targetRate int) (*Buffer, error) {
	if targetRate <= 0 {
		return nil, ErrInvalidSampleRate
	}
	if len(b.Samples) == 0 {
		return nil, ErrEmptyBuffer
	}
	if targetRate == b.SampleRate {
		return b.Clone(), nil
	}

	ratio := float64(targetRate) / float64(b.SampleRate)
	n := len(b.Samples)
	outLen := int(math.Round(float64(n) * ratio))
	if outLen < 1 {
		outLen = 1
	}

	// Downsampling: scale the kernel down in frequency (wider in time)
	// so it cuts off at the destination Nyquist instead of the source's.
	filterRatio := 1.0
	if ratio < 1 {
		filterRatio = ratio
	}
	windowRadius := float64(sincLobes) / filterRatio

	out := make([]float64, outLen)
	for i := range out {
		pos := float64(i) / ratio

		start := int(math.Floor(pos - windowRadius))
		if start < 0 {
			start = 0
		}
		end := int(math.Ceil(pos + windowRadius))
		if end > n-1 {
			end = n - 1
		}

		var sum, weightSum float64
		for j := start; j <= end; j++ {
			d := pos - float64(j)
			w := sinc(d*filterRatio) * blackmanWindow(d/windowRadius)
			sum += b.Samples[j] * w
			weightSum += w
		}

		// Normalizing by the weight sum keeps unity gain near the
		// buffer edges where the kernel is truncated.
		if weightSum != 0 {
			out[i] = sum / weightSum
		}
	}

	return &Buffer{Samples: out, SampleRate: targetRate}, nil
}

// sinc computes sin(pi*x)/(pi*x) with proper handling at x=0.
func sinc(x float64) float64 {
	if math.Abs(x) < 1e-10 {
		return 1.0
	}
	pix := math.Pi * x
	return math.Sin(pix) / pix
}

// blackmanWindow evaluates the Blackman window over [-1, 1], zero
// outside that range.
func blackmanWindow(x float64) float64 {
	if x < -1 || x > 1 {
		return 0
	}
	t := (x + 1) / 2
	return 0.42 - 0.5*math.Cos(2*math.Pi*t) + 0.08*math.Cos(4*math.Pi*t)
}
