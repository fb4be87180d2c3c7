package utils

import "testing"

func TestFloat64ToInt16(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   float64
		want int16
	}{
		{"zero", 0, 0},
		{"positive max", 1, 32767},
		{"negative max", -1, -32767},
		{"half", 0.5, 16384},
		{"clamp high", 2.5, 32767},
		{"clamp low", -3.0, -32767},
		{"rounds up", 0.50001, 16384},
		{"small positive", 1.0 / 32767.0, 1},
		{"small negative", -1.0 / 32767.0, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Float64ToInt16(tt.in); got != tt.want {
				t.Errorf("Float64ToInt16(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestFloat64ToInt16_RoundTripError(t *testing.T) {
	t.Parallel()

	// Quantize-then-dequantize must stay within half a step.
	for _, x := range []float64{0.1, -0.25, 0.333, 0.9999, -0.0001} {
		q := float64(Float64ToInt16(x)) / 32767.0
		diff := q - x
		if diff < 0 {
			diff = -diff
		}
		if diff > 0.5/32767.0 {
			t.Errorf("round trip of %v off by %v", x, diff)
		}
	}
}
