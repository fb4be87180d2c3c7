package sound

import (
	"errors"
	"testing"
	"time"
)

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		samples    []float64
		sampleRate int
		wantErr    error
	}{
		{"valid", []float64{0.1, -0.2}, 44100, nil},
		{"zero rate", []float64{0.1}, 0, ErrInvalidSampleRate},
		{"negative rate", []float64{0.1}, -8000, ErrInvalidSampleRate},
		{"empty samples", []float64{}, 44100, ErrEmptyBuffer},
		{"nil samples", nil, 44100, ErrEmptyBuffer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf, err := New(tt.samples, tt.sampleRate)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New() error = %v, want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && buf == nil {
				t.Fatal("New() returned nil buffer without error")
			}
		})
	}
}

func TestBuffer_Duration(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Samples: make([]float64, 22050), SampleRate: 44100}

	if got := buf.Duration(); got != 500*time.Millisecond {
		t.Errorf("Duration() = %v, want 500ms", got)
	}
}

func TestBuffer_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	buf := &Buffer{Samples: []float64{0.1, 0.2, 0.3}, SampleRate: 8000}
	clone := buf.Clone()

	clone.Samples[0] = 9

	if buf.Samples[0] != 0.1 {
		t.Error("mutating a clone changed the original buffer")
	}
	if clone.SampleRate != buf.SampleRate {
		t.Errorf("Clone() sample rate = %d, want %d", clone.SampleRate, buf.SampleRate)
	}
}

func TestBuffer_Clipped(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		samples []float64
		want    bool
	}{
		{"in range", []float64{0.5, -0.5, 1.0, -1.0}, false},
		{"above", []float64{0.5, 1.0001}, true},
		{"below", []float64{-1.5, 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &Buffer{Samples: tt.samples, SampleRate: 8000}
			if got := buf.Clipped(); got != tt.want {
				t.Errorf("Clipped() = %v, want %v", got, tt.want)
			}
		})
	}
}
