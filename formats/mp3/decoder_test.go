package mp3

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"math"
	"testing"
)

// mockMP3Reader simulates the gomp3.Decoder for testing
type mockMP3Reader struct {
	sampleRate int
	frames     [][2]int16 // stereo frames
	offset     int
}

func (m *mockMP3Reader) SampleRate() int { return m.sampleRate }

func (m *mockMP3Reader) Read(buf []byte) (int, error) {
	if m.offset >= len(m.frames) {
		return 0, io.EOF
	}

	framesToRead := len(buf) / 4
	if avail := len(m.frames) - m.offset; framesToRead > avail {
		framesToRead = avail
	}

	for i := range framesToRead {
		frame := m.frames[m.offset+i]
		binary.LittleEndian.PutUint16(buf[4*i:], uint16(frame[0]))
		binary.LittleEndian.PutUint16(buf[4*i+2:], uint16(frame[1]))
	}
	m.offset += framesToRead

	return framesToRead * 4, nil
}

func TestDecodeAll_DownmixesToMono(t *testing.T) {
	t.Parallel()

	dec := &mockMP3Reader{
		sampleRate: 44100,
		frames: [][2]int16{
			{1000, 3000},
			{-2000, -4000},
			{0, 500},
		},
	}

	buf, err := decodeAll(dec)
	if err != nil {
		t.Fatalf("decodeAll() error = %v", err)
	}

	if buf.SampleRate != 44100 {
		t.Errorf("SampleRate = %d, want 44100", buf.SampleRate)
	}

	want := []float64{2000.0 / 32768, -3000.0 / 32768, 250.0 / 32768}
	if buf.Len() != len(want) {
		t.Fatalf("Len() = %d, want %d", buf.Len(), len(want))
	}
	for i := range want {
		if math.Abs(buf.Samples[i]-want[i]) > 1e-12 {
			t.Errorf("sample %d = %v, want %v", i, buf.Samples[i], want[i])
		}
	}
}

func TestDecodeAll_EmptyStream(t *testing.T) {
	t.Parallel()

	dec := &mockMP3Reader{sampleRate: 44100}

	_, err := decodeAll(dec)
	if !errors.Is(err, ErrEmptyStream) {
		t.Errorf("decodeAll() error = %v, want ErrEmptyStream", err)
	}
}

func TestDecode_InvalidInput(t *testing.T) {
	t.Parallel()

	_, err := Decode(bytes.NewReader([]byte("This is not MP3 data")))
	if err == nil {
		t.Error("Decode() succeeded on invalid input")
	}
}
