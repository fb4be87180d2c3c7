package mp3

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"

	gomp3 "github.com/hajimehoshi/go-mp3"

	"github.com/zhanglipku/stimgen/sound"
)

// mp3Reader is an interface for gomp3.Decoder to allow testing
type mp3Reader interface {
	Read([]byte) (int, error)
	SampleRate() int
}

// Load reads an MP3 file and returns it as a mono buffer.
func Load(path string) (*sound.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses an MP3 stream into a mono buffer.
func Decode(r io.Reader) (*sound.Buffer, error) {
	dec, err := gomp3.NewDecoder(r)
	if err != nil {
		return nil, fmt.Errorf("parsing mp3 stream: %w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec mp3Reader) (*sound.Buffer, error) {
	// go-mp3 emits 16-bit little-endian PCM, always two channels.
	raw, err := io.ReadAll(dec)
	if err != nil {
		return nil, fmt.Errorf("decoding mp3 data: %w", err)
	}

	frames := len(raw) / 4
	if frames == 0 {
		return nil, ErrEmptyStream
	}

	samples := make([]float64, frames)
	for i := range samples {
		left := int16(binary.LittleEndian.Uint16(raw[4*i : 4*i+2]))
		right := int16(binary.LittleEndian.Uint16(raw[4*i+2 : 4*i+4]))
		samples[i] = (float64(left) + float64(right)) / (2 * 32768.0)
	}

	return sound.New(samples, dec.SampleRate())
}
