package vorbis

import (
	"fmt"
	"io"
	"os"

	"github.com/jfreymuth/oggvorbis"

	"github.com/zhanglipku/stimgen/sound"
)

// oggReader is an interface for oggvorbis.Reader to allow testing
type oggReader interface {
	SampleRate() int
	Channels() int
	Read([]float32) (int, error)
}

// Load reads an Ogg Vorbis file and returns it as a mono buffer.
func Load(path string) (*sound.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses an Ogg Vorbis stream into a mono buffer.
func Decode(r io.Reader) (*sound.Buffer, error) {
	dec, err := oggvorbis.NewReader(r)
	if err != nil {
		return nil, fmt.Errorf("parsing vorbis stream: %w", err)
	}

	return decodeAll(dec)
}

func decodeAll(dec oggReader) (*sound.Buffer, error) {
	channels := dec.Channels()
	if channels < 1 {
		return nil, ErrNoChannels
	}
	rate := dec.SampleRate()

	// Read returns interleaved float32 values already in [-1, 1].
	buf := make([]float32, 4096*channels)
	var samples []float64
	for {
		n, err := dec.Read(buf)
		if n > 0 {
			frames := n / channels
			for f := range frames {
				var sum float64
				for c := range channels {
					sum += float64(buf[f*channels+c])
				}
				samples = append(samples, sum/float64(channels))
			}
		}

		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("decoding vorbis data: %w", err)
		}
		if n == 0 {
			break
		}
	}

	return sound.New(samples, rate)
}
