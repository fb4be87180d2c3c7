package aiff

import (
	"fmt"
	"io"
	"os"

	goaiff "github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"

	"github.com/zhanglipku/stimgen/sound"
)

// Load reads an AIFF file and returns it as a mono buffer.
func Load(path string) (*sound.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses an AIFF stream into a mono buffer. Multi-channel audio
// is downmixed by averaging the channels.
func Decode(r io.ReadSeeker) (*sound.Buffer, error) {
	dec := goaiff.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotAIFFFile
	}

	intBuf, err := dec.FullPCMBuffer()
	if err != nil && err != io.EOF {
		return nil, fmt.Errorf("reading PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, ErrNoChannels
	}
	rate := int(dec.SampleRate)
	if rate <= 0 {
		return nil, ErrNotAIFFFile
	}

	bitDepth := int(dec.BitDepth)
	maxVal := float64(goaudio.IntMaxSignedValue(bitDepth))
	if maxVal == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	frames := len(intBuf.Data) / channels
	samples := make([]float64, 0, frames)
	for f := range frames {
		var sum float64
		for c := range channels {
			sum += float64(intBuf.Data[f*channels+c])
		}
		samples = append(samples, sum/(float64(channels)*maxVal))
	}

	return sound.New(samples, rate)
}
