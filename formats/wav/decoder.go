package wav

import (
	"fmt"
	"io"
	"os"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/zhanglipku/stimgen/sound"
)

// Load reads a PCM WAV file and returns it as a mono buffer.
func Load(path string) (*sound.Buffer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a PCM WAV stream into a mono buffer. Multi-channel
// audio is downmixed by averaging the channels; samples are normalized
// to [-1, 1] according to the source bit depth.
func Decode(r io.ReadSeeker) (*sound.Buffer, error) {
	dec := gowav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, ErrNotWAVFile
	}
	if err := dec.FwdToPCM(); err != nil {
		return nil, fmt.Errorf("seeking PCM data: %w", err)
	}

	channels := int(dec.NumChans)
	if channels < 1 {
		return nil, ErrNoChannels
	}
	rate := int(dec.SampleRate)
	if rate <= 0 {
		return nil, ErrNotWAVFile
	}

	bitDepth := int(dec.BitDepth)
	maxVal := float64(goaudio.IntMaxSignedValue(bitDepth))
	if maxVal == 0 {
		return nil, fmt.Errorf("%w: %d", ErrUnsupportedBitDepth, bitDepth)
	}

	intBuf := &goaudio.IntBuffer{
		Data: make([]int, 4096*channels),
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  rate,
		},
	}

	var samples []float64
	for {
		n, err := dec.PCMBuffer(intBuf)
		if err != nil && err != io.EOF {
			return nil, fmt.Errorf("reading PCM data: %w", err)
		}
		if n == 0 {
			break
		}

		frames := n / channels
		for f := range frames {
			var sum float64
			for c := range channels {
				sum += float64(intBuf.Data[f*channels+c])
			}
			samples = append(samples, sum/(float64(channels)*maxVal))
		}

		if err == io.EOF {
			break
		}
	}

	return sound.New(samples, rate)
}
