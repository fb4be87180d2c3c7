package wav

import "errors"

var (
	// ErrNotWAVFile indicates the input is not a recognized PCM WAV file.
	ErrNotWAVFile = errors.New("not a PCM WAV file")

	// ErrNoChannels indicates a WAV file whose header reports zero
	// channels, which cannot be reduced to mono.
	ErrNoChannels = errors.New("WAV file reports no channels")

	// ErrUnsupportedBitDepth indicates a PCM bit depth the decoder
	// cannot normalize.
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
