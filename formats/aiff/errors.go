package aiff

import "errors"

var (
	// ErrNotAIFFFile indicates the input is not a valid AIFF file.
	ErrNotAIFFFile = errors.New("not an AIFF file")

	// ErrNoChannels indicates an AIFF file whose header reports zero
	// channels, which cannot be reduced to mono.
	ErrNoChannels = errors.New("AIFF file reports no channels")

	// ErrUnsupportedBitDepth indicates a PCM bit depth the decoder
	// cannot normalize.
	ErrUnsupportedBitDepth = errors.New("unsupported PCM bit depth")
)
