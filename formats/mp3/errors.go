package mp3

import "errors"

var (
	// ErrEmptyStream indicates an MP3 stream that decoded to no samples.
	ErrEmptyStream = errors.New("mp3 stream contains no samples")
)
