package vorbis

import "errors"

var (
	// ErrNoChannels indicates a stream whose header reports zero
	// channels, which cannot be reduced to mono.
	ErrNoChannels = errors.New("vorbis stream reports no channels")
)
