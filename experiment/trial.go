package experiment

import "github.com/zhanglipku/stimgen/sound"

// Trial identifies where one trial's stimulus is written. It is
// supplied fresh by the host each trial and not retained.
type Trial struct {
	// BaseName prefixes the output file, typically a participant or
	// staircase identifier.
	BaseName string

	// Index is the non-negative trial counter within BaseName. The
	// host keeps it unique; distinct indices never collide.
	Index int
}

// Result is what one trial's synthesis produced. The caller owns it and
// may discard it after the stimulus has been played.
type Result struct {
	// Path is the saved stimulus file.
	Path string

	// Condition is the label of the reference that was masked.
	Condition string

	// Buffer holds the saved samples at the playback rate.
	Buffer *sound.Buffer

	// Clipped reports whether renormalization pushed samples outside
	// the codec's representable range. Non-fatal; the file was still
	// written.
	Clipped bool
}
