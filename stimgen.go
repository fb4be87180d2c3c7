package stimgen

import (
	"github.com/zhanglipku/stimgen/formats/aiff"
	"github.com/zhanglipku/stimgen/formats/mp3"
	"github.com/zhanglipku/stimgen/formats/vorbis"
	"github.com/zhanglipku/stimgen/formats/wav"
	"github.com/zhanglipku/stimgen/sound"
)

// DefaultRegistry returns a registry with every built-in decoder
// registered under its usual file extensions.
func DefaultRegistry() *sound.Registry {
	reg := sound.NewRegistry()
	reg.Register("wav", sound.LoaderFunc(wav.Load))
	reg.Register("mp3", sound.LoaderFunc(mp3.Load))
	reg.Register("ogg", sound.LoaderFunc(vorbis.Load))
	reg.Register("aiff", sound.LoaderFunc(aiff.Load))
	reg.Register("aif", sound.LoaderFunc(aiff.Load))
	return reg
}

var defaultRegistry = DefaultRegistry()

// Open decodes the file at path into a mono buffer, picking the decoder
// from the file extension. It is shorthand for DefaultRegistry().Open(path).
func Open(path string) (*sound.Buffer, error) {
	return defaultRegistry.Open(path)
}
