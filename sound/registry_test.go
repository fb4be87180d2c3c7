package sound

import (
	"errors"
	"testing"
)

// fakeLoader returns a fixed buffer and records the path it was asked
// to load.
type fakeLoader struct {
	buf      *Buffer
	err      error
	lastPath string
}

func (f *fakeLoader) Load(path string) (*Buffer, error) {
	f.lastPath = path
	return f.buf, f.err
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	loader := &fakeLoader{}

	registry.Register("wav", loader)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed to retrieve registered loader")
	}
	if got != Loader(loader) {
		t.Error("Registry.Get() returned different loader instance")
	}
}

func TestRegistry_GetNonExistent(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()

	_, ok := registry.Get("flac")
	if ok {
		t.Error("Registry.Get() returned ok=true for unregistered format")
	}
}

func TestRegistry_Overwrite(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	first := &fakeLoader{}
	second := &fakeLoader{}

	registry.Register("wav", first)
	registry.Register("wav", second)

	got, ok := registry.Get("wav")
	if !ok {
		t.Fatal("Registry.Get() failed after overwrite")
	}
	if got != Loader(second) {
		t.Error("Registry.Get() did not return the overwritten loader")
	}
}

func TestRegistry_Open(t *testing.T) {
	t.Parallel()

	want := &Buffer{Samples: []float64{0.1}, SampleRate: 8000}
	loader := &fakeLoader{buf: want}

	registry := NewRegistry()
	registry.Register("wav", loader)

	tests := []struct {
		name string
		path string
	}{
		{"plain extension", "stimulus.wav"},
		{"upper case extension", "STIMULUS.WAV"},
		{"nested path", "data/p1/stimulus.wav"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := registry.Open(tt.path)
			if err != nil {
				t.Fatalf("Open(%q) error = %v", tt.path, err)
			}
			if got != want {
				t.Error("Open() returned a different buffer than the loader produced")
			}
			if loader.lastPath != tt.path {
				t.Errorf("loader saw path %q, want %q", loader.lastPath, tt.path)
			}
		})
	}
}

func TestRegistry_OpenUnsupported(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	registry.Register("wav", &fakeLoader{})

	_, err := registry.Open("stimulus.flac")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Open() error = %v, want ErrUnsupportedFormat", err)
	}
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	registry := NewRegistry()
	loader := &fakeLoader{}

	done := make(chan bool)
	for range 10 {
		go func() {
			registry.Register("wav", loader)
			done <- true
		}()
	}
	for range 10 {
		go func() {
			_, _ = registry.Get("wav")
			done <- true
		}()
	}
	for range 20 {
		<-done
	}

	got, ok := registry.Get("wav")
	if !ok {
		t.Error("Registry.Get() failed after concurrent operations")
	}
	if got != Loader(loader) {
		t.Error("Registry returned wrong loader after concurrent operations")
	}
}

// BenchmarkRegistry_Get benchmarks retrieving loaders
func BenchmarkRegistry_Get(b *testing.B) {
	registry := NewRegistry()
	registry.Register("wav", &fakeLoader{})

	b.ResetTimer()
	b.ReportAllocs()

	for b.Loop() {
		_, _ = registry.Get("wav")
	}
}
