// SPDX-License-Identifier: EPL-2.0

package sound

import (
	"fmt"
	"path/filepath"
	"strings"
	"sync"
)

// Loader decodes an audio file into a mono buffer.
type Loader interface {
	Load(path string) (*Buffer, error)
}

// LoaderFunc adapts a plain function to the Loader interface.
type LoaderFunc func(path string) (*Buffer, error)

func (f LoaderFunc) Load(path string) (*Buffer, error) { return f(path) }

// Registry maps file extensions (lower case, without the dot) to
// loaders.
type Registry struct {
	loaders map[string]Loader

	mtx *sync.Mutex
}

func NewRegistry() *Registry {
	return &Registry{
		loaders: make(map[string]Loader),
		mtx:     &sync.Mutex{},
	}
}

func (r *Registry) Register(ext string, l Loader) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	r.loaders[ext] = l
}

func (r *Registry) Get(ext string) (Loader, bool) {
	r.mtx.Lock()
	defer r.mtx.Unlock()

	l, ok := r.loaders[ext]
	return l, ok
}

// Open loads the file at path using the loader registered for its
// extension.
func (r *Registry) Open(path string) (*Buffer, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")

	l, ok := r.Get(ext)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	return l.Load(path)
}
