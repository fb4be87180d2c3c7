package experiment

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/zhanglipku/stimgen/sound"
)

// Library maps condition labels to reference buffers, each normalized
// to the standard presentation level at load time so the synthesizer
// never renormalizes references per trial.
//
// A Library is built once at session start and read-only afterwards.
type Library struct {
	conditions map[string]*sound.Buffer
	labels     []string
}

// LoadLibrary decodes each labeled path through reg, normalizes it to
// standardDB and returns the resulting library. Any decode or
// normalization failure aborts the load.
func LoadLibrary(reg *sound.Registry, paths map[string]string, standardDB float64) (*Library, error) {
	if len(paths) == 0 {
		return nil, ErrEmptyLibrary
	}

	conditions := make(map[string]*sound.Buffer, len(paths))
	for label, path := range paths {
		buf, err := reg.Open(path)
		if err != nil {
			return nil, fmt.Errorf("loading condition %q: %w", label, err)
		}
		norm, err := sound.ScaleTo(buf, standardDB)
		if err != nil {
			return nil, fmt.Errorf("normalizing condition %q: %w", label, err)
		}
		conditions[label] = norm
	}

	return NewLibrary(conditions, standardDB)
}

// NewLibrary builds a library from already-loaded buffers, normalizing
// each to standardDB.
func NewLibrary(conditions map[string]*sound.Buffer, standardDB float64) (*Library, error) {
	if len(conditions) == 0 {
		return nil, ErrEmptyLibrary
	}

	lib := &Library{
		conditions: make(map[string]*sound.Buffer, len(conditions)),
		labels:     make([]string, 0, len(conditions)),
	}
	for label, buf := range conditions {
		norm, err := sound.ScaleTo(buf, standardDB)
		if err != nil {
			return nil, fmt.Errorf("normalizing condition %q: %w", label, err)
		}
		lib.conditions[label] = norm
		lib.labels = append(lib.labels, label)
	}

	// Sorted labels make Pick deterministic for a given seed.
	sort.Strings(lib.labels)

	return lib, nil
}

// Get returns the normalized reference for label.
func (l *Library) Get(label string) (*sound.Buffer, bool) {
	buf, ok := l.conditions[label]
	return buf, ok
}

// Labels returns the condition labels in sorted order. The returned
// slice is a copy.
func (l *Library) Labels() []string {
	labels := make([]string, len(l.labels))
	copy(labels, l.labels)
	return labels
}

// Len returns the number of conditions.
func (l *Library) Len() int { return len(l.labels) }

// Pick returns a uniformly chosen condition label using rng. With a
// seeded generator the sequence of picks is reproducible.
func (l *Library) Pick(rng *rand.Rand) string {
	return l.labels[rng.Intn(len(l.labels))]
}
