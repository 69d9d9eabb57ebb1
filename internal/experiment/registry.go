package experiment

import (
	"fmt"
	"sort"
	"time"

	"github.com/san-kum/mazegen/internal/generator"
)

// Registry maps index-source names to constructors.
type Registry struct {
	sources map[string]func(seed int64) generator.IndexSource
}

func NewRegistry() *Registry {
	r := &Registry{
		sources: make(map[string]func(int64) generator.IndexSource),
	}

	r.sources["seeded"] = func(seed int64) generator.IndexSource { return generator.NewSeeded(seed) }
	r.sources["first"] = func(int64) generator.IndexSource { return generator.FirstIndex{} }
	r.sources["time"] = func(int64) generator.IndexSource { return generator.NewSeeded(time.Now().UnixNano()) }

	return r
}

func (r *Registry) GetSource(name string, seed int64) (generator.IndexSource, error) {
	fn, ok := r.sources[name]
	if !ok {
		return nil, fmt.Errorf("unknown source: %s (available: %v)", name, r.ListSources())
	}
	return fn(seed), nil
}

func (r *Registry) ListSources() []string {
	names := make([]string, 0, len(r.sources))
	for name := range r.sources {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
