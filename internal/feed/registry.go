package feed

import (
	"fmt"

	"Pindexa/internal/ports"
)

// Registry keeps a mapping from source names to their implementations.
type Registry struct {
	sources map[string]ports.FeedSource
}

// NewRegistry builds an empty registry.
func NewRegistry() *Registry {
	return &Registry{sources: map[string]ports.FeedSource{}}
}

// Register adds or replaces a source implementation.
func (r *Registry) Register(source ports.FeedSource) {
	if r.sources == nil {
		r.sources = map[string]ports.FeedSource{}
	}
	r.sources[source.Name()] = source
}

// Resolve returns a source by name or an error if it is absent.
func (r *Registry) Resolve(name string) (ports.FeedSource, error) {
	if source, ok := r.sources[name]; ok {
		return source, nil
	}
	return nil, fmt.Errorf("feed source %s is not registered", name)
}
