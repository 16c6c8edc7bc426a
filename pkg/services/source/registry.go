package source

import (
	"fmt"
	"sync"

	"github.com/epi-tools/covid-atlas/pkg/store/dataset"
)

// StoreFactory creates a dataset store from a profile config path.
type StoreFactory func(configPath string) (dataset.Store, error)

// Registry manages dataset source factories keyed by format.
type Registry interface {
	// Register adds a new source factory
	Register(format string, factory StoreFactory) error
	// Create instantiates a dataset store for the format using the provided config
	Create(format, configPath string) (dataset.Store, error)
	// ListFormats returns the registered formats
	ListFormats() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]StoreFactory
}

// NewRegistry creates a registry pre-seeded with the given factories.
func NewRegistry(factories map[string]StoreFactory) Registry {
	r := &registry{factories: make(map[string]StoreFactory)}
	for format, factory := range factories {
		r.factories[format] = factory
	}
	return r
}

func (r *registry) Register(format string, factory StoreFactory) error {
	if format == "" {
		return fmt.Errorf("format name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[format]; exists {
		return fmt.Errorf("format %q is already registered", format)
	}

	r.factories[format] = factory
	return nil
}

func (r *registry) Create(format, configPath string) (dataset.Store, error) {
	r.mu.RLock()
	factory, exists := r.factories[format]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("format %q is not registered", format)
	}

	return factory(configPath)
}

func (r *registry) ListFormats() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	formats := make([]string, 0, len(r.factories))
	for format := range r.factories {
		formats = append(formats, format)
	}
	return formats
}
