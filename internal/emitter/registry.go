package emitter

import (
	"fmt"
	"sort"
	"sync"
)

// ErrEmitterNotFound is returned when no emitter is registered under a name.
type ErrEmitterNotFound struct {
	Name string
}

func (e ErrEmitterNotFound) Error() string {
	return fmt.Sprintf("emitter '%s' not found in registry\nHint: run 'forgeui frameworks' to list supported targets", e.Name)
}

// ErrDuplicateEmitter is returned when a name is registered twice.
type ErrDuplicateEmitter struct {
	Name string
}

func (e ErrDuplicateEmitter) Error() string {
	return fmt.Sprintf("emitter '%s' already registered", e.Name)
}

// Registry maps framework names to emitters. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	emitters map[string]Emitter
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{emitters: make(map[string]Emitter)}
}

// Register adds e under its Info().Name.
func (r *Registry) Register(e Emitter) error {
	if e == nil {
		return fmt.Errorf("emitter is nil")
	}
	info := e.Info()
	if err := info.Validate(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.emitters[info.Name]; exists {
		return ErrDuplicateEmitter{Name: info.Name}
	}
	r.emitters[info.Name] = e
	return nil
}

// Get returns the emitter registered under name.
func (r *Registry) Get(name string) (Emitter, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	e, ok := r.emitters[name]
	if !ok {
		return nil, ErrEmitterNotFound{Name: name}
	}
	return e, nil
}

// List returns the info of every registered emitter, sorted by name.
func (r *Registry) List() []Info {
	r.mu.RLock()
	defer r.mu.RUnlock()

	infos := make([]Info, 0, len(r.emitters))
	for _, e := range r.emitters {
		infos = append(infos, e.Info())
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Names returns the registered names, sorted.
func (r *Registry) Names() []string {
	infos := r.List()
	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	return names
}
