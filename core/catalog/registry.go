// Package catalog - Registry of runnable pattern demonstrations
package catalog

import (
	"fmt"
	"sort"
	"sync"

	"pattern-catalog/core/ui"
	"pattern-catalog/internal/errors"
)

// Category groups patterns the usual way
type Category string

const (
	Creational Category = "creational"
	Structural Category = "structural"
	Behavioral Category = "behavioral"
)

// Demo is one runnable demonstration
type Demo struct {
	Name     string   `json:"name" yaml:"name"`
	Category Category `json:"category" yaml:"category"`
	Summary  string   `json:"summary" yaml:"summary"`

	Run func(w *ui.Writer) error `json:"-" yaml:"-"`
}

// Registry manages demo registration and lookup
type Registry struct {
	mu    sync.RWMutex
	demos map[string]Demo
	order []string // registration order
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		demos: make(map[string]Demo),
		order: make([]string, 0),
	}
}

// Register adds a demo
func (r *Registry) Register(d Demo) error {
	if d.Name == "" || d.Run == nil {
		return errors.Input("demo needs a name and a run function")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.demos[d.Name]; exists {
		return errors.Newf(errors.TypeInput, "demo already registered: %s", d.Name)
	}

	r.demos[d.Name] = d
	r.order = append(r.order, d.Name)
	return nil
}

// Get returns a demo by name
func (r *Registry) Get(name string) (Demo, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.demos[name]
	if !ok {
		return Demo{}, errors.NotFound("demo", name)
	}
	return d, nil
}

// All returns all demos in registration order
func (r *Registry) All() []Demo {
	r.mu.RLock()
	defer r.mu.RUnlock()

	demos := make([]Demo, 0, len(r.order))
	for _, name := range r.order {
		demos = append(demos, r.demos[name])
	}
	return demos
}

// Names returns the registered names sorted alphabetically
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := append([]string(nil), r.order...)
	sort.Strings(names)
	return names
}

// Run runs the named demos, or every demo when names is empty. It stops at
// the first failure.
func (r *Registry) Run(w *ui.Writer, names ...string) error {
	var demos []Demo
	if len(names) == 0 {
		demos = r.All()
	} else {
		for _, name := range names {
			d, err := r.Get(name)
			if err != nil {
				return err
			}
			demos = append(demos, d)
		}
	}

	for _, d := range demos {
		w.Header(fmt.Sprintf("%s (%s)", d.Name, d.Category))
		if err := d.Run(w); err != nil {
			return fmt.Errorf("demo %s: %w", d.Name, err)
		}
	}
	return nil
}

// Global default registry
var defaultRegistry = NewRegistry()

// Register adds a demo to the default registry
func Register(d Demo) error {
	return defaultRegistry.Register(d)
}

// GetDefault returns the default registry
func GetDefault() *Registry {
	return defaultRegistry
}
