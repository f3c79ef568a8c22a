package design

import (
	"errors"
	"fmt"
	"log/slog"
	"sort"
)

// ErrNotFound reports a module name with no registered design.
var ErrNotFound = errors.New("design module not found")

// Registry holds the design modules known to one program.
type Registry struct {
	modules map[string]*Module
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{modules: make(map[string]*Module)}
}

// Register adds a module. A duplicate or malformed name is a programming
// error and panics.
func (r *Registry) Register(m Module) {
	if err := ValidateName(m.Name); err != nil {
		panic(fmt.Sprintf("design module %q: %v", m.Name, err))
	}
	if _, exists := r.modules[m.Name]; exists {
		panic(fmt.Sprintf("design module with name '%s' already registered", m.Name))
	}
	slog.Debug("Registering design module.", "name", m.Name)
	r.modules[m.Name] = &m
}

// Lookup validates name, finds the module and checks its contract.
func (r *Registry) Lookup(name string) (*Module, error) {
	if err := ValidateName(name); err != nil {
		return nil, err
	}
	m, ok := r.modules[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	if err := Check(m); err != nil {
		return nil, err
	}
	return m, nil
}

// Names returns the registered module names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.modules))
	for name := range r.modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultRegistry = NewRegistry()

// Default returns the registry design packages register into.
func Default() *Registry {
	return defaultRegistry
}

// Register adds m to the default registry.
func Register(m Module) {
	defaultRegistry.Register(m)
}

// Lookup finds name in the default registry.
func Lookup(name string) (*Module, error) {
	return defaultRegistry.Lookup(name)
}
