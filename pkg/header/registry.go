package header

import (
	"fmt"
	"sort"
	"sync"
)

// Constructor returns a fresh header holding its schema defaults.
type Constructor func() Header

type entry struct {
	schema *Schema
	ctor   Constructor
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]entry)
)

// Register makes a schema available by name to New and Lookup. A nil
// constructor builds *Raw instances. Register panics if the name is taken.
func Register(s *Schema, ctor Constructor) {
	if s == nil {
		panic("header: Register schema is nil")
	}
	if ctor == nil {
		ctor = func() Header { return NewRaw(s) }
	}

	registryMu.Lock()
	defer registryMu.Unlock()
	if _, dup := registry[s.name]; dup {
		panic("header: Register called twice for schema " + s.name)
	}
	registry[s.name] = entry{schema: s, ctor: ctor}
}

// Lookup returns the registered schema with the given name.
func Lookup(name string) (*Schema, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	e, ok := registry[name]
	return e.schema, ok
}

// New builds a default instance of the named schema.
func New(name string) (Header, error) {
	registryMu.RLock()
	e, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownSchema, name)
	}
	return e.ctor(), nil
}

// Names returns the registered schema names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
