package zenkaku

import (
	"context"
	"sort"
	"sync"
)

var (
	registry   = make(map[string]Codec)
	registryMu sync.RWMutex
)

// Register adds c to the registry, replacing any codec with the same
// name. Provider packages call it from init; later registrations win.
func Register(c Codec) {
	registryMu.Lock()
	registry[c.Name()] = c
	registryMu.Unlock()

	emitRegistered(context.Background(), c.Name())
}

// Get returns the codec registered under name. The lookup is exact and
// case-sensitive.
func Get(name string) (Codec, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	c, ok := registry[name]
	return c, ok
}

// Lookup is Get with an error suited to user-facing validation: an
// absent name yields an error wrapping ErrUnknownVariant.
func Lookup(name string) (Codec, error) {
	c, ok := Get(name)
	if !ok {
		return nil, newVariantError(ErrUnknownVariant, name, "")
	}
	return c, nil
}

// Names returns the registered variant names in lexicographic order.
// The order is stable across calls within one process.
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

// Reset clears the codec registry.
// This is primarily useful for test isolation.
func Reset() {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry = make(map[string]Codec)
}
