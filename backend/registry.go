package backend

import (
	"sort"
	"sync"
)

// ExecutorFactory creates a new executor instance.
type ExecutorFactory func() Executor

// registry holds registered executors.
var (
	registryMu sync.RWMutex
	executors  = make(map[string]ExecutorFactory)
)

// Register registers an executor factory with the given name.
// This is typically called from init() functions in executor packages.
// If an executor with the same name is already registered, it will be
// replaced.
func Register(name string, factory ExecutorFactory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	executors[name] = factory
}

// Unregister removes an executor from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(executors, name)
}

// Available returns the registered executor names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(executors))
	for name := range executors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get returns a new executor by name, or ErrBackendNotAvailable.
func Get(name string) (Executor, error) {
	registryMu.RLock()
	factory, ok := executors[name]
	registryMu.RUnlock()

	if !ok {
		return nil, ErrBackendNotAvailable
	}
	return factory(), nil
}

// IsRegistered reports whether an executor with the given name is
// registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := executors[name]
	return ok
}
