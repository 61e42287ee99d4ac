// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package native

import (
	"errors"
	"sync"
)

// Backend names.
const (
	BackendRaylib = "raylib"
	BackendFake   = "fake"
)

// ErrNotAvailable is returned when no native library is registered.
var ErrNotAvailable = errors.New("native: library not available")

// Factory creates a Library instance.
type Factory func() Library

// registry holds registered libraries.
var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for library selection (first available wins).
	priority = []string{BackendRaylib, BackendFake}
)

// Register registers a library factory with the given name.
// This is typically called from init() functions in backend packages.
// If a library with the same name is already registered, it is replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = factory
}

// Unregister removes a library from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered library names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a library with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := factories[name]
	return ok
}

// Get returns a library instance by name.
// Returns nil if the library is not registered.
func Get(name string) Library {
	registryMu.RLock()
	defer registryMu.RUnlock()

	factory, ok := factories[name]
	if !ok {
		return nil
	}
	return factory()
}

// Default returns the best available library based on priority.
// Returns ErrNotAvailable if nothing is registered.
func Default() (Library, error) {
	registryMu.RLock()
	defer registryMu.RUnlock()

	for _, name := range priority {
		if factory, ok := factories[name]; ok {
			if l := factory(); l != nil {
				return l, nil
			}
		}
	}

	// Fallback: first available
	for _, factory := range factories {
		if l := factory(); l != nil {
			return l, nil
		}
	}

	return nil, ErrNotAvailable
}
