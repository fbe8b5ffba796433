// Package csync holds small concurrency-safe containers.
package csync

import (
	"iter"
	"maps"
	"slices"
	"sync"
)

// Map is a map guarded by a RWMutex.
type Map[K comparable, V any] struct {
	inner map[K]V
	mu    sync.RWMutex
}

func NewMap[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{inner: make(map[K]V)}
}

// Set stores value under key.
func (m *Map[K, V]) Set(key K, value V) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.inner[key] = value
}

// Swap stores value under key and returns the value it replaced.
func (m *Map[K, V]) Swap(key K, value V) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	prev, ok := m.inner[key]
	m.inner[key] = value
	return prev, ok
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.inner[key]
	return v, ok
}

func (m *Map[K, V]) Del(key K) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.inner, key)
}

// Take gets an item and then deletes it.
func (m *Map[K, V]) Take(key K) (V, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.inner[key]
	delete(m.inner, key)
	return v, ok
}

func (m *Map[K, V]) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.inner)
}

// Seq2 iterates over a snapshot, so callers may mutate the map while
// ranging.
func (m *Map[K, V]) Seq2() iter.Seq2[K, V] {
	m.mu.RLock()
	dst := maps.Clone(m.inner)
	m.mu.RUnlock()
	return maps.All(dst)
}

// Drain removes every entry and returns them sorted by key.
func Drain[K interface{ ~string | ~int }, V any](m *Map[K, V]) []V {
	m.mu.Lock()
	inner := m.inner
	m.inner = make(map[K]V)
	m.mu.Unlock()

	out := make([]V, 0, len(inner))
	for _, k := range slices.Sorted(maps.Keys(inner)) {
		out = append(out, inner[k])
	}
	return out
}
