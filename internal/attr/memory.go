// memory.go provides an in-process Accessor for tests.
//
// Paths must be registered with Touch before attributes can be set on them,
// mirroring the filesystem's requirement that the path exists.

package attr

import (
	"fmt"
	"io/fs"
	"sync"
)

// Memory is an Accessor backed by a map.
type Memory struct {
	name   string
	mu     sync.Mutex
	paths  map[string]bool
	values map[string][]byte
}

var _ Accessor = (*Memory)(nil)

// NewMemory returns an empty in-memory accessor.
func NewMemory(name string) *Memory {
	if name == "" {
		name = DefaultName
	}
	return &Memory{
		name:   name,
		paths:  make(map[string]bool),
		values: make(map[string][]byte),
	}
}

// Name returns the attribute name.
func (m *Memory) Name() string { return m.name }

// Touch marks paths as existing.
func (m *Memory) Touch(paths ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range paths {
		m.paths[p] = true
	}
}

// Get returns the stored value for path.
func (m *Memory) Get(path string) ([]byte, bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.paths[path] {
		return nil, false, m.notExist("get", path)
	}
	v, ok := m.values[path]
	if !ok {
		return nil, false, nil
	}
	return append([]byte(nil), v...), true, nil
}

// Set stores value for path.
func (m *Memory) Set(path string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.paths[path] {
		return m.notExist("set", path)
	}
	m.values[path] = append([]byte(nil), value...)
	return nil
}

// Remove deletes the value for path.
func (m *Memory) Remove(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.paths[path] {
		return m.notExist("remove", path)
	}
	if _, ok := m.values[path]; !ok {
		return fmt.Errorf("remove %s on %s: %w", m.name, path, ErrNotSet)
	}
	delete(m.values, path)
	return nil
}

func (m *Memory) notExist(op, path string) error {
	return fmt.Errorf("%s %s on %s: %w", op, m.name, path, fs.ErrNotExist)
}
