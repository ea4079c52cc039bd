package cssvariant

import (
	"errors"
	"fmt"
	"sync"
)

var (
	// ErrPartConflict is returned when a part name is already attached to a
	// different reference. The first reference is kept.
	ErrPartConflict = errors.New("part name already attached")

	// ErrSealed is returned by Attach after Seal.
	ErrSealed = errors.New("registry is sealed")
)

// Registry records named parts of parent components, so callers can reach
// Card's "Header" through Card. Attach at init, Seal, then only read.
type Registry[T comparable] struct {
	mu     sync.RWMutex
	parts  map[T]*partSet[T]
	sealed bool
}

type partSet[T comparable] struct {
	names []string
	refs  map[string]T
}

// NewRegistry returns an empty registry.
func NewRegistry[T comparable]() *Registry[T] {
	return &Registry[T]{parts: make(map[T]*partSet[T])}
}

// Attach records part under name on parent. Attaching the same reference
// again is a no-op.
func (r *Registry[T]) Attach(parent T, name string, part T) error {
	if name == "" {
		return errors.New("part name is empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.sealed {
		return fmt.Errorf("attach %q: %w", name, ErrSealed)
	}

	set, ok := r.parts[parent]
	if !ok {
		set = &partSet[T]{refs: make(map[string]T)}
		r.parts[parent] = set
	}

	if existing, ok := set.refs[name]; ok {
		if existing == part {
			return nil
		}
		logger().Warn().
			Str("part", name).
			Msg("part already attached to a different component, keeping the first")
		assertf("part %q attached twice with different references", name)
		return fmt.Errorf("attach %q: %w", name, ErrPartConflict)
	}

	set.refs[name] = part
	set.names = append(set.names, name)
	return nil
}

// Seal rejects further attachments.
func (r *Registry[T]) Seal() {
	r.mu.Lock()
	r.sealed = true
	r.mu.Unlock()
}

// Sealed reports whether Seal was called.
func (r *Registry[T]) Sealed() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.sealed
}

// Part returns the part attached under name.
func (r *Registry[T]) Part(parent T, name string) (T, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var zero T
	set, ok := r.parts[parent]
	if !ok {
		return zero, false
	}
	part, ok := set.refs[name]
	return part, ok
}

// MustPart is like Part but panics when the part is missing.
func (r *Registry[T]) MustPart(parent T, name string) T {
	part, ok := r.Part(parent, name)
	if !ok {
		panic(fmt.Sprintf("cssvariant: no part %q attached", name))
	}
	return part
}

// Parts returns the part names of parent in attach order.
func (r *Registry[T]) Parts(parent T) []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	set, ok := r.parts[parent]
	if !ok {
		return nil
	}
	return append([]string(nil), set.names...)
}
