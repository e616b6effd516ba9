package device

import (
	"errors"
	"fmt"
)

// MaxDevices is the registry capacity.
const MaxDevices = 16

// ErrRegistryFull is returned when registering past MaxDevices
var ErrRegistryFull = errors.New("device registry full")

// ErrDuplicateKind is returned when a second peripheral of a kind is registered
var ErrDuplicateKind = errors.New("peripheral kind already registered")

// Registry holds peripherals in registration order.
// The zero value is an empty registry ready for use.
type Registry struct {
	devices []Peripheral
}

// Register appends p. At most one peripheral of each kind is accepted.
func (r *Registry) Register(p Peripheral) error {
	if p == nil || p.Kind() == KindNone {
		return fmt.Errorf("register: invalid peripheral")
	}
	if len(r.devices) >= MaxDevices {
		return ErrRegistryFull
	}
	if _, ok := r.Find(p.Kind()); ok {
		return fmt.Errorf("%w: %s", ErrDuplicateKind, p.Kind())
	}
	r.devices = append(r.devices, p)
	return nil
}

// Find returns the first peripheral of the given kind in registration order.
func (r *Registry) Find(kind Kind) (Peripheral, bool) {
	for _, p := range r.devices {
		if p.Kind() == kind {
			return p, true
		}
	}
	return nil, false
}

// FindFirst walks kinds in priority order and returns the first match.
func (r *Registry) FindFirst(kinds ...Kind) (Peripheral, bool) {
	for _, k := range kinds {
		if p, ok := r.Find(k); ok {
			return p, true
		}
	}
	return nil, false
}

// Len returns the number of registered peripherals.
func (r *Registry) Len() int {
	return len(r.devices)
}

// Kinds returns the registered kinds in registration order.
func (r *Registry) Kinds() []Kind {
	kinds := make([]Kind, len(r.devices))
	for i, p := range r.devices {
		kinds[i] = p.Kind()
	}
	return kinds
}

// Reset removes all peripherals.
func (r *Registry) Reset() {
	r.devices = nil
}
