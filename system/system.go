// Package system holds the emulated machine state: its addressable memory
// and the peripherals registered by the instruction core.
package system

import (
	"errors"
	"fmt"

	"github.com/user-none/estepdad/device"
)

// MemorySize is the size of the flat 16-bit address space.
const MemorySize = 0x10000

// ImageBase is the address a program image is copied to.
const ImageBase = 0x0000

// ErrEmptyImage is returned when loading a zero-length image
var ErrEmptyImage = errors.New("program image is empty")

// ErrImageTooLarge is returned when an image does not fit in memory
var ErrImageTooLarge = errors.New("program image exceeds system memory")

// System is one emulated machine. It is created per loaded image and passed
// explicitly to every component that reads or mutates it.
type System struct {
	Memory  [MemorySize]byte
	Devices device.Registry
	Model   Model
}

// New returns a blank system for the given model.
func New(model Model) *System {
	return &System{Model: model}
}

// LoadImage copies image verbatim to ImageBase.
func (s *System) LoadImage(image []byte) error {
	if len(image) == 0 {
		return ErrEmptyImage
	}
	if ImageBase+len(image) > MemorySize {
		return fmt.Errorf("%w: %d bytes", ErrImageTooLarge, len(image))
	}
	copy(s.Memory[ImageBase:], image)
	return nil
}

// Core is the instruction-execution collaborator. Init prepares the system
// after an image is placed in memory and registers the model's peripherals.
// Step executes one instruction.
type Core interface {
	Init(sys *System) error
	Step(sys *System)
}
