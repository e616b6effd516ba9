package system

import (
	"fmt"

	"github.com/user-none/estepdad/device"
)

// Model identifies a machine configuration.
type Model int

const (
	// ModelNTR032 is the pedometer handheld: three buttons, 64K EEPROM,
	// LCD and a status LED.
	ModelNTR032 Model = iota
	// ModelSingleButton is a reduced board with one button, 8K EEPROM and LCD.
	ModelSingleButton
)

// String returns the display name of the model.
func (m Model) String() string {
	switch m {
	case ModelNTR032:
		return "NTR-032"
	case ModelSingleButton:
		return "single-button"
	default:
		return "unknown"
	}
}

// Models lists the supported models in display order.
var Models = []Model{ModelNTR032, ModelSingleButton}

// ParseModel returns the model whose String matches name.
func ParseModel(name string) (Model, bool) {
	for _, m := range Models {
		if m.String() == name {
			return m, true
		}
	}
	return ModelNTR032, false
}

// modelDevices lists each model's peripherals in registration order.
var modelDevices = map[Model][]device.Kind{
	ModelNTR032:       {device.Kind3Button, device.KindEEPROM64K, device.KindLCD, device.KindLED},
	ModelSingleButton: {device.Kind1Button, device.KindEEPROM8K, device.KindLCD},
}

// RegisterModelDevices creates and registers the peripherals of s.Model.
// It is the device half of core initialization and is shared by cores.
func RegisterModelDevices(s *System) error {
	kinds, ok := modelDevices[s.Model]
	if !ok {
		return fmt.Errorf("unknown system model %d", int(s.Model))
	}

	s.Devices.Reset()
	for _, kind := range kinds {
		if err := s.Devices.Register(newDevice(kind)); err != nil {
			return fmt.Errorf("failed to register %s: %w", kind, err)
		}
	}
	return nil
}

func newDevice(kind device.Kind) device.Peripheral {
	switch kind {
	case device.Kind3Button:
		return device.NewButtons(3)
	case device.Kind1Button:
		return device.NewButtons(1)
	case device.KindLCD:
		return device.NewLCD()
	case device.KindEEPROM8K, device.KindEEPROM64K:
		return device.NewEEPROM(kind)
	default:
		return &device.LED{}
	}
}
