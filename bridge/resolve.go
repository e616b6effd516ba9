package bridge

import (
	"github.com/user-none/estepdad/device"
	"github.com/user-none/estepdad/system"
)

// Lookup priority lists. Earlier kinds win.
var (
	buttonKinds = []device.Kind{device.Kind3Button, device.Kind1Button}
	eepromKinds = []device.Kind{device.KindEEPROM64K, device.KindEEPROM8K}
)

func findButtons(sys *system.System) *device.Buttons {
	if p, ok := sys.Devices.FindFirst(buttonKinds...); ok {
		return p.(*device.Buttons)
	}
	return nil
}

func findLCD(sys *system.System) *device.LCD {
	if p, ok := sys.Devices.Find(device.KindLCD); ok {
		return p.(*device.LCD)
	}
	return nil
}

func findEEPROM(sys *system.System) *device.EEPROM {
	if p, ok := sys.Devices.FindFirst(eepromKinds...); ok {
		return p.(*device.EEPROM)
	}
	return nil
}

func findLED(sys *system.System) *device.LED {
	if p, ok := sys.Devices.Find(device.KindLED); ok {
		return p.(*device.LED)
	}
	return nil
}
