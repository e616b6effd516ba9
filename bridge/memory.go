package bridge

import (
	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/system"
)

// ResolveRegion returns the live memory backing kind, or nil when nothing
// backs it. The returned slice aliases emulator memory; its length is the
// region size. Every call resolves through the registry.
func ResolveRegion(sys *system.System, kind emucore.MemoryKind) []byte {
	if sys == nil {
		return nil
	}

	switch kind {
	case emucore.MemorySystemRAM:
		return sys.Memory[:]
	case emucore.MemorySaveRAM:
		if ee := findEEPROM(sys); ee != nil {
			return ee.Data
		}
	case emucore.MemoryVideoRAM:
		if l := findLCD(sys); l != nil {
			return l.VRAM[:]
		}
	}
	return nil
}
