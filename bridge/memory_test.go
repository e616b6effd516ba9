package bridge

import (
	"testing"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/device"
	"github.com/user-none/estepdad/system"
)

func newSystem(t *testing.T, devices ...device.Peripheral) *system.System {
	t.Helper()
	sys := system.New(system.ModelNTR032)
	for _, p := range devices {
		if err := sys.Devices.Register(p); err != nil {
			t.Fatalf("Register(%s) failed: %v", p.Kind(), err)
		}
	}
	return sys
}

func TestResolveRegion_NilSystem(t *testing.T) {
	for _, kind := range []emucore.MemoryKind{emucore.MemorySystemRAM, emucore.MemorySaveRAM, emucore.MemoryVideoRAM} {
		if r := ResolveRegion(nil, kind); r != nil {
			t.Errorf("ResolveRegion(nil, %s) = %d bytes, want nil", kind, len(r))
		}
	}
}

// TestResolveRegion_SystemRAM verifies system RAM is always the full 64 KiB
func TestResolveRegion_SystemRAM(t *testing.T) {
	sys := newSystem(t)
	r := ResolveRegion(sys, emucore.MemorySystemRAM)
	if len(r) != 65536 {
		t.Fatalf("len = %d, want 65536", len(r))
	}
	r[0x1234] = 0xAB
	if sys.Memory[0x1234] != 0xAB {
		t.Error("region does not alias system memory")
	}
}

func TestResolveRegion_SaveRAM(t *testing.T) {
	small := device.NewEEPROM(device.KindEEPROM8K)
	large := device.NewEEPROM(device.KindEEPROM64K)

	testCases := []struct {
		name    string
		devices []device.Peripheral
		want    *device.EEPROM
		size    int
	}{
		{"absent", []device.Peripheral{device.NewLCD()}, nil, 0},
		{"small only", []device.Peripheral{small}, small, 8192},
		{"large only", []device.Peripheral{large}, large, 65536},
		{"large preferred", []device.Peripheral{small, large}, large, 65536},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			sys := newSystem(t, tc.devices...)
			r := ResolveRegion(sys, emucore.MemorySaveRAM)
			if len(r) != tc.size {
				t.Fatalf("len = %d, want %d", len(r), tc.size)
			}
			if tc.want == nil {
				if r != nil {
					t.Error("want nil region")
				}
				return
			}
			if &r[0] != &tc.want.Data[0] {
				t.Error("region does not alias the preferred EEPROM")
			}
		})
	}
}

func TestResolveRegion_VideoRAM(t *testing.T) {
	if r := ResolveRegion(newSystem(t), emucore.MemoryVideoRAM); r != nil {
		t.Error("want nil without an LCD")
	}

	l := device.NewLCD()
	r := ResolveRegion(newSystem(t, l), emucore.MemoryVideoRAM)
	if len(r) != device.VRAMSize {
		t.Fatalf("len = %d, want %d", len(r), device.VRAMSize)
	}
	r[7] = 0x55
	if l.VRAM[7] != 0x55 {
		t.Error("region does not alias VRAM")
	}
}

func TestResolveRegion_UnknownKind(t *testing.T) {
	sys := newSystem(t, device.NewLCD(), device.NewEEPROM(device.KindEEPROM8K))
	if r := ResolveRegion(sys, emucore.MemoryKind(1)); r != nil {
		t.Error("want nil for unknown kind")
	}
}
