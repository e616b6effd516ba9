package device

import (
	"errors"
	"testing"
)

func TestRegistry_FindEmpty(t *testing.T) {
	var r Registry
	if _, ok := r.Find(KindLCD); ok {
		t.Error("Find on empty registry reported a match")
	}
	if _, ok := r.FindFirst(Kind3Button, Kind1Button); ok {
		t.Error("FindFirst on empty registry reported a match")
	}
}

func TestRegistry_FindReturnsSameReference(t *testing.T) {
	var r Registry
	lcd := NewLCD()
	if err := r.Register(lcd); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	first, ok := r.Find(KindLCD)
	if !ok {
		t.Fatal("LCD not found")
	}
	second, _ := r.Find(KindLCD)
	if first != second || first.(*LCD) != lcd {
		t.Error("repeated lookups returned different references")
	}
}

func TestRegistry_FindFirstPriority(t *testing.T) {
	testCases := []struct {
		name       string
		registered []Peripheral
		priority   []Kind
		want       Kind
		found      bool
	}{
		{"prefer 3-button", []Peripheral{NewButtons(1), NewButtons(3)}, []Kind{Kind3Button, Kind1Button}, Kind3Button, true},
		{"fall back to 1-button", []Peripheral{NewButtons(1)}, []Kind{Kind3Button, Kind1Button}, Kind1Button, true},
		{"prefer large EEPROM", []Peripheral{NewEEPROM(KindEEPROM8K), NewEEPROM(KindEEPROM64K)}, []Kind{KindEEPROM64K, KindEEPROM8K}, KindEEPROM64K, true},
		{"fall back to small EEPROM", []Peripheral{NewEEPROM(KindEEPROM8K)}, []Kind{KindEEPROM64K, KindEEPROM8K}, KindEEPROM8K, true},
		{"nothing matches", []Peripheral{&LED{}}, []Kind{KindEEPROM64K, KindEEPROM8K}, KindNone, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var r Registry
			for _, p := range tc.registered {
				if err := r.Register(p); err != nil {
					t.Fatalf("Register(%s) failed: %v", p.Kind(), err)
				}
			}
			p, ok := r.FindFirst(tc.priority...)
			if ok != tc.found {
				t.Fatalf("found = %v, want %v", ok, tc.found)
			}
			if ok && p.Kind() != tc.want {
				t.Errorf("kind = %s, want %s", p.Kind(), tc.want)
			}
		})
	}
}

func TestRegistry_DuplicateKind(t *testing.T) {
	var r Registry
	if err := r.Register(NewLCD()); err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	err := r.Register(NewLCD())
	if !errors.Is(err, ErrDuplicateKind) {
		t.Errorf("err = %v, want ErrDuplicateKind", err)
	}
	if r.Len() != 1 {
		t.Errorf("Len() = %d, want 1", r.Len())
	}
}

func TestRegistry_Full(t *testing.T) {
	r := Registry{}
	// Fill with distinct fake slots by bypassing the kind check.
	for i := 0; i < MaxDevices; i++ {
		r.devices = append(r.devices, &LED{})
	}
	if err := r.Register(NewLCD()); !errors.Is(err, ErrRegistryFull) {
		t.Errorf("err = %v, want ErrRegistryFull", err)
	}
}

func TestRegistry_RejectsNil(t *testing.T) {
	var r Registry
	if err := r.Register(nil); err == nil {
		t.Error("expected error registering nil")
	}
}

func TestRegistry_KindsAndReset(t *testing.T) {
	var r Registry
	r.Register(NewButtons(3))
	r.Register(NewLCD())
	r.Register(&LED{})

	kinds := r.Kinds()
	want := []Kind{Kind3Button, KindLCD, KindLED}
	if len(kinds) != len(want) {
		t.Fatalf("len(Kinds()) = %d, want %d", len(kinds), len(want))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Kinds()[%d] = %s, want %s", i, kinds[i], want[i])
		}
	}

	r.Reset()
	if r.Len() != 0 {
		t.Errorf("Len() after Reset = %d, want 0", r.Len())
	}
}

func TestNewButtons(t *testing.T) {
	testCases := []struct {
		count     int
		wantKind  Kind
		wantCount int
	}{
		{0, Kind1Button, 1},
		{1, Kind1Button, 1},
		{3, Kind3Button, 3},
		{5, Kind3Button, 3},
	}
	for _, tc := range testCases {
		b := NewButtons(tc.count)
		if b.Kind() != tc.wantKind || b.Count() != tc.wantCount {
			t.Errorf("NewButtons(%d) = (%s, %d), want (%s, %d)",
				tc.count, b.Kind(), b.Count(), tc.wantKind, tc.wantCount)
		}
	}
}

func TestNewEEPROM(t *testing.T) {
	small := NewEEPROM(KindEEPROM8K)
	if small.Size() != 8192 || small.Kind() != KindEEPROM8K {
		t.Errorf("small EEPROM = (%s, %d), want (EEPROM (8K), 8192)", small.Kind(), small.Size())
	}
	large := NewEEPROM(KindEEPROM64K)
	if large.Size() != 65536 || large.Kind() != KindEEPROM64K {
		t.Errorf("large EEPROM = (%s, %d), want (EEPROM (64K), 65536)", large.Kind(), large.Size())
	}
	if large.Data[0] != 0xFF || large.Data[len(large.Data)-1] != 0xFF {
		t.Error("fresh EEPROM should read as erased")
	}
}

func TestVRAMSize(t *testing.T) {
	if VRAMSize != 5376 {
		t.Errorf("VRAMSize = %d, want 5376", VRAMSize)
	}
}
