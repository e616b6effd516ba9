// Package device models the emulated peripherals as a closed set of
// variants and keeps them in a fixed-capacity registry owned by the
// emulated system.
package device

// Kind is the capability tag of a peripheral.
type Kind int

const (
	KindNone Kind = iota
	Kind3Button
	Kind1Button
	KindLCD
	KindEEPROM8K
	KindEEPROM64K
	KindLED
)

// String returns the display name of the kind.
func (k Kind) String() string {
	switch k {
	case Kind3Button:
		return "3-button input"
	case Kind1Button:
		return "1-button input"
	case KindLCD:
		return "LCD"
	case KindEEPROM8K:
		return "EEPROM (8K)"
	case KindEEPROM64K:
		return "EEPROM (64K)"
	case KindLED:
		return "LED"
	default:
		return "none"
	}
}

// Display geometry and video memory layout of the LCD controller.
const (
	LCDWidth  = 96
	LCDHeight = 64
	LCDPages  = 21
	PageSize  = 0x100
	VRAMSize  = LCDPages * PageSize
)

// EEPROM capacities.
const (
	EEPROM8KSize  = 8 * 1024
	EEPROM64KSize = 64 * 1024
)

// Peripheral is implemented only by the variant types in this package.
type Peripheral interface {
	Kind() Kind
	peripheral()
}

// Buttons is a button pad with a fixed number of boolean latches.
type Buttons struct {
	kind    Kind
	Latches []bool
}

// NewButtons returns a pad with count latches. Counts other than 1 or 3
// are rounded to the nearest supported pad.
func NewButtons(count int) *Buttons {
	if count > 1 {
		return &Buttons{kind: Kind3Button, Latches: make([]bool, 3)}
	}
	return &Buttons{kind: Kind1Button, Latches: make([]bool, 1)}
}

func (b *Buttons) Kind() Kind { return b.kind }
func (b *Buttons) peripheral() {}

// Count returns the number of latches the pad declares.
func (b *Buttons) Count() int {
	return len(b.Latches)
}

// LCD is the display controller's video memory and scroll register.
type LCD struct {
	VRAM      [VRAMSize]byte
	StartLine uint8
}

// NewLCD returns a blank display.
func NewLCD() *LCD {
	return &LCD{}
}

func (l *LCD) Kind() Kind  { return KindLCD }
func (l *LCD) peripheral() {}

// EEPROM is persistent storage. Its contents are opaque to the bridge.
type EEPROM struct {
	kind Kind
	Data []byte
}

// NewEEPROM returns storage of the given kind, which must be KindEEPROM8K
// or KindEEPROM64K. Fresh storage reads as erased (0xFF).
func NewEEPROM(kind Kind) *EEPROM {
	size := EEPROM8KSize
	if kind == KindEEPROM64K {
		size = EEPROM64KSize
	} else {
		kind = KindEEPROM8K
	}
	data := make([]byte, size)
	for i := range data {
		data[i] = 0xFF
	}
	return &EEPROM{kind: kind, Data: data}
}

func (e *EEPROM) Kind() Kind  { return e.kind }
func (e *EEPROM) peripheral() {}

// Size returns the declared capacity in bytes.
func (e *EEPROM) Size() int {
	return len(e.Data)
}

// LED is an indicator. Lit is driven by the core.
type LED struct {
	Lit bool
}

func (l *LED) Kind() Kind  { return KindLED }
func (l *LED) peripheral() {}
