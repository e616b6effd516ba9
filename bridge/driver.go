package bridge

import (
	"errors"
	"fmt"
	"log"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/device"
	"github.com/user-none/estepdad/lcd"
	"github.com/user-none/estepdad/system"
)

// DefaultStepsPerFrame approximates real-time execution at 60 frames per
// second without measuring wall-clock time.
const DefaultStepsPerFrame = 2000

// ErrAlreadyLoaded is returned when loading while an image is loaded
var ErrAlreadyLoaded = errors.New("an image is already loaded")

// ErrSerializeUnsupported is returned by Serialize and Deserialize
var ErrSerializeUnsupported = errors.New("save states are not supported")

// Config tunes the Frame Driver.
type Config struct {
	StepsPerFrame int
	Model         system.Model
}

// DefaultConfig returns the configuration frontends start from.
func DefaultConfig() Config {
	return Config{
		StepsPerFrame: DefaultStepsPerFrame,
		Model:         system.ModelNTR032,
	}
}

// Driver runs one emulated system for a host. It is Unloaded until Load
// succeeds and returns to Unloaded on Unload. It is not safe for
// concurrent use; the host calls it from its frame loop.
type Driver struct {
	core system.Core
	host Host
	cfg  Config

	sys *system.System

	// Resolved once at load; nil when the image lacks the peripheral.
	buttons *device.Buttons
	screen  *device.LCD
	eeprom  *device.EEPROM
	led     *device.LED

	ledKnown bool
	ledOn    bool

	frame  lcd.Frame
	frames uint64
}

// NewDriver returns an Unloaded driver.
func NewDriver(core system.Core, host Host, cfg Config) *Driver {
	d := &Driver{core: core, host: host, cfg: cfg}
	d.SetStepsPerFrame(cfg.StepsPerFrame)
	return d
}

// Load places image in a fresh system, initializes the core and resolves
// peripherals. On error the driver stays Unloaded.
func (d *Driver) Load(image []byte) error {
	if d.sys != nil {
		return ErrAlreadyLoaded
	}

	sys := system.New(d.cfg.Model)
	if err := sys.LoadImage(image); err != nil {
		return err
	}
	if err := d.core.Init(sys); err != nil {
		return fmt.Errorf("core init failed: %w", err)
	}

	d.sys = sys
	d.buttons = findButtons(sys)
	d.screen = findLCD(sys)
	d.eeprom = findEEPROM(sys)
	d.led = findLED(sys)
	d.ledKnown = false
	d.frames = 0

	if d.screen == nil {
		log.Printf("Warning: no LCD peripheral, frames will not be presented")
	}
	if d.buttons == nil {
		log.Printf("Warning: no button peripheral, input is ignored")
	}
	return nil
}

// Unload drops the system and every cached peripheral reference.
// Save data must be read through Region before calling it.
func (d *Driver) Unload() {
	d.sys = nil
	d.buttons = nil
	d.screen = nil
	d.eeprom = nil
	d.led = nil
	d.ledKnown = false
}

// Loaded reports whether an image is loaded.
func (d *Driver) Loaded() bool {
	return d.sys != nil
}

// System returns the loaded system, or nil.
func (d *Driver) System() *system.System {
	return d.sys
}

// Tick runs one host frame: input, stepping, composition, presentation.
func (d *Driver) Tick() {
	if d.sys == nil {
		return
	}

	BridgeInput(d.host, d.buttons)

	for i := 0; i < d.cfg.StepsPerFrame; i++ {
		d.core.Step(d.sys)
	}

	if d.screen != nil {
		lcd.Compose(d.screen, &d.frame)
		d.host.RefreshVideo(&d.frame)
		d.frames++
	}

	d.forwardLED()
}

// forwardLED reports the LED to hosts that can show it, on change only.
func (d *Driver) forwardLED() {
	if d.led == nil {
		return
	}
	lh, ok := d.host.(LEDHost)
	if !ok {
		return
	}
	if d.ledKnown && d.ledOn == d.led.Lit {
		return
	}
	d.ledKnown = true
	d.ledOn = d.led.Lit
	lh.SetLED(0, d.ledOn)
}

// Frames returns the number of frames presented since Load.
func (d *Driver) Frames() uint64 {
	return d.frames
}

// StepsPerFrame returns the instruction budget per Tick.
func (d *Driver) StepsPerFrame() int {
	return d.cfg.StepsPerFrame
}

// SetStepsPerFrame changes the instruction budget. Values below 1 restore
// the default.
func (d *Driver) SetStepsPerFrame(n int) {
	if n < 1 {
		n = DefaultStepsPerFrame
	}
	d.cfg.StepsPerFrame = n
}

// Region returns the live memory backing kind; nil while Unloaded or when
// no peripheral backs it.
func (d *Driver) Region(kind emucore.MemoryKind) []byte {
	return ResolveRegion(d.sys, kind)
}

// SerializeSize is always zero.
func (d *Driver) SerializeSize() int {
	return 0
}

// Serialize always fails.
func (d *Driver) Serialize(dst []byte) error {
	return ErrSerializeUnsupported
}

// Deserialize always fails.
func (d *Driver) Deserialize(src []byte) error {
	return ErrSerializeUnsupported
}
