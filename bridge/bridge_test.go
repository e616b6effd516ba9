package bridge

import (
	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/device"
	"github.com/user-none/estepdad/lcd"
	"github.com/user-none/estepdad/system"
)

// fakeHost records every call the bridge makes into the frontend.
type fakeHost struct {
	pressed map[emucore.JoypadButton]bool

	calls   []string
	polls   int
	queries []emucore.JoypadButton
	frames  []lcd.Frame
}

func newFakeHost() *fakeHost {
	return &fakeHost{pressed: make(map[emucore.JoypadButton]bool)}
}

func (h *fakeHost) PollInput() {
	h.polls++
	h.calls = append(h.calls, "poll")
}

func (h *fakeHost) InputState(port int, id emucore.JoypadButton) bool {
	h.calls = append(h.calls, "state")
	h.queries = append(h.queries, id)
	return port == 0 && h.pressed[id]
}

func (h *fakeHost) RefreshVideo(frame *lcd.Frame) {
	h.calls = append(h.calls, "video")
	h.frames = append(h.frames, *frame)
}

// ledHost adds the optional LED interface.
type ledHost struct {
	*fakeHost
	leds []bool
}

func (h *ledHost) SetLED(led int, on bool) {
	h.leds = append(h.leds, on)
}

// scriptedCore registers a fixed device list and counts steps.
type scriptedCore struct {
	devices []device.Peripheral
	initErr error
	steps   int
	onStep  func(sys *system.System)
}

func (c *scriptedCore) Init(sys *system.System) error {
	if c.initErr != nil {
		return c.initErr
	}
	for _, p := range c.devices {
		if err := sys.Devices.Register(p); err != nil {
			return err
		}
	}
	return nil
}

func (c *scriptedCore) Step(sys *system.System) {
	c.steps++
	if c.onStep != nil {
		c.onStep(sys)
	}
}

func isPaletteColor(p uint16) bool {
	for _, c := range lcd.Palette {
		if p == c {
			return true
		}
	}
	return false
}
