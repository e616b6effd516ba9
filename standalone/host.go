//go:build !libretro

package standalone

import (
	"bytes"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/lcd"
)

// windowHost implements bridge.Host and bridge.LEDHost for the window.
// pending is written by the runner before each Tick; PollInput latches it
// so every InputState query in a frame sees the same snapshot.
type windowHost struct {
	pending ButtonState
	polled  ButtonState

	frame    lcd.Frame
	pixels   []byte
	hasFrame bool
	ledKnown bool
	ledLit   bool
}

func newWindowHost() *windowHost {
	return &windowHost{pixels: make([]byte, lcd.Width*lcd.Height*4)}
}

func (h *windowHost) PollInput() {
	h.polled = h.pending
}

func (h *windowHost) InputState(port int, id emucore.JoypadButton) bool {
	if port != 0 {
		return false
	}
	return h.polled.Pressed(id)
}

func (h *windowHost) RefreshVideo(frame *lcd.Frame) {
	h.frame = *frame
	frame.WriteRGBA(h.pixels)
	h.hasFrame = true
}

func (h *windowHost) SetLED(led int, on bool) {
	if led != 0 {
		return
	}
	h.ledKnown = true
	h.ledLit = on
}

// reset forgets the previous image's frame and LED.
func (h *windowHost) reset() {
	h.pending = 0
	h.polled = 0
	h.hasFrame = false
	h.ledKnown = false
	h.ledLit = false
}

// saveTracker remembers the last persisted SaveRAM contents so autosave
// only writes when the emulated program changed them.
type saveTracker struct {
	snapshot []byte
}

// Changed reports whether region differs from the last Mark.
func (s *saveTracker) Changed(region []byte) bool {
	return !bytes.Equal(s.snapshot, region)
}

// Mark records region as persisted.
func (s *saveTracker) Mark(region []byte) {
	s.snapshot = append(s.snapshot[:0], region...)
}
