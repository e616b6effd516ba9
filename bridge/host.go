// Package bridge connects a host frontend to the emulated system: it
// bridges input into the button pad, composes the LCD every frame, exposes
// memory regions and drives the instruction core at a fixed step budget.
package bridge

import (
	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/lcd"
)

// InputHost is the pull-based input side of a frontend.
// PollInput must be called before any InputState query in a frame.
type InputHost interface {
	PollInput()
	InputState(port int, id emucore.JoypadButton) bool
}

// Host is everything the Frame Driver needs from a frontend.
type Host interface {
	InputHost

	// RefreshVideo presents a composed frame. The frame is only valid
	// for the duration of the call.
	RefreshVideo(frame *lcd.Frame)
}

// LEDHost is optionally implemented by hosts that can show an indicator.
type LEDHost interface {
	SetLED(led int, on bool)
}
