package bridge

import (
	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/device"
)

// BridgeInput copies host button state into the pad's latches.
// It does nothing when there is no pad.
//
// Latches 1 and 2 both read LEFT. RIGHT is declared to the host but stays
// unrouted until the core documents which latch is which side button.
func BridgeInput(host InputHost, target *device.Buttons) {
	if target == nil || target.Count() == 0 {
		return
	}

	host.PollInput()

	target.Latches[0] = host.InputState(0, emucore.JoypadA)
	if target.Count() > 1 {
		target.Latches[1] = host.InputState(0, emucore.JoypadLeft)
	}
	if target.Count() > 2 {
		target.Latches[2] = host.InputState(0, emucore.JoypadLeft)
	}
}
