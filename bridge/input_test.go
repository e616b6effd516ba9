package bridge

import (
	"testing"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/device"
)

func TestBridgeInput_NilTarget(t *testing.T) {
	h := newFakeHost()
	BridgeInput(h, nil)
	if h.polls != 0 || len(h.queries) != 0 {
		t.Errorf("host touched with no pad: polls=%d queries=%d", h.polls, len(h.queries))
	}
}

func TestBridgeInput_PollsFirst(t *testing.T) {
	h := newFakeHost()
	BridgeInput(h, device.NewButtons(3))

	if h.polls != 1 {
		t.Fatalf("polls = %d, want 1", h.polls)
	}
	if h.calls[0] != "poll" {
		t.Errorf("first call = %q, want poll", h.calls[0])
	}
}

func TestBridgeInput_ThreeButtons(t *testing.T) {
	testCases := []struct {
		name    string
		pressed []emucore.JoypadButton
		want    [3]bool
	}{
		{"nothing", nil, [3]bool{false, false, false}},
		{"action", []emucore.JoypadButton{emucore.JoypadA}, [3]bool{true, false, false}},
		{"left drives both side latches", []emucore.JoypadButton{emucore.JoypadLeft}, [3]bool{false, true, true}},
		{"right is not routed", []emucore.JoypadButton{emucore.JoypadRight}, [3]bool{false, false, false}},
		{"all", []emucore.JoypadButton{emucore.JoypadA, emucore.JoypadLeft, emucore.JoypadRight}, [3]bool{true, true, true}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			h := newFakeHost()
			for _, id := range tc.pressed {
				h.pressed[id] = true
			}
			pad := device.NewButtons(3)
			BridgeInput(h, pad)

			for i := range tc.want {
				if pad.Latches[i] != tc.want[i] {
					t.Errorf("latch %d = %v, want %v", i, pad.Latches[i], tc.want[i])
				}
			}
		})
	}
}

func TestBridgeInput_ClearsReleasedButtons(t *testing.T) {
	h := newFakeHost()
	pad := device.NewButtons(3)
	pad.Latches[0], pad.Latches[1], pad.Latches[2] = true, true, true

	BridgeInput(h, pad)

	for i, l := range pad.Latches {
		if l {
			t.Errorf("latch %d still set after release", i)
		}
	}
}

// TestBridgeInput_OneButton verifies only latch 0 is touched
func TestBridgeInput_OneButton(t *testing.T) {
	h := newFakeHost()
	h.pressed[emucore.JoypadA] = true
	h.pressed[emucore.JoypadLeft] = true
	pad := device.NewButtons(1)

	BridgeInput(h, pad)

	if len(pad.Latches) != 1 {
		t.Fatalf("latch count changed to %d", len(pad.Latches))
	}
	if !pad.Latches[0] {
		t.Error("latch 0 not set")
	}
	if len(h.queries) != 1 || h.queries[0] != emucore.JoypadA {
		t.Errorf("queries = %v, want only JoypadA", h.queries)
	}
}

// TestBridgeInput_TwoLatches verifies a pad built with two latches is only
// written within its count
func TestBridgeInput_TwoLatches(t *testing.T) {
	h := newFakeHost()
	h.pressed[emucore.JoypadA] = true
	h.pressed[emucore.JoypadLeft] = true
	pad := &device.Buttons{Latches: make([]bool, 2)}

	BridgeInput(h, pad)

	if len(pad.Latches) != 2 {
		t.Fatalf("latch count changed to %d", len(pad.Latches))
	}
	if !pad.Latches[0] || !pad.Latches[1] {
		t.Errorf("latches = %v, want [true true]", pad.Latches)
	}
}
