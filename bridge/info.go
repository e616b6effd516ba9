package bridge

import (
	"strconv"

	emucore "github.com/user-none/estepdad/api"
	"github.com/user-none/estepdad/lcd"
)

// Name is the library name reported to frontends.
const Name = "Stepdad"

// Version is set at build time with -ldflags "-X ...bridge.Version=...".
var Version = "dev"

// OptionStepsPerFrame is the core option key for the step budget.
const OptionStepsPerFrame = "steps_per_frame"

// stepsPerFrameValues are the selectable step budgets.
var stepsPerFrameValues = []string{"500", "1000", "1500", "2000", "3000", "4000", "6000", "8000"}

// SystemInfo returns the negotiation record for hosts.
func SystemInfo() emucore.SystemInfo {
	return emucore.SystemInfo{
		Name:        "estepdad",
		ConsoleName: "Pokewalker (NTR-032)",
		Extensions:  []string{".rom", ".bin", ".payload"},
		Geometry: emucore.Geometry{
			Width:       lcd.Width,
			Height:      lcd.Height,
			AspectRatio: emucore.DisplayAspectRatio(lcd.Width, lcd.Height, 1.0),
		},
		Timing: emucore.Timing{
			FPS:        60,
			SampleRate: 0,
		},
		Buttons: []emucore.Button{
			{Name: "Button", ID: emucore.JoypadA, DefaultKey: "Enter", DefaultPad: "A"},
			{Name: "Left", ID: emucore.JoypadLeft, DefaultKey: "ArrowLeft", DefaultPad: "DpadLeft"},
			{Name: "Right", ID: emucore.JoypadRight, DefaultKey: "ArrowRight", DefaultPad: "DpadRight"},
		},
		Players: 1,
		CoreOptions: []emucore.CoreOption{
			{
				Key:         OptionStepsPerFrame,
				Label:       "Instructions per frame",
				Description: "Number of instructions executed for every presented frame",
				Type:        emucore.CoreOptionSelect,
				Default:     strconv.Itoa(DefaultStepsPerFrame),
				Values:      stepsPerFrameValues,
			},
		},
		DataDirName:   "estepdad",
		CoreName:      Name,
		CoreVersion:   Version,
		SerializeSize: 0,
	}
}

// ParseStepsPerFrame converts a core option value to a step budget.
// Unknown or non-positive values return the default and false.
func ParseStepsPerFrame(value string) (int, bool) {
	n, err := strconv.Atoi(value)
	if err != nil || n < 1 {
		return DefaultStepsPerFrame, false
	}
	return n, true
}

// SetOption applies a core option by key. Unknown keys are ignored.
func (d *Driver) SetOption(key, value string) {
	switch key {
	case OptionStepsPerFrame:
		n, _ := ParseStepsPerFrame(value)
		d.SetStepsPerFrame(n)
	}
}
