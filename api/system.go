// Package emucore holds the host-facing types shared by the bridge and
// every frontend (libretro core, standalone window, headless tools).
package emucore

// JoypadButton identifies a logical host button. Values match the
// RETRO_DEVICE_ID_JOYPAD_* constants so frontends can pass them through.
type JoypadButton int

const (
	JoypadB     JoypadButton = 0
	JoypadY     JoypadButton = 1
	JoypadUp    JoypadButton = 4
	JoypadDown  JoypadButton = 5
	JoypadLeft  JoypadButton = 6
	JoypadRight JoypadButton = 7
	JoypadA     JoypadButton = 8
)

// Button describes a host button with its display name and logical ID.
type Button struct {
	Name       string
	ID         JoypadButton
	DefaultKey string // Default keyboard key for standalone UI (e.g., "J", "Enter")
	DefaultPad string // Default gamepad button for standalone UI (e.g., "A", "Start")
}

// CoreOptionType identifies the kind of core option.
type CoreOptionType int

const (
	CoreOptionBool CoreOptionType = iota
	CoreOptionSelect
	CoreOptionRange
)

// CoreOption describes a configurable core setting.
type CoreOption struct {
	Key         string
	Label       string
	Description string
	Type        CoreOptionType
	Default     string
	Values      []string // Options for Select type
	Min         int      // Minimum for Range type
	Max         int      // Maximum for Range type
	Step        int      // Step size for Range type
}

// SystemInfo describes the emulated system for frontend negotiation.
type SystemInfo struct {
	Name          string
	ConsoleName   string
	Extensions    []string
	Geometry      Geometry
	Timing        Timing
	Buttons       []Button
	Players       int
	CoreOptions   []CoreOption
	DataDirName   string
	CoreName      string
	CoreVersion   string
	SerializeSize int
}
