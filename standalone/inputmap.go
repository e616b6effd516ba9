//go:build !libretro

package standalone

import (
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	emucore "github.com/user-none/estepdad/api"
)

// InputMapping maps joypad buttons to ebiten input types.
type InputMapping struct {
	Keys    map[emucore.JoypadButton]ebiten.Key
	Gamepad map[emucore.JoypadButton]ebiten.StandardGamepadButton
}

// keyNameMap maps short key name strings to ebiten.Key values.
var keyNameMap = map[string]ebiten.Key{
	"A":          ebiten.KeyA,
	"B":          ebiten.KeyB,
	"C":          ebiten.KeyC,
	"D":          ebiten.KeyD,
	"E":          ebiten.KeyE,
	"F":          ebiten.KeyF,
	"G":          ebiten.KeyG,
	"H":          ebiten.KeyH,
	"I":          ebiten.KeyI,
	"J":          ebiten.KeyJ,
	"K":          ebiten.KeyK,
	"L":          ebiten.KeyL,
	"M":          ebiten.KeyM,
	"N":          ebiten.KeyN,
	"O":          ebiten.KeyO,
	"P":          ebiten.KeyP,
	"Q":          ebiten.KeyQ,
	"R":          ebiten.KeyR,
	"S":          ebiten.KeyS,
	"T":          ebiten.KeyT,
	"U":          ebiten.KeyU,
	"V":          ebiten.KeyV,
	"W":          ebiten.KeyW,
	"X":          ebiten.KeyX,
	"Y":          ebiten.KeyY,
	"Z":          ebiten.KeyZ,
	"0":          ebiten.Key0,
	"1":          ebiten.Key1,
	"2":          ebiten.Key2,
	"3":          ebiten.Key3,
	"4":          ebiten.Key4,
	"5":          ebiten.Key5,
	"6":          ebiten.Key6,
	"7":          ebiten.Key7,
	"8":          ebiten.Key8,
	"9":          ebiten.Key9,
	"Enter":      ebiten.KeyEnter,
	"Backspace":  ebiten.KeyBackspace,
	"Space":      ebiten.KeySpace,
	"Semicolon":  ebiten.KeySemicolon,
	"Comma":      ebiten.KeyComma,
	"Period":     ebiten.KeyPeriod,
	"Slash":      ebiten.KeySlash,
	"Tab":        ebiten.KeyTab,
	"Escape":     ebiten.KeyEscape,
	"Shift":      ebiten.KeyShift,
	"ArrowUp":    ebiten.KeyArrowUp,
	"ArrowDown":  ebiten.KeyArrowDown,
	"ArrowLeft":  ebiten.KeyArrowLeft,
	"ArrowRight": ebiten.KeyArrowRight,
	"[":          ebiten.KeyLeftBracket,
	"]":          ebiten.KeyRightBracket,
	"-":          ebiten.KeyMinus,
	"=":          ebiten.KeyEqual,
	"'":          ebiten.KeyApostrophe,
	"F1":         ebiten.KeyF1,
	"F2":         ebiten.KeyF2,
	"F3":         ebiten.KeyF3,
	"F4":         ebiten.KeyF4,
	"F5":         ebiten.KeyF5,
	"F6":         ebiten.KeyF6,
	"F7":         ebiten.KeyF7,
	"F8":         ebiten.KeyF8,
	"F9":         ebiten.KeyF9,
	"F10":        ebiten.KeyF10,
	"F11":        ebiten.KeyF11,
	"F12":        ebiten.KeyF12,
}

// padNameMap maps gamepad button name strings to ebiten StandardGamepadButton values.
var padNameMap = map[string]ebiten.StandardGamepadButton{
	"A":         ebiten.StandardGamepadButtonRightBottom,
	"B":         ebiten.StandardGamepadButtonRightRight,
	"X":         ebiten.StandardGamepadButtonRightLeft,
	"Y":         ebiten.StandardGamepadButtonRightTop,
	"L1":        ebiten.StandardGamepadButtonFrontTopLeft,
	"R1":        ebiten.StandardGamepadButtonFrontTopRight,
	"L2":        ebiten.StandardGamepadButtonFrontBottomLeft,
	"R2":        ebiten.StandardGamepadButtonFrontBottomRight,
	"Start":     ebiten.StandardGamepadButtonCenterRight,
	"Select":    ebiten.StandardGamepadButtonCenterLeft,
	"DpadUp":    ebiten.StandardGamepadButtonLeftTop,
	"DpadDown":  ebiten.StandardGamepadButtonLeftBottom,
	"DpadLeft":  ebiten.StandardGamepadButtonLeftLeft,
	"DpadRight": ebiten.StandardGamepadButtonLeftRight,
	"L3":        ebiten.StandardGamepadButtonLeftStick,
	"R3":        ebiten.StandardGamepadButtonRightStick,
}

// reservedKeys are keyboard keys used by the window for non-input
// functions. These cannot be assigned as button bindings.
var reservedKeys = map[ebiten.Key]bool{
	ebiten.KeyEscape:  true, // Pause
	ebiten.KeyTab:     true, // Fast-forward
	ebiten.KeyF5:      true, // Reset
	ebiten.KeyF10:     true, // Copy screenshot
	ebiten.KeyF11:     true, // Fullscreen
	ebiten.KeyF12:     true, // Screenshot
	ebiten.KeyShift:   true,
	ebiten.KeyControl: true, // Ctrl+O open
	ebiten.KeyAlt:     true,
	ebiten.KeyMeta:    true,
}

// Reverse lookup maps (built from keyNameMap/padNameMap at init).
var keyToName map[ebiten.Key]string
var padToName map[ebiten.StandardGamepadButton]string

func init() {
	keyToName = make(map[ebiten.Key]string, len(keyNameMap))
	for name, key := range keyNameMap {
		keyToName[key] = name
	}
	padToName = make(map[ebiten.StandardGamepadButton]string, len(padNameMap))
	for name, btn := range padNameMap {
		padToName[btn] = name
	}
}

// KeyToName converts an ebiten.Key to its name string.
// Returns the name and true if the key has a name, or "" and false otherwise.
func KeyToName(k ebiten.Key) (string, bool) {
	name, ok := keyToName[k]
	return name, ok
}

// PadToName converts an ebiten.StandardGamepadButton to its name string.
// Returns the name and true if the button has a name, or "" and false otherwise.
func PadToName(b ebiten.StandardGamepadButton) (string, bool) {
	name, ok := padToName[b]
	return name, ok
}

// IsReservedKey returns true if the key is reserved for UI functions.
func IsReservedKey(k ebiten.Key) bool {
	return reservedKeys[k]
}

// ParseKey converts a key name string to an ebiten.Key.
// Returns the key and true if the name is valid, or 0 and false otherwise.
func ParseKey(name string) (ebiten.Key, bool) {
	k, ok := keyNameMap[name]
	return k, ok
}

// ParsePad converts a gamepad button name string to an ebiten.StandardGamepadButton.
// Returns the button and true if the name is valid, or 0 and false otherwise.
func ParsePad(name string) (ebiten.StandardGamepadButton, bool) {
	b, ok := padNameMap[name]
	return b, ok
}

// KeyNames returns every bindable key name, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(keyNameMap))
	for name, k := range keyNameMap {
		if !reservedKeys[k] {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// BuildDefaultMapping creates an InputMapping from the given button
// definitions. Keys that conflict with reserved window keys are skipped.
func BuildDefaultMapping(buttons []emucore.Button) InputMapping {
	return BuildMappingFromConfig(buttons, nil, nil)
}

// BuildMappingFromConfig creates an InputMapping using config overrides with
// button defaults as fallback. For each button, the override map is checked
// first; an invalid or reserved override leaves the button unbound on that
// device so the problem is visible rather than silently defaulted.
func BuildMappingFromConfig(buttons []emucore.Button, kbOverrides, padOverrides map[string]string) InputMapping {
	m := InputMapping{
		Keys:    make(map[emucore.JoypadButton]ebiten.Key),
		Gamepad: make(map[emucore.JoypadButton]ebiten.StandardGamepadButton),
	}

	for _, btn := range buttons {
		keyName := btn.DefaultKey
		if override, ok := kbOverrides[btn.Name]; ok {
			keyName = override
		}
		if k, ok := ParseKey(keyName); ok && !reservedKeys[k] {
			m.Keys[btn.ID] = k
		}

		padName := btn.DefaultPad
		if override, ok := padOverrides[btn.Name]; ok {
			padName = override
		}
		if b, ok := ParsePad(padName); ok {
			m.Gamepad[btn.ID] = b
		}
	}

	return m
}

// ResolveKeyDisplay returns the display string for a button's current keyboard
// binding, checking overrides first then falling back to the provided default.
func ResolveKeyDisplay(buttonName string, defaultKey string, overrides map[string]string) string {
	if override, ok := overrides[buttonName]; ok {
		return override
	}
	return defaultKey
}

// ButtonState is a bit set indexed by emucore.JoypadButton.
type ButtonState uint32

// Pressed reports whether id is held.
func (s ButtonState) Pressed(id emucore.JoypadButton) bool {
	return s&(1<<uint(id)) != 0
}

func (s *ButtonState) set(id emucore.JoypadButton) {
	*s |= 1 << uint(id)
}

// PollButtons reads keyboard and, when present, gamepad input for every
// mapped button.
func PollButtons(mapping InputMapping, gamepadID ebiten.GamepadID, hasGamepad bool) ButtonState {
	var buttons ButtonState

	for id, key := range mapping.Keys {
		if ebiten.IsKeyPressed(key) {
			buttons.set(id)
		}
	}

	if !hasGamepad {
		return buttons
	}

	for id, padBtn := range mapping.Gamepad {
		if ebiten.IsStandardGamepadButtonPressed(gamepadID, padBtn) {
			buttons.set(id)
		}
	}
	pollAnalogStick(&buttons, mapping, gamepadID)

	return buttons
}

// pollAnalogStick reads the left analog stick and sets the buttons mapped
// to the matching d-pad direction, so the stick follows any remapping.
func pollAnalogStick(buttons *ButtonState, mapping InputMapping, gamepadID ebiten.GamepadID) {
	axisX := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickHorizontal)
	axisY := ebiten.StandardGamepadAxisValue(gamepadID, ebiten.StandardGamepadAxisLeftStickVertical)

	for id, padBtn := range mapping.Gamepad {
		if stickMatches(padBtn, axisX, axisY) {
			buttons.set(id)
		}
	}
}

// stickMatches reports whether the stick position counts as padBtn.
func stickMatches(padBtn ebiten.StandardGamepadButton, axisX, axisY float64) bool {
	const threshold = 0.25
	switch padBtn {
	case ebiten.StandardGamepadButtonLeftLeft:
		return axisX < -threshold
	case ebiten.StandardGamepadButtonLeftRight:
		return axisX > threshold
	case ebiten.StandardGamepadButtonLeftTop:
		return axisY < -threshold
	case ebiten.StandardGamepadButtonLeftBottom:
		return axisY > threshold
	}
	return false
}
