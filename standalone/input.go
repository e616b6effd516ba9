//go:build !libretro

package standalone

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Hotkeys holds the window actions requested this frame.
type Hotkeys struct {
	Screenshot bool // F12
	Copy       bool // F10, screenshot to clipboard
	Fullscreen bool // F11
	Pause      bool // Escape or gamepad Start
	Reset      bool // F5
	Open       bool // Ctrl+O
	Turbo      bool // Tab or gamepad R2, cycles the fast-forward multiplier
}

// Any reports whether any hotkey fired.
func (h Hotkeys) Any() bool {
	return h.Screenshot || h.Copy || h.Fullscreen || h.Pause || h.Reset || h.Open || h.Turbo
}

// InputManager polls window hotkeys and tracks the active gamepad.
type InputManager struct {
	gamepadIDs []ebiten.GamepadID
	gamepadID  ebiten.GamepadID
	hasGamepad bool
}

// NewInputManager creates a new input manager
func NewInputManager() *InputManager {
	return &InputManager{}
}

// Update polls input state. Should be called once per frame before
// reading Gamepad.
func (im *InputManager) Update() Hotkeys {
	im.gamepadIDs = ebiten.AppendGamepadIDs(im.gamepadIDs[:0])
	im.hasGamepad = len(im.gamepadIDs) > 0
	if im.hasGamepad {
		im.gamepadID = im.gamepadIDs[0]
	}

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)

	h := Hotkeys{
		Screenshot: inpututil.IsKeyJustPressed(ebiten.KeyF12),
		Copy:       inpututil.IsKeyJustPressed(ebiten.KeyF10),
		Fullscreen: inpututil.IsKeyJustPressed(ebiten.KeyF11),
		Pause:      inpututil.IsKeyJustPressed(ebiten.KeyEscape),
		Reset:      inpututil.IsKeyJustPressed(ebiten.KeyF5),
		Open:       ctrl && inpututil.IsKeyJustPressed(ebiten.KeyO),
		Turbo:      inpututil.IsKeyJustPressed(ebiten.KeyTab),
	}

	if im.hasGamepad {
		if inpututil.IsStandardGamepadButtonJustPressed(im.gamepadID, ebiten.StandardGamepadButtonCenterRight) {
			h.Pause = true
		}
		if inpututil.IsStandardGamepadButtonJustPressed(im.gamepadID, ebiten.StandardGamepadButtonFrontBottomRight) {
			h.Turbo = true
		}
	}

	return h
}

// Gamepad returns the first connected gamepad.
func (im *InputManager) Gamepad() (ebiten.GamepadID, bool) {
	return im.gamepadID, im.hasGamepad
}
