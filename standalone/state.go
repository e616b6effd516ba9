//go:build !libretro

package standalone

// AppState represents the current state of the window
type AppState int

const (
	// StateNoImage waits for an image to be opened or dropped
	StateNoImage AppState = iota
	// StatePlaying is active emulation
	StatePlaying
	// StatePaused keeps the last frame on screen without stepping
	StatePaused
)

// String returns the string representation of the state
func (s AppState) String() string {
	switch s {
	case StateNoImage:
		return "NoImage"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	default:
		return "Unknown"
	}
}
