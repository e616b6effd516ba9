package storage

import (
	"github.com/user-none/estepdad/bridge"
	"github.com/user-none/estepdad/system"
)

// Config represents the application configuration stored in config.json
type Config struct {
	Version       int          `json:"version"`
	Model         string       `json:"model"`         // system.Model name: "NTR-032", "single-button"
	StepsPerFrame int          `json:"stepsPerFrame"` // instructions per presented frame
	Video         VideoConfig  `json:"video"`
	Window        WindowConfig `json:"window"`
	Input         InputConfig  `json:"input"`
	RecentImage   string       `json:"recentImage,omitempty"` // reopened when no path is given
}

// VideoConfig contains video-related settings
type VideoConfig struct {
	Scale           int  `json:"scale"`           // window size as a multiple of the LCD, 1-10
	ScreenshotScale int  `json:"screenshotScale"` // screenshot magnification, 1-16
	ShowLED         bool `json:"showLED"`         // draw the status LED indicator
}

// WindowConfig contains window position and mode
type WindowConfig struct {
	X          *int `json:"x,omitempty"` // nil = OS decides position
	Y          *int `json:"y,omitempty"`
	Fullscreen bool `json:"fullscreen"`
}

// InputConfig contains input binding overrides. Empty/nil maps mean
// "use the defaults from SystemInfo". Only user overrides are stored.
type InputConfig struct {
	Keyboard   map[string]string `json:"keyboard,omitempty"`   // button name -> key name override
	Controller map[string]string `json:"controller,omitempty"` // button name -> pad button name override
}

const (
	minScale           = 1
	maxScale           = 10
	minScreenshotScale = 1
	maxScreenshotScale = 16
	minStepsPerFrame   = 500
	maxStepsPerFrame   = 8000
)

// DefaultConfig returns a new Config with default values
func DefaultConfig() *Config {
	return &Config{
		Version:       1,
		Model:         system.ModelNTR032.String(),
		StepsPerFrame: bridge.DefaultStepsPerFrame,
		Video: VideoConfig{
			Scale:           6,
			ScreenshotScale: 4,
			ShowLED:         true,
		},
		Window: WindowConfig{},
		Input:  InputConfig{},
	}
}

// DriverConfig converts the stored settings to a bridge.Config. Invalid
// values fall back to the bridge defaults.
func (c *Config) DriverConfig() bridge.Config {
	cfg := bridge.DefaultConfig()
	if m, ok := system.ParseModel(c.Model); ok {
		cfg.Model = m
	}
	if c.StepsPerFrame > 0 {
		cfg.StepsPerFrame = c.StepsPerFrame
	}
	return cfg
}
