package storage

import (
	"encoding/json"
	"fmt"
	"sort"

	"github.com/user-none/estepdad/system"
)

// detectPresentKeys unmarshals JSON bytes to determine which config keys
// are explicitly present in the file. Returns a flat set of dotted-path keys
// (e.g., "video.scale"). Only checks non-omitempty fields that have
// validation rules.
func detectPresentKeys(jsonBytes []byte) map[string]bool {
	present := make(map[string]bool)

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(jsonBytes, &raw); err != nil {
		return present
	}

	for _, k := range []string{"version", "model", "stepsPerFrame"} {
		if _, ok := raw[k]; ok {
			present[k] = true
		}
	}

	if videoRaw, ok := raw["video"]; ok {
		var video map[string]json.RawMessage
		if json.Unmarshal(videoRaw, &video) == nil {
			for _, k := range []string{"scale", "screenshotScale", "showLED"} {
				if _, ok := video[k]; ok {
					present["video."+k] = true
				}
			}
		}
	}

	return present
}

// ApplyMissingDefaults sets default values for config fields that are absent
// from the JSON file. Only truly missing fields get defaults, preserving
// intentional zero values (e.g., showLED=false).
func ApplyMissingDefaults(config *Config, presentKeys map[string]bool) {
	defaults := DefaultConfig()

	if !presentKeys["version"] {
		config.Version = defaults.Version
	}
	if !presentKeys["model"] {
		config.Model = defaults.Model
	}
	if !presentKeys["stepsPerFrame"] {
		config.StepsPerFrame = defaults.StepsPerFrame
	}
	if !presentKeys["video.scale"] {
		config.Video.Scale = defaults.Video.Scale
	}
	if !presentKeys["video.screenshotScale"] {
		config.Video.ScreenshotScale = defaults.Video.ScreenshotScale
	}
	if !presentKeys["video.showLED"] {
		config.Video.ShowLED = defaults.Video.ShowLED
	}
}

func validModel(name string) bool {
	_, ok := system.ParseModel(name)
	return ok
}

func modelNames() []string {
	names := make([]string, 0, len(system.Models))
	for _, m := range system.Models {
		names = append(names, m.String())
	}
	return names
}

// ValidateConfig checks all config fields against valid ranges and returns
// human-readable error descriptions. An empty slice means the config is valid.
// buttonNames should list the names bindings may be set for.
func ValidateConfig(config *Config, buttonNames []string) []string {
	var errors []string

	if config.Version != 1 {
		errors = append(errors, fmt.Sprintf("version: %d (valid: 1)", config.Version))
	}
	if !validModel(config.Model) {
		errors = append(errors, fmt.Sprintf("model: %q (valid: %q)", config.Model, modelNames()))
	}
	if config.StepsPerFrame < minStepsPerFrame || config.StepsPerFrame > maxStepsPerFrame {
		errors = append(errors, fmt.Sprintf("stepsPerFrame: %d (valid: %d-%d)", config.StepsPerFrame, minStepsPerFrame, maxStepsPerFrame))
	}
	if config.Video.Scale < minScale || config.Video.Scale > maxScale {
		errors = append(errors, fmt.Sprintf("video.scale: %d (valid: %d-%d)", config.Video.Scale, minScale, maxScale))
	}
	if config.Video.ScreenshotScale < minScreenshotScale || config.Video.ScreenshotScale > maxScreenshotScale {
		errors = append(errors, fmt.Sprintf("video.screenshotScale: %d (valid: %d-%d)", config.Video.ScreenshotScale, minScreenshotScale, maxScreenshotScale))
	}

	errors = append(errors, validateBindings("input.keyboard", config.Input.Keyboard, buttonNames)...)
	errors = append(errors, validateBindings("input.controller", config.Input.Controller, buttonNames)...)
	return errors
}

// validateBindings reports overrides for buttons the system does not have.
// Output is sorted so repeated runs log the same lines.
func validateBindings(field string, bindings map[string]string, buttonNames []string) []string {
	known := make(map[string]bool, len(buttonNames))
	for _, n := range buttonNames {
		known[n] = true
	}

	var errors []string
	for name := range bindings {
		if !known[name] {
			errors = append(errors, fmt.Sprintf("%s: unknown button %q (valid: %q)", field, name, buttonNames))
		}
	}
	sort.Strings(errors)
	return errors
}

// CorrectConfig resets any invalid fields to their defaults from DefaultConfig().
// Valid fields are preserved. Unknown binding entries are removed.
func CorrectConfig(config *Config, buttonNames []string) *Config {
	defaults := DefaultConfig()

	if config.Version != 1 {
		config.Version = defaults.Version
	}
	if !validModel(config.Model) {
		config.Model = defaults.Model
	}
	if config.StepsPerFrame < minStepsPerFrame || config.StepsPerFrame > maxStepsPerFrame {
		config.StepsPerFrame = defaults.StepsPerFrame
	}
	if config.Video.Scale < minScale || config.Video.Scale > maxScale {
		config.Video.Scale = defaults.Video.Scale
	}
	if config.Video.ScreenshotScale < minScreenshotScale || config.Video.ScreenshotScale > maxScreenshotScale {
		config.Video.ScreenshotScale = defaults.Video.ScreenshotScale
	}

	known := make(map[string]bool, len(buttonNames))
	for _, n := range buttonNames {
		known[n] = true
	}
	for _, m := range []map[string]string{config.Input.Keyboard, config.Input.Controller} {
		for name := range m {
			if !known[name] {
				delete(m, name)
			}
		}
	}
	return config
}
