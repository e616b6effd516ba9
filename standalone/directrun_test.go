//go:build !libretro

package standalone

import (
	"os"
	"testing"

	"github.com/user-none/estepdad/bridge"
	"github.com/user-none/estepdad/standalone/storage"
)

// TestPrepareStorageFirstRun verifies a first run writes a default
// config.json and returns the defaults
func TestPrepareStorageFirstRun(t *testing.T) {
	setupScreenshotDir(t)
	info := bridge.SystemInfo()
	info.DataDirName = "estepdad-test"

	config, err := prepareStorage(info)
	if err != nil {
		t.Fatalf("prepareStorage failed: %v", err)
	}

	path, err := storage.GetConfigPath()
	if err != nil {
		t.Fatalf("GetConfigPath failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("config.json not created: %v", err)
	}

	want := storage.DefaultConfig()
	if config.StepsPerFrame != want.StepsPerFrame || config.Model != want.Model {
		t.Errorf("config = %+v, want defaults", config)
	}
}

// TestPrepareStorageCorrectsConfig verifies stored out-of-range values and
// unknown bindings are corrected on load
func TestPrepareStorageCorrectsConfig(t *testing.T) {
	setupScreenshotDir(t)
	info := bridge.SystemInfo()
	info.DataDirName = "estepdad-test"

	if _, err := prepareStorage(info); err != nil {
		t.Fatalf("prepareStorage failed: %v", err)
	}
	path, _ := storage.GetConfigPath()
	bad := `{"version": 1, "model": "NTR-032", "stepsPerFrame": 5,
		"video": {"scale": 99, "screenshotScale": 4, "showLED": true},
		"input": {"keyboard": {"Jump": "J", "Button": "Space"}}}`
	if err := os.WriteFile(path, []byte(bad), 0644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	config, err := prepareStorage(info)
	if err != nil {
		t.Fatalf("prepareStorage failed: %v", err)
	}
	defaults := storage.DefaultConfig()
	if config.StepsPerFrame != defaults.StepsPerFrame {
		t.Errorf("StepsPerFrame = %d, want %d", config.StepsPerFrame, defaults.StepsPerFrame)
	}
	if config.Video.Scale != defaults.Video.Scale {
		t.Errorf("Scale = %d, want %d", config.Video.Scale, defaults.Video.Scale)
	}
	if _, ok := config.Input.Keyboard["Jump"]; ok {
		t.Error("unknown binding kept")
	}
	if config.Input.Keyboard["Button"] != "Space" {
		t.Error("valid binding dropped")
	}
}
