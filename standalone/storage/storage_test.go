package storage

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
)

// setupDataDir points the data directory at a temp dir for the test
func setupDataDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	switch runtime.GOOS {
	case "darwin":
		t.Setenv("HOME", dir)
	case "windows":
		t.Setenv("APPDATA", dir)
	default:
		t.Setenv("XDG_DATA_HOME", dir)
	}

	prev := appName
	Init("estepdad-test")
	t.Cleanup(func() { appName = prev })

	base, err := GetBaseDir()
	if err != nil {
		t.Fatalf("GetBaseDir failed: %v", err)
	}
	return base
}

func TestGetBaseDir_NotInitialized(t *testing.T) {
	prev := appName
	appName = ""
	defer func() { appName = prev }()

	if _, err := GetBaseDir(); err == nil {
		t.Error("expected error before Init")
	}
}

func TestGetBaseDir_UsesAppName(t *testing.T) {
	base := setupDataDir(t)
	if filepath.Base(base) != "estepdad-test" {
		t.Errorf("base dir %q does not end in the app name", base)
	}
}

func TestEnsureDirectories(t *testing.T) {
	base := setupDataDir(t)

	if err := EnsureDirectories(); err != nil {
		t.Fatalf("EnsureDirectories failed: %v", err)
	}
	for _, sub := range []string{"", savesDir, screenshotDir} {
		fi, err := os.Stat(filepath.Join(base, sub))
		if err != nil || !fi.IsDir() {
			t.Errorf("directory %q not created: %v", sub, err)
		}
	}
}

func TestPaths(t *testing.T) {
	base := setupDataDir(t)

	cfg, _ := GetConfigPath()
	if cfg != filepath.Join(base, "config.json") {
		t.Errorf("config path = %q", cfg)
	}
	shots, _ := GetScreenshotDir()
	if shots != filepath.Join(base, "screenshots") {
		t.Errorf("screenshot dir = %q", shots)
	}
	save, _ := GetSaveRAMPath("0badf00d")
	if save != filepath.Join(base, "saves", "0badf00d", "eeprom.bin") {
		t.Errorf("save path = %q", save)
	}
}

func TestDefaultConfig(t *testing.T) {
	config := DefaultConfig()

	if config.Version != 1 {
		t.Errorf("expected version 1, got %d", config.Version)
	}
	if config.Model != "NTR-032" {
		t.Errorf("expected model NTR-032, got %q", config.Model)
	}
	if config.StepsPerFrame != 2000 {
		t.Errorf("expected 2000 steps per frame, got %d", config.StepsPerFrame)
	}
	if errs := ValidateConfig(config, testButtons); len(errs) != 0 {
		t.Errorf("default config is invalid: %v", errs)
	}
}

func TestDriverConfig(t *testing.T) {
	config := DefaultConfig()
	config.Model = "single-button"
	config.StepsPerFrame = 4000

	cfg := config.DriverConfig()
	if cfg.Model.String() != "single-button" {
		t.Errorf("model = %s, want single-button", cfg.Model)
	}
	if cfg.StepsPerFrame != 4000 {
		t.Errorf("steps = %d, want 4000", cfg.StepsPerFrame)
	}

	config.Model = "bogus"
	config.StepsPerFrame = 0
	cfg = config.DriverConfig()
	if cfg.Model.String() != "NTR-032" || cfg.StepsPerFrame != 2000 {
		t.Errorf("invalid values not defaulted: %+v", cfg)
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	setupDataDir(t)

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if config.Video.Scale != DefaultConfig().Video.Scale {
		t.Errorf("expected defaults, got %+v", config)
	}
}

func TestSaveLoadConfig(t *testing.T) {
	setupDataDir(t)

	config := DefaultConfig()
	config.StepsPerFrame = 3000
	config.Video.ShowLED = false
	config.Input.Keyboard = map[string]string{"Button": "Space"}
	if err := SaveConfig(config); err != nil {
		t.Fatalf("SaveConfig failed: %v", err)
	}

	loaded, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if loaded.StepsPerFrame != 3000 {
		t.Errorf("stepsPerFrame = %d, want 3000", loaded.StepsPerFrame)
	}
	if loaded.Video.ShowLED {
		t.Error("showLED=false was overwritten by the default")
	}
	if loaded.Input.Keyboard["Button"] != "Space" {
		t.Errorf("keyboard override lost: %v", loaded.Input.Keyboard)
	}
}

func TestLoadConfig_Corrupt(t *testing.T) {
	setupDataDir(t)
	path, _ := GetConfigPath()
	os.MkdirAll(filepath.Dir(path), 0755)
	os.WriteFile(path, []byte("{not json"), 0644)

	if _, err := LoadConfig(); err == nil {
		t.Error("expected error for corrupt config")
	}
}

func TestCreateConfigIfMissing(t *testing.T) {
	setupDataDir(t)
	path, _ := GetConfigPath()

	if err := CreateConfigIfMissing(); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("config not created: %v", err)
	}

	// An existing file is left alone.
	os.WriteFile(path, []byte(`{"stepsPerFrame": 1000}`), 0644)
	if err := CreateConfigIfMissing(); err != nil {
		t.Fatalf("CreateConfigIfMissing failed: %v", err)
	}
	data, _ := os.ReadFile(path)
	if !strings.Contains(string(data), "1000") {
		t.Error("existing config was overwritten")
	}
}

func TestAtomicWriteJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "test.json")

	data := struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}{
		Name:  "test",
		Value: 42,
	}

	if err := AtomicWriteJSON(path, data); err != nil {
		t.Fatalf("AtomicWriteJSON failed: %v", err)
	}
	if _, err := os.Stat(path + ".tmp"); !errors.Is(err, os.ErrNotExist) {
		t.Error("temp file left behind")
	}

	var result struct {
		Name  string `json:"name"`
		Value int    `json:"value"`
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if result.Name != data.Name || result.Value != data.Value {
		t.Errorf("data mismatch: expected %+v, got %+v", data, result)
	}
}

func TestAtomicWriteJSONInvalidDir(t *testing.T) {
	// Writing to a path under a file (not a directory) should fail
	filePath := filepath.Join(t.TempDir(), "not_a_dir")
	os.WriteFile(filePath, []byte("file"), 0644)

	if err := AtomicWriteJSON(filepath.Join(filePath, "sub", "test.json"), "data"); err == nil {
		t.Error("expected error when writing to invalid directory path")
	}
}

func TestSaveRAMRoundTrip(t *testing.T) {
	setupDataDir(t)

	src := make([]byte, 8192)
	for i := range src {
		src[i] = byte(i * 7)
	}
	if err := SaveSaveRAM("1234abcd", src); err != nil {
		t.Fatalf("SaveSaveRAM failed: %v", err)
	}

	dst := make([]byte, 8192)
	ok, err := LoadSaveRAM("1234abcd", dst)
	if err != nil || !ok {
		t.Fatalf("LoadSaveRAM = %v, %v", ok, err)
	}
	if !bytes.Equal(dst, src) {
		t.Error("restored save differs")
	}
}

func TestLoadSaveRAM_NoSave(t *testing.T) {
	setupDataDir(t)

	dst := []byte{0xFF, 0xFF}
	ok, err := LoadSaveRAM("deadbeef", dst)
	if err != nil || ok {
		t.Errorf("LoadSaveRAM = %v, %v, want false, nil", ok, err)
	}
	if dst[0] != 0xFF {
		t.Error("dst modified without a save")
	}
}

func TestLoadSaveRAM_SizeMismatch(t *testing.T) {
	setupDataDir(t)

	if err := SaveSaveRAM("cafe0001", make([]byte, 8192)); err != nil {
		t.Fatalf("SaveSaveRAM failed: %v", err)
	}
	dst := bytes.Repeat([]byte{0xFF}, 65536)
	ok, err := LoadSaveRAM("cafe0001", dst)
	if ok || !errors.Is(err, ErrSaveSizeMismatch) {
		t.Errorf("LoadSaveRAM = %v, %v, want ErrSaveSizeMismatch", ok, err)
	}
	if dst[0] != 0xFF {
		t.Error("dst modified on mismatch")
	}
}

func TestSaveSaveRAM_EmptyIsNoop(t *testing.T) {
	setupDataDir(t)

	if err := SaveSaveRAM("00000000", nil); err != nil {
		t.Fatalf("SaveSaveRAM failed: %v", err)
	}
	path, _ := GetSaveRAMPath("00000000")
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Error("empty save wrote a file")
	}
}
