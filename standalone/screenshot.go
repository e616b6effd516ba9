//go:build !libretro

package standalone

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/user-none/estepdad/lcd"
	"github.com/user-none/estepdad/standalone/storage"
	"golang.design/x/clipboard"
)

// ErrClipboardUnavailable is returned when the system clipboard cannot
// be used (for example no display server on Linux).
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// ScreenshotManager handles taking and saving screenshots
type ScreenshotManager struct {
	clipboardOnce sync.Once
	clipboardErr  error
}

// NewScreenshotManager creates a new screenshot manager
func NewScreenshotManager() *ScreenshotManager {
	return &ScreenshotManager{}
}

// encodePNG scales the frame by an integer factor and encodes it as PNG.
func encodePNG(frame *lcd.Frame, scale int) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, scaledFrame(frame, scale)); err != nil {
		return nil, fmt.Errorf("failed to encode screenshot: %w", err)
	}
	return buf.Bytes(), nil
}

func scaledFrame(frame *lcd.Frame, scale int) image.Image {
	return lcd.Scale(frame.RGBA(), scale)
}

// TakeScreenshot saves the frame under the screenshot directory, in a
// subdirectory per image ID when one is given. Returns the file path.
func (m *ScreenshotManager) TakeScreenshot(frame *lcd.Frame, imageID string, scale int) (string, error) {
	screenshotDir, err := storage.GetScreenshotDir()
	if err != nil {
		return "", err
	}
	if imageID != "" {
		screenshotDir = filepath.Join(screenshotDir, imageID)
	}

	if err := os.MkdirAll(screenshotDir, 0755); err != nil {
		return "", fmt.Errorf("failed to create screenshot directory: %w", err)
	}

	data, err := encodePNG(frame, scale)
	if err != nil {
		return "", err
	}

	fullPath := filepath.Join(screenshotDir, strconv.FormatInt(time.Now().Unix(), 10)+".png")
	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write screenshot: %w", err)
	}
	return fullPath, nil
}

// CopyScreenshot places the frame on the system clipboard as a PNG image.
func (m *ScreenshotManager) CopyScreenshot(frame *lcd.Frame, scale int) error {
	m.clipboardOnce.Do(func() {
		m.clipboardErr = clipboard.Init()
	})
	if m.clipboardErr != nil {
		return fmt.Errorf("%w: %v", ErrClipboardUnavailable, m.clipboardErr)
	}

	data, err := encodePNG(frame, scale)
	if err != nil {
		return err
	}
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}
