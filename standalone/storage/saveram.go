package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrSaveSizeMismatch is returned when a stored save does not match the
// size of the region it is loaded into.
var ErrSaveSizeMismatch = errors.New("save file size does not match save memory")

// GetSaveRAMPath returns the path of an image's persisted save memory
func GetSaveRAMPath(imageID string) (string, error) {
	dir, err := GetImageSaveDir(imageID)
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, saveRAMFile), nil
}

// LoadSaveRAM fills dst with the stored save memory for imageID. It
// returns false with a nil error when nothing has been saved yet. dst is
// left untouched on any error.
func LoadSaveRAM(imageID string, dst []byte) (bool, error) {
	path, err := GetSaveRAMPath(imageID)
	if err != nil {
		return false, err
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read save: %w", err)
	}
	if len(data) != len(dst) {
		return false, fmt.Errorf("%w: %d bytes, want %d", ErrSaveSizeMismatch, len(data), len(dst))
	}

	copy(dst, data)
	return true, nil
}

// SaveSaveRAM writes src as the save memory for imageID. An empty src
// is a no-op so images without save memory leave nothing behind.
func SaveSaveRAM(imageID string, src []byte) error {
	if len(src) == 0 {
		return nil
	}

	path, err := GetSaveRAMPath(imageID)
	if err != nil {
		return err
	}
	if err := atomicWriteFile(path, src); err != nil {
		return fmt.Errorf("failed to write save: %w", err)
	}
	return nil
}
