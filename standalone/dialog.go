//go:build !libretro

package standalone

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sqweek/dialog"
)

// archiveExtensions are accepted by the open dialog in addition to the
// image extensions.
var archiveExtensions = []string{"zip", "7z", "rar", "gz", "tgz"}

// dialogFilterExtensions returns the dialog filter list: image extensions
// without dots, then archive extensions.
func dialogFilterExtensions(imageExts []string) []string {
	exts := make([]string, 0, len(imageExts)+len(archiveExtensions))
	for _, e := range imageExts {
		exts = append(exts, strings.TrimPrefix(e, "."))
	}
	return append(exts, archiveExtensions...)
}

// PromptImagePath shows a native open dialog. ok is false when the user
// cancels. startPath, when set, selects the initial directory.
func PromptImagePath(consoleName string, imageExts []string, startPath string) (path string, ok bool, err error) {
	b := dialog.File().
		Title("Open " + consoleName + " image").
		Filter(consoleName+" images", dialogFilterExtensions(imageExts)...).
		Filter("All files", "*")
	if startPath != "" {
		b = b.SetStartDir(filepath.Dir(startPath))
	}

	path, err = b.Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to open file dialog: %w", err)
	}
	return path, true, nil
}
