// Package static embeds the notification icon into the binary and copies it
// to the data directory where the desktop notifier can find it
package static

import (
	"embed"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/adrg/xdg"
)

const (
	filesDir = "files"
)

//go:embed files/*
var embeddedFiles embed.FS

// Install copies every embedded file into the XDG data directory under
// appDir. Files that already exist are left alone.
func Install(appDir string) error {
	return fs.WalkDir(
		embeddedFiles,
		filesDir,
		func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if d.IsDir() {
				return nil
			}

			b, err := embeddedFiles.ReadFile(p)
			if err != nil {
				return err
			}

			// embedded paths always use forward slashes
			stripped := strings.TrimPrefix(p, filesDir+"/")

			destPath, err := xdg.DataFile(filepath.Join(appDir, stripped))
			if err != nil {
				return err
			}

			// Only write if file does not already exist
			if _, err := os.Stat(destPath); os.IsNotExist(err) {
				if err := os.WriteFile(destPath, b, 0o644); err != nil {
					return err
				}
			}

			return nil
		},
	)
}
