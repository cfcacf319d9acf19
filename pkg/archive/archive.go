// pkg/archive/archive.go - zip payload extraction for installer components.

package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gwatoolbox/gwa-installer/pkg/fsutil"
	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

// ExtractZip extracts all entries of the archive at archivePath into
// destDir, creating it if absent. The archive existence check runs before
// any filesystem write so a missing archive leaves the target untouched.
func ExtractZip(archivePath, destDir string) error {
	logging.Info("Extracting archive", "archive", archivePath, "to", destDir)

	if !fsutil.FileExists(archivePath) {
		return fmt.Errorf("could not find the archive %s, no files were extracted", archivePath)
	}

	if !fsutil.CheckWritePermission(destDir) {
		return fmt.Errorf("no permission to write to destination directory %s, no files were extracted; "+
			"re-run the installer with administrator privileges or unzip %s manually", destDir, archivePath)
	}

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("failed to open archive %s: %w", archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err := extractEntry(f, destDir); err != nil {
			return err
		}
	}

	logging.Debug("Extraction complete", "archive", archivePath, "entries", len(r.File))
	return nil
}

func extractEntry(f *zip.File, destDir string) error {
	target, err := sanitizePath(destDir, f.Name)
	if err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(target, 0755)
	}

	if err := os.MkdirAll(filepath.Dir(target), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", f.Name, err)
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("failed to open archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	mode := f.Mode().Perm()
	if mode == 0 {
		mode = 0644
	}
	out, err := os.OpenFile(target, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, mode)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", target, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, rc); err != nil {
		return fmt.Errorf("failed to extract %s: %w", f.Name, err)
	}
	return nil
}

// sanitizePath rejects entries that would escape destDir.
func sanitizePath(destDir, name string) (string, error) {
	target := filepath.Join(destDir, filepath.FromSlash(name))
	cleanDest := filepath.Clean(destDir)
	if target != cleanDest && !strings.HasPrefix(target, cleanDest+string(os.PathSeparator)) {
		return "", fmt.Errorf("archive entry %s escapes destination directory", name)
	}
	return target, nil
}
