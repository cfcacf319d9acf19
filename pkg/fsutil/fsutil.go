// pkg/fsutil/fsutil.go - filesystem helpers for copying, deleting and
// probing installation targets.

package fsutil

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"

	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

// FileExists reports whether path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// DirExists reports whether path exists and is a directory.
func DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// CheckWritePermission verifies destDir can be written to, creating it
// (recursively) if absent. The check creates and removes a probe file;
// any I/O error yields false without distinguishing the cause.
func CheckWritePermission(destDir string) bool {
	logging.Debug("Checking write permissions", "dir", destDir)
	if !DirExists(destDir) {
		logging.Debug("Creating directory", "dir", destDir)
		if err := os.MkdirAll(destDir, 0755); err != nil {
			logging.Debug("Directory creation failed", "dir", destDir, "error", err)
			return false
		}
	}
	probe := filepath.Join(destDir, "_gwa_test")
	f, err := os.Create(probe)
	if err != nil {
		logging.Debug("Write probe failed", "dir", destDir, "error", err)
		return false
	}
	f.Close()
	if err := os.Remove(probe); err != nil {
		logging.Debug("Write probe cleanup failed", "file", probe, "error", err)
	}
	return true
}

// CopyPath copies srcPath into destDir. Directories are merged recursively:
// conflicting files are overwritten, files already present in destDir but
// absent from srcPath are preserved. When checkParentExists is set the
// parent of destDir must already exist, a guard against copying into an
// unmounted or misconfigured target.
func CopyPath(srcPath, destDir string, checkParentExists bool) error {
	logging.Info("Copying files", "from", srcPath, "to", destDir)

	if checkParentExists && !DirExists(filepath.Dir(destDir)) {
		return fmt.Errorf("could not find the destination directory %s, no files were copied", filepath.Dir(destDir))
	}

	if !CheckWritePermission(destDir) {
		return fmt.Errorf("no permission to write to destination directory %s, no files were copied; "+
			"re-run the installer with administrator privileges or copy %s manually", destDir, srcPath)
	}

	switch {
	case DirExists(srcPath):
		return copyTree(srcPath, destDir)
	case FileExists(srcPath):
		return copyFile(srcPath, filepath.Join(destDir, filepath.Base(srcPath)))
	default:
		return fmt.Errorf("cannot find the source path %s, no files were copied", srcPath)
	}
}

// copyTree recursively merges src into dst.
func copyTree(src, dst string) error {
	entries, err := os.ReadDir(src)
	if err != nil {
		return fmt.Errorf("failed to read source directory %s: %w", src, err)
	}
	if err := os.MkdirAll(dst, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", dst, err)
	}
	for _, entry := range entries {
		srcEntry := filepath.Join(src, entry.Name())
		dstEntry := filepath.Join(dst, entry.Name())
		if entry.IsDir() {
			if err := copyTree(srcEntry, dstEntry); err != nil {
				return err
			}
		} else {
			if err := copyFile(srcEntry, dstEntry); err != nil {
				return err
			}
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", src, err)
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", src, err)
	}

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, info.Mode().Perm())
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", dst, err)
	}
	defer out.Close()

	if _, err := io.Copy(out, in); err != nil {
		return fmt.Errorf("failed to copy %s to %s: %w", src, dst, err)
	}
	return nil
}

// DeleteFile removes a single file. Deletion is a pre-cleanup nicety, so
// errors are logged and swallowed.
func DeleteFile(path string) {
	logging.Info("Deleting file", "path", path)
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		logging.Debug("File deletion failed", "path", path, "error", err)
	}
}

// DeletePath removes path and everything below it, best effort. Errors are
// logged and swallowed.
func DeletePath(path string) {
	logging.Info("Deleting path", "path", path)
	if err := os.RemoveAll(path); err != nil {
		logging.Debug("Path deletion failed", "path", path, "error", err)
	}
}

// LatestMatchingDir returns the lexicographically last directory under
// parent whose base name matches the glob pattern, a "pick the
// newest-looking versioned folder" heuristic. The bool is false when no
// directory matches.
func LatestMatchingDir(parent, pattern string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(parent, pattern))
	if err != nil {
		return "", false
	}
	var dirs []string
	for _, m := range matches {
		if DirExists(m) {
			dirs = append(dirs, m)
		}
	}
	if len(dirs) == 0 {
		return "", false
	}
	sort.Strings(dirs)
	return dirs[len(dirs)-1], true
}
