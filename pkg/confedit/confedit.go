// pkg/confedit/confedit.go - in-place patching of component text
// configuration files.

package confedit

import (
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

var xmxPattern = regexp.MustCompile(`-Xmx\d+[kKmMgG]?`)

// ReplaceAssignments rewrites `name = value` assignment lines, substituting
// the value for every name present in replace. Lines that assign other
// names, comments and blank lines pass through unchanged.
func ReplaceAssignments(path string, replace map[string]string) error {
	logging.Info("Patching assignments", "file", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		name, ok := assignedName(line)
		if !ok {
			continue
		}
		if value, found := replace[name]; found {
			lines[i] = fmt.Sprintf("%s = %s", name, value)
		}
	}

	return os.WriteFile(path, []byte(strings.Join(lines, "\n")), 0644)
}

// assignedName returns the left-hand side of an assignment line.
func assignedName(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || strings.HasPrefix(trimmed, "#") {
		return "", false
	}
	idx := strings.Index(trimmed, "=")
	if idx <= 0 {
		return "", false
	}
	return strings.TrimSpace(trimmed[:idx]), true
}

// SetMaxHeap rewrites every -Xmx token in a .vmoptions or launcher batch
// file to the given amount of megabytes.
func SetMaxHeap(path string, maxMemMB int) error {
	logging.Info("Setting JVM max heap", "file", path, "max_mem_mb", maxMemMB)
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	patched := xmxPattern.ReplaceAllString(string(data), fmt.Sprintf("-Xmx%dm", maxMemMB))
	return os.WriteFile(path, []byte(patched), 0644)
}

// AppendLines appends each line to the file, creating it if absent. Lines
// the file already contains are not appended again, so re-running the
// installer does not stack duplicates.
func AppendLines(path string, lines []string) error {
	logging.Info("Appending configuration lines", "file", path, "count", len(lines))

	existing := map[string]bool{}
	if data, err := os.ReadFile(path); err == nil {
		for _, line := range strings.Split(string(data), "\n") {
			existing[strings.TrimSpace(line)] = true
		}
	}

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	for _, line := range lines {
		if existing[strings.TrimSpace(line)] {
			continue
		}
		if _, err := fmt.Fprintln(f, line); err != nil {
			return fmt.Errorf("failed to append to %s: %w", path, err)
		}
	}
	return nil
}

// WriteSnappyINI writes the snappy configuration pointing the Python
// bindings at the SNAP installation and capping the JVM heap.
func WriteSnappyINI(path, snapHome string, maxMemMB int) error {
	logging.Info("Writing snappy configuration", "file", path, "snap_home", snapHome, "max_mem_mb", maxMemMB)
	content := fmt.Sprintf("[DEFAULT]\nsnap_home=%s\njava_max_mem=%dm\n", snapHome, maxMemMB)
	return os.WriteFile(path, []byte(content), 0644)
}
