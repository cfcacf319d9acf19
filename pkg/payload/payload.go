// pkg/payload/payload.go - discovery of installer payloads on the
// installation media.

package payload

import (
	"path/filepath"
	"regexp"
	"sort"

	version "github.com/hashicorp/go-version"

	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

var versionPattern = regexp.MustCompile(`\d+(?:\.\d+)+`)

// FindNewest returns the path of the file in dir matching the glob pattern
// that carries the highest version in its name (e.g. OTB-7.3.0-Win64.zip).
// Files without a parseable version lose against versioned ones and fall
// back to lexicographic comparison among themselves. The bool is false when
// nothing matches.
func FindNewest(dir, pattern string) (string, bool) {
	matches, err := filepath.Glob(filepath.Join(dir, pattern))
	if err != nil || len(matches) == 0 {
		return "", false
	}
	sort.Slice(matches, func(i, j int) bool {
		return lessByVersion(matches[i], matches[j])
	})
	newest := matches[len(matches)-1]
	if len(matches) > 1 {
		logging.Debug("Multiple payloads match, picked newest",
			"pattern", pattern, "picked", filepath.Base(newest), "candidates", len(matches))
	}
	return newest, true
}

func lessByVersion(a, b string) bool {
	va := parseVersion(filepath.Base(a))
	vb := parseVersion(filepath.Base(b))
	switch {
	case va == nil && vb == nil:
		return a < b
	case va == nil:
		return true
	case vb == nil:
		return false
	case va.Equal(vb):
		return a < b
	default:
		return va.LessThan(vb)
	}
}

// parseVersion extracts the first dotted version from a payload name.
func parseVersion(name string) *version.Version {
	m := versionPattern.FindString(name)
	if m == "" {
		return nil
	}
	v, err := version.NewVersion(m)
	if err != nil {
		return nil
	}
	return v
}
