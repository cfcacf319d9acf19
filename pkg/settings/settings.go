// pkg/settings/settings.go - persistence of application activation settings.
//
// The installer records which plugins and processing providers are active,
// and where each installed tool lives, as named string settings of the
// target QGIS profile. The Store interface keeps the sequencer decoupled
// from the on-disk format; tests use the in-memory implementation.

package settings

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/ini.v1"

	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

// Store reads and writes named string settings. Names use the
// slash-separated form of the target application, e.g.
// "Processing/configuration/ACTIVATE_SAGA".
type Store interface {
	Get(name string) (string, bool)
	Set(name, value string) error
}

// Activate sets each of the named settings to "true".
func Activate(s Store, names ...string) error {
	for _, name := range names {
		if err := s.Set(name, "true"); err != nil {
			return err
		}
	}
	return nil
}

// IniStore persists settings to a QSettings-compatible INI file
// (QGIS3.ini). The first path segment of a setting name selects the INI
// section; the remaining segments form the key, joined the way QSettings
// writes nested groups.
type IniStore struct {
	path string
	file *ini.File
}

// NewIniStore opens or creates the INI file at path.
func NewIniStore(path string) (*IniStore, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create settings directory: %w", err)
	}
	f, err := ini.LooseLoad(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load settings file %s: %w", path, err)
	}
	return &IniStore{path: path, file: f}, nil
}

// Get returns the value of the named setting.
func (s *IniStore) Get(name string) (string, bool) {
	section, key := splitName(name)
	sec := s.file.Section(section)
	if !sec.HasKey(key) {
		return "", false
	}
	return sec.Key(key).String(), true
}

// Set writes the named setting and saves the file.
func (s *IniStore) Set(name, value string) error {
	logging.Info("Setting", "name", name, "value", value)
	section, key := splitName(name)
	s.file.Section(section).Key(key).SetValue(value)
	if err := s.file.SaveTo(s.path); err != nil {
		return fmt.Errorf("failed to save settings file %s: %w", s.path, err)
	}
	return nil
}

// Path returns the backing file location.
func (s *IniStore) Path() string {
	return s.path
}

// splitName maps "Processing/configuration/ACTIVATE_SAGA" to section
// "Processing" and key "configuration\ACTIVATE_SAGA", matching the INI
// layout QSettings produces for grouped keys.
func splitName(name string) (section, key string) {
	parts := strings.SplitN(name, "/", 2)
	if len(parts) == 1 {
		return "General", parts[0]
	}
	return parts[0], strings.ReplaceAll(parts[1], "/", `\`)
}

// MemStore is an in-memory Store for tests.
type MemStore struct {
	Values map[string]string
}

// NewMemStore returns an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{Values: map[string]string{}}
}

// Get returns the value of the named setting.
func (s *MemStore) Get(name string) (string, bool) {
	v, ok := s.Values[name]
	return v, ok
}

// Set records the named setting.
func (s *MemStore) Set(name, value string) error {
	s.Values[name] = value
	return nil
}
