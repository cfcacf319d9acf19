// pkg/config/config.go - configuration settings for the GWA Toolbox installer.

package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigFileName is looked up in the working directory, next to the
// installer payloads on the installation media.
const ConfigFileName = "gwa-install.yaml"

// Configuration holds the configurable options for the installer in YAML format.
type Configuration struct {
	TargetProfile    string  `yaml:"TargetProfile"`    // installer generation, see pkg/steps profiles
	InstallationsDir string  `yaml:"InstallationsDir"` // directory of installer binaries/archives
	ExtrasDir        string  `yaml:"ExtrasDir"`        // QGIS plugin/script/model payloads
	SnapModulesDir   string  `yaml:"SnapModulesDir"`   // offline SNAP module updates
	QGISProfilePath  string  `yaml:"QGISProfilePath"`  // QGIS profile receiving plugins and settings
	SettingsPath     string  `yaml:"SettingsPath"`     // QGIS3.ini location, derived from profile when empty
	RAMFraction      float64 `yaml:"RAMFraction"`      // share of physical RAM given to the SNAP JVM
	LogLevel         string  `yaml:"LogLevel"`
	Debug            bool    `yaml:"Debug"`
	Verbose          bool    `yaml:"Verbose"`

	// Optional per-component install directory overrides keyed by
	// component name (OSGeo4W, SNAP, R).
	InstallDirs map[string]string `yaml:"InstallDirs"`
}

// LoadConfig loads the configuration from a YAML file. A missing file is
// not an error: the installer runs from defaults (on Windows, enterprise
// policy values from the registry are applied on top).
func LoadConfig(path string) (*Configuration, error) {
	if path == "" {
		path = ConfigFileName
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		log.Printf("Configuration file does not exist: %s", path)
		cfg := GetDefaultConfig()
		if err := loadPolicyOverrides(cfg); err != nil {
			log.Printf("No policy overrides applied: %v", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read configuration file: %w", err)
	}

	cfg := GetDefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file: %w", err)
	}

	applyDerivedDefaults(cfg)
	return cfg, nil
}

// SaveConfig saves the current configuration to a YAML file.
func SaveConfig(cfg *Configuration, path string) error {
	if path == "" {
		path = ConfigFileName
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize configuration: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create configuration directory: %w", err)
		}
	}
	return os.WriteFile(path, data, 0644)
}

// GetDefaultConfig provides default configuration values.
func GetDefaultConfig() *Configuration {
	cfg := &Configuration{
		TargetProfile:    "",
		InstallationsDir: "Installations_x64",
		ExtrasDir:        "QGIS additional software",
		SnapModulesDir:   "SNAP additional modules",
		RAMFraction:      0.6,
		LogLevel:         "INFO",
		InstallDirs:      map[string]string{},
	}
	applyDerivedDefaults(cfg)
	return cfg
}

// applyDerivedDefaults fills fields whose defaults depend on other fields
// or on the user environment.
func applyDerivedDefaults(cfg *Configuration) {
	if cfg.QGISProfilePath == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			cfg.QGISProfilePath = filepath.Join(home, "AppData", "Roaming",
				"QGIS", "QGIS3", "profiles", "default")
		}
	}
	if cfg.SettingsPath == "" && cfg.QGISProfilePath != "" {
		cfg.SettingsPath = filepath.Join(cfg.QGISProfilePath, "QGIS", "QGIS3.ini")
	}
	if cfg.RAMFraction <= 0 || cfg.RAMFraction > 1 {
		cfg.RAMFraction = 0.6
	}
	if cfg.InstallDirs == nil {
		cfg.InstallDirs = map[string]string{}
	}
}
