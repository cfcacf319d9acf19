//go:build windows

// pkg/config/policy_windows.go - enterprise policy overrides from the registry.

package config

import (
	"fmt"
	"log"
	"strconv"

	"golang.org/x/sys/windows/registry"
)

// PolicyRegistryPath holds managed overrides pushed through enterprise
// policy (CSP OMA-URI or GPO registry preferences).
const PolicyRegistryPath = `SOFTWARE\GWAToolbox\Installer`

// loadPolicyOverrides applies registry policy values on top of cfg.
func loadPolicyOverrides(cfg *Configuration) error {
	key, err := registry.OpenKey(registry.LOCAL_MACHINE, PolicyRegistryPath, registry.READ)
	if err != nil {
		return fmt.Errorf("failed to open policy registry key %s: %w", PolicyRegistryPath, err)
	}
	defer key.Close()

	loadStringFromRegistry(key, "TargetProfile", &cfg.TargetProfile)
	loadStringFromRegistry(key, "InstallationsDir", &cfg.InstallationsDir)
	loadStringFromRegistry(key, "ExtrasDir", &cfg.ExtrasDir)
	loadStringFromRegistry(key, "SnapModulesDir", &cfg.SnapModulesDir)
	loadStringFromRegistry(key, "QGISProfilePath", &cfg.QGISProfilePath)
	loadStringFromRegistry(key, "SettingsPath", &cfg.SettingsPath)
	loadStringFromRegistry(key, "LogLevel", &cfg.LogLevel)

	loadFloatFromRegistry(key, "RAMFraction", &cfg.RAMFraction)

	loadBoolFromRegistry(key, "Debug", &cfg.Debug)
	loadBoolFromRegistry(key, "Verbose", &cfg.Verbose)

	applyDerivedDefaults(cfg)
	return nil
}

// loadStringFromRegistry loads a string value from registry if it exists.
func loadStringFromRegistry(key registry.Key, valueName string, target *string) {
	if val, _, err := key.GetStringValue(valueName); err == nil && val != "" {
		*target = val
		log.Printf("Policy: Loaded %s = %s", valueName, val)
	}
}

// loadBoolFromRegistry loads a boolean value from registry if it exists.
// Accepts "true"/"false", "1"/"0" strings or DWORD 1/0.
func loadBoolFromRegistry(key registry.Key, valueName string, target *bool) {
	if val, _, err := key.GetStringValue(valueName); err == nil {
		if parsed, parseErr := strconv.ParseBool(val); parseErr == nil {
			*target = parsed
			log.Printf("Policy: Loaded %s = %t", valueName, parsed)
			return
		}
	}
	if val, _, err := key.GetIntegerValue(valueName); err == nil {
		*target = val != 0
		log.Printf("Policy: Loaded %s = %t", valueName, val != 0)
	}
}

// loadFloatFromRegistry loads a float value stored as a string.
func loadFloatFromRegistry(key registry.Key, valueName string, target *float64) {
	if val, _, err := key.GetStringValue(valueName); err == nil {
		if parsed, parseErr := strconv.ParseFloat(val, 64); parseErr == nil {
			*target = parsed
			log.Printf("Policy: Loaded %s = %v", valueName, parsed)
		}
	}
}
