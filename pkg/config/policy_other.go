//go:build !windows

package config

import "errors"

// loadPolicyOverrides only has a registry source on Windows.
func loadPolicyOverrides(cfg *Configuration) error {
	return errors.New("policy overrides are only available on windows")
}
