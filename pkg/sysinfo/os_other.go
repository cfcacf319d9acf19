//go:build !windows

package sysinfo

import "runtime"

// OSDescription returns the OS identification for the log session header.
func OSDescription() string {
	return runtime.GOOS + "/" + runtime.GOARCH
}
