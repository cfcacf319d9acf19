//go:build windows

package sysinfo

import (
	"fmt"

	"github.com/yusufpapurcu/wmi"
)

type win32OperatingSystem struct {
	Caption string
	Version string
}

// OSDescription returns the OS name and version for the log session header.
func OSDescription() string {
	var oss []win32OperatingSystem
	err := wmi.Query("SELECT Caption, Version FROM Win32_OperatingSystem", &oss)
	if err != nil || len(oss) == 0 {
		return "Windows (unknown version)"
	}
	return fmt.Sprintf("%s (%s)", oss[0].Caption, oss[0].Version)
}
