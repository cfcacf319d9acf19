// pkg/sysinfo/sysinfo.go - host facts used for component configuration.

package sysinfo

import (
	"fmt"

	"github.com/shirou/gopsutil/v3/mem"

	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

// defaultJavaMaxMemMB is used when physical memory cannot be determined.
const defaultJavaMaxMemMB = 2048

// TotalRAMMB returns the physical memory size in megabytes.
func TotalRAMMB() (int, error) {
	vm, err := mem.VirtualMemory()
	if err != nil {
		return 0, fmt.Errorf("failed to read physical memory size: %w", err)
	}
	return int(vm.Total / (1024 * 1024)), nil
}

// JavaMaxMemMB computes the JVM heap cap as a fraction of physical memory,
// falling back to a conservative default when the size cannot be read.
func JavaMaxMemMB(fraction float64) int {
	total, err := TotalRAMMB()
	if err != nil || total <= 0 {
		logging.Warn("Could not determine physical memory, using default heap cap",
			"default_mb", defaultJavaMaxMemMB, "error", err)
		return defaultJavaMaxMemMB
	}
	return int(float64(total) * fraction)
}
