//go:build !windows

package logging

// enableColors is a no-op outside Windows, where terminals handle ANSI
// sequences without console mode changes.
func enableColors() {}
