//go:build !windows

package process

import "os/exec"

func command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

func shellCommand(cmdLine string) *exec.Cmd {
	return exec.Command("sh", "-c", cmdLine)
}

func hideConsoleWindow(cmd *exec.Cmd) {}
