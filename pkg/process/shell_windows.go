//go:build windows

package process

import (
	"os/exec"
	"syscall"
)

func command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// shellCommand runs a command line through cmd.exe so `call` chains and
// env-setup batch files behave as they do in an interactive prompt.
func shellCommand(cmdLine string) *exec.Cmd {
	return exec.Command("cmd.exe", "/C", cmdLine)
}

// hideConsoleWindow keeps child consoles from flashing over the wizard.
func hideConsoleWindow(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		HideWindow: true,
	}
}
