// pkg/process/process.go - functions for launching component installers and
// shell commands.

package process

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gwatoolbox/gwa-installer/pkg/fsutil"
	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

// RunInstaller launches an external installer executable synchronously,
// streaming its combined output into the log, and returns once the process
// exits. The first argument must resolve to an existing file; otherwise the
// launch is refused and an error describing the missing installer is
// returned so the sequence can continue with the next component. The exit
// status of a launched installer is logged but not inspected.
func RunInstaller(args ...string) error {
	if len(args) == 0 {
		return errors.New("no installer command given")
	}
	logging.Info("Running binary installer", "command", strings.Join(args, " "))

	if !fsutil.FileExists(args[0]) {
		return fmt.Errorf("could not find the installation file %s, skipping to the next component", args[0])
	}

	cmd := command(args[0], args[1:]...)
	hideConsoleWindow(cmd)

	out, err := cmd.CombinedOutput()
	logOutput(out)
	if err != nil {
		// Installers report their own failures; the exit status does not
		// gate later steps.
		logging.Debug("Installer exited abnormally", "command", args[0], "error", err)
	}
	return nil
}

// RunShell executes a command line through the platform shell, capturing
// combined output into the log. A non-zero exit is logged and returned as
// an error. The onDone callback, when set, fires regardless of outcome.
func RunShell(cmdLine string, onDone func()) error {
	if onDone != nil {
		defer onDone()
	}
	logging.Info("Executing command", "cmd", cmdLine)

	cmd := shellCommand(cmdLine)
	hideConsoleWindow(cmd)

	out, err := cmd.CombinedOutput()
	logOutput(out)
	if err != nil {
		logging.Error("Command failed", "cmd", cmdLine, "error", err)
		return fmt.Errorf("command failed: %w (log written to %s)", err, logging.LogPath())
	}
	return nil
}

// logOutput logs each non-empty output line.
func logOutput(out []byte) {
	for _, line := range strings.Split(string(out), "\n") {
		txt := strings.TrimSpace(line)
		if txt == "" {
			continue
		}
		txt = strings.TrimPrefix(txt, "\uFEFF")
		logging.Info(txt)
	}
}
