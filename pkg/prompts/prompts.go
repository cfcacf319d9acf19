// pkg/prompts/prompts.go - console presenter built on the survey library.

package prompts

import (
	"errors"
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/gwatoolbox/gwa-installer/pkg/logging"
	"github.com/gwatoolbox/gwa-installer/pkg/msgbox"
	"github.com/gwatoolbox/gwa-installer/pkg/wizard"
)

const (
	choiceProceed = "Install"
	choiceSkip    = "Skip this component"
	choiceCancel  = "Cancel installation"

	choiceConfigure = "Confirm directory and configure"

	appTitle = "GWA Toolbox installer"
)

// Console presents installation steps on the terminal.
type Console struct{}

// New returns a terminal presenter.
func New() *Console {
	return &Console{}
}

// AskStep shows the step prompt and obtains a three-way choice.
func (c *Console) AskStep(s wizard.Step) wizard.Outcome {
	if s.Prompt != "" {
		fmt.Println()
		fmt.Println(s.Prompt)
	}
	var answer string
	sel := &survey.Select{
		Message: s.Name,
		Options: []string{choiceProceed, choiceSkip, choiceCancel},
		Default: choiceProceed,
	}
	if err := survey.AskOne(sel, &answer); err != nil {
		return cancelOutcome(err)
	}
	return outcomeFor(answer)
}

// AskDirectory confirms (or overrides) a component's installation
// directory before post-install configuration.
func (c *Console) AskDirectory(component, defaultDir string) (string, wizard.Outcome) {
	var answer string
	sel := &survey.Select{
		Message: fmt.Sprintf("Configure %s", component),
		Options: []string{choiceConfigure, choiceSkip, choiceCancel},
		Default: choiceConfigure,
	}
	if err := survey.AskOne(sel, &answer); err != nil {
		return "", cancelOutcome(err)
	}
	switch answer {
	case choiceConfigure:
	case choiceSkip:
		return "", wizard.Skip
	case choiceCancel:
		return "", wizard.Cancel
	default:
		return "", wizard.OutcomeUnknown
	}

	var dir string
	input := &survey.Input{
		Message: fmt.Sprintf("%s installation directory:", component),
		Default: defaultDir,
	}
	if err := survey.AskOne(input, &dir); err != nil {
		return "", cancelOutcome(err)
	}
	if dir == "" {
		dir = defaultDir
	}
	return dir, wizard.Proceed
}

// Notify surfaces an informational message.
func (c *Console) Notify(msg string) {
	logging.Info(msg)
	fmt.Println(msg)
}

// NotifyError surfaces an error with a blocking modal where the platform
// has one.
func (c *Console) NotifyError(msg string) {
	logging.Error(msg)
	msgbox.Show(appTitle, msg)
}

// cancelOutcome maps prompt interruption (Ctrl-C, closed terminal) to a
// normal cancel.
func cancelOutcome(err error) wizard.Outcome {
	if errors.Is(err, terminal.InterruptErr) {
		return wizard.Cancel
	}
	logging.Error("Prompt failed", "error", err)
	return wizard.Cancel
}

func outcomeFor(answer string) wizard.Outcome {
	switch answer {
	case choiceProceed:
		return wizard.Proceed
	case choiceSkip:
		return wizard.Skip
	case choiceCancel:
		return wizard.Cancel
	default:
		return wizard.OutcomeUnknown
	}
}
