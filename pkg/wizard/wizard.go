// pkg/wizard/wizard.go - the installation step sequencer.
//
// The installer is a straight-line wizard: an ordered list of steps, each
// gated by a three-way operator choice. Proceed runs the step's bound
// action, Skip advances, Cancel ends the whole run. There are no loops,
// retries or recovery beyond error notifications; a failed action leaves
// the installation partially complete and the sequence moves on.

package wizard

import (
	"errors"
	"fmt"

	"github.com/gwatoolbox/gwa-installer/pkg/logging"
)

// Outcome is the operator's choice for one installation step.
type Outcome int

const (
	// OutcomeUnknown is the zero value; any outcome the sequencer does not
	// recognize halts the run.
	OutcomeUnknown Outcome = iota
	Proceed
	Skip
	Cancel
)

// String returns the string representation of the Outcome.
func (o Outcome) String() string {
	switch o {
	case Proceed:
		return "proceed"
	case Skip:
		return "skip"
	case Cancel:
		return "cancel"
	default:
		return "unknown"
	}
}

// ErrUnknownOutcome is returned when a presenter yields an outcome the
// sequencer does not recognize. This should never happen and exists as a
// guard against future outcome additions.
var ErrUnknownOutcome = errors.New("unknown action chosen in installation step")

// Run holds the state of one installation run: the chosen installation
// directory per component, seeded with defaults and updated by
// directory-confirmation steps. It lives for the duration of the run and
// is never persisted.
type Run struct {
	Paths map[string]string
}

// Step is one stage of the installation sequence. Steps with a Component
// are directory confirmations: the presenter asks for the component's
// installation directory (defaulting to the current Run path) instead of a
// plain three-way choice. Confirmations are separate steps so they are
// presented even when the matching install step was skipped, letting the
// operator point the toolbox at a manually pre-installed component.
type Step struct {
	Name      string
	Prompt    string
	Component string
	Action    func(r *Run) error
}

// Presenter obtains the operator's choice for each step and surfaces
// blocking notifications. The production implementation renders UI; tests
// use a scripted one.
type Presenter interface {
	AskStep(s Step) Outcome
	AskDirectory(component, defaultDir string) (string, Outcome)
	Notify(msg string)
	NotifyError(msg string)
}

// Sequencer drives an ordered list of installation steps.
type Sequencer struct {
	presenter Presenter
}

// NewSequencer returns a Sequencer presenting steps through p.
func NewSequencer(p Presenter) *Sequencer {
	return &Sequencer{presenter: p}
}

// Execute walks the steps in order. Cancel is a normal, user-initiated
// exit and returns nil with no further steps executed. Action errors are
// reported and the sequence continues. Only an unrecognized outcome
// produces an error.
func (s *Sequencer) Execute(steps []Step, defaults map[string]string) error {
	run := &Run{Paths: map[string]string{}}
	for component, dir := range defaults {
		run.Paths[component] = dir
	}

	for _, step := range steps {
		logging.Info("Presenting step", "step", step.Name)

		var out Outcome
		if step.Component != "" {
			dir, o := s.presenter.AskDirectory(step.Component, run.Paths[step.Component])
			if o == Proceed && dir != "" {
				run.Paths[step.Component] = dir
			}
			out = o
		} else {
			out = s.presenter.AskStep(step)
		}
		logging.Debug("Step outcome", "step", step.Name, "outcome", out)

		switch out {
		case Proceed:
			if step.Action == nil {
				continue
			}
			if err := step.Action(run); err != nil {
				logging.Error("Step failed", "step", step.Name, "error", err)
				s.presenter.NotifyError(fmt.Sprintf("An error occurred: %v. Log written to %q.",
					err, logging.LogPath()))
			}
		case Skip:
			logging.Info("Step skipped", "step", step.Name)
		case Cancel:
			logging.Info("Installation cancelled by the operator", "step", step.Name)
			return nil
		default:
			s.presenter.NotifyError("Unknown action chosen in the previous installation step. " +
				"Ask the developer to check the installation script. Quitting installation.")
			return ErrUnknownOutcome
		}
	}
	return nil
}
