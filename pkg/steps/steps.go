// pkg/steps/steps.go - the concrete installation sequence.

package steps

import (
	"fmt"

	"github.com/gwatoolbox/gwa-installer/pkg/config"
	"github.com/gwatoolbox/gwa-installer/pkg/logging"
	"github.com/gwatoolbox/gwa-installer/pkg/settings"
	"github.com/gwatoolbox/gwa-installer/pkg/wizard"
)

const welcomePrompt = `Welcome to the GWA Toolbox installation.

This wizard installs the OSGeo4W stack (QGIS, SAGA, GRASS), the Orfeo
ToolBox, the ESA SNAP toolboxes and the R statistical runtime, and wires
them together for GWA processing. Components that are already installed
can be skipped; their directories can still be configured afterwards.`

const uninstallPrompt = `If an older version of the GWA Toolbox is installed on this machine,
remove it before continuing: uninstall the old OSGeo4W and SNAP
installations through the Windows application list, then continue here.`

const finishPrompt = `Installation finished. Start QGIS to use the GWA Toolbox.`

// UI surfaces blocking notifications from inside step actions. A step is a
// multi-part action: one failed part is reported and the remaining parts
// still run.
type UI interface {
	Notify(msg string)
	NotifyError(msg string)
}

// Builder assembles the installation sequence for one target profile.
type Builder struct {
	Cfg     *config.Configuration
	Store   settings.Store
	Profile Profile
	UI      UI
}

// Sequence returns the ordered installation steps and the default
// installation directory per component. Configuration overrides from
// InstallDirs replace the profile defaults.
func (b *Builder) Sequence() ([]wizard.Step, map[string]string) {
	defaults := map[string]string{
		CompOSGeo: b.Profile.OSGeoDefaultDir,
		CompSNAP:  b.Profile.SnapDefaultDir,
		CompR:     b.Profile.RDefaultDir,
	}
	for component, dir := range b.Cfg.InstallDirs {
		if dir != "" {
			defaults[component] = dir
		}
	}

	steps := []wizard.Step{
		{Name: "Welcome", Prompt: welcomePrompt},
		{Name: "Remove previous version", Prompt: uninstallPrompt},
		{Name: "Install OSGeo4W (QGIS, SAGA, GRASS) and OTB", Action: b.installOSGeo},
		{Name: "Configure OSGeo4W", Component: CompOSGeo, Action: b.configureOSGeo},
		{Name: "Install the SNAP toolboxes", Action: b.installSnap},
		{Name: "Configure SNAP", Component: CompSNAP, Action: b.configureSnap},
		{Name: "Install R", Action: b.installR},
		{Name: "Configure R", Component: CompR, Action: b.configureR},
		{Name: "Finish", Prompt: finishPrompt},
	}
	return steps, defaults
}

// report logs a failed action part and surfaces it to the operator. The
// sequence is not stopped; the installation is simply left incomplete at
// that part.
func (b *Builder) report(err error) {
	if err == nil {
		return
	}
	logging.Error("Installation action failed", "error", err)
	b.UI.NotifyError(fmt.Sprintf("%v", err))
}
