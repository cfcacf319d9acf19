// pkg/steps/r.go - R runtime installation and configuration.

package steps

import (
	"fmt"

	"github.com/gwatoolbox/gwa-installer/pkg/payload"
	"github.com/gwatoolbox/gwa-installer/pkg/process"
	"github.com/gwatoolbox/gwa-installer/pkg/wizard"
)

// installR runs the R installer.
func (b *Builder) installR(r *wizard.Run) error {
	installer, ok := payload.FindNewest(b.Cfg.InstallationsDir, b.Profile.RInstallerGlob)
	if !ok {
		b.report(fmt.Errorf("could not find the R installer in %s", b.Cfg.InstallationsDir))
		return nil
	}
	if err := process.RunInstaller(installer); err != nil {
		b.report(err)
	}
	return nil
}

// configureR records the R activation settings for the confirmed
// installation directory.
func (b *Builder) configureR(r *wizard.Run) error {
	return activateRPlugin(b.Store, r.Paths[CompR], "true")
}
