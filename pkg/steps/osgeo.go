// pkg/steps/osgeo.go - OSGeo4W and OTB installation and post-install
// configuration.

package steps

import (
	"fmt"
	"path/filepath"

	"github.com/gwatoolbox/gwa-installer/pkg/archive"
	"github.com/gwatoolbox/gwa-installer/pkg/fsutil"
	"github.com/gwatoolbox/gwa-installer/pkg/logging"
	"github.com/gwatoolbox/gwa-installer/pkg/payload"
	"github.com/gwatoolbox/gwa-installer/pkg/process"
	"github.com/gwatoolbox/gwa-installer/pkg/wizard"
)

// installOSGeo runs the OSGeo4W setup and extracts the OTB archive into
// the OSGeo4W apps directory.
func (b *Builder) installOSGeo(r *wizard.Run) error {
	setup := filepath.Join(b.Cfg.InstallationsDir, b.Profile.OSGeoSetup)
	if err := process.RunInstaller(setup); err != nil {
		b.report(err)
	}

	otb, ok := payload.FindNewest(b.Cfg.InstallationsDir, b.Profile.OTBArchiveGlob)
	if !ok {
		b.report(fmt.Errorf("could not find the OTB archive in %s, no files were extracted", b.Cfg.InstallationsDir))
		return nil
	}
	if err := archive.ExtractZip(otb, filepath.Join(r.Paths[CompOSGeo], "apps")); err != nil {
		b.report(err)
	}
	return nil
}

// configureOSGeo copies the bundled plugins, scripts, models and extra
// Python packages into place, installs the offline pip payload and writes
// the plugin/provider activation records.
func (b *Builder) configureOSGeo(r *wizard.Run) error {
	osgeoDir := r.Paths[CompOSGeo]
	pluginsDir := filepath.Join(b.Cfg.QGISProfilePath, "python", "plugins")

	// Remove superseded plugin versions before extracting the new ones to
	// avoid mixing files across releases.
	for _, plugin := range supersededPlugins {
		fsutil.DeletePath(filepath.Join(pluginsDir, plugin))
	}
	if err := archive.ExtractZip(filepath.Join(b.Cfg.ExtrasDir, "plugins", "plugins.zip"), pluginsDir); err != nil {
		b.report(err)
	}

	processingDir := filepath.Join(b.Cfg.QGISProfilePath, "processing")
	packages, _ := filepath.Glob(filepath.Join(b.Cfg.ExtrasDir, "*.zip"))
	logging.Info("Found processing packages", "count", len(packages))
	for _, pack := range packages {
		if err := archive.ExtractZip(pack, processingDir); err != nil {
			b.report(err)
		}
	}

	sitePackages := b.sitePackagesDir(osgeoDir)
	pyPackages, _ := filepath.Glob(filepath.Join(b.Cfg.ExtrasDir, "python_packages", "*.zip"))
	logging.Info("Found python packages", "count", len(pyPackages))
	for _, pack := range pyPackages {
		if err := archive.ExtractZip(pack, sitePackages); err != nil {
			b.report(err)
		}
	}

	if err := b.pipInstallOffline(osgeoDir, filepath.Join(b.Cfg.ExtrasDir, "python_packages_pip")); err != nil {
		b.report(err)
	}

	if err := activatePlugins(b.Store); err != nil {
		return err
	}
	return activateProcessingProviders(b.Store, osgeoDir)
}

// sitePackagesDir returns the site-packages directory of the Python
// bundled with the profile's OSGeo4W distribution.
func (b *Builder) sitePackagesDir(osgeoDir string) string {
	return filepath.Join(osgeoDir, "apps", b.Profile.PythonDir, "Lib", "site-packages")
}

// pipInstallOffline installs the bundled pip payload inside the OSGeo4W
// shell context, without touching the network.
func (b *Builder) pipInstallOffline(osgeoRoot, packageDir string) error {
	cmd, err := pipOfflineCommand(osgeoRoot, packageDir)
	if err != nil {
		return err
	}
	return process.RunShell(cmd, nil)
}

// pipOfflineCommand builds the command line chaining the OSGeo4W
// environment batch files into an offline pip install.
func pipOfflineCommand(osgeoRoot, packageDir string) (string, error) {
	requirements := filepath.Join(packageDir, "requirements.txt")
	if !fsutil.FileExists(requirements) {
		return "", fmt.Errorf("no requirements file found in %s", requirements)
	}
	o4wEnv := filepath.Join(osgeoRoot, "bin", "o4w_env.bat")
	py3Env := filepath.Join(osgeoRoot, "bin", "py3_env.bat")
	if !fsutil.FileExists(o4wEnv) {
		return "", fmt.Errorf("no OSGeo4W env file found in %s", o4wEnv)
	}
	logging.Info("Installing offline python packages", "requirements", requirements)
	cmd := fmt.Sprintf(`call "%s" & call "%s" & if defined OSGEO4W_ROOT (python3 -m pip install --no-index --find-links "%s" -r "%s")`,
		o4wEnv, py3Env, packageDir, requirements)
	return cmd, nil
}
