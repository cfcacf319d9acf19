// pkg/steps/snap.go - SNAP toolbox installation and configuration.

package steps

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gwatoolbox/gwa-installer/pkg/confedit"
	"github.com/gwatoolbox/gwa-installer/pkg/fsutil"
	"github.com/gwatoolbox/gwa-installer/pkg/logging"
	"github.com/gwatoolbox/gwa-installer/pkg/payload"
	"github.com/gwatoolbox/gwa-installer/pkg/process"
	"github.com/gwatoolbox/gwa-installer/pkg/sysinfo"
	"github.com/gwatoolbox/gwa-installer/pkg/wizard"
)

// installSnap runs the unattended SNAP installer, configures the snappy
// Python bindings against the OSGeo4W Python, sizes the JVM heap and
// applies the bundled offline module updates.
func (b *Builder) installSnap(r *wizard.Run) error {
	snapDir := r.Paths[CompSNAP]
	osgeoDir := r.Paths[CompOSGeo]

	installer, ok := payload.FindNewest(b.Cfg.InstallationsDir, b.Profile.SnapInstallerGlob)
	if !ok {
		b.report(fmt.Errorf("could not find the SNAP installer in %s", b.Cfg.InstallationsDir))
	} else if err := process.RunInstaller(installer, "-q",
		"-varfile", b.Profile.SnapVarfile,
		"-splash", "SNAP installation"); err != nil {
		b.report(err)
	}

	sitePackages := b.sitePackagesDir(osgeoDir)

	// Point the jpy bridge at the JRE bundled with SNAP.
	jre := filepath.Join(snapDir, "jre")
	jvmDLL := filepath.Join(jre, "jre", "bin", "server", "jvm.dll")
	if err := confedit.ReplaceAssignments(filepath.Join(sitePackages, "jpyconfig.py"), map[string]string{
		"java_home": pythonRawString(jre),
		"jvm_dll":   pythonRawString(jvmDLL),
	}); err != nil {
		b.report(err)
	}

	snapBin := filepath.Join(snapDir, "bin", "snap64.exe")
	qgisPython := filepath.Join(osgeoDir, "bin", b.Profile.QGISPythonLauncher)
	if err := process.RunInstaller(snapBin, "--nogui", "--python", qgisPython, sitePackages); err != nil {
		b.report(err)
	}

	maxMem := sysinfo.JavaMaxMemMB(b.Cfg.RAMFraction)
	logging.Info("Java max heap", "max_mem_mb", maxMem)
	if err := confedit.WriteSnappyINI(filepath.Join(sitePackages, "snappy", "snappy.ini"), snapDir, maxMem); err != nil {
		logging.Warn("Could not write snappy.ini to set max memory", "error", err)
	}
	if err := confedit.SetMaxHeap(filepath.Join(snapDir, "bin", "gpt.vmoptions"), maxMem); err != nil {
		b.report(err)
	}

	// Per-pixel geocoding for the OLCI and MERIS readers.
	if home, err := os.UserHomeDir(); err == nil {
		props := filepath.Join(home, ".snap", "etc", "s3tbx.properties")
		if err := confedit.AppendLines(props, []string{
			"s3tbx.reader.olci.pixelGeoCoding=true",
			"s3tbx.reader.meris.pixelGeoCoding=true",
		}); err != nil {
			logging.Warn("Could not set options in s3tbx.properties", "error", err)
		}
	}

	// Offline module updates: copy the bundled modules over the
	// installation, then let SNAP apply them.
	if err := fsutil.CopyPath(b.Cfg.SnapModulesDir, snapDir, true); err != nil {
		b.report(err)
	}
	if err := process.RunInstaller(snapBin, "--nogui", "--modules", "--update-all"); err != nil {
		b.report(err)
	}
	return nil
}

// configureSnap records the SNAP activation settings for the confirmed
// installation directory.
func (b *Builder) configureSnap(r *wizard.Run) error {
	return activateSnapPlugin(b.Store, r.Paths[CompSNAP])
}

// pythonRawString renders a Windows path as a Python raw string literal
// with escaped backslashes, the form jpyconfig.py expects.
func pythonRawString(path string) string {
	return fmt.Sprintf(`r"%s"`, strings.ReplaceAll(path, `\`, `\\`))
}
