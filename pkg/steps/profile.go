// pkg/steps/profile.go - supported toolbox generations.

package steps

// Component names used as InstallationPaths keys and in operator prompts.
const (
	CompOSGeo = "OSGeo4W"
	CompSNAP  = "SNAP"
	CompR     = "R"
)

// DefaultProfileName is used when neither flag nor configuration selects
// a target generation.
const DefaultProfileName = "qgis-3.22"

// Profile describes one generation of the toolbox installation media. The
// two generations differ only in payload names, bundled Python version and
// default installation directories; the sequence itself is identical.
type Profile struct {
	Name string

	OSGeoDefaultDir string
	SnapDefaultDir  string
	RDefaultDir     string

	OSGeoSetup         string // OSGeo4W batch installer, relative to the installations dir
	OTBArchiveGlob     string
	SnapInstallerGlob  string
	SnapVarfile        string // install4j response file for the unattended SNAP install
	RInstallerGlob     string
	PythonDir          string // apps subdirectory of the bundled Python
	QGISPythonLauncher string // env-aware python launcher under <osgeo>/bin
}

// Profiles returns the supported generations keyed by name.
func Profiles() map[string]Profile {
	return map[string]Profile{
		"qgis-3.16": {
			Name:               "qgis-3.16",
			OSGeoDefaultDir:    `C:\OSGeo4W64`,
			SnapDefaultDir:     `C:\Program Files\SNAP`,
			RDefaultDir:        `C:\Program Files\R\R-3.3.3`,
			OSGeoSetup:         "osgeo4w-setup.bat",
			OTBArchiveGlob:     "OTB-*-Win64.zip",
			SnapInstallerGlob:  "esa-snap_sentinel_windows-x64_8*.exe",
			SnapVarfile:        "SNAP_response_install4j.varfile",
			RInstallerGlob:     "R-3.*-win.exe",
			PythonDir:          "Python37",
			QGISPythonLauncher: "python-qgis-ltr.bat",
		},
		"qgis-3.22": {
			Name:               "qgis-3.22",
			OSGeoDefaultDir:    `C:\OSGeo4W`,
			SnapDefaultDir:     `C:\Program Files\SNAP`,
			RDefaultDir:        `C:\Program Files\R\R-4.1.3`,
			OSGeoSetup:         "osgeo4w-setup.bat",
			OTBArchiveGlob:     "OTB-*-Win64.zip",
			SnapInstallerGlob:  "esa-snap_sentinel_windows-x64_9*.exe",
			SnapVarfile:        "SNAP_response_install4j.varfile",
			RInstallerGlob:     "R-4.*-win.exe",
			PythonDir:          "Python39",
			QGISPythonLauncher: "python-qgis-ltr.bat",
		},
	}
}

// supersededPlugins are removed from the QGIS profile before the bundled
// plugin versions are extracted, to avoid mixing old and new files.
var supersededPlugins = []string{
	"LecoS",
	"openlayers_plugin",
	"pointsamplingtool",
	"processing_gpf",
	"processing_workflow",
	"processing-r",
	"temporalprofiletool",
	"ThRasE",
}
