// pkg/steps/activation.go - QGIS plugin and processing-provider
// activation records.

package steps

import (
	"path/filepath"
	"strings"

	"github.com/gwatoolbox/gwa-installer/pkg/fsutil"
	"github.com/gwatoolbox/gwa-installer/pkg/logging"
	"github.com/gwatoolbox/gwa-installer/pkg/settings"
)

// activatePlugins enables the bundled QGIS plugins.
func activatePlugins(s settings.Store) error {
	return settings.Activate(s,
		"PythonPlugins/LecoS",
		"PythonPlugins/quick_map_services",
		"PythonPlugins/pointsamplingtool",
		"PythonPlugins/processing_gpf",
		"PythonPlugins/processing_workflow",
		"plugins/ThRasE")
}

// activateProcessingProviders enables the processing backends and records
// the GRASS and OTB folders discovered under the OSGeo4W installation.
func activateProcessingProviders(s settings.Store, osgeoDir string) error {
	if err := s.Set("Processing/configuration/ACTIVATE_GRASS70", "true"); err != nil {
		return err
	}
	if err := settings.Activate(s,
		"Processing/configuration/ACTIVATE_MODEL",
		"Processing/configuration/ACTIVATE_QGIS",
		"Processing/configuration/ACTIVATE_SAGA",
		"Processing/configuration/ACTIVATE_SCRIPT",
		"Processing/configuration/ACTIVATE_WORKFLOW",
		"Processing/configuration/ACTIVATE_GWA_TBX",
		"Processing/Configuration/OTB_ACTIVATE",
		"Processing/configuration/GRASS_LOG_COMMANDS",
		"Processing/configuration/GRASS_LOG_CONSOLE",
		"Processing/configuration/SAGA_LOG_COMMANDS",
		"Processing/configuration/SAGA_LOG_CONSOLE",
		"Processing/configuration/USE_FILENAME_AS_LAYER_NAME",
		"Processing/configuration/TASKBAR_BUTTON_GWA_TBX"); err != nil {
		return err
	}
	if err := s.Set("Processing/configuration/TASKBAR_BUTTON_WORKFLOW", "false"); err != nil {
		return err
	}
	if err := configureGrassFolder(s, osgeoDir); err != nil {
		return err
	}
	return configureOTBFolders(s, osgeoDir)
}

// configureGrassFolder records the newest GRASS folder under the OSGeo4W
// installation. OSGeo4W ships GRASS in a folder named grass7x, but QGIS
// needs a grass-7.x folder next to it, so one is mirrored when missing.
// When no GRASS folder exists the record is skipped without complaint.
func configureGrassFolder(s settings.Store, osgeoDir string) error {
	grassFolder, ok := fsutil.LatestMatchingDir(filepath.Join(osgeoDir, "apps", "grass"), "grass*")
	if !ok {
		logging.Debug("No GRASS folder found, skipping", "dir", osgeoDir)
		return nil
	}
	if !strings.Contains(filepath.Base(grassFolder), "grass-") {
		corrected := filepath.Join(filepath.Dir(grassFolder),
			strings.Replace(filepath.Base(grassFolder), "grass7", "grass-7.", 1))
		if err := fsutil.CopyPath(grassFolder, corrected, true); err != nil {
			logging.Warn("Could not mirror the GRASS folder", "src", grassFolder, "dest", corrected, "error", err)
		}
	}
	return s.Set("Processing/Configuration/GRASS_FOLDER", grassFolder)
}

// configureOTBFolders records the OTB folder extracted into the OSGeo4W
// apps directory, silently skipping when none is present.
func configureOTBFolders(s settings.Store, osgeoDir string) error {
	matches, _ := filepath.Glob(filepath.Join(osgeoDir, "apps", "OTB-*"))
	if len(matches) == 0 {
		logging.Debug("No OTB folder found, skipping", "dir", osgeoDir)
		return nil
	}
	otbFolder := matches[0]
	if err := s.Set("Processing/Configuration/OTB_FOLDER", otbFolder); err != nil {
		return err
	}
	return s.Set("Processing/Configuration/OTB_APP_FOLDER",
		filepath.Join(otbFolder, "lib", "otb", "applications"))
}

// activateSnapPlugin enables the SNAP processing integration and records
// the SNAP installation folder.
func activateSnapPlugin(s settings.Store, dir string) error {
	if err := settings.Activate(s,
		"PythonPlugins/processing_gpf",
		"Processing/configuration/ACTIVATE_SNAP",
		"Processing/configuration/S1TBX_ACTIVATE",
		"Processing/configuration/S2TBX_ACTIVATE"); err != nil {
		return err
	}
	return s.Set("Processing/configuration/SNAP_FOLDER", dir)
}

// activateRPlugin enables the R processing integration and records the R
// installation folder.
func activateRPlugin(s settings.Store, dir, use64 string) error {
	if err := settings.Activate(s, "PythonPlugins/processing_r"); err != nil {
		return err
	}
	if err := s.Set("Processing/configuration/R_FOLDER", dir); err != nil {
		return err
	}
	return s.Set("Processing/configuration/R_USE64", use64)
}
