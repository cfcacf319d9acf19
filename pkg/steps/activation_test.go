package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwatoolbox/gwa-installer/pkg/settings"
)

func TestActivatePlugins(t *testing.T) {
	store := settings.NewMemStore()
	require.NoError(t, activatePlugins(store))

	for _, name := range []string{
		"PythonPlugins/LecoS",
		"PythonPlugins/quick_map_services",
		"PythonPlugins/pointsamplingtool",
		"PythonPlugins/processing_gpf",
		"PythonPlugins/processing_workflow",
		"plugins/ThRasE",
	} {
		v, ok := store.Get(name)
		assert.True(t, ok, name)
		assert.Equal(t, "true", v, name)
	}
}

func TestActivateProcessingProviders(t *testing.T) {
	osgeoDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(osgeoDir, "apps", "grass", "grass78"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(osgeoDir, "apps", "OTB-8.0.1"), 0755))

	store := settings.NewMemStore()
	require.NoError(t, activateProcessingProviders(store, osgeoDir))

	v, _ := store.Get("Processing/configuration/ACTIVATE_GRASS70")
	assert.Equal(t, "true", v)
	v, _ = store.Get("Processing/configuration/ACTIVATE_SAGA")
	assert.Equal(t, "true", v)
	v, _ = store.Get("Processing/configuration/ACTIVATE_GWA_TBX")
	assert.Equal(t, "true", v)
	v, _ = store.Get("Processing/configuration/TASKBAR_BUTTON_WORKFLOW")
	assert.Equal(t, "false", v)

	grass, ok := store.Get("Processing/Configuration/GRASS_FOLDER")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(osgeoDir, "apps", "grass", "grass78"), grass)

	otb, ok := store.Get("Processing/Configuration/OTB_FOLDER")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(osgeoDir, "apps", "OTB-8.0.1"), otb)
	app, _ := store.Get("Processing/Configuration/OTB_APP_FOLDER")
	assert.Equal(t, filepath.Join(otb, "lib", "otb", "applications"), app)
}

func TestConfigureGrassFolderMirrorsVersionedName(t *testing.T) {
	osgeoDir := t.TempDir()
	grassDir := filepath.Join(osgeoDir, "apps", "grass", "grass78")
	require.NoError(t, os.MkdirAll(grassDir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(grassDir, "etc"), []byte("x"), 0644))

	store := settings.NewMemStore()
	require.NoError(t, configureGrassFolder(store, osgeoDir))

	// grass78 must be mirrored to grass-7.8 next to it.
	mirrored := filepath.Join(osgeoDir, "apps", "grass", "grass-7.8")
	assert.FileExists(t, filepath.Join(mirrored, "etc"))
}

func TestConfigureGrassFolderPicksNewest(t *testing.T) {
	osgeoDir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(osgeoDir, "apps", "grass", "grass-7.6"), 0755))
	require.NoError(t, os.MkdirAll(filepath.Join(osgeoDir, "apps", "grass", "grass-7.8"), 0755))

	store := settings.NewMemStore()
	require.NoError(t, configureGrassFolder(store, osgeoDir))

	grass, ok := store.Get("Processing/Configuration/GRASS_FOLDER")
	require.True(t, ok)
	assert.Equal(t, filepath.Join(osgeoDir, "apps", "grass", "grass-7.8"), grass)
}

func TestFolderDiscoverySkipsWhenAbsent(t *testing.T) {
	osgeoDir := t.TempDir()
	store := settings.NewMemStore()

	require.NoError(t, configureGrassFolder(store, osgeoDir))
	require.NoError(t, configureOTBFolders(store, osgeoDir))

	_, ok := store.Get("Processing/Configuration/GRASS_FOLDER")
	assert.False(t, ok)
	_, ok = store.Get("Processing/Configuration/OTB_FOLDER")
	assert.False(t, ok)
}

func TestActivateSnapPlugin(t *testing.T) {
	store := settings.NewMemStore()
	require.NoError(t, activateSnapPlugin(store, `C:\Program Files\SNAP`))

	v, _ := store.Get("Processing/configuration/ACTIVATE_SNAP")
	assert.Equal(t, "true", v)
	v, _ = store.Get("Processing/configuration/S1TBX_ACTIVATE")
	assert.Equal(t, "true", v)
	v, _ = store.Get("Processing/configuration/SNAP_FOLDER")
	assert.Equal(t, `C:\Program Files\SNAP`, v)
}

func TestActivateRPlugin(t *testing.T) {
	store := settings.NewMemStore()
	require.NoError(t, activateRPlugin(store, `C:\Program Files\R\R-4.1.3`, "true"))

	v, _ := store.Get("PythonPlugins/processing_r")
	assert.Equal(t, "true", v)
	v, _ = store.Get("Processing/configuration/R_FOLDER")
	assert.Equal(t, `C:\Program Files\R\R-4.1.3`, v)
	v, _ = store.Get("Processing/configuration/R_USE64")
	assert.Equal(t, "true", v)
}
