package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIniStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "QGIS", "QGIS3.ini")
	store, err := NewIniStore(path)
	require.NoError(t, err)

	require.NoError(t, store.Set("PythonPlugins/processing_r", "true"))
	require.NoError(t, store.Set("Processing/configuration/R_FOLDER", `C:\Program Files\R\R-3.3.3`))

	// A fresh store reading the same file sees the persisted values.
	reopened, err := NewIniStore(path)
	require.NoError(t, err)

	v, ok := reopened.Get("PythonPlugins/processing_r")
	require.True(t, ok)
	assert.Equal(t, "true", v)

	v, ok = reopened.Get("Processing/configuration/R_FOLDER")
	require.True(t, ok)
	assert.Equal(t, `C:\Program Files\R\R-3.3.3`, v)

	_, ok = reopened.Get("Processing/configuration/UNSET")
	assert.False(t, ok)
}

func TestIniStoreSectionLayout(t *testing.T) {
	path := filepath.Join(t.TempDir(), "QGIS3.ini")
	store, err := NewIniStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("Processing/configuration/ACTIVATE_SAGA", "true"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[Processing]")
	assert.Contains(t, string(data), `configuration\ACTIVATE_SAGA`)
}

func TestActivate(t *testing.T) {
	store := NewMemStore()
	require.NoError(t, Activate(store, "PythonPlugins/LecoS", "plugins/ThRasE"))

	v, ok := store.Get("PythonPlugins/LecoS")
	require.True(t, ok)
	assert.Equal(t, "true", v)
	v, _ = store.Get("plugins/ThRasE")
	assert.Equal(t, "true", v)
}
