package steps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gwatoolbox/gwa-installer/pkg/config"
	"github.com/gwatoolbox/gwa-installer/pkg/settings"
)

type recordingUI struct {
	notices []string
	errors  []string
}

func (u *recordingUI) Notify(msg string)      { u.notices = append(u.notices, msg) }
func (u *recordingUI) NotifyError(msg string) { u.errors = append(u.errors, msg) }

func testBuilder(t *testing.T) *Builder {
	t.Helper()
	cfg := config.GetDefaultConfig()
	return &Builder{
		Cfg:     cfg,
		Store:   settings.NewMemStore(),
		Profile: Profiles()[DefaultProfileName],
		UI:      &recordingUI{},
	}
}

func TestSequenceShape(t *testing.T) {
	b := testBuilder(t)
	steps, defaults := b.Sequence()

	require.Len(t, steps, 9)

	// Informational bookends carry no action.
	assert.Equal(t, "Welcome", steps[0].Name)
	assert.Nil(t, steps[0].Action)
	assert.Equal(t, "Finish", steps[len(steps)-1].Name)
	assert.Nil(t, steps[len(steps)-1].Action)

	// Each configure step confirms its component directory.
	var components []string
	for _, s := range steps {
		if s.Component != "" {
			components = append(components, s.Component)
		}
	}
	assert.Equal(t, []string{CompOSGeo, CompSNAP, CompR}, components)

	assert.Equal(t, `C:\OSGeo4W`, defaults[CompOSGeo])
	assert.Equal(t, `C:\Program Files\SNAP`, defaults[CompSNAP])
	assert.Equal(t, `C:\Program Files\R\R-4.1.3`, defaults[CompR])
}

func TestSequenceDirOverrides(t *testing.T) {
	b := testBuilder(t)
	b.Cfg.InstallDirs = map[string]string{
		CompOSGeo: `D:\OSGeo4W`,
		CompSNAP:  "",
	}
	_, defaults := b.Sequence()

	assert.Equal(t, `D:\OSGeo4W`, defaults[CompOSGeo])
	// Empty overrides keep the profile default.
	assert.Equal(t, `C:\Program Files\SNAP`, defaults[CompSNAP])
}

func TestProfilesCoverBothGenerations(t *testing.T) {
	profiles := Profiles()
	require.Contains(t, profiles, "qgis-3.16")
	require.Contains(t, profiles, DefaultProfileName)

	old := profiles["qgis-3.16"]
	assert.Equal(t, `C:\OSGeo4W64`, old.OSGeoDefaultDir)
	assert.Equal(t, "Python37", old.PythonDir)

	current := profiles[DefaultProfileName]
	assert.Equal(t, "Python39", current.PythonDir)
	assert.Contains(t, current.SnapInstallerGlob, "x64_9")
}

func TestPipOfflineCommand(t *testing.T) {
	osgeoRoot := t.TempDir()
	packageDir := t.TempDir()
	writeTestFile(t, filepath.Join(packageDir, "requirements.txt"), "numpy\n")
	writeTestFile(t, filepath.Join(osgeoRoot, "bin", "o4w_env.bat"), "@echo off\n")

	cmd, err := pipOfflineCommand(osgeoRoot, packageDir)
	require.NoError(t, err)
	assert.Contains(t, cmd, "o4w_env.bat")
	assert.Contains(t, cmd, "py3_env.bat")
	assert.Contains(t, cmd, "if defined OSGEO4W_ROOT")
	assert.Contains(t, cmd, "--no-index")
	assert.Contains(t, cmd, filepath.Join(packageDir, "requirements.txt"))
}

func TestPipOfflineCommandMissingPayload(t *testing.T) {
	osgeoRoot := t.TempDir()

	_, err := pipOfflineCommand(osgeoRoot, t.TempDir())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no requirements file found")
}

func TestPipOfflineCommandMissingEnv(t *testing.T) {
	osgeoRoot := t.TempDir()
	packageDir := t.TempDir()
	writeTestFile(t, filepath.Join(packageDir, "requirements.txt"), "numpy\n")

	_, err := pipOfflineCommand(osgeoRoot, packageDir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no OSGeo4W env file found")
}

func TestPythonRawString(t *testing.T) {
	assert.Equal(t, `r"C:\\SNAP\\jre"`, pythonRawString(`C:\SNAP\jre`))
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
}
