package confedit

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplaceAssignments(t *testing.T) {
	path := filepath.Join(t.TempDir(), "jpyconfig.py")
	original := strings.Join([]string{
		"# jpy configuration",
		"java_home = None",
		"jvm_dll = None",
		"jvm_maxmem = None",
		"",
	}, "\n")
	require.NoError(t, os.WriteFile(path, []byte(original), 0644))

	require.NoError(t, ReplaceAssignments(path, map[string]string{
		"java_home": `r"C:\\Program Files\\SNAP\\jre"`,
		"jvm_dll":   `r"C:\\Program Files\\SNAP\\jre\\bin\\server\\jvm.dll"`,
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := string(data)
	assert.Contains(t, got, `java_home = r"C:\\Program Files\\SNAP\\jre"`)
	assert.Contains(t, got, `jvm_dll = r"C:\\Program Files\\SNAP\\jre\\bin\\server\\jvm.dll"`)
	assert.Contains(t, got, "jvm_maxmem = None", "untouched assignments must survive")
	assert.Contains(t, got, "# jpy configuration", "comments must survive")
}

func TestReplaceAssignmentsMissingFile(t *testing.T) {
	err := ReplaceAssignments(filepath.Join(t.TempDir(), "nope.py"), map[string]string{"a": "b"})
	require.Error(t, err)
}

func TestSetMaxHeap(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gpt.vmoptions")
	require.NoError(t, os.WriteFile(path, []byte("-Xms256m\n-Xmx4G\n-XX:+AggressiveOpts\n"), 0644))

	require.NoError(t, SetMaxHeap(path, 9830))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "-Xmx9830m")
	assert.NotContains(t, string(data), "-Xmx4G")
	assert.Contains(t, string(data), "-Xms256m", "other options must survive")
}

func TestAppendLinesIsIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "s3tbx.properties")
	lines := []string{
		"s3tbx.reader.olci.pixelGeoCoding=true",
		"s3tbx.reader.meris.pixelGeoCoding=true",
	}

	require.NoError(t, AppendLines(path, lines))
	require.NoError(t, AppendLines(path, lines))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(string(data), "olci.pixelGeoCoding"))
	assert.Equal(t, 1, strings.Count(string(data), "meris.pixelGeoCoding"))
}

func TestWriteSnappyINI(t *testing.T) {
	path := filepath.Join(t.TempDir(), "snappy.ini")
	require.NoError(t, WriteSnappyINI(path, `C:\Program Files\SNAP`, 9830))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	got := string(data)
	assert.Contains(t, got, "[DEFAULT]")
	assert.Contains(t, got, `snap_home=C:\Program Files\SNAP`)
	assert.Contains(t, got, "java_max_mem=9830m")
}
