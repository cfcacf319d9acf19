package sysinfo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalRAMMB(t *testing.T) {
	total, err := TotalRAMMB()
	require.NoError(t, err)
	assert.Greater(t, total, 0)
}

func TestJavaMaxMemMB(t *testing.T) {
	total, err := TotalRAMMB()
	require.NoError(t, err)

	got := JavaMaxMemMB(0.6)
	assert.Equal(t, int(float64(total)*0.6), got)
	assert.Greater(t, got, 0)
}

func TestOSDescription(t *testing.T) {
	assert.NotEmpty(t, OSDescription())
}
