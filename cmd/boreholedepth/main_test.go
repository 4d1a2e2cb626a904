package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	borehole "github.com/flywave/go-borehole"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doglegGeometry = `stations:
  - {md: 0, x: 0, y: 0, z: 0, azimuth: 0, inclination: 0}
  - {md: 100, x: 10, y: 0, z: 95, azimuth: 90, inclination: 30}
`

const slantedGeometry = `stations:
  - {md: 0, x: 0, y: 0, z: 0}
  - {md: 100, x: 60, y: 0, z: 80}
`

func writeGeometry(t *testing.T, doc string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "well.yaml")
	require.NoError(t, os.WriteFile(path, []byte(doc), 0o600))
	return path
}

func execute(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestTVDCommand(t *testing.T) {
	path := writeGeometry(t, doglegGeometry)

	out, err := execute("tvd", "--geometry", path, "50", "100", "150")
	require.NoError(t, err)
	assert.Equal(t, "50\t48.158\n100\t95.000\n150\tn/a\n", out)
}

func TestTVDCommandPrecision(t *testing.T) {
	path := writeGeometry(t, doglegGeometry)

	out, err := execute("tvd", "-g", path, "--precision", "1", "25")
	require.NoError(t, err)
	assert.Equal(t, "25\t24.0\n", out)
}

func TestTVDCommandVertical(t *testing.T) {
	path := writeGeometry(t, "stations: []\n")

	out, err := execute("tvd", "-g", path, "--", "12.5", "-3")
	require.NoError(t, err)
	assert.Equal(t, "12.5\t12.500\n-3\tn/a\n", out)
}

func TestMDCommand(t *testing.T) {
	path := writeGeometry(t, slantedGeometry)

	out, err := execute("md", "-g", path, "40", "90")
	require.NoError(t, err)
	assert.Equal(t, "40\t50.000\n90\tn/a\n", out)
}

func TestValidateCommand(t *testing.T) {
	path := writeGeometry(t, slantedGeometry)

	out, err := execute("validate", "-g", path)
	require.NoError(t, err)
	assert.Equal(t, "OK: "+path+" (2 stations)\n", out)

	unsorted := writeGeometry(t, "stations:\n  - {md: 10, z: 10}\n  - {md: 0, z: 0}\n")
	_, err = execute("validate", "-g", unsorted)
	assert.ErrorIs(t, err, borehole.ErrUnsorted)
}

func TestCommandErrors(t *testing.T) {
	path := writeGeometry(t, doglegGeometry)

	_, err := execute("tvd", "50")
	assert.ErrorContains(t, err, "geometry is required")

	_, err = execute("tvd", "-g", path, "deep")
	assert.ErrorContains(t, err, `invalid depth "deep"`)

	_, err = execute("md", "-g", filepath.Join(t.TempDir(), "missing.yaml"), "1")
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = execute("tvd", "-g", path)
	assert.Error(t, err)
}
