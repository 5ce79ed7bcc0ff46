package simreader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCoordinateKey_TrimsWhitespace(t *testing.T) {
	assert.Equal(t, "4.88500,-4.88500", coordinateKey(" 4.88500 ", "-4.88500"))
}

func TestLoadDetectorMap(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "detectors.json")
	content := `{"4.88500,4.88500": "q0", "-4.88500,4.88500": "q1"}`
	require.NoError(t, os.WriteFile(filename, []byte(content), 0644))

	detectors, err := LoadDetectorMap(filename)
	require.NoError(t, err)
	assert.Equal(t, "q0", detectors["4.88500,4.88500"])
	assert.Equal(t, "q1", detectors["-4.88500,4.88500"])
}

func TestLoadDetectorMap_MissingFile(t *testing.T) {
	_, err := LoadDetectorMap("no-such-map.json")
	var open *ErrOpenFile
	require.ErrorAs(t, err, &open)
}

func TestLoadDetectorMap_BadJSON(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "detectors.json")
	require.NoError(t, os.WriteFile(filename, []byte("{not json"), 0644))

	_, err := LoadDetectorMap(filename)
	assert.Error(t, err)
}

func TestDetectors_SortedDistinct(t *testing.T) {
	detectors := DetectorMap{
		"1.0,1.0":   "q1",
		"-1.0,1.0":  "q0",
		"-1.0,-1.0": "q1",
	}
	assert.Equal(t, []string{"q0", "q1"}, detectors.Detectors())
}
