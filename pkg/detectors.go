package simreader

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"golang.org/x/exp/maps"
)

// DetectorMap resolves a raw "x,y" coordinate pair, formatted exactly as it
// appears in the simulation log, to a logical detector identifier. The map
// must cover every coordinate pair the log can produce.
type DetectorMap map[string]string

// coordinateKey joins the two coordinate tokens of an HT record into the
// map key, trimming surrounding whitespace but preserving the log's decimal
// formatting.
func coordinateKey(x, y string) string {
	return strings.TrimSpace(x) + "," + strings.TrimSpace(y)
}

// LoadDetectorMap reads a detector map from a JSON file of the form
// {"<x>,<y>": "<detector>", ...}. Used when running without the geometry
// database.
func LoadDetectorMap(filename string) (DetectorMap, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, &ErrOpenFile{Filename: filename, Err: err}
	}
	var detectors DetectorMap
	if err := json.Unmarshal(data, &detectors); err != nil {
		return nil, err
	}
	return detectors, nil
}

// Detectors returns the distinct detector identifiers in the map, sorted.
func (m DetectorMap) Detectors() []string {
	seen := make(map[string]bool)
	for _, detector := range m {
		seen[detector] = true
	}
	detectors := maps.Keys(seen)
	sort.Strings(detectors)
	return detectors
}
