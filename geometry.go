package borehole

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sort"

	vec3d "github.com/flywave/go3d/float64/vec3"
	"gopkg.in/yaml.v3"
)

type stationRecord struct {
	MD          float64  `yaml:"md"`
	X           float64  `yaml:"x"`
	Y           float64  `yaml:"y"`
	Z           float64  `yaml:"z"`
	Azimuth     *float64 `yaml:"azimuth,omitempty"`
	Inclination *float64 `yaml:"inclination,omitempty"`
}

type geometryDocument struct {
	Stations []stationRecord `yaml:"stations"`
}

// DecodeGeometry reads a YAML geometry document as is, without reordering or
// checking it. An empty document has no stations.
func DecodeGeometry(r io.Reader) (Stations, error) {
	var doc geometryDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode geometry: %w", err)
	}

	stations := make(Stations, 0, len(doc.Stations))
	for _, rec := range doc.Stations {
		stations = append(stations, SurveyStation{
			MD:          rec.MD,
			Position:    vec3d.T{rec.X, rec.Y, rec.Z},
			Azimuth:     rec.Azimuth,
			Inclination: rec.Inclination,
		})
	}
	return stations, nil
}

// LoadGeometry decodes a YAML geometry document and sorts it by MD. Stations
// sharing an MD are rejected.
func LoadGeometry(r io.Reader) (Stations, error) {
	stations, err := DecodeGeometry(r)
	if err != nil {
		return nil, err
	}

	sort.Stable(stations)

	if err := stations.Validate(); err != nil {
		return nil, fmt.Errorf("invalid geometry: %w", err)
	}
	return stations, nil
}

func LoadGeometryFile(path string) (Stations, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open geometry: %w", err)
	}
	defer f.Close()

	return LoadGeometry(f)
}
