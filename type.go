package borehole

import (
	vec3d "github.com/flywave/go3d/float64/vec3"
)

// SurveyStation is one directional-survey record of a borehole. Position holds
// the projected x, y and the true vertical depth as its third component.
// Azimuth and Inclination are in degrees and may be absent.
type SurveyStation struct {
	MD          float64  `json:"md"`
	Position    vec3d.T  `json:"position"`
	Azimuth     *float64 `json:"azimuth,omitempty"`
	Inclination *float64 `json:"inclination,omitempty"`
}

func NewStation(md, x, y, z float64) SurveyStation {
	return SurveyStation{MD: md, Position: vec3d.T{x, y, z}}
}

// WithDirection returns a copy of the station carrying azimuth and inclination.
func (s SurveyStation) WithDirection(azimuth, inclination float64) SurveyStation {
	s.Azimuth = &azimuth
	s.Inclination = &inclination
	return s
}

// Z is the true vertical depth of the station.
func (s SurveyStation) Z() float64 {
	return s.Position[2]
}

func (s SurveyStation) hasDirection() bool {
	return s.Azimuth != nil && s.Inclination != nil
}

// Stations is the survey of one borehole, ordered by ascending MD without
// duplicates. Functions on Stations never modify or retain the slice.
type Stations []SurveyStation

func (t Stations) Len() int {
	return len(t)
}

func (t Stations) Less(i, j int) bool {
	return t[i].MD < t[j].MD
}

func (t Stations) Swap(i, j int) {
	t[i], t[j] = t[j], t[i]
}

// HasGeometry reports whether the survey has enough stations to interpolate.
func (t Stations) HasGeometry() bool {
	return len(t) >= 2
}

// Location is the result of Stations.Locate. When Exact is set Index is the
// matching station, otherwise the target lies between Index-1 and Index.
type Location struct {
	Index int
	Exact bool
}

func (l Location) Bracket() (lower, upper int) {
	if l.Exact {
		return l.Index, l.Index
	}
	return l.Index - 1, l.Index
}
