package borehole

import (
	"cmp"
	"slices"
)

// Locate binary-searches the stations for md. An exact hit returns the
// station index; otherwise it returns the upper station of the bracketing
// pair, or ErrOutOfRange when md is before the first or after the last station.
func (t Stations) Locate(md float64) (Location, error) {
	i, found := slices.BinarySearchFunc(t, md, func(s SurveyStation, target float64) int {
		return cmp.Compare(s.MD, target)
	})
	if found {
		return Location{Index: i, Exact: true}, nil
	}
	if i == 0 || i == len(t) {
		return Location{}, ErrOutOfRange
	}
	return Location{Index: i}, nil
}
