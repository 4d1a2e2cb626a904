package borehole

// TVDFromMD returns the true vertical depth at the measured depth md.
// A station at exactly md yields its own depth without interpolation.
// ErrOutOfRange is returned when md is outside the surveyed span.
func (t Stations) TVDFromMD(md float64) (float64, error) {
	loc, err := t.Locate(md)
	if err != nil {
		return 0, err
	}
	if loc.Exact {
		return t[loc.Index].Z(), nil
	}
	return InterpolateTVD(t, loc.Index, md), nil
}

// TVDFromMDOrDefault is TVDFromMD for optional depths. A borehole with fewer
// than two stations is taken to be vertical, so any non-negative md is
// returned unchanged. nil means the depth is not computable.
func (t Stations) TVDFromMDOrDefault(md *float64) *float64 {
	if md == nil {
		return nil
	}
	if !t.HasGeometry() {
		if *md >= 0 {
			v := *md
			return &v
		}
		return nil
	}

	tvd, err := t.TVDFromMD(*md)
	if err != nil {
		return nil
	}
	return &tvd
}
