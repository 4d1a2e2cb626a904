package borehole

// MDFromTVD approximates the measured depth at which the borehole reaches tvd.
//
// Each segment is treated as a straight line between its stations, so the
// result is not the inverse of TVDFromMD on curved segments. Segments are
// scanned from the top and the first one spanning tvd wins; for paths that
// are not monotonic in TVD later crossings are ignored. ErrOutOfRange is
// returned when no segment spans tvd.
func (t Stations) MDFromTVD(tvd float64) (float64, error) {
	for k := 1; k < len(t); k++ {
		a, b := &t[k-1], &t[k]

		// flat segments give NaN or ±Inf and never match
		f := (tvd - a.Z()) / (b.Z() - a.Z())
		if f >= 0 && f <= 1 {
			return a.MD + f*(b.MD-a.MD), nil
		}
	}
	return 0, ErrOutOfRange
}
