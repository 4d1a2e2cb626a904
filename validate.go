package borehole

import (
	"fmt"
	"math"
)

// Validate checks that the stations are sorted by MD without duplicates.
// The conversion functions assume this and never call it themselves.
func (t Stations) Validate() error {
	for k := range t {
		if math.IsNaN(t[k].MD) {
			return fmt.Errorf("station %d: %w", k, ErrInvalidMD)
		}
		if k == 0 {
			continue
		}
		switch prev, cur := t[k-1].MD, t[k].MD; {
		case cur == prev:
			return fmt.Errorf("stations %d and %d at md %g: %w", k-1, k, cur, ErrDuplicateMD)
		case cur < prev:
			return fmt.Errorf("station %d at md %g follows md %g: %w", k, cur, prev, ErrUnsorted)
		}
	}
	return nil
}
