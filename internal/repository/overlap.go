package repository

import "time"

// overlaps reports whether the candidate stay [aIn, aOut) intersects an
// existing stay [bIn, bOut).  Three cases are tested: the existing stay
// starts inside the candidate, ends inside the candidate, or fully
// contains it.  Stays that merely touch (one checking out the day the
// other checks in) do not overlap.
func overlaps(aIn, aOut, bIn, bOut time.Time) bool {
	// existing start falls inside the candidate interval
	if !bIn.Before(aIn) && bIn.Before(aOut) {
		return true
	}
	// existing end falls inside the candidate interval
	if bOut.After(aIn) && !bOut.After(aOut) {
		return true
	}
	// existing interval fully contains the candidate
	if !bIn.After(aIn) && !bOut.Before(aOut) {
		return true
	}
	return false
}
