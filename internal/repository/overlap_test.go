package repository

import (
	"testing"
	"time"
)

func day(d int) time.Time {
	return time.Date(2024, time.November, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	cases := []struct {
		name                 string
		aIn, aOut, bIn, bOut time.Time
		want                 bool
	}{
		{"existing start inside candidate", day(20), day(25), day(22), day(28), true},
		{"existing end inside candidate", day(20), day(25), day(18), day(22), true},
		{"existing contains candidate", day(22), day(23), day(20), day(25), true},
		{"candidate contains existing", day(20), day(25), day(22), day(23), true},
		{"identical intervals", day(20), day(25), day(20), day(25), true},
		{"disjoint before", day(20), day(25), day(10), day(15), false},
		{"disjoint after", day(20), day(25), day(26), day(28), false},
		{"existing checks in on candidate checkout day", day(20), day(25), day(25), day(28), false},
		{"candidate checks in on existing checkout day", day(25), day(28), day(20), day(25), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := overlaps(tc.aIn, tc.aOut, tc.bIn, tc.bOut); got != tc.want {
				t.Errorf("overlaps(%v,%v,%v,%v) = %v, want %v",
					tc.aIn.Format("01-02"), tc.aOut.Format("01-02"),
					tc.bIn.Format("01-02"), tc.bOut.Format("01-02"), got, tc.want)
			}
		})
	}
}

func TestOverlapsIsSymmetric(t *testing.T) {
	// Whichever reservation was stored first must not change the verdict.
	pairs := [][4]time.Time{
		{day(20), day(25), day(22), day(23)},
		{day(20), day(25), day(24), day(30)},
		{day(20), day(25), day(25), day(30)},
		{day(1), day(5), day(10), day(12)},
	}
	for _, p := range pairs {
		ab := overlaps(p[0], p[1], p[2], p[3])
		ba := overlaps(p[2], p[3], p[0], p[1])
		if ab != ba {
			t.Errorf("asymmetric verdict for %v: a/b=%v b/a=%v", p, ab, ba)
		}
	}
}
