package geom

import (
	"errors"
	"math"
	"testing"
)

func TestDistances(t *testing.T) {
	for _, tc := range []struct {
		l1, l2, p     Point
		vert, perpend float64
	}{
		{Pt(0, 0), Pt(1, 1), Pt(0, 1), 1, math.Sqrt2 / 2},
		{Pt(0, 0), Pt(4, 0), Pt(2, 3), 3, 3},
		{Pt(0, 0), Pt(4, 0), Pt(9, -2), 2, 2},
		{Pt(1, 1), Pt(3, 5), Pt(2, 3), 0, 0},
		{Pt(0, 0), Pt(3, 4), Pt(4, -3), 8.333333333333334, 5},
	} {
		if got := VerticalDistance(tc.l1, tc.l2, tc.p); math.Abs(got-tc.vert) > 1e-12 {
			t.Errorf("VerticalDistance(%v, %v, %v) = %g, want %g", tc.l1, tc.l2, tc.p, got, tc.vert)
		}
		if got := PerpendicularDistance(tc.l1, tc.l2, tc.p); math.Abs(got-tc.perpend) > 1e-12 {
			t.Errorf("PerpendicularDistance(%v, %v, %v) = %g, want %g", tc.l1, tc.l2, tc.p, got, tc.perpend)
		}
	}
}

func TestMetricDistanceDegenerate(t *testing.T) {
	l1, l2 := Pt(2, 0), Pt(2, 10)
	p := Pt(5, 4)
	if got := Vertical.Distance(l1, l2, p); got != 3 {
		t.Errorf("vertical chord: got %g, want perpendicular fallback 3", got)
	}
	if got := Perpendicular.Distance(l1, l1, p); got != 5 {
		t.Errorf("zero-length chord: got %g, want 5", got)
	}
	if got := Vertical.Distance(l1, l1, p); got != 5 {
		t.Errorf("zero-length chord (vertical): got %g, want 5", got)
	}
}

func TestParseMetric(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Metric
	}{
		{"vertical", Vertical},
		{"V", Vertical},
		{" perpendicular ", Perpendicular},
		{"p", Perpendicular},
	} {
		got, err := ParseMetric(tc.in)
		if err != nil || got != tc.want {
			t.Errorf("ParseMetric(%q) = %v, %v; want %v", tc.in, got, err, tc.want)
		}
	}
	if _, err := ParseMetric("euclid"); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
	if s := Metric(7).String(); s != "Metric(7)" {
		t.Errorf("String() = %q", s)
	}
}
