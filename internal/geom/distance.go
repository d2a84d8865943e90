package geom

import (
	"fmt"
	"math"
	"strings"
)

// Metric measures how far a point lies from the chord l1–l2.
type Metric int

const (
	// Vertical is the difference in y between p and the chord's line at p.X.
	// Intended for curves that are monotonic in x.
	Vertical Metric = iota
	// Perpendicular is the shortest distance from p to the chord's line.
	Perpendicular
)

func (m Metric) String() string {
	switch m {
	case Vertical:
		return "vertical"
	case Perpendicular:
		return "perpendicular"
	default:
		return fmt.Sprintf("Metric(%d)", int(m))
	}
}

// ParseMetric accepts "vertical" or "perpendicular" (or their first letter).
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "vertical", "v":
		return Vertical, nil
	case "perpendicular", "p":
		return Perpendicular, nil
	}
	return 0, fmt.Errorf("unknown metric %q: %w", s, ErrInvalidArgument)
}

// Distance returns the distance of p from the chord l1–l2 under m.
// A vertical chord has no slope; Vertical then measures perpendicular
// distance instead. Distances within rounding noise of the coordinates
// are reported as 0, so sampled points on a straight line lie exactly on
// the chord.
func (m Metric) Distance(l1, l2, p Point) float64 {
	var d float64
	if m == Vertical && l1.X != l2.X {
		d = VerticalDistance(l1, l2, p)
	} else {
		d = PerpendicularDistance(l1, l2, p)
	}
	if d <= roundingBound(l1, l2, p) {
		return 0
	}
	return d
}

// machEps is the spacing of float64 values at 1.
const machEps = 0x1p-52

// roundingBound is a few ulps of the largest coordinate involved.
func roundingBound(l1, l2, p Point) float64 {
	scale := max(
		math.Abs(l1.X), math.Abs(l1.Y),
		math.Abs(l2.X), math.Abs(l2.Y),
		math.Abs(p.X), math.Abs(p.Y),
	)
	return 32 * machEps * scale
}

// VerticalDistance returns |y - p.Y| where y is the chord's line evaluated at
// p.X. The result is undefined (±Inf or NaN) when l1.X == l2.X; use
// Metric.Distance to get the fallback.
func VerticalDistance(l1, l2, p Point) float64 {
	slope := (l2.Y - l1.Y) / (l2.X - l1.X)
	lineY := l1.Y + (p.X-l1.X)*slope
	return math.Abs(lineY - p.Y)
}

// PerpendicularDistance returns the distance from p to the infinite line
// through l1 and l2, or to l1 if the two coincide.
func PerpendicularDistance(l1, l2, p Point) float64 {
	dx := l2.X - l1.X
	dy := l2.Y - l1.Y
	den := math.Hypot(dx, dy)
	if den == 0 {
		return p.Distance(l1)
	}
	return math.Abs(dx*(p.Y-l1.Y)-(p.X-l1.X)*dy) / den
}
