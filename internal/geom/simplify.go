package geom

import (
	"fmt"
	"math"
	"strings"
)

// Scan selects which interior points of a segment are candidates for the
// farthest point.
type Scan int

const (
	// ScanAll considers every point strictly between the two endpoints.
	ScanAll Scan = iota
	// ScanSkipLast never considers the point immediately before the last
	// one. Older revisions of the plotting tool scanned this way; it is kept
	// so their output can be reproduced. Unlike ScanAll it is not
	// idempotent: simplifying its output again can drop further points,
	// because removed points change which point is skipped.
	ScanSkipLast
)

func (s Scan) String() string {
	switch s {
	case ScanAll:
		return "all"
	case ScanSkipLast:
		return "skiplast"
	default:
		return fmt.Sprintf("Scan(%d)", int(s))
	}
}

// ParseScan accepts "all" or "skiplast".
func ParseScan(s string) (Scan, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return ScanAll, nil
	case "skiplast", "skip-last", "legacy":
		return ScanSkipLast, nil
	}
	return 0, fmt.Errorf("unknown scan range %q: %w", s, ErrInvalidArgument)
}

type Options struct {
	Metric Metric
	Scan   Scan
}

var DefaultOptions = Options{Metric: Vertical, Scan: ScanAll}

// Simplify reduces points with the Ramer–Douglas–Peucker algorithm using
// DefaultOptions. See SimplifyOpt.
func Simplify(points []Point, epsilon float64) ([]Point, error) {
	return SimplifyOpt(points, epsilon, DefaultOptions)
}

// SimplifyOpt returns the subsequence of points that approximates the whole
// to within epsilon under opts.Metric. The first and last points are always
// kept. The result never aliases points.
//
// It fails with ErrInsufficientPoints for fewer than two points and with
// ErrInvalidArgument for a negative or NaN epsilon.
func SimplifyOpt(points []Point, epsilon float64, opts Options) ([]Point, error) {
	idx, err := SimplifyIndices(points, epsilon, opts)
	if err != nil {
		return nil, err
	}
	out := make([]Point, len(idx))
	for i, j := range idx {
		out[i] = points[j]
	}
	return out, nil
}

// SimplifyIndices is like SimplifyOpt but returns the ascending indices of
// the retained points.
func SimplifyIndices(points []Point, epsilon float64, opts Options) ([]int, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("simplify: got %d points, need at least 2: %w", len(points), ErrInsufficientPoints)
	}
	if epsilon < 0 || math.IsNaN(epsilon) {
		return nil, fmt.Errorf("simplify: epsilon=%g: %w", epsilon, ErrInvalidArgument)
	}
	idx := rdp(points, 0, len(points)-1, epsilon, opts)
	Logger().Debug("simplified",
		"in", len(points),
		"out", len(idx),
		"epsilon", epsilon,
		"metric", opts.Metric,
		"scan", opts.Scan)
	return idx, nil
}

// rdp simplifies points[lo..hi] (inclusive) and returns the kept indices.
func rdp(points []Point, lo, hi int, epsilon float64, opts Options) []int {
	if hi-lo < 2 {
		return []int{lo, hi}
	}
	l1, l2 := points[lo], points[hi]
	last := hi - 1
	if opts.Scan == ScanSkipLast {
		last = hi - 2
	}

	dmax := 0.0
	imax := -1
	for i := lo + 1; i <= last; i++ {
		d := opts.Metric.Distance(l1, l2, points[i])
		if d > dmax {
			dmax = d
			imax = i
		}
	}
	if imax < 0 || dmax <= epsilon {
		return []int{lo, hi}
	}

	// imax belongs to both halves; drop it from the left before joining.
	left := rdp(points, lo, imax, epsilon, opts)
	right := rdp(points, imax, hi, epsilon, opts)
	out := make([]int, 0, len(left)+len(right)-1)
	out = append(out, left[:len(left)-1]...)
	return append(out, right...)
}
