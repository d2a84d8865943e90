package geom

import (
	"fmt"
	"iter"
)

// Range yields the index and x coordinate of each of steps evenly spaced
// positions from start to end inclusive. It yields nothing when steps < 2.
func Range(start, end float64, steps uint32) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if steps < 2 {
			return
		}
		step := (end - start) / float64(steps-1)
		for i := 0; i < int(steps); i++ {
			if !yield(i, start+float64(i)*step) {
				return
			}
		}
	}
}

// Sampler evaluates a Function over an interval.
type Sampler struct {
	Func Function
}

// Sample returns steps points (x, f(x)) with x evenly spaced from start to
// end. It fails with ErrInvalidArgument when steps < 2.
func (s Sampler) Sample(start, end float64, steps uint32) ([]Point, error) {
	if steps < 2 {
		return nil, fmt.Errorf("sample: steps=%d, need at least 2: %w", steps, ErrInvalidArgument)
	}
	fn := s.Func
	if fn == nil {
		fn = Sine.Func()
	}
	pts := make([]Point, 0, steps)
	for _, x := range Range(start, end, steps) {
		pts = append(pts, Point{X: x, Y: fn.Eval(x)})
	}
	Logger().Debug("sampled", "start", start, "end", end, "steps", steps)
	return pts, nil
}

// Sample samples sin(2πx) from start to end.
func Sample(start, end float64, steps uint32) ([]Point, error) {
	return Sampler{Func: Sine.Func()}.Sample(start, end, steps)
}
