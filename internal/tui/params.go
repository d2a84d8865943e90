package tui

import (
	"fmt"
	"math"

	"rdplot/internal/geom"
)

// Params are the values the sliders control.
type Params struct {
	Start   float64
	End     float64
	Steps   uint32
	Epsilon float64
}

// Slider bounds.
const (
	MinX       = 0.0
	MaxX       = 5.0
	MinSteps   = 10
	MaxSteps   = 1000
	MinEpsilon = 0.0
	MaxEpsilon = 0.5
)

var DefaultParams = Params{Start: 0, End: 2, Steps: 300, Epsilon: 0.05}

// Clamp returns p with every field forced into its slider range.
func (p Params) Clamp() Params {
	p.Start = clampF(p.Start, MinX, MaxX)
	p.End = clampF(p.End, MinX, MaxX)
	p.Steps = uint32(clampF(float64(p.Steps), MinSteps, MaxSteps))
	p.Epsilon = clampF(p.Epsilon, MinEpsilon, MaxEpsilon)
	return p
}

// Validate reports the first field outside its slider range.
func (p Params) Validate() error {
	switch {
	case !inRange(p.Start, MinX, MaxX):
		return fmt.Errorf("start %g outside [%g, %g]: %w", p.Start, MinX, MaxX, geom.ErrInvalidArgument)
	case !inRange(p.End, MinX, MaxX):
		return fmt.Errorf("end %g outside [%g, %g]: %w", p.End, MinX, MaxX, geom.ErrInvalidArgument)
	case p.Steps < MinSteps || p.Steps > MaxSteps:
		return fmt.Errorf("steps %d outside [%d, %d]: %w", p.Steps, MinSteps, MaxSteps, geom.ErrInvalidArgument)
	case !inRange(p.Epsilon, MinEpsilon, MaxEpsilon):
		return fmt.Errorf("epsilon %g outside [%g, %g]: %w", p.Epsilon, MinEpsilon, MaxEpsilon, geom.ErrInvalidArgument)
	}
	return nil
}

func inRange(v, lo, hi float64) bool {
	return v >= lo && v <= hi
}

type slider struct {
	name      string
	min, max  float64
	step, big float64
	format    string
	get       func(Params) float64
	set       func(*Params, float64)
	sampling  bool // only meaningful for a sampled source
}

var sliders = []slider{
	{
		name: "start", min: MinX, max: MaxX, step: 0.05, big: 0.5, format: "%.2f", sampling: true,
		get: func(p Params) float64 { return p.Start },
		set: func(p *Params, v float64) { p.Start = v },
	},
	{
		name: "end", min: MinX, max: MaxX, step: 0.05, big: 0.5, format: "%.2f", sampling: true,
		get: func(p Params) float64 { return p.End },
		set: func(p *Params, v float64) { p.End = v },
	},
	{
		name: "steps", min: MinSteps, max: MaxSteps, step: 10, big: 100, format: "%.0f", sampling: true,
		get: func(p Params) float64 { return float64(p.Steps) },
		set: func(p *Params, v float64) { p.Steps = uint32(math.Round(v)) },
	},
	{
		name: "epsilon", min: MinEpsilon, max: MaxEpsilon, step: 0.005, big: 0.05, format: "%.3f",
		get: func(p Params) float64 { return p.Epsilon },
		set: func(p *Params, v float64) { p.Epsilon = v },
	},
}

// adjust moves the value n steps, snapping to the step grid.
func (s slider) adjust(p Params, n int, big bool) Params {
	step := s.step
	if big {
		step = s.big
	}
	v := s.get(p) + float64(n)*step
	v = math.Round(v/s.step) * s.step
	s.set(&p, clampF(v, s.min, s.max))
	return p
}

// fraction returns the value's position within the slider range.
func (s slider) fraction(p Params) float64 {
	return clampF((s.get(p)-s.min)/(s.max-s.min), 0, 1)
}

func (s slider) value(p Params) string {
	return fmt.Sprintf(s.format, s.get(p))
}
