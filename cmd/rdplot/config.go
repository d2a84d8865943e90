package main

import (
	"fmt"
	"io"
	"math"

	"rdplot/internal/geom"
	"rdplot/internal/tui"
)

// parseConfig validates flag values against the slider bounds.
func parseConfig(start, end float64, steps uint, epsilon float64, fn, metric, scan string) (tui.Config, error) {
	cfg := tui.DefaultConfig()
	if steps > math.MaxUint32 {
		return cfg, fmt.Errorf("steps %d: %w", steps, geom.ErrInvalidArgument)
	}
	cfg.Params = tui.Params{Start: start, End: end, Steps: uint32(steps), Epsilon: epsilon}
	if err := cfg.Params.Validate(); err != nil {
		return cfg, err
	}
	var err error
	if cfg.Kind, err = geom.ParseKind(fn); err != nil {
		return cfg, err
	}
	if cfg.Options.Metric, err = geom.ParseMetric(metric); err != nil {
		return cfg, err
	}
	if cfg.Options.Scan, err = geom.ParseScan(scan); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// printWKT writes the source polyline and its simplification, one LINESTRING
// per line. A non-empty src replaces the sampled function.
func printWKT(w io.Writer, cfg tui.Config, src string) error {
	var pts []geom.Point
	var err error
	if src != "" {
		pts, err = geom.ParseWKT(src)
	} else {
		p := cfg.Params
		pts, err = geom.Sampler{Func: cfg.Kind.Func()}.Sample(p.Start, p.End, p.Steps)
	}
	if err != nil {
		return err
	}
	simplified, err := geom.SimplifyOpt(pts, cfg.Params.Epsilon, cfg.Options)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(w, "%s\n%s\n", geom.MarshalWKT(pts), geom.MarshalWKT(simplified))
	return err
}
