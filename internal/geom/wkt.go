package geom

import (
	"errors"
	"fmt"
	"strings"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
)

// ParseWKT parses a LINESTRING or MULTIPOINT into an ordered point sequence.
func ParseWKT(s string) ([]Point, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.New("empty wkt")
	}
	g, err := wkt.Unmarshal(s)
	if err != nil {
		return nil, fmt.Errorf("wkt: %w", err)
	}
	var src []orb.Point
	switch g := g.(type) {
	case orb.LineString:
		src = g
	case orb.MultiPoint:
		src = g
	default:
		return nil, fmt.Errorf("unsupported wkt type %s", g.GeoJSONType())
	}
	if len(src) == 0 {
		return nil, errors.New("wkt: no coordinates parsed")
	}
	pts := make([]Point, len(src))
	for i, p := range src {
		pts[i] = Point{X: p[0], Y: p[1]}
	}
	return pts, nil
}

// MarshalWKT encodes pts as a LINESTRING.
func MarshalWKT(pts []Point) string {
	ls := make(orb.LineString, len(pts))
	for i, p := range pts {
		ls[i] = orb.Point{p.X, p.Y}
	}
	return wkt.MarshalString(ls)
}
