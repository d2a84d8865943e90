package geom

import "errors"

var (
	// ErrInvalidArgument is returned for parameters outside an operation's
	// domain, such as fewer than two sampling steps or a negative tolerance.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrInsufficientPoints is returned when simplifying fewer than two points.
	ErrInsufficientPoints = errors.New("insufficient points")
)
