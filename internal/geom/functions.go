package geom

import (
	"fmt"
	"math"
	"strings"
)

// Function is a real-valued function of one variable.
type Function interface {
	Eval(x float64) float64
}

// Func adapts an ordinary function to the Function interface.
type Func func(x float64) float64

// Eval returns f(x).
func (f Func) Eval(x float64) float64 { return f(x) }

// Kind selects one of the built-in curves.
type Kind int

const (
	Sine Kind = iota
	Cosine
	Exponential
	Polynomial
	Gaussian
	Damped
	Square
)

var kinds = []struct {
	name string
	desc string
	fn   Func
}{
	Sine:        {"sin", "sin(2πx)", func(x float64) float64 { return math.Sin(2 * math.Pi * x) }},
	Cosine:      {"cos", "cos(2πx)", func(x float64) float64 { return math.Cos(2 * math.Pi * x) }},
	Exponential: {"exp", "eˣ", math.Exp},
	Polynomial:  {"poly", "x³ - 3x² + 2x", func(x float64) float64 { return x*x*x - 3*x*x + 2*x }},
	Gaussian:    {"gauss", "e^(-x²)", func(x float64) float64 { return math.Exp(-x * x) }},
	Damped:      {"damped", "e^(-x)·sin(2πx)", func(x float64) float64 { return math.Exp(-x) * math.Sin(2*math.Pi*x) }},
	Square: {"square", "sgn(sin(2πx))", func(x float64) float64 {
		s := math.Sin(2 * math.Pi * x)
		switch {
		case s > 0:
			return 1
		case s < 0:
			return -1
		}
		return 0
	}},
}

// Kinds returns every built-in curve in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	for i := range kinds {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) valid() bool { return k >= 0 && int(k) < len(kinds) }

// String returns the short name accepted by ParseKind.
func (k Kind) String() string {
	if !k.valid() {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kinds[k].name
}

// Describe returns the curve's formula.
func (k Kind) Describe() string {
	if !k.valid() {
		return k.String()
	}
	return kinds[k].desc
}

// Func returns the curve as a Function. Unknown kinds fall back to Sine.
func (k Kind) Func() Function {
	if !k.valid() {
		return kinds[Sine].fn
	}
	return kinds[k].fn
}

// ParseKind maps a short name such as "sin" or "gauss" to its Kind.
func ParseKind(name string) (Kind, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, k := range kinds {
		if k.name == n {
			return Kind(i), nil
		}
	}
	return 0, fmt.Errorf("unknown function %q: %w", name, ErrInvalidArgument)
}
