package money

import (
	"fmt"
	"strings"
)

// RoundingMode type represents a rule for turning an inexact quotient
// into an integer number of minor units.
// The zero value is [HalfUp], which is the default everywhere a mode
// is accepted.
type RoundingMode int8

const (
	// HalfUp rounds to the nearest integer, ties away from zero.
	HalfUp RoundingMode = iota
	// HalfDown rounds to the nearest integer, ties toward zero.
	HalfDown
	// HalfEven rounds to the nearest integer, ties to the even neighbour
	// (banker's rounding).
	HalfEven
	// HalfOdd rounds to the nearest integer, ties to the odd neighbour.
	HalfOdd
	// Up rounds away from zero.
	Up
	// Down rounds toward zero (truncation).
	Down
	// HalfPositiveInfinity rounds to the nearest integer, ties toward
	// positive infinity.
	HalfPositiveInfinity
	// HalfNegativeInfinity rounds to the nearest integer, ties toward
	// negative infinity.
	HalfNegativeInfinity
	// Ceiling rounds toward positive infinity.
	Ceiling
	// Floor rounds toward negative infinity.
	Floor
)

var modeNames = [...]string{
	HalfUp:               "half-up",
	HalfDown:             "half-down",
	HalfEven:             "half-even",
	HalfOdd:              "half-odd",
	Up:                   "up",
	Down:                 "down",
	HalfPositiveInfinity: "half-positive-infinity",
	HalfNegativeInfinity: "half-negative-infinity",
	Ceiling:              "ceiling",
	Floor:                "floor",
}

// ParseRoundingMode converts a name such as "half-even" or "HALF_EVEN"
// to a rounding mode.
func ParseRoundingMode(name string) (RoundingMode, error) {
	s := strings.ReplaceAll(strings.ToLower(name), "_", "-")
	for m, n := range modeNames {
		if n == s {
			return RoundingMode(m), nil //nolint:gosec
		}
	}
	return 0, fmt.Errorf("%w: unknown rounding mode %q", ErrInvalidArgument, name)
}

// String implements the [fmt.Stringer] interface.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m RoundingMode) String() string {
	if !m.valid() {
		return fmt.Sprintf("RoundingMode(%d)", int8(m))
	}
	return modeNames[m]
}

func (m RoundingMode) valid() bool {
	return 0 <= m && int(m) < len(modeNames)
}

// quo calculates n / d rounded according to the mode.
// It is the only place where an inexact division is turned into an integer.
func (m RoundingMode) quo(n, d Int) (Int, error) {
	if !m.valid() {
		return Int{}, fmt.Errorf("%w: rounding mode %v", ErrInvalidArgument, m)
	}
	q, r, err := n.QuoRem(d)
	if err != nil {
		return Int{}, err
	}
	neg := n.Sign()*d.Sign() < 0
	return m.round(neg, q.Abs(), r.Abs(), d.Abs()), nil
}

// round takes the magnitudes of a truncated quotient q, remainder r and
// divisor d, and returns the quotient with the sign of the exact result,
// moved one unit away from zero if the mode requires it.
func (m RoundingMode) round(neg bool, q, r, d Int) Int {
	if m.increment(neg, q, r, d) {
		q = q.Add(one)
	}
	if neg {
		return q.Neg()
	}
	return q
}

func (m RoundingMode) increment(neg bool, q, r, d Int) bool {
	if r.IsZero() {
		return false
	}
	switch m {
	case Up:
		return true
	case Down:
		return false
	case Ceiling:
		return !neg
	case Floor:
		return neg
	}
	// r / d compared to 1/2
	switch c := r.Add(r).Cmp(d); {
	case c > 0:
		return true
	case c < 0:
		return false
	}
	switch m {
	case HalfUp:
		return true
	case HalfEven:
		return q.IsOdd()
	case HalfOdd:
		return !q.IsOdd()
	case HalfPositiveInfinity:
		return !neg
	case HalfNegativeInfinity:
		return neg
	}
	return false // HalfDown
}
