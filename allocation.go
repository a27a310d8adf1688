package money

import (
	"fmt"
	"slices"

	"github.com/govalues/decimal"
)

// Allocate splits amount m into parts proportional to the given ratios,
// one part per ratio in the same order.
// The parts always sum up to the original amount.
//
// Parts are computed with the [largest remainder method]: every part first
// receives its exact share rounded toward negative infinity, then the minor
// units left over are handed out one by one to the parts with the largest
// fractional remainders. Parts with equal remainders are served in their
// original order. A part with a zero ratio always receives zero.
// See also methods [Money.AllocateInt] and [Money.AllocateTo].
//
// Allocate returns an error if:
//   - no ratios are given;
//   - any ratio is negative;
//   - all ratios are zero.
//
// [largest remainder method]: https://en.wikipedia.org/wiki/Largest_remainders_method
func (m Money) Allocate(ratios ...decimal.Decimal) ([]Money, error) {
	// Common denominator
	scale := 0
	for _, r := range ratios {
		scale = max(scale, r.Scale())
	}
	weights := make([]Int, len(ratios))
	for i, r := range ratios {
		num, s := decimalParts(r)
		weights[i] = num.Mul(pow10(scale - s))
	}
	res, err := m.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by %v: %w", m, ratios, err)
	}
	return res, nil
}

// AllocateInt is like [Money.Allocate] but takes integer ratios.
func (m Money) AllocateInt(ratios ...int64) ([]Money, error) {
	weights := make([]Int, len(ratios))
	for i, r := range ratios {
		weights[i] = NewInt(r)
	}
	res, err := m.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("allocating %v by %v: %w", m, ratios, err)
	}
	return res, nil
}

// AllocateTo splits amount m into the given number of parts that are as
// equal as possible and sum up to the original amount.
// If the amount cannot be divided equally, the remaining minor units are
// distributed among the first parts of the slice.
// For example, 15 split into 2 parts gives [8, 7].
//
// AllocateTo returns an error if the number of parts is not a positive integer.
func (m Money) AllocateTo(parts int) ([]Money, error) {
	if parts <= 0 {
		return nil, fmt.Errorf("splitting %v into %v parts: %w: number of parts must be positive", m, parts, ErrInvalidArgument)
	}
	weights := make([]Int, parts)
	for i := range weights {
		weights[i] = one
	}
	res, err := m.allocate(weights)
	if err != nil {
		return nil, fmt.Errorf("splitting %v into %v parts: %w", m, parts, err)
	}
	return res, nil
}

// allocate distributes m in proportion to non-negative integer weights.
func (m Money) allocate(weights []Int) ([]Money, error) {
	if len(weights) == 0 {
		return nil, fmt.Errorf("%w: no ratios", ErrInvalidArgument)
	}

	// Total
	var total Int
	for _, w := range weights {
		if w.IsNeg() {
			return nil, fmt.Errorf("%w: negative ratio %v", ErrInvalidArgument, w)
		}
		total = total.Add(w)
	}
	if total.IsZero() {
		return nil, fmt.Errorf("%w: ratios sum up to zero", ErrInvalidArgument)
	}

	// Floored shares, remainders are in [0, total)
	shares := make([]Int, len(weights))
	rems := make([]Int, len(weights))
	left := m.amount
	for i, w := range weights {
		q, r, err := m.amount.Mul(w).DivMod(total)
		if err != nil {
			return nil, err
		}
		shares[i], rems[i] = q, r
		left = left.Sub(q)
	}

	// Leftover distribution, 0 <= left < len(weights)
	if left.IsPos() {
		order := make([]int, len(weights))
		for i := range order {
			order[i] = i
		}
		slices.SortStableFunc(order, func(i, j int) int {
			return rems[j].Cmp(rems[i])
		})
		for _, i := range order {
			if !left.IsPos() {
				break
			}
			shares[i] = shares[i].Add(one)
			left = left.Sub(one)
		}
	}

	res := make([]Money, len(weights))
	for i, s := range shares {
		res[i] = newMoney(m.curr, s)
	}
	return res, nil
}
