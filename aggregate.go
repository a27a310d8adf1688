package money

import "fmt"

// Sum returns the exact sum of the amounts.
//
// Sum returns an error if:
//   - no amounts are given;
//   - amounts are denominated in different currencies.
func Sum(amounts ...Money) (Money, error) {
	s, err := sum(amounts)
	if err != nil {
		return Money{}, fmt.Errorf("computing sum: %w", err)
	}
	return s, nil
}

func sum(amounts []Money) (Money, error) {
	if len(amounts) == 0 {
		return Money{}, ErrEmptyInput
	}
	s := amounts[0]
	for _, b := range amounts[1:] {
		var err error
		s, err = s.Add(b)
		if err != nil {
			return Money{}, err
		}
	}
	return s, nil
}

// Min returns the smallest of the amounts.
// If several amounts are equally small, the first one is returned.
//
// Min returns an error if:
//   - no amounts are given;
//   - amounts are denominated in different currencies.
func Min(amounts ...Money) (Money, error) {
	m, err := pick(amounts, -1)
	if err != nil {
		return Money{}, fmt.Errorf("computing min: %w", err)
	}
	return m, nil
}

// Max returns the largest of the amounts.
// If several amounts are equally large, the first one is returned.
//
// Max returns an error if:
//   - no amounts are given;
//   - amounts are denominated in different currencies.
func Max(amounts ...Money) (Money, error) {
	m, err := pick(amounts, 1)
	if err != nil {
		return Money{}, fmt.Errorf("computing max: %w", err)
	}
	return m, nil
}

// pick returns the first amount b for which every other amount a satisfies
// a.Cmp(b) != want.
func pick(amounts []Money, want int) (Money, error) {
	if len(amounts) == 0 {
		return Money{}, ErrEmptyInput
	}
	m := amounts[0]
	for _, b := range amounts[1:] {
		c, err := b.Cmp(m)
		if err != nil {
			return Money{}, err
		}
		if c == want {
			m = b
		}
	}
	return m, nil
}

// Avg returns the arithmetic mean of the amounts rounded to whole minor
// units using [HalfUp].
//
// Avg returns an error if:
//   - no amounts are given;
//   - amounts are denominated in different currencies.
func Avg(amounts ...Money) (Money, error) {
	s, err := sum(amounts)
	if err != nil {
		return Money{}, fmt.Errorf("computing average: %w", err)
	}
	a, err := s.QuoInt(int64(len(amounts)), HalfUp)
	if err != nil {
		return Money{}, fmt.Errorf("computing average: %w", err)
	}
	return a, nil
}
