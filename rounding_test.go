package money

import (
	"errors"
	"testing"
)

func TestParseRoundingMode(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			name string
			want RoundingMode
		}{
			{"half-up", HalfUp},
			{"HALF_UP", HalfUp},
			{"half-down", HalfDown},
			{"Half_Even", HalfEven},
			{"half-odd", HalfOdd},
			{"up", Up},
			{"DOWN", Down},
			{"half-positive-infinity", HalfPositiveInfinity},
			{"HALF_NEGATIVE_INFINITY", HalfNegativeInfinity},
			{"ceiling", Ceiling},
			{"floor", Floor},
		}
		for _, tt := range tests {
			got, err := ParseRoundingMode(tt.name)
			if err != nil {
				t.Errorf("ParseRoundingMode(%q) failed: %v", tt.name, err)
				continue
			}
			if got != tt.want {
				t.Errorf("ParseRoundingMode(%q) = %v, want %v", tt.name, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := []string{"", "half", "nearest", "half up"}
		for _, name := range tests {
			_, err := ParseRoundingMode(name)
			if !errors.Is(err, ErrInvalidArgument) {
				t.Errorf("ParseRoundingMode(%q) failed with %v, want %v", name, err, ErrInvalidArgument)
			}
		}
	})
}

func TestRoundingMode_String(t *testing.T) {
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{HalfUp, "half-up"},
		{HalfEven, "half-even"},
		{Floor, "floor"},
		{RoundingMode(42), "RoundingMode(42)"},
		{RoundingMode(-1), "RoundingMode(-1)"},
	}
	for _, tt := range tests {
		if got := tt.mode.String(); got != tt.want {
			t.Errorf("RoundingMode.String() = %q, want %q", got, tt.want)
		}
	}
}

func TestRoundingMode_ZeroValue(t *testing.T) {
	var m RoundingMode
	if m != HalfUp {
		t.Errorf("RoundingMode zero value = %v, want %v", m, HalfUp)
	}
}

func TestRoundingMode_quo(t *testing.T) {
	// Quotients of n / d for every mode, in the order
	// HalfUp, HalfDown, HalfEven, HalfOdd, Up, Down,
	// HalfPositiveInfinity, HalfNegativeInfinity, Ceiling, Floor.
	tests := []struct {
		n, d int64
		want [10]int64
	}{
		{5, 2, [10]int64{3, 2, 2, 3, 3, 2, 3, 2, 3, 2}},
		{7, 2, [10]int64{4, 3, 4, 3, 4, 3, 4, 3, 4, 3}},
		{-5, 2, [10]int64{-3, -2, -2, -3, -3, -2, -2, -3, -2, -3}},
		{-7, 2, [10]int64{-4, -3, -4, -3, -4, -3, -3, -4, -3, -4}},
		{5, -2, [10]int64{-3, -2, -2, -3, -3, -2, -2, -3, -2, -3}},
		{7, 3, [10]int64{2, 2, 2, 2, 3, 2, 2, 2, 3, 2}},
		{8, 3, [10]int64{3, 3, 3, 3, 3, 2, 3, 3, 3, 2}},
		{-7, 3, [10]int64{-2, -2, -2, -2, -3, -2, -2, -2, -2, -3}},
		{-8, 3, [10]int64{-3, -3, -3, -3, -3, -2, -3, -3, -2, -3}},
		{6, 3, [10]int64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}},
		{0, 3, [10]int64{0, 0, 0, 0, 0, 0, 0, 0, 0, 0}},
		{1, 2, [10]int64{1, 0, 0, 1, 1, 0, 1, 0, 1, 0}},
		{-1, 2, [10]int64{-1, 0, 0, -1, -1, 0, 0, -1, 0, -1}},
	}
	for _, tt := range tests {
		for m, want := range tt.want {
			mode := RoundingMode(m)
			got, err := mode.quo(NewInt(tt.n), NewInt(tt.d))
			if err != nil {
				t.Errorf("%v.quo(%v, %v) failed: %v", mode, tt.n, tt.d, err)
				continue
			}
			if !got.Equal(NewInt(want)) {
				t.Errorf("%v.quo(%v, %v) = %v, want %v", mode, tt.n, tt.d, got, want)
			}
		}
	}
}

func TestRoundingMode_quoLarge(t *testing.T) {
	n := MustParseInt("-184467440737095516150") // -18446744073709551615 * 10
	d := MustParseInt("100")
	tests := []struct {
		mode RoundingMode
		want string
	}{
		{HalfUp, "-1844674407370955162"},
		{HalfDown, "-1844674407370955161"},
		{HalfEven, "-1844674407370955162"},
		{Ceiling, "-1844674407370955161"},
		{Floor, "-1844674407370955162"},
	}
	for _, tt := range tests {
		got, err := tt.mode.quo(n, d)
		if err != nil {
			t.Errorf("%v.quo(%v, %v) failed: %v", tt.mode, n, d, err)
			continue
		}
		if got.String() != tt.want {
			t.Errorf("%v.quo(%v, %v) = %v, want %v", tt.mode, n, d, got, tt.want)
		}
	}
}

func TestRoundingMode_quoError(t *testing.T) {
	if _, err := HalfUp.quo(NewInt(1), Int{}); !errors.Is(err, ErrDivisionByZero) {
		t.Errorf("HalfUp.quo(1, 0) failed with %v, want %v", err, ErrDivisionByZero)
	}
	if _, err := RoundingMode(10).quo(NewInt(1), NewInt(2)); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("RoundingMode(10).quo(1, 2) failed with %v, want %v", err, ErrInvalidArgument)
	}
}
