package money

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Int type represents an arbitrary-precision signed integer.
// It is used to hold monetary amounts in minor units of currency.
// Its zero value corresponds to 0.
//
// Int is immutable and safe for concurrent use by multiple goroutines.
// Values within the int64 range are stored inline and processed with
// overflow-checked machine arithmetic; an operation that would overflow
// is recomputed using [big.Int].
type Int struct {
	small int64    // value, if large is nil
	large *big.Int // value, if it does not fit into int64
}

// NewInt returns an integer equal to v.
func NewInt(v int64) Int {
	return Int{small: v}
}

// NewIntFromBig returns an integer equal to b.
// The argument is copied, so later changes to b do not affect the result.
// A nil argument is treated as 0.
func NewIntFromBig(b *big.Int) Int {
	if b == nil {
		return Int{}
	}
	return newIntFromBigUnsafe(new(big.Int).Set(b))
}

// newIntFromBigUnsafe takes ownership of b.
// The result keeps b only if its value does not fit into int64.
func newIntFromBigUnsafe(b *big.Int) Int {
	if b.IsInt64() {
		return Int{small: b.Int64()}
	}
	return Int{large: b}
}

// bint returns x as a big.Int.
// The result must not be modified.
func (x Int) bint() *big.Int {
	if x.large != nil {
		return x.large
	}
	return big.NewInt(x.small)
}

// ParseInt converts a string to an integer.
// The string must consist of an optional sign followed by decimal digits,
// with at most one '.' separator:
//
//	1234
//	-1234
//	+1234
//	1234.000
//
// Digits after the separator must all be zero.
// Parsing does not depend on the locale of the host.
//
// ParseInt returns an error wrapping [ErrInvalidAmount] if the string
// is not a valid integer.
func ParseInt(s string) (Int, error) {
	x, err := parseInt(s)
	if err != nil {
		return Int{}, fmt.Errorf("parsing %q: %w", s, err)
	}
	return x, nil
}

func parseInt(s string) (Int, error) {
	neg, whole, frac, err := scanNumber(s)
	if err != nil {
		return Int{}, err
	}
	for i := 0; i < len(frac); i++ {
		if frac[i] != '0' {
			return Int{}, fmt.Errorf("%w: fractional digits must be zero", ErrInvalidAmount)
		}
	}
	return parseDigits(neg, whole), nil
}

// MustParseInt is like [ParseInt] but panics if the string cannot be parsed.
func MustParseInt(s string) Int {
	x, err := ParseInt(s)
	if err != nil {
		panic(fmt.Sprintf("ParseInt(%q) failed: %v", s, err))
	}
	return x
}

// parseDecimal converts a string such as "-0.125" into a numerator and a scale,
// so that the value equals num / 10^scale.
// Trailing zeros of the fractional part are dropped.
func parseDecimal(s string) (num Int, scale int, err error) {
	neg, whole, frac, err := scanNumber(s)
	if err != nil {
		return Int{}, 0, err
	}
	for len(frac) > 0 && frac[len(frac)-1] == '0' {
		frac = frac[:len(frac)-1]
	}
	return parseDigits(neg, whole+frac), len(frac), nil
}

// scanNumber splits a string into sign, integer digits and fractional digits.
// It accepts only ASCII digits, a single leading sign and a single '.'.
func scanNumber(s string) (neg bool, whole, frac string, err error) {
	if len(s) > 0 {
		switch s[0] {
		case '-':
			neg = true
			s = s[1:]
		case '+':
			s = s[1:]
		}
	}
	point := -1
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case '0' <= c && c <= '9':
			// digit
		case c == '.':
			if point >= 0 {
				return false, "", "", fmt.Errorf("%w: more than one decimal point", ErrInvalidAmount)
			}
			point = i
		default:
			return false, "", "", fmt.Errorf("%w: unexpected character %q", ErrInvalidAmount, c)
		}
	}
	whole = s
	if point >= 0 {
		whole, frac = s[:point], s[point+1:]
	}
	if whole == "" && frac == "" {
		return false, "", "", fmt.Errorf("%w: no digits", ErrInvalidAmount)
	}
	return neg, whole, frac, nil
}

// maxInlineDigits is the number of decimal digits that always fit into int64.
const maxInlineDigits = 18

// parseDigits converts a validated string of ASCII digits to an integer.
func parseDigits(neg bool, digits string) Int {
	for len(digits) > 1 && digits[0] == '0' {
		digits = digits[1:]
	}
	if len(digits) <= maxInlineDigits {
		var v int64
		for i := 0; i < len(digits); i++ {
			v = v*10 + int64(digits[i]-'0')
		}
		if neg {
			v = -v
		}
		return Int{small: v}
	}
	b, _ := new(big.Int).SetString(digits, 10) // digits are already validated
	if neg {
		b.Neg(b)
	}
	return newIntFromBigUnsafe(b)
}

// pow10cache is a cache of powers of 10, where pow10cache[x] = 10^x.
var pow10cache = [...]int64{
	1,                         // 10^0
	10,                        // 10^1
	100,                       // 10^2
	1_000,                     // 10^3
	10_000,                    // 10^4
	100_000,                   // 10^5
	1_000_000,                 // 10^6
	10_000_000,                // 10^7
	100_000_000,               // 10^8
	1_000_000_000,             // 10^9
	10_000_000_000,            // 10^10
	100_000_000_000,           // 10^11
	1_000_000_000_000,         // 10^12
	10_000_000_000_000,        // 10^13
	100_000_000_000_000,       // 10^14
	1_000_000_000_000_000,     // 10^15
	10_000_000_000_000_000,    // 10^16
	100_000_000_000_000_000,   // 10^17
	1_000_000_000_000_000_000, // 10^18
}

// pow10 returns 10^n. It assumes n >= 0.
func pow10(n int) Int {
	if n < len(pow10cache) {
		return Int{small: pow10cache[n]}
	}
	b := new(big.Int).Exp(big.NewInt(10), big.NewInt(int64(n)), nil)
	return newIntFromBigUnsafe(b)
}

// addInt64 calculates x + y and checks overflow.
func addInt64(x, y int64) (z int64, ok bool) {
	z = x + y
	if (z > x) != (y > 0) {
		return 0, false
	}
	return z, true
}

// subInt64 calculates x - y and checks overflow.
func subInt64(x, y int64) (z int64, ok bool) {
	z = x - y
	if (z < x) != (y > 0) {
		return 0, false
	}
	return z, true
}

// mulInt64 calculates x * y and checks overflow.
func mulInt64(x, y int64) (z int64, ok bool) {
	if x == 0 || y == 0 {
		return 0, true
	}
	if (x == -1 && y == math.MinInt64) || (y == -1 && x == math.MinInt64) {
		return 0, false
	}
	z = x * y
	if z/y != x {
		return 0, false
	}
	return z, true
}

// Add returns the exact sum x + y.
func (x Int) Add(y Int) Int {
	if x.large == nil && y.large == nil {
		if z, ok := addInt64(x.small, y.small); ok {
			return Int{small: z}
		}
	}
	return newIntFromBigUnsafe(new(big.Int).Add(x.bint(), y.bint()))
}

// Sub returns the exact difference x - y.
func (x Int) Sub(y Int) Int {
	if x.large == nil && y.large == nil {
		if z, ok := subInt64(x.small, y.small); ok {
			return Int{small: z}
		}
	}
	return newIntFromBigUnsafe(new(big.Int).Sub(x.bint(), y.bint()))
}

// Mul returns the exact product x * y.
func (x Int) Mul(y Int) Int {
	if x.large == nil && y.large == nil {
		if z, ok := mulInt64(x.small, y.small); ok {
			return Int{small: z}
		}
	}
	return newIntFromBigUnsafe(new(big.Int).Mul(x.bint(), y.bint()))
}

// QuoRem returns the quotient q and remainder r of x and y such that
// x = y * q + r, where q is truncated toward zero and the sign of r
// is the same as the sign of x.
// See also method [Int.DivMod].
//
// QuoRem returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int) QuoRem(y Int) (q, r Int, err error) {
	if y.IsZero() {
		return Int{}, Int{}, fmt.Errorf("computing [%v quo %v]: %w", x, y, ErrDivisionByZero)
	}
	if x.large == nil && y.large == nil && (x.small != math.MinInt64 || y.small != -1) {
		return Int{small: x.small / y.small}, Int{small: x.small % y.small}, nil
	}
	bq, br := new(big.Int).QuoRem(x.bint(), y.bint(), new(big.Int))
	return newIntFromBigUnsafe(bq), newIntFromBigUnsafe(br), nil
}

// DivMod returns the quotient q and modulus m of x and y such that
// x = y * q + m, where q is rounded toward negative infinity and the sign
// of m is the same as the sign of y.
// See also method [Int.QuoRem].
//
// DivMod returns an error wrapping [ErrDivisionByZero] if y is 0.
func (x Int) DivMod(y Int) (q, m Int, err error) {
	q, m, err = x.QuoRem(y)
	if err != nil {
		return Int{}, Int{}, err
	}
	if !m.IsZero() && m.IsNeg() != y.IsNeg() {
		q = q.Sub(one)
		m = m.Add(y)
	}
	return q, m, nil
}

var one = NewInt(1)

// Neg returns -x.
func (x Int) Neg() Int {
	if x.large == nil && x.small != math.MinInt64 {
		return Int{small: -x.small}
	}
	return newIntFromBigUnsafe(new(big.Int).Neg(x.bint()))
}

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.IsNeg() {
		return x.Neg()
	}
	return x
}

// Sign returns:
//
//	-1 if x < 0
//	 0 if x = 0
//	+1 if x > 0
func (x Int) Sign() int {
	switch {
	case x.large != nil:
		return x.large.Sign()
	case x.small < 0:
		return -1
	case x.small > 0:
		return 1
	}
	return 0
}

// IsZero returns true if x = 0.
func (x Int) IsZero() bool {
	return x.large == nil && x.small == 0
}

// IsPos returns true if x > 0.
func (x Int) IsPos() bool {
	return x.Sign() > 0
}

// IsNeg returns true if x < 0.
func (x Int) IsNeg() bool {
	return x.Sign() < 0
}

// IsOdd returns true if x is not divisible by 2.
func (x Int) IsOdd() bool {
	if x.large != nil {
		return x.large.Bit(0) != 0
	}
	return x.small&1 != 0
}

// Cmp compares integers and returns:
//
//	-1 if x < y
//	 0 if x = y
//	+1 if x > y
func (x Int) Cmp(y Int) int {
	if x.large == nil && y.large == nil {
		switch {
		case x.small < y.small:
			return -1
		case x.small > y.small:
			return 1
		}
		return 0
	}
	return x.bint().Cmp(y.bint())
}

// CmpAbs compares absolute values of integers and returns:
//
//	-1 if |x| < |y|
//	 0 if |x| = |y|
//	+1 if |x| > |y|
func (x Int) CmpAbs(y Int) int {
	if x.large == nil && y.large == nil {
		u, v := absUint64(x.small), absUint64(y.small)
		switch {
		case u < v:
			return -1
		case u > v:
			return 1
		}
		return 0
	}
	return x.bint().CmpAbs(y.bint())
}

func absUint64(v int64) uint64 {
	if v < 0 {
		return uint64(-v) //nolint:gosec // -MinInt64 wraps to MinInt64, whose uint64 image is its magnitude
	}
	return uint64(v)
}

// Equal returns true if x = y.
func (x Int) Equal(y Int) bool {
	return x.Cmp(y) == 0
}

// Int64 returns the integer as int64.
// If the integer does not fit into int64, then false is returned.
func (x Int) Int64() (v int64, ok bool) {
	if x.large != nil {
		return 0, false
	}
	return x.small, true
}

// Big returns the integer as a newly allocated [big.Int].
func (x Int) Big() *big.Int {
	if x.large != nil {
		return new(big.Int).Set(x.large)
	}
	return big.NewInt(x.small)
}

// String implements the [fmt.Stringer] interface and returns the integer
// as an optional minus sign followed by decimal digits.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Int) String() string {
	if x.large != nil {
		return x.large.Text(10)
	}
	return strconv.FormatInt(x.small, 10)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [ParseInt].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Int) UnmarshalText(text []byte) error {
	var err error
	*x, err = parseInt(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Int{}, err)
	}
	return nil
}
