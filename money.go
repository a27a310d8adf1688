package money

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"

	"github.com/govalues/decimal"
)

var (
	// ErrInvalidAmount is returned when an amount or a factor cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrCurrencyMismatch is returned when an operation combines amounts
	// denominated in different currencies.
	ErrCurrencyMismatch = errors.New("currency mismatch")
	// ErrDivisionByZero is returned by division and modulus with a zero divisor.
	ErrDivisionByZero = errors.New("division by zero")
	// ErrInvalidArgument is returned for arguments outside the domain of
	// an operation, such as negative allocation ratios.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrEmptyInput is returned by aggregate functions called without amounts.
	ErrEmptyInput = errors.New("empty input")
)

// Money type represents a monetary amount as an exact integer number of
// minor units of a currency (e.g. cents, pennies, fens).
// Its zero value corresponds to "XXX 0", where [XXX] indicates an unknown currency.
//
// Money is immutable: every operation returns a new value.
// It is designed to be safe for concurrent use by multiple goroutines.
type Money struct {
	curr   Currency // currency of the amount
	amount Int      // amount in minor units
}

func newMoney(c Currency, a Int) Money {
	return Money{curr: c, amount: a}
}

// New returns an amount of the given number of minor units.
//
// New returns an error if the currency code is not valid.
func New(curr string, units int64) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	return newMoney(c, NewInt(units)), nil
}

// MustNew is like [New] but panics if the amount cannot be constructed.
// It simplifies safe initialization of global variables holding amounts.
func MustNew(curr string, units int64) Money {
	m, err := New(curr, units)
	if err != nil {
		panic(fmt.Sprintf("New(%q, %v) failed: %v", curr, units, err))
	}
	return m
}

// NewFromInt returns an amount of the given number of minor units.
func NewFromInt(c Currency, units Int) Money {
	return newMoney(c, units)
}

// Zero returns an amount of zero minor units.
func Zero(c Currency) Money {
	return newMoney(c, Int{})
}

// Parse converts currency and amount strings to an amount.
// The amount string holds minor units, as accepted by [ParseInt]:
// "350", "-350" and "350.00" all denote 350 minor units.
// See also constructors [ParseCurr] and [ParseInt].
func Parse(curr, units string) (Money, error) {
	c, err := ParseCurr(curr)
	if err != nil {
		return Money{}, fmt.Errorf("parsing currency: %w", err)
	}
	a, err := parseInt(units)
	if err != nil {
		return Money{}, fmt.Errorf("parsing amount %q: %w", units, err)
	}
	return newMoney(c, a), nil
}

// MustParse is like [Parse] but panics if any of the strings cannot be parsed.
// This function simplifies safe initialization of global variables holding amounts.
func MustParse(curr, units string) Money {
	m, err := Parse(curr, units)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q, %q) failed: %v", curr, units, err))
	}
	return m
}

// Curr returns the currency of the amount.
func (m Money) Curr() Currency {
	return m.curr
}

// Amount returns the amount in minor units.
func (m Money) Amount() Int {
	return m.amount
}

// Sign returns:
//
//	-1 if m < 0
//	 0 if m = 0
//	+1 if m > 0
func (m Money) Sign() int {
	return m.amount.Sign()
}

// IsZero returns true if m = 0.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPos returns true if m > 0.
func (m Money) IsPos() bool {
	return m.amount.IsPos()
}

// IsNeg returns true if m < 0.
func (m Money) IsNeg() bool {
	return m.amount.IsNeg()
}

// Abs returns the absolute value of the amount.
func (m Money) Abs() Money {
	return newMoney(m.curr, m.amount.Abs())
}

// Neg returns an amount with the opposite sign.
func (m Money) Neg() Money {
	return newMoney(m.curr, m.amount.Neg())
}

// SameCurr returns true if amounts are denominated in the same currency.
func (m Money) SameCurr(b Money) bool {
	return m.curr == b.curr
}

// Add returns the exact sum of amounts m and b.
//
// Add returns an error if amounts are denominated in different currencies.
func (m Money) Add(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v + %v]: %w", m, b, ErrCurrencyMismatch)
	}
	return newMoney(m.curr, m.amount.Add(b.amount)), nil
}

// Sub returns the exact difference between amounts m and b.
//
// Sub returns an error if amounts are denominated in different currencies.
func (m Money) Sub(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v - %v]: %w", m, b, ErrCurrencyMismatch)
	}
	return newMoney(m.curr, m.amount.Sub(b.amount)), nil
}

// MulInt returns the exact product of amount m and an integer factor.
func (m Money) MulInt(factor int64) Money {
	return newMoney(m.curr, m.amount.Mul(NewInt(factor)))
}

// Mul returns the product of amount m and factor e rounded to whole
// minor units using the given rounding mode.
// The product is computed exactly and rounded once.
//
// Mul returns an error if the rounding mode is not valid.
func (m Money) Mul(e decimal.Decimal, mode RoundingMode) (Money, error) {
	num, scale := decimalParts(e)
	c, err := m.mul(num, scale, mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %v]: %w", m, e, err)
	}
	return c, nil
}

// MulStr is like [Money.Mul] but takes the factor as a decimal string,
// such as "0.1" or "-3".
// The only accepted decimal separator is '.', whatever the locale of the host.
//
// MulStr returns an error if the factor cannot be parsed or
// the rounding mode is not valid.
func (m Money) MulStr(factor string, mode RoundingMode) (Money, error) {
	num, scale, err := parseDecimal(factor)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %q]: %w", m, factor, err)
	}
	c, err := m.mul(num, scale, mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v * %q]: %w", m, factor, err)
	}
	return c, nil
}

// mul calculates round(m * num / 10^scale).
func (m Money) mul(num Int, scale int, mode RoundingMode) (Money, error) {
	a, err := mode.quo(m.amount.Mul(num), pow10(scale))
	if err != nil {
		return Money{}, err
	}
	return newMoney(m.curr, a), nil
}

// QuoInt returns the quotient of amount m and an integer divisor rounded to
// whole minor units using the given rounding mode.
//
// QuoInt returns an error if:
//   - the divisor is 0;
//   - the rounding mode is not valid.
func (m Money) QuoInt(divisor int64, mode RoundingMode) (Money, error) {
	c, err := m.quo(NewInt(divisor), 0, mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, divisor, err)
	}
	return c, nil
}

// Quo returns the quotient of amount m and divisor e rounded to whole
// minor units using the given rounding mode.
// See also methods [Money.Mod], [Money.Rat] and [Money.AllocateTo].
//
// Quo returns an error if:
//   - the divisor is 0;
//   - the rounding mode is not valid.
func (m Money) Quo(e decimal.Decimal, mode RoundingMode) (Money, error) {
	num, scale := decimalParts(e)
	c, err := m.quo(num, scale, mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %v]: %w", m, e, err)
	}
	return c, nil
}

// QuoStr is like [Money.Quo] but takes the divisor as a decimal string.
// The only accepted decimal separator is '.', whatever the locale of the host.
func (m Money) QuoStr(divisor string, mode RoundingMode) (Money, error) {
	num, scale, err := parseDecimal(divisor)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %q]: %w", m, divisor, err)
	}
	c, err := m.quo(num, scale, mode)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v / %q]: %w", m, divisor, err)
	}
	return c, nil
}

// quo calculates round(m * 10^scale / num).
func (m Money) quo(num Int, scale int, mode RoundingMode) (Money, error) {
	if num.IsZero() {
		return Money{}, ErrDivisionByZero
	}
	a, err := mode.quo(m.amount.Mul(pow10(scale)), num)
	if err != nil {
		return Money{}, err
	}
	return newMoney(m.curr, a), nil
}

// decimalParts returns num and scale such that d = num / 10^scale.
func decimalParts(d decimal.Decimal) (num Int, scale int) {
	coef := d.Coef()
	if coef <= 1<<63-1 {
		num = NewInt(int64(coef))
	} else {
		num = newIntFromBigUnsafe(new(big.Int).SetUint64(coef))
	}
	if d.IsNeg() {
		num = num.Neg()
	}
	return num, d.Scale()
}

// Mod returns the remainder of the truncated division of amount m by amount b.
// The sign of the remainder is the same as the sign of m.
//
// Mod returns an error if:
//   - amounts are denominated in different currencies;
//   - amount b is 0.
func (m Money) Mod(b Money) (Money, error) {
	if !m.SameCurr(b) {
		return Money{}, fmt.Errorf("computing [%v mod %v]: %w", m, b, ErrCurrencyMismatch)
	}
	if b.IsZero() {
		return Money{}, fmt.Errorf("computing [%v mod %v]: %w", m, b, ErrDivisionByZero)
	}
	_, r, err := m.amount.QuoRem(b.amount)
	if err != nil {
		return Money{}, fmt.Errorf("computing [%v mod %v]: %w", m, b, err)
	}
	return newMoney(m.curr, r), nil
}

// Rat returns the exact ratio between amounts m and b.
// This method is useful for determining percentages within a single currency.
// See also method [Money.Ratio].
//
// Rat returns an error if:
//   - amounts are denominated in different currencies;
//   - amount b is 0, since a ratio of zero is undefined.
func (m Money) Rat(b Money) (*big.Rat, error) {
	if !m.SameCurr(b) {
		return nil, fmt.Errorf("computing [%v / %v]: %w", m, b, ErrCurrencyMismatch)
	}
	if b.IsZero() {
		return nil, fmt.Errorf("computing [%v / %v]: %w: ratio of zero is undefined", m, b, ErrInvalidArgument)
	}
	return new(big.Rat).SetFrac(m.amount.bint(), b.amount.bint()), nil
}

// Ratio is like [Money.Rat] but returns the (possibly rounded) ratio as
// a decimal.
//
// In addition to the errors of [Money.Rat], Ratio returns an error if
// either amount does not fit into int64.
func (m Money) Ratio(b Money) (decimal.Decimal, error) {
	if _, err := m.Rat(b); err != nil {
		return decimal.Decimal{}, err
	}
	x, xok := m.amount.Int64()
	y, yok := b.amount.Int64()
	if !xok || !yok {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w: amounts exceed decimal range", m, b, ErrInvalidArgument)
	}
	d, err := decimal.New(x, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	e, err := decimal.New(y, 0)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	f, err := d.Quo(e)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("computing [%v / %v]: %w", m, b, err)
	}
	return f, nil
}

// RoundToUnit returns the amount rounded to the nearest multiple of 10^unit
// minor units, with ties rounded away from zero.
// For example, 515 rounded to unit 1 is 520, and -4550 rounded to unit 2 is -4600.
// Unit 0 returns the amount unchanged.
//
// RoundToUnit returns an error if the unit is negative.
func (m Money) RoundToUnit(unit int) (Money, error) {
	if unit < 0 {
		return Money{}, fmt.Errorf("rounding %v to unit %v: %w: negative unit", m, unit, ErrInvalidArgument)
	}
	if unit == 0 {
		return m, nil
	}
	// |amount| < 10^digits <= 10^unit / 2
	if unit > len(m.amount.Abs().String()) {
		return newMoney(m.curr, Int{}), nil
	}
	p := pow10(unit)
	q, err := HalfUp.quo(m.amount, p)
	if err != nil {
		return Money{}, fmt.Errorf("rounding %v to unit %v: %w", m, unit, err)
	}
	return newMoney(m.curr, q.Mul(p)), nil
}

// Cmp compares amounts and returns:
//
//	-1 if m < b
//	 0 if m = b
//	+1 if m > b
//
// Cmp returns an error if amounts are denominated in different currencies.
func (m Money) Cmp(b Money) (int, error) {
	if !m.SameCurr(b) {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", m, b, ErrCurrencyMismatch)
	}
	return m.amount.Cmp(b.amount), nil
}

// Less returns true if m < b.
//
// Less returns an error if amounts are denominated in different currencies.
func (m Money) Less(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c < 0, err
}

// LessOrEqual returns true if m <= b.
//
// LessOrEqual returns an error if amounts are denominated in different currencies.
func (m Money) LessOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c <= 0, err
}

// Greater returns true if m > b.
//
// Greater returns an error if amounts are denominated in different currencies.
func (m Money) Greater(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return c > 0, err
}

// GreaterOrEqual returns true if m >= b.
//
// GreaterOrEqual returns an error if amounts are denominated in different currencies.
func (m Money) GreaterOrEqual(b Money) (bool, error) {
	c, err := m.Cmp(b)
	return err == nil && c >= 0, err
}

// Equal returns true if amounts are denominated in the same currency and
// have the same number of minor units.
// Amounts in different currencies are never equal.
func (m Money) Equal(b Money) bool {
	return m.SameCurr(b) && m.amount.Equal(b.amount)
}

// String implements the [fmt.Stringer] interface and returns a string
// representation of an amount, such as "EUR -350".
// See also methods [Currency.String], [Int.String].
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (m Money) String() string {
	return m.curr.Code() + " " + m.amount.String()
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example    | Description                        |
//	| ------ | ---------- | ---------------------------------- |
//	| %s, %v | EUR 350    | Currency and amount in minor units |
//	| %q     | "EUR 350"  | Quoted currency and amount         |
//	| %d     | 350        | Amount in minor units              |
//	| %c     | EUR        | Currency                           |
//
// The '-' format flag can be used with all verbs.
// The '+' format flag can be used with %d.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (m Money) Format(state fmt.State, verb rune) {
	var text string
	switch verb {
	case 's', 'S', 'v', 'V':
		text = m.String()
	case 'q', 'Q':
		text = `"` + m.String() + `"`
	case 'd', 'D':
		text = m.amount.String()
		if state.Flag('+') && !m.IsNeg() {
			text = "+" + text
		}
	case 'c', 'C':
		text = m.curr.Code()
	default:
		//nolint:errcheck
		state.Write([]byte("%!" + string(verb) + "(money.Money=" + m.String() + ")"))
		return
	}
	writePadded(state, text)
}

// moneyJSON is the interchange representation of an amount.
type moneyJSON struct {
	Amount   json.RawMessage `json:"amount"`
	Currency string          `json:"currency"`
}

// MarshalJSON implements the [json.Marshaler] interface.
// The amount is encoded as a string of minor units:
//
//	{"amount":"350","currency":"EUR"}
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (m Money) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, 32)
	text = append(text, `{"amount":"`...)
	text = append(text, m.amount.String()...)
	text = append(text, `","currency":"`...)
	text = append(text, m.curr.Code()...)
	text = append(text, `"}`...)
	return text, nil
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The amount may be given either as a string or as a JSON number of
// minor units.
// See also constructor [Parse].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (m *Money) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		return nil
	}
	var v moneyJSON
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	var units string
	if len(v.Amount) > 0 && v.Amount[0] == '"' {
		if err := json.Unmarshal(v.Amount, &units); err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
		}
	} else {
		var n json.Number
		if err := json.Unmarshal(v.Amount, &n); err != nil {
			return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
		}
		units = n.String()
	}
	var err error
	*m, err = Parse(v.Currency, units)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Money{}, err)
	}
	return nil
}
