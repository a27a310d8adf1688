// Package decimalfmt converts amounts between minor units and decimal
// notation, such as "EUR 1050" and "10.50".
//
// The position of the decimal point is the number of minor-unit digits
// of the currency, looked up in a [currencies.Currencies] collection.
// The only decimal separator is '.', and no grouping or currency symbols
// are used, whatever the locale of the host.
package decimalfmt

import (
	"errors"
	"fmt"
	"strings"

	"github.com/govalues/money/v2"
	"github.com/govalues/money/v2/currencies"
)

// ErrPrecision is returned when a decimal string has more fractional
// digits than the minor unit of its currency allows.
var ErrPrecision = errors.New("too many fractional digits")

// Formatter formats amounts in decimal notation.
type Formatter struct {
	currs currencies.Currencies
}

// NewFormatter returns a formatter that looks subunits up in currs.
func NewFormatter(currs currencies.Currencies) *Formatter {
	return &Formatter{currs: currs}
}

// Format returns the amount in decimal notation, with exactly as many
// fractional digits as the minor unit of the currency has:
//
//	EUR 1050  -> 10.50
//	EUR -5    -> -0.05
//	JPY 1050  -> 1050
//
// Format returns an error if the currency is unknown.
func (f *Formatter) Format(m money.Money) (string, error) {
	subunit, err := f.currs.SubunitFor(m.Curr())
	if err != nil {
		return "", fmt.Errorf("formatting %v: %w", m, err)
	}
	return formatDigits(m.Amount().String(), subunit), nil
}

// FormatWithCode is like [Formatter.Format] but prefixes the result with
// the currency code, e.g. "EUR 10.50".
func (f *Formatter) FormatWithCode(m money.Money) (string, error) {
	s, err := f.Format(m)
	if err != nil {
		return "", err
	}
	return m.Curr().Code() + " " + s, nil
}

// formatDigits inserts a decimal point into a signed digit string, so that
// it is followed by exactly subunit digits.
func formatDigits(digits string, subunit int) string {
	neg := strings.HasPrefix(digits, "-")
	if neg {
		digits = digits[1:]
	}
	var b strings.Builder
	b.Grow(len(digits) + subunit + 3)
	if neg {
		b.WriteByte('-')
	}
	switch {
	case subunit == 0:
		b.WriteString(digits)
	case len(digits) > subunit:
		b.WriteString(digits[:len(digits)-subunit])
		b.WriteByte('.')
		b.WriteString(digits[len(digits)-subunit:])
	default:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", subunit-len(digits)))
		b.WriteString(digits)
	}
	return b.String()
}

// Parser parses amounts written in decimal notation.
type Parser struct {
	currs currencies.Currencies
}

// NewParser returns a parser that looks subunits up in currs.
func NewParser(currs currencies.Currencies) *Parser {
	return &Parser{currs: currs}
}

// Parse converts a currency code and a decimal string to an amount:
//
//	EUR, "10.5"  -> EUR 1050
//	EUR, "-0.05" -> EUR -5
//	JPY, "1050"  -> JPY 1050
//
// Trailing zeros beyond the minor unit are accepted, so "10.500" is
// valid for EUR, but "10.505" is not.
//
// Parse returns an error if:
//   - the currency code is invalid or unknown;
//   - the string is not a decimal number;
//   - the string has non-zero digits beyond the minor unit.
func (p *Parser) Parse(code, s string) (money.Money, error) {
	m, err := p.parse(code, s, false, money.HalfUp)
	if err != nil {
		return money.Money{}, fmt.Errorf("parsing %v %q: %w", code, s, err)
	}
	return m, nil
}

// ParseRound is like [Parser.Parse] but rounds digits beyond the minor
// unit using the given rounding mode instead of failing:
//
//	EUR, "10.505", HalfEven -> EUR 1050
//	EUR, "10.515", HalfEven -> EUR 1052
func (p *Parser) ParseRound(code, s string, mode money.RoundingMode) (money.Money, error) {
	m, err := p.parse(code, s, true, mode)
	if err != nil {
		return money.Money{}, fmt.Errorf("parsing %v %q: %w", code, s, err)
	}
	return m, nil
}

func (p *Parser) parse(code, s string, round bool, mode money.RoundingMode) (money.Money, error) {
	curr, err := money.ParseCurr(code)
	if err != nil {
		return money.Money{}, err
	}
	subunit, err := p.currs.SubunitFor(curr)
	if err != nil {
		return money.Money{}, err
	}

	sign, whole, frac, err := split(s)
	if err != nil {
		return money.Money{}, err
	}

	// Extra digits
	var extra string
	if len(frac) > subunit {
		frac, extra = frac[:subunit], frac[subunit:]
		extra = strings.TrimRight(extra, "0")
	}
	if extra != "" && !round {
		return money.Money{}, fmt.Errorf("%w: %v allows %v", ErrPrecision, curr, subunit)
	}
	if extra == "" {
		frac += strings.Repeat("0", subunit-len(frac))
		return money.Parse(code, sign+whole+frac)
	}

	// Rounding
	m, err := money.Parse(code, sign+whole+frac+extra)
	if err != nil {
		return money.Money{}, err
	}
	return m.QuoStr("1"+strings.Repeat("0", len(extra)), mode)
}

// split validates a decimal string and returns its sign, integer digits
// and fractional digits.
func split(s string) (sign, whole, frac string, err error) {
	if strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		sign, s = s[:1], s[1:]
	}
	whole, frac, _ = strings.Cut(s, ".")
	if whole == "" && frac == "" {
		return "", "", "", fmt.Errorf("%w: no digits", money.ErrInvalidAmount)
	}
	if !isDigits(whole) || !isDigits(frac) {
		return "", "", "", fmt.Errorf("%w: not a decimal number", money.ErrInvalidAmount)
	}
	if whole == "" {
		whole = "0"
	}
	return sign, whole, frac, nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
