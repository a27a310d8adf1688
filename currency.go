package money

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Currency type represents a currency by its code.
// The zero value is [XXX], which indicates an unknown currency.
//
// Codes are case-insensitive and stored in upper case, so two currencies
// are equal if and only if their codes are equal, and Currency values can
// be compared with ==.
// Currency carries no metadata; the number of minor-unit digits is provided
// by the currencies package.
type Currency struct {
	code string // upper-case code, empty for XXX
}

// ErrInvalidCurrency is returned when a currency code is empty or contains
// characters other than ASCII letters and digits.
var ErrInvalidCurrency = errors.New("invalid currency")

// Frequently used currencies.
var (
	XXX = Currency{}
	CHF = Currency{code: "CHF"}
	EUR = Currency{code: "EUR"}
	GBP = Currency{code: "GBP"}
	JPY = Currency{code: "JPY"}
	USD = Currency{code: "USD"}
)

// ParseCurr converts a string to currency.
// The input string is case-insensitive:
//
//	USD
//	usd
//
// ParseCurr returns an error if the string is empty or contains
// characters other than ASCII letters and digits.
func ParseCurr(code string) (Currency, error) {
	if code == "" {
		return XXX, fmt.Errorf("%w: empty code", ErrInvalidCurrency)
	}
	buf := make([]byte, len(code))
	for i := 0; i < len(code); i++ {
		switch c := code[i]; {
		case 'a' <= c && c <= 'z':
			buf[i] = c - 'a' + 'A'
		case 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
			buf[i] = c
		default:
			return XXX, fmt.Errorf("%w: unexpected character %q in %q", ErrInvalidCurrency, c, code)
		}
	}
	s := string(buf)
	if s == "XXX" {
		return XXX, nil
	}
	return Currency{code: s}, nil
}

// MustParseCurr is like [ParseCurr] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding currencies.
func MustParseCurr(code string) Currency {
	c, err := ParseCurr(code)
	if err != nil {
		panic(fmt.Sprintf("ParseCurr(%q) failed: %v", code, err))
	}
	return c
}

// Code returns the upper-case code of the currency.
func (c Currency) Code() string {
	if c.code == "" {
		return "XXX"
	}
	return c.code
}

// String method implements the [fmt.Stringer] interface and returns
// the code of the currency.
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (c Currency) String() string {
	return c.Code()
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// See also constructor [ParseCurr].
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (c *Currency) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	var code string
	if err := json.Unmarshal(text, &code); err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	var err error
	*c, err = ParseCurr(code)
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalJSON implements the [json.Marshaler] interface.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (c Currency) MarshalJSON() ([]byte, error) {
	code := c.Code()
	text := make([]byte, 0, len(code)+2)
	text = append(text, '"')
	text = append(text, code...)
	text = append(text, '"')
	return text, nil
}

// UnmarshalText implements [encoding.TextUnmarshaler] interface.
// See also constructor [ParseCurr].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (c *Currency) UnmarshalText(text []byte) error {
	var err error
	*c, err = ParseCurr(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", XXX, err)
	}
	return nil
}

// MarshalText implements [encoding.TextMarshaler] interface.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (c Currency) MarshalText() ([]byte, error) {
	return []byte(c.Code()), nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb       | Example | Description     |
//	| ---------- | ------- | --------------- |
//	| %c, %s, %v | USD     | Currency        |
//	| %q         | "USD"   | Quoted currency |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (c Currency) Format(state fmt.State, verb rune) {
	curr := c.Code()

	// Opening and closing quotes
	quote := ""
	if verb == 'q' || verb == 'Q' {
		quote = `"`
	}
	text := quote + curr + quote

	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V', 'c', 'C':
		writePadded(state, text)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(money.Currency="))
		state.Write([]byte(text))
		state.Write([]byte(")"))
	}
}

// writePadded writes text padded with spaces to the width of the state.
func writePadded(state fmt.State, text string) {
	buf := make([]byte, 0, len(text))
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}
	for range lspaces {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for range tspaces {
		buf = append(buf, ' ')
	}
	state.Write(buf) //nolint:errcheck
}
