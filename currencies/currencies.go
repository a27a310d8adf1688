// Package currencies provides metadata about currencies, most importantly
// the number of digits of their minor unit (the subunit).
//
// The [money] package treats a currency as an opaque code. Metadata is only
// needed when amounts are converted from or to decimal notation, so it is
// kept in this package and looked up through the [Currencies] interface.
// A list of ISO 4217 currencies is embedded and available through [ISO];
// custom lists, e.g. for cryptocurrencies, can be loaded from YAML and
// chained with [Aggregate].
//
// [money]: https://pkg.go.dev/github.com/govalues/money/v2
package currencies

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"slices"
	"sync"

	"github.com/govalues/money/v2"
	"gopkg.in/yaml.v3"
)

// ErrUnknownCurrency is returned when a currency is not in a list.
var ErrUnknownCurrency = errors.New("unknown currency")

// MaxSubunit is the largest number of minor-unit digits a currency may have.
const MaxSubunit = 18

// Currencies is implemented by collections of currency metadata.
type Currencies interface {
	// Contains returns true if the collection knows the currency.
	Contains(c money.Currency) bool
	// SubunitFor returns the number of digits of the minor unit.
	// It returns an error wrapping [ErrUnknownCurrency] if the
	// collection does not know the currency.
	SubunitFor(c money.Currency) (int, error)
}

// Entry describes a single currency.
type Entry struct {
	Code    string `yaml:"code"`
	Numeric string `yaml:"numeric,omitempty"`
	Subunit int    `yaml:"subunit"`
	Name    string `yaml:"name,omitempty"`
}

// List is an immutable collection of currencies.
// It is safe for concurrent use by multiple goroutines.
type List struct {
	entries map[money.Currency]Entry
	order   []money.Currency // sorted by code
}

// NewList returns a list of the given currencies.
// Codes are normalized with [money.ParseCurr].
//
// NewList returns an error if:
//   - a code is not valid;
//   - a subunit is negative or greater than [MaxSubunit];
//   - a code is listed more than once.
func NewList(entries ...Entry) (*List, error) {
	l := &List{
		entries: make(map[money.Currency]Entry, len(entries)),
		order:   make([]money.Currency, 0, len(entries)),
	}
	for _, e := range entries {
		c, err := money.ParseCurr(e.Code)
		if err != nil {
			return nil, fmt.Errorf("adding currency %q: %w", e.Code, err)
		}
		if e.Subunit < 0 || e.Subunit > MaxSubunit {
			return nil, fmt.Errorf("adding currency %v: subunit %v is out of range [0, %v]", c, e.Subunit, MaxSubunit)
		}
		if _, ok := l.entries[c]; ok {
			return nil, fmt.Errorf("adding currency %v: duplicate code", c)
		}
		e.Code = c.Code()
		l.entries[c] = e
		l.order = append(l.order, c)
	}
	slices.SortFunc(l.order, func(a, b money.Currency) int {
		switch x, y := a.Code(), b.Code(); {
		case x < y:
			return -1
		case x > y:
			return 1
		}
		return 0
	})
	return l, nil
}

// Contains returns true if the list contains the currency.
func (l *List) Contains(c money.Currency) bool {
	_, ok := l.entries[c]
	return ok
}

// SubunitFor returns the number of digits of the minor unit of the currency.
//
// SubunitFor returns an error wrapping [ErrUnknownCurrency] if the list
// does not contain the currency.
func (l *List) SubunitFor(c money.Currency) (int, error) {
	e, ok := l.entries[c]
	if !ok {
		return 0, fmt.Errorf("cannot find currency %v: %w", c, ErrUnknownCurrency)
	}
	return e.Subunit, nil
}

// Lookup returns the entry of the currency.
func (l *List) Lookup(c money.Currency) (Entry, bool) {
	e, ok := l.entries[c]
	return e, ok
}

// Currencies returns the currencies of the list ordered by code.
func (l *List) Currencies() []money.Currency {
	return slices.Clone(l.order)
}

// Len returns the number of currencies in the list.
func (l *List) Len() int {
	return len(l.order)
}

// document is the YAML layout of a currency list.
type document struct {
	Currencies []Entry `yaml:"currencies"`
}

// ParseYAML parses a currency list in the following layout:
//
//	currencies:
//	  - code: USD
//	    numeric: "840"
//	    subunit: 2
//	    name: US Dollar
//	  - {code: XBT, subunit: 8}
func ParseYAML(data []byte) (*List, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parsing currency list: %w", err)
	}
	l, err := NewList(doc.Currencies...)
	if err != nil {
		return nil, fmt.Errorf("parsing currency list: %w", err)
	}
	return l, nil
}

// LoadFile reads a currency list from a YAML file.
// See also [ParseYAML].
func LoadFile(path string) (*List, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read currency file %s: %w", path, err)
	}
	l, err := ParseYAML(data)
	if err != nil {
		return nil, fmt.Errorf("failed to load currency file %s: %w", path, err)
	}
	return l, nil
}

//go:embed iso.yaml
var isoYAML []byte

var isoList = sync.OnceValues(func() (*List, error) {
	return ParseYAML(isoYAML)
})

// ISO returns the list of currencies defined by [ISO 4217].
// The list is parsed once, on first use.
//
// [ISO 4217]: https://en.wikipedia.org/wiki/ISO_4217
func ISO() *List {
	l, err := isoList()
	if err != nil {
		panic(fmt.Sprintf("ISO() failed: %v", err))
	}
	return l
}

// Aggregate chains several collections.
// A currency is looked up in each collection in turn, and the first
// collection that contains it provides the metadata, so earlier
// collections override later ones.
type Aggregate []Currencies

// Contains returns true if any of the collections contains the currency.
func (a Aggregate) Contains(c money.Currency) bool {
	for _, cs := range a {
		if cs.Contains(c) {
			return true
		}
	}
	return false
}

// SubunitFor returns the subunit from the first collection that contains
// the currency.
//
// SubunitFor returns an error wrapping [ErrUnknownCurrency] if none of
// the collections contains the currency.
func (a Aggregate) SubunitFor(c money.Currency) (int, error) {
	for _, cs := range a {
		if cs.Contains(c) {
			return cs.SubunitFor(c)
		}
	}
	return 0, fmt.Errorf("cannot find currency %v: %w", c, ErrUnknownCurrency)
}
