package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"

	"github.com/govalues/decimal"
	"github.com/govalues/money/v2"
	"github.com/govalues/money/v2/decimalfmt"
	"github.com/govalues/money/v2/internal/config"
)

var errUsage = errors.New("usage")

type command struct {
	name    string
	args    string
	help    string
	minArgs int
	maxArgs int // -1 for no limit
	run     func(a *app, ctx context.Context, args []string) error
}

var commands = []command{
	{"allocate", "CURR AMOUNT RATIO...", "split an amount by ratios", 3, -1, (*app).allocate},
	{"split", "CURR AMOUNT N", "split an amount into N equal parts", 3, 3, (*app).split},
	{"mul", "CURR AMOUNT FACTOR", "multiply and round", 3, 3, (*app).mul},
	{"div", "CURR AMOUNT DIVISOR", "divide and round", 3, 3, (*app).div},
	{"mod", "CURR AMOUNT AMOUNT", "remainder of a division", 3, 3, (*app).mod},
	{"ratio", "CURR AMOUNT AMOUNT", "ratio between two amounts", 3, 3, (*app).ratio},
	{"round", "CURR AMOUNT UNIT", "round to a multiple of 10^UNIT minor units", 3, 3, (*app).round},
	{"sum", "CURR AMOUNT...", "sum of amounts", 2, -1, (*app).sum},
	{"min", "CURR AMOUNT...", "smallest amount", 2, -1, (*app).min},
	{"max", "CURR AMOUNT...", "largest amount", 2, -1, (*app).max},
	{"avg", "CURR AMOUNT...", "average of amounts", 2, -1, (*app).avg},
	{"format", "CURR AMOUNT", "minor units in decimal notation", 2, 2, (*app).format},
	{"parse", "CURR DECIMAL", "decimal notation in minor units", 2, 2, (*app).parse},
}

// app holds the state shared by all commands.
type app struct {
	decimal   bool
	mode      money.RoundingMode
	formatter *decimalfmt.Formatter
	parser    *decimalfmt.Parser
	out       io.Writer
	log       *slog.Logger
}

func newApp(cfg *config.Config, out io.Writer, log *slog.Logger) (*app, error) {
	mode, err := cfg.RoundingMode()
	if err != nil {
		return nil, err
	}
	currs, err := cfg.LoadCurrencies()
	if err != nil {
		return nil, err
	}
	return &app{
		decimal:   cfg.Decimal,
		mode:      mode,
		formatter: decimalfmt.NewFormatter(currs),
		parser:    decimalfmt.NewParser(currs),
		out:       out,
		log:       log,
	}, nil
}

func (a *app) exec(ctx context.Context, name string, args []string) error {
	for _, c := range commands {
		if c.name != name {
			continue
		}
		if len(args) < c.minArgs || (c.maxArgs >= 0 && len(args) > c.maxArgs) {
			return fmt.Errorf("%w: moneyctl %s %s", errUsage, c.name, c.args)
		}
		return c.run(a, ctx, args)
	}
	return fmt.Errorf("%w: unknown command %q", errUsage, name)
}

// amount parses an amount in minor units or in decimal notation.
func (a *app) amount(curr, s string) (money.Money, error) {
	if a.decimal {
		return a.parser.Parse(curr, s)
	}
	return money.Parse(curr, s)
}

func (a *app) amounts(curr string, ss []string) ([]money.Money, error) {
	res := make([]money.Money, len(ss))
	for i, s := range ss {
		m, err := a.amount(curr, s)
		if err != nil {
			return nil, err
		}
		res[i] = m
	}
	return res, nil
}

func (a *app) print(ms ...money.Money) error {
	for _, m := range ms {
		s := m.String()
		if a.decimal {
			var err error
			if s, err = a.formatter.FormatWithCode(m); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintln(a.out, s); err != nil {
			return err
		}
	}
	return nil
}

func (a *app) allocate(ctx context.Context, args []string) error {
	m, err := a.amount(args[0], args[1])
	if err != nil {
		return err
	}
	ratios := make([]decimal.Decimal, 0, len(args)-2)
	for _, s := range args[2:] {
		r, err := decimal.Parse(s)
		if err != nil {
			return fmt.Errorf("parsing ratio %q: %w", s, err)
		}
		ratios = append(ratios, r)
	}
	parts, err := m.Allocate(ratios...)
	if err != nil {
		return err
	}
	a.log.InfoContext(ctx, "allocated", "amount", m.String(), "parts", len(parts))
	return a.print(parts...)
}

func (a *app) split(ctx context.Context, args []string) error {
	m, err := a.amount(args[0], args[1])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("parsing number of parts %q: %w", args[2], money.ErrInvalidArgument)
	}
	parts, err := m.AllocateTo(n)
	if err != nil {
		return err
	}
	a.log.InfoContext(ctx, "split", "amount", m.String(), "parts", n)
	return a.print(parts...)
}

func (a *app) mul(_ context.Context, args []string) error {
	m, err := a.amount(args[0], args[1])
	if err != nil {
		return err
	}
	r, err := m.MulStr(args[2], a.mode)
	if err != nil {
		return err
	}
	return a.print(r)
}

func (a *app) div(_ context.Context, args []string) error {
	m, err := a.amount(args[0], args[1])
	if err != nil {
		return err
	}
	r, err := m.QuoStr(args[2], a.mode)
	if err != nil {
		return err
	}
	return a.print(r)
}

func (a *app) mod(_ context.Context, args []string) error {
	ms, err := a.amounts(args[0], args[1:])
	if err != nil {
		return err
	}
	r, err := ms[0].Mod(ms[1])
	if err != nil {
		return err
	}
	return a.print(r)
}

func (a *app) ratio(_ context.Context, args []string) error {
	ms, err := a.amounts(args[0], args[1:])
	if err != nil {
		return err
	}
	r, err := ms[0].Rat(ms[1])
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, r.RatString())
	return err
}

func (a *app) round(_ context.Context, args []string) error {
	m, err := a.amount(args[0], args[1])
	if err != nil {
		return err
	}
	unit, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("parsing unit %q: %w", args[2], money.ErrInvalidArgument)
	}
	r, err := m.RoundToUnit(unit)
	if err != nil {
		return err
	}
	return a.print(r)
}

func (a *app) aggregate(args []string, f func(...money.Money) (money.Money, error)) error {
	ms, err := a.amounts(args[0], args[1:])
	if err != nil {
		return err
	}
	r, err := f(ms...)
	if err != nil {
		return err
	}
	return a.print(r)
}

func (a *app) sum(_ context.Context, args []string) error {
	return a.aggregate(args, money.Sum)
}

func (a *app) min(_ context.Context, args []string) error {
	return a.aggregate(args, money.Min)
}

func (a *app) max(_ context.Context, args []string) error {
	return a.aggregate(args, money.Max)
}

func (a *app) avg(_ context.Context, args []string) error {
	return a.aggregate(args, money.Avg)
}

func (a *app) format(_ context.Context, args []string) error {
	m, err := money.Parse(args[0], args[1])
	if err != nil {
		return err
	}
	s, err := a.formatter.Format(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, s)
	return err
}

func (a *app) parse(_ context.Context, args []string) error {
	m, err := a.parser.ParseRound(args[0], args[1], a.mode)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, m)
	return err
}

