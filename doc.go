/*
Package money implements exact monetary amounts in minor units of currency.
It never uses floating-point numbers: amounts are arbitrary-precision
integers, and every inexact operation is rounded once, with an explicit
rounding mode.

# Features

  - Immutable monetary values, ensuring safe usage across multiple goroutines
  - Amounts of any magnitude, with no silent overflow
  - Arithmetic and comparison operations between monetary values
  - Multiplication and division with ten rounding modes
  - Allocation by ratios and splitting into equal parts that always
    add up to the original amount
  - Locale-independent parsing of amounts and factors

# Representation

The package consists of three main types: [Money], [Int] and [Currency].
A Money value is a pair of a Currency and an Int holding the amount in
minor units (e.g. cents for US Dollars), so USD 123.45 is represented as
12345 minor units of USD.

An Int stores values that fit into int64 inline and performs arithmetic
with overflow checks.
When a result does not fit into int64, the operation is repeated with
[math/big], so the range of amounts is limited only by memory.

A Currency is identified by its case-insensitive code.
The package does not know how many digits the minor unit of a currency has;
this metadata is provided by the currencies package and only matters when
amounts are converted to or from decimal notation (see package decimalfmt).

# Operations

Addition, subtraction, comparison, modulus and allocation are exact.
Multiplication by a decimal factor and division are computed exactly and
then rounded to whole minor units using a [RoundingMode].
The zero value of RoundingMode is [HalfUp], which rounds ties away from zero.

[Money.Allocate] and [Money.AllocateTo] use the largest remainder method:
the parts always sum up to the original amount, and ties are resolved
in favour of the earlier parts.

# Errors

Operations return errors for invalid input and for operations that
combine different currencies.
Errors wrap one of the sentinel values [ErrInvalidAmount],
[ErrCurrencyMismatch], [ErrDivisionByZero], [ErrInvalidArgument],
[ErrEmptyInput] and [ErrInvalidCurrency], which can be tested with
[errors.Is].
Functions with the Must prefix panic instead of returning an error.
*/
package money
