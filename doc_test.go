package money_test

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/govalues/decimal"
	"github.com/govalues/money/v2"
)

// In this example, a restaurant bill is split among three guests, so that
// nobody pays more than one cent above the others and the parts add up
// to the total.
func Example_splitBill() {
	bill := money.MustNew("EUR", 10000) // EUR 100.00
	parts, err := bill.AllocateTo(3)
	if err != nil {
		panic(err)
	}
	for i, p := range parts {
		fmt.Printf("Guest %v pays %v\n", i+1, p)
	}
	// Output:
	// Guest 1 pays EUR 3334
	// Guest 2 pays EUR 3333
	// Guest 3 pays EUR 3333
}

// In this example, a payout is shared between a merchant and a platform
// by a commission rate, and the parts always sum up to the payout.
func Example_commission() {
	payout := money.MustNew("USD", 1999)
	merchant := decimal.MustParse("0.85")
	platform := decimal.MustParse("0.15")
	parts, err := payout.Allocate(merchant, platform)
	if err != nil {
		panic(err)
	}
	fmt.Println("Merchant:", parts[0])
	fmt.Println("Platform:", parts[1])
	// Output:
	// Merchant: USD 1699
	// Platform: USD 300
}

func ExampleNew() {
	fmt.Println(money.New("EUR", 350))
	fmt.Println(money.New("usd", -1))
	fmt.Println(money.New("", 1))
	// Output:
	// EUR 350 <nil>
	// USD -1 <nil>
	// XXX 0 parsing currency: invalid currency: empty code
}

func ExampleParse() {
	fmt.Println(money.Parse("EUR", "350"))
	fmt.Println(money.Parse("EUR", "10.000"))
	fmt.Println(money.Parse("EUR", "9223372036854775808"))
	// Output:
	// EUR 350 <nil>
	// EUR 10 <nil>
	// EUR 9223372036854775808 <nil>
}

func ExampleMoney_Add() {
	a := money.MustNew("EUR", 9223372036854775807)
	b := money.MustNew("EUR", 1)
	fmt.Println(a.Add(b))
	_, err := a.Add(money.MustNew("USD", 1))
	fmt.Println(errors.Is(err, money.ErrCurrencyMismatch))
	// Output:
	// EUR 9223372036854775808 <nil>
	// true
}

func ExampleMoney_Mul() {
	a := money.MustNew("EUR", 1)
	e := decimal.MustParse("2.5")
	fmt.Println(a.Mul(e, money.HalfUp))
	fmt.Println(a.Mul(e, money.HalfEven))
	fmt.Println(a.Mul(e, money.Down))
	// Output:
	// EUR 3 <nil>
	// EUR 2 <nil>
	// EUR 2 <nil>
}

func ExampleMoney_MulStr() {
	a := money.MustNew("EUR", 100)
	fmt.Println(a.MulStr("0.1", money.HalfUp))
	fmt.Println(a.MulStr("0,1", money.HalfUp))
	// Output:
	// EUR 10 <nil>
	// XXX 0 computing [EUR 100 * "0,1"]: invalid amount: unexpected character ','
}

func ExampleMoney_Quo() {
	a := money.MustNew("EUR", 10)
	e := decimal.MustParse("4")
	fmt.Println(a.Quo(e, money.HalfUp))
	fmt.Println(a.Quo(e, money.HalfDown))
	fmt.Println(a.QuoInt(3, money.Up))
	// Output:
	// EUR 3 <nil>
	// EUR 2 <nil>
	// EUR 4 <nil>
}

func ExampleMoney_Mod() {
	a := money.MustNew("EUR", 11)
	b := money.MustNew("EUR", 5)
	fmt.Println(a.Mod(b))
	fmt.Println(a.Neg().Mod(b))
	// Output:
	// EUR 1 <nil>
	// EUR -1 <nil>
}

func ExampleMoney_Rat() {
	a := money.MustNew("EUR", 3)
	b := money.MustNew("EUR", 6)
	fmt.Println(a.Rat(b))
	// Output:
	// 1/2 <nil>
}

func ExampleMoney_RoundToUnit() {
	fmt.Println(money.MustNew("EUR", 515).RoundToUnit(1))
	fmt.Println(money.MustNew("EUR", -4550).RoundToUnit(2))
	// Output:
	// EUR 520 <nil>
	// EUR -4600 <nil>
}

func ExampleMoney_Allocate() {
	a := money.MustNew("EUR", 1)
	fmt.Println(a.Allocate(decimal.MustParse("0.33"), decimal.MustParse("0.66")))
	// Output:
	// [EUR 0 EUR 1] <nil>
}

func ExampleMoney_AllocateInt() {
	a := money.MustNew("EUR", 5)
	fmt.Println(a.AllocateInt(7, 3))
	fmt.Println(a.Neg().AllocateInt(7, 3))
	// Output:
	// [EUR 4 EUR 1] <nil>
	// [EUR -3 EUR -2] <nil>
}

func ExampleMoney_AllocateTo() {
	a := money.MustNew("EUR", 10)
	fmt.Println(a.AllocateTo(3))
	// Output:
	// [EUR 4 EUR 3 EUR 3] <nil>
}

func ExampleMoney_Equal() {
	a := money.MustNew("EUR", 10)
	fmt.Println(a.Equal(money.MustParse("EUR", "10.000")))
	fmt.Println(a.Equal(money.MustNew("USD", 10)))
	// Output:
	// true
	// false
}

func ExampleMoney_Format() {
	a := money.MustNew("EUR", 350)
	fmt.Printf("%v\n", a)
	fmt.Printf("%q\n", a)
	fmt.Printf("%+d\n", a)
	fmt.Printf("%c\n", a)
	// Output:
	// EUR 350
	// "EUR 350"
	// +350
	// EUR
}

func ExampleMoney_MarshalJSON() {
	a := money.MustNew("EUR", 350)
	data, _ := json.Marshal(a)
	fmt.Println(string(data))
	// Output:
	// {"amount":"350","currency":"EUR"}
}

func ExampleMoney_UnmarshalJSON() {
	var a money.Money
	err := json.Unmarshal([]byte(`{"amount":"-350","currency":"eur"}`), &a)
	fmt.Println(a, err)
	// Output:
	// EUR -350 <nil>
}

func ExampleSum() {
	fmt.Println(money.Sum(money.MustNew("EUR", 5), money.MustNew("EUR", 10)))
	fmt.Println(money.Sum())
	// Output:
	// EUR 15 <nil>
	// XXX 0 computing sum: empty input
}

func ExampleAvg() {
	fmt.Println(money.Avg(money.MustNew("EUR", 1), money.MustNew("EUR", 2)))
	// Output:
	// EUR 2 <nil>
}

func ExampleParseRoundingMode() {
	fmt.Println(money.ParseRoundingMode("HALF_EVEN"))
	// Output:
	// half-even <nil>
}

func ExampleParseCurr() {
	fmt.Println(money.ParseCurr("usd"))
	fmt.Println(money.ParseCurr("US$"))
	// Output:
	// USD <nil>
	// XXX invalid currency: unexpected character '$' in "US$"
}

func ExampleInt_Add() {
	x := money.NewInt(9223372036854775807)
	fmt.Println(x.Add(money.NewInt(1)))
	// Output:
	// 9223372036854775808
}

func ExampleInt_DivMod() {
	x := money.NewInt(-7)
	fmt.Println(x.QuoRem(money.NewInt(2)))
	fmt.Println(x.DivMod(money.NewInt(2)))
	// Output:
	// -3 -1 <nil>
	// -4 1 <nil>
}
