package money

import (
	"testing"

	"github.com/govalues/decimal"
)

var (
	benchA = MustNew("EUR", 1_000_000)
	benchB = MustNew("EUR", 37)
	benchL = MustParse("EUR", "123456789012345678901234567890")

	resMoney Money
	resBool  bool
	resInt   int
	resErr   error
)

func BenchmarkMoney_Add(b *testing.B) {
	for range b.N {
		resMoney, resErr = benchA.Add(benchB)
	}
}

func BenchmarkMoney_AddLarge(b *testing.B) {
	for range b.N {
		resMoney, resErr = benchL.Add(benchB)
	}
}

func BenchmarkMoney_Sub(b *testing.B) {
	for range b.N {
		resMoney, resErr = benchA.Sub(benchB)
	}
}

func BenchmarkMoney_Mul(b *testing.B) {
	e := decimal.MustParse("1.2345")
	b.ResetTimer()
	for range b.N {
		resMoney, resErr = benchA.Mul(e, HalfEven)
	}
}

func BenchmarkMoney_MulStr(b *testing.B) {
	for range b.N {
		resMoney, resErr = benchA.MulStr("1.2345", HalfEven)
	}
}

func BenchmarkMoney_QuoInt(b *testing.B) {
	for range b.N {
		resMoney, resErr = benchA.QuoInt(7, HalfUp)
	}
}

func BenchmarkMoney_Mod(b *testing.B) {
	for range b.N {
		resMoney, resErr = benchA.Mod(benchB)
	}
}

func BenchmarkMoney_Rat(b *testing.B) {
	for range b.N {
		_, resErr = benchA.Rat(benchB)
	}
}

func BenchmarkMoney_AllocateInt(b *testing.B) {
	for range b.N {
		_, resErr = benchA.AllocateInt(1, 2, 3, 4)
	}
}

func BenchmarkMoney_AllocateTo(b *testing.B) {
	for range b.N {
		_, resErr = benchA.AllocateTo(3)
	}
}

func BenchmarkSum(b *testing.B) {
	for range b.N {
		resMoney, resErr = Sum(benchA, benchB, benchA)
	}
}

func BenchmarkMin(b *testing.B) {
	for range b.N {
		resMoney, resErr = Min(benchA, benchB, benchA)
	}
}

func BenchmarkMax(b *testing.B) {
	for range b.N {
		resMoney, resErr = Max(benchA, benchB, benchA)
	}
}

func BenchmarkAvg(b *testing.B) {
	for range b.N {
		resMoney, resErr = Avg(benchA, benchB, benchA)
	}
}

func BenchmarkMoney_SameCurr(b *testing.B) {
	for range b.N {
		resBool = benchA.SameCurr(benchB)
	}
}

func BenchmarkMoney_IsZero(b *testing.B) {
	for range b.N {
		resBool = benchA.IsZero()
	}
}

func BenchmarkMoney_Abs(b *testing.B) {
	for range b.N {
		resMoney = benchA.Abs()
	}
}

func BenchmarkMoney_Neg(b *testing.B) {
	for range b.N {
		resMoney = benchA.Neg()
	}
}

func BenchmarkMoney_IsPos(b *testing.B) {
	for range b.N {
		resBool = benchA.IsPos()
	}
}

func BenchmarkMoney_Cmp(b *testing.B) {
	for range b.N {
		resInt, resErr = benchA.Cmp(benchB)
	}
}

func BenchmarkMoney_Less(b *testing.B) {
	for range b.N {
		resBool, resErr = benchA.Less(benchB)
	}
}

func BenchmarkMoney_Equal(b *testing.B) {
	for range b.N {
		resBool = benchA.Equal(benchB)
	}
}

func BenchmarkParse(b *testing.B) {
	for range b.N {
		resMoney, resErr = Parse("EUR", "-123456789")
	}
}
