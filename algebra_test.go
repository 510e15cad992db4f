package liniarote

import (
	"math"
	"testing"
)

// lones are lone operands covering every symbol and the signs of numbers.
var lones = []Value{
	Number(3), Number(-2.5), Number(0),
	Lone(TvPos), Lone(TvNeg), Lone(TvP2Pos), Lone(TvP2Neg), Lone(TvP3Pos), Lone(TvP3Neg),
	Lone(TvP4Pos), Lone(TvP4Neg), Lone(TvM2Pos), Lone(TvM2Neg), Lone(TvM3Pos), Lone(TvM3Neg),
	Lone(RealPos), Lone(RealNeg), Lone(RealAll), Lone(Null),
}

// operands adds pairs to lones.
var operands = append(append([]Value(nil), lones...),
	Pair(Num(1.5), Null),
	Pair(Num(0), TvPos),
	Pair(Num(4), TvM2Pos),
	Pair(Num(-1), TvM3Neg),
	Pair(RealSym(RealPos), Null),
	Pair(RealSym(RealNeg), TvM2Neg),
)

var ops = []struct {
	name string
	f    func(u, v Value) Value
}{
	{"add", Add},
	{"sub", Sub},
	{"mul", Mul},
	{"div", Div},
}

func pair(x float64, s Symbol) Value {
	return Pair(Num(x), s)
}

func realsym(s Symbol) Value {
	return Pair(RealSym(s), Null)
}

var u = Lone(Unimplemented)

type binaryCase struct {
	u, v, want Value
}

func testBinary(t *testing.T, op string, f func(u, v Value) Value, cases []binaryCase) {
	t.Helper()
	for _, c := range cases {
		if got := f(c.u, c.v); got != c.want {
			t.Errorf("%v %s %v: want %#v (%v), got %#v (%v)", c.u, op, c.v, c.want, c.want, got, got)
		}
	}
}

func TestAddNumbers(t *testing.T) {
	xs := []float64{0, 1, -1, 2.5, 1e300, -7, 0.1}
	for _, x := range xs {
		for _, y := range xs {
			if got, want := Add(Number(x), Number(y)), pair(x+y, Null); got != want {
				t.Errorf("%g + %g: want %v, got %v", x, y, want, got)
			}
		}
	}
}

func TestAdd(t *testing.T) {
	testBinary(t, "+", Add, []binaryCase{
		{Lone(TvPos), Lone(TvNeg), pair(0, Null)},
		{Lone(TvPos), Lone(TvPos), pair(0, TvPos)},
		{Lone(TvNeg), Lone(TvNeg), pair(0, TvNeg)},
		{Lone(TvP2Pos), Lone(TvP2Neg), pair(0, Null)},
		{Lone(TvPos), Lone(TvP2Pos), u},
		{Lone(TvM2Pos), Lone(TvPos), u},
		{Number(3), Lone(TvPos), pair(0, TvPos)},
		{Lone(TvP2Neg), Number(-8), pair(0, TvP2Neg)},
		{Number(3), Lone(TvM2Pos), pair(3, TvM2Pos)},
		{Lone(Null), Number(2), pair(2, Null)},
		{Lone(Null), Lone(TvPos), pair(0, TvPos)},
		{Lone(Null), Lone(Null), pair(0, Null)},
		{Number(0), Lone(RealPos), realsym(RealPos)},
		{Lone(RealNeg), Number(0), realsym(RealNeg)},
		{Lone(RealAll), Number(0), realsym(RealAll)},
		{Number(1), Lone(RealPos), u},
		{Lone(RealAll), Number(2), u},
		{Lone(RealPos), Lone(RealPos), realsym(RealPos)},
		{Lone(RealNeg), Lone(RealNeg), realsym(RealNeg)},
		{Lone(RealPos), Lone(RealNeg), u},
		{Lone(RealAll), Lone(RealAll), u},
		{Lone(RealPos), Lone(TvPos), pair(0, TvPos)},
		{Lone(RealPos), Lone(TvM3Pos), Pair(RealSym(RealPos), TvM3Pos)},
		{pair(4, TvM2Pos), pair(-1, TvM2Pos), pair(3, TvM2Pos)},
		{pair(4, TvM2Pos), Lone(TvM2Neg), pair(4, Null)},
		{pair(0, TvPos), pair(5, Null), pair(0, TvPos)},
	})
}

func TestSub(t *testing.T) {
	testBinary(t, "-", Sub, []binaryCase{
		{Number(7), Number(2), pair(5, Null)},
		{Lone(TvPos), Lone(TvPos), pair(0, Null)},
		{Lone(Null), Lone(TvPos), pair(0, TvNeg)},
		{Lone(TvPos), Lone(TvNeg), pair(0, TvPos)},
		{Lone(TvNeg), Lone(TvPos), pair(0, TvNeg)},
		{Lone(TvPos), Lone(Null), pair(0, TvPos)},
		{Lone(TvP3Pos), Lone(TvP3Pos), pair(0, Null)},
		{Lone(TvPos), Lone(TvP2Pos), u},
		{Number(5), Lone(TvPos), pair(0, TvNeg)},
		{Lone(TvPos), Number(5), pair(0, TvPos)},
		{Number(5), Lone(TvM2Pos), pair(5, TvM2Neg)},
		{Number(5), Lone(Null), pair(5, Null)},
		{Lone(Null), Number(5), pair(-5, Null)},
		{Number(0), Lone(RealPos), realsym(RealNeg)},
		{Number(0), Lone(RealNeg), realsym(RealPos)},
		{Number(1), Lone(RealPos), u},
		{Lone(RealPos), Number(0), realsym(RealPos)},
		{Lone(RealPos), Number(1), u},
		{Number(3), Lone(RealAll), realsym(RealAll)},
		{Lone(RealAll), Number(3), realsym(RealAll)},
		{Lone(RealPos), Lone(RealPos), u},
		{Lone(RealPos), Lone(RealNeg), realsym(RealPos)},
		{Lone(RealNeg), Lone(RealPos), realsym(RealNeg)},
		{Lone(RealNeg), Lone(RealNeg), u},
		{Lone(RealAll), Lone(RealAll), u},
		{Lone(RealPos), Lone(RealAll), u},
		{Lone(RealPos), Lone(TvPos), pair(0, TvNeg)},
		{Lone(TvPos), Lone(RealPos), pair(0, TvPos)},
		{pair(4, TvM2Pos), pair(1, TvM2Pos), pair(3, Null)},
	})
}

func TestSubAgreesWithNeg(t *testing.T) {
	for _, v := range operands {
		want, _ := Neg(v).Normalize()
		if got := Sub(Number(0), v); got != want {
			t.Errorf("0 - %v: want %v (from negation), got %v", v, want, got)
		}
	}
}

func TestNeg(t *testing.T) {
	cases := []struct {
		v, want Value
	}{
		{Number(3), Number(-3)},
		{Number(0), Number(0)},
		{Lone(TvPos), Lone(TvNeg)},
		{Lone(TvM3Neg), Lone(TvM3Pos)},
		{Lone(RealPos), Lone(RealNeg)},
		{Lone(RealAll), Lone(RealAll)},
		{Lone(Null), Lone(Null)},
		{u, u},
		{pair(4, TvM2Pos), pair(-4, TvM2Neg)},
		{realsym(RealNeg), realsym(RealPos)},
	}
	for _, c := range cases {
		if got := Neg(c.v); got != c.want {
			t.Errorf("-(%v): want %v, got %v", c.v, c.want, got)
		}
		if got := Neg(Neg(c.v)); got != c.v {
			t.Errorf("-(-(%v)): got %v", c.v, got)
		}
	}
	if x, _ := Neg(Number(0)).Float(); math.Signbit(x) {
		t.Errorf("negating zero gave negative zero")
	}
}

func TestMul(t *testing.T) {
	testBinary(t, "*", Mul, []binaryCase{
		{Number(3), Number(4), pair(12, Null)},
		{Number(0), Lone(TvPos), realsym(RealPos)},
		{Number(0), Lone(TvNeg), realsym(RealNeg)},
		{Number(0), Lone(TvP2Pos), pair(0, TvPos)},
		{Number(0), Lone(TvP2Neg), pair(0, TvNeg)},
		{Number(0), Lone(TvM3Pos), u},
		{Number(2), Lone(TvPos), pair(0, TvPos)},
		{Number(-2), Lone(TvPos), pair(0, TvNeg)},
		{Number(-2), Lone(TvP2Neg), pair(0, TvP2Pos)},
		{Lone(TvPos), Lone(TvPos), pair(0, TvP2Pos)},
		{Lone(TvPos), Lone(TvNeg), pair(0, TvP2Neg)},
		{Lone(TvNeg), Lone(TvNeg), pair(0, TvP2Pos)},
		{Lone(TvP2Pos), Lone(TvP2Pos), pair(0, TvP4Pos)},
		{Lone(TvP2Pos), Lone(TvP3Pos), u},
		{Lone(TvM2Pos), Lone(TvM3Pos), u},
		{Lone(TvP2Pos), Lone(TvM2Pos), realsym(RealPos)},
		{Lone(TvP2Neg), Lone(TvM2Pos), realsym(RealNeg)},
		{Lone(TvPos), Lone(TvM2Pos), pair(0, Null)},
		{Lone(TvPos), Lone(TvM3Neg), pair(0, TvM2Neg)},
		{Lone(Null), Lone(TvPos), pair(0, Null)},
		{Number(5), Lone(Null), pair(0, Null)},
		{Lone(RealPos), Number(3), realsym(RealPos)},
		{Lone(RealPos), Number(-3), realsym(RealNeg)},
		{Lone(RealNeg), Lone(RealNeg), realsym(RealPos)},
		{Lone(RealAll), Number(2), realsym(RealAll)},
		{Lone(RealPos), Number(0), pair(0, Null)},
		{Lone(RealPos), Lone(TvPos), pair(0, TvPos)},
		{Lone(RealAll), Lone(TvPos), u},
		{pair(3, TvM2Pos), Lone(TvPos), pair(0, TvPos)},
		{pair(3, TvM2Pos), Number(2), pair(6, TvM2Pos)},
		{pair(3, TvM2Pos), pair(-1, TvM2Pos), u},
		{pair(0, Null), Lone(TvPos), realsym(RealPos)},
	})
}

func TestDiv(t *testing.T) {
	testBinary(t, "/", Div, []binaryCase{
		{Number(1), Number(4), pair(0.25, Null)},
		{Number(5), Number(0), pair(0, TvPos)},
		{Number(-5), Number(0), pair(0, TvNeg)},
		{Number(0), Number(0), realsym(RealAll)},
		{Number(0), Number(5), pair(0, Null)},
		{Lone(TvPos), Lone(TvPos), realsym(RealPos)},
		{Lone(TvPos), Lone(TvNeg), realsym(RealNeg)},
		{Lone(TvP2Pos), Lone(TvPos), pair(0, TvPos)},
		{Lone(TvPos), Lone(TvP2Pos), pair(0, Null)},
		{Lone(TvPos), Lone(TvP4Pos), pair(0, TvM3Pos)},
		{Lone(TvM3Pos), Lone(TvPos), u},
		{Number(3), Lone(TvPos), pair(0, Null)},
		{Number(3), Lone(TvP2Pos), pair(0, TvM2Pos)},
		{Number(-3), Lone(TvP2Pos), pair(0, TvM2Neg)},
		{Number(0), Lone(TvPos), pair(0, TvM2Pos)},
		{Number(0), Lone(TvNeg), pair(0, TvM2Neg)},
		{Number(0), Lone(TvP2Pos), pair(0, TvM3Pos)},
		{Lone(TvPos), Number(-2), pair(0, TvNeg)},
		{Lone(TvPos), Number(0), pair(0, TvP2Pos)},
		{Lone(TvP4Pos), Number(0), u},
		{Lone(Null), Number(1), u},
		{Number(1), Lone(Null), u},
		{Lone(RealPos), Number(2), u},
		{Number(2), Lone(RealAll), u},
		{pair(6, TvM2Pos), Number(2), pair(3, TvM2Pos)},
		{pair(6, TvM2Pos), pair(2, TvM2Pos), u},
		{pair(0, TvPos), pair(0, TvPos), realsym(RealPos)},
	})
}

func TestNaNProductsUnimplemented(t *testing.T) {
	nan := Number(math.NaN())
	for _, v := range append(operands, nan, pair(math.NaN(), TvM2Pos)) {
		if got := Mul(nan, v); got != u {
			t.Errorf("NaN * %v = %v", v, got)
		}
		if got := Mul(v, nan); got != u {
			t.Errorf("%v * NaN = %v", v, got)
		}
		if got := Div(nan, v); got != u {
			t.Errorf("NaN / %v = %v", v, got)
		}
		if got := Div(v, nan); got != u {
			t.Errorf("%v / NaN = %v", v, got)
		}
	}
}

func TestCommutative(t *testing.T) {
	for _, x := range lones {
		for _, y := range lones {
			if a, b := Add(x, y), Add(y, x); a != b {
				t.Errorf("%v + %v = %v but %v + %v = %v", x, y, a, y, x, b)
			}
			if a, b := Mul(x, y), Mul(y, x); a != b {
				t.Errorf("%v * %v = %v but %v * %v = %v", x, y, a, y, x, b)
			}
		}
	}
}

func TestUnimplementedPropagates(t *testing.T) {
	for _, op := range ops {
		t.Run(op.name, func(t *testing.T) {
			for _, v := range append(operands, u) {
				if got := op.f(v, u); got != u {
					t.Errorf("%s(%v, U) = %v", op.name, v, got)
				}
				if got := op.f(u, v); got != u {
					t.Errorf("%s(U, %v) = %v", op.name, v, got)
				}
			}
		})
	}
	if got := Neg(u); got != u {
		t.Errorf("-U = %v", got)
	}
}

func TestResultsArePairs(t *testing.T) {
	for _, op := range ops {
		for _, x := range operands {
			for _, y := range operands {
				r := op.f(x, y)
				if r.IsUnimplemented() {
					continue
				}
				re, tv, ok := r.Components()
				if !ok {
					t.Errorf("%s(%v, %v) = %#v is not a pair", op.name, x, y, r)
					continue
				}
				if tv.IsReal() || tv == Unimplemented {
					t.Errorf("%s(%v, %v) has %v in the transvalent slot", op.name, x, y, tv)
				}
				if tv.Power() > 0 && !re.IsZero() {
					t.Errorf("%s(%v, %v) = %v keeps a real part beside %v", op.name, x, y, r, tv)
				}
			}
		}
	}
}
