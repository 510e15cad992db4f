package liniarote

import "math"

// Mul returns u × v.
//
// Lone factors multiply by power arithmetic: a nonzero real has power 0,
// zero has power -1, and Ƿⁿ has power n, so that 0 × Ƿ is Æ and Ƿ × Ƿ is Ƿ².
// Signs multiply as usual. A product of power 0 is a real symbol and a
// product of power -1 is zero. Products outside Ƿ⁻³ through Ƿ⁴ are
// Unimplemented, as is any transvalent product involving ℝ. Null annihilates
// everything it multiplies. A NaN factor has no power, so its products are
// Unimplemented.
//
// Pairs multiply by distributing over their components, summing the partial
// products with Add.
func Mul(u, v Value) Value {
	xs, ok := parts(u)
	if !ok {
		return unimplemented
	}
	ys, ok := parts(v)
	if !ok {
		return unimplemented
	}
	var r Value
	for _, x := range xs {
		for _, y := range ys {
			p := mulLone(x, y)
			if p.IsUnimplemented() {
				return unimplemented
			}
			if r.kind == KindNone {
				r = p
				continue
			}
			r = Add(r, p)
			if r.IsUnimplemented() {
				return unimplemented
			}
		}
	}
	return r
}

// Div returns u ÷ v.
//
// Division follows the same power arithmetic as multiplication, with powers
// subtracted: a nonzero number over zero is ±Ƿ, 0/0 is ℝ, and Ƿ/Ƿ is Æ.
// Dividing by or into Null or a real symbol is Unimplemented, as is dividing
// by a pair with both a real and a transvalent part. A pair dividend is
// divided component by component.
func Div(u, v Value) Value {
	xs, ok := parts(u)
	if !ok {
		return unimplemented
	}
	ys, ok := parts(v)
	if !ok || len(ys) != 1 {
		return unimplemented
	}
	y := ys[0]
	var r Value
	for _, x := range xs {
		q := divLone(x, y)
		if q.IsUnimplemented() {
			return unimplemented
		}
		if r.kind == KindNone {
			r = q
			continue
		}
		r = Add(r, q)
		if r.IsUnimplemented() {
			return unimplemented
		}
	}
	return r
}

// parts splits v into the lone values whose sum it is. A pair's real part is
// present unless it is zero alongside a transvalent part, and its
// transvalent part is present unless it is Null.
func parts(v Value) ([]Value, bool) {
	switch v.kind {
	case KindNumber:
		return []Value{v}, true
	case KindSymbol:
		return []Value{v}, v.sym != Unimplemented
	case KindPair:
		re := Number(v.re.x)
		if v.re.sym != Null {
			re = Lone(v.re.sym)
		}
		switch {
		case v.sym == Null:
			return []Value{re}, true
		case v.re.IsZero():
			return []Value{Lone(v.sym)}, true
		default:
			return []Value{re, Lone(v.sym)}, true
		}
	default:
		return nil, false
	}
}

// order is the power and sign of a lone factor.
type order struct {
	power int
	sign  int
}

func orderOf(v Value) order {
	if x, ok := v.Float(); ok {
		switch {
		case x > 0:
			return order{0, 1}
		case x < 0:
			return order{0, -1}
		default:
			return order{-1, 1}
		}
	}
	return order{v.sym.Power(), v.sym.Sign()}
}

// fromOrder returns the lone product or quotient of a power and sign.
func fromOrder(power, sign int) Value {
	switch power {
	case -1:
		return zero
	case 0:
		switch {
		case sign > 0:
			return Pair(RealSym(RealPos), Null)
		case sign < 0:
			return Pair(RealSym(RealNeg), Null)
		default:
			return Pair(RealSym(RealAll), Null)
		}
	}
	s, ok := transvalent(power, sign)
	if !ok {
		return unimplemented
	}
	return Pair(Num(0), s)
}

func isNull(v Value) bool {
	return v.kind == KindSymbol && v.sym == Null
}

// isNaN reports whether v is a NaN number, which has no power or sign.
func isNaN(v Value) bool {
	x, ok := v.Float()
	return ok && math.IsNaN(x)
}

func isRealSymbol(v Value) bool {
	return v.kind == KindSymbol && v.sym.IsReal()
}

func mulLone(x, y Value) Value {
	if isNaN(x) || isNaN(y) {
		return unimplemented
	}
	if isNull(x) || isNull(y) {
		return zero
	}
	if a, ok := x.Float(); ok {
		if b, ok := y.Float(); ok {
			return Pair(Num(unsigned0(a*b)), Null)
		}
	}
	p, q := orderOf(x), orderOf(y)
	return fromOrder(p.power+q.power, p.sign*q.sign)
}

func divLone(x, y Value) Value {
	if isNull(x) || isNull(y) || isRealSymbol(x) || isRealSymbol(y) || isNaN(x) || isNaN(y) {
		return unimplemented
	}
	if a, ok := x.Float(); ok {
		if b, ok := y.Float(); ok {
			switch {
			case b != 0:
				return Pair(Num(unsigned0(a/b)), Null)
			case a > 0:
				return Pair(Num(0), TvPos)
			case a < 0:
				return Pair(Num(0), TvNeg)
			default:
				return Pair(RealSym(RealAll), Null)
			}
		}
	}
	p, q := orderOf(x), orderOf(y)
	return fromOrder(p.power-q.power, p.sign*q.sign)
}
