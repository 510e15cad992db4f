package liniarote

// Add returns u + v.
//
// Both operands are normalized to pairs and their slots are summed
// separately. The real slot adds concrete numbers normally; a real symbol
// survives only the addition of zero or of an equal signed real symbol. The
// transvalent slot keeps equal symbols, cancels opposite ones to Null, and
// has no rule for symbols of different powers. A positive power of Ƿ absorbs
// any real part it is added to.
func Add(u, v Value) Value {
	a, b, ok := u.split()
	if !ok {
		return unimplemented
	}
	c, d, ok := v.split()
	if !ok {
		return unimplemented
	}
	re, ok := addReal(a, c)
	if !ok {
		return unimplemented
	}
	tv, ok := addTransvalent(b, d)
	if !ok {
		return unimplemented
	}
	return fold(re, tv)
}

// Sub returns u - v.
//
// Subtraction has its own rules rather than adding the negation of v. They
// agree with Neg in that Sub(Number(0), v) is the normalized Neg(v), but
// differ from addition for ℝ, which absorbs numbers subtracted from or by it.
func Sub(u, v Value) Value {
	a, b, ok := u.split()
	if !ok {
		return unimplemented
	}
	c, d, ok := v.split()
	if !ok {
		return unimplemented
	}
	re, ok := subReal(a, c)
	if !ok {
		return unimplemented
	}
	tv, ok := subTransvalent(b, d)
	if !ok {
		return unimplemented
	}
	return fold(re, tv)
}

// Neg returns -v. Lone values stay lone.
func Neg(v Value) Value {
	switch v.kind {
	case KindNumber:
		return Number(negf(v.re.x))
	case KindSymbol:
		return Lone(v.sym.Neg())
	case KindPair:
		return Pair(v.re.neg(), v.sym.Neg())
	default:
		return unimplemented
	}
}

// fold combines separately computed slots into a canonical pair.
func fold(re Real, tv Symbol) Value {
	if tv.Power() > 0 {
		return Pair(Num(0), tv)
	}
	return Pair(re, tv)
}

func addReal(a, c Real) (Real, bool) {
	x, xok := a.Float()
	y, yok := c.Float()
	switch {
	case xok && yok:
		return Num(x + y), true
	case xok:
		if x == 0 {
			return c, true
		}
		return Real{}, false
	case yok:
		if y == 0 {
			return a, true
		}
		return Real{}, false
	}
	if a.sym == c.sym && a.sym != RealAll {
		return a, true
	}
	return Real{}, false
}

func subReal(a, c Real) (Real, bool) {
	x, xok := a.Float()
	y, yok := c.Float()
	switch {
	case xok && yok:
		return Num(x - y), true
	case c.sym == RealAll && xok, a.sym == RealAll && yok:
		return RealSym(RealAll), true
	case xok:
		if x == 0 {
			return c.neg(), true
		}
		return Real{}, false
	case yok:
		if y == 0 {
			return a, true
		}
		return Real{}, false
	}
	// Æ - -Æ is Æ, and -Æ - Æ is -Æ. Every other difference of real symbols
	// is unknown.
	if a.sym != RealAll && a.sym == c.sym.Neg() {
		return a, true
	}
	return Real{}, false
}

func addTransvalent(b, d Symbol) (Symbol, bool) {
	switch {
	case b == Null:
		return d, true
	case d == Null:
		return b, true
	case b == d:
		return b, true
	case b == d.Neg():
		return Null, true
	default:
		return Unimplemented, false
	}
}

func subTransvalent(b, d Symbol) (Symbol, bool) {
	switch {
	case d == Null:
		return b, true
	case b == Null:
		return d.Neg(), true
	case b == d:
		return Null, true
	case b == d.Neg():
		return b, true
	default:
		return Unimplemented, false
	}
}
