package liniarote

import "strconv"

// Real is the real component of a pair. It is either a concrete number or
// one of the real symbols Æ, -Æ, and ℝ. The zero Real is the number 0.
type Real struct {
	// sym is Null when the component is numeric.
	sym Symbol
	x   float64
}

// Num returns a numeric real component.
func Num(x float64) Real {
	return Real{x: x}
}

// RealSym returns a symbolic real component. Panics if s is not a real
// symbol.
func RealSym(s Symbol) Real {
	if !s.IsReal() {
		panic("liniarote: " + s.String() + " is not a real symbol")
	}
	return Real{sym: s}
}

// Float returns the numeric value of r. The result is false if r is
// symbolic.
func (r Real) Float() (float64, bool) {
	return r.x, r.sym == Null
}

// Symbol returns the real symbol of r. The result is false if r is numeric.
func (r Real) Symbol() (Symbol, bool) {
	return r.sym, r.sym != Null
}

// IsZero reports whether r is the number 0.
func (r Real) IsZero() bool {
	return r.sym == Null && r.x == 0
}

func (r Real) String() string {
	if r.sym != Null {
		return r.sym.String()
	}
	return formatFloat(r.x)
}

func (r Real) neg() Real {
	if r.sym != Null {
		return Real{sym: r.sym.Neg()}
	}
	return Num(negf(r.x))
}

// negf negates x without producing a negative zero.
func negf(x float64) float64 {
	return unsigned0(-x)
}

// unsigned0 replaces negative zero with zero.
func unsigned0(x float64) float64 {
	if x == 0 {
		return 0
	}
	return x
}

// Kind is the variant held by a Value.
type Kind uint8

const (
	// KindNone is the kind of the zero Value, which holds nothing.
	KindNone Kind = iota
	// KindNumber is a lone real number.
	KindNumber
	// KindSymbol is a lone symbol.
	KindSymbol
	// KindPair is a real part plus a transvalent part.
	KindPair
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "None"
	case KindNumber:
		return "Number"
	case KindSymbol:
		return "Symbol"
	case KindPair:
		return "Pair"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is a value of transvalent arithmetic. Values are comparable with ==.
type Value struct {
	kind Kind
	re   Real
	sym  Symbol
}

// Number returns a lone real number.
func Number(x float64) Value {
	return Value{kind: KindNumber, re: Num(x)}
}

// Lone returns a lone symbol.
func Lone(s Symbol) Value {
	return Value{kind: KindSymbol, sym: s}
}

// Pair returns the pair of re and tv. If tv is Unimplemented, the result is
// Lone(Unimplemented). Panics if tv is a real symbol.
func Pair(re Real, tv Symbol) Value {
	if tv == Unimplemented {
		return unimplemented
	}
	if !slotSymbol(tv) {
		panic("liniarote: " + tv.String() + " in transvalent slot")
	}
	return Value{kind: KindPair, re: re, sym: tv}
}

var (
	unimplemented = Lone(Unimplemented)
	zero          = Pair(Num(0), Null)
)

// Kind returns the variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// Float returns the number held by a lone number. The result is false for
// any other kind.
func (v Value) Float() (float64, bool) {
	if v.kind != KindNumber {
		return 0, false
	}
	return v.re.x, true
}

// Symbol returns the symbol held by a lone symbol. The result is false for
// any other kind.
func (v Value) Symbol() (Symbol, bool) {
	if v.kind != KindSymbol {
		return Null, false
	}
	return v.sym, true
}

// Components returns the real and transvalent parts of a pair. The result is
// false for any other kind.
func (v Value) Components() (Real, Symbol, bool) {
	if v.kind != KindPair {
		return Real{}, Null, false
	}
	return v.re, v.sym, true
}

// IsUnimplemented reports whether v is Lone(Unimplemented).
func (v Value) IsUnimplemented() bool {
	return v.kind == KindSymbol && v.sym == Unimplemented
}

// Normalize returns the pair form of v. Pairs are returned unchanged. The
// result is false if v is Unimplemented or the zero Value, which have no
// pair form.
func (v Value) Normalize() (Value, bool) {
	re, tv, ok := v.split()
	if !ok {
		return unimplemented, false
	}
	return Value{kind: KindPair, re: re, sym: tv}, true
}

// split returns the components of the pair form of v.
func (v Value) split() (Real, Symbol, bool) {
	switch v.kind {
	case KindNumber:
		return v.re, Null, true
	case KindSymbol:
		switch {
		case v.sym == Unimplemented:
			return Real{}, Null, false
		case v.sym.IsReal():
			return Real{sym: v.sym}, Null, true
		default:
			return Real{}, v.sym, true
		}
	case KindPair:
		return v.re, v.sym, true
	default:
		return Real{}, Null, false
	}
}

func (v Value) String() string {
	return Format(v)
}
