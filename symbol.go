package liniarote

import "strconv"

// Symbol is one of the fixed symbolic values of transvalent arithmetic.
type Symbol uint8

const (
	// Null is the identity of the transvalent slot. It means that a value has
	// no transvalent part.
	Null Symbol = iota

	// TvPos is the primary transvalent symbol Ƿ, and TvNeg is its negation.
	TvPos
	TvNeg
	// TvP2Pos through TvP4Neg are the signed powers Ƿ² through Ƿ⁴.
	TvP2Pos
	TvP2Neg
	TvP3Pos
	TvP3Neg
	TvP4Pos
	TvP4Neg
	// TvM2Pos through TvM3Neg are the signed powers Ƿ⁻² and Ƿ⁻³.
	TvM2Pos
	TvM2Neg
	TvM3Pos
	TvM3Neg

	// RealPos and RealNeg stand for some positive or negative real number.
	RealPos
	RealNeg
	// RealAll stands for the set of all real numbers.
	RealAll

	// Unimplemented is the result of any combination for which no rule
	// exists. It poisons every computation it enters.
	Unimplemented

	nsymbols
)

var symbols = [nsymbols]struct {
	glyph string
	power int8
	sign  int8
}{
	Null:          {"∅", 0, 0},
	TvPos:         {"Ƿ", 1, 1},
	TvNeg:         {"-Ƿ", 1, -1},
	TvP2Pos:       {"Ƿ²", 2, 1},
	TvP2Neg:       {"-Ƿ²", 2, -1},
	TvP3Pos:       {"Ƿ³", 3, 1},
	TvP3Neg:       {"-Ƿ³", 3, -1},
	TvP4Pos:       {"Ƿ⁴", 4, 1},
	TvP4Neg:       {"-Ƿ⁴", 4, -1},
	TvM2Pos:       {"Ƿ⁻²", -2, 1},
	TvM2Neg:       {"-Ƿ⁻²", -2, -1},
	TvM3Pos:       {"Ƿ⁻³", -3, 1},
	TvM3Neg:       {"-Ƿ⁻³", -3, -1},
	RealPos:       {"Æ", 0, 1},
	RealNeg:       {"-Æ", 0, -1},
	RealAll:       {"ℝ", 0, 0},
	Unimplemented: {"U", 0, 0},
}

// String returns the display glyph of s.
func (s Symbol) String() string {
	if s >= nsymbols {
		return "Symbol(" + strconv.Itoa(int(s)) + ")"
	}
	return symbols[s].glyph
}

// IsTransvalent reports whether s is a signed power of Ƿ.
func (s Symbol) IsTransvalent() bool {
	return TvPos <= s && s <= TvM3Neg
}

// IsReal reports whether s is one of the real-number symbols Æ, -Æ, and ℝ.
func (s Symbol) IsReal() bool {
	return s == RealPos || s == RealNeg || s == RealAll
}

// Power returns the power of Ƿ that s represents, or 0 if s is not
// transvalent.
func (s Symbol) Power() int {
	if !s.IsTransvalent() {
		return 0
	}
	return int(symbols[s].power)
}

// Sign returns 1 or -1 for signed symbols and 0 for Null, RealAll, and
// Unimplemented.
func (s Symbol) Sign() int {
	if s >= nsymbols {
		return 0
	}
	return int(symbols[s].sign)
}

// Neg returns the negation of s. Null, RealAll, and Unimplemented are their
// own negations.
func (s Symbol) Neg() Symbol {
	switch s {
	case RealPos:
		return RealNeg
	case RealNeg:
		return RealPos
	}
	if s.IsTransvalent() {
		// Transvalent symbols come in positive, negative pairs.
		if (s-TvPos)%2 == 0 {
			return s + 1
		}
		return s - 1
	}
	return s
}

// transvalent returns the symbol for a power of Ƿ with the given sign. The
// result is false if no such symbol exists.
func transvalent(power, sign int) (Symbol, bool) {
	if sign == 0 {
		return Unimplemented, false
	}
	for s := TvPos; s <= TvM3Neg; s++ {
		if int(symbols[s].power) == power && int(symbols[s].sign) == sign {
			return s, true
		}
	}
	return Unimplemented, false
}

// slotSymbol reports whether s may occupy the transvalent slot of a pair.
func slotSymbol(s Symbol) bool {
	return s == Null || s.IsTransvalent()
}
