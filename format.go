package liniarote

import (
	"math"
	"strconv"
	"strings"
)

// UnimplementedMessage is the display text of Lone(Unimplemented).
const UnimplementedMessage = "The requested calculation involves operations or values not yet implemented in the Liniarote CLI."

// Format renders v for display.
//
// Numbers always show a fractional part or an exponent, e.g. 7.0 or 1e+16.
// A pair shows only its real part when its transvalent part is Null and only
// its transvalent part when its real part is zero; otherwise it shows both,
// as in "3.0 + Ƿ⁻²". The zero Value formats as the empty string.
func Format(v Value) string {
	switch v.kind {
	case KindNumber:
		return formatFloat(v.re.x)
	case KindSymbol:
		if v.sym == Unimplemented {
			return UnimplementedMessage
		}
		return v.sym.String()
	case KindPair:
		switch {
		case v.sym == Null:
			return v.re.String()
		case v.re.IsZero():
			return v.sym.String()
		case v.sym.Sign() < 0:
			return v.re.String() + " - " + v.sym.Neg().String()
		default:
			return v.re.String() + " + " + v.sym.String()
		}
	default:
		return ""
	}
}

// formatFloat formats x the way an interactive calculator user expects to
// read floats: shortest round-trip digits, at least one fractional digit,
// and exponent notation only for very large or very small magnitudes.
func formatFloat(x float64) string {
	switch {
	case math.IsNaN(x):
		return "nan"
	case math.IsInf(x, 1):
		return "inf"
	case math.IsInf(x, -1):
		return "-inf"
	case x == 0:
		if math.Signbit(x) {
			return "-0.0"
		}
		return "0.0"
	}
	if ax := math.Abs(x); ax < 1e-4 || ax >= 1e16 {
		return strconv.FormatFloat(x, 'e', -1, 64)
	}
	s := strconv.FormatFloat(x, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
