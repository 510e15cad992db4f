package liniarote

import (
	"math/big"

	"github.com/zephyrtronium/bigfloat"
)

// constprec is the precision in bits at which built-in constants are
// computed before rounding to float64.
const constprec = 128

// builtins are the constants bound in every session. Sessions never resolve
// these names.
var builtins = map[string]func(out *big.Float) *big.Float{
	"pi": bigfloat.Pi,
	"e": func(out *big.Float) *big.Float {
		var one big.Float
		one.SetPrec(out.Prec()).SetInt64(1)
		return bigfloat.Exp(out, &one)
	},
}

// builtinValues caches the rounded values of builtins.
var builtinValues = func() map[string]float64 {
	m := make(map[string]float64, len(builtins))
	for name, f := range builtins {
		x, _ := f(new(big.Float).SetPrec(constprec)).Float64()
		m[name] = x
	}
	return m
}()

// Builtin returns the value of a built-in constant. The result is false if
// name is not built in.
func Builtin(name string) (float64, bool) {
	x, ok := builtinValues[name]
	return x, ok
}

// Builtins returns the names of the built-in constants in sorted order.
func Builtins() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sortstrs(names)
	return names
}
