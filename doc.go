// Package liniarote implements a calculator for transvalent arithmetic, the
// real numbers extended with a closed set of symbols.
//
// The primary symbol Ƿ is the result of dividing a positive number by zero.
// Its powers Ƿ⁻³ through Ƿ⁴ are also symbols, each with a negative. Æ stands
// for some real number, such as 0 × Ƿ, and ℝ for the set of all reals, such
// as 0 / 0. ∅ is the null symbol. Any combination for which the arithmetic
// has no rule produces the sentinel U, which absorbs everything it touches.
//
// Expressions use + - * / with the usual precedence, parentheses, and a
// unary minus that binds tighter than anything else. "w" is an ASCII alias
// for Ƿ. Other names are constants: pi and e are built in, and a Session
// asks its Resolver for the rest the first time each is used.
//
// Parsing is forgiving. Malformed input produces Diagnostics alongside a
// best-effort expression rather than no expression at all.
package liniarote
