package liniarote

// IntroText introduces the calculator at the start of an interactive session.
const IntroText = `Liniarote: a calculator for transvalent arithmetic.

Enter an expression to evaluate it, or "help" for a list of symbols.
Press Ctrl+C or Ctrl+D to quit.
`

// HelpText describes the input language. Evaluating a lone help request
// writes it to the session's diagnostics writer.
const HelpText = `Expressions combine numbers, constants, and symbols with + - * / and
parentheses. × and ÷ may be used for * and /. Unary minus binds tightest.

Symbols:
  Ƿ  (also w, W, ƿ)     the transvalent number, 1/0
  Ƿ² Ƿ³ Ƿ⁴ Ƿ⁻² Ƿ⁻³     powers of Ƿ, also spelled with an alias, e.g. w²
  Æ                     some real number (0 × Ƿ); -Æ is its negative
  ℝ                     the set of all real numbers (0 / 0)
  ∅                     the null symbol
  U                     the unimplemented sentinel

Constants pi and e are built in. Any other name is a constant whose value
you will be asked for the first time it is used.

Combinations without a rule evaluate to U, which is displayed as a notice
rather than a number.
`
