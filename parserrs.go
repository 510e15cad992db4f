package liniarote

import (
	"strconv"
	"strings"
)

// OperatorError is an error indicating an operator used where it has no
// meaning, such as a unary * or +. It implements InputError.
type OperatorError struct {
	// Col is the position of the operator.
	Col int
	// Operator is the token that was not understood.
	Operator string
	// Unary is whether the parser expected a unary operator at the time.
	Unary bool
}

func (err *OperatorError) Error() string {
	s := "binary"
	if err.Unary {
		s = "unary"
	}
	return errpos(err.Col, "unknown "+s+" operator "+strconv.Quote(err.Operator))
}

func (err *OperatorError) Pos() int {
	return err.Col
}

// BracketError is an error indicating unbalanced parentheses in the input.
// It implements InputError.
type BracketError struct {
	// Col is the position of the unmatched parenthesis.
	Col int
	// Left is the opening parenthesis, or empty if a close has no open.
	Left string
	// Right is the closing parenthesis, or empty if an open has no close.
	Right string
}

func (err *BracketError) Error() string {
	if err.Left == "" {
		return errpos(err.Col, "close bracket "+err.Right+" with no open bracket")
	}
	return errpos(err.Col, "open bracket "+err.Left+" with no close bracket")
}

func (err *BracketError) Pos() int {
	return err.Col
}

// EmptyExpressionError is an error indicating an empty subexpression, e.g. an
// operator with no right operand. It implements InputError.
type EmptyExpressionError struct {
	// Col is the position of the token that ended the subexpression.
	Col int
	// End is the token that ended the subexpression.
	End string
}

func (err *EmptyExpressionError) Error() string {
	if err.End == "" {
		if err.Col <= 1 {
			return errpos(err.Col, "no expression")
		}
		return errpos(err.Col, "no expression at end")
	}
	return errpos(err.Col, "no expression up to "+strconv.Quote(err.End))
}

func (err *EmptyExpressionError) Pos() int {
	return err.Col
}

// TermError is an error indicating an operand that follows another operand
// with no operator between them. The parser discards the operand. It
// implements InputError.
type TermError struct {
	// Col is the position of the start of the discarded operand.
	Col int
	// Term is the first token of the discarded operand.
	Term string
}

func (err *TermError) Error() string {
	return errpos(err.Col, "unexpected term "+strconv.Quote(err.Term)+" without operator")
}

func (err *TermError) Pos() int {
	return err.Col
}

// HelpError is an error indicating a help request that is part of a larger
// expression. Help must be requested alone. It implements InputError.
type HelpError struct {
	// Col is the position of the help request.
	Col int
}

func (err *HelpError) Error() string {
	return errpos(err.Col, "help must be requested alone")
}

func (err *HelpError) Pos() int {
	return err.Col
}

// errpos is a shortcut to create an error message with a position.
func errpos(pos int, msg string) string {
	return strconv.Itoa(pos) + ": " + msg
}

// InputError is an error with position information. Every error resulting from
// invalid input implements InputError.
type InputError interface {
	error
	// Pos returns the position of the error as the number of runes up to and
	// including the start of the token that caused the error.
	Pos() int
}

// Diagnostics is a list of input errors that parsing recovered from. A
// Diagnostics error is returned alongside a best-effort result.
type Diagnostics []InputError

func (d Diagnostics) Error() string {
	switch len(d) {
	case 0:
		return "no errors"
	case 1:
		return d[0].Error()
	}
	var b strings.Builder
	b.WriteString(strconv.Itoa(len(d)))
	b.WriteString(" errors: ")
	for i, err := range d {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

// Unwrap returns the errors in d, so that errors.As can find each one.
func (d Diagnostics) Unwrap() []error {
	r := make([]error, len(d))
	for i, err := range d {
		r[i] = err
	}
	return r
}

var (
	_ InputError = (*OperatorError)(nil)
	_ InputError = (*BracketError)(nil)
	_ InputError = (*EmptyExpressionError)(nil)
	_ InputError = (*TermError)(nil)
	_ InputError = (*HelpError)(nil)
	_ InputError = (*LexError)(nil)
)
