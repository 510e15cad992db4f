package liniarote

import (
	"io"
	"strings"
)

// Expr = num | name | symbol | Neg | Add | Sub | Mul | Div | '(' Expr ')'
// Neg = '-' Expr
// Add = Expr '+' Expr
// Sub = Expr '-' Expr
// Mul = Expr '*' Expr | Expr '×' Expr
// Div = Expr '/' Expr | Expr '÷' Expr
//
// Input = Expr | help | '?'

// Expr is a parsed expression that can be evaluated with a session.
type Expr struct {
	// n is the root node of the expression. It is nil if nothing could be
	// parsed.
	n *node
	// names is the list of constant names used in the expression.
	names []string
}

type parser struct {
	scan *lexer
	// names is the set of constant names that have been seen this parse.
	names map[string]bool
	// errs is the list of syntax errors recovered from.
	errs []InputError
}

func (p *parser) report(err InputError) {
	p.errs = append(p.errs, err)
}

// nerrs counts the lexical and syntax errors so far.
func (p *parser) nerrs() int {
	return len(p.errs) + len(p.scan.errs)
}

// Parse parses an expression so it can be evaluated with a session.
//
// Parse does not stop at malformed input. It reports each lexical and syntax
// error it recovers from in a Diagnostics error and returns the expression it
// was able to make of the rest. A stray operator is dropped, an operand that
// follows another operand is discarded, and a missing close bracket is
// assumed at the end of the input. The only other errors are those from src.
func Parse(src io.RuneScanner) (*Expr, error) {
	p := parser{
		scan:  lex(src),
		names: make(map[string]bool),
	}
	var n *node
	switch tok := p.scan.next(); tok.Kind {
	case TokenHelp:
		end := p.scan.next()
		if end.Kind == TokenEOF {
			n = &node{kind: nodeHelp}
			break
		}
		p.report(&HelpError{Col: tok.Pos})
		p.scan.push(end)
		n = p.parseexpr()
	default:
		p.scan.push(tok)
		n = p.parseexpr()
	}
	ex := Expr{
		n:     n,
		names: make([]string, 0, len(p.names)),
	}
	for k := range p.names {
		ex.names = append(ex.names, k)
	}
	sortstrs(ex.names)
	if p.scan.err != nil {
		return &ex, p.scan.err
	}
	errs := append(p.scan.errs, p.errs...)
	if len(errs) == 0 {
		return &ex, nil
	}
	sorterrs(errs)
	return &ex, Diagnostics(errs)
}

// sortstrs sorts a short string slice in place.
func sortstrs(names []string) {
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j] < names[j-1]; j-- {
			names[j], names[j-1] = names[j-1], names[j]
		}
	}
}

// sorterrs stably sorts errors by position.
func sorterrs(errs []InputError) {
	for i := 1; i < len(errs); i++ {
		for j := i; j > 0 && errs[j].Pos() < errs[j-1].Pos(); j-- {
			errs[j], errs[j-1] = errs[j-1], errs[j]
		}
	}
}

// parseexpr parses the entire input as an expression. Close brackets with no
// open bracket are reported and skipped.
func (p *parser) parseexpr() *node {
	k := p.nerrs()
	n := p.parseterm(exprprec)
	for {
		switch tok := p.scan.next(); tok.Kind {
		case TokenEOF:
			if n == nil && k == p.nerrs() {
				p.report(&EmptyExpressionError{Col: tok.Pos})
			}
			return n
		case TokenRParen:
			p.report(&BracketError{Col: tok.Pos, Right: tok.Text})
			if n == nil {
				n = p.parseterm(exprprec)
			} else {
				n = p.parserest(n, exprprec)
			}
		default:
			panic("liniarote: expression ended on " + tok.String())
		}
	}
}

// parseterm parses a single term. parseterm pushes the last token it scans,
// which is always a close bracket or EOF when until is exprprec. If the input
// is an empty subexpression, the result is nil; callers must report an error
// in contexts where empty subexpressions are illegal.
func (p *parser) parseterm(until operator) *node {
	n := p.parselhs(until)
	if n == nil {
		return nil
	}
	return p.parserest(n, until)
}

// parserest parses the operations that follow an already parsed operand.
func (p *parser) parserest(n *node, until operator) *node {
	for {
		tok := p.scan.next()
		switch tok.Kind {
		case TokenPlus, TokenMinus, TokenTimes, TokenDivide:
			prec := binop(tok.Kind)
			if !prec.moreBinding(until) {
				p.scan.push(tok)
				return n
			}
			k := p.nerrs()
			rhs := p.parseterm(prec)
			if rhs == nil {
				// Drop the operator and keep what we have.
				end := p.scan.next()
				p.scan.push(end)
				if k == p.nerrs() {
					p.report(&EmptyExpressionError{Col: end.Pos, End: end.Text})
				}
				continue
			}
			n = &node{kind: prec.op, left: n, right: rhs}
		case TokenNumber, TokenIdent, TokenSymbol, TokenLParen, TokenHelp:
			// Two operands in a row. Keep the first.
			p.report(&TermError{Col: tok.Pos, Term: tok.Text})
			p.scan.push(tok)
			p.parselhs(unaryprec)
		case TokenRParen, TokenEOF:
			// End of term.
			p.scan.push(tok)
			return n
		default:
			panic("liniarote: unknown token: " + tok.String())
		}
	}
}

// parselhs parses the first component of a term. I.e., operators are unary,
// and any encountered token must be valid as the start of a subexpression.
// If the term is empty, parselhs pushes the token that ends it and returns
// nil.
func (p *parser) parselhs(until operator) *node {
	tok := p.scan.next()
	switch tok.Kind {
	case TokenNumber:
		return &node{kind: nodeNum, name: tok.Text}
	case TokenIdent:
		p.names[tok.Text] = true
		return &node{kind: nodeName, name: tok.Text}
	case TokenSymbol:
		return &node{kind: nodeSym, name: tok.Text, sym: tok.Sym}
	case TokenMinus:
		prec := unop(tok.Kind)
		rhs := p.parseterm(prec)
		if rhs == nil {
			return nil
		}
		return &node{kind: prec.op, left: rhs}
	case TokenPlus, TokenTimes, TokenDivide:
		p.report(&OperatorError{Col: tok.Pos, Operator: tok.Text, Unary: true})
		return p.parselhs(until)
	case TokenLParen:
		k := p.nerrs()
		rhs := p.parseterm(exprprec)
		end := p.scan.next()
		if end.Kind != TokenRParen {
			p.report(&BracketError{Col: tok.Pos, Left: tok.Text})
			p.scan.push(end)
		}
		if rhs != nil {
			return rhs
		}
		if k == p.nerrs() {
			p.report(&EmptyExpressionError{Col: end.Pos, End: end.Text})
		}
		// The term continues past an empty group. An operator that would
		// have applied to the group is dropped with it.
		switch next := p.scan.next(); next.Kind {
		case TokenRParen, TokenEOF:
			p.scan.push(next)
			return nil
		case TokenPlus, TokenMinus, TokenTimes, TokenDivide:
			return p.parselhs(until)
		default:
			p.scan.push(next)
			return p.parselhs(until)
		}
	case TokenHelp:
		p.report(&HelpError{Col: tok.Pos})
		return p.parselhs(until)
	case TokenRParen, TokenEOF:
		p.scan.push(tok)
		return nil
	default:
		panic("liniarote: unknown token: " + tok.String())
	}
}

// Names returns the constant names used when evaluating the expression.
func (e *Expr) Names() []string {
	return append(([]string)(nil), e.names...)
}

// IsHelp reports whether the expression is a request for help.
func (e *Expr) IsHelp() bool {
	return e.n != nil && e.n.kind == nodeHelp
}

// String creates a string representation of the parsed expression, with
// alternating round and square brackets grouping each term.
func (e *Expr) String() string {
	if e.n == nil {
		return ""
	}
	var b strings.Builder
	e.n.fmt(&b, false, true)
	return b.String()
}

type operator struct {
	// prec is the precedence value. Higher is more binding.
	prec int8
	// right indicates right-associativity.
	right bool
	// op is the node kind to use when this operator is selected.
	op nodeKind
}

func (p operator) moreBinding(than operator) bool {
	if p.prec != than.prec {
		return p.prec > than.prec
	}
	return p.right
}

// binop gets the binary operator for a token kind. If there is no such binary
// operator, then the result has an op of nodeNone.
func binop(kind TokenKind) operator {
	switch kind {
	case TokenPlus:
		return operator{1, false, nodeAdd}
	case TokenMinus:
		return operator{1, false, nodeSub}
	case TokenTimes:
		return operator{5, false, nodeMul}
	case TokenDivide:
		return operator{5, false, nodeDiv}
	default:
		return operator{}
	}
}

// unop gets the unary operator for a token kind. If there is no such unary
// operator, then the result has an op of nodeNone.
func unop(kind TokenKind) operator {
	switch kind {
	case TokenMinus:
		return unaryprec
	default:
		return operator{}
	}
}

var (
	// unaryprec is the precedence of negation, which binds tighter than any
	// binary operator.
	unaryprec = operator{10, true, nodeNeg}
	// exprprec is the precedence required to parse an entire subexpression.
	exprprec = operator{-128, true, nodeNone}
)
