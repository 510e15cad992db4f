package liniarote

import (
	"errors"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Token is a lexical token of an expression.
type Token struct {
	// Text is the token as it appears in the input.
	Text string
	// Kind is the token type.
	Kind TokenKind
	// Pos is the rune column at which the token starts, counting from 1.
	Pos int
	// Sym is the symbol a TokenSymbol spells.
	Sym Symbol
}

func (t Token) String() string {
	return t.Kind.String() + ":" + t.Text + "@" + strconv.Itoa(t.Pos)
}

// TokenKind is the type of a token.
type TokenKind int

const (
	TokenNone TokenKind = iota
	// TokenEOF indicates the end of the input.
	TokenEOF
	// TokenNumber is an unsigned decimal number.
	TokenNumber
	// TokenIdent is the name of a constant.
	TokenIdent
	// TokenSymbol is a reserved spelling of a symbol, e.g. Ƿ² or w.
	TokenSymbol
	// TokenHelp is a request for help, help or ?.
	TokenHelp
	TokenPlus
	TokenMinus
	TokenTimes
	TokenDivide
	TokenLParen
	TokenRParen
)

var tokenKindNames = [...]string{
	TokenNone:   "None",
	TokenEOF:    "EOF",
	TokenNumber: "Number",
	TokenIdent:  "Ident",
	TokenSymbol: "Symbol",
	TokenHelp:   "Help",
	TokenPlus:   "Plus",
	TokenMinus:  "Minus",
	TokenTimes:  "Times",
	TokenDivide: "Divide",
	TokenLParen: "LParen",
	TokenRParen: "RParen",
}

func (k TokenKind) String() string {
	if k < 0 || int(k) >= len(tokenKindNames) {
		return "TokenKind(" + strconv.Itoa(int(k)) + ")"
	}
	return tokenKindNames[k]
}

// Operators contains the runes which are considered to be operators.
const Operators = "+-*/×÷"

var operkinds = map[rune]TokenKind{
	'+': TokenPlus,
	'-': TokenMinus,
	'*': TokenTimes,
	'/': TokenDivide,
	'×': TokenTimes,
	'÷': TokenDivide,
}

// glyphRunes are the non-letter runes that may appear in names so that
// spellings like Ƿ⁻² and ∅ lex as single tokens.
const glyphRunes = "⁻²³⁴∅"

// reserved maps the spellings that the lexer intercepts before treating a
// name as a constant. Powers of Ƿ may be spelled with any of its aliases.
var reserved = func() map[string]Token {
	m := map[string]Token{
		"help": {Kind: TokenHelp},
		"?":    {Kind: TokenHelp},
		"Ƿ":    {Kind: TokenSymbol, Sym: TvPos},
		"Æ":    {Kind: TokenSymbol, Sym: RealPos},
		"ℝ":    {Kind: TokenSymbol, Sym: RealAll},
		"∅":    {Kind: TokenSymbol, Sym: Null},
		"U":    {Kind: TokenSymbol, Sym: Unimplemented},
	}
	powers := map[string]Symbol{
		"":   TvPos,
		"²":  TvP2Pos,
		"³":  TvP3Pos,
		"⁴":  TvP4Pos,
		"⁻²": TvM2Pos,
		"⁻³": TvM3Pos,
	}
	for _, w := range []string{"Ƿ", "ƿ", "w", "W"} {
		for sup, sym := range powers {
			m[w+sup] = Token{Kind: TokenSymbol, Sym: sym}
		}
	}
	return m
}()

// Reserved reports whether name is a reserved spelling, such as a symbol or
// help, rather than the name of a constant.
func Reserved(name string) bool {
	_, ok := reserved[name]
	return ok
}

func identStart(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || strings.ContainsRune(glyphRunes, r)
}

func identRune(r rune) bool {
	return identStart(r) || '0' <= r && r <= '9'
}

type lexer struct {
	src  io.RuneScanner
	buf  strings.Builder
	rune int
	p    Token
	eof  bool
	// errs holds the lexical errors skipped so far.
	errs []InputError
	// err is the first error from src other than io.EOF.
	err error
}

func lex(src io.RuneScanner) *lexer {
	return &lexer{
		src:  src,
		rune: 1,
	}
}

// push unreads a token so that it is the next token returned from next. Panics
// if there is already a pushed token.
func (l *lexer) push(tok Token) {
	if l.p.Kind != TokenNone {
		panic("liniarote: double push")
	}
	l.p = tok
}

// readRune reads a rune from the src and updates the lexer's position info.
func (l *lexer) readRune() (r rune, err error) {
	r, sz, err := l.src.ReadRune()
	if sz > 0 {
		l.rune++
	}
	return r, err
}

// unreadRune unreads a rune from the src and updates the lexer's position
// info. Panics if unreading returns an error.
func (l *lexer) unreadRune() {
	if err := l.src.UnreadRune(); err != nil {
		panic(err)
	}
	l.rune--
}

// next scans the next token from the input. Runes that begin no token are
// recorded as errors and skipped. Once the input is exhausted, next returns
// an EOF token on every call.
func (l *lexer) next() Token {
	if l.p.Kind != TokenNone {
		tok := l.p
		l.p = Token{}
		return tok
	}
	if l.eof {
		return Token{Kind: TokenEOF, Pos: l.rune}
	}
	defer l.buf.Reset()
	for {
		tok := Token{Pos: l.rune}
		r, err := l.readRune()
		if err != nil {
			if !errors.Is(err, io.EOF) && l.err == nil {
				l.err = err
			}
			l.eof = true
			tok.Kind = TokenEOF
			return tok
		}
		switch {
		case unicode.IsSpace(r):
			continue
		case '0' <= r && r <= '9', r == '.':
			l.unreadRune()
			if !l.scanNum() {
				l.errs = append(l.errs, l.error(tok.Pos, "number"))
				l.buf.Reset()
				continue
			}
			tok.Text = l.buf.String()
			tok.Kind = TokenNumber
			return tok
		case identStart(r):
			l.unreadRune()
			l.scanIdent()
			tok.Text = l.buf.String()
			if rv, ok := reserved[tok.Text]; ok {
				tok.Kind, tok.Sym = rv.Kind, rv.Sym
			} else {
				tok.Kind = TokenIdent
			}
			return tok
		case r == '?':
			tok.Text = "?"
			tok.Kind = TokenHelp
			return tok
		case r == '(':
			tok.Text = "("
			tok.Kind = TokenLParen
			return tok
		case r == ')':
			tok.Text = ")"
			tok.Kind = TokenRParen
			return tok
		default:
			if k, ok := operkinds[r]; ok {
				tok.Text = string(r)
				tok.Kind = k
				return tok
			}
			// Write the rune so that it shows up in the error message.
			l.buf.WriteRune(r)
			l.errs = append(l.errs, l.error(tok.Pos, ""))
			l.buf.Reset()
		}
	}
}

// scanNum scans digits with an optional fraction. The result is false if
// there are no digits.
func (l *lexer) scanNum() bool {
	var dig, dot bool
	for {
		r, err := l.readRune()
		if err != nil {
			break
		}
		switch {
		case '0' <= r && r <= '9':
			dig = true
		case r == '.' && !dot:
			dot = true
		default:
			l.unreadRune()
			return dig
		}
		l.buf.WriteRune(r)
	}
	return dig
}

func (l *lexer) scanIdent() {
	for {
		r, err := l.readRune()
		if err != nil {
			// next unreads the rune that decides ident scanning before
			// calling scanIdent, so we have scanned at least one rune.
			return
		}
		if !identRune(r) {
			l.unreadRune()
			return
		}
		l.buf.WriteRune(r)
	}
}

func (l *lexer) error(col int, kind string) *LexError {
	return &LexError{
		Text: l.buf.String(),
		Kind: kind,
		Col:  col,
	}
}

// Tokenize scans all tokens from src, ending with an EOF token. Lexical
// errors are skipped and reported together as Diagnostics.
func Tokenize(src io.RuneScanner) ([]Token, error) {
	l := lex(src)
	var toks []Token
	for {
		tok := l.next()
		toks = append(toks, tok)
		if tok.Kind == TokenEOF {
			break
		}
	}
	if l.err != nil {
		return toks, l.err
	}
	if len(l.errs) != 0 {
		return toks, Diagnostics(l.errs)
	}
	return toks, nil
}

// LexError indicates a run of input that begins no token. It implements
// InputError.
type LexError struct {
	// Text is the skipped input.
	Text string
	// Kind is the type of token the lexer was scanning. This is "number" or
	// the empty string if a token kind hadn't been decided.
	Kind string
	// Col is the position of the first skipped rune.
	Col int
}

func (err *LexError) Error() string {
	if err.Kind == "" {
		return errpos(err.Col, "invalid token "+strconv.Quote(err.Text))
	}
	return errpos(err.Col, "invalid "+err.Kind+" token "+strconv.Quote(err.Text))
}

func (err *LexError) Pos() int {
	return err.Col
}
