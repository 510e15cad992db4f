package liniarote

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
)

// ErrHelp is returned by evaluating an expression that is a request for help.
// The help text has been written to the session's diagnostics writer.
var ErrHelp = errors.New("liniarote: help requested")

// Resolver supplies values for constants that a session has not bound.
type Resolver interface {
	// Resolve returns the value of the named constant. It may block, e.g. to
	// ask the user.
	Resolve(name string) (float64, error)
}

// ResolverFunc adapts a function to a Resolver.
type ResolverFunc func(name string) (float64, error)

// Resolve calls f(name).
func (f ResolverFunc) Resolve(name string) (float64, error) {
	return f(name)
}

// Session is a context for evaluating expressions. It holds the constant
// bindings that persist across evaluations, and it asks its resolver for each
// unbound constant at most once. It is not safe to use a Session
// concurrently.
type Session struct {
	stack   []Value
	nums    map[string]float64
	names   map[string]float64
	resolve Resolver
	diag    io.Writer
	log     zerolog.Logger
}

// Option is an option used when creating a session.
type Option interface {
	sessionOption()
}

type (
	constopt struct {
		name string
		val  float64
	}
	constsopt  map[string]float64
	resolveopt struct{ r Resolver }
	diagopt    struct{ w io.Writer }
	loggeropt  zerolog.Logger
)

func (constopt) sessionOption()   {}
func (constsopt) sessionOption()  {}
func (resolveopt) sessionOption() {}
func (diagopt) sessionOption()    {}
func (loggeropt) sessionOption()  {}

// SetConst binds a constant in the session.
func SetConst(name string, val float64) Option {
	return constopt{name, val}
}

// SetConsts binds any number of constants in the session.
func SetConsts(consts map[string]float64) Option {
	return constsopt(consts)
}

// WithResolver sets the resolver the session asks for unbound constants.
// Without a resolver, evaluating an unbound constant is a NameError.
func WithResolver(r Resolver) Option {
	return resolveopt{r}
}

// DiagnosticsTo sets the writer to which the session writes recovered input
// errors and help text. The default discards them.
func DiagnosticsTo(w io.Writer) Option {
	return diagopt{w}
}

// Logger sets the logger the session traces evaluation to. The default
// discards all logs.
func Logger(log zerolog.Logger) Option {
	return loggeropt(log)
}

// NewSession creates a new evaluation session. Panics if an option binds a
// built-in constant.
func NewSession(opts ...Option) *Session {
	s := Session{
		nums:  make(map[string]float64),
		names: make(map[string]float64),
		diag:  io.Discard,
		log:   zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		switch opt := opt.(type) {
		case constopt:
			s.Set(opt.name, opt.val)
		case constsopt:
			for k, v := range opt {
				s.Set(k, v)
			}
		case resolveopt:
			s.resolve = opt.r
		case diagopt:
			s.diag = opt.w
		case loggeropt:
			s.log = zerolog.Logger(opt)
		default:
			panic("liniarote: unknown option type")
		}
	}
	return &s
}

// Eval evaluates an expression and returns the result. Combinations with no
// defined result are not errors; they evaluate to Lone(Unimplemented).
//
// If e is a request for help, Eval writes the help text to the diagnostics
// writer and returns ErrHelp. If a constant cannot be resolved, the error is
// a *NameError. If e is empty, the result is the zero Value.
func (s *Session) Eval(e *Expr) (Value, error) {
	if len(s.stack) != 0 {
		panic("liniarote: Eval during Eval")
	}
	if e.n == nil {
		return Value{}, nil
	}
	err := e.n.eval(s)
	if err != nil {
		s.stack = s.stack[:0]
		return Value{}, err
	}
	if len(s.stack) != 1 {
		panic("liniarote: inconsistent stack: " + strconv.Itoa(len(s.stack)) + " items (bad AST?)")
	}
	r := s.pop()
	s.log.Debug().Str("expr", e.String()).Stringer("result", r).Msg("evaluated")
	return r, nil
}

// EvalString parses and evaluates src. Input errors that parsing recovered
// from are written to the diagnostics writer and returned as Diagnostics
// along with the best-effort result. Errors from evaluation take precedence.
func (s *Session) EvalString(src string) (Value, error) {
	e, perr := Parse(strings.NewReader(src))
	var diags Diagnostics
	if errors.As(perr, &diags) {
		for _, d := range diags {
			fmt.Fprintln(s.diag, d)
			s.log.Warn().Int("col", d.Pos()).Err(d).Msg("recovered from input error")
		}
	}
	v, err := s.Eval(e)
	if err != nil {
		return v, err
	}
	return v, perr
}

// Set binds a constant. Returns s for chaining. Calling Set while the
// session is evaluating an expression or binding a built-in constant panics.
func (s *Session) Set(name string, value float64) *Session {
	if len(s.stack) > 0 {
		panic("liniarote: Set on in-use session")
	}
	if _, ok := builtins[name]; ok {
		panic("liniarote: cannot rebind built-in constant " + name)
	}
	s.names[name] = value
	return s
}

// Lookup returns the value bound to a constant, including built-in ones. The
// result is false if the name is unbound.
func (s *Session) Lookup(name string) (float64, bool) {
	if x, ok := Builtin(name); ok {
		return x, true
	}
	x, ok := s.names[name]
	return x, ok
}

// lookup returns the value of a constant, resolving it if necessary.
func (s *Session) lookup(name string) (float64, error) {
	if x, ok := s.Lookup(name); ok {
		return x, nil
	}
	if s.resolve == nil {
		return 0, &NameError{Name: name}
	}
	x, err := s.resolve.Resolve(name)
	if err != nil {
		return 0, &NameError{Name: name, Err: err}
	}
	s.log.Debug().Str("name", name).Float64("value", x).Msg("resolved constant")
	s.names[name] = x
	return x, nil
}

func (s *Session) push(v Value) {
	s.stack = append(s.stack, v)
}

func (s *Session) pop() Value {
	r := s.stack[len(s.stack)-1]
	s.stack = s.stack[:len(s.stack)-1]
	return r
}

// num gets a possibly cached number from its text.
func (s *Session) num(text string) float64 {
	if x, ok := s.nums[text]; ok {
		return x
	}
	x, err := strconv.ParseFloat(text, 64)
	if err != nil {
		var nerr *strconv.NumError
		if !errors.As(err, &nerr) || nerr.Err != strconv.ErrRange {
			panic("liniarote: invalid number: " + text + " (" + err.Error() + ")")
		}
		// ParseFloat returns ±Inf for out of range inputs.
	}
	s.nums[text] = x
	return x
}

// combine replaces the top two values on the stack with f of them.
func (s *Session) combine(op string, f func(u, v Value) Value) {
	r := s.pop()
	l := s.pop()
	x := f(l, r)
	s.log.Debug().Stringer("lhs", l).Str("op", op).Stringer("rhs", r).Stringer("result", x).Msg("combine")
	s.push(x)
}

// eval pushes the node's value to the session's stack.
func (n *node) eval(s *Session) error {
	switch n.kind {
	case nodeNum:
		s.push(Number(s.num(n.name)))
	case nodeName:
		x, err := s.lookup(n.name)
		if err != nil {
			return err
		}
		s.push(Number(x))
	case nodeSym:
		s.push(Lone(n.sym))
	case nodeHelp:
		io.WriteString(s.diag, HelpText)
		return ErrHelp
	case nodeNeg:
		if err := n.left.eval(s); err != nil {
			return err
		}
		s.push(Neg(s.pop()))
	case nodeAdd, nodeSub, nodeMul, nodeDiv:
		if err := n.left.eval(s); err != nil {
			return err
		}
		if err := n.right.eval(s); err != nil {
			return err
		}
		switch n.kind {
		case nodeAdd:
			s.combine("+", Add)
		case nodeSub:
			s.combine("-", Sub)
		case nodeMul:
			s.combine("*", Mul)
		case nodeDiv:
			s.combine("/", Div)
		}
	default:
		panic("liniarote: invalid AST node " + n.kind.String())
	}
	return nil
}

// NameError is an error from a lookup for a constant that is not bound in
// the session and that its resolver could not supply.
type NameError struct {
	// Name is the name that was missing.
	Name string
	// Err is the error from the resolver, if there was one.
	Err error
}

func (err *NameError) Error() string {
	if err.Err == nil {
		return "undefined constant: " + strconv.Quote(err.Name)
	}
	return "resolving " + strconv.Quote(err.Name) + ": " + err.Err.Error()
}

func (err *NameError) Unwrap() error {
	return err.Err
}
