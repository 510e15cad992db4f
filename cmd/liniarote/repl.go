package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/peterh/liner"

	"github.com/zephyrtronium/liniarote"
)

// spacer indents everything the calculator prints in response to input.
const spacer = "    "

const (
	helpReturn  = "('Help' contents displayed above. Returning to command prompt.)"
	badInput    = "A poorly formulated input statement has been detected."
	badAttempt  = "A (possibly misguided) attempt will be made to interpret it."
	quitPrompt  = "Quit Liniarote? Please press 'y' to exit this program. "
	farewell    = "Thank you for using Liniarote!"
	valuePrompt = "Please enter the desired value for %s: "
)

// display selects extra output for each evaluation.
type display struct {
	tokens bool
	echo   bool
}

// evaluate evaluates one line of input with sess and writes the result to w.
func evaluate(w io.Writer, sess *liniarote.Session, line string, show display) {
	if show.tokens {
		toks, _ := liniarote.Tokenize(strings.NewReader(line))
		for _, tok := range toks {
			fmt.Fprintf(w, "%stoken type: %v, token value: %q\n", spacer, tok.Kind, tok.Text)
		}
	}
	if show.echo {
		if e, _ := liniarote.Parse(strings.NewReader(line)); e != nil {
			fmt.Fprintf(w, "%s%v\n", spacer, e)
		}
	}
	v, err := sess.EvalString(line)
	var diags liniarote.Diagnostics
	switch {
	case errors.Is(err, liniarote.ErrHelp):
		fmt.Fprintln(w, spacer+helpReturn)
		return
	case errors.As(err, &diags):
		// The session has written the details.
		fmt.Fprintln(w, spacer+badInput)
		fmt.Fprintln(w, spacer+badAttempt)
	case err != nil:
		fmt.Fprintln(w, spacer+err.Error())
		return
	}
	if v.Kind() == liniarote.KindNone {
		return
	}
	fmt.Fprintln(w, spacer+"output =  "+v.String())
}

// runREPL reads and evaluates lines until the user quits.
func runREPL(cfg *config, show display, opts []liniarote.Option) error {
	fmt.Print(liniarote.IntroText + "\n")

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	hist := cfg.historyPath()
	if hist != "" {
		if f, err := os.Open(hist); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
	}

	r := repl{ln: ln, out: os.Stdout}
	opts = append(opts, liniarote.WithResolver(liniarote.ResolverFunc(r.resolve)))
	sess := liniarote.NewSession(opts...)
	for {
		line, err := ln.Prompt(cfg.Prompt)
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			if r.confirmQuit() {
				return r.bye(hist)
			}
			continue
		case errors.Is(err, io.EOF):
			fmt.Println()
			return r.bye(hist)
		case err != nil:
			return err
		}
		if strings.TrimSpace(line) == "" {
			continue
		}
		ln.AppendHistory(line)
		evaluate(os.Stdout, sess, line, show)
	}
}

type repl struct {
	ln  *liner.State
	out io.Writer
}

// resolve asks the user for the value of a constant until they give a
// number or give up.
func (r *repl) resolve(name string) (float64, error) {
	if s := liniarote.Suggest(name); s != "" {
		fmt.Fprintf(r.out, "%s(%s is not a reserved name. Did you mean %s?)\n", spacer, name, s)
	}
	for {
		ans, err := r.ln.Prompt(fmt.Sprintf(valuePrompt, name))
		if err != nil {
			return 0, err
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(ans), 64)
		if err == nil {
			return x, nil
		}
		fmt.Fprintf(r.out, "%s%q is not a number.\n", spacer, ans)
	}
}

// confirmQuit asks whether the user wants to quit after pressing Ctrl+C.
func (r *repl) confirmQuit() bool {
	ans, err := r.ln.Prompt(quitPrompt)
	if err != nil {
		// A second Ctrl+C or EOF is as good as a yes.
		return true
	}
	return strings.EqualFold(strings.TrimSpace(ans), "y")
}

// bye saves history and says goodbye.
func (r *repl) bye(hist string) error {
	fmt.Fprintln(r.out, farewell)
	if hist == "" {
		return nil
	}
	f, err := os.Create(hist)
	if err != nil {
		return err
	}
	if _, err := r.ln.WriteHistory(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// indenter prefixes each line written through it with spacer.
type indenter struct {
	w   io.Writer
	mid bool
}

func (ind *indenter) Write(p []byte) (int, error) {
	for _, line := range bytes.SplitAfter(p, []byte{'\n'}) {
		if len(line) == 0 {
			continue
		}
		if !ind.mid && line[0] != '\n' {
			if _, err := io.WriteString(ind.w, spacer); err != nil {
				return 0, err
			}
		}
		if _, err := ind.w.Write(line); err != nil {
			return 0, err
		}
		ind.mid = line[len(line)-1] != '\n'
	}
	return len(p), nil
}
