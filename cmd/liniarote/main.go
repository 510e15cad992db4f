package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/zephyrtronium/liniarote"
)

func main() {
	log.SetFlags(0)
	var (
		inname, cfgname, histname string
		with                      [][2]string
		debug                     bool
		show                      display
	)
	addwith := func(s string) error {
		d := strings.SplitN(s, "=", 2)
		if len(d) != 2 {
			return fmt.Errorf(`constant definitions must be "name=value", not %q`, s)
		}
		with = append(with, [2]string{strings.TrimSpace(d[0]), strings.TrimSpace(d[1])})
		return nil
	}
	flag.StringVar(&inname, "in", "", "input file with one expression per line (- for stdin)")
	flag.StringVar(&cfgname, "config", "", "YAML config file")
	flag.StringVar(&histname, "history", "", "REPL history file (- to disable)")
	flag.Func("given", "name=value constant definition (any number of times)", addwith)
	flag.BoolVar(&debug, "debug", false, "log each evaluation step")
	flag.BoolVar(&show.tokens, "tokens", false, "print the tokens of each input")
	flag.BoolVar(&show.echo, "echo", false, "print parse trees")
	flag.Parse()

	cfg, err := loadConfig(cfgname)
	if err != nil {
		log.Fatal(err)
	}
	if debug {
		cfg.Debug = true
	}
	if histname != "" {
		cfg.History = histname
	}
	logger := newLogger(cfg.Debug)

	consts := make(map[string]float64, len(cfg.Constants)+len(with))
	for k, v := range cfg.Constants {
		consts[k] = v
	}
	for _, d := range with {
		nm, vl := d[0], d[1]
		if err := checkConstName(nm); err != nil {
			log.Fatal(err)
		}
		x, err := evalConst(vl, consts)
		if err != nil {
			log.Fatalf("setting %s: %v", nm, err)
		}
		consts[nm] = x
	}
	opts := []liniarote.Option{
		liniarote.SetConsts(consts),
		liniarote.Logger(logger),
		liniarote.DiagnosticsTo(&indenter{w: os.Stdout}),
	}

	if inname == "" && flag.NArg() == 0 {
		if err := runREPL(cfg, show, opts); err != nil {
			log.Fatal(err)
		}
		return
	}

	lines, err := inlines(inname)
	if err != nil {
		log.Fatal(err)
	}
	lines = append(lines, flag.Args()...)
	sess := liniarote.NewSession(opts...)
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		evaluate(os.Stdout, sess, line, show)
	}
}

// newLogger creates the logger for evaluation traces. Only warnings are
// logged unless debug is set.
func newLogger(debug bool) zerolog.Logger {
	level := zerolog.WarnLevel
	if debug {
		level = zerolog.DebugLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
}

// evalConst evaluates the value of a -given definition, which may use
// constants defined before it.
func evalConst(src string, consts map[string]float64) (float64, error) {
	v, err := liniarote.NewSession(liniarote.SetConsts(consts)).EvalString(src)
	if err != nil {
		return 0, err
	}
	if x, ok := v.Float(); ok {
		return x, nil
	}
	if re, tv, ok := v.Components(); ok && tv == liniarote.Null {
		if x, ok := re.Float(); ok {
			return x, nil
		}
	}
	return 0, fmt.Errorf("%s is not a real number", v)
}

// inlines reads the lines of the input file. An empty name gives no lines.
func inlines(inname string) ([]string, error) {
	var f *os.File
	switch inname {
	case "":
		return nil, nil
	case "-":
		f = os.Stdin
	default:
		in, err := os.Open(inname)
		if err != nil {
			return nil, err
		}
		defer in.Close()
		f = in
	}
	var lines []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines, sc.Err()
}
