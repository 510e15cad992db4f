package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/zephyrtronium/liniarote"
)

// defaultPrompt is the REPL prompt when the config does not set one.
const defaultPrompt = "<LINIAROTE:>  "

// historyFile is the name of the history file in the user's home directory.
const historyFile = ".liniarote_history"

// config is the contents of a liniarote config file.
type config struct {
	// Prompt is the REPL prompt.
	Prompt string `yaml:"prompt"`
	// History is the path of the REPL history file. "-" disables history.
	History string `yaml:"history"`
	// Debug enables debug logging of every evaluation step.
	Debug bool `yaml:"debug"`
	// Constants are bound before any input is evaluated.
	Constants map[string]float64 `yaml:"constants"`
}

// loadConfig reads the config file at name. An empty name gives the default
// config.
func loadConfig(name string) (*config, error) {
	if name == "" {
		return readConfig(nil)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	cfg, err := readConfig(f)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", name, err)
	}
	return cfg, nil
}

// readConfig decodes a config from r, which may be nil or empty.
func readConfig(r io.Reader) (*config, error) {
	var cfg config
	if r != nil {
		dec := yaml.NewDecoder(r)
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, err
		}
	}
	for name := range cfg.Constants {
		if err := checkConstName(name); err != nil {
			return nil, err
		}
	}
	if cfg.Prompt == "" {
		cfg.Prompt = defaultPrompt
	}
	return &cfg, nil
}

// checkConstName reports an error if name cannot be bound as a constant.
func checkConstName(name string) error {
	if _, ok := liniarote.Builtin(name); ok {
		return fmt.Errorf("cannot rebind built-in constant %s", name)
	}
	if liniarote.Reserved(name) {
		return fmt.Errorf("%s is reserved and cannot be a constant", name)
	}
	return nil
}

// historyPath returns the path of the history file, or the empty string if
// history is disabled.
func (cfg *config) historyPath() string {
	switch cfg.History {
	case "-":
		return ""
	case "":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, historyFile)
	default:
		return cfg.History
	}
}
