package config

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
	"github.com/pelletier/go-toml/v2"
)

// EnvPrefix prefixes every environment variable read by Load.
const EnvPrefix = "RIGEDIT_"

// Options are the user-settable rigedit options.
type Options struct {
	// IndexBase is the number shown for the first item of a list, 0 or 1.
	IndexBase int `toml:"index_base" env:"INDEX_BASE"`

	// LogLevel is one of debug, info, warn and error.
	LogLevel string `toml:"log_level" env:"LOG_LEVEL"`

	// HistoryCapacity is the number of checkpoints kept for undo.
	HistoryCapacity int `toml:"history_capacity" env:"HISTORY_CAPACITY"`

	// Metrics enables per-action dispatch statistics.
	Metrics bool `toml:"metrics" env:"METRICS"`

	// RecoverFromPanic turns a panicking mutation into an error result.
	RecoverFromPanic bool `toml:"recover_from_panic" env:"RECOVER_FROM_PANIC"`

	// Suggest attaches a "did you mean" action to unrecognized results.
	Suggest bool `toml:"suggest" env:"SUGGEST"`

	// Keymap is the path of a YAML or JSON key-binding file. Empty means
	// the built-in bindings.
	Keymap string `toml:"keymap" env:"KEYMAP"`
}

// Default returns the built-in options.
func Default() Options {
	return Options{
		IndexBase:        0,
		LogLevel:         "info",
		HistoryCapacity:  1000,
		Metrics:          false,
		RecoverFromPanic: true,
		Suggest:          true,
	}
}

// Load builds options from the defaults, the TOML file at path and the
// RIGEDIT_ environment variables, then validates them. An empty path or
// a missing file leaves the defaults in place.
func Load(path string) (Options, error) {
	opts := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case err == nil:
			if err := Decode(path, data, &opts); err != nil {
				return Options{}, err
			}
		case os.IsNotExist(err):
		default:
			return Options{}, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	if err := env.ParseWithOptions(&opts, env.Options{Prefix: EnvPrefix}); err != nil {
		return Options{}, fmt.Errorf("parse env: %w", err)
	}

	if path != "" && opts.Keymap != "" && !filepath.IsAbs(opts.Keymap) {
		opts.Keymap = filepath.Join(filepath.Dir(path), opts.Keymap)
	}

	if err := opts.Validate(); err != nil {
		return Options{}, err
	}
	return opts, nil
}

// Decode overlays the TOML document data onto opts. Unknown keys are
// rejected. source names the document in errors.
func Decode(source string, data []byte, opts *Options) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(opts); err != nil {
		pe := &ParseError{Path: source, Message: err.Error(), Err: err}

		var derr *toml.DecodeError
		if errors.As(err, &derr) {
			pe.Line, pe.Column = derr.Position()
		}
		var serr *toml.StrictMissingError
		if errors.As(err, &serr) {
			pe.Message = serr.String()
		}
		return pe
	}
	return nil
}

// Validate checks every option and joins the failures.
func (o Options) Validate() error {
	var errs []error
	if o.IndexBase != 0 && o.IndexBase != 1 {
		errs = append(errs, &ValidationError{Option: "index_base", Message: "must be 0 or 1", Value: o.IndexBase})
	}
	switch o.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, &ValidationError{Option: "log_level", Message: "must be debug, info, warn or error", Value: o.LogLevel})
	}
	if o.HistoryCapacity < 1 {
		errs = append(errs, &ValidationError{Option: "history_capacity", Message: "must be positive", Value: o.HistoryCapacity})
	}
	return errors.Join(errs...)
}
