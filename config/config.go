// Package config loads editor settings from TOML or YAML files and the
// environment.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Format names a configuration file syntax.
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
)

// EnvPrefix prefixes every environment override, e.g. DTE_THEME.
const EnvPrefix = "DTE_"

var (
	ErrUnsupportedFormat = errors.New("unsupported config format")
	ErrInvalidConfig     = errors.New("invalid config")
)

// Config holds the settings the editor and its terminal front end read at
// start-up.
type Config struct {
	Language          string        // chroma lexer used to colour lines
	Theme             string        // chroma style name
	ShowLineNumbers   bool          // render a line number gutter
	CaseSensitive     bool          // default for :find
	MessageDuration   time.Duration // how long status messages stay visible
	LogFile           string        // empty disables logging
	MaxCommandHistory int           // command lines remembered in command mode
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{
		Language:          "plaintext",
		Theme:             "monokai",
		ShowLineNumbers:   true,
		MessageDuration:   3 * time.Second,
		MaxCommandHistory: 50,
	}
}

// fileConfig mirrors Config as it appears on disk. Unset keys keep their
// defaults.
type fileConfig struct {
	Language          *string `toml:"language" yaml:"language"`
	Theme             *string `toml:"theme" yaml:"theme"`
	ShowLineNumbers   *bool   `toml:"show_line_numbers" yaml:"show_line_numbers"`
	CaseSensitive     *bool   `toml:"case_sensitive" yaml:"case_sensitive"`
	MessageDuration   *string `toml:"message_duration" yaml:"message_duration"`
	LogFile           *string `toml:"log_file" yaml:"log_file"`
	MaxCommandHistory *int    `toml:"max_command_history" yaml:"max_command_history"`
}

// ParseError represents an error while parsing a configuration file.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("parse error in %s at line %d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error in %s: %s", e.Path, e.Message)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// FormatFor picks the format from a file extension.
func FormatFor(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnsupportedFormat, path)
}

// Load reads the configuration at path. A missing file is not an error and
// yields Default().
func Load(path string) (Config, error) {
	format, err := FormatFor(path)
	if err != nil {
		return Config{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Config{}, fmt.Errorf("reading config file %s: %w", path, err)
	}

	return parse(path, format, data)
}

// LoadFromReader reads configuration in the given format from r.
func LoadFromReader(r io.Reader, format Format) (Config, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Config{}, fmt.Errorf("reading config: %w", err)
	}
	return parse("<reader>", format, data)
}

func parse(source string, format Format, data []byte) (Config, error) {
	var fc fileConfig
	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &fc); err != nil {
			perr := &ParseError{Path: source, Message: err.Error(), Err: err}
			var decodeErr *toml.DecodeError
			if errors.As(err, &decodeErr) {
				perr.Line, _ = decodeErr.Position()
			}
			return Config{}, perr
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
			return Config{}, &ParseError{Path: source, Message: err.Error(), Err: err}
		}
	default:
		return Config{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	cfg := Default()
	if err := fc.apply(&cfg); err != nil {
		return Config{}, &ParseError{Path: source, Message: err.Error(), Err: err}
	}
	return cfg, nil
}

func (fc fileConfig) apply(cfg *Config) error {
	if fc.Language != nil {
		cfg.Language = *fc.Language
	}
	if fc.Theme != nil {
		cfg.Theme = *fc.Theme
	}
	if fc.ShowLineNumbers != nil {
		cfg.ShowLineNumbers = *fc.ShowLineNumbers
	}
	if fc.CaseSensitive != nil {
		cfg.CaseSensitive = *fc.CaseSensitive
	}
	if fc.MessageDuration != nil {
		d, err := time.ParseDuration(*fc.MessageDuration)
		if err != nil {
			return fmt.Errorf("message_duration: %w", err)
		}
		cfg.MessageDuration = d
	}
	if fc.LogFile != nil {
		cfg.LogFile = *fc.LogFile
	}
	if fc.MaxCommandHistory != nil {
		cfg.MaxCommandHistory = *fc.MaxCommandHistory
	}
	return nil
}

// ApplyEnv overrides settings from DTE_* variables found through lookup.
// Pass os.LookupEnv in production.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup(EnvPrefix + "LANGUAGE"); ok {
		c.Language = v
	}
	if v, ok := lookup(EnvPrefix + "THEME"); ok {
		c.Theme = v
	}
	if v, ok := lookup(EnvPrefix + "LOG_FILE"); ok {
		c.LogFile = v
	}
	if v, ok := lookup(EnvPrefix + "SHOW_LINE_NUMBERS"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sSHOW_LINE_NUMBERS: %w", EnvPrefix, err)
		}
		c.ShowLineNumbers = b
	}
	if v, ok := lookup(EnvPrefix + "CASE_SENSITIVE"); ok {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("%sCASE_SENSITIVE: %w", EnvPrefix, err)
		}
		c.CaseSensitive = b
	}
	if v, ok := lookup(EnvPrefix + "MESSAGE_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("%sMESSAGE_DURATION: %w", EnvPrefix, err)
		}
		c.MessageDuration = d
	}
	return nil
}

// Validate rejects settings the editor cannot run with.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Language) == "" {
		errs = append(errs, fmt.Errorf("%w: language must not be empty", ErrInvalidConfig))
	}
	if c.MessageDuration < 0 {
		errs = append(errs, fmt.Errorf("%w: message_duration must not be negative", ErrInvalidConfig))
	}
	if c.MaxCommandHistory < 0 {
		errs = append(errs, fmt.Errorf("%w: max_command_history must not be negative", ErrInvalidConfig))
	}
	return errors.Join(errs...)
}
