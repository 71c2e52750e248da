// Package config loads the wordladder configuration file.
//
// Keys missing from the file keep their Default values; command-line flags
// are applied on top by the caller and the result is checked with Validate.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/wordladder/core"
)

// Modes of the command-line tool.
const (
	ModeFirst = "first"
	ModeAll   = "all"
)

// ErrInvalidConfig wraps every load or validation failure.
var ErrInvalidConfig = errors.New("config: invalid configuration")

var validate *validator.Validate

func init() {
	validate = validator.New()
}

// Config is the on-disk configuration.
type Config struct {
	Alphabet        string   `yaml:"alphabet" validate:"required"`
	LogLevel        string   `yaml:"log_level" validate:"oneof=debug info warn error"`
	Mode            string   `yaml:"mode" validate:"oneof=first all"`
	Limit           int      `yaml:"limit" validate:"min=0"`
	MaxLength       int      `yaml:"max_length" validate:"min=0"`
	Dictionaries    []string `yaml:"dictionaries" validate:"dive,required"`
	MetricsTextfile string   `yaml:"metrics_textfile"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Alphabet: core.DefaultAlphabet,
		LogLevel: "warn",
		Mode:     ModeFirst,
	}
}

// Load reads the YAML file at path over Default. Unknown keys are rejected.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	return Parse(data)
}

// Parse decodes YAML over Default and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// Validate checks every field against its constraints.
func (c Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, formatValidationError(err))
	}
	return nil
}

// Marshal renders c as YAML.
func (c Config) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(verrs))
	for _, e := range verrs {
		switch e.Tag() {
		case "required":
			msgs = append(msgs, fmt.Sprintf("%s is required", e.Namespace()))
		case "oneof":
			msgs = append(msgs, fmt.Sprintf("%s must be one of [%s], got %q", e.Field(), e.Param(), e.Value()))
		case "min":
			msgs = append(msgs, fmt.Sprintf("%s must be at least %s", e.Field(), e.Param()))
		default:
			msgs = append(msgs, fmt.Sprintf("%s failed %s", e.Field(), e.Tag()))
		}
	}

	return strings.Join(msgs, "; ")
}
