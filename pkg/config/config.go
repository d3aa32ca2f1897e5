package config

import (
	"slices"

	"github.com/pelletier/go-toml/v2"

	"github.com/arthur-debert/ruleflow/pkg/errors"
)

// Input sources
const (
	InputAuto      = "auto"
	InputStdin     = "stdin"
	InputClipboard = "clipboard"
)

// Output sinks
const (
	OutputStdout    = "stdout"
	OutputClipboard = "clipboard"
)

// Listing formats. auto picks term on a color terminal and text otherwise.
const (
	FormatAuto = "auto"
	FormatTerm = "term"
	FormatText = "text"
	FormatJSON = "json"
)

// Config is the effective configuration
type Config struct {
	IO     IOConfig     `koanf:"io" toml:"io"`
	Output OutputConfig `koanf:"output" toml:"output"`
	Crypt  CryptConfig  `koanf:"crypt" toml:"crypt"`
}

// IOConfig selects where text comes from and goes to
type IOConfig struct {
	Input  string `koanf:"input" toml:"input"`
	Output string `koanf:"output" toml:"output"`
}

// OutputConfig controls result presentation
type OutputConfig struct {
	Trace  bool   `koanf:"trace" toml:"trace"`
	Format string `koanf:"format" toml:"format"`
}

// CryptConfig controls the crypt provider
type CryptConfig struct {
	Enabled bool   `koanf:"enabled" toml:"enabled"`
	KeyDir  string `koanf:"key_dir" toml:"key_dir"`
}

// Validate rejects values outside the known enumerations
func (c *Config) Validate() error {
	checks := []struct {
		key     string
		value   string
		allowed []string
	}{
		{"io.input", c.IO.Input, []string{InputAuto, InputStdin, InputClipboard}},
		{"io.output", c.IO.Output, []string{OutputStdout, OutputClipboard}},
		{"output.format", c.Output.Format, []string{FormatAuto, FormatTerm, FormatText, FormatJSON}},
	}
	for _, check := range checks {
		if !slices.Contains(check.allowed, check.value) {
			return errors.Newf(errors.ErrConfigParse, "invalid value %q for %s, expected one of %v", check.value, check.key, check.allowed).
				WithDetail("key", check.key)
		}
	}
	return nil
}

// Marshal renders the config as TOML
func (c *Config) Marshal() ([]byte, error) {
	out, err := toml.Marshal(c)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to encode configuration")
	}
	return out, nil
}
