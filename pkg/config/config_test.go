package config

import (
	"os"
	"path/filepath"
	"testing"

	gotoml "github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arthur-debert/ruleflow/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(LoadOptions{Path: writeConfig(t, "")})
	require.NoError(t, err)

	assert.Equal(t, InputAuto, cfg.IO.Input)
	assert.Equal(t, OutputStdout, cfg.IO.Output)
	assert.False(t, cfg.Output.Trace)
	assert.Equal(t, FormatAuto, cfg.Output.Format)
	assert.True(t, cfg.Crypt.Enabled)
	assert.Empty(t, cfg.Crypt.KeyDir)
}

func TestLoad_Precedence(t *testing.T) {
	path := writeConfig(t, `
[io]
input = "stdin"
output = "clipboard"

[crypt]
enabled = false
key_dir = "/from/file"
`)

	t.Run("file_over_defaults", func(t *testing.T) {
		cfg, err := Load(LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, InputStdin, cfg.IO.Input)
		assert.Equal(t, OutputClipboard, cfg.IO.Output)
		assert.False(t, cfg.Crypt.Enabled)
		assert.Equal(t, "/from/file", cfg.Crypt.KeyDir)
	})

	t.Run("env_over_file", func(t *testing.T) {
		t.Setenv("RULEFLOW_IO_INPUT", "clipboard")
		t.Setenv("RULEFLOW_CRYPT_KEY_DIR", "/from/env")
		t.Setenv("RULEFLOW_CRYPT_ENABLED", "true")

		cfg, err := Load(LoadOptions{Path: path})
		require.NoError(t, err)
		assert.Equal(t, InputClipboard, cfg.IO.Input)
		assert.Equal(t, "/from/env", cfg.Crypt.KeyDir)
		assert.True(t, cfg.Crypt.Enabled)
		assert.Equal(t, OutputClipboard, cfg.IO.Output, "untouched keys keep the file value")
	})

	t.Run("overrides_over_env", func(t *testing.T) {
		t.Setenv("RULEFLOW_IO_INPUT", "clipboard")

		cfg, err := Load(LoadOptions{
			Path:      path,
			Overrides: map[string]interface{}{"io.input": "stdin", "output.trace": true},
		})
		require.NoError(t, err)
		assert.Equal(t, InputStdin, cfg.IO.Input)
		assert.True(t, cfg.Output.Trace)
	})
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing_explicit_file", func(t *testing.T) {
		_, err := Load(LoadOptions{Path: filepath.Join(t.TempDir(), "nope.toml")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigLoad))
	})

	t.Run("malformed_file", func(t *testing.T) {
		_, err := Load(LoadOptions{Path: writeConfig(t, "[io\ninput=")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
	})

	t.Run("invalid_enum", func(t *testing.T) {
		_, err := Load(LoadOptions{Path: writeConfig(t, "[io]\ninput = \"carrier-pigeon\"\n")})
		assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse))
		assert.Contains(t, err.Error(), "io.input")
	})
}

func TestEnvKey(t *testing.T) {
	assert.Equal(t, "io.input", envKey("RULEFLOW_IO_INPUT"))
	assert.Equal(t, "crypt.key_dir", envKey("RULEFLOW_CRYPT_KEY_DIR"))
}

func TestMarshal_RoundTrips(t *testing.T) {
	cfg, err := Load(LoadOptions{Path: writeConfig(t, "")})
	require.NoError(t, err)

	out, err := cfg.Marshal()
	require.NoError(t, err)
	assert.Contains(t, string(out), "[io]")
	assert.Contains(t, string(out), "key_dir")

	var back Config
	require.NoError(t, gotoml.Unmarshal(out, &back))
	assert.Equal(t, *cfg, back)
}

func TestDefaultPath(t *testing.T) {
	assert.Equal(t, "config.toml", filepath.Base(DefaultPath()))
	assert.Equal(t, "ruleflow", filepath.Base(filepath.Dir(DefaultPath())))
}
