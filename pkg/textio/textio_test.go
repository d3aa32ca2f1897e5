// Test Type: Unit Test
// Description: Tests for the textio package - source selection and stream handling

package textio_test

import (
	"bytes"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/textio"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, stderrors.New("broken pipe") }

func TestSelectSource(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		piped    bool
		expected string
	}{
		{"auto_piped_reads_stdin", "auto", true, "stdin"},
		{"auto_terminal_reads_clipboard", "auto", false, "clipboard"},
		{"empty_means_auto", "", true, "stdin"},
		{"explicit_stdin", "stdin", false, "stdin"},
		{"explicit_clipboard", "clipboard", true, "clipboard"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src, err := textio.SelectSource(tt.input, strings.NewReader(""), tt.piped)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, src.Name())
		})
	}
}

func TestSelectSource_Unknown(t *testing.T) {
	_, err := textio.SelectSource("fax", strings.NewReader(""), true)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestSelectSink(t *testing.T) {
	var buf bytes.Buffer

	sink, err := textio.SelectSink("stdout", &buf)
	require.NoError(t, err)
	require.NoError(t, sink.Write("abc"))
	assert.Equal(t, "abc\n", buf.String())

	sink, err = textio.SelectSink("clipboard", &buf)
	require.NoError(t, err)
	assert.Equal(t, "clipboard", sink.Name())

	_, err = textio.SelectSink("printer", &buf)
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
}

func TestReaderSource(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"hello\n", "hello"},
		{"hello\r\n", "hello"},
		{"a\nb\n\n", "a\nb\n"},
		{"", ""},
	}
	for _, tt := range tests {
		got, err := textio.ReaderSource{Label: "stdin", R: strings.NewReader(tt.in)}.Read()
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}
}

func TestReaderSource_Error(t *testing.T) {
	_, err := textio.ReaderSource{Label: "stdin", R: failingReader{}}.Read()
	assert.True(t, errors.IsErrorCode(err, errors.ErrIORead))
}

func TestLiteral(t *testing.T) {
	got, err := textio.Literal("  raw  ").Read()
	require.NoError(t, err)
	assert.Equal(t, "  raw  ", got)
}
