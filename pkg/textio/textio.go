// Package textio moves text between ruleflow and the outside world:
// stdin, the system clipboard, literals and stdout.
package textio

import (
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/mattn/go-isatty"

	"github.com/arthur-debert/ruleflow/pkg/config"
	"github.com/arthur-debert/ruleflow/pkg/errors"
)

// Source supplies the text to transform
type Source interface {
	Name() string
	Read() (string, error)
}

// Sink receives the transformed text
type Sink interface {
	Name() string
	Write(text string) error
}

// Literal is a fixed string source, used for --text and tests
type Literal string

func (l Literal) Name() string { return "literal" }

func (l Literal) Read() (string, error) { return string(l), nil }

// ReaderSource reads everything from R. A single trailing newline is
// dropped so piped `echo` output behaves like the typed text.
type ReaderSource struct {
	Label string
	R     io.Reader
}

func (r ReaderSource) Name() string { return r.Label }

func (r ReaderSource) Read() (string, error) {
	data, err := io.ReadAll(r.R)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrIORead, "failed to read %s", r.Label)
	}
	s := strings.TrimSuffix(string(data), "\n")
	return strings.TrimSuffix(s, "\r"), nil
}

// Clipboard reads from and writes to the system clipboard
type Clipboard struct{}

func (Clipboard) Name() string { return config.InputClipboard }

func (Clipboard) Read() (string, error) {
	if clipboard.Unsupported {
		return "", errors.New(errors.ErrIORead, "no clipboard utility available on this system")
	}
	s, err := clipboard.ReadAll()
	if err != nil {
		return "", errors.Wrap(err, errors.ErrIORead, "failed to read clipboard")
	}
	return s, nil
}

func (Clipboard) Write(text string) error {
	if clipboard.Unsupported {
		return errors.New(errors.ErrIOWrite, "no clipboard utility available on this system")
	}
	if err := clipboard.WriteAll(text); err != nil {
		return errors.Wrap(err, errors.ErrIOWrite, "failed to write clipboard")
	}
	return nil
}

// WriterSink writes the text followed by a newline
type WriterSink struct {
	Label string
	W     io.Writer
}

func (w WriterSink) Name() string { return w.Label }

func (w WriterSink) Write(text string) error {
	if _, err := io.WriteString(w.W, text+"\n"); err != nil {
		return errors.Wrapf(err, errors.ErrIOWrite, "failed to write %s", w.Label)
	}
	return nil
}

// IsPiped reports whether f is a pipe or file rather than a terminal
func IsPiped(f *os.File) bool {
	fd := f.Fd()
	return !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd)
}

// SelectSource resolves the configured input. auto means stdin when it is
// piped and the clipboard otherwise.
func SelectSource(input string, stdin io.Reader, piped bool) (Source, error) {
	switch input {
	case config.InputStdin:
		return ReaderSource{Label: config.InputStdin, R: stdin}, nil
	case config.InputClipboard:
		return Clipboard{}, nil
	case config.InputAuto, "":
		if piped {
			return ReaderSource{Label: config.InputStdin, R: stdin}, nil
		}
		return Clipboard{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown input source %q", input)
	}
}

// SelectSink resolves the configured output
func SelectSink(output string, stdout io.Writer) (Sink, error) {
	switch output {
	case config.OutputStdout, "":
		return WriterSink{Label: config.OutputStdout, W: stdout}, nil
	case config.OutputClipboard:
		return Clipboard{}, nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown output sink %q", output)
	}
}
