// Package ui renders rule listings, pipeline traces and errors in
// terminal, plain text or JSON form.
package ui

import (
	"io"

	"github.com/arthur-debert/ruleflow/pkg/errors"
)

// Renderer is the common interface for all output renderers
type Renderer interface {
	RenderRules(listing RuleListing) error
	RenderTrace(trace TraceView) error
	RenderError(err error) error
}

// NewRenderer creates a renderer for format, resolving FormatAuto against w
func NewRenderer(format Format, w io.Writer) (Renderer, error) {
	switch format.Resolve(w) {
	case FormatTerminal:
		return &TerminalRenderer{out: w}, nil
	case FormatText:
		return &TextRenderer{out: w}, nil
	case FormatJSON:
		return NewJSONRenderer(w), nil
	default:
		return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
	}
}
