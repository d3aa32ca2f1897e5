package ui

import (
	"encoding/json"
	"io"

	"github.com/arthur-debert/ruleflow/pkg/errors"
)

// JSONRenderer provides JSON output for machine consumption
type JSONRenderer struct {
	encoder *json.Encoder
}

// NewJSONRenderer creates a JSON renderer writing to w
func NewJSONRenderer(w io.Writer) *JSONRenderer {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return &JSONRenderer{encoder: encoder}
}

func (r *JSONRenderer) RenderRules(listing RuleListing) error {
	return r.encoder.Encode(listing)
}

func (r *JSONRenderer) RenderTrace(trace TraceView) error {
	return r.encoder.Encode(trace)
}

func (r *JSONRenderer) RenderError(err error) error {
	return r.encoder.Encode(map[string]interface{}{
		"error":   err.Error(),
		"code":    errors.GetErrorCode(err),
		"details": errors.GetErrorDetails(err),
	})
}
