package core

import (
	"github.com/arthur-debert/ruleflow/pkg/config"
	"github.com/arthur-debert/ruleflow/pkg/logging"
	"github.com/arthur-debert/ruleflow/pkg/normalize"
	"github.com/arthur-debert/ruleflow/pkg/parser"
	"github.com/arthur-debert/ruleflow/pkg/pipeline"
	"github.com/arthur-debert/ruleflow/pkg/registry"
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// Engine runs rule strings against text. It is safe for concurrent use.
type Engine struct {
	registry *registry.Registry
	parser   *parser.Parser
	pipeline *pipeline.Pipeline
}

// NewEngine builds an engine over a frozen registry
func NewEngine(reg *registry.Registry) *Engine {
	return &Engine{
		registry: reg,
		parser:   parser.New(),
		pipeline: pipeline.New(reg),
	}
}

// NewDefaultEngine bootstraps the built-in providers for cfg
func NewDefaultEngine(cfg *config.Config) (*Engine, error) {
	reg, err := NewRegistry(DefaultProviders(cfg)...)
	if err != nil {
		return nil, err
	}
	return NewEngine(reg), nil
}

// Registry returns the engine's registry
func (e *Engine) Registry() *registry.Registry {
	return e.registry
}

// Parse normalizes and parses raw without running it
func (e *Engine) Parse(raw string) ([]types.Instruction, error) {
	return e.parser.Parse(normalize.Normalize(raw))
}

// Apply parses raw and returns only the final text, without a trace. On
// failure the text is the output of the last successful step.
func (e *Engine) Apply(raw, input string) (string, error) {
	instrs, err := e.Parse(raw)
	if err != nil {
		return input, err
	}
	return e.pipeline.Execute(input, instrs)
}

// Transform parses raw and runs it over input. A parse failure returns an
// error and no result. Execution failures are reported inside the result,
// which carries the partial output and trace.
func (e *Engine) Transform(raw, input string) (*types.PipelineResult, error) {
	logger := logging.GetLogger("core.engine")
	done := logging.LogOperationStart(logger, "transform")
	defer done()

	normalized := normalize.Normalize(raw)
	if normalized != raw {
		logger.Debug().Str("raw", raw).Str("normalized", normalized).Msg("Normalized rule string")
	}

	instrs, err := e.parser.Parse(normalized)
	if err != nil {
		logger.Debug().Err(err).Msg("Parse failed")
		return nil, err
	}
	logger.Debug().Strs("codes", types.Codes(instrs)).Msg("Parsed instructions")

	result := e.pipeline.Run(input, instrs)
	logger.Debug().
		Bools("outcomes", result.Outcomes()).
		Bool("succeeded", result.Succeeded()).
		Msg("Pipeline finished")
	return result, nil
}
