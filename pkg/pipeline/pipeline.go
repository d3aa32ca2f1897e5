package pipeline

import (
	"fmt"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// Lookup resolves a rule code. *registry.Registry satisfies it.
type Lookup interface {
	Lookup(code string) (types.RuleDescriptor, error)
}

// Pipeline runs instruction chains against a fixed set of rules
type Pipeline struct {
	rules Lookup
}

// New creates a pipeline over rules
func New(rules Lookup) *Pipeline {
	return &Pipeline{rules: rules}
}

// Run executes instrs in order against input and records every attempted
// step. The returned result is never nil.
func (p *Pipeline) Run(input string, instrs []types.Instruction) *types.PipelineResult {
	result := &types.PipelineResult{
		Output: input,
		Trace:  make([]types.StepResult, 0, len(instrs)),
	}

	current := input
	for i, in := range instrs {
		out, err := p.step(i, in, current)
		if err != nil {
			result.Trace = append(result.Trace, types.StepResult{
				Code:   in.Code,
				Output: current,
				Err:    err,
			})
			break
		}
		current = out
		result.Trace = append(result.Trace, types.StepResult{
			Code:      in.Code,
			Output:    current,
			Succeeded: true,
		})
	}

	result.Output = current
	return result
}

// Execute returns only the final text and the error of the failing step.
// On failure the text is the output of the last successful step. A single
// instruction skips trace bookkeeping.
func (p *Pipeline) Execute(input string, instrs []types.Instruction) (string, error) {
	if len(instrs) == 1 {
		out, err := p.step(0, instrs[0], input)
		if err != nil {
			return input, err
		}
		return out, nil
	}

	result := p.Run(input, instrs)
	return result.Output, result.Err()
}

// step resolves, validates and applies one instruction.
func (p *Pipeline) step(pos int, in types.Instruction, text string) (string, error) {
	desc, err := p.rules.Lookup(in.Code)
	if err != nil {
		return "", err
	}
	if !desc.Arity.Accepts(len(in.Args)) {
		return "", errors.NewArityError(in.Code, desc.Arity.Min, desc.Arity.Max, len(in.Args))
	}
	return apply(pos, desc, in, text)
}

// apply invokes the handler, turning both returned errors and panics into
// transformation errors.
func apply(pos int, desc types.RuleDescriptor, in types.Instruction, text string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			out = ""
			err = errors.NewTransformationError(fmt.Errorf("panic: %v", r), in.Code, pos, len(text))
		}
	}()

	out, err = desc.Handler.Apply(text, in.ArgsCopy())
	if err != nil {
		return "", errors.NewTransformationError(err, in.Code, pos, len(text))
	}
	return out, nil
}
