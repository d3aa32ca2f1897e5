package parser

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/normalize"
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// Grammar is one surface syntax. Parse reports matched=false when the input
// is not written in this syntax, so the next grammar can try it.
type Grammar struct {
	Name  string
	Parse func(s string) (instrs []types.Instruction, matched bool, err error)
}

// Parser tries its grammars in order.
type Parser struct {
	grammars []Grammar
}

// New returns a parser with the built-in grammars in priority order.
func New() *Parser {
	return &Parser{
		grammars: []Grammar{
			{Name: "dash", Parse: parseDash},
			{Name: "slash", Parse: parseSlash},
			{Name: "drive", Parse: parseDrive},
			{Name: "words", Parse: parseWords},
			{Name: "code", Parse: parseCode},
		},
	}
}

var defaultParser = New()

// Parse parses s with the default parser.
func Parse(s string) ([]types.Instruction, error) {
	return defaultParser.Parse(s)
}

// Grammars returns the grammar names in priority order.
func (p *Parser) Grammars() []string {
	names := make([]string, len(p.grammars))
	for i, g := range p.grammars {
		names[i] = g.Name
	}
	return names
}

// Parse converts s into instructions. It never returns an empty list
// without an error.
func (p *Parser) Parse(s string) ([]types.Instruction, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, errors.NewParseError(s, "empty rule string")
	}

	for _, g := range p.grammars {
		instrs, matched, err := g.Parse(s)
		if !matched {
			continue
		}
		if err != nil {
			return nil, err
		}
		if len(instrs) == 0 {
			return nil, errors.NewParseError(s, "no rules found")
		}
		return instrs, nil
	}

	return nil, errors.NewParseError(s, "not a rule, a rule chain or a rule with arguments")
}

// parseDash handles "-code" and "-code args...".
func parseDash(s string) ([]types.Instruction, bool, error) {
	if !strings.HasPrefix(s, "-") {
		return nil, false, nil
	}
	rest := s[1:]
	if strings.TrimSpace(rest) == "" {
		return nil, true, errors.NewParseError(s, "missing rule after '-'")
	}
	if strings.TrimLeftFunc(rest, unicode.IsSpace) != rest {
		return nil, true, errors.NewParseError(s, "rule must follow '-' directly")
	}
	if hasSpace(rest) {
		instrs, _, err := parseWords(rest)
		return instrs, true, err
	}
	instr, err := codeInstruction(s, rest)
	if err != nil {
		return nil, true, err
	}
	return []types.Instruction{instr}, true, nil
}

// parseSlash handles slash chains. Chains carrying quotes or spaces go
// through the argument-aware splitter; bare chains are split on '/'.
func parseSlash(s string) ([]types.Instruction, bool, error) {
	if !strings.HasPrefix(s, "/") {
		return nil, false, nil
	}
	if strings.ContainsAny(s, `'"`) || hasSpace(s) {
		instrs, err := splitWithArgs(s)
		return instrs, true, err
	}

	var instrs []types.Instruction
	for _, seg := range strings.Split(s, "/") {
		if seg == "" {
			continue
		}
		instr, err := codeInstruction(s, seg)
		if err != nil {
			return nil, true, err
		}
		instrs = append(instrs, instr)
	}
	return instrs, true, nil
}

// splitWithArgs scans slash/space separated tokens. Quoted tokens and
// tokens without letters are arguments of the rule before them.
func splitWithArgs(s string) ([]types.Instruction, error) {
	tokens, err := tokenize(s, true)
	if err != nil {
		return nil, err
	}

	var (
		instrs []types.Instruction
		code   string
		args   []string
	)
	emit := func() {
		if code != "" {
			instrs = append(instrs, types.NewInstruction(code, args...))
		}
		code, args = "", nil
	}

	for _, tok := range tokens {
		if tok.quoted || !hasLetter(tok.value) {
			if code == "" {
				return nil, errors.NewParseError(s, "argument '"+tok.value+"' has no rule before it")
			}
			args = append(args, tok.value)
			continue
		}
		if !types.IsValidCode(tok.value) {
			return nil, errors.NewParseError(s, "invalid rule code '"+tok.value+"'")
		}
		emit()
		code = tok.value
	}
	emit()
	return instrs, nil
}

// parseDrive recovers a chain from a Git Bash expanded path. Any other
// drive-letter path is opaque.
func parseDrive(s string) ([]types.Instruction, bool, error) {
	if !normalize.IsDrivePath(s) {
		return nil, false, nil
	}
	chain, ok := normalize.ExtractGitBash(s)
	if !ok {
		return nil, true, errors.NewParseError(s, "looks like a file path, the rule cannot be recovered")
	}
	instrs, _, err := parseSlash(chain)
	return instrs, true, err
}

// parseWords handles "code arg1 arg2": the first token is the rule, the
// rest are its arguments. Quotes group words and are stripped.
func parseWords(s string) ([]types.Instruction, bool, error) {
	if !hasSpace(s) {
		return nil, false, nil
	}
	tokens, err := tokenize(s, false)
	if err != nil {
		return nil, true, err
	}
	if len(tokens) == 0 {
		return nil, true, nil
	}
	if tokens[0].quoted {
		return nil, true, errors.NewParseError(s, "rule code cannot be quoted")
	}
	instr, err := codeInstruction(s, tokens[0].value)
	if err != nil {
		return nil, true, err
	}
	for _, tok := range tokens[1:] {
		instr.Args = append(instr.Args, tok.value)
	}
	return []types.Instruction{instr}, true, nil
}

func parseCode(s string) ([]types.Instruction, bool, error) {
	if !types.IsValidCode(s) {
		return nil, false, nil
	}
	return []types.Instruction{types.NewInstruction(s)}, true, nil
}

func codeInstruction(input, code string) (types.Instruction, error) {
	if !types.IsValidCode(code) {
		return types.Instruction{}, errors.NewParseError(input, "invalid rule code '"+code+"'")
	}
	return types.NewInstruction(code), nil
}
