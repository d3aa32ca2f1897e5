package types

import (
	"regexp"
	"strings"
)

// CodePattern is the shape every rule code must have.
var CodePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// IsValidCode reports whether s can be used as a rule code.
func IsValidCode(s string) bool {
	return CodePattern.MatchString(s)
}

// Instruction is a parsed (code, args) pair ready for execution.
type Instruction struct {
	Code string
	Args []string
}

// NewInstruction builds an instruction owning a copy of args.
// A nil or empty args slice yields an empty, non-nil slice.
func NewInstruction(code string, args ...string) Instruction {
	owned := make([]string, len(args))
	copy(owned, args)
	return Instruction{Code: code, Args: owned}
}

// ArgsCopy returns a copy of the instruction's arguments so handlers can't
// alter the parsed chain.
func (i Instruction) ArgsCopy() []string {
	out := make([]string, len(i.Args))
	copy(out, i.Args)
	return out
}

// String renders the instruction in slash-chain form, quoting arguments.
// The result parses back to the same instruction.
func (i Instruction) String() string {
	var b strings.Builder
	b.WriteString("/")
	b.WriteString(i.Code)
	for _, a := range i.Args {
		b.WriteString(" ")
		b.WriteString(QuoteArg(a))
	}
	return b.String()
}

// QuoteArg quotes s as a single rule argument. Rule strings have no escape
// character, so a single quote inside s is written as "'" between
// single-quoted runs; adjacent quoted runs read back as one token.
func QuoteArg(s string) string {
	if !strings.Contains(s, "'") {
		return "'" + s + "'"
	}
	if !strings.Contains(s, `"`) {
		return `"` + s + `"`
	}

	var b strings.Builder
	for i, part := range strings.Split(s, "'") {
		if i > 0 {
			b.WriteString(`"'"`)
		}
		if part != "" {
			b.WriteString("'" + part + "'")
		}
	}
	return b.String()
}

// Codes returns the codes of a chain in order.
func Codes(instrs []Instruction) []string {
	codes := make([]string, len(instrs))
	for i, in := range instrs {
		codes[i] = in.Code
	}
	return codes
}
