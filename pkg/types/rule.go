package types

import "fmt"

// Category groups rules for listing and help output
type Category string

const (
	CategoryCase       Category = "case"
	CategoryWhitespace Category = "whitespace"
	CategoryLines      Category = "lines"
	CategoryWidth      Category = "width"
	CategoryUnicode    Category = "unicode"
	CategoryEncoding   Category = "encoding"
	CategoryFormat     Category = "format"
	CategoryHash       Category = "hash"
	CategoryCrypto     Category = "crypto"
)

// Handler is a single text transformation capability.
type Handler interface {
	Apply(text string, args []string) (string, error)
}

// HandlerFunc adapts an ordinary function to the Handler interface
type HandlerFunc func(text string, args []string) (string, error)

// Apply calls f(text, args)
func (f HandlerFunc) Apply(text string, args []string) (string, error) {
	return f(text, args)
}

// Arity bounds the number of arguments a rule accepts. Max < 0 means unbounded.
type Arity struct {
	Min int
	Max int
}

// NoArgs is the arity of rules that take no arguments
var NoArgs = Arity{Min: 0, Max: 0}

// Accepts reports whether n arguments satisfy the arity
func (a Arity) Accepts(n int) bool {
	if n < a.Min {
		return false
	}
	return a.Max < 0 || n <= a.Max
}

// Valid reports whether the bounds are coherent
func (a Arity) Valid() bool {
	return a.Min >= 0 && (a.Max < 0 || a.Max >= a.Min)
}

func (a Arity) String() string {
	switch {
	case a.Max < 0:
		return fmt.Sprintf("%d+", a.Min)
	case a.Min == a.Max:
		return fmt.Sprintf("%d", a.Min)
	default:
		return fmt.Sprintf("%d-%d", a.Min, a.Max)
	}
}

// RuleDescriptor describes one registered rule.
type RuleDescriptor struct {
	Code        string
	Name        string
	Description string
	Example     string
	Category    Category
	Arity       Arity
	Handler     Handler
}
