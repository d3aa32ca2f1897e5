package parser

import (
	"strings"
	"unicode"

	"github.com/arthur-debert/ruleflow/pkg/errors"
)

// token is one lexical unit of a rule string. quoted is set when the raw
// token began with a quote character.
type token struct {
	value  string
	quoted bool
}

func isQuote(r rune) bool {
	return r == '\'' || r == '"'
}

// tokenize splits s on whitespace, and on '/' when slashes is set, keeping
// quoted sections intact and stripping the quotes. Empty unquoted tokens are
// dropped; an explicitly quoted empty string is kept.
func tokenize(s string, slashes bool) ([]token, error) {
	var (
		tokens  []token
		cur     strings.Builder
		inToken bool
		quoted  bool
		quote   rune
	)

	flush := func() {
		if inToken {
			tokens = append(tokens, token{value: cur.String(), quoted: quoted})
		}
		cur.Reset()
		inToken = false
		quoted = false
	}

	for _, r := range s {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
				continue
			}
			cur.WriteRune(r)
		case isQuote(r):
			if !inToken {
				quoted = true
			}
			inToken = true
			quote = r
		case unicode.IsSpace(r) || (slashes && r == '/'):
			flush()
		default:
			inToken = true
			cur.WriteRune(r)
		}
	}

	if quote != 0 {
		return nil, errors.NewParseError(s, "unterminated quote")
	}
	flush()
	return tokens, nil
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

func hasSpace(s string) bool {
	return strings.IndexFunc(s, unicode.IsSpace) >= 0
}
