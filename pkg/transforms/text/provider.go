// Package text provides the pure text rules.
package text

import (
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// ProviderName identifies the text provider in listings and errors
const ProviderName = "text"

// Provider contributes the built-in text rules
type Provider struct{}

// New creates the text provider
func New() *Provider {
	return &Provider{}
}

// Name returns the provider name
func (p *Provider) Name() string {
	return ProviderName
}

// Codes returns the codes this provider registers
func (p *Provider) Codes() []string {
	descs := descriptors()
	codes := make([]string, len(descs))
	for i, d := range descs {
		codes[i] = d.Code
	}
	return codes
}

// Descriptors returns the rule table. It cannot fail.
func (p *Provider) Descriptors() ([]types.RuleDescriptor, error) {
	return descriptors(), nil
}

func fn(f func(string, []string) (string, error)) types.Handler {
	return types.HandlerFunc(f)
}

// pure wraps a transformation that ignores arguments and cannot fail.
func pure(f func(string) string) types.Handler {
	return types.HandlerFunc(func(s string, _ []string) (string, error) {
		return f(s), nil
	})
}

func descriptors() []types.RuleDescriptor {
	return []types.RuleDescriptor{
		// whitespace
		{Code: "t", Name: "trim", Description: "Remove leading and trailing whitespace.", Example: "'  hi  ' -> 'hi'", Category: types.CategoryWhitespace, Arity: types.NoArgs, Handler: pure(trim)},
		{Code: "s", Name: "squeeze", Description: "Collapse every run of whitespace, newlines included, into one space.", Example: "'a \\n b' -> 'a b'", Category: types.CategoryWhitespace, Arity: types.NoArgs, Handler: pure(squeeze)},
		{Code: "S", Name: "join", Description: "Join the words of the text with a separator, none by default.", Example: "/S '+' : 'a b c' -> 'a+b+c'", Category: types.CategoryWhitespace, Arity: types.Arity{Min: 0, Max: 1}, Handler: fn(join)},
		{Code: "r", Name: "replace", Description: "Replace every occurrence of the first argument with the second.", Example: "r a b : 'aaa' -> 'bbb'", Category: types.CategoryWhitespace, Arity: types.Arity{Min: 2, Max: 2}, Handler: fn(replace)},

		// case
		{Code: "l", Name: "lower", Description: "Convert to lower case.", Example: "'ABC' -> 'abc'", Category: types.CategoryCase, Arity: types.NoArgs, Handler: pure(lower)},
		{Code: "u", Name: "upper", Description: "Convert to upper case.", Example: "'abc' -> 'ABC'", Category: types.CategoryCase, Arity: types.NoArgs, Handler: pure(upper)},
		{Code: "c", Name: "title", Description: "Capitalize every word.", Example: "'hello world' -> 'Hello World'", Category: types.CategoryCase, Arity: types.NoArgs, Handler: pure(title)},

		// lines
		{Code: "p", Name: "pack", Description: "Drop blank lines.", Category: types.CategoryLines, Arity: types.NoArgs, Handler: pure(dropBlankLines)},
		{Code: "sort", Name: "sort lines", Description: "Sort lines lexically.", Category: types.CategoryLines, Arity: types.NoArgs, Handler: pure(sortLines)},
		{Code: "uniq", Name: "unique lines", Description: "Drop repeated lines, keeping the first occurrence.", Category: types.CategoryLines, Arity: types.NoArgs, Handler: pure(uniqueLines)},

		// width and unicode
		{Code: "fw", Name: "full width", Description: "Convert ASCII and half-width characters to their full-width forms.", Example: "'abc' -> 'ａｂｃ'", Category: types.CategoryWidth, Arity: types.NoArgs, Handler: pure(fullWidth)},
		{Code: "hw", Name: "half width", Description: "Convert full-width characters to their half-width forms.", Example: "'ａｂｃ' -> 'abc'", Category: types.CategoryWidth, Arity: types.NoArgs, Handler: pure(halfWidth)},
		{Code: "nfc", Name: "NFC", Description: "Unicode canonical composition.", Category: types.CategoryUnicode, Arity: types.NoArgs, Handler: pure(nfc)},
		{Code: "nfkc", Name: "NFKC", Description: "Unicode compatibility composition.", Category: types.CategoryUnicode, Arity: types.NoArgs, Handler: pure(nfkc)},

		// encodings
		{Code: "b64", Name: "base64 encode", Description: "Encode as standard Base64.", Example: "'hi' -> 'aGk='", Category: types.CategoryEncoding, Arity: types.NoArgs, Handler: pure(base64Encode)},
		{Code: "unb64", Name: "base64 decode", Description: "Decode standard or URL-safe Base64.", Example: "'aGk=' -> 'hi'", Category: types.CategoryEncoding, Arity: types.NoArgs, Handler: fn(base64Decode)},
		{Code: "url", Name: "url encode", Description: "Percent-encode for use in a query string.", Example: "'a b&c' -> 'a+b%26c'", Category: types.CategoryEncoding, Arity: types.NoArgs, Handler: pure(urlEncode)},
		{Code: "unurl", Name: "url decode", Description: "Decode a percent-encoded query string.", Category: types.CategoryEncoding, Arity: types.NoArgs, Handler: fn(urlDecode)},
		{Code: "to-utf8", Name: "to UTF-8", Description: "Decode text in a legacy charset (gbk unless named) to UTF-8. Valid UTF-8 passes through when no charset is given.", Example: "/to-utf8 'shift_jis'", Category: types.CategoryEncoding, Arity: types.Arity{Min: 0, Max: 1}, Handler: fn(toUTF8)},

		// formats
		{Code: "json", Name: "json pretty", Description: "Pretty-print JSON. The optional argument is the indent width.", Example: "/json '4'", Category: types.CategoryFormat, Arity: types.Arity{Min: 0, Max: 1}, Handler: fn(jsonPretty)},
		{Code: "jsonc", Name: "json compact", Description: "Remove all insignificant whitespace from JSON.", Category: types.CategoryFormat, Arity: types.NoArgs, Handler: fn(jsonCompact)},
		{Code: "jq", Name: "json path", Description: "Extract the value at a JSON path.", Example: "/jq 'user.name'", Category: types.CategoryFormat, Arity: types.Arity{Min: 1, Max: 1}, Handler: fn(jsonPath)},
		{Code: "xml", Name: "xml pretty", Description: "Indent an XML document.", Category: types.CategoryFormat, Arity: types.NoArgs, Handler: fn(xmlPretty)},
		{Code: "slug", Name: "slug", Description: "Make a lower-case, dash-separated URL slug.", Example: "'Hello, World!' -> 'hello-world'", Category: types.CategoryFormat, Arity: types.NoArgs, Handler: pure(slugify)},
	}
}
