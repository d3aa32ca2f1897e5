package text

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/gosimple/slug"
	"github.com/tidwall/gjson"
	"github.com/tidwall/pretty"
)

const defaultIndent = 2

func jsonPretty(s string, args []string) (string, error) {
	if !gjson.Valid(s) {
		return "", fmt.Errorf("input is not valid JSON")
	}

	indent := defaultIndent
	if len(args) > 0 {
		n, err := strconv.Atoi(strings.TrimSpace(args[0]))
		if err != nil || n < 0 || n > 16 {
			return "", fmt.Errorf("indent must be a number between 0 and 16, got %q", args[0])
		}
		indent = n
	}

	opts := *pretty.DefaultOptions
	opts.Indent = strings.Repeat(" ", indent)
	opts.SortKeys = false
	out := pretty.PrettyOptions([]byte(s), &opts)
	return strings.TrimRight(string(out), "\n"), nil
}

func jsonCompact(s string, _ []string) (string, error) {
	if !gjson.Valid(s) {
		return "", fmt.Errorf("input is not valid JSON")
	}
	return string(pretty.Ugly([]byte(s))), nil
}

// jsonPath returns strings unquoted and objects/arrays as raw JSON.
func jsonPath(s string, args []string) (string, error) {
	if !gjson.Valid(s) {
		return "", fmt.Errorf("input is not valid JSON")
	}
	res := gjson.Get(s, args[0])
	if !res.Exists() {
		return "", fmt.Errorf("path %q not found", args[0])
	}
	return res.String(), nil
}

func xmlPretty(s string, _ []string) (string, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return "", fmt.Errorf("input is not valid XML: %w", err)
	}
	if doc.Root() == nil {
		return "", fmt.Errorf("input has no XML root element")
	}
	doc.Indent(defaultIndent)
	out, err := doc.WriteToString()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(out, "\n"), nil
}

func slugify(s string) string {
	return slug.Make(s)
}
