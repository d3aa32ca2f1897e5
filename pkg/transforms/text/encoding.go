package text

import (
	"encoding/base64"
	"fmt"
	"net/url"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/htmlindex"
)

// DefaultCharset is what to-utf8 assumes for invalid UTF-8 input when no
// charset argument is given
const DefaultCharset = "gbk"

const utf8BOM = "\xef\xbb\xbf"

func base64Encode(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// base64Decode accepts padded or unpadded, standard or URL-safe input.
func base64Decode(s string, _ []string) (string, error) {
	s = strings.Join(strings.Fields(s), "")
	encodings := []*base64.Encoding{
		base64.StdEncoding,
		base64.URLEncoding,
		base64.RawStdEncoding,
		base64.RawURLEncoding,
	}

	var firstErr error
	for _, enc := range encodings {
		out, err := enc.DecodeString(s)
		if err == nil {
			return string(out), nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	return "", fmt.Errorf("invalid base64: %w", firstErr)
}

func urlEncode(s string) string {
	return url.QueryEscape(s)
}

func urlDecode(s string, _ []string) (string, error) {
	out, err := url.QueryUnescape(s)
	if err != nil {
		return "", fmt.Errorf("invalid url encoding: %w", err)
	}
	return out, nil
}

// toUTF8 decodes s from a legacy charset. Without an argument, valid UTF-8
// is returned as is (minus a BOM) and anything else is read as gbk.
func toUTF8(s string, args []string) (string, error) {
	charset := ""
	if len(args) > 0 {
		charset = strings.TrimSpace(args[0])
	}

	if charset == "" {
		if utf8.ValidString(s) {
			return strings.TrimPrefix(s, utf8BOM), nil
		}
		charset = DefaultCharset
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return "", fmt.Errorf("unknown charset %q: %w", charset, err)
	}
	out, err := enc.NewDecoder().String(s)
	if err != nil {
		return "", fmt.Errorf("cannot decode as %s: %w", charset, err)
	}
	return strings.TrimPrefix(out, utf8BOM), nil
}
