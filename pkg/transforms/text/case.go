package text

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// cases.Caser is stateful, so each call builds its own.

func lower(s string) string {
	return cases.Lower(language.Und).String(s)
}

func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

func title(s string) string {
	return cases.Title(language.Und).String(s)
}

func fullWidth(s string) string {
	return width.Widen.String(s)
}

func halfWidth(s string) string {
	return width.Narrow.String(s)
}

func nfc(s string) string {
	return norm.NFC.String(s)
}

func nfkc(s string) string {
	return norm.NFKC.String(s)
}
