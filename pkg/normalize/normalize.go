package normalize

import (
	"regexp"
	"strings"
)

var (
	driveOnlyPattern   = regexp.MustCompile(`^([A-Za-z]):[\\/]$`)
	gitBashPattern     = regexp.MustCompile(`^[A-Za-z]:[\\/][^/\\]*[\\/]Git[\\/](.+)`)
	drivePrefixPattern = regexp.MustCompile(`^[A-Za-z]:[\\/]`)
	ruleChainPattern   = regexp.MustCompile(`[/-][A-Za-z0-9_+-]+(?:[/-][A-Za-z0-9_+-]+)*`)
)

// Matcher is one normalization case. Apply returns the repaired string and
// true when the case recognises the input.
type Matcher struct {
	Name  string
	Apply func(raw string) (string, bool)
}

// Normalizer applies matchers in priority order.
type Normalizer struct {
	matchers []Matcher
}

// New creates a normalizer with the built-in matchers:
// drive-only, git-bash, drive-prefix.
func New() *Normalizer {
	return &Normalizer{
		matchers: []Matcher{
			{Name: "drive-only", Apply: matchDriveOnly},
			{Name: "git-bash", Apply: matchGitBash},
			{Name: "drive-prefix", Apply: matchDrivePrefix},
		},
	}
}

var defaultNormalizer = New()

// Normalize repairs raw with the default normalizer.
func Normalize(raw string) string {
	return defaultNormalizer.Normalize(raw)
}

// Normalize returns the output of the first matcher that recognises raw,
// or raw itself.
func (n *Normalizer) Normalize(raw string) string {
	for _, m := range n.matchers {
		if out, ok := m.Apply(raw); ok {
			return out
		}
	}
	return raw
}

// Rules returns the matcher names in priority order
func (n *Normalizer) Rules() []string {
	names := make([]string, len(n.matchers))
	for i, m := range n.matchers {
		names[i] = m.Name
	}
	return names
}

// IsDrivePath reports whether s starts like a Windows drive path (C:/ or C:\)
func IsDrivePath(s string) bool {
	return drivePrefixPattern.MatchString(s)
}

// ExtractGitBash recovers the rule chain from a Git Bash expanded path such
// as "C:/Program Files/Git/t/l". The result always starts with "/".
func ExtractGitBash(s string) (string, bool) {
	m := gitBashPattern.FindStringSubmatch(s)
	if m == nil {
		return "", false
	}
	rest := strings.ReplaceAll(m[1], `\`, "/")
	if !strings.HasPrefix(rest, "/") {
		rest = "/" + rest
	}
	return rest, true
}

// matchDriveOnly turns "T:/" into "/t".
func matchDriveOnly(raw string) (string, bool) {
	m := driveOnlyPattern.FindStringSubmatch(raw)
	if m == nil {
		return "", false
	}
	return "/" + strings.ToLower(m[1]), true
}

func matchGitBash(raw string) (string, bool) {
	return ExtractGitBash(raw)
}

// matchDrivePrefix pulls the first slash or dash chain out of any other
// drive-letter path. A drive path without such a chain is left alone.
func matchDrivePrefix(raw string) (string, bool) {
	if !IsDrivePath(raw) {
		return "", false
	}
	if chain := ruleChainPattern.FindString(raw); chain != "" {
		return chain, true
	}
	return raw, true
}
