// Test Type: Unit Test
// Description: Tests for the normalize package - shell/path expansion repair

package normalize_test

import (
	"testing"

	"github.com/arthur-debert/ruleflow/pkg/normalize"
	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "drive_only_forward_slash",
			input:    "T:/",
			expected: "/t",
		},
		{
			name:     "drive_only_backslash",
			input:    `U:\`,
			expected: "/u",
		},
		{
			name:     "drive_only_lowercase_letter",
			input:    "l:/",
			expected: "/l",
		},
		{
			name:     "git_bash_single_rule",
			input:    "D:/Applications/Git/to-utf8",
			expected: "/to-utf8",
		},
		{
			name:     "git_bash_chain",
			input:    "C:/Program Files/Git/t/l/p",
			expected: "/t/l/p",
		},
		{
			name:     "git_bash_backslashes",
			input:    `C:\Program Files\Git\t`,
			expected: "/t",
		},
		{
			name:     "drive_prefix_extracts_chain",
			input:    "C:/Users/me/-t",
			expected: "/Users/me/-t",
		},
		{
			name:     "drive_prefix_without_chain",
			input:    "C:/.",
			expected: "C:/.",
		},
		{
			name:     "plain_slash_chain_untouched",
			input:    "/t/l",
			expected: "/t/l",
		},
		{
			name:     "dash_rule_untouched",
			input:    "-t",
			expected: "-t",
		},
		{
			name:     "bare_code_untouched",
			input:    "sha256",
			expected: "sha256",
		},
		{
			name:     "empty_string",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, normalize.Normalize(tt.input))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"T:/", `U:\`, "D:/Applications/Git/to-utf8", "C:/Program Files/Git/t/l",
		"C:/Users/me/-t", "C:/.", "/t/l/p", "-t", "S '+'", "", "/", "x:/y/Git/",
	}

	for _, in := range inputs {
		once := normalize.Normalize(in)
		assert.Equal(t, once, normalize.Normalize(once), "input %q", in)
	}
}

func TestNormalizer_RulesOrder(t *testing.T) {
	assert.Equal(t, []string{"drive-only", "git-bash", "drive-prefix"}, normalize.New().Rules())
}

func TestExtractGitBash(t *testing.T) {
	chain, ok := normalize.ExtractGitBash("E:/Tools/Git/sha256")
	assert.True(t, ok)
	assert.Equal(t, "/sha256", chain)

	_, ok = normalize.ExtractGitBash("E:/Tools/sha256")
	assert.False(t, ok)
}

func TestIsDrivePath(t *testing.T) {
	assert.True(t, normalize.IsDrivePath("C:/x"))
	assert.True(t, normalize.IsDrivePath(`c:\x`))
	assert.False(t, normalize.IsDrivePath("/c/x"))
	assert.False(t, normalize.IsDrivePath("C:x"))
}
