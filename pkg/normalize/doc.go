// Package normalize repairs rule strings that a shell or the OS mangled
// before they reached ruleflow.
//
// The usual culprits are Windows shells and Git Bash, which treat a leading
// slash as a path:
//
//	/t                 -> T:/
//	/to-utf8           -> D:/Applications/Git/to-utf8
//
// Normalize undoes these expansions with an ordered list of matchers. The
// first matcher that recognises the input decides the result; input that no
// matcher recognises is returned unchanged. Normalize is pure and
// idempotent: its output never looks like a drive-letter path again.
package normalize
