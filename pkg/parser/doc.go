// Package parser turns a rule string into an ordered list of instructions.
//
// Several surface syntaxes compete for the same input, so the parser is a
// small dispatch table: grammars are tried in a fixed priority order and the
// first one that claims the input decides the result.
//
//  1. dash      "-t"                one rule
//  2. slash     "/t/l/p", "/S '+'"  a chain, optionally with quoted arguments
//  3. drive     "C:/.../Git/t/l"    a chain recovered from a Git Bash path
//  4. words     "r a b"             one rule followed by its arguments
//  5. code      "sha256"            one rule
//
// Inside a slash chain a token is an argument of the preceding rule when it
// is quoted or has no letters in it; any other token starts the next rule.
// That means a rule code made only of digits or punctuation is read as an
// argument. Codes must match [A-Za-z][A-Za-z0-9_-]*.
package parser
