// Package transforms groups the capability providers that contribute rules
// at bootstrap. Each sub-package exposes a Provider with Name, Codes and
// Descriptors; pkg/core registers them in order.
//
//   - text: case, whitespace, lines, width, Unicode, encodings, formatting
//   - hash: digests keyed by algorithm name
//   - crypt: hybrid public-key encryption with keys kept on disk
package transforms
