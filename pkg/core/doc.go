// Package core wires ruleflow together. It turns capability providers into
// a frozen registry and exposes Engine, which takes a raw rule string and
// input text through normalization, parsing and the pipeline.
//
// Providers that fail to initialize do not abort bootstrap. Their codes are
// recorded as unavailable so that using them reports a capability error
// rather than an unknown rule.
package core
