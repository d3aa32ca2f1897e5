// Package hash provides digest rules keyed by algorithm name.
package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
	stdhash "hash"

	"github.com/arthur-debert/ruleflow/pkg/types"
)

// ProviderName identifies the hash provider
const ProviderName = "hash"

// Algorithm is one digest the provider exposes as a rule
type Algorithm struct {
	Name string
	New  func() stdhash.Hash
}

// Algorithms lists the supported digests in registration order
var Algorithms = []Algorithm{
	{Name: "sha256", New: sha256.New},
	{Name: "sha1", New: sha1.New},
	{Name: "sha512", New: sha512.New},
	{Name: "md5", New: md5.New},
}

// Provider contributes one rule per algorithm
type Provider struct {
	algorithms []Algorithm
}

// New creates a provider for the given algorithms, or all of Algorithms
// when none are given
func New(algorithms ...Algorithm) *Provider {
	if len(algorithms) == 0 {
		algorithms = Algorithms
	}
	return &Provider{algorithms: algorithms}
}

// Name returns the provider name
func (p *Provider) Name() string {
	return ProviderName
}

// Codes returns the algorithm names
func (p *Provider) Codes() []string {
	codes := make([]string, len(p.algorithms))
	for i, a := range p.algorithms {
		codes[i] = a.Name
	}
	return codes
}

// Descriptors returns a rule per algorithm
func (p *Provider) Descriptors() ([]types.RuleDescriptor, error) {
	descs := make([]types.RuleDescriptor, 0, len(p.algorithms))
	for _, a := range p.algorithms {
		descs = append(descs, types.RuleDescriptor{
			Code:        a.Name,
			Name:        a.Name,
			Description: "Hex-encoded " + a.Name + " digest of the UTF-8 text.",
			Example:     "/t/" + a.Name,
			Category:    types.CategoryHash,
			Arity:       types.NoArgs,
			Handler:     digest(a),
		})
	}
	return descs, nil
}

// Sum returns the lowercase hex digest of s
func Sum(a Algorithm, s string) string {
	h := a.New()
	h.Write([]byte(s))
	return hex.EncodeToString(h.Sum(nil))
}

func digest(a Algorithm) types.Handler {
	return types.HandlerFunc(func(s string, _ []string) (string, error) {
		return Sum(a, s), nil
	})
}
