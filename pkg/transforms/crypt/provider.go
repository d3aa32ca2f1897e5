// Package crypt provides the enc and dec rules: anonymous sealed boxes
// (X25519 + XSalsa20-Poly1305) addressed to the user's own key pair.
package crypt

import (
	"crypto/rand"
	"encoding/base64"
	"strings"

	"golang.org/x/crypto/nacl/box"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// ProviderName identifies the crypt provider
const ProviderName = "crypt"

// Options configures the provider
type Options struct {
	Enabled bool
	KeyDir  string
}

// Provider contributes the enc and dec rules
type Provider struct {
	opts Options
	keys *KeyStore
}

// New creates a crypt provider. An empty KeyDir selects DefaultKeyDir.
func New(opts Options) *Provider {
	if opts.KeyDir == "" {
		opts.KeyDir = DefaultKeyDir()
	}
	return &Provider{opts: opts, keys: NewKeyStore(opts.KeyDir)}
}

// Name returns the provider name
func (p *Provider) Name() string {
	return ProviderName
}

// Codes returns the codes this provider owns, available or not
func (p *Provider) Codes() []string {
	return []string{"enc", "dec"}
}

// Descriptors fails when the provider is disabled or the key directory
// path is unusable. The directory and the key pair are created on first use.
func (p *Provider) Descriptors() ([]types.RuleDescriptor, error) {
	if !p.opts.Enabled {
		return nil, errors.New(errors.ErrCapabilityUnavailable, "crypt provider is disabled in configuration")
	}
	if err := p.keys.Check(); err != nil {
		return nil, err
	}

	return []types.RuleDescriptor{
		{
			Code:        "enc",
			Name:        "encrypt",
			Description: "Seal the text to your own public key. Output is Base64.",
			Example:     "/enc",
			Category:    types.CategoryCrypto,
			Arity:       types.NoArgs,
			Handler:     types.HandlerFunc(p.encrypt),
		},
		{
			Code:        "dec",
			Name:        "decrypt",
			Description: "Open Base64 text produced by enc.",
			Example:     "/dec",
			Category:    types.CategoryCrypto,
			Arity:       types.NoArgs,
			Handler:     types.HandlerFunc(p.decrypt),
		},
	}, nil
}

func (p *Provider) encrypt(s string, _ []string) (string, error) {
	pub, _, err := p.keys.Keys()
	if err != nil {
		return "", err
	}
	sealed, err := box.SealAnonymous(nil, []byte(s), pub, rand.Reader)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(sealed), nil
}

func (p *Provider) decrypt(s string, _ []string) (string, error) {
	pub, priv, err := p.keys.Keys()
	if err != nil {
		return "", err
	}
	sealed, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInvalidInput, "ciphertext is not valid base64")
	}
	plain, ok := box.OpenAnonymous(nil, sealed, pub, priv)
	if !ok {
		return "", errors.New(errors.ErrInvalidInput, "ciphertext was not sealed to this key pair or is corrupt")
	}
	return string(plain), nil
}
