package core

import (
	"github.com/arthur-debert/ruleflow/pkg/config"
	"github.com/arthur-debert/ruleflow/pkg/logging"
	"github.com/arthur-debert/ruleflow/pkg/registry"
	"github.com/arthur-debert/ruleflow/pkg/transforms/crypt"
	"github.com/arthur-debert/ruleflow/pkg/transforms/hash"
	"github.com/arthur-debert/ruleflow/pkg/transforms/text"
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// Provider contributes a group of rules backed by one capability
type Provider interface {
	Name() string
	// Codes lists every code the provider owns, even when it cannot
	// initialize.
	Codes() []string
	Descriptors() ([]types.RuleDescriptor, error)
}

// DefaultProviders returns the built-in providers for cfg
func DefaultProviders(cfg *config.Config) []Provider {
	return []Provider{
		text.New(),
		hash.New(),
		crypt.New(crypt.Options{
			Enabled: cfg.Crypt.Enabled,
			KeyDir:  cfg.Crypt.KeyDir,
		}),
	}
}

// NewRegistry registers every provider in order and freezes the result.
// A provider whose Descriptors call fails has its codes recorded as
// unavailable. Registration conflicts are returned as errors.
func NewRegistry(providers ...Provider) (*registry.Registry, error) {
	logger := logging.GetLogger("core.bootstrap")
	reg := registry.New()

	for _, p := range providers {
		descs, err := p.Descriptors()
		if err != nil {
			logger.Debug().Err(err).Str("provider", p.Name()).Strs("codes", p.Codes()).
				Msg("Provider unavailable")
			if err := reg.RegisterUnavailable(p.Codes(), p.Name(), err); err != nil {
				return nil, err
			}
			continue
		}

		for _, d := range descs {
			if err := reg.Register(d); err != nil {
				return nil, err
			}
		}
		logger.Debug().Str("provider", p.Name()).Int("rules", len(descs)).Msg("Provider registered")
	}

	reg.Freeze()
	return reg, nil
}
