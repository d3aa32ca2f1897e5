package registry

import (
	"sync"
	"sync/atomic"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// UnavailableRule is a code whose backing capability failed to load
type UnavailableRule struct {
	Code     string
	Provider string
	Cause    error
}

// Registry maps rule codes to descriptors
type Registry struct {
	mu          sync.RWMutex
	frozen      atomic.Bool
	order       []string
	items       map[string]types.RuleDescriptor
	unavailable map[string]UnavailableRule
	unavailOrd  []string
}

// New creates an empty, unfrozen Registry
func New() *Registry {
	return &Registry{
		items:       make(map[string]types.RuleDescriptor),
		unavailable: make(map[string]UnavailableRule),
	}
}

// Register adds a descriptor. Codes are unique across available and
// unavailable rules.
func (r *Registry) Register(d types.RuleDescriptor) error {
	if d.Code == "" {
		return errors.New(errors.ErrInvalidInput, "rule code cannot be empty")
	}
	if !types.IsValidCode(d.Code) {
		return errors.Newf(errors.ErrInvalidInput, "invalid rule code '%s'", d.Code)
	}
	if d.Handler == nil {
		return errors.Newf(errors.ErrInvalidInput, "rule '%s' has no handler", d.Code)
	}
	if !d.Arity.Valid() {
		return errors.Newf(errors.ErrInvalidInput, "rule '%s' has invalid arity %d..%d", d.Code, d.Arity.Min, d.Arity.Max)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return errors.Newf(errors.ErrRegistryFrozen, "cannot register '%s': registry is frozen", d.Code)
	}
	if r.taken(d.Code) {
		return errors.NewDuplicateRuleError(d.Code)
	}

	r.items[d.Code] = d
	r.order = append(r.order, d.Code)
	return nil
}

// RegisterUnavailable records codes contributed by a provider that could
// not be initialized. Looking them up yields a capability error.
func (r *Registry) RegisterUnavailable(codes []string, provider string, cause error) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.frozen.Load() {
		return errors.Newf(errors.ErrRegistryFrozen, "cannot register provider '%s': registry is frozen", provider)
	}
	for _, code := range codes {
		if r.taken(code) {
			return errors.NewDuplicateRuleError(code)
		}
	}
	for _, code := range codes {
		r.unavailable[code] = UnavailableRule{Code: code, Provider: provider, Cause: cause}
		r.unavailOrd = append(r.unavailOrd, code)
	}
	return nil
}

// Freeze ends bootstrap. It is safe to call more than once.
func (r *Registry) Freeze() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frozen.Store(true)
}

// Lookup returns the descriptor for code
func (r *Registry) Lookup(code string) (types.RuleDescriptor, error) {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	if d, ok := r.items[code]; ok {
		return d, nil
	}
	if u, ok := r.unavailable[code]; ok {
		return types.RuleDescriptor{}, errors.NewCapabilityUnavailableError(code, u.Provider, u.Cause)
	}
	return types.RuleDescriptor{}, errors.NewUnknownRuleError(code)
}

// ListAll returns the available descriptors in registration order
func (r *Registry) ListAll() []types.RuleDescriptor {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	out := make([]types.RuleDescriptor, 0, len(r.order))
	for _, code := range r.order {
		out = append(out, r.items[code])
	}
	return out
}

// Unavailable returns the unavailable rules in registration order
func (r *Registry) Unavailable() []UnavailableRule {
	if !r.frozen.Load() {
		r.mu.RLock()
		defer r.mu.RUnlock()
	}

	out := make([]UnavailableRule, 0, len(r.unavailOrd))
	for _, code := range r.unavailOrd {
		out = append(out, r.unavailable[code])
	}
	return out
}

func (r *Registry) taken(code string) bool {
	_, ok := r.items[code]
	_, gone := r.unavailable[code]
	return ok || gone
}
