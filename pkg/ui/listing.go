package ui

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/ruleflow/pkg/registry"
	"github.com/arthur-debert/ruleflow/pkg/types"
)

// RuleEntry is the display form of a rule descriptor
type RuleEntry struct {
	Code        string `json:"code"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Arity       string `json:"arity"`
	Description string `json:"description"`
	Example     string `json:"example,omitempty"`
}

// UnavailableEntry is a code whose provider did not load
type UnavailableEntry struct {
	Code     string `json:"code"`
	Provider string `json:"provider"`
	Reason   string `json:"reason,omitempty"`
}

// CategoryGroup is the rules of one category in registration order
type CategoryGroup struct {
	Category string      `json:"category"`
	Rules    []RuleEntry `json:"rules"`
}

// RuleListing is everything `ruleflow rules` shows
type RuleListing struct {
	Rules       []RuleEntry        `json:"rules"`
	Unavailable []UnavailableEntry `json:"unavailable,omitempty"`
}

// NewRuleEntry converts a descriptor
func NewRuleEntry(d types.RuleDescriptor) RuleEntry {
	return RuleEntry{
		Code:        d.Code,
		Name:        d.Name,
		Category:    string(d.Category),
		Arity:       d.Arity.String(),
		Description: d.Description,
		Example:     d.Example,
	}
}

// NewRuleListing snapshots reg
func NewRuleListing(reg *registry.Registry) RuleListing {
	var listing RuleListing
	for _, d := range reg.ListAll() {
		listing.Rules = append(listing.Rules, NewRuleEntry(d))
	}
	for _, u := range reg.Unavailable() {
		entry := UnavailableEntry{Code: u.Code, Provider: u.Provider}
		if u.Cause != nil {
			entry.Reason = u.Cause.Error()
		}
		listing.Unavailable = append(listing.Unavailable, entry)
	}
	return listing
}

// Groups splits the rules by category, in order of first appearance
func (l RuleListing) Groups() []CategoryGroup {
	var groups []CategoryGroup
	index := map[string]int{}
	for _, r := range l.Rules {
		i, ok := index[r.Category]
		if !ok {
			i = len(groups)
			index[r.Category] = i
			groups = append(groups, CategoryGroup{Category: r.Category})
		}
		groups[i].Rules = append(groups[i].Rules, r)
	}
	return groups
}

// StepEntry is the display form of one pipeline step
type StepEntry struct {
	Step      int    `json:"step"`
	Code      string `json:"code"`
	Succeeded bool   `json:"succeeded"`
	Output    string `json:"output"`
	Error     string `json:"error,omitempty"`
}

// TraceView is the display form of a pipeline result
type TraceView struct {
	Output    string      `json:"output"`
	Succeeded bool        `json:"succeeded"`
	Steps     []StepEntry `json:"steps"`
}

// NewTraceView converts a pipeline result
func NewTraceView(r *types.PipelineResult) TraceView {
	view := TraceView{Output: r.Output, Succeeded: r.Succeeded(), Steps: []StepEntry{}}
	for i, s := range r.Trace {
		entry := StepEntry{Step: i + 1, Code: s.Code, Succeeded: s.Succeeded, Output: s.Output}
		if s.Err != nil {
			entry.Error = s.Err.Error()
		}
		view.Steps = append(view.Steps, entry)
	}
	return view
}

// RuleMarkdown renders a rule as a markdown help page
func RuleMarkdown(d types.RuleDescriptor) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s (`%s`)\n\n", d.Name, d.Code)
	if d.Description != "" {
		fmt.Fprintf(&b, "%s\n\n", d.Description)
	}
	fmt.Fprintf(&b, "- **Category:** %s\n", d.Category)
	fmt.Fprintf(&b, "- **Arguments:** %s\n", d.Arity)
	if d.Example != "" {
		fmt.Fprintf(&b, "\n## Example\n\n```\n%s\n```\n", d.Example)
	}
	fmt.Fprintf(&b, "\n## Usage\n\n```\nruleflow /%s\nruleflow -- -%s\n```\n", d.Code, d.Code)
	return b.String()
}
