package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/ui/output/styles"
)

// TerminalRenderer renders with lipgloss styles
type TerminalRenderer struct {
	out io.Writer
}

func (r *TerminalRenderer) RenderRules(listing RuleListing) error {
	s := styles.GetStyle
	fmt.Fprintln(r.out, s("Header").Render(fmt.Sprintf("%d rules", len(listing.Rules))))

	for _, g := range listing.Groups() {
		fmt.Fprintln(r.out, s("Category").Render(g.Category))
		for _, rule := range g.Rules {
			line := lipgloss.JoinHorizontal(lipgloss.Top,
				s("Code").Render(rule.Code),
				s("Name").Render(rule.Name),
				s("Arity").Render(rule.Arity),
				s("Description").Render(rule.Description),
			)
			fmt.Fprintln(r.out, s("Indent").Render(line))
		}
	}

	if len(listing.Unavailable) > 0 {
		fmt.Fprintln(r.out, s("Category").Render("unavailable"))
		for _, u := range listing.Unavailable {
			line := lipgloss.JoinHorizontal(lipgloss.Top,
				s("Code").Render(u.Code),
				s("Warning").Render(u.Provider+": "+u.Reason),
			)
			fmt.Fprintln(r.out, s("Indent").Render(line))
		}
	}
	return nil
}

func (r *TerminalRenderer) RenderTrace(trace TraceView) error {
	s := styles.GetStyle
	for _, step := range trace.Steps {
		mark := s("Success").Render("✓")
		detail := s("Muted").Render(fmt.Sprintf("%q", step.Output))
		if !step.Succeeded {
			mark = s("Error").Render("✗")
			detail = s("Error").Render(step.Error)
		}
		fmt.Fprintf(r.out, "%s %d %s %s\n", mark, step.Step, s("Code").Render(step.Code), detail)
	}
	return nil
}

func (r *TerminalRenderer) RenderError(err error) error {
	s := styles.GetStyle
	fmt.Fprintf(r.out, "%s %s\n", s("Error").Render("Error:"), err)
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		fmt.Fprintln(r.out, s("Muted").Render(string(code)))
	}
	return nil
}
