package ui

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// TextRenderer renders plain, aligned text
type TextRenderer struct {
	out io.Writer
}

func (r *TextRenderer) RenderRules(listing RuleListing) error {
	tw := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, g := range listing.Groups() {
		fmt.Fprintf(tw, "%s:\n", g.Category)
		for _, rule := range g.Rules {
			fmt.Fprintf(tw, "  %s\t%s\t%s\t%s\n", rule.Code, rule.Name, rule.Arity, rule.Description)
		}
	}
	for _, u := range listing.Unavailable {
		fmt.Fprintf(tw, "  %s\t(unavailable: %s)\t\t%s\n", u.Code, u.Provider, u.Reason)
	}
	return tw.Flush()
}

func (r *TextRenderer) RenderTrace(trace TraceView) error {
	for _, step := range trace.Steps {
		if step.Succeeded {
			fmt.Fprintf(r.out, "ok   %d %s %q\n", step.Step, step.Code, step.Output)
		} else {
			fmt.Fprintf(r.out, "FAIL %d %s %s\n", step.Step, step.Code, step.Error)
		}
	}
	return nil
}

func (r *TextRenderer) RenderError(err error) error {
	_, werr := fmt.Fprintf(r.out, "Error: %s\n", err)
	return werr
}
