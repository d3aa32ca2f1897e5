package ruleflow

import (
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ruleflow/pkg/cobrax/topics"
	"github.com/arthur-debert/ruleflow/pkg/ui"
)

func newRulesCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:     "rules",
		Short:   MsgRulesShort,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engineFor(cmd)
			if err != nil {
				return err
			}
			r, err := a.renderer(cmd, cmd.OutOrStdout(), format)
			if err != nil {
				return err
			}
			return r.RenderRules(ui.NewRuleListing(engine.Registry()))
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", MsgFlagFormat)
	return cmd
}

func newExplainCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:               "explain <rule>",
		Short:             MsgExplainShort,
		Long:              MsgExplainLong,
		Args:              cobra.ExactArgs(1),
		GroupID:           "core",
		ValidArgsFunction: ruleCodesCompletion(a),
		RunE: func(cmd *cobra.Command, args []string) error {
			engine, err := a.engineFor(cmd)
			if err != nil {
				return err
			}
			d, err := engine.Registry().Lookup(args[0])
			if err != nil {
				return err
			}

			var renderer topics.Renderer = &topics.PlainRenderer{}
			if isTerminal(cmd.OutOrStdout()) {
				renderer = topics.NewGlamourRenderer()
			}
			_, err = cmd.OutOrStdout().Write([]byte(renderer.Render(ui.RuleMarkdown(d), ".md")))
			return err
		},
	}
}
