package ruleflow

import (
	"strings"
	"unicode"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ruleflow/pkg/config"
	"github.com/arthur-debert/ruleflow/pkg/textio"
	"github.com/arthur-debert/ruleflow/pkg/types"
	"github.com/arthur-debert/ruleflow/pkg/ui"
)

// runRule reads the input, applies raw and writes the result. On a failed
// step nothing is written to the sink and the step's error is returned.
// With --trace the per-step trace goes to stderr, failed or not.
func runRule(cmd *cobra.Command, a *app, raw string) error {
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return err
	}
	engine, err := a.engineFor(cmd)
	if err != nil {
		return err
	}

	src, err := selectSource(cmd, a, cfg)
	if err != nil {
		return err
	}
	sink, err := textio.SelectSink(cfg.IO.Output, cmd.OutOrStdout())
	if err != nil {
		return err
	}

	input, err := src.Read()
	if err != nil {
		return err
	}
	log.Debug().Str("source", src.Name()).Int("length", len(input)).Msg("Read input")

	var output string
	if cfg.Output.Trace {
		result, err := engine.Transform(raw, input)
		if err != nil {
			return err
		}
		r, err := a.renderer(cmd, cmd.ErrOrStderr(), "")
		if err != nil {
			return err
		}
		if err := r.RenderTrace(ui.NewTraceView(result)); err != nil {
			return err
		}
		if err := result.Err(); err != nil {
			return err
		}
		output = result.Output
	} else {
		output, err = engine.Apply(raw, input)
		if err != nil {
			return err
		}
	}

	if err := sink.Write(output); err != nil {
		return err
	}
	if sink.Name() == config.OutputClipboard {
		notice(cmd.ErrOrStderr(), MsgCopied)
	}
	return nil
}

func selectSource(cmd *cobra.Command, a *app, cfg *config.Config) (textio.Source, error) {
	if cmd.Flags().Changed("text") {
		return textio.Literal(a.text), nil
	}
	stdin, piped := stdinFor(cmd)
	return textio.SelectSource(cfg.IO.Input, stdin, piped)
}

// ruleString joins argv back into one rule string. The shell has already
// stripped the user's quotes, so every argument after the first that is
// empty or holds whitespace or a quote is quoted again. The first argument
// is the rule itself and may be a complete quoted rule string.
func ruleString(args []string) string {
	parts := make([]string, len(args))
	for i, arg := range args {
		if i > 0 && needsQuoting(arg) {
			arg = types.QuoteArg(arg)
		}
		parts[i] = arg
	}
	return strings.Join(parts, " ")
}

func needsQuoting(s string) bool {
	return s == "" || strings.ContainsAny(s, `'"`) || strings.IndexFunc(s, unicode.IsSpace) >= 0
}
