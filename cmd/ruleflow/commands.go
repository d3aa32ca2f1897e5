package ruleflow

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ruleflow/internal/version"
	"github.com/arthur-debert/ruleflow/pkg/cobrax/topics"
	"github.com/arthur-debert/ruleflow/pkg/config"
	"github.com/arthur-debert/ruleflow/pkg/core"
	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/logging"
	"github.com/arthur-debert/ruleflow/pkg/textio"
	"github.com/arthur-debert/ruleflow/pkg/ui"
)

// app carries flag values and lazily built state shared by the commands
type app struct {
	verbosity  int
	configPath string
	input      string
	output     string
	trace      bool
	text       string

	cfg    *config.Config
	engine *core.Engine
}

// loadConfig loads the configuration once, applying flags the user set
func (a *app) loadConfig(cmd *cobra.Command) (*config.Config, error) {
	if a.cfg != nil {
		return a.cfg, nil
	}

	overrides := map[string]interface{}{}
	flags := cmd.Flags()
	if flags.Changed("input") {
		overrides["io.input"] = a.input
	}
	if flags.Changed("output") {
		overrides["io.output"] = a.output
	}
	if flags.Changed("trace") {
		overrides["output.trace"] = a.trace
	}

	cfg, err := config.Load(config.LoadOptions{Path: a.configPath, Overrides: overrides})
	if err != nil {
		return nil, err
	}
	a.cfg = cfg
	return cfg, nil
}

func (a *app) engineFor(cmd *cobra.Command) (*core.Engine, error) {
	if a.engine != nil {
		return a.engine, nil
	}
	cfg, err := a.loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	engine, err := core.NewDefaultEngine(cfg)
	if err != nil {
		return nil, err
	}
	a.engine = engine
	return engine, nil
}

func (a *app) renderer(cmd *cobra.Command, w io.Writer, format string) (ui.Renderer, error) {
	if format == "" {
		cfg, err := a.loadConfig(cmd)
		if err != nil {
			return nil, err
		}
		format = cfg.Output.Format
	}
	f, err := ui.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return ui.NewRenderer(f, w)
}

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	initTemplateFormatting()

	a := &app{}

	rootCmd := &cobra.Command{
		Use:     "ruleflow [rule]",
		Short:   MsgRootShort,
		Long:    MsgRootLong,
		Example: MsgRootExample,
		Version: version.Version,
		Args:    cobra.ArbitraryArgs,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(a.verbosity)
			logging.LogCommand(cmd.Name(), args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				_ = cmd.Help()
				return errors.New(errors.ErrInvalidInput, MsgErrNoRule)
			}
			return runRule(cmd, a, ruleString(args))
		},
		SilenceUsage:      true,
		SilenceErrors:     true,
		DisableAutoGenTag: true,
	}

	pflags := rootCmd.PersistentFlags()
	pflags.CountVarP(&a.verbosity, "verbose", "v", MsgFlagVerbose)
	pflags.StringVar(&a.configPath, "config", "", MsgFlagConfig)

	flags := rootCmd.Flags()
	flags.StringVarP(&a.input, "input", "i", config.InputAuto, MsgFlagInput)
	flags.StringVarP(&a.output, "output", "o", config.OutputStdout, MsgFlagOutput)
	flags.BoolVar(&a.trace, "trace", false, MsgFlagTrace)
	flags.StringVar(&a.text, "text", "", MsgFlagText)
	flags.SetInterspersed(false)

	rootCmd.AddGroup(&cobra.Group{ID: "core", Title: "COMMANDS:"})
	rootCmd.AddGroup(&cobra.Group{ID: "misc", Title: "MISC:"})
	rootCmd.SetUsageTemplate(MsgUsageTemplate)

	rootCmd.AddCommand(newRulesCmd(a))
	rootCmd.AddCommand(newExplainCmd(a))
	rootCmd.AddCommand(newReplCmd(a))
	rootCmd.AddCommand(newConfigCmd(a))
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())
	rootCmd.AddCommand(newManCmd())

	tm := topics.New(topics.Options{
		Renderer: topics.NewGlamourRenderer(),
		Resolver: ruleTopicResolver(rootCmd, a),
	})
	if err := tm.Load(helpFS, "help"); err != nil {
		log.Warn().Err(err).Msg("Failed to load help topics")
	}
	tm.Install(rootCmd)

	return rootCmd
}

// ruleTopicResolver serves `help <code>` from the rule registry
func ruleTopicResolver(rootCmd *cobra.Command, a *app) func(string) (*topics.Topic, bool) {
	return func(name string) (*topics.Topic, bool) {
		engine, err := a.engineFor(rootCmd)
		if err != nil {
			return nil, false
		}
		d, err := engine.Registry().Lookup(name)
		if err != nil {
			return nil, false
		}
		return &topics.Topic{Name: d.Code, Format: ".md", Content: ui.RuleMarkdown(d)}, true
	}
}

// ruleCodesCompletion completes rule codes
func ruleCodesCompletion(a *app) func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
	return func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
		if len(args) > 0 {
			return nil, cobra.ShellCompDirectiveNoFileComp
		}
		engine, err := a.engineFor(cmd)
		if err != nil {
			return nil, cobra.ShellCompDirectiveError
		}
		var codes []string
		for _, d := range engine.Registry().ListAll() {
			if strings.HasPrefix(d.Code, toComplete) {
				codes = append(codes, d.Code+"\t"+d.Name)
			}
		}
		return codes, cobra.ShellCompDirectiveNoFileComp
	}
}

func newCompletionCmd() *cobra.Command {
	return &cobra.Command{
		Use:                   "completion [bash|zsh|fish|powershell]",
		Short:                 MsgCompletionShort,
		Long:                  MsgCompletionLong,
		DisableFlagsInUseLine: true,
		ValidArgs:             []string{"bash", "zsh", "fish", "powershell"},
		Args:                  cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		GroupID:               "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenCompletion(cmd.Root(), args[0], cmd.OutOrStdout())
		},
	}
}

// GenCompletion writes the completion script for shell
func GenCompletion(rootCmd *cobra.Command, shell string, w io.Writer) error {
	switch shell {
	case "bash":
		return rootCmd.GenBashCompletionV2(w, true)
	case "zsh":
		return rootCmd.GenZshCompletion(w)
	case "fish":
		return rootCmd.GenFishCompletion(w, true)
	case "powershell":
		return rootCmd.GenPowerShellCompletionWithDesc(w)
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown shell %q, expected bash, zsh, fish or powershell", shell)
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "version",
		Short:   MsgVersionShort,
		Args:    cobra.NoArgs,
		GroupID: "misc",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), MsgVersionFormat, version.Version, version.Commit, version.Date)
		},
	}
}

// stdinFor returns the command input and whether it is piped
func stdinFor(cmd *cobra.Command) (io.Reader, bool) {
	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		return f, textio.IsPiped(f)
	}
	return in, true
}
