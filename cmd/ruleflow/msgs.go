package ruleflow

import (
	"embed"
	"strings"
)

// Short messages (one-liners)
const (
	MsgRootShort       = "Apply chains of text rules to stdin or the clipboard"
	MsgRulesShort      = "List all available rules"
	MsgExplainShort    = "Show help for a single rule"
	MsgReplShort       = "Apply rules interactively to a working buffer"
	MsgConfigShort     = "Print the effective configuration"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate the man page"

	// Flag descriptions
	MsgFlagVerbose  = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagConfig   = "Config file (default $XDG_CONFIG_HOME/ruleflow/config.toml)"
	MsgFlagInput    = "Input source: auto, stdin or clipboard"
	MsgFlagOutput   = "Output sink: stdout or clipboard"
	MsgFlagTrace    = "Print every step of the chain to stderr"
	MsgFlagText     = "Use this text as input instead of stdin or the clipboard"
	MsgFlagFormat   = "Output format: auto, term, text or json"
	MsgFlagDefaults = "Print the built-in defaults instead of the effective config"

	// Status messages
	MsgCopied        = "Result copied to clipboard"
	MsgReplWelcome   = "ruleflow repl. Type a rule string or :show, :set, :reset, :trace, :quit."
	MsgReplPrompt    = "» "
	MsgReplBuffer    = "buffer: %q\n"
	MsgReplTraceMode = "trace %s\n"
	MsgVersionFormat = "ruleflow %s (commit %s, built %s)\n"

	// Error messages
	MsgErrNoRule      = "no rule given"
	MsgErrReplCommand = "unknown repl command %q"
	MsgErrReplArgs    = "%s expects %s"
)

//go:embed msgs/*.txt
var msgFS embed.FS

//go:embed help
var helpFS embed.FS

func msg(name string) string {
	data, err := msgFS.ReadFile("msgs/" + name + ".txt")
	if err != nil {
		panic("missing embedded message " + name)
	}
	return strings.TrimSpace(string(data))
}

// Long messages from embedded files
var (
	MsgRootLong       = msg("root-long")
	MsgRootExample    = msg("root-example")
	MsgReplLong       = msg("repl-long")
	MsgExplainLong    = msg("explain-long")
	MsgConfigLong     = msg("config-long")
	MsgCompletionLong = msg("completion-long")
	MsgUsageTemplate  = msg("usage-template")
)
