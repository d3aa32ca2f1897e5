package ruleflow

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/google/shlex"
	"github.com/spf13/cobra"

	"github.com/arthur-debert/ruleflow/pkg/core"
	"github.com/arthur-debert/ruleflow/pkg/errors"
	"github.com/arthur-debert/ruleflow/pkg/ui"
)

func newReplCmd(a *app) *cobra.Command {
	var text string

	cmd := &cobra.Command{
		Use:     "repl",
		Short:   MsgReplShort,
		Long:    MsgReplLong,
		Args:    cobra.NoArgs,
		GroupID: "core",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig(cmd)
			if err != nil {
				return err
			}
			engine, err := a.engineFor(cmd)
			if err != nil {
				return err
			}
			renderer, err := a.renderer(cmd, cmd.ErrOrStderr(), "")
			if err != nil {
				return err
			}

			s := &replSession{
				engine:   engine,
				renderer: renderer,
				out:      cmd.OutOrStdout(),
				initial:  text,
				buffer:   text,
				trace:    cfg.Output.Trace,
			}
			return s.run(cmd.InOrStdin(), cmd.ErrOrStderr())
		},
	}
	cmd.Flags().StringVar(&text, "text", "", MsgFlagText)
	return cmd
}

// replSession applies rule lines to a working buffer
type replSession struct {
	engine   *core.Engine
	renderer ui.Renderer
	out      io.Writer

	initial string
	buffer  string
	trace   bool
}

func (s *replSession) run(in io.Reader, prompt io.Writer) error {
	fmt.Fprintln(prompt, MsgReplWelcome)
	fmt.Fprint(prompt, MsgReplPrompt)

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		quit, err := s.handle(strings.TrimSpace(scanner.Text()))
		if err != nil {
			_ = s.renderer.RenderError(err)
		}
		if quit {
			return nil
		}
		fmt.Fprint(prompt, MsgReplPrompt)
	}
	return scanner.Err()
}

// handle processes one line and reports whether the session should end
func (s *replSession) handle(line string) (bool, error) {
	switch {
	case line == "":
		return false, nil
	case strings.HasPrefix(line, ":"):
		return s.command(line[1:])
	default:
		return false, s.apply(line)
	}
}

func (s *replSession) apply(raw string) error {
	result, err := s.engine.Transform(raw, s.buffer)
	if err != nil {
		return err
	}
	if s.trace || !result.Succeeded() {
		if err := s.renderer.RenderTrace(ui.NewTraceView(result)); err != nil {
			return err
		}
	}
	if err := result.Err(); err != nil {
		return err
	}
	s.buffer = result.Output
	_, err = fmt.Fprintln(s.out, s.buffer)
	return err
}

func (s *replSession) command(line string) (bool, error) {
	words, err := shlex.Split(line)
	if err != nil {
		return false, errors.Wrap(err, errors.ErrInvalidInput, "cannot parse repl command")
	}
	if len(words) == 0 {
		return false, errors.Newf(errors.ErrInvalidInput, MsgErrReplCommand, ":")
	}

	name, args := words[0], words[1:]
	switch name {
	case "quit", "q", "exit":
		return true, nil
	case "show":
		_, err := fmt.Fprintf(s.out, MsgReplBuffer, s.buffer)
		return false, err
	case "set":
		s.buffer = strings.Join(args, " ")
		return false, nil
	case "reset":
		s.buffer = s.initial
		return false, nil
	case "trace":
		if len(args) != 1 || (args[0] != "on" && args[0] != "off") {
			return false, errors.Newf(errors.ErrInvalidInput, MsgErrReplArgs, ":trace", "on or off")
		}
		s.trace = args[0] == "on"
		_, err := fmt.Fprintf(s.out, MsgReplTraceMode, args[0])
		return false, err
	default:
		return false, errors.Newf(errors.ErrInvalidInput, MsgErrReplCommand, ":"+name)
	}
}
