package ruleflow

import (
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/cobra/doc"

	"github.com/arthur-debert/ruleflow/internal/version"
)

func newManCmd() *cobra.Command {
	return &cobra.Command{
		Use:     "man",
		Short:   MsgManShort,
		Args:    cobra.NoArgs,
		Hidden:  true,
		GroupID: "misc",
		RunE: func(cmd *cobra.Command, args []string) error {
			return GenManPage(cmd.Root(), cmd.OutOrStdout())
		},
	}
}

// GenManPage writes the section 1 man page for rootCmd
func GenManPage(rootCmd *cobra.Command, w io.Writer) error {
	header := &doc.GenManHeader{
		Title:   "RULEFLOW",
		Section: "1",
		Source:  "ruleflow " + version.Version,
		Manual:  "ruleflow manual",
	}
	return doc.GenMan(rootCmd, header, w)
}
