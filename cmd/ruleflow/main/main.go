package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ruleflow/cmd/ruleflow"
	"github.com/arthur-debert/ruleflow/pkg/ui/output/styles"
)

func main() {
	rootCmd := ruleflow.NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		errorStyle := styles.GetStyle("Error")
		fmt.Fprintln(os.Stderr, errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		os.Exit(1)
	}
}
