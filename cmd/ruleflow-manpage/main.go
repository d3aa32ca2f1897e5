package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/ruleflow/cmd/ruleflow"
)

func main() {
	if err := ruleflow.GenManPage(ruleflow.NewRootCmd(), os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
