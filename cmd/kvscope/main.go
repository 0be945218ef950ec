// Command kvscope inspects and edits a persistent key/value stash from the
// terminal: list entries with their serialized sizes, stage and save draft
// entries, delete single keys, clear the whole stash, or ask a generative
// service for sample entries.
package main

import (
	"fmt"
	"os"

	"github.com/kvscope/kvscope/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(cli.GetExitCode(err))
	}
}
