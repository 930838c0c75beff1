// Command lineproc sums two integers read from standard input and prints a
// short word reversed.
package main

import (
	"fmt"
	"os"

	"github.com/roach88/lineproc/internal/cli"
)

func main() {
	cmd := cli.NewRootCommand()
	if err := cmd.Execute(); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintf(os.Stderr, "Error: %s\n", msg)
		}
		os.Exit(cli.GetExitCode(err))
	}
}
