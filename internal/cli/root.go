package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the lineproc CLI.
//
// Without a subcommand the root command processes standard input.
func NewRootCommand() *cobra.Command {
	return newRootCommand(nil)
}

// newRootCommand builds the command tree with an optional run ID generator.
func newRootCommand(runIDs RunIDGenerator) *cobra.Command {
	opts := &RootOptions{}
	procOpts := &ProcessOptions{RootOptions: opts, RunIDs: runIDs}

	cmd := &cobra.Command{
		Use:   "lineproc",
		Short: "Sum two integers and reverse a short word",
		Long: `Read two integers from standard input and print their sum, then read
one word of at most 9 characters and print it reversed.

If the word did not fit, "String is too long" is written to standard error
instead of the reversed word.

Examples:
  printf '3 4\nabc\n' | lineproc
  printf '1 2\nabc\ndef\n' | lineproc --detect direct
  printf '1 2\nabcdefghij\n' | lineproc --format json --fail-on-too-long`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Validate format flag
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			configureLogging(cmd.ErrOrStderr(), opts.Verbose)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(procOpts, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	// Processing flags
	cmd.Flags().StringVar(&procOpts.Detect, "detect", "eof", "too-long detection mode (eof|direct)")
	cmd.Flags().BoolVar(&procOpts.FailOnTooLong, "fail-on-too-long", false, "exit with status 1 when the word is too long")

	// Add subcommands
	cmd.AddCommand(NewCheckCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
