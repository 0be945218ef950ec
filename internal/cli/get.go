package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// GetResult is the JSON payload of the get command.
type GetResult struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// NewGetCommand creates the get command.
func NewGetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print the value stored under a key",
		Long: `Print the raw value stored under the given key to stdout.

The value is written verbatim with a trailing newline, suitable for piping
into the clipboard or another tool.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(rootOpts, args[0], cmd)
		},
	}
}

func runGet(opts *RootOptions, key string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	_, s, _, err := openInspector(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	value, ok, err := s.Get(cmd.Context(), key)
	if err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("reading %q", key), err)
	}
	if !ok {
		_ = formatter.Error(fmt.Sprintf("key %q not found", key), nil)
		return NewExitError(ExitFailure, fmt.Sprintf("key %q not found", key))
	}

	if formatter.Format == "json" {
		return formatter.Success(GetResult{Key: key, Value: value})
	}
	fmt.Fprintln(formatter.Writer, value)
	return nil
}
