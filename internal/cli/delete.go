package cli

import (
	"bufio"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

// DeleteResult is the JSON payload of the delete command.
type DeleteResult struct {
	Key     string `json:"key"`
	Message string `json:"message"`
}

// NewDeleteCommand creates the delete command.
func NewDeleteCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a single entry from the stash",
		Long: `Delete the entry with the given key.

Deleting a key that does not exist still succeeds - removal of an absent
key is a no-op at the store level.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDelete(rootOpts, args[0], cmd)
		},
	}
}

func runDelete(opts *RootOptions, key string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	in, s, _, err := openInspector(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	if err := in.DeleteItem(cmd.Context(), key); err != nil {
		return WrapExitError(ExitCommandError, fmt.Sprintf("deleting %q", key), err)
	}

	note, _ := in.Notification()
	if formatter.Format == "json" {
		return formatter.Success(DeleteResult{Key: key, Message: note.Message})
	}
	reportNotification(formatter, in)
	return nil
}

// ClearResult is the JSON payload of the clear command.
type ClearResult struct {
	Cleared bool   `json:"cleared"`
	Message string `json:"message,omitempty"`
}

// ClearOptions holds flags for the clear command.
type ClearOptions struct {
	*RootOptions
	Yes bool // skip the interactive confirmation
}

// NewClearCommand creates the clear command.
func NewClearCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ClearOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Delete every entry from the stash",
		Long: `Irreversibly delete every entry from the stash.

Asks for confirmation on stdin unless --yes is given. A declined
confirmation aborts silently with a zero exit code.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runClear(opts, cmd)
		},
	}

	cmd.Flags().BoolVarP(&opts.Yes, "yes", "y", false, "clear without asking for confirmation")

	return cmd
}

func runClear(opts *ClearOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	in, s, _, err := openInspector(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	confirm := func() bool { return true }
	if !opts.Yes {
		n, err := s.Count(cmd.Context())
		if err != nil {
			return WrapExitError(ExitCommandError, "reading stash", err)
		}
		confirm = func() bool {
			fmt.Fprintf(cmd.ErrOrStderr(), "Delete all %d item(s)? This cannot be undone. [y/N] ", n)
			reader := bufio.NewReader(cmd.InOrStdin())
			line, err := reader.ReadString('\n')
			if err != nil {
				return false
			}
			answer := strings.ToLower(strings.TrimSpace(line))
			return answer == "y" || answer == "yes"
		}
	}

	cleared, err := in.ClearAll(cmd.Context(), confirm)
	if err != nil {
		return WrapExitError(ExitCommandError, "clearing stash", err)
	}

	if formatter.Format == "json" {
		result := ClearResult{Cleared: cleared}
		if note, ok := in.Notification(); ok {
			result.Message = note.Message
		}
		return formatter.Success(result)
	}

	// Declined confirmation aborts silently.
	reportNotification(formatter, in)
	return nil
}
