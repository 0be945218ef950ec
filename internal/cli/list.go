package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/kvscope/kvscope/internal/inspector"
)

// ListResult is the JSON payload of the list command.
type ListResult struct {
	Entries []inspector.Entry `json:"entries"`
	Count   int               `json:"count"`
	Total   int               `json:"total_size"`
}

// NewListCommand creates the list command.
func NewListCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all stash entries with their sizes",
		Long: `List every entry in the stash, sorted ascending by key.

Each line shows the key, the stored value, and the serialized size of the
record in bytes (UTF-8 length of key and value together).`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(rootOpts, cmd)
		},
	}
}

func runList(opts *RootOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	in, s, cfg, err := openInspector(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	formatter.VerboseLog("Reading stash at %s", cfg.Store)

	if err := in.Refresh(cmd.Context()); err != nil {
		return WrapExitError(ExitCommandError, "reading stash", err)
	}

	entries := in.Entries()
	result := ListResult{Entries: entries, Count: len(entries)}
	for _, e := range entries {
		result.Total += e.Size
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if len(entries) == 0 {
		fmt.Fprintln(formatter.Writer, "Stash is empty.")
		return nil
	}

	w := tabwriter.NewWriter(formatter.Writer, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tSIZE")
	for _, e := range entries {
		fmt.Fprintf(w, "%s\t%s\t%d B\n", e.Key, e.Value, e.Size)
	}
	if err := w.Flush(); err != nil {
		return err
	}
	fmt.Fprintf(formatter.Writer, "\n%d item(s), %d B total\n", result.Count, result.Total)
	return nil
}
