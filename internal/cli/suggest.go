package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/kvscope/kvscope/internal/inspector"
	"github.com/kvscope/kvscope/internal/suggest"
)

// SuggestResult is the JSON payload of the suggest command.
type SuggestResult struct {
	Suggestions []suggest.Pair `json:"suggestions"`
	Applied     int            `json:"applied"`
}

// SuggestOptions holds flags for the suggest command.
type SuggestOptions struct {
	*RootOptions
	Count    int
	Apply    bool
	Endpoint string // overrides the config file's endpoint
}

// NewSuggestCommand creates the suggest command.
func NewSuggestCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SuggestOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Ask the generative service for sample entries",
		Long: `Ask the configured generative service for sample key/value pairs.

By default the suggestions are only printed. With --apply they are staged
into a draft buffer and saved to the stash in one batch. A response the
service returns but that cannot be parsed is treated as "no suggestions".`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSuggest(opts, cmd)
		},
	}

	cmd.Flags().IntVarP(&opts.Count, "count", "n", 5, "number of suggestions to request")
	cmd.Flags().BoolVar(&opts.Apply, "apply", false, "save the suggestions to the stash")
	cmd.Flags().StringVar(&opts.Endpoint, "endpoint", "", "suggestion service URL (overrides config)")

	return cmd
}

func runSuggest(opts *SuggestOptions, cmd *cobra.Command) error {
	formatter := newFormatter(opts.RootOptions, cmd)

	in, s, cfg, err := openInspector(opts.RootOptions)
	if err != nil {
		return err
	}
	defer s.Close()

	endpoint := cfg.Suggest.Endpoint
	if opts.Endpoint != "" {
		endpoint = opts.Endpoint
	}
	if endpoint == "" {
		return NewExitError(ExitCommandError, "no suggestion endpoint configured (set suggest.endpoint in config or pass --endpoint)")
	}
	if opts.Count < 1 {
		return NewExitError(ExitCommandError, fmt.Sprintf("invalid count %d: must be at least 1", opts.Count))
	}

	client := suggest.NewClient(endpoint, cfg.Suggest.Model, cfg.APIKey())

	formatter.VerboseLog("Requesting %d suggestion(s) from %s", opts.Count, endpoint)

	pairs, err := client.Suggest(cmd.Context(), opts.Count)
	if err != nil {
		return WrapExitError(ExitCommandError, "fetching suggestions", err)
	}

	result := SuggestResult{Suggestions: pairs}

	if opts.Apply && len(pairs) > 0 {
		b := in.Buffer()
		for i, pair := range pairs {
			var row inspector.DraftRow
			if i == 0 {
				row = b.Rows()[0]
			} else {
				row = b.AddRow()
			}
			b.UpdateField(row.ID, inspector.FieldKey, pair.Key)
			b.UpdateField(row.ID, inspector.FieldValue, pair.Value)
		}
		written, err := in.Save(cmd.Context())
		if err != nil {
			return WrapExitError(ExitCommandError, "saving suggestions", err)
		}
		result.Applied = written
	}

	if formatter.Format == "json" {
		return formatter.Success(result)
	}

	if len(pairs) == 0 {
		fmt.Fprintln(formatter.Writer, "No suggestions.")
		return nil
	}
	for _, pair := range pairs {
		fmt.Fprintf(formatter.Writer, "%s=%s\n", pair.Key, pair.Value)
	}
	reportNotification(formatter, in)
	return nil
}
