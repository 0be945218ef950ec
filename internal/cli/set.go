package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/kvscope/kvscope/internal/inspector"
)

// SetResult is the JSON payload of the set command.
type SetResult struct {
	Written int    `json:"written"`
	Message string `json:"message"`
}

// NewSetCommand creates the set command.
func NewSetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key=value> [key=value...]",
		Short: "Stage entries as drafts and save them to the stash",
		Long: `Stage each key=value argument as a draft row and save the batch.

Save semantics follow the edit buffer: keys are trimmed of surrounding
whitespace, values are written verbatim, and rows whose key trims to empty
are silently skipped. Duplicate keys are written in argument order, so the
last one wins. If nothing qualifies the command fails and writes nothing.`,
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(rootOpts, args, cmd)
		},
	}
}

func runSet(opts *RootOptions, args []string, cmd *cobra.Command) error {
	formatter := newFormatter(opts, cmd)

	in, s, _, err := openInspector(opts)
	if err != nil {
		return err
	}
	defer s.Close()

	stageDrafts(in.Buffer(), args)

	written, err := in.Save(cmd.Context())
	if err != nil {
		return WrapExitError(ExitCommandError, "saving to stash", err)
	}

	note, _ := in.Notification()
	if written == 0 {
		_ = formatter.Error(note.Message, nil)
		return NewExitError(ExitFailure, note.Message)
	}

	if formatter.Format == "json" {
		return formatter.Success(SetResult{Written: written, Message: note.Message})
	}
	reportNotification(formatter, in)
	return nil
}

// stageDrafts fills the buffer with one draft row per key=value argument.
// An argument without '=' becomes a key with an empty value. The buffer's
// initial empty row takes the first argument.
func stageDrafts(b *inspector.Buffer, args []string) {
	for i, arg := range args {
		key, value, _ := strings.Cut(arg, "=")

		var row inspector.DraftRow
		if i == 0 {
			row = b.Rows()[0]
		} else {
			row = b.AddRow()
		}
		b.UpdateField(row.ID, inspector.FieldKey, key)
		b.UpdateField(row.ID, inspector.FieldValue, value)
	}
}
