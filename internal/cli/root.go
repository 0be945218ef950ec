// Package cli builds the kvscope command tree: the presentation layer over
// the inspector core.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/kvscope/kvscope/internal/config"
	"github.com/kvscope/kvscope/internal/inspector"
	"github.com/kvscope/kvscope/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose    bool
	Format     string // "json" | "text"
	StorePath  string // overrides the config file's store path
	ConfigPath string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the kvscope CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "kvscope",
		Short: "kvscope - key/value stash inspector",
		Long:  "Inspect and edit a persistent key/value stash: list entries with their sizes, stage and save drafts, delete keys, or clear everything.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			level := slog.LevelWarn
			if opts.Verbose {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.StorePath, "store", "", "stash path (overrides config; \":memory:\" for ephemeral)")
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", defaultConfigPath(), "config file path")

	// Add subcommands
	cmd.AddCommand(NewListCommand(opts))
	cmd.AddCommand(NewGetCommand(opts))
	cmd.AddCommand(NewSetCommand(opts))
	cmd.AddCommand(NewDeleteCommand(opts))
	cmd.AddCommand(NewClearCommand(opts))
	cmd.AddCommand(NewSuggestCommand(opts))

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

// defaultConfigPath returns ~/.kvscope/config.yaml, or a relative fallback
// when the home directory is unknown.
func defaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return home + "/.kvscope/config.yaml"
}

// openInspector loads config, applies flag overrides, opens the stash, and
// builds the inspector. The caller must Close the returned store.
func openInspector(opts *RootOptions) (*inspector.Inspector, store.Store, *config.Config, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, nil, nil, WrapExitError(ExitCommandError, "loading config", err)
	}
	if opts.StorePath != "" {
		cfg.Store = opts.StorePath
	}

	s, err := store.Open(cfg.Store)
	if err != nil {
		return nil, nil, nil, WrapExitError(ExitCommandError, fmt.Sprintf("opening stash %q", cfg.Store), err)
	}

	in := inspector.New(s, inspector.WithNotificationTTL(cfg.NotifyTTL.Std()))
	return in, s, cfg, nil
}

// newFormatter builds the OutputFormatter for a command invocation.
func newFormatter(opts *RootOptions, cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    opts.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   opts.Verbose,
	}
}

// reportNotification prints the inspector's current notification in text
// mode. JSON mode carries the notification inside the payload instead.
func reportNotification(f *OutputFormatter, in *inspector.Inspector) {
	note, ok := in.Notification()
	if !ok || f.Format == "json" {
		return
	}
	switch note.Severity {
	case inspector.SeverityError:
		fmt.Fprintf(f.Writer, "✗ %s\n", note.Message)
	default:
		fmt.Fprintf(f.Writer, "✓ %s\n", note.Message)
	}
}
