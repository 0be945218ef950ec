package inspector

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kvscope/kvscope/internal/store"
)

// Option configures an Inspector after default initialization.
type Option func(*Inspector)

// WithNotificationTTL overrides the notification auto-dismiss delay.
func WithNotificationTTL(ttl time.Duration) Option {
	return func(in *Inspector) { in.notifier = NewNotifier(ttl) }
}

// WithClock rebuilds the notifier on the given clock. Test override.
func WithClock(clock Clock) Option {
	return func(in *Inspector) { in.notifier = NewNotifierWithClock(in.notifier.ttl, clock) }
}

// WithLogger overrides the default logger.
func WithLogger(logger *slog.Logger) Option {
	return func(in *Inspector) { in.logger = logger }
}

// Inspector orchestrates the edit buffer, the stash, and the projection.
// All methods run to completion on the calling goroutine; the only
// asynchronous piece is the notification dismissal timer.
type Inspector struct {
	store    store.Store
	mirror   *Mirror
	buffer   *Buffer
	notifier *Notifier
	logger   *slog.Logger
}

// New creates an Inspector over the given store.
func New(s store.Store, opts ...Option) *Inspector {
	in := &Inspector{
		store:    s,
		mirror:   NewMirror(),
		buffer:   NewBuffer(),
		notifier: NewNotifier(DefaultNotificationTTL),
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

// Refresh rebuilds the projection from the store.
func (in *Inspector) Refresh(ctx context.Context) error {
	return in.mirror.Refresh(ctx, in.store)
}

// Entries returns the current projection, sorted ascending by key as of
// the last refresh.
func (in *Inspector) Entries() []Entry {
	return in.mirror.Entries()
}

// Buffer returns the draft row buffer for direct editing.
func (in *Inspector) Buffer() *Buffer {
	return in.buffer
}

// Notification returns the currently visible notification, if any.
func (in *Inspector) Notification() (Notification, bool) {
	return in.notifier.Current()
}

// Save writes every buffer row whose trimmed key is non-empty to the store
// in buffer order (duplicate keys: last write wins). Values are written
// verbatim, untrimmed.
//
// If at least one row was written, Save emits a success notification,
// refreshes the projection, and resets the buffer to one empty row. If no
// row qualified, it emits an error notification and leaves the drafts
// untouched. Returns the number of rows written.
func (in *Inspector) Save(ctx context.Context) (int, error) {
	written := 0
	for _, row := range in.buffer.Rows() {
		key := strings.TrimSpace(row.Key)
		if key == "" {
			continue
		}
		if err := in.store.Set(ctx, key, row.Value); err != nil {
			return written, fmt.Errorf("save: %w", err)
		}
		written++
	}

	if written == 0 {
		in.notifier.Notify("Nothing to save - enter at least one key", SeverityError)
		return 0, nil
	}

	in.notifier.Notify(fmt.Sprintf("Successfully saved %d item(s)", written), SeveritySuccess)
	if err := in.Refresh(ctx); err != nil {
		return written, err
	}
	in.buffer.Reset()

	in.logger.Debug("saved buffer", "written", written)
	return written, nil
}

// DeleteItem removes the entry with the given key from the store,
// refreshes the projection, and emits a success notification naming the
// key. Removing an absent key still succeeds (store-level no-op).
func (in *Inspector) DeleteItem(ctx context.Context, key string) error {
	if err := in.store.Remove(ctx, key); err != nil {
		return fmt.Errorf("delete %q: %w", key, err)
	}
	if err := in.Refresh(ctx); err != nil {
		return err
	}

	in.notifier.Notify(fmt.Sprintf("Deleted %q", key), SeveritySuccess)
	in.logger.Debug("deleted entry", "key", key)
	return nil
}

// ClearAll irreversibly removes every entry from the store, gated on the
// confirm decision supplied by the presentation layer. A declined
// confirmation aborts silently with no notification. Returns whether the
// clear actually ran.
func (in *Inspector) ClearAll(ctx context.Context, confirm func() bool) (bool, error) {
	if confirm != nil && !confirm() {
		return false, nil
	}

	if err := in.store.Clear(ctx); err != nil {
		return false, fmt.Errorf("clear: %w", err)
	}
	if err := in.Refresh(ctx); err != nil {
		return true, err
	}

	in.notifier.Notify("Cleared all items", SeveritySuccess)
	in.logger.Debug("cleared stash")
	return true, nil
}
