// Package inspector implements the core synchronization loop between a
// draft edit buffer, a persistent key/value stash, and a read-only sorted
// projection of the stash contents.
//
// Three pieces compose the core:
//
//   - Mirror: rebuilds the sorted projection from the store on demand.
//     Full rescan every time; the store offers no change notifications, so
//     a wholesale re-read is the correctness baseline.
//   - Buffer: locally-held draft rows, untouched by store access until a
//     save flushes the qualifying rows in one batch.
//   - Notifier: a single-slot ephemeral notification with auto-dismissal.
//
// The Inspector ties them together: every mutating operation (save, delete,
// clear) writes to the store and then triggers a Mirror refresh, so the
// projection immediately after any operation reflects the store exactly.
// Nothing watches for external mutations; a stash changed by another process
// shows stale until the next refresh.
package inspector
