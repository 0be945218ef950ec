// Package store provides the persistent key/value stash that kvscope
// inspects and edits.
//
// The stash maps string keys to string values with last-write-wins overwrite
// semantics. Two backends implement the Store interface:
//
//   - SQLite: file-backed, survives across runs. This is the default.
//   - Memory: process-local, used by tests and the ":memory:" store path.
//
// Enumeration contract: KeyAt walks entries in insertion order. The order is
// stable between mutations but carries no meaning; callers that need sorted
// output sort on their side.
//
// All operations are synchronous and atomic at the store layer. There is no
// batching primitive - writers issue one Set per entry.
package store
