// Package harness runs YAML-defined conformance scenarios against the
// inspector core.
//
// A scenario seeds a stash, drives a sequence of inspector actions (stage,
// save, delete, clear, refresh), and asserts on the resulting projection
// and notification. Scenarios live in testdata/scenarios and double as
// executable documentation of the save/delete/clear semantics.
package harness
