package harness

import (
	"context"
	"fmt"

	"github.com/kvscope/kvscope/internal/inspector"
	"github.com/kvscope/kvscope/internal/store"
	"github.com/kvscope/kvscope/internal/testutil"
)

// Result captures the final state after a scenario run.
type Result struct {
	Entries      []inspector.Entry
	BufferRows   int
	Notification *inspector.Notification
}

// Run executes a scenario against a fresh memory stash and returns the
// final state. The notifier runs on a fake clock, so notifications never
// dismiss mid-run.
func Run(s *Scenario) (*Result, error) {
	ctx := context.Background()
	stash := store.NewMemory()
	in := inspector.New(stash, inspector.WithClock(testutil.NewFakeClock()))

	for _, seed := range s.Seed {
		if err := stash.Set(ctx, seed.Key, seed.Value); err != nil {
			return nil, fmt.Errorf("scenario %s: seed %q: %w", s.Name, seed.Key, err)
		}
	}
	if err := in.Refresh(ctx); err != nil {
		return nil, fmt.Errorf("scenario %s: initial refresh: %w", s.Name, err)
	}

	for i, step := range s.Flow {
		if err := apply(ctx, in, step); err != nil {
			return nil, fmt.Errorf("scenario %s: flow[%d] %s: %w", s.Name, i, step.Action, err)
		}
	}

	result := &Result{
		Entries:    in.Entries(),
		BufferRows: in.Buffer().Len(),
	}
	if note, ok := in.Notification(); ok {
		result.Notification = &note
	}
	return result, nil
}

// apply executes one flow step.
func apply(ctx context.Context, in *inspector.Inspector, step ActionStep) error {
	switch step.Action {
	case "stage":
		b := in.Buffer()
		rows := b.Rows()
		row := rows[len(rows)-1]
		if row.Key != "" || row.Value != "" {
			row = b.AddRow()
		}
		b.UpdateField(row.ID, inspector.FieldKey, step.Key)
		b.UpdateField(row.ID, inspector.FieldValue, step.Value)
		return nil
	case "save":
		_, err := in.Save(ctx)
		return err
	case "delete":
		return in.DeleteItem(ctx, step.Key)
	case "clear":
		granted := step.Confirm == nil || *step.Confirm
		_, err := in.ClearAll(ctx, func() bool { return granted })
		return err
	case "refresh":
		return in.Refresh(ctx)
	default:
		return fmt.Errorf("unknown action %q", step.Action)
	}
}
