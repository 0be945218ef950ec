package inspector

import "github.com/google/uuid"

// Field names a DraftRow field for UpdateField.
type Field string

const (
	FieldKey   Field = "key"
	FieldValue Field = "value"
)

// DraftRow is an unsaved key/value pair held locally until a save flushes
// it to the store. ID exists only to give rows stable identity for
// rendering and removal; it has no relation to the stored key.
type DraftRow struct {
	ID    string
	Key   string
	Value string
}

// Buffer is the list of draft rows the user edits before a save.
//
// Invariant: the buffer always holds at least one row. It starts with a
// single empty row and RemoveRow refuses to drop the last one.
type Buffer struct {
	rows []DraftRow
}

// NewBuffer creates a Buffer in its initial state: exactly one empty row.
func NewBuffer() *Buffer {
	b := &Buffer{}
	b.Reset()
	return b
}

// Rows returns the draft rows in order. The returned slice is the Buffer's
// own; callers must not mutate it.
func (b *Buffer) Rows() []DraftRow {
	return b.rows
}

// Len returns the number of draft rows.
func (b *Buffer) Len() int {
	return len(b.rows)
}

// AddRow appends a new empty draft row with a fresh id and returns it.
func (b *Buffer) AddRow() DraftRow {
	row := DraftRow{ID: uuid.NewString()}
	b.rows = append(b.rows, row)
	return row
}

// RemoveRow removes the row with the given id. Refuses (returns false)
// when the buffer holds exactly one row, or when no row has that id.
func (b *Buffer) RemoveRow(id string) bool {
	if len(b.rows) <= 1 {
		return false
	}
	for i, row := range b.rows {
		if row.ID == id {
			b.rows = append(b.rows[:i], b.rows[i+1:]...)
			return true
		}
	}
	return false
}

// UpdateField replaces the key or value of the row with the given id,
// verbatim, with no trimming or validation. Returns false when no row has
// that id.
func (b *Buffer) UpdateField(id string, field Field, value string) bool {
	for i := range b.rows {
		if b.rows[i].ID != id {
			continue
		}
		switch field {
		case FieldKey:
			b.rows[i].Key = value
		case FieldValue:
			b.rows[i].Value = value
		default:
			return false
		}
		return true
	}
	return false
}

// Reset returns the buffer to its initial one-empty-row state.
func (b *Buffer) Reset() {
	b.rows = []DraftRow{{ID: uuid.NewString()}}
}
