package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kvscope/kvscope/internal/inspector"
)

// Assert checks a scenario's Expect clause against the run result.
func Assert(t *testing.T, s *Scenario, result *Result) {
	t.Helper()

	if s.Expect.Entries != nil {
		require.Len(t, result.Entries, len(s.Expect.Entries),
			"projection length mismatch in %s", s.Name)
		for i, want := range s.Expect.Entries {
			got := result.Entries[i]
			assert.Equal(t, want.Key, got.Key, "entry %d key in %s", i, s.Name)
			assert.Equal(t, want.Value, got.Value, "entry %d value in %s", i, s.Name)
			if want.Size > 0 {
				assert.Equal(t, want.Size, got.Size, "entry %d size in %s", i, s.Name)
			}
		}
	}

	if s.Expect.BufferRows > 0 {
		assert.Equal(t, s.Expect.BufferRows, result.BufferRows,
			"buffer row count in %s", s.Name)
	}

	if want := s.Expect.Notification; want != nil {
		if want.Severity == "none" {
			assert.Nil(t, result.Notification, "expected no notification in %s", s.Name)
			return
		}
		require.NotNil(t, result.Notification, "expected a notification in %s", s.Name)
		assert.Equal(t, inspector.Severity(want.Severity), result.Notification.Severity,
			"notification severity in %s", s.Name)
		if want.Message != "" {
			assert.Equal(t, want.Message, result.Notification.Message,
				"notification message in %s", s.Name)
		}
	}
}
