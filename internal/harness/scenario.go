package harness

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Scenario defines a conformance test scenario for the inspector core.
// Scenarios seed the stash, drive a flow of actions, and assert on the
// resulting projection and notification.
type Scenario struct {
	// Name uniquely identifies this scenario.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Seed contains entries written directly to the stash before the flow.
	Seed []SeedEntry `yaml:"seed,omitempty"`

	// Flow contains the actions to drive, in order.
	Flow []ActionStep `yaml:"flow"`

	// Expect validates the state after the flow completes.
	Expect ExpectClause `yaml:"expect"`
}

// SeedEntry is one pre-existing stash entry.
type SeedEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
}

// ActionStep is a single inspector action.
//
// Supported actions:
//   - stage:   puts key/value into the next free draft row
//   - save:    flushes the buffer to the stash
//   - delete:  removes one key (args: key)
//   - clear:   clears the stash (args: confirm true|false, default true)
//   - refresh: rebuilds the projection
type ActionStep struct {
	Action string `yaml:"action"`

	Key     string `yaml:"key,omitempty"`
	Value   string `yaml:"value,omitempty"`
	Confirm *bool  `yaml:"confirm,omitempty"`
}

// ExpectClause specifies the expected final state.
type ExpectClause struct {
	// Entries is the full expected projection in order. A nil slice skips
	// the check; an empty slice asserts an empty projection.
	Entries []ExpectedEntry `yaml:"entries"`

	// BufferRows is the expected draft row count (0 skips the check).
	BufferRows int `yaml:"buffer_rows,omitempty"`

	// Notification matches the visible notification, if specified.
	Notification *ExpectedNotification `yaml:"notification,omitempty"`
}

// ExpectedEntry is one expected projection row. A zero Size skips the
// size check.
type ExpectedEntry struct {
	Key   string `yaml:"key"`
	Value string `yaml:"value"`
	Size  int    `yaml:"size,omitempty"`
}

// ExpectedNotification matches the notification slot.
type ExpectedNotification struct {
	Message  string `yaml:"message,omitempty"`
	Severity string `yaml:"severity"`
}

// LoadScenario reads and validates a single scenario file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}

	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("invalid scenario %s: %w", path, err)
	}
	return &s, nil
}

// LoadScenarios reads every *.yaml scenario under dir, sorted by filename
// for deterministic ordering.
func LoadScenarios(dir string) ([]*Scenario, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return nil, fmt.Errorf("glob scenarios: %w", err)
	}
	if len(matches) == 0 {
		return nil, fmt.Errorf("no scenario files in %s", dir)
	}
	sort.Strings(matches)

	scenarios := make([]*Scenario, 0, len(matches))
	for _, path := range matches {
		s, err := LoadScenario(path)
		if err != nil {
			return nil, err
		}
		scenarios = append(scenarios, s)
	}
	return scenarios, nil
}

// Validate checks structural requirements before a scenario runs.
func (s *Scenario) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return fmt.Errorf("scenario name is required")
	}

	valid := map[string]bool{
		"stage": true, "save": true, "delete": true, "clear": true, "refresh": true,
	}
	for i, step := range s.Flow {
		if !valid[step.Action] {
			return fmt.Errorf("flow[%d]: unknown action %q", i, step.Action)
		}
		if step.Action == "delete" && step.Key == "" {
			return fmt.Errorf("flow[%d]: delete requires a key", i)
		}
	}

	if s.Expect.Notification != nil {
		switch s.Expect.Notification.Severity {
		case "success", "error", "none":
		default:
			return fmt.Errorf("expect.notification.severity must be success, error, or none")
		}
	}
	return nil
}
