package achievements

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 11 {
		t.Errorf("got %d definitions, want 11", c.Len())
	}

	seen := make(map[string]bool)
	for _, d := range c.All() {
		if seen[d.Key] {
			t.Errorf("duplicate key %q", d.Key)
		}
		seen[d.Key] = true
		if d.Name == "" || d.Description == "" {
			t.Errorf("definition %q missing name or description", d.Key)
		}
	}
}

func TestCatalogGet(t *testing.T) {
	c := DefaultCatalog()

	d, ok := c.Get("week_streak")
	if !ok {
		t.Fatal("week_streak not found")
	}
	if d.Category != CategoryStreak {
		t.Errorf("got category %q, want streak", d.Category)
	}
	if d.Requirement.Days == nil || *d.Requirement.Days != 7 {
		t.Errorf("got days %v, want 7", d.Requirement.Days)
	}

	if _, ok := c.Get("no-such-badge"); ok {
		t.Error("expected miss for unknown key")
	}
}

func TestParseCatalog_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "{{"},
		{"not an array", `{"key":"x"}`},
		{
			"missing required field",
			`[{"key":"x","category":"streak","requirement":{"days":1}}]`,
		},
		{
			"unknown requirement field",
			`[{"key":"x","name":"X","category":"streak","requirement":{"minutes":5}}]`,
		},
		{
			"duplicate key",
			`[
				{"key":"x","name":"X","description":"d","icon":"i","category":"streak","requirement":{"days":1}},
				{"key":"x","name":"Y","description":"d","icon":"i","category":"streak","requirement":{"days":2}}
			]`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parseCatalog([]byte(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

func TestParseCatalog_MalformedRequirement(t *testing.T) {
	// A streak badge whose requirement carries no days field is structurally
	// valid JSON but unevaluable.
	input := `[{"key":"x","name":"X","description":"d","icon":"i","category":"streak","requirement":{"topics":3}}]`
	_, err := parseCatalog([]byte(input))
	if err == nil {
		t.Fatal("expected error, got nil")
	}
	var malformed *ErrMalformedRequirement
	if !errors.As(err, &malformed) {
		t.Fatalf("got %T, want *ErrMalformedRequirement", err)
	}
	if malformed.Key != "x" {
		t.Errorf("error carries key %q, want %q", malformed.Key, "x")
	}
}

func TestLoadCatalog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	data := `[{"key":"custom","name":"Custom","description":"d","icon":"i","category":"completion","requirement":{"topics":2}}]`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	c, err := LoadCatalog(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("got %d definitions, want 1", c.Len())
	}

	if _, err := LoadCatalog(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestDefaultCatalog_AllRequirementsEvaluable(t *testing.T) {
	// Every shipped definition must be awardable by some reachable stats
	// snapshot; generous stats should satisfy the whole catalog.
	generous := Stats{
		TotalStudyDays:    1000,
		CompletedTopics:   1000,
		AvgTestScore:      100,
		PerfectScoreCount: 1000,
	}
	for _, d := range DefaultCatalog().All() {
		if !Met(d, generous, 1000) {
			t.Errorf("definition %q unsatisfiable", d.Key)
		}
	}
}
