package syllabus

import (
	"os"
	"path/filepath"
	"testing"
)

func TestAllTopics_Count(t *testing.T) {
	all := AllTopics()
	if len(all) != 14 {
		t.Errorf("got %d topics, want 14", len(all))
	}
	if TopicCount() != len(all) {
		t.Errorf("TopicCount() = %d, want %d", TopicCount(), len(all))
	}
}

func TestAllTopics_DocumentOrder(t *testing.T) {
	all := AllTopics()
	if all[0].ID != "geo-earth-overview" {
		t.Errorf("got first topic %q, want geo-earth-overview", all[0].ID)
	}
	for i, ref := range all {
		if ref.DocIndex != i {
			t.Errorf("topic %q has DocIndex %d at position %d", ref.ID, ref.DocIndex, i)
		}
	}
}

func TestGetTopic(t *testing.T) {
	ref, err := GetTopic("civ-three-branches")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ref.Title != "The Three Branches of Government" {
		t.Errorf("got title %q", ref.Title)
	}
	if ref.Category != "Civics" {
		t.Errorf("got category %q, want Civics", ref.Category)
	}
	if ref.SubCategory != "Government and Law" {
		t.Errorf("got sub-category %q, want Government and Law", ref.SubCategory)
	}

	if _, err := GetTopic("nonexistent"); err == nil {
		t.Fatal("expected error for nonexistent topic, got nil")
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"not json", "{{"},
		{"missing name", `{"categories":[]}`},
		{"no topics", `{"name":"Empty","categories":[]}`},
		{
			"duplicate topic ID",
			`{"name":"S","categories":[{"name":"C","sub_categories":[{"name":"SC","sub_sub_categories":[
				{"name":"SSC","topics":[{"id":"x","title":"A"},{"id":"x","title":"B"}]}]}]}]}`,
		},
		{
			"empty topic title",
			`{"name":"S","categories":[{"name":"C","sub_categories":[{"name":"SC","sub_sub_categories":[
				{"name":"SSC","topics":[{"id":"x","title":""}]}]}]}]}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parse([]byte(tt.input)); err == nil {
				t.Error("expected error, got nil")
			}
		})
	}
}

// restoreDefault reloads the embedded curriculum so later tests see it.
func restoreDefault(tb testing.TB) {
	tb.Helper()
	tr, err := parse(defaultSyllabus)
	if err != nil {
		tb.Fatal(err)
	}
	t = tr
}

func TestLoadFile(t *testing.T) {
	defer restoreDefault(t)

	path := filepath.Join(t.TempDir(), "syllabus.json")
	data := `{"name":"Custom","categories":[{"name":"C","sub_categories":[{"name":"SC","sub_sub_categories":[
		{"name":"SSC","topics":[{"id":"only-topic","title":"Only Topic"}]}]}]}]}`
	if err := os.WriteFile(path, []byte(data), 0600); err != nil {
		t.Fatal(err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if TopicCount() != 1 {
		t.Errorf("got %d topics after load, want 1", TopicCount())
	}
	if Current().Name != "Custom" {
		t.Errorf("got syllabus name %q, want Custom", Current().Name)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}
}
