package discovery

import (
	"testing"

	"algocat/internal/check"
	"algocat/internal/registry"
)

func TestScanner_Scan(t *testing.T) {
	reg := registry.New()
	for _, id := range [][2]string{
		{"any_of", "ExampleOne"},
		{"shuffle", "ExampleOne"},
		{"all_of", "ExampleOne"},
		{"shuffle", "ExampleTwo"},
	} {
		if err := reg.Register(id[0], id[1], func(*check.C) {}); err != nil {
			t.Fatalf("register %v: %v", id, err)
		}
	}

	t.Run("skips configured groups", func(t *testing.T) {
		scanner := NewScanner([]string{"shuffle"})
		results := scanner.Scan(reg)
		if len(results) != 2 {
			t.Fatalf("expected 2 cases, got %d", len(results))
		}
		if results[0].ID.Group != "any_of" || results[1].ID.Group != "all_of" {
			t.Errorf("unexpected order: %v, %v", results[0].ID, results[1].ID)
		}
	})

	t.Run("no skip list returns everything", func(t *testing.T) {
		results := NewScanner(nil).Scan(reg)
		if len(results) != 4 {
			t.Errorf("expected 4 cases, got %d", len(results))
		}
	})
}
