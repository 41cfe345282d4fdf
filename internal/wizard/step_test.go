package wizard

import (
	"reflect"
	"testing"
)

func stepIDs[V any](steps []Step[V]) []string {
	ids := make([]string, len(steps))
	for i, s := range steps {
		ids[i] = s.ID
	}
	return ids
}

func TestNormalize(t *testing.T) {
	t.Parallel()

	s1 := Step[string]{ID: "s1", Title: "One"}
	s2 := Step[string]{ID: "s2", Title: "Two"}

	t.Run("bare and structured yield same steps", func(t *testing.T) {
		t.Parallel()
		bare := Normalize[string](Steps[string]{s1, s2})
		structured := Normalize[string](Config[string]{Steps: []Step[string]{s1, s2}})

		if !reflect.DeepEqual(stepIDs(bare.Steps), stepIDs(structured.Steps)) {
			t.Errorf("bare %v != structured %v", stepIDs(bare.Steps), stepIDs(structured.Steps))
		}
		if len(bare.Steps) != 2 {
			t.Errorf("len = %d, want 2", len(bare.Steps))
		}
		if bare.Header != nil || bare.Footer != nil {
			t.Error("bare config should have no header or footer")
		}
	})

	t.Run("structured keeps header and footer", func(t *testing.T) {
		t.Parallel()
		cfg := Normalize[string](Config[string]{
			Header: func(Context) string { return "h" },
			Steps:  []Step[string]{s1},
			Footer: func(Context) string { return "f" },
		})
		if cfg.Header == nil || cfg.Footer == nil {
			t.Fatal("header/footer dropped")
		}
		if cfg.Header(Context{}) != "h" || cfg.Footer(Context{}) != "f" {
			t.Error("header/footer renderers swapped or replaced")
		}
	})

	t.Run("copies step slice", func(t *testing.T) {
		t.Parallel()
		steps := Steps[string]{s1, s2}
		cfg := Normalize[string](steps)
		steps[0] = Step[string]{ID: "mutated"}
		if cfg.Steps[0].ID != "s1" {
			t.Errorf("Steps[0].ID = %q, want s1", cfg.Steps[0].ID)
		}
	})

	t.Run("nil definition", func(t *testing.T) {
		t.Parallel()
		cfg := Normalize[string](nil)
		if len(cfg.Steps) != 0 {
			t.Errorf("len = %d, want 0", len(cfg.Steps))
		}
	})
}

func TestStep_KeyAndDisplayID(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		step      Step[string]
		key       string
		displayID string
	}{
		{"both set", Step[string]{ID: "id", Title: "Title"}, "id", "Title"},
		{"id only", Step[string]{ID: "id"}, "id", "id"},
		{"title only", Step[string]{Title: "Title"}, "Title", "Title"},
		{"neither", Step[string]{}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := tt.step.Key(); got != tt.key {
				t.Errorf("Key() = %q, want %q", got, tt.key)
			}
			if got := tt.step.DisplayID(); got != tt.displayID {
				t.Errorf("DisplayID() = %q, want %q", got, tt.displayID)
			}
		})
	}
}
