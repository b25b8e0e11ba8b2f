package responses

import (
	"strings"
	"testing"
)

func TestLoadProvidesAllCategories(t *testing.T) {
	pools, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, cat := range requiredCategories {
		if len(pools.Pool(cat)) == 0 {
			t.Errorf("category %q is empty", cat)
		}
	}
}

func TestRenderSubstitutesPlaceholders(t *testing.T) {
	pools, err := Load(func(n int) int { return 0 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := pools.Render(CategoryCurrent, map[string]string{
		"place":       "Madrid",
		"temperature": "21°C",
		"condition":   "despejado",
	})
	if got != "El tiempo en Madrid ahora mismo es de 21°C con despejado." {
		t.Fatalf("unexpected rendering: %q", got)
	}
}

func TestRenderSelectionFollowsPick(t *testing.T) {
	idx := 0
	pools, err := Load(func(n int) int { return idx % n })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := pools.Render(CategoryYes, nil)
	idx = 1
	second := pools.Render(CategoryYes, nil)
	if first == second {
		t.Fatalf("expected different templates for different picks, got %q twice", first)
	}
}

func TestRenderLeavesUnknownPlaceholdersAlone(t *testing.T) {
	pools, err := Load(func(n int) int { return 0 })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := pools.Render(CategoryCurrent, map[string]string{"place": "Madrid"})
	if !strings.Contains(got, "{temperature}") {
		t.Fatalf("expected unsubstituted placeholder to survive, got %q", got)
	}
}

func TestRenderUnknownCategoryIsEmpty(t *testing.T) {
	pools, err := Load(nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := pools.Render("no_such_category", nil); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
}
