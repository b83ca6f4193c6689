package ui

import "testing"

func TestThemeByName(t *testing.T) {
	if got := ThemeByName("Night"); got.Name != "Night" {
		t.Fatalf("ThemeByName(Night) = %q", got.Name)
	}
	if got := ThemeByName("nope"); got.Name != themes[0].Name {
		t.Fatalf("unknown theme = %q, want default %q", got.Name, themes[0].Name)
	}
	if got := ThemeByName(""); got.Name != themes[0].Name {
		t.Fatalf("empty theme = %q, want default", got.Name)
	}
}

func TestNextThemeCycles(t *testing.T) {
	seen := map[string]bool{}
	name := themes[0].Name
	for range themes {
		seen[name] = true
		name = NextTheme(name).Name
	}
	if name != themes[0].Name {
		t.Fatalf("cycle did not wrap, ended at %q", name)
	}
	if len(seen) != len(themes) {
		t.Fatalf("cycle visited %d themes, want %d", len(seen), len(themes))
	}
}

func TestTabByKey(t *testing.T) {
	if got := TabByKey("food"); got != TabFood {
		t.Fatalf("TabByKey(food) = %d", got)
	}
	if got := TabByKey("bogus"); got != TabItinerary {
		t.Fatalf("TabByKey(bogus) = %d, want itinerary", got)
	}
}
