package ui

import (
	"testing"

	"github.com/jyang/tripdeck/internal/trip"
)

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate short = %q, want unchanged", got)
	}
	got := truncate("abcdefghij", 6)
	if got != "abcde…" {
		t.Fatalf("truncate = %q, want abcde…", got)
	}
	// Double-width characters count two cells each.
	got = truncate("海雲台海水浴場", 8)
	if got == "海雲台海水浴場" {
		t.Fatalf("expected truncation of wide text")
	}
}

func TestPadTime(t *testing.T) {
	if got := padTime("9:00"); got != "9:00 " {
		t.Fatalf("padTime = %q, want padded to five", got)
	}
	if got := padTime("17:40"); got != "17:40" {
		t.Fatalf("padTime = %q, want unchanged", got)
	}
}

func TestItemGlyph(t *testing.T) {
	if itemGlyph(trip.TypeFlight) == itemGlyph(trip.TypeFood) {
		t.Fatalf("flight and food should render distinct glyphs")
	}
	if got := itemGlyph(trip.ItemType("mystery")); got != "·" {
		t.Fatalf("unknown type glyph = %q, want fallback dot", got)
	}
}

func TestRefLink(t *testing.T) {
	if got := refLink("", 0, 0); got != "#" {
		t.Fatalf("refLink without data = %q, want placeholder", got)
	}
	if got := refLink("12345", 35.1, 129.0); got != "https://map.naver.com/p/entry/place/12345" {
		t.Fatalf("refLink place id = %q", got)
	}
	if got := refLink("", 35.1, 129.0); got != "https://map.naver.com/v5/search/35.1,129" {
		t.Fatalf("refLink coords = %q", got)
	}
}
