package glyph

import (
	"testing"

	"tableflip.dev/todos/pkg/entry"
)

func TestForStatusCoversEveryStatus(t *testing.T) {
	seen := map[string]bool{}
	for _, s := range entry.Statuses() {
		g := ForStatus(s)
		if g.Symbol == "" || g.Symbol == "?" {
			t.Fatalf("status %s has no glyph", s)
		}
		if seen[g.Symbol] {
			t.Fatalf("symbol %q reused", g.Symbol)
		}
		seen[g.Symbol] = true
	}
}

func TestForStatusUnknown(t *testing.T) {
	if g := ForStatus(entry.Status(42)); g.Symbol != "?" {
		t.Fatalf("expected fallback glyph, got %q", g.Symbol)
	}
}
