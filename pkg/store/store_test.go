package store

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"tableflip.dev/todos/pkg/entry"
)

func sampleEntries() []entry.Entry {
	return []entry.Entry{
		{Description: "buy milk", Status: entry.New},
		{Description: "write report", Status: entry.Completed},
		{Description: "call mom", Status: entry.Editing},
		{Description: "", Status: entry.New},
	}
}

func TestGatewayRoundTrip(t *testing.T) {
	ctx := context.Background()
	g := NewGateway(NewMemory(), DefaultKey, nil)

	want := sampleEntries()
	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	got, ok := g.Load(ctx)
	if !ok {
		t.Fatalf("load reported nothing stored")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}
}

func TestGatewaySaveOverwrites(t *testing.T) {
	ctx := context.Background()
	g := NewGateway(NewMemory(), DefaultKey, nil)
	if err := g.Save(ctx, sampleEntries()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := g.Save(ctx, nil); err != nil {
		t.Fatalf("save empty: %v", err)
	}
	got, ok := g.Load(ctx)
	if !ok || len(got) != 0 {
		t.Fatalf("expected stored empty list, got %v ok=%v", got, ok)
	}
}

func TestGatewayLoadMissing(t *testing.T) {
	g := NewGateway(NewMemory(), DefaultKey, nil)
	if got, ok := g.Load(context.Background()); ok || got != nil {
		t.Fatalf("expected nothing, got %v ok=%v", got, ok)
	}
}

func TestGatewayLoadMalformed(t *testing.T) {
	ctx := context.Background()
	for name, blob := range map[string]string{
		"garbage":        "not json",
		"object":         `{"description":"x"}`,
		"null":           `null`,
		"unknown status": `[{"description":"x","status":"Archived"}]`,
		"truncated":      `[{"description":"x","status":"New"}`,
	} {
		t.Run(name, func(t *testing.T) {
			m := NewMemory()
			_ = m.Set(ctx, DefaultKey, []byte(blob))
			g := NewGateway(m, DefaultKey, nil)
			if got, ok := g.Load(ctx); ok {
				t.Fatalf("expected malformed slot to be ignored, got %v", got)
			}
		})
	}
}

func TestGatewayUsesItsKey(t *testing.T) {
	ctx := context.Background()
	m := NewMemory()
	a := NewGateway(m, "a", nil)
	b := NewGateway(m, "b", nil)
	if err := a.Save(ctx, sampleEntries()); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, ok := b.Load(ctx); ok {
		t.Fatalf("slot b should be empty")
	}
	if a.Key() != "a" {
		t.Fatalf("Key() = %q", a.Key())
	}
}

func TestEncodeLayout(t *testing.T) {
	data, err := Encode([]entry.Entry{{Description: "x", Status: entry.Editing}})
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	if want := `[{"description":"x","status":"Editing"}]`; string(data) != want {
		t.Fatalf("got %s, want %s", data, want)
	}
	data, _ = Encode(nil)
	if string(data) != "[]" {
		t.Fatalf("nil should encode as empty list, got %s", data)
	}
}

func TestGatewayWatchUnsupported(t *testing.T) {
	g := NewGateway(NewMemory(), DefaultKey, nil)
	if _, err := g.Watch(context.Background()); err != ErrWatchUnsupported {
		t.Fatalf("expected ErrWatchUnsupported, got %v", err)
	}
}
