package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiskvRoundTrip(t *testing.T) {
	ctx := context.Background()
	base := t.TempDir()
	b, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer b.Close()

	if _, err := b.Get(ctx, DefaultKey); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	g := NewGateway(b, DefaultKey, nil)
	want := sampleEntries()
	if err := g.Save(ctx, want); err != nil {
		t.Fatalf("save: %v", err)
	}
	if _, err := os.Stat(filepath.Join(base, DefaultKey)); err != nil {
		t.Fatalf("expected slot file: %v", err)
	}

	// A second handle on the same directory sees the write.
	other, err := NewDiskv(base)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer other.Close()
	got, ok := NewGateway(other, DefaultKey, nil).Load(ctx)
	if !ok {
		t.Fatalf("load reported nothing stored")
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("round trip (-want +got):\n%s", diff)
	}

	if err := other.Set(ctx, DefaultKey, []byte("[]")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	got, ok = g.Load(ctx)
	if !ok || len(got) != 0 {
		t.Fatalf("first handle should see overwrite, got %v", got)
	}
}

func TestDiskvRequiresPath(t *testing.T) {
	if _, err := NewDiskv(""); err == nil {
		t.Fatalf("expected error for empty base path")
	}
}
