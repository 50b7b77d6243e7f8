package memory

import (
	"context"
	"testing"
)

func TestStore(t *testing.T) {
	ctx := context.Background()
	s := New()

	if _, ok, err := s.Get(ctx, "missing"); err != nil || ok {
		t.Fatalf("Get(missing) = ok %v, err %v; want absent", ok, err)
	}

	if err := s.Set(ctx, "k", "v1"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}
	if err := s.Set(ctx, "k", "v2"); err != nil {
		t.Fatalf("Set failed: %v", err)
	}

	v, ok, err := s.Get(ctx, "k")
	if err != nil || !ok || v != "v2" {
		t.Errorf("Get(k) = %q, %v, %v; want v2, true, nil", v, ok, err)
	}
	if s.Writes() != 2 {
		t.Errorf("Writes() = %d, want 2", s.Writes())
	}

	dump := s.Dump()
	dump["k"] = "mutated"
	if v, _, _ := s.Get(ctx, "k"); v != "v2" {
		t.Errorf("Dump leaked internal map: got %q", v)
	}
}
