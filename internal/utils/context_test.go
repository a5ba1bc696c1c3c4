package utils

import (
	"context"
	"testing"

	"github.com/google/uuid"
)

func TestUsernameContext(t *testing.T) {
	if UsernameCtxKey.String() != "username" {
		t.Errorf("unexpected key %q", UsernameCtxKey.String())
	}

	ctx := WithUsername(context.Background(), "alice")
	username, ok := GetUsernameFromContext(ctx)
	if !ok || username != "alice" {
		t.Errorf("expected alice, got %q (%v)", username, ok)
	}

	if _, ok := GetUsernameFromContext(context.Background()); ok {
		t.Error("expected missing username")
	}

	wrong := context.WithValue(context.Background(), UsernameCtxKey, 42)
	if _, ok := GetUsernameFromContext(wrong); ok {
		t.Error("expected wrong type to be rejected")
	}
}

func TestUUIDGenerator_Generate(t *testing.T) {
	g := NewUUIDGenerator()

	a, b := g.Generate(), g.Generate()
	if a == b {
		t.Error("expected distinct ids")
	}

	parsed, err := uuid.Parse(a)
	if err != nil {
		t.Fatalf("invalid uuid %q: %v", a, err)
	}
	if parsed.Version() != 7 {
		t.Errorf("expected version 7, got %d", parsed.Version())
	}
}
