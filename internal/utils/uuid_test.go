package utils

import (
	"testing"

	"github.com/google/uuid"
)

func TestNewID_IsVersion7(t *testing.T) {
	id, err := uuid.Parse(NewID())
	if err != nil {
		t.Fatalf("expected valid uuid, got: %v", err)
	}
	if id.Version() != 7 {
		t.Errorf("expected version 7, got %d", id.Version())
	}
}

func TestNewID_Unique(t *testing.T) {
	seen := make(map[string]struct{}, 100)
	for range 100 {
		id := NewID()
		if _, dup := seen[id]; dup {
			t.Fatalf("duplicate id %s", id)
		}
		seen[id] = struct{}{}
	}
}
