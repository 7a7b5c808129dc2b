package mcp

import (
	"context"
	"testing"
)

// TestUserIDFromContextDefault verifies the default user ID (1) when no value
// is set in the context.
func TestUserIDFromContextDefault(t *testing.T) {
	ctx := context.Background()
	if id := UserIDFromContext(ctx); id != 1 {
		t.Errorf("UserIDFromContext(empty) = %d, want 1", id)
	}
}

// TestUserIDFromContextSet verifies the user ID is extracted from context
// after being set by WithUserID.
func TestUserIDFromContextSet(t *testing.T) {
	ctx := WithUserID(context.Background(), 42)
	if id := UserIDFromContext(ctx); id != 42 {
		t.Errorf("UserIDFromContext = %d, want 42", id)
	}
}

func TestParseDays(t *testing.T) {
	if n, err := parseDays("30"); err != nil || n != 30 {
		t.Errorf("parseDays(30) = %d, %v", n, err)
	}
	if _, err := parseDays("0"); err == nil {
		t.Error("expected error for zero days")
	}
	if _, err := parseDays("soon"); err == nil {
		t.Error("expected error for non-numeric days")
	}
}
