package discard

import (
	"context"
	"errors"
	"strings"
	"testing"

	"paperqa-backend/internal/shared/storage/object"
)

func TestSaveCountsBytesWithoutKey(t *testing.T) {
	payload := strings.Repeat("a", 2048)
	key, size, _, err := New().Save(context.Background(), "a.pdf", strings.NewReader(payload))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if key != "" {
		t.Fatalf("expected empty key, got %q", key)
	}
	if size != 2048 {
		t.Fatalf("expected 2048 bytes, got %d", size)
	}
	if _, err := New().Open(context.Background(), "x"); !errors.Is(err, object.ErrNotStored) {
		t.Fatalf("expected ErrNotStored, got %v", err)
	}
}
