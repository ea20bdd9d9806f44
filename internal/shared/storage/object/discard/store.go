package discard

import (
	"context"
	"fmt"
	"io"

	"paperqa-backend/internal/shared/storage/object"
)

// Store measures uploads without retaining them.
type Store struct{}

// New returns a store that drops every payload.
func New() object.ObjectStore {
	return Store{}
}

// Save drains r and reports its size and sniffed content type.
func (Store) Save(ctx context.Context, fileName string, r io.Reader) (string, int64, string, error) {
	if err := ctx.Err(); err != nil {
		return "", 0, "", err
	}
	mimeType, body, err := object.Sniff(r)
	if err != nil {
		return "", 0, "", err
	}
	n, err := io.Copy(io.Discard, body)
	if err != nil {
		return "", 0, "", fmt.Errorf("drain body: %w", err)
	}
	return "", n, mimeType, nil
}

// Open always fails; nothing is retained.
func (Store) Open(ctx context.Context, storageKey string) (io.ReadCloser, error) {
	return nil, object.ErrNotStored
}

// Delete is a no-op.
func (Store) Delete(ctx context.Context, storageKey string) error {
	return ctx.Err()
}
