package documents

import "context"

// Repo defines storage operations for documents.
type Repo interface {
	// Add assigns the next sequential id and appends the document.
	Add(ctx context.Context, doc Document) (Document, error)
	// List returns documents in insertion order.
	List(ctx context.Context) ([]Document, error)
	Get(ctx context.Context, id int64) (Document, error)
	// Remove deletes the document if present and reports whether it was.
	Remove(ctx context.Context, id int64) (Document, bool, error)
}
