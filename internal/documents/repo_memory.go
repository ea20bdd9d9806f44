package documents

import (
	"context"
	"slices"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo. Its contents live only
// as long as the process.
type MemoryRepo struct {
	mu     sync.RWMutex
	docs   []Document
	nextID int64
}

// NewMemoryRepo constructs a MemoryRepo whose first id is 1.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{nextID: 1}
}

// Add appends doc with the next sequential id.
func (r *MemoryRepo) Add(ctx context.Context, doc Document) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	doc.ID = r.nextID
	r.nextID++
	r.docs = append(r.docs, doc)
	return doc, nil
}

// List returns a copy of all documents in insertion order.
func (r *MemoryRepo) List(ctx context.Context) ([]Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Document, len(r.docs))
	copy(out, r.docs)
	return out, nil
}

// Get returns the document with the given id.
func (r *MemoryRepo) Get(ctx context.Context, id int64) (Document, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i := r.indexOf(id); i >= 0 {
		return r.docs[i], nil
	}
	return Document{}, ErrNotFound
}

// Remove deletes the document with the given id. Absent ids are a no-op.
func (r *MemoryRepo) Remove(ctx context.Context, id int64) (Document, bool, error) {
	if err := ctx.Err(); err != nil {
		return Document{}, false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOf(id)
	if i < 0 {
		return Document{}, false, nil
	}
	removed := r.docs[i]
	r.docs = slices.Delete(r.docs, i, i+1)
	return removed, true, nil
}

func (r *MemoryRepo) indexOf(id int64) int {
	return slices.IndexFunc(r.docs, func(d Document) bool { return d.ID == id })
}

var _ Repo = (*MemoryRepo)(nil)
