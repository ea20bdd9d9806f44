package arxiv

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/shared/random"
	"paperqa-backend/internal/shared/storage/object/discard"
)

func newTestService() (*Service, *documents.MemoryRepo) {
	repo := documents.NewMemoryRepo()
	now := func() time.Time { return time.Date(2025, time.May, 1, 12, 0, 0, 0, time.UTC) }
	src := random.Seeded(42)
	docs := &documents.Service{Store: discard.New(), Repo: repo, Rand: src, Now: now}
	return &Service{Docs: docs, Rand: src, Now: now}, repo
}

func TestServiceSearchRejectsBlankQuery(t *testing.T) {
	svc, _ := newTestService()
	_, err := svc.Search(context.Background(), "   ")
	assert.True(t, errors.Is(err, ErrInvalidInput))
}

func TestServiceImportAddsDocument(t *testing.T) {
	svc, repo := newTestService()

	first, err := svc.Import(context.Background(), "2401.1111")
	require.NoError(t, err)
	second, err := svc.Import(context.Background(), "2401.2222")
	require.NoError(t, err)

	assert.Equal(t, int64(1), first.ID)
	assert.Equal(t, int64(2), second.ID)
	assert.Equal(t, "arxiv-2401.2222.pdf", second.FileName)

	docs, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 2)
}

func TestServiceImportHonorsCancellation(t *testing.T) {
	svc, repo := newTestService()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Import(ctx, "2401.1111")
	assert.ErrorIs(t, err, context.Canceled)

	docs, _ := repo.List(context.Background())
	assert.Empty(t, docs)
}
