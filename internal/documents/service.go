package documents

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"paperqa-backend/internal/shared/latency"
	"paperqa-backend/internal/shared/metrics"
	"paperqa-backend/internal/shared/random"
	"paperqa-backend/internal/shared/storage/object"
	"paperqa-backend/internal/shared/telemetry"
	"paperqa-backend/internal/shared/util"
)

// Service contains business logic for documents.
type Service struct {
	Store   object.ObjectStore
	Repo    Repo
	Latency *latency.Simulator
	Delay   latency.Range
	Rand    random.Source
	Now     func() time.Time
}

// Upload archives the payload, fabricates its structure and records the
// resulting document.
func (s *Service) Upload(ctx context.Context, fileName string, r io.Reader) (Document, error) {
	fileName = util.BaseFileName(fileName)
	if fileName == "" || r == nil {
		return Document{}, fmt.Errorf("no file provided: %w", ErrInvalidInput)
	}

	if s.Latency != nil {
		if _, err := s.Latency.Wait(ctx, s.Delay); err != nil {
			return Document{}, err
		}
	}

	storageKey, size, mimeType, err := s.Store.Save(ctx, fileName, r)
	if err != nil {
		return Document{}, fmt.Errorf("archive upload: %w", err)
	}

	doc := fabricateStructure(s.rand(), Document{
		FileName:   fileName,
		UploadedAt: s.now(),
		SizeBytes:  size,
		MimeType:   mimeType,
		StorageKey: storageKey,
	})

	created, err := s.Repo.Add(ctx, doc)
	if err != nil {
		s.discard(ctx, storageKey)
		return Document{}, err
	}

	metrics.IncDocumentsUploaded()
	telemetry.Info("document.uploaded", map[string]any{
		"document_id": created.ID,
		"file_name":   created.FileName,
		"size_bytes":  created.SizeBytes,
		"mime_type":   created.MimeType,
		"page_count":  created.PageCount,
	})
	return created, nil
}

// Add records an already fabricated document, such as an arxiv import.
func (s *Service) Add(ctx context.Context, doc Document) (Document, error) {
	if strings.TrimSpace(doc.FileName) == "" {
		return Document{}, fmt.Errorf("file name required: %w", ErrInvalidInput)
	}
	if doc.UploadedAt.IsZero() {
		doc.UploadedAt = s.now()
	}
	return s.Repo.Add(ctx, doc)
}

// List returns all documents in insertion order.
func (s *Service) List(ctx context.Context) ([]Document, error) {
	return s.Repo.List(ctx)
}

// Get returns a single document.
func (s *Service) Get(ctx context.Context, id int64) (Document, error) {
	return s.Repo.Get(ctx, id)
}

// OpenFile returns the archived payload of a document. It fails with
// object.ErrNotStored when the configured store keeps nothing.
func (s *Service) OpenFile(ctx context.Context, id int64) (Document, io.ReadCloser, error) {
	doc, err := s.Repo.Get(ctx, id)
	if err != nil {
		return Document{}, nil, err
	}
	if doc.StorageKey == "" || s.Store == nil {
		return doc, nil, object.ErrNotStored
	}
	rc, err := s.Store.Open(ctx, doc.StorageKey)
	if err != nil {
		return doc, nil, err
	}
	return doc, rc, nil
}

// Delete removes a document and its archived payload. Unknown ids are a no-op.
func (s *Service) Delete(ctx context.Context, id int64) error {
	removed, ok, err := s.Repo.Remove(ctx, id)
	if err != nil || !ok {
		return err
	}
	s.discard(ctx, removed.StorageKey)
	metrics.IncDocumentsDeleted()
	telemetry.Info("document.deleted", map[string]any{
		"document_id": removed.ID,
		"file_name":   removed.FileName,
	})
	return nil
}

// discard drops an archived payload. Failures are logged, not returned:
// the record is already gone and the payload is only an archive.
func (s *Service) discard(ctx context.Context, storageKey string) {
	if storageKey == "" || s.Store == nil {
		return
	}
	if err := s.Store.Delete(ctx, storageKey); err != nil && !errors.Is(err, object.ErrNotStored) {
		telemetry.Error("document.archive_delete_failed", map[string]any{
			"storage_key": storageKey,
			"error":       err.Error(),
		})
	}
}

func (s *Service) rand() random.Source {
	if s.Rand == nil {
		return random.Global()
	}
	return s.Rand
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}

// Count returns the number of documents in the library.
func (s *Service) Count(ctx context.Context) (int, error) {
	docs, err := s.Repo.List(ctx)
	if err != nil {
		return 0, err
	}
	return len(docs), nil
}
