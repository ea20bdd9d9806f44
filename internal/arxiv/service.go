package arxiv

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/shared/latency"
	"paperqa-backend/internal/shared/metrics"
	"paperqa-backend/internal/shared/random"
	"paperqa-backend/internal/shared/telemetry"
)

// Service simulates ArXiv search and import.
type Service struct {
	Docs        *documents.Service
	Latency     *latency.Simulator
	SearchDelay latency.Range
	ImportDelay latency.Range
	Rand        random.Source
	Now         func() time.Time
}

// Search fabricates results for query after a simulated network delay.
func (s *Service) Search(ctx context.Context, query string) ([]Paper, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, fmt.Errorf("query required: %w", ErrInvalidInput)
	}
	if err := s.wait(ctx, s.SearchDelay); err != nil {
		return nil, err
	}

	papers := GeneratePapers(s.rand(), s.now(), query)
	metrics.IncArxivSearches()
	telemetry.Info("arxiv.search", map[string]any{
		"query":   query,
		"results": len(papers),
	})
	return papers, nil
}

// Import fabricates a document for paperID and adds it to the library.
func (s *Service) Import(ctx context.Context, paperID string) (documents.Document, error) {
	paperID = strings.TrimSpace(paperID)
	if paperID == "" {
		return documents.Document{}, fmt.Errorf("paper id required: %w", ErrInvalidInput)
	}
	if err := s.wait(ctx, s.ImportDelay); err != nil {
		return documents.Document{}, err
	}

	doc, err := s.Docs.Add(ctx, FabricateImport(s.rand(), paperID, s.now()))
	if err != nil {
		return documents.Document{}, fmt.Errorf("import %s: %w", paperID, err)
	}

	metrics.IncDocumentsImported()
	telemetry.Info("arxiv.imported", map[string]any{
		"paper_id":    paperID,
		"document_id": doc.ID,
		"title":       doc.Title,
	})
	return doc, nil
}

func (s *Service) wait(ctx context.Context, r latency.Range) error {
	if s.Latency == nil {
		return ctx.Err()
	}
	_, err := s.Latency.Wait(ctx, r)
	return err
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
