package questions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/engine"
	"paperqa-backend/internal/shared/latency"
	"paperqa-backend/internal/shared/metrics"
	"paperqa-backend/internal/shared/telemetry"
)

// Request is a question about one document.
type Request struct {
	DocumentID int64
	Question   string
	// Context is accepted for compatibility and otherwise ignored.
	Context string
}

// Result is the answer plus the timing and classification behind it.
type Result struct {
	engine.Response
	QueryType      engine.Category
	ProcessingTime time.Duration
	Message        engine.Message
}

// Service answers questions against the document library.
type Service struct {
	Docs       *documents.Service
	Latency    *latency.Simulator
	AskDelay   latency.Range
	AgentDelay latency.Range
	Now        func() time.Time
}

// Ask classifies the question and returns the canned answer for the document.
func (s *Service) Ask(ctx context.Context, req Request) (Result, error) {
	if strings.TrimSpace(req.Question) == "" {
		return Result{}, fmt.Errorf("question required: %w", ErrInvalidInput)
	}
	start := s.now()

	doc, err := s.Docs.Get(ctx, req.DocumentID)
	if err != nil {
		return Result{}, err
	}
	if err := s.wait(ctx, s.AskDelay); err != nil {
		return Result{}, err
	}

	category := engine.Classify(req.Question)
	resp := engine.Answer(doc, req.Question, category)
	finished := s.now()
	elapsed := finished.Sub(start)

	metrics.IncQuestions(string(category))
	telemetry.Info("question.answered", map[string]any{
		"document_id":        doc.ID,
		"query_type":         string(category),
		"confidence":         resp.Confidence,
		"processing_time_ms": elapsed.Milliseconds(),
	})

	return Result{
		Response:       resp,
		QueryType:      category,
		ProcessingTime: elapsed,
		Message:        engine.AssistantMessage(resp, category, elapsed.Milliseconds(), finished),
	}, nil
}

// Agent runs the simulated tool-using agent. The document need not exist.
func (s *Service) Agent(ctx context.Context, documentID, question string) (engine.AgentResponse, error) {
	if strings.TrimSpace(documentID) == "" || strings.TrimSpace(question) == "" {
		return engine.AgentResponse{}, fmt.Errorf("document id and question required: %w", ErrInvalidInput)
	}
	if err := s.wait(ctx, s.AgentDelay); err != nil {
		return engine.AgentResponse{}, err
	}
	resp := engine.Agent(documentID, question)
	telemetry.Debug("agent.answered", map[string]any{
		"document_id":    documentID,
		"function_calls": resp.Metadata.FunctionCalls,
	})
	return resp, nil
}

func (s *Service) wait(ctx context.Context, r latency.Range) error {
	if s.Latency == nil {
		return ctx.Err()
	}
	_, err := s.Latency.Wait(ctx, r)
	return err
}

func (s *Service) now() time.Time {
	if s.Now == nil {
		return time.Now().UTC()
	}
	return s.Now()
}
