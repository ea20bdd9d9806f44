package questions

import (
	"context"
	"errors"
	"testing"
	"time"

	"paperqa-backend/internal/documents"
	"paperqa-backend/internal/engine"
	"paperqa-backend/internal/shared/latency"
	"paperqa-backend/internal/shared/random"
	"paperqa-backend/internal/shared/storage/object/discard"
)

type fakeClock struct {
	t time.Time
}

func (f *fakeClock) Now() time.Time { return f.t }

func newTestService(t *testing.T) (*Service, documents.Document, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, time.June, 1, 9, 0, 0, 0, time.UTC)}
	docs := &documents.Service{Store: discard.New(), Repo: documents.NewMemoryRepo(), Now: clock.Now}
	doc, err := docs.Add(context.Background(), documents.Document{FileName: "paper.pdf", Title: "Sparse Models", PageCount: 9})
	if err != nil {
		t.Fatalf("seed document: %v", err)
	}

	sim := &latency.Simulator{
		Rand: random.Seeded(1),
		Sleep: func(ctx context.Context, d time.Duration) error {
			clock.t = clock.t.Add(d)
			return ctx.Err()
		},
	}
	svc := &Service{
		Docs:     docs,
		Latency:  sim,
		AskDelay: latency.Range{Base: 1500 * time.Millisecond},
		Now:      clock.Now,
	}
	return svc, doc, clock
}

func TestAskReturnsMetricsAnswer(t *testing.T) {
	svc, doc, _ := newTestService(t)

	res, err := svc.Ask(context.Background(), Request{DocumentID: doc.ID, Question: "What is the accuracy?"})
	if err != nil {
		t.Fatalf("ask: %v", err)
	}
	if res.QueryType != engine.CategoryExtraction {
		t.Fatalf("expected extraction, got %s", res.QueryType)
	}
	if res.Confidence != 0.92 {
		t.Fatalf("expected confidence 0.92, got %v", res.Confidence)
	}
	if res.ProcessingTime != 1500*time.Millisecond {
		t.Fatalf("expected processing time to include latency, got %v", res.ProcessingTime)
	}
	if res.Message.Role != engine.RoleAssistant || res.Message.ID == "" {
		t.Fatalf("unexpected message: %+v", res.Message)
	}
	if res.Message.Metadata == nil || res.Message.Metadata.ProcessingTime != 1500 {
		t.Fatalf("unexpected message metadata: %+v", res.Message.Metadata)
	}
}

func TestAskUnknownDocument(t *testing.T) {
	svc, _, clock := newTestService(t)
	before := clock.t

	_, err := svc.Ask(context.Background(), Request{DocumentID: 999, Question: "anything"})
	if !errors.Is(err, documents.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if !clock.t.Equal(before) {
		t.Fatalf("expected no simulated delay for a missing document")
	}
}

func TestAskRequiresQuestion(t *testing.T) {
	svc, doc, _ := newTestService(t)

	_, err := svc.Ask(context.Background(), Request{DocumentID: doc.ID, Question: "  "})
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAskCancelledDuringDelay(t *testing.T) {
	svc, doc, _ := newTestService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Ask(ctx, Request{DocumentID: doc.ID, Question: "summary"})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestAgentDoesNotRequireDocument(t *testing.T) {
	svc, _, _ := newTestService(t)

	resp, err := svc.Agent(context.Background(), "404", "please search arxiv")
	if err != nil {
		t.Fatalf("agent: %v", err)
	}
	if len(resp.Metadata.FunctionCalls) != 1 || resp.Metadata.FunctionCalls[0] != "searchArxiv" {
		t.Fatalf("unexpected function calls: %v", resp.Metadata.FunctionCalls)
	}

	if _, err := svc.Agent(context.Background(), "", "hi"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}
