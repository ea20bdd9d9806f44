package health

import (
	"context"
	"time"
)

// Counter reports how many documents the library holds.
type Counter interface {
	Count(ctx context.Context) (int, error)
}

// Service encapsulates health-related checks.
type Service struct {
	Docs      Counter
	StoreType string
	started   time.Time
	now       func() time.Time
}

// Status is the liveness payload.
type Status struct {
	OK            bool   `json:"ok"`
	Documents     int    `json:"documents"`
	ObjectStore   string `json:"objectStore"`
	UptimeSeconds int64  `json:"uptimeSeconds"`
}

// NewService constructs a new health service.
func NewService(docs Counter, storeType string) *Service {
	return &Service{Docs: docs, StoreType: storeType, started: time.Now(), now: time.Now}
}

// Status returns the liveness payload. ok stays true even when counting
// fails; the process is up either way.
func (s *Service) Status(ctx context.Context) Status {
	st := Status{OK: true, ObjectStore: s.StoreType}
	if s.Docs != nil {
		if n, err := s.Docs.Count(ctx); err == nil {
			st.Documents = n
		}
	}
	if s.now != nil && !s.started.IsZero() {
		st.UptimeSeconds = int64(s.now().Sub(s.started) / time.Second)
	}
	return st
}
