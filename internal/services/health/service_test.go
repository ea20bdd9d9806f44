package health

import (
	"context"
	"errors"
	"testing"
	"time"
)

type stubCounter struct {
	n   int
	err error
}

func (s stubCounter) Count(context.Context) (int, error) { return s.n, s.err }

func TestStatus(t *testing.T) {
	svc := NewService(stubCounter{n: 4}, "local")
	start := svc.started
	svc.now = func() time.Time { return start.Add(90 * time.Second) }

	st := svc.Status(context.Background())
	if !st.OK || st.Documents != 4 || st.ObjectStore != "local" || st.UptimeSeconds != 90 {
		t.Fatalf("unexpected status: %+v", st)
	}
}

func TestStatusStaysOKWhenCountFails(t *testing.T) {
	svc := NewService(stubCounter{err: errors.New("boom")}, "none")

	st := svc.Status(context.Background())
	if !st.OK || st.Documents != 0 {
		t.Fatalf("unexpected status: %+v", st)
	}
}
