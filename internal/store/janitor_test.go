// internal/store/janitor_test.go
package store

import (
	"errors"
	"testing"
	"time"

	"github.com/propdeck/propdeck/internal/models"
)

func TestNewJanitorRejectsEmptyCron(t *testing.T) {
	if _, err := NewJanitor(New(), "   ", time.Hour); !errors.Is(err, ErrEmptyCronExpr) {
		t.Fatalf("empty cron: %v", err)
	}
}

func TestNewJanitorRejectsMalformedCron(t *testing.T) {
	if _, err := NewJanitor(New(), "every once in a while", time.Hour); err == nil {
		t.Fatal("malformed cron accepted")
	}
}

func TestJanitorSweepPrunesIdleSessions(t *testing.T) {
	clock := newMockClock()
	s := New(WithClock(clock))

	stale := s.Create(models.NewDefaultProposal())
	fresh := s.Create(models.NewDefaultProposal())

	j, err := NewJanitor(s, "*/15 * * * *", 30*time.Minute)
	if err != nil {
		t.Fatalf("new janitor: %v", err)
	}
	defer j.Stop()

	clock.Advance(29 * time.Minute)
	if _, err := s.Get(fresh.ID); err != nil {
		t.Fatalf("touch fresh: %v", err)
	}
	clock.Advance(2 * time.Minute)

	j.sweep()

	if _, err := s.Get(stale.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("stale session survived sweep: %v", err)
	}
	if _, err := s.Get(fresh.ID); err != nil {
		t.Fatalf("fresh session pruned: %v", err)
	}
}

func TestJanitorStopIsIdempotent(t *testing.T) {
	j, err := NewJanitor(New(), "*/15 * * * *", time.Hour)
	if err != nil {
		t.Fatalf("new janitor: %v", err)
	}
	if err := j.Stop(); err != nil {
		t.Fatalf("stop: %v", err)
	}
	if err := j.Stop(); err != nil {
		t.Fatalf("second stop: %v", err)
	}
}
