package store

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/propdeck/propdeck/internal/models"
)

// mockClock is a controllable time source.
type mockClock struct {
	mu  sync.Mutex
	now time.Time
}

func newMockClock() *mockClock {
	return &mockClock{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *mockClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *mockClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func testProposal(title string) models.Proposal {
	p := models.NewDefaultProposal()
	p.Title = title
	return p
}

func TestCreateAssignsIDAndTimestamps(t *testing.T) {
	s := New(WithClock(newMockClock()))

	p := testProposal("Website Redesign")
	p.ID = ""
	created := s.Create(p)

	if created.ID == "" {
		t.Fatal("expected an assigned id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Fatal("expected timestamps")
	}
	if s.Count() != 1 {
		t.Fatalf("count = %d, want 1", s.Count())
	}
}

func TestGetUnknownID(t *testing.T) {
	s := New()
	if _, err := s.Get("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdatePreservesIdentity(t *testing.T) {
	clock := newMockClock()
	s := New(WithClock(clock))
	created := s.Create(testProposal("Original"))

	clock.Advance(time.Minute)
	replacement := testProposal("Renamed")
	replacement.ID = "attacker-chosen"
	updated, err := s.Update(created.ID, replacement)
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != created.ID {
		t.Fatalf("id = %q, want path id %q", updated.ID, created.ID)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("created-at must be preserved across updates")
	}
	if !updated.UpdatedAt.After(created.UpdatedAt) {
		t.Fatal("updated-at must advance")
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := New()
	created := s.Create(testProposal("Doomed"))
	s.Delete(created.ID)
	s.Delete(created.ID)
	if s.Count() != 0 {
		t.Fatalf("count = %d, want 0", s.Count())
	}
}

func TestListOrdersByRecency(t *testing.T) {
	clock := newMockClock()
	s := New(WithClock(clock))

	first := s.Create(testProposal("First"))
	clock.Advance(time.Minute)
	second := s.Create(testProposal("Second"))

	list := s.List()
	if len(list) != 2 {
		t.Fatalf("len = %d, want 2", len(list))
	}
	if list[0].ID != second.ID || list[1].ID != first.ID {
		t.Fatal("expected most recently updated first")
	}
}

func TestPruneIdleKeepsTouchedSessions(t *testing.T) {
	clock := newMockClock()
	s := New(WithClock(clock))

	stale := s.Create(testProposal("Stale"))
	fresh := s.Create(testProposal("Fresh"))

	clock.Advance(50 * time.Minute)
	if _, err := s.Get(fresh.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	clock.Advance(20 * time.Minute)

	if pruned := s.PruneIdle(time.Hour); pruned != 1 {
		t.Fatalf("pruned = %d, want 1", pruned)
	}
	if _, err := s.Get(stale.ID); !errors.Is(err, ErrNotFound) {
		t.Fatal("stale session should be gone")
	}
	if _, err := s.Get(fresh.ID); err != nil {
		t.Fatal("fresh session should survive")
	}
}

func TestConcurrentAccess(t *testing.T) {
	s := New()
	created := s.Create(testProposal("Shared"))

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := s.Get(created.ID); err != nil {
				t.Errorf("get: %v", err)
			}
			s.Create(testProposal("Another"))
		}()
	}
	wg.Wait()

	if s.Count() != 21 {
		t.Fatalf("count = %d, want 21", s.Count())
	}
}
