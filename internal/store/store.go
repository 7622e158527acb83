// Package store keeps editing-session proposals in memory. Sessions are
// keyed by proposal id and pruned after sitting idle; nothing persists
// across process restarts.
package store

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/propdeck/propdeck/internal/models"
)

var ErrNotFound = errors.New("proposal not found")

// Clock interface for testing time-dependent behavior.
type Clock interface {
	Now() time.Time
}

// realClock implements Clock using the system time.
type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

// entry wraps a proposal with its last-touched timestamp.
type entry struct {
	proposal  models.Proposal
	touchedAt time.Time
}

// Store is a concurrency-safe in-memory proposal session store.
type Store struct {
	clock Clock
	mu    sync.RWMutex
	byID  map[string]*entry
}

// Option configures a Store.
type Option func(*Store)

// WithClock substitutes the time source, for tests.
func WithClock(clock Clock) Option {
	return func(s *Store) { s.clock = clock }
}

func New(opts ...Option) *Store {
	s := &Store{
		clock: realClock{},
		byID:  make(map[string]*entry),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Create stores a new proposal session. A missing id is assigned; created
// and updated timestamps are set to now.
func (s *Store) Create(p models.Proposal) models.Proposal {
	now := s.clock.Now().UTC()
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	p.CreatedAt = now
	p.UpdatedAt = now

	s.mu.Lock()
	defer s.mu.Unlock()
	s.byID[p.ID] = &entry{proposal: p, touchedAt: now}
	return p
}

// Get returns the proposal and refreshes its idle timer.
func (s *Store) Get(id string) (models.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return models.Proposal{}, ErrNotFound
	}
	e.touchedAt = s.clock.Now()
	return e.proposal, nil
}

// Update replaces the stored proposal. The path id wins over any id carried
// in the body; created-at is preserved.
func (s *Store) Update(id string, p models.Proposal) (models.Proposal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.byID[id]
	if !ok {
		return models.Proposal{}, ErrNotFound
	}
	p.ID = id
	p.CreatedAt = e.proposal.CreatedAt
	p.UpdatedAt = s.clock.Now().UTC()
	e.proposal = p
	e.touchedAt = s.clock.Now()
	return p, nil
}

// Delete removes the session. Deleting an unknown id is not an error.
func (s *Store) Delete(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byID, id)
}

// List returns all live proposals, most recently updated first.
func (s *Store) List() []models.Proposal {
	s.mu.RLock()
	defer s.mu.RUnlock()
	proposals := make([]models.Proposal, 0, len(s.byID))
	for _, e := range s.byID {
		proposals = append(proposals, e.proposal)
	}
	for i := 1; i < len(proposals); i++ {
		for j := i; j > 0 && proposals[j].UpdatedAt.After(proposals[j-1].UpdatedAt); j-- {
			proposals[j], proposals[j-1] = proposals[j-1], proposals[j]
		}
	}
	return proposals
}

// Count returns the number of live sessions.
func (s *Store) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}

// PruneIdle drops sessions untouched for longer than maxIdle and returns how
// many were removed.
func (s *Store) PruneIdle(maxIdle time.Duration) int {
	cutoff := s.clock.Now().Add(-maxIdle)

	s.mu.Lock()
	defer s.mu.Unlock()
	pruned := 0
	for id, e := range s.byID {
		if e.touchedAt.Before(cutoff) {
			delete(s.byID, id)
			pruned++
		}
	}
	if pruned > 0 {
		log.Debug().Int("pruned", pruned).Int("remaining", len(s.byID)).Msg("Pruned idle proposal sessions")
	}
	return pruned
}
