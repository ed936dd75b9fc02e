// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package session holds the recommendation history of one advisor run.
// A session is Empty until the first profile is submitted and Populated
// afterwards; Reset returns it to Empty.
package session

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/seal-advisor/internal/advisor"
	"github.com/pdiddy/seal-advisor/pkg/types"
)

// DefaultLimit bounds the history when no limit is configured.
const DefaultLimit = 10

// State is the lifecycle state of a Session.
type State string

const (
	StateEmpty     State = "Empty"
	StatePopulated State = "Populated"
)

// Sink persists entries as they are produced. Store implements it.
type Sink interface {
	Save(ctx context.Context, e types.RecommendationEntry) error
	Clear(ctx context.Context) (int, error)
}

// Option configures a Session.
type Option func(*Session)

// WithClock replaces time.Now for entry timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Session) { s.now = now }
}

// WithIDs replaces the UUID generator for entry IDs.
func WithIDs(next func() string) Option {
	return func(s *Session) { s.newID = next }
}

// Session is an ordered, bounded history of RecommendationEntries, newest
// first. It is safe for concurrent use.
type Session struct {
	mu      sync.Mutex
	entries []types.RecommendationEntry
	limit   int
	sink    Sink

	now   func() time.Time
	newID func() string
}

// New creates an empty session. limit <= 0 keeps every entry. sink may be
// nil, in which case entries live only in memory.
func New(limit int, sink Sink, opts ...Option) *Session {
	s := &Session{
		limit: limit,
		sink:  sink,
		now:   time.Now,
		newID: func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit evaluates p, records the result as the newest entry and returns
// it. The entry is persisted to the sink before it joins the history; on a
// sink error the history is unchanged.
func (s *Session) Submit(ctx context.Context, p types.SealInputProfile) (types.RecommendationEntry, error) {
	ev := advisor.Evaluate(p)

	s.mu.Lock()
	defer s.mu.Unlock()

	e := types.RecommendationEntry{
		ID:             s.newID(),
		CreatedAt:      s.now().UTC(),
		Profile:        p,
		Hydraulics:     ev.Hydraulics,
		Recommendation: ev.Recommendation,
		Mitigations:    ev.Mitigations,
	}

	if s.sink != nil {
		if err := s.sink.Save(ctx, e); err != nil {
			return types.RecommendationEntry{}, fmt.Errorf("saving entry %s: %w", e.ID, err)
		}
	}

	s.entries = slices.Insert(s.entries, 0, e.Clone())
	if s.limit > 0 && len(s.entries) > s.limit {
		s.entries = s.entries[:s.limit]
	}
	return e, nil
}

// Reset clears the history and the sink. It returns the number of entries
// the sink removed.
func (s *Session) Reset(ctx context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := len(s.entries)
	if s.sink != nil {
		removed, err := s.sink.Clear(ctx)
		if err != nil {
			return 0, fmt.Errorf("clearing history: %w", err)
		}
		n = removed
	}
	s.entries = nil
	return n, nil
}

// Latest returns a copy of the newest entry, if any.
func (s *Session) Latest() (types.RecommendationEntry, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.entries) == 0 {
		return types.RecommendationEntry{}, false
	}
	return s.entries[0].Clone(), true
}

// Entries returns a deep copy of the history, newest first.
func (s *Session) Entries() []types.RecommendationEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.entries == nil {
		return nil
	}
	out := make([]types.RecommendationEntry, len(s.entries))
	for i, e := range s.entries {
		out[i] = e.Clone()
	}
	return out
}

// Len returns the number of entries held.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// State reports whether the session holds any entries.
func (s *Session) State() State {
	if s.Len() == 0 {
		return StateEmpty
	}
	return StatePopulated
}
