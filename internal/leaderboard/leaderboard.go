// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package leaderboard keeps the shared in-memory score board.
package leaderboard

import (
	"math"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Entry is one accepted submission. Entries are never mutated once stored.
type Entry struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Score       float64   `json:"score"`
	SubmittedAt time.Time `json:"submitted_at"`
}

// Leaderboard is an append-only list of entries safe for concurrent use.
type Leaderboard struct {
	mu       sync.Mutex
	entries  []Entry
	capacity int
	now      func() time.Time
}

// Option configures a Leaderboard.
type Option func(*Leaderboard)

// WithCapacity keeps only the best k entries. When full, the lowest score
// is evicted, the most recent one among equal scores. k <= 0 means unbounded.
func WithCapacity(k int) Option {
	return func(l *Leaderboard) {
		if k < 0 {
			k = 0
		}
		l.capacity = k
	}
}

// WithClock sets the timestamp source.
func WithClock(now func() time.Time) Option {
	return func(l *Leaderboard) {
		if now != nil {
			l.now = now
		}
	}
}

// New creates an empty leaderboard.
func New(opts ...Option) *Leaderboard {
	l := &Leaderboard{now: time.Now}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Submit validates and appends a new entry. Names are trimmed; duplicates
// are allowed and each submission gets its own id. On a bounded board the
// new entry may be the one evicted, in which case it is returned but not
// listed; use Offer to tell the two apart.
func (l *Leaderboard) Submit(name string, score float64) (Entry, error) {
	e, _, err := l.Offer(name, score)
	return e, err
}

// Offer is Submit that also reports whether the entry is still on the
// board after capacity eviction.
func (l *Leaderboard) Offer(name string, score float64) (e Entry, retained bool, err error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Entry{}, false, &ValidationError{Field: "name", Message: "must not be empty"}
	}
	if math.IsNaN(score) || math.IsInf(score, 0) {
		return Entry{}, false, &ValidationError{Field: "score", Message: "must be a finite number"}
	}

	e = Entry{
		ID:          uuid.New().String(),
		Name:        name,
		Score:       score,
		SubmittedAt: l.now().UTC(),
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append(l.entries, e)
	if l.capacity > 0 && len(l.entries) > l.capacity {
		return e, l.evictLocked() != e.ID, nil
	}
	return e, true, nil
}

// evictLocked drops the lowest scoring entry, the latest among ties, and
// returns its id. Caller must hold l.mu.
func (l *Leaderboard) evictLocked() string {
	worst := 0
	for i := 1; i < len(l.entries); i++ {
		if l.entries[i].Score <= l.entries[worst].Score {
			worst = i
		}
	}
	id := l.entries[worst].ID
	l.entries = append(l.entries[:worst], l.entries[worst+1:]...)
	return id
}

// List returns entries sorted by score descending. Equal scores keep
// submission order. The returned slice is a copy.
func (l *Leaderboard) List() []Entry {
	l.mu.Lock()
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	l.mu.Unlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score > out[j].Score
	})
	return out
}

// Top returns at most n entries of List.
func (l *Leaderboard) Top(n int) []Entry {
	out := l.List()
	if n >= 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// Len returns the number of stored entries.
func (l *Leaderboard) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Capacity returns the retention limit, 0 when unbounded.
func (l *Leaderboard) Capacity() int {
	return l.capacity
}
