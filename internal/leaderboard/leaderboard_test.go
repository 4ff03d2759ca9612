// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package leaderboard

import (
	"errors"
	"fmt"
	"math"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
)

func names(entries []Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Name
	}
	return out
}

func equal(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestLeaderboard_SubmitAndList(t *testing.T) {
	lb := New()

	if _, err := lb.Submit("Alice", 42); err != nil {
		t.Fatalf("Submit(Alice) error = %v", err)
	}
	if _, err := lb.Submit("Bob", 77); err != nil {
		t.Fatalf("Submit(Bob) error = %v", err)
	}

	got := lb.List()
	if !equal(names(got), []string{"Bob", "Alice"}) {
		t.Fatalf("List() = %v, want [Bob Alice]", names(got))
	}
	if got[0].Score != 77 || got[1].Score != 42 {
		t.Errorf("scores = %v, %v", got[0].Score, got[1].Score)
	}
}

func TestLeaderboard_Submit_Validation(t *testing.T) {
	tests := []struct {
		name      string
		entryName string
		score     float64
		wantField string
	}{
		{"empty name", "", 10, "name"},
		{"whitespace name", "   \t", 10, "name"},
		{"NaN score", "Alice", math.NaN(), "score"},
		{"positive infinity", "Alice", math.Inf(1), "score"},
		{"negative infinity", "Alice", math.Inf(-1), "score"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lb := New()
			_, err := lb.Submit(tt.entryName, tt.score)
			if err == nil {
				t.Fatal("Submit() error = nil, want validation error")
			}
			if !errors.Is(err, ErrValidation) {
				t.Errorf("errors.Is(err, ErrValidation) = false for %v", err)
			}
			var ve *ValidationError
			if !errors.As(err, &ve) {
				t.Fatalf("error %T is not *ValidationError", err)
			}
			if ve.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", ve.Field, tt.wantField)
			}
			if lb.Len() != 0 {
				t.Errorf("Len() = %d after rejected submit", lb.Len())
			}
		})
	}
}

func TestLeaderboard_Submit_Entry(t *testing.T) {
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	lb := New(WithClock(func() time.Time { return at }))

	e, err := lb.Submit("  Carol  ", -3.5)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if e.Name != "Carol" {
		t.Errorf("Name = %q, want trimmed %q", e.Name, "Carol")
	}
	if e.Score != -3.5 {
		t.Errorf("Score = %v, want -3.5", e.Score)
	}
	if !e.SubmittedAt.Equal(at) {
		t.Errorf("SubmittedAt = %v, want %v", e.SubmittedAt, at)
	}
	id, err := uuid.Parse(e.ID)
	if err != nil {
		t.Fatalf("ID %q is not a UUID: %v", e.ID, err)
	}
	if id.Version() != 4 {
		t.Errorf("UUID version = %d, want 4", id.Version())
	}
}

func TestLeaderboard_DuplicatesAllowed(t *testing.T) {
	lb := New()
	a, _ := lb.Submit("Dana", 10)
	b, _ := lb.Submit("Dana", 10)

	if a.ID == b.ID {
		t.Error("duplicate submissions share an id")
	}
	if lb.Len() != 2 {
		t.Errorf("Len() = %d, want 2", lb.Len())
	}
}

func TestLeaderboard_List_StableTies(t *testing.T) {
	lb := New()
	for _, s := range []struct {
		name  string
		score float64
	}{
		{"first", 50}, {"low", 10}, {"second", 50}, {"top", 90}, {"third", 50},
	} {
		if _, err := lb.Submit(s.name, s.score); err != nil {
			t.Fatalf("Submit(%s) error = %v", s.name, err)
		}
	}

	want := []string{"top", "first", "second", "third", "low"}
	for i := 0; i < 3; i++ {
		if got := names(lb.List()); !equal(got, want) {
			t.Fatalf("List() = %v, want %v", got, want)
		}
	}
}

func TestLeaderboard_List_DoesNotMutateStorage(t *testing.T) {
	lb := New()
	_, _ = lb.Submit("Alice", 42)
	_, _ = lb.Submit("Bob", 77)

	got := lb.List()
	got[0].Name = "Mallory"
	got[0].Score = 1000

	again := lb.List()
	if again[0].Name != "Bob" || again[0].Score != 77 {
		t.Errorf("List() after caller mutation = %+v", again[0])
	}
}

func TestLeaderboard_Top(t *testing.T) {
	lb := New()
	for i := 0; i < 5; i++ {
		_, _ = lb.Submit(fmt.Sprintf("p%d", i), float64(i))
	}

	if got := names(lb.Top(2)); !equal(got, []string{"p4", "p3"}) {
		t.Errorf("Top(2) = %v, want [p4 p3]", got)
	}
	if got := lb.Top(10); len(got) != 5 {
		t.Errorf("Top(10) len = %d, want 5", len(got))
	}
	if got := lb.Top(0); len(got) != 0 {
		t.Errorf("Top(0) len = %d, want 0", len(got))
	}
}

func TestLeaderboard_WithCapacity(t *testing.T) {
	t.Run("keeps best entries", func(t *testing.T) {
		lb := New(WithCapacity(3))
		for _, s := range []float64{10, 50, 30, 70, 20} {
			_, _ = lb.Submit(fmt.Sprintf("s%.0f", s), s)
		}
		if lb.Len() != 3 {
			t.Fatalf("Len() = %d, want 3", lb.Len())
		}
		if got := names(lb.List()); !equal(got, []string{"s70", "s50", "s30"}) {
			t.Errorf("List() = %v, want [s70 s50 s30]", got)
		}
	})

	t.Run("evicts the newest among equal lowest", func(t *testing.T) {
		lb := New(WithCapacity(2))
		_, _ = lb.Submit("old", 5)
		_, _ = lb.Submit("high", 9)
		_, _ = lb.Submit("new", 5)

		if got := names(lb.List()); !equal(got, []string{"high", "old"}) {
			t.Errorf("List() = %v, want [high old]", got)
		}
	})

	t.Run("offer reports eviction", func(t *testing.T) {
		lb := New(WithCapacity(2))
		tests := []struct {
			name     string
			score    float64
			retained bool
		}{
			{"a", 10, true},
			{"b", 20, true},
			{"low", 1, false},
			{"tie", 10, false},
			{"top", 30, true},
		}
		for _, tt := range tests {
			e, retained, err := lb.Offer(tt.name, tt.score)
			if err != nil {
				t.Fatalf("Offer(%s) error = %v", tt.name, err)
			}
			if retained != tt.retained {
				t.Errorf("Offer(%s) retained = %v, want %v", tt.name, retained, tt.retained)
			}
			listed := false
			for _, got := range lb.List() {
				if got.ID == e.ID {
					listed = true
				}
			}
			if listed != retained {
				t.Errorf("Offer(%s) listed = %v, retained = %v", tt.name, listed, retained)
			}
		}
		if got := names(lb.List()); !equal(got, []string{"top", "b"}) {
			t.Errorf("List() = %v, want [top b]", got)
		}
	})

	t.Run("zero is unbounded", func(t *testing.T) {
		lb := New(WithCapacity(0))
		for i := 0; i < 100; i++ {
			_, _ = lb.Submit("x", float64(i))
		}
		if lb.Len() != 100 {
			t.Errorf("Len() = %d, want 100", lb.Len())
		}
		if lb.Capacity() != 0 {
			t.Errorf("Capacity() = %d, want 0", lb.Capacity())
		}
	})
}

func TestLeaderboard_ConcurrentSubmit(t *testing.T) {
	lb := New()
	const workers = 20
	const perWorker = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				if _, err := lb.Submit(fmt.Sprintf("w%d", w), float64(i)); err != nil {
					t.Errorf("Submit() error = %v", err)
				}
				_ = lb.List()
			}
		}(w)
	}
	wg.Wait()

	entries := lb.List()
	if len(entries) != workers*perWorker {
		t.Fatalf("len = %d, want %d", len(entries), workers*perWorker)
	}
	ids := make(map[string]bool, len(entries))
	for i, e := range entries {
		if ids[e.ID] {
			t.Fatalf("duplicate id %s", e.ID)
		}
		ids[e.ID] = true
		if i > 0 && entries[i-1].Score < e.Score {
			t.Fatalf("not sorted at %d", i)
		}
	}
}

func TestIsValidationError(t *testing.T) {
	wrapped := fmt.Errorf("submit: %w", &ValidationError{Field: "name", Message: "must not be empty"})
	if !IsValidationError(wrapped) {
		t.Error("IsValidationError(wrapped) = false")
	}
	if IsValidationError(errors.New("other")) {
		t.Error("IsValidationError(other) = true")
	}
	if got := (&ValidationError{Field: "score", Message: "bad"}).Error(); got != "score: bad" {
		t.Errorf("Error() = %q", got)
	}
}
