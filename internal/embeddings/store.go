// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

// Package embeddings loads the precomputed action embedding table.
//
// The table is a JSON object mapping action ids to equal-length arrays of
// finite numbers:
//
//	{"a1": [0.12, -0.40, ...], "a2": [...]}
//
// Loading either returns a fully validated, immutable Store or a *LoadError;
// there is no partially loaded state and no reload path. A catalog action
// without a vector is not a load error; callers discover it through Has.
package embeddings

import (
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"sort"

	"github.com/goccy/go-json"
	"gonum.org/v1/gonum/floats"
)

// Store is a read-only id -> vector table with uniform dimensionality.
type Store struct {
	vectors map[string][]float64
	units   map[string][]float64
	norms   map[string]float64
	ids     []string
	dim     int
	source  string
}

// LoadFile reads and validates the table at path.
func LoadFile(path string) (*Store, error) {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return nil, &LoadError{Source: path, Err: fmt.Errorf("%w: %v", ErrSource, err)}
	}
	defer f.Close()

	return load(f, path)
}

// Load reads and validates a table from r.
func Load(r io.Reader) (*Store, error) {
	return load(r, "reader")
}

func load(r io.Reader, source string) (*Store, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %v", ErrSource, err)}
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: no data", ErrEmpty)}
	}

	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: %v", ErrMalformed, err)}
	}
	// A top-level null decodes into a nil map.
	if raw == nil {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: expected a JSON object", ErrMalformed)}
	}
	if len(raw) == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: no entries", ErrEmpty)}
	}

	vectors := make(map[string][]float64, len(raw))
	for id, msg := range raw {
		vec, err := decodeVector(id, msg)
		if err != nil {
			return nil, &LoadError{Source: source, ID: id, Err: err}
		}
		vectors[id] = vec
	}

	return build(vectors, source)
}

// FromMap validates an in-memory table. The vectors are copied.
func FromMap(m map[string][]float64) (*Store, error) {
	vectors := make(map[string][]float64, len(m))
	for id, v := range m {
		vectors[id] = append([]float64(nil), v...)
	}
	return build(vectors, "memory")
}

func build(vectors map[string][]float64, source string) (*Store, error) {
	if len(vectors) == 0 {
		return nil, &LoadError{Source: source, Err: fmt.Errorf("%w: no entries", ErrEmpty)}
	}

	s := &Store{
		vectors: vectors,
		units:   make(map[string][]float64, len(vectors)),
		norms:   make(map[string]float64, len(vectors)),
		ids:     make([]string, 0, len(vectors)),
		dim:     -1,
		source:  source,
	}
	for id := range vectors {
		s.ids = append(s.ids, id)
	}
	sort.Strings(s.ids)

	// Sorted order keeps the reported offender deterministic.
	for _, id := range s.ids {
		vec := vectors[id]
		if len(vec) == 0 {
			return nil, &LoadError{Source: source, ID: id, Err: fmt.Errorf("%w: zero-length vector", ErrEmpty)}
		}
		for i, v := range vec {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, &LoadError{
					Source: source,
					ID:     id,
					Err:    fmt.Errorf("%w: non-finite value at index %d", ErrMalformed, i),
				}
			}
		}
		if s.dim == -1 {
			s.dim = len(vec)
		} else if len(vec) != s.dim {
			return nil, &LoadError{
				Source: source,
				ID:     id,
				Err:    fmt.Errorf("%w: got %d, want %d", ErrDimensionMismatch, len(vec), s.dim),
			}
		}
		s.norms[id] = floats.Norm(vec, 2)
		s.units[id] = UnitVector(vec)
	}

	return s, nil
}

func decodeVector(id string, raw json.RawMessage) ([]float64, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '[' {
		return nil, fmt.Errorf("%w: value for %q is not an array", ErrMalformed, id)
	}

	var vec []float64
	if err := json.Unmarshal(trimmed, &vec); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return vec, nil
}

// Vector returns a copy of the vector for id.
func (s *Store) Vector(id string) ([]float64, bool) {
	v, ok := s.vectors[id]
	if !ok {
		return nil, false
	}
	return append([]float64(nil), v...), true
}

// Unit returns the vector for id scaled to unit length, or all zeros for a
// zero vector. The slice is shared and must not be modified.
func (s *Store) Unit(id string) ([]float64, bool) {
	u, ok := s.units[id]
	return u, ok
}

// UnitVector returns v scaled to unit length. It divides by the largest
// magnitude before normalising, so finite vectors of any scale yield a
// finite result. A zero vector yields zeros.
func UnitVector(v []float64) []float64 {
	u := make([]float64, len(v))
	peak := floats.Norm(v, math.Inf(1))
	if peak == 0 {
		return u
	}
	for i, x := range v {
		u[i] = x / peak
	}
	n := floats.Norm(u, 2)
	for i := range u {
		u[i] /= n
	}
	return u
}

// Norm returns the Euclidean norm of the vector for id.
func (s *Store) Norm(id string) (float64, bool) {
	n, ok := s.norms[id]
	return n, ok
}

// Has reports whether id has a vector.
func (s *Store) Has(id string) bool {
	_, ok := s.vectors[id]
	return ok
}

// Dim returns the shared dimensionality.
func (s *Store) Dim() int {
	return s.dim
}

// Len returns the number of vectors.
func (s *Store) Len() int {
	return len(s.vectors)
}

// IDs returns the ids in sorted order.
func (s *Store) IDs() []string {
	return append([]string(nil), s.ids...)
}

// Source returns where the table was loaded from.
func (s *Store) Source() string {
	return s.source
}

// Coverage returns the ids from want that have no vector, preserving order.
func (s *Store) Coverage(want []string) []string {
	var missing []string
	for _, id := range want {
		if !s.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing
}
