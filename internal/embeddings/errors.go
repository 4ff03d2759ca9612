// EcoBee - Sustainability Action Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/ecobee

package embeddings

import (
	"errors"
	"fmt"
)

// Sentinel causes wrapped by LoadError. Match them with errors.Is.
var (
	// ErrSource means the table could not be opened or read.
	ErrSource = errors.New("embedding source unavailable")

	// ErrMalformed means the data is not an id -> array-of-finite-numbers object.
	ErrMalformed = errors.New("malformed embedding table")

	// ErrEmpty means the table has no entries or contains a zero-length vector.
	ErrEmpty = errors.New("empty embedding table")

	// ErrDimensionMismatch means vectors differ in length.
	ErrDimensionMismatch = errors.New("embedding dimension mismatch")
)

// LoadError reports a failed embedding load. It is fatal at startup.
type LoadError struct {
	// Source is the file path or "reader".
	Source string

	// ID is the offending entry, when the failure is tied to one.
	ID string

	// Err wraps one of the sentinel causes.
	Err error
}

func (e *LoadError) Error() string {
	if e.ID != "" {
		return fmt.Sprintf("load embeddings from %s: entry %q: %v", e.Source, e.ID, e.Err)
	}
	return fmt.Sprintf("load embeddings from %s: %v", e.Source, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// IsLoadError reports whether err is (or wraps) a *LoadError.
func IsLoadError(err error) bool {
	var le *LoadError
	return errors.As(err, &le)
}
