// Package repository defines error types shared across repositories.
// These sentinel values let handlers distinguish failure scenarios
// without string matching: ErrConflict signals a reservation whose
// date range overlaps an existing one on the same catway, while the
// duplicate errors report unique key violations on create.
package repository

import "errors"

// ErrConflict is returned when a reservation write would overlap an
// existing reservation for the same catway.  Handlers translate this
// into an HTTP 400 response.
var ErrConflict = errors.New("reservation conflict")

// ErrUsernameExists is returned when creating a user whose username is
// already taken.
var ErrUsernameExists = errors.New("username already exists")

// ErrCatwayExists is returned when creating a catway whose number is
// already registered.
var ErrCatwayExists = errors.New("catway number already exists")
