package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────
// Only genuine not-found conditions are errors. Expected preconditions
// (insufficient tickets, locked skins, chest not ready) are typed result
// tags, never errors.

var (
	ErrChildNotFound    = errors.New("child not found")
	ErrActivityNotFound = errors.New("activity not found")
	ErrSessionNotFound  = errors.New("session not found")
	ErrSkinNotFound     = errors.New("skin not found")

	// ErrInvalidInput is returned for malformed requests (empty child name,
	// bad payload fields).
	ErrInvalidInput = errors.New("invalid input")

	// ErrSessionNotPlanned is returned when completing a session that is
	// not in planned status.
	ErrSessionNotPlanned = errors.New("session is not planned")
)
