package domain

import "errors"

// Sentinel errors used across layers.
var (
	ErrNotFound       = errors.New("not found")
	ErrInvalidDraft   = errors.New("recipe draft failed validation")
	ErrSubmitInFlight = errors.New("a submission is already in progress")
	ErrSlotCorrupt    = errors.New("stored collection is not a recipe list")
	ErrInvalidKey     = errors.New("invalid storage key")
	ErrUnknownBackend = errors.New("unknown storage backend")
)
