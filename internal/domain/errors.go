package domain

import "errors"

// Sentinel errors for the lifecycle core - use with errors.Is()
var (
	// ErrNotFound indicates the row does not exist or is not owned by the caller.
	// The two cases are deliberately indistinguishable so that foreign rows
	// behave exactly like missing rows.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates malformed input (bad kind, missing id, bad payload).
	ErrValidation = errors.New("validation failed")

	// ErrUnauthorized indicates no valid caller identity.
	ErrUnauthorized = errors.New("unauthorized")

	// ErrConflict indicates a uniqueness conflict on create/update.
	ErrConflict = errors.New("already exists")

	// ErrPrecondition indicates a state-machine guard rejected the transition:
	// soft-deleting a row that is already deleted (or absent), or permanently
	// deleting a row that is still active. The row was not touched.
	ErrPrecondition = errors.New("precondition failed")

	// ErrStoreUnavailable indicates the store call itself failed (network or
	// transient database error). This is the only class safe to retry blindly.
	ErrStoreUnavailable = errors.New("store unavailable")
)
