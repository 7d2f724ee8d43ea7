package domain

import "errors"

// Domain errors - used across all layers
var (
	// ErrSessionNotFound indicates the session does not exist or expired
	ErrSessionNotFound = errors.New("session not found")

	// ErrEntryNotFound indicates no entry with the given id exists in the collection
	ErrEntryNotFound = errors.New("entry not found")

	// ErrBusy indicates a single-flight operation is already in progress for the session
	ErrBusy = errors.New("operation already in progress")

	// ErrGenerateFailed indicates the generation endpoint was unreachable or returned a non-success status
	ErrGenerateFailed = errors.New("generation request failed")

	// ErrInvalidPayload indicates the AI payload was not valid JSON or did not match the resume shape
	ErrInvalidPayload = errors.New("invalid resume payload")

	// ErrExportFailed indicates PDF artifact generation failed
	ErrExportFailed = errors.New("export failed")
)
