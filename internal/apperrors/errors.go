package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrInvestmentNotFound indicates that an investment with the given ID does not exist.
	ErrInvestmentNotFound = errors.New("investment not found")

	// ErrSnapshotNotFound indicates that no portfolio snapshot exists for the requested date.
	ErrSnapshotNotFound = errors.New("portfolio snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidUUID indicates that a provided ID is not a valid UUID format.
	ErrInvalidUUID = errors.New("invalid UUID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrExportDisabled indicates that encrypted export/import was requested
	// but no export key is configured.
	ErrExportDisabled = errors.New("export key not configured")

	// ErrInvalidExportToken indicates that an import payload could not be
	// verified or decrypted with the configured export key.
	ErrInvalidExportToken = errors.New("invalid or corrupt export token")
)

// Operation failure errors represent system-level failures when retrieving or
// processing data. These errors indicate that an operation failed, but not due
// to missing entities or validation issues.
var (
	ErrFailedToRetrieveInvestments = errors.New("failed to retrieve investments")
	ErrFailedToRetrieveInvestment  = errors.New("failed to retrieve investment")
	ErrFailedToGetSummary          = errors.New("failed to get portfolio summary")
	ErrFailedToRetrieveSnapshots   = errors.New("failed to retrieve portfolio snapshots")
)
