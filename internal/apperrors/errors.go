package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrMissingIdentity indicates that an event lacks the identity fields
// needed to derive its idempotency key. Such events are skipped and logged.
var ErrMissingIdentity = errors.New("event is missing identity fields")

// ErrUnresolvedCostCenter indicates that no cost center could be resolved
// through the fallback chain (work order -> asset -> tenant default).
// The event is skipped rather than posted with a null cost center.
var ErrUnresolvedCostCenter = errors.New("no cost center could be resolved")

// ErrStorageUnavailable indicates the ledger store could not be reached.
// Event hooks suppress it; the backfill runner treats it as fatal.
var ErrStorageUnavailable = errors.New("ledger storage unavailable")

// ErrInvalidTransition indicates a commitment status change that the
// state machine does not allow (e.g. approving an already approved commitment).
var ErrInvalidTransition = errors.New("invalid commitment status transition")
