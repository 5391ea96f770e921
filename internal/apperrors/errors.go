package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrRefreshDisabled indicates that rate refreshing is switched off in the
// settings (refresh interval of zero or less). It is a signal condition for
// callers, not a failure.
var ErrRefreshDisabled = errors.New("rate refresh is disabled")
