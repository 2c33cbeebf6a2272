package apperrors

import "errors"

// ErrNotFound indicates that a requested resource could not be found,
// or that it is in a state that disqualifies the operation
// (e.g. an already finalized journal).
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")
