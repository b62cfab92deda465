package apperrors

import "errors"

// ErrNotFound indicates that a referenced desk or booking does not exist.
var ErrNotFound = errors.New("resource not found")

// ErrInvalidInput indicates a caller contract violation, such as a booking
// request without a desk or a date.
var ErrInvalidInput = errors.New("invalid input")

// ErrDeskUnavailable is returned when a desk that is not available is
// reserved from the grid.
var ErrDeskUnavailable = errors.New("desk is not available")
