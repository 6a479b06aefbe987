package domain

import "errors"

// Error kinds shared by every layer. Wrap them with fmt.Errorf("%w: ...") to add detail;
// anything that wraps none of them is an internal error.
var (
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrForbidden       = errors.New("forbidden")
	ErrNotFound        = errors.New("not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrSyncFailed      = errors.New("calendar sync failed")
)
