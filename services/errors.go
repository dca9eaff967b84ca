package services

import "errors"

// Error taxonomy surfaced by the service layer. Controllers map these to
// response codes; anything else is a storage failure (500).
var (
	ErrUserNotFound    = errors.New("user not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrInvalidQuantity = errors.New("quantity must be a positive integer")
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadCredentials  = errors.New("invalid email or password")
)

// ErrorKind returns the machine-readable kind for an error payload.
func ErrorKind(err error) string {
	switch {
	case errors.Is(err, ErrUserNotFound):
		return "user_not_found"
	case errors.Is(err, ErrItemNotFound):
		return "item_not_found"
	case errors.Is(err, ErrInvalidQuantity):
		return "validation_error"
	case errors.Is(err, ErrEmailTaken):
		return "validation_error"
	case errors.Is(err, ErrBadCredentials):
		return "unauthorized"
	default:
		return "storage_failure"
	}
}
