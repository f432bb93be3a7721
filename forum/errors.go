package forum

import "errors"

// Error kinds surfaced by forum operations. Callers match them with
// errors.Is and present them as transient notices; none are fatal and none
// are retried.
var (
	ErrValidation        = errors.New("required field is missing")
	ErrDuplicateUser     = errors.New("username is already taken")
	ErrUserNotFound      = errors.New("user not found")
	ErrBanned            = errors.New("account is banned")
	ErrForbidden         = errors.New("insufficient permissions")
	ErrUnauthenticated   = errors.New("sign in required")
	ErrDuplicateCategory = errors.New("category already exists")
)
