package repository

import "errors"

// Error taxonomy of the survey store. Callers branch with errors.Is; anything
// else that escapes an operation is a persistence failure from the driver.
var (
	ErrDuplicateUsername = errors.New("username already registered")
	ErrNotFound          = errors.New("record not found")
	ErrUserHasSurveys    = errors.New("user has authored surveys and cannot be deleted")
	ErrAdminProtected    = errors.New("bootstrap admin cannot be deleted")
	ErrForeignQuestion   = errors.New("answer references a question from another survey")
)
