package apperr

import (
	"errors"
	"fmt"
)

// Sentinel errors for the exam core. Controllers map these onto HTTP statuses;
// services never leak raw storage errors past this taxonomy.
var (
	ErrExamNotFound     = errors.New("exam not found")
	ErrUnknownQuestion  = errors.New("one or more selected questions do not exist")
	ErrDuplicateAttempt = errors.New("exam has already been taken")
)

// ValidationError is a recoverable client input error.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func Validationf(format string, args ...interface{}) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is (or wraps) a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
