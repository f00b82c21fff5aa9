// pkg/aegis_err/util.go

package aegis_err

import (
	"errors"
)

// UserError marks a failure that is the user's to fix (bad flag values,
// declined prompts) rather than a bug or system fault. The CLI exits 0 for
// these after printing the message.
type UserError struct {
	cause error
}

func (e *UserError) Error() string {
	return e.cause.Error()
}

func (e *UserError) Unwrap() error {
	return e.cause
}

// NewExpectedError wraps an error for softer UX handling.
func NewExpectedError(err error) error {
	if err == nil {
		return nil
	}
	return &UserError{cause: err}
}

// IsExpectedUserError checks if the error is marked as expected.
func IsExpectedUserError(err error) bool {
	var e *UserError
	return errors.As(err, &e)
}
