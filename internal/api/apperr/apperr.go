// Package apperr defines the validation failures raised by the directory,
// hierarchy and ledger services. They are business-rule rejections: synchronous,
// non-retryable without corrected input. Store-level errors are never wrapped
// into this taxonomy and propagate as-is.
package apperr

import "errors"

// ValidationError is the common type of every business-rule rejection.
// Callers match a concrete rule with errors.Is against one of the sentinels
// below, or detect the whole class with IsValidation.
type ValidationError struct {
	msg string
}

func (slf *ValidationError) Error() string {
	return slf.msg
}

var (
	// ErrChainOfCommand: a reporting assignment does not match the
	// organizational job tree.
	ErrChainOfCommand = &ValidationError{msg: "reporting line does not match the chain of command"}

	// ErrSingleSuperuser: an attempt to persist a second superuser account.
	ErrSingleSuperuser = &ValidationError{msg: "only one big boss may exist"}

	// ErrSuperuserAssignment: a hit was pointed at the superuser.
	ErrSuperuserAssignment = &ValidationError{msg: "a hit can't be assigned to the big boss"}

	// ErrInactiveAssignee: a hit was pointed at a deactivated user.
	ErrInactiveAssignee = &ValidationError{msg: "a hit can't be assigned to an inactive user"}

	// ErrTerminalState: a mutation was attempted on a failed or completed hit.
	ErrTerminalState = &ValidationError{msg: "a hit in a final status can't be changed"}

	// ErrInvalidAssignee: the assign operation received no usable user.
	ErrInvalidAssignee = &ValidationError{msg: "assignee must be an existing user"}
)

// IsValidation reports whether err belongs to the validation taxonomy.
func IsValidation(err error) bool {
	var v *ValidationError
	return errors.As(err, &v)
}
