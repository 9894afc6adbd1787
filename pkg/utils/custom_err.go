package utils

import "errors"

var (
	ErrAuthenticationRequired = errors.New("authentication required")
	ErrAccessDenied           = errors.New("access denied")
	ErrInvalidCredentials     = errors.New("invalid credentials")

	ErrAccountNotFound  = errors.New("account not found")
	ErrVehicleNotFound  = errors.New("vehicle not found")
	ErrDocumentNotFound = errors.New("document not found")
	ErrEventNotFound    = errors.New("event not found")

	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrPlateAlreadyExists = errors.New("license plate already registered")
	ErrSelfDelete         = errors.New("cannot delete own account")

	ErrQRCodeGeneration = errors.New("qr code generation failed")
	ErrFileStorage      = errors.New("file storage error")
	ErrDatabaseError    = errors.New("database error")
)

// ValidationError carries a user-actionable message for rejected input,
// e.g. a wrong upload MIME type or an unparseable date.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func NewValidationError(reason string) error {
	return &ValidationError{Reason: reason}
}
