package domain

import "errors"

// Error taxonomy shared by the application services and the remote
// facade. Adapters normalize every transport failure into one of these
// before it reaches the state machines.
var (
	ErrValidation            = errors.New("invalid input")
	ErrUnauthorized          = errors.New("credential rejected")
	ErrService               = errors.New("service failure")
	ErrInvalidState          = errors.New("operation not allowed in current state")
	ErrInvalidCredentials    = errors.New("invalid email or password")
	ErrRegistrationRejected  = errors.New("registration rejected")
	ErrProfileIncomplete     = errors.New("profile incomplete")
	ErrUnknownAssessmentType = errors.New("unknown assessment type")
	ErrNoSession             = errors.New("no stored session")
)
