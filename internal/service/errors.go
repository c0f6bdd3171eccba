package service

import "errors"

var (
	// ErrInvalidCredentials is returned by Login whenever the username is
	// unknown or the password does not match. A single error value for both
	// cases keeps the failure shape constant and prevents username
	// enumeration.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrInvalidToken is returned by Authenticate when the presented token
	// key does not resolve to a user (unknown key or revoked by logout).
	ErrInvalidToken = errors.New("invalid or revoked auth token")
)

// Field-level validation messages surfaced through [validators.FieldErrors].
const (
	MsgUsernameTaken = "A user with that username already exists."
	MsgFieldRequired = "This field is required."
)
