package validators

import (
	"context"
	"strings"
	"unicode"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	// minPasswordLength is the minimum number of characters a password must
	// contain, matching the policy of the original deployment.
	minPasswordLength = 8

	// maxUsernameLength caps the username to the column width of the users
	// table.
	maxUsernameLength = 150
)

const (
	msgFieldRequired      = "This field is required."
	msgUsernameTooLong    = "Ensure this field has no more than 150 characters."
	msgUsernameBadChars   = "Enter a valid username. This value may contain only letters, numbers, and @/./+/-/_ characters."
	msgPasswordsMismatch  = "Passwords do not match."
	msgPasswordTooShort   = "This password is too short. It must contain at least 8 characters."
	msgPasswordAllNumeric = "This password is entirely numeric."
	msgPasswordTooCommon  = "This password is too common."
	msgPasswordTooSimilar = "The password is too similar to the username."
)

// CredentialsValidator checks registration input against the account
// constraints and the password strength policy.
type CredentialsValidator struct{}

// NewCredentialsValidator constructs a [CredentialsValidator].
func NewCredentialsValidator() Validator {
	return &CredentialsValidator{}
}

// Validate implements [Validator] for [models.RegisterRequest] values.
func (v *CredentialsValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.RegisterRequest:
		return v.validateRegistration(value)
	case *models.RegisterRequest:
		return v.validateRegistration(*value)
	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialsValidator) validateRegistration(req models.RegisterRequest) error {
	fieldErrors := FieldErrors{}

	validateUsername(req.Username, fieldErrors)
	validatePassword(req.Password, req.Username, fieldErrors)

	if req.Password2 == "" {
		fieldErrors.Add("password2", msgFieldRequired)
	} else if req.Password != req.Password2 {
		fieldErrors.Add("password", msgPasswordsMismatch)
	}

	if fieldErrors.HasErrors() {
		return fieldErrors
	}

	return nil
}

func validateUsername(username string, fieldErrors FieldErrors) {
	if username == "" {
		fieldErrors.Add("username", msgFieldRequired)
		return
	}

	if len(username) > maxUsernameLength {
		fieldErrors.Add("username", msgUsernameTooLong)
	}

	for _, r := range username {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !strings.ContainsRune("@.+-_", r) {
			fieldErrors.Add("username", msgUsernameBadChars)
			return
		}
	}
}

// validatePassword applies the password strength policy: minimum length,
// rejection of entirely numeric values, rejection of well-known weak
// passwords, and rejection of passwords too similar to the username.
func validatePassword(password, username string, fieldErrors FieldErrors) {
	if password == "" {
		fieldErrors.Add("password", msgFieldRequired)
		return
	}

	if len(password) < minPasswordLength {
		fieldErrors.Add("password", msgPasswordTooShort)
	}

	if isEntirelyNumeric(password) {
		fieldErrors.Add("password", msgPasswordAllNumeric)
	}

	if isCommonPassword(password) {
		fieldErrors.Add("password", msgPasswordTooCommon)
	}

	if isSimilarToUsername(password, username) {
		fieldErrors.Add("password", msgPasswordTooSimilar)
	}
}

func isEntirelyNumeric(password string) bool {
	for _, r := range password {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// isSimilarToUsername reports whether one of the two values contains the
// other, ignoring case. Short usernames are skipped so that a one-letter
// username does not poison every password containing that letter.
func isSimilarToUsername(password, username string) bool {
	if len(username) < 3 {
		return false
	}

	lowerPassword := strings.ToLower(password)
	lowerUsername := strings.ToLower(username)

	return strings.Contains(lowerPassword, lowerUsername) ||
		strings.Contains(lowerUsername, lowerPassword)
}
