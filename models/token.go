package models

import "time"

// AuthToken is an opaque bearer credential bound to exactly one user.
//
// A user has at most one active token at a time: issuing is get-or-create,
// so repeated logins return the same key until the user logs out and the
// token row is deleted.
type AuthToken struct {
	// Key is the random hex-encoded token value presented by clients in the
	// Authorization header or the session cookie.
	Key string `json:"token"`

	// UserID is the owner of the token.
	// Excluded from JSON serialization; it is an internal server-side field.
	UserID int64 `json:"-"`

	// CreatedAt is the timestamp when the token was first minted.
	CreatedAt time.Time `json:"-"`
}

// String returns the opaque token key.
// It implements the [fmt.Stringer] interface.
func (t AuthToken) String() string {
	return t.Key
}

// TableName returns the name of the database table
// associated with the AuthToken model.
func (t AuthToken) TableName() string {
	return "auth_tokens"
}
