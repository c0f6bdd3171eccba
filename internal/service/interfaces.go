package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// AuthService implements registration, credential verification, and the
// opaque token lifecycle.
type AuthService interface {
	// Register validates the registration input, hashes the password, and
	// creates the account.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)

	// Login verifies the credentials and returns the user's token,
	// minting one when none exists (get-or-create).
	Login(ctx context.Context, creds models.Credentials) (models.AuthToken, models.User, error)

	// Authenticate resolves an opaque token key to its owning user.
	Authenticate(ctx context.Context, tokenKey string) (models.User, error)

	// Logout revokes every token belonging to the user.
	Logout(ctx context.Context, userID int64) error
}

// NoteService implements owner-scoped note CRUD with filtering and search.
// Every method takes the authenticated caller's user ID; no operation can
// reach another user's notes.
type NoteService interface {
	ListNotes(ctx context.Context, ownerID int64, filter models.NoteFilter) ([]models.Note, error)
	CreateNote(ctx context.Context, ownerID int64, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID int64, update models.NoteUpdate, partial bool) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}
