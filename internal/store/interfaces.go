package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// UserRepository persists user identities.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TokenRepository persists opaque auth tokens, one per user.
//
// GetOrCreateToken must be atomic under concurrent logins: two simultaneous
// calls for the same user must converge on a single stored token.
type TokenRepository interface {
	GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.AuthToken, error)
	FindUserByToken(ctx context.Context, key string) (models.User, error)
	DeleteUserTokens(ctx context.Context, userID int64) error
}

// NoteRepository exposes owner-scoped note persistence. Every method takes
// the owner's user ID and never returns or mutates rows belonging to a
// different owner; a mismatch surfaces as [ErrNoteNotFound].
type NoteRepository interface {
	ListNotes(ctx context.Context, ownerID int64, filter models.NoteFilter) ([]models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error)
	UpdateNote(ctx context.Context, ownerID, noteID int64, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, ownerID, noteID int64) error
}
