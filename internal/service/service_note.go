package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService is the concrete implementation of NoteService. Authorization
// scoping happens here and in the repository: the owner ID always comes from
// the authenticated caller, never from client input.
type noteService struct {
	noteRepository store.NoteRepository
	noteValidator  validators.Validator
	logger         *logger.Logger
}

// NewNoteService constructs a NoteService wired to the given repository.
func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		noteValidator:  validators.NewNoteValidator(),
		logger:         logger,
	}
}

// ListNotes returns the caller's notes matching filter, most recently
// updated first.
func (s *noteService) ListNotes(ctx context.Context, ownerID int64, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	notes, err := s.noteRepository.ListNotes(ctx, ownerID, filter)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// CreateNote validates and persists a new note on behalf of the caller.
// The owner reference is overwritten with ownerID unconditionally; this is
// an authorization rule, not a default.
func (s *noteService) CreateNote(ctx context.Context, ownerID int64, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	if err := s.noteValidator.Validate(ctx, note); err != nil {
		log.Error().Int64("owner_id", ownerID).Msg("note input failed validation")
		return models.Note{}, err
	}

	note.OwnerID = ownerID

	createdNote, err := s.noteRepository.CreateNote(ctx, note)
	if err != nil {
		log.Err(err).Int64("owner_id", ownerID).Msg("note creation ended with error")
		return models.Note{}, fmt.Errorf("note creation ended with error: %w", err)
	}

	return createdNote, nil
}

// GetNote retrieves a single note owned by the caller. A note owned by
// another user is reported as [store.ErrNoteNotFound], indistinguishable
// from a missing note.
func (s *noteService) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	return s.noteRepository.GetNote(ctx, ownerID, noteID)
}

// UpdateNote applies a partial (PATCH) or full (PUT) update to the caller's
// note. A full update requires title and content to be present; any
// client-supplied owner value never reaches this layer and the stored owner
// is immutable.
func (s *noteService) UpdateNote(ctx context.Context, ownerID, noteID int64, update models.NoteUpdate, partial bool) (models.Note, error) {
	log := logger.FromContext(ctx)

	if !partial {
		fieldErrors := validators.FieldErrors{}
		if update.Title == nil {
			fieldErrors.Add("title", MsgFieldRequired)
		}
		if update.Content == nil {
			fieldErrors.Add("content", MsgFieldRequired)
		}
		if fieldErrors.HasErrors() {
			return models.Note{}, fieldErrors
		}
	}

	if err := s.noteValidator.Validate(ctx, update); err != nil {
		log.Error().Int64("owner_id", ownerID).Int64("note_id", noteID).Msg("note update failed validation")
		return models.Note{}, err
	}

	return s.noteRepository.UpdateNote(ctx, ownerID, noteID, update)
}

// DeleteNote permanently removes the caller's note.
func (s *noteService) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	return s.noteRepository.DeleteNote(ctx, ownerID, noteID)
}
