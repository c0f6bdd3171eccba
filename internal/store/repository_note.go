package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// It executes all note CRUD operations directly against the "notes" table
// using the embedded [*DB] connection.
//
// Every public method filters by owner_id, so a row belonging to another
// user is indistinguishable from a missing row.
type noteRepository struct {
	*DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] backed by the provided
// database connection and logger.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{
		DB:     db,
		logger: logger,
	}
}

// ListNotes retrieves the owner's notes matching filter, most recently
// updated first.
//
// Returns an empty slice when no records match.
func (r *noteRepository) ListNotes(ctx context.Context, ownerID int64, filter models.NoteFilter) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(ownerID, filter)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Int64("owner_id", ownerID).
			Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Int64("owner_id", ownerID).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)

	for rows.Next() {
		var note models.Note

		scanErr := rows.Scan(
			&note.NoteID,
			&note.OwnerID,
			&note.Title,
			&note.Content,
			&note.Folder,
			&note.IsFavorite,
			&note.IsArchived,
			&note.CreatedAt,
			&note.UpdatedAt,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "*noteRepository.ListNotes").
				Int64("owner_id", ownerID).
				Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).
			Str("func", "*noteRepository.ListNotes").
			Int64("owner_id", ownerID).
			Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// CreateNote persists a new note and returns the fully populated
// [models.Note] with server-assigned fields (NoteID, CreatedAt, UpdatedAt).
// The owner reference is taken from note.OwnerID, which the service layer
// forces to the authenticated caller.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	row := r.DB.QueryRowContext(ctx, createNote, note.OwnerID, note.Title, note.Content, note.Folder, note.IsFavorite, note.IsArchived)
	if err := row.Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.Folder,
		&note.IsFavorite,
		&note.IsArchived,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		log.Err(err).
			Str("func", "*noteRepository.CreateNote").
			Int64("owner_id", note.OwnerID).
			Msg("failed to insert note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// GetNote retrieves a single note scoped to its owner.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrNoteNotFound] (absent or owned by someone else).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *noteRepository) GetNote(ctx context.Context, ownerID, noteID int64) (models.Note, error) {
	log := logger.FromContext(ctx)

	var note models.Note
	row := r.DB.QueryRowContext(ctx, getNote, ownerID, noteID)
	if err := row.Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.Folder,
		&note.IsFavorite,
		&note.IsArchived,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.GetNote").
			Int64("owner_id", ownerID).
			Int64("note_id", noteID).
			Msg("error: scanning error")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// UpdateNote applies update to the note and returns the new row state.
// updated_at is refreshed server-side on every successful update; fields
// absent from update are left untouched.
//
// Error handling mirrors [noteRepository.GetNote]: a missing or foreign row
// surfaces as [ErrNoteNotFound].
func (r *noteRepository) UpdateNote(ctx context.Context, ownerID, noteID int64, update models.NoteUpdate) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args := buildUpdateNoteQuery(ownerID, noteID, update)

	var note models.Note
	row := r.DB.QueryRowContext(ctx, query, args...)
	if err := row.Scan(
		&note.NoteID,
		&note.OwnerID,
		&note.Title,
		&note.Content,
		&note.Folder,
		&note.IsFavorite,
		&note.IsArchived,
		&note.CreatedAt,
		&note.UpdatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Note{}, ErrNoteNotFound
		}

		log.Err(err).
			Str("func", "*noteRepository.UpdateNote").
			Int64("owner_id", ownerID).
			Int64("note_id", noteID).
			Msg("failed to update note")
		return models.Note{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return note, nil
}

// DeleteNote permanently removes the note. There is no tombstone; a deleted
// note cannot be recovered.
//
// Returns [ErrNoteNotFound] when no owner-scoped row was deleted.
func (r *noteRepository) DeleteNote(ctx context.Context, ownerID, noteID int64) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deleteNote, ownerID, noteID)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Int64("owner_id", ownerID).
			Int64("note_id", noteID).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}
