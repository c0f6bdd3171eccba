package validators

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	msgFieldBlank   = "This field may not be blank."
	msgTitleTooLong = "Ensure this field has no more than 255 characters."

	// maxTitleLength caps the title to the column width of the notes table.
	maxTitleLength = 255
)

// NoteValidator checks note input before persistence. It validates both
// full note bodies (create, full update) and partial updates.
type NoteValidator struct{}

// NewNoteValidator constructs a [NoteValidator].
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate implements [Validator] for [models.Note] and [models.NoteUpdate]
// values. For a [models.NoteUpdate] only the fields that are present are
// checked; use [models.Note] to enforce the full required set.
func (v *NoteValidator) Validate(ctx context.Context, obj any) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value)
	case *models.Note:
		return v.validateNote(*value)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note) error {
	fieldErrors := FieldErrors{}

	validateTitle(note.Title, fieldErrors)
	if note.Content == "" {
		fieldErrors.Add("content", msgFieldBlank)
	}

	if fieldErrors.HasErrors() {
		return fieldErrors
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(update models.NoteUpdate) error {
	fieldErrors := FieldErrors{}

	if update.Title != nil {
		validateTitle(*update.Title, fieldErrors)
	}
	if update.Content != nil && *update.Content == "" {
		fieldErrors.Add("content", msgFieldBlank)
	}

	if fieldErrors.HasErrors() {
		return fieldErrors
	}

	return nil
}

func validateTitle(title string, fieldErrors FieldErrors) {
	if title == "" {
		fieldErrors.Add("title", msgFieldBlank)
		return
	}

	if len(title) > maxTitleLength {
		fieldErrors.Add("title", msgTitleTooLong)
	}
}
