package models

import "time"

// Note is a personal text note owned by exactly one user.
//
// Ownership is immutable after creation and every read or write of a note
// is scoped to its owner at the persistence layer.
type Note struct {
	// NoteID is the server-assigned unique identifier of the note.
	NoteID int64 `json:"id"`

	// Title is the short caption of the note.
	Title string `json:"title"`

	// Content is the unbounded note body.
	Content string `json:"content"`

	// CreatedAt is set once at creation and never changes afterwards.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is refreshed server-side on every successful mutation.
	UpdatedAt time.Time `json:"updated_at"`

	// OwnerID references the owning user. It is forced server-side to the
	// authenticated caller and is never taken from client input.
	OwnerID int64 `json:"-"`

	// Owner is the owning user's username, populated on serialization only.
	Owner string `json:"owner"`

	// Folder is a free-form label used as an informal category or tag.
	// It is not a hierarchical path. Defaults to the empty string.
	Folder string `json:"folder"`

	// IsFavorite marks the note as a favorite.
	IsFavorite bool `json:"is_favorite"`

	// IsArchived marks the note as archived.
	IsArchived bool `json:"is_archived"`
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NoteUpdate describes a partial or full mutation of a note.
// Nil fields are left untouched; the owner reference can never be changed.
type NoteUpdate struct {
	Title      *string `json:"title"`
	Content    *string `json:"content"`
	Folder     *string `json:"folder"`
	IsFavorite *bool   `json:"is_favorite"`
	IsArchived *bool   `json:"is_archived"`
}

// NoteFilter holds the optional list filters supported by the notes
// collection endpoint. All present filters are combined with logical AND.
type NoteFilter struct {
	// Folder restricts the result to notes with this exact folder label.
	Folder *string

	// IsFavorite restricts the result by the favorite flag.
	IsFavorite *bool

	// IsArchived restricts the result by the archived flag.
	IsArchived *bool

	// Query is the free-text `q` parameter: a case-insensitive substring
	// match against title OR content.
	Query string

	// Search is the structured `search` parameter: a case-insensitive
	// substring match against title, content OR folder.
	Search string
}
