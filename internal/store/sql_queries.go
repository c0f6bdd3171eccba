package store

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (username, password_hash, email, first_name, last_name)
    VALUES ($1, $2, $3, $4, $5)
    RETURNING user_id, username, password_hash, email, first_name, last_name, created_at;`

	findUserByUsername = `SELECT user_id, username, password_hash, email, first_name, last_name, created_at
    FROM users
    WHERE username = $1;`

	// insertTokenIfAbsent relies on the UNIQUE(user_id) constraint: under
	// concurrent logins only one INSERT wins and the loser is a no-op, so
	// issuance is an atomic insert-if-absent rather than check-then-act.
	insertTokenIfAbsent = `INSERT INTO auth_tokens (token, user_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id) DO NOTHING;`

	getTokenByUserID = `SELECT token, user_id, created_at
		FROM auth_tokens
		WHERE user_id = $1;`

	findUserByToken = `SELECT u.user_id, u.username, u.password_hash, u.email, u.first_name, u.last_name, u.created_at
		FROM auth_tokens t
		JOIN users u ON u.user_id = t.user_id
		WHERE t.token = $1;`

	deleteUserTokens = `DELETE FROM auth_tokens
		WHERE user_id = $1;`

	createNote = `INSERT INTO notes (owner_id, title, content, folder, is_favorite, is_archived)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING note_id, owner_id, title, content, folder, is_favorite, is_archived, created_at, updated_at;`

	getNote = `SELECT note_id, owner_id, title, content, folder, is_favorite, is_archived, created_at, updated_at
		FROM notes
		WHERE owner_id = $1 AND note_id = $2;`

	deleteNote = `DELETE FROM notes
		WHERE owner_id = $1 AND note_id = $2;`

	updateNoteBase = `
		UPDATE notes
		SET updated_at = NOW()`
	updateNoteReturning = `
		RETURNING note_id, owner_id, title, content, folder, is_favorite, is_archived, created_at, updated_at`

	noteColumns = "note_id, owner_id, title, content, folder, is_favorite, is_archived, created_at, updated_at"
)

// buildListNotesQuery assembles the owner-scoped SELECT for the notes
// collection. All filters are combined with AND; the two text filters each
// expand into their own OR-group of case-insensitive substring matches.
// Results are ordered by updated_at descending.
func buildListNotesQuery(ownerID int64, filter models.NoteFilter) (string, []any, error) {
	builder := squirrel.
		Select(strings.Split(noteColumns, ", ")...).
		From("notes").
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("updated_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.Folder != nil {
		builder = builder.Where(squirrel.Eq{"folder": *filter.Folder})
	}
	if filter.IsFavorite != nil {
		builder = builder.Where(squirrel.Eq{"is_favorite": *filter.IsFavorite})
	}
	if filter.IsArchived != nil {
		builder = builder.Where(squirrel.Eq{"is_archived": *filter.IsArchived})
	}

	if filter.Query != "" {
		pattern := substringPattern(filter.Query)
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
		})
	}

	if filter.Search != "" {
		pattern := substringPattern(filter.Search)
		builder = builder.Where(squirrel.Or{
			squirrel.ILike{"title": pattern},
			squirrel.ILike{"content": pattern},
			squirrel.ILike{"folder": pattern},
		})
	}

	return builder.ToSql()
}

// substringPattern escapes the LIKE metacharacters in term and wraps it in
// wildcards so it matches as a literal substring.
func substringPattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(term)
	return "%" + escaped + "%"
}

// buildUpdateNoteQuery dynamically builds the UPDATE statement for a note.
// Only fields present in update produce SET clauses; updated_at is always
// refreshed. The WHERE clause pins both note_id and owner_id so a foreign
// note can never be touched.
func buildUpdateNoteQuery(ownerID, noteID int64, update models.NoteUpdate) (string, []any) {
	queryBuilder := new(strings.Builder)
	queryBuilder.WriteString(updateNoteBase)

	args := make([]any, 0, 7)
	setClauses := make([]string, 0, 5)
	argIndex := 1

	if update.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", argIndex))
		args = append(args, *update.Title)
		argIndex++
	}

	if update.Content != nil {
		setClauses = append(setClauses, fmt.Sprintf("content = $%d", argIndex))
		args = append(args, *update.Content)
		argIndex++
	}

	if update.Folder != nil {
		setClauses = append(setClauses, fmt.Sprintf("folder = $%d", argIndex))
		args = append(args, *update.Folder)
		argIndex++
	}

	if update.IsFavorite != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_favorite = $%d", argIndex))
		args = append(args, *update.IsFavorite)
		argIndex++
	}

	if update.IsArchived != nil {
		setClauses = append(setClauses, fmt.Sprintf("is_archived = $%d", argIndex))
		args = append(args, *update.IsArchived)
		argIndex++
	}

	if len(setClauses) > 0 {
		queryBuilder.WriteString(", ")
		queryBuilder.WriteString(strings.Join(setClauses, ", "))
	}

	queryBuilder.WriteString(fmt.Sprintf("\n\t\tWHERE note_id = $%d AND owner_id = $%d", argIndex, argIndex+1))
	args = append(args, noteID, ownerID)

	queryBuilder.WriteString(updateNoteReturning)

	return queryBuilder.String(), args
}
