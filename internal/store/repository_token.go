package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// tokenRepository is the PostgreSQL-backed implementation of
// [TokenRepository]. It manages the one-token-per-user "auth_tokens" table.
type tokenRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewTokenRepository constructs a [TokenRepository] backed by the provided
// database connection and logger.
func NewTokenRepository(db *DB, logger *logger.Logger) TokenRepository {
	logger.Debug().Msg("creating token repository")
	return &tokenRepository{
		db:     db,
		logger: logger,
	}
}

// GetOrCreateToken returns the user's active token, minting one from
// candidateKey when none exists.
//
// The insert runs with ON CONFLICT (user_id) DO NOTHING, so under concurrent
// logins only one candidate key is stored; every caller then reads back the
// single surviving row. Repeated logins therefore return the same key until
// the token is deleted by a logout.
func (r *tokenRepository) GetOrCreateToken(ctx context.Context, userID int64, candidateKey string) (models.AuthToken, error) {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, insertTokenIfAbsent, candidateKey, userID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Int64("user_id", userID).Msg("failed to insert token")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	var token models.AuthToken
	row := r.db.QueryRowContext(ctx, getTokenByUserID, userID)
	if err := row.Scan(&token.Key, &token.UserID, &token.CreatedAt); err != nil {
		log.Err(err).Str("func", "*tokenRepository.GetOrCreateToken").Int64("user_id", userID).Msg("failed to read back token")
		return models.AuthToken{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return token, nil
}

// FindUserByToken resolves the presented token key to its owning user.
//
// Error handling:
//   - [sql.ErrNoRows] → [ErrTokenNotFound] (unknown or revoked credential).
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *tokenRepository) FindUserByToken(ctx context.Context, key string) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, findUserByToken, key)
	if err := row.Scan(&user.UserID, &user.Username, &user.PasswordHash, &user.Email, &user.FirstName, &user.LastName, &user.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrTokenNotFound
		}

		log.Err(err).Str("func", "*tokenRepository.FindUserByToken").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// DeleteUserTokens removes every token belonging to the user. Deleting zero
// rows is not an error, which makes logout idempotent in effect.
func (r *tokenRepository) DeleteUserTokens(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteUserTokens, userID); err != nil {
		log.Err(err).Str("func", "*tokenRepository.DeleteUserTokens").Int64("user_id", userID).Msg("failed to delete tokens")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
