package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the opaque
// token lifecycle using a UserRepository and TokenRepository for
// persistence and bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenRepository holds the one-token-per-user credential table.
	tokenRepository store.TokenRepository

	// credentialsValidator enforces the registration field constraints and
	// the password strength policy before any persistence happens.
	credentialsValidator validators.Validator

	// tokenLength is the number of random bytes in a freshly minted token key.
	tokenLength int

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// repositories and populated with token parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, tokenRepository store.TokenRepository, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository:       userRepository,
		tokenRepository:      tokenRepository,
		credentialsValidator: validators.NewCredentialsValidator(),
		tokenLength:          cfg.TokenLength,
		logger:               logger,
	}
}

// Register creates a new user account.
//
// It runs the credentials validator (password confirmation, strength policy,
// username constraints), hashes the password with bcrypt, and delegates
// persistence to the UserRepository. The raw password never reaches the
// store or the logs.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - [validators.FieldErrors] describing every violated constraint,
//     including a username conflict reported by the store.
//   - A wrapped storage error if the repository call fails unexpectedly.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if err := a.credentialsValidator.Validate(ctx, req); err != nil {
		log.Error().Str("username", req.Username).Msg("registration input failed validation")
		return models.User{}, err
	}

	passwordHash, err := utils.HashPassword(req.Password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrUsernameAlreadyExists) {
			log.Err(err).Str("username", req.Username).Msg("username is taken")
			return models.User{}, validators.FieldErrors{"username": {MsgUsernameTaken}}
		}

		log.Err(err).Str("username", req.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user and returns their token.
//
// A missing user and a wrong password both produce [ErrInvalidCredentials]
// so the response shape carries no enumeration signal. On success a
// candidate token key is generated and handed to the repository's atomic
// get-or-create, which returns the user's existing token if one survives
// from an earlier login.
func (a *authService) Login(ctx context.Context, creds models.Credentials) (models.AuthToken, models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Username == "" || creds.Password == "" {
		return models.AuthToken{}, models.User{}, ErrInvalidCredentials
	}

	foundUser, err := a.userRepository.FindUserByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Debug().Str("username", creds.Username).Msg("login attempt for unknown username")
			return models.AuthToken{}, models.User{}, ErrInvalidCredentials
		}

		log.Err(err).Msg("user search by username failed")
		return models.AuthToken{}, models.User{}, fmt.Errorf("user search by username failed: %w", err)
	}

	if !utils.CheckPassword(foundUser.PasswordHash, creds.Password) {
		log.Debug().Int64("id", foundUser.UserID).Str("username", foundUser.Username).Msg("wrong password")
		return models.AuthToken{}, models.User{}, ErrInvalidCredentials
	}

	candidateKey, err := utils.GenerateTokenKey(a.tokenLength)
	if err != nil {
		log.Err(err).Msg("token key generation failed")
		return models.AuthToken{}, models.User{}, fmt.Errorf("token key generation failed: %w", err)
	}

	token, err := a.tokenRepository.GetOrCreateToken(ctx, foundUser.UserID, candidateKey)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("token issuance failed")
		return models.AuthToken{}, models.User{}, fmt.Errorf("token issuance failed: %w", err)
	}

	return token, foundUser, nil
}

// Authenticate resolves an opaque token key to its owning user.
//
// Any lookup miss is normalised to [ErrInvalidToken] so that callers do not
// need to inspect storage errors.
func (a *authService) Authenticate(ctx context.Context, tokenKey string) (models.User, error) {
	user, err := a.tokenRepository.FindUserByToken(ctx, tokenKey)
	if err != nil {
		if errors.Is(err, store.ErrTokenNotFound) {
			return models.User{}, ErrInvalidToken
		}

		return models.User{}, fmt.Errorf("token lookup failed: %w", err)
	}

	return user, nil
}

// Logout deletes every token belonging to the user. Deleting an already
// logged-out user's tokens is a no-op, so the operation is idempotent in
// effect; reaching it at all still requires a valid credential.
func (a *authService) Logout(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if err := a.tokenRepository.DeleteUserTokens(ctx, userID); err != nil {
		log.Err(err).Int64("id", userID).Msg("token deletion failed")
		return fmt.Errorf("token deletion failed: %w", err)
	}

	return nil
}
