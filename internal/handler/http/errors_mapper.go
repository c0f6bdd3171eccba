package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
)

// detailResponse is the single-field error body used for authentication and
// lookup failures, e.g. {"detail": "Invalid token."}.
type detailResponse struct {
	Detail string `json:"detail"`
}

var errorStatusMap = map[error]int{
	service.ErrInvalidCredentials: http.StatusBadRequest,
	service.ErrInvalidToken:       http.StatusUnauthorized,

	store.ErrUsernameAlreadyExists: http.StatusBadRequest,
	store.ErrNoUserWasFound:        http.StatusBadRequest,
	store.ErrTokenNotFound:         http.StatusUnauthorized,
	store.ErrNoteNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError converts a service or store error into its HTTP representation.
//
// Validation failures are rendered as a field-keyed map of message lists,
// invalid credentials as a "non_field_errors" entry, and token and lookup
// failures as a "detail" body. Anything unrecognized becomes a plain 500.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	if fieldErrors, ok := validators.AsFieldErrors(err); ok {
		log.Debug().Err(err).Msg("validation failed")
		utils.WriteJSON(w, fieldErrors, http.StatusBadRequest)
		return
	}

	if errors.Is(err, service.ErrInvalidCredentials) {
		log.Debug().Err(err).Msg("login rejected")
		utils.WriteJSON(w, validators.FieldErrors{
			validators.NonFieldKey: {"Invalid username or password."},
		}, http.StatusBadRequest)
		return
	}

	status := statusFromError(err)
	switch status {
	case http.StatusUnauthorized:
		log.Debug().Err(err).Send()
		utils.WriteJSON(w, detailResponse{Detail: "Invalid token."}, status)
	case http.StatusNotFound:
		log.Debug().Err(err).Send()
		utils.WriteJSON(w, detailResponse{Detail: "Not found."}, status)
	default:
		log.Error().Err(err).Send()
		http.Error(w, http.StatusText(status), status)
	}
}
