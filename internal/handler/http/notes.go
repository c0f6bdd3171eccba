package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authenticated request")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	notes, err := h.services.NoteService.ListNotes(ctx, userID, filterFromQuery(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, withOwner(ctx, notes), http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authenticated request")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	var note models.Note
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	// Any client-supplied owner or id is discarded: the service forces the
	// owner to the authenticated caller and the store assigns the id.
	createdNote, err := h.services.NoteService.CreateNote(ctx, userID, note)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, withOwner(ctx, []models.Note{createdNote})[0], http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authenticated request")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, detailResponse{Detail: "Not found."}, http.StatusNotFound)
		return
	}

	note, err := h.services.NoteService.GetNote(ctx, userID, noteID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, withOwner(ctx, []models.Note{note})[0], http.StatusOK)
}

// updateNote handles PUT: a full replacement requiring title and content.
func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	h.applyNoteUpdate(w, r, false)
}

// patchNote handles PATCH: a partial update touching only supplied fields.
func (h *Handler) patchNote(w http.ResponseWriter, r *http.Request) {
	h.applyNoteUpdate(w, r, true)
}

func (h *Handler) applyNoteUpdate(w http.ResponseWriter, r *http.Request, partial bool) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authenticated request")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, detailResponse{Detail: "Not found."}, http.StatusNotFound)
		return
	}

	var update models.NoteUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedNote, err := h.services.NoteService.UpdateNote(ctx, userID, noteID, update, partial)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, withOwner(ctx, []models.Note{updatedNote})[0], http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user ID in context of an authenticated request")
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	noteID, err := noteIDFromRequest(r)
	if err != nil {
		utils.WriteJSON(w, detailResponse{Detail: "Not found."}, http.StatusNotFound)
		return
	}

	if err := h.services.NoteService.DeleteNote(ctx, userID, noteID); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// noteIDFromRequest parses the {noteID} URL parameter. A non-numeric id is
// treated by callers the same way as a missing note.
func noteIDFromRequest(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "noteID"), 10, 64)
}

// filterFromQuery maps the supported query parameters onto a
// [models.NoteFilter]. Empty and unparseable values are ignored, so an
// unfiltered request returns the caller's full collection.
func filterFromQuery(r *http.Request) models.NoteFilter {
	query := r.URL.Query()

	filter := models.NoteFilter{
		Query:  query.Get("q"),
		Search: query.Get("search"),
	}

	if folder := query.Get("folder"); folder != "" {
		filter.Folder = &folder
	}
	if raw := query.Get("is_favorite"); raw != "" {
		if isFavorite, err := strconv.ParseBool(raw); err == nil {
			filter.IsFavorite = &isFavorite
		}
	}
	if raw := query.Get("is_archived"); raw != "" {
		if isArchived, err := strconv.ParseBool(raw); err == nil {
			filter.IsArchived = &isArchived
		}
	}

	return filter
}

// withOwner stamps the caller's username into the owner field of every note
// before serialization. All notes returned by the service belong to the
// caller, so the value is the same for the whole slice.
func withOwner(ctx context.Context, notes []models.Note) []models.Note {
	username, _ := utils.GetUsernameFromContext(ctx)

	for i := range notes {
		notes[i].Owner = username
	}

	return notes
}
