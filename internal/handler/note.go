package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/notedeck/notedeck-go/internal/middleware"
	"github.com/notedeck/notedeck-go/internal/model"
	"github.com/notedeck/notedeck-go/internal/service"
)

// NoteHandler handles HTTP requests for note operations.
type NoteHandler struct {
	service *service.NoteService
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(svc *service.NoteService) *NoteHandler {
	return &NoteHandler{service: svc}
}

// HandleList handles GET /api/notes requests.
func (h *NoteHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	notes, err := h.service.List(r.Context(), claims.UserID)
	if err != nil {
		slog.Error("listing notes failed", "user_id", claims.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to fetch notes"))
		return
	}

	writeJSON(w, http.StatusOK, notes)
}

// HandleCreate handles POST /api/notes requests.
func (h *NoteHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	note, err := h.service.Create(r.Context(), claims.UserID, req)
	if err != nil {
		if errors.Is(err, service.ErrTitleContentRequired) {
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
			return
		}
		slog.Error("creating note failed", "user_id", claims.UserID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to create note"))
		return
	}

	writeJSON(w, http.StatusCreated, note)
}

// HandleUpdate handles PUT /api/notes/{note_id} requests.
func (h *NoteHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid note id"))
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, 1<<20) // 1MB

	var req model.NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if err.Error() == "http: request body too large" {
			writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse("request body too large"))
			return
		}
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	note, err := h.service.Update(r.Context(), claims.UserID, noteID, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrTitleContentRequired):
			writeJSON(w, http.StatusBadRequest, errorResponse(err.Error()))
		case errors.Is(err, service.ErrNoteNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			slog.Error("updating note failed", "user_id", claims.UserID, "note_id", noteID, "error", err)
			writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to update note"))
		}
		return
	}

	writeJSON(w, http.StatusOK, note)
}

// HandleDelete handles DELETE /api/notes/{note_id} requests.
func (h *NoteHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.UserFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	noteID, err := strconv.ParseInt(chi.URLParam(r, "note_id"), 10, 64)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse("invalid note id"))
		return
	}

	note, err := h.service.Delete(r.Context(), claims.UserID, noteID)
	if err != nil {
		if errors.Is(err, service.ErrNoteNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		slog.Error("deleting note failed", "user_id", claims.UserID, "note_id", noteID, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse("Failed to delete note"))
		return
	}

	writeJSON(w, http.StatusOK, model.DeleteNoteResponse{
		Message: "Note deleted",
		Note:    note,
	})
}
