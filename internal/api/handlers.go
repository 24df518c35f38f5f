package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/starford/laguz/internal/apperr"
	"github.com/starford/laguz/internal/notebook"
)

// Handler holds API route handlers over the note store.
type Handler struct {
	db *notebook.DB
}

// NewHandler creates a new Handler.
func NewHandler(db *notebook.DB) *Handler {
	return &Handler{db: db}
}

// noteName extracts the notename from the URL path parameter.
func noteName(r *http.Request) string {
	raw := chi.URLParam(r, "name")
	decoded, err := url.PathUnescape(raw)
	if err != nil {
		return raw
	}
	return decoded
}

// writeDomainError maps domain errors to HTTP status codes; anything
// unclassified is an internal error.
func writeDomainError(w http.ResponseWriter, op string, err error) {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorBody(err.Error()))
	case errors.Is(err, apperr.ErrNameTaken):
		writeJSON(w, http.StatusConflict, errorBody(err.Error()))
	default:
		slog.Error(op+" failed", slog.String("error", err.Error()))
		writeJSON(w, http.StatusInternalServerError, errorBody("internal error"))
	}
}

// ListNotes handles GET /api/notes.
func (h *Handler) ListNotes(w http.ResponseWriter, _ *http.Request) {
	notes, err := h.db.GetAll()
	if err != nil {
		writeDomainError(w, "list notes", err)
		return
	}
	if notes == nil {
		notes = []NoteResponse{}
	}
	writeJSON(w, http.StatusOK, NoteListResponse{Notes: notes, Total: len(notes)})
}

// GetNote handles GET /api/notes/{name}.
func (h *Handler) GetNote(w http.ResponseWriter, r *http.Request) {
	name := noteName(r)
	note, err := h.db.Get(name)
	if err != nil {
		writeDomainError(w, "get note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// CreateNote handles POST /api/notes.
func (h *Handler) CreateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	var req CreateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.Name == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("note_name is required"))
		return
	}
	note, err := h.db.Create(req.Name, req.Note)
	if err != nil {
		writeDomainError(w, "create note", err)
		return
	}
	writeJSON(w, http.StatusCreated, note)
}

// UpdateNote handles PUT /api/notes/{name}.
func (h *Handler) UpdateNote(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, 1<<20)
	name := noteName(r)
	var req UpdateNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	note, err := h.db.Update(name, req.Note)
	if err != nil {
		writeDomainError(w, "update note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// DeleteNote handles DELETE /api/notes/{name}.
func (h *Handler) DeleteNote(w http.ResponseWriter, r *http.Request) {
	name := noteName(r)
	if err := h.db.Delete(name); err != nil {
		writeDomainError(w, "delete note", err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// DeleteAllNotes handles DELETE /api/notes.
func (h *Handler) DeleteAllNotes(w http.ResponseWriter, _ *http.Request) {
	n, err := h.db.DeleteAll()
	if err != nil {
		writeDomainError(w, "delete all notes", err)
		return
	}
	writeJSON(w, http.StatusOK, DeleteAllResponse{Deleted: n})
}

// RenameNote handles POST /api/notes/{name}/rename.
func (h *Handler) RenameNote(w http.ResponseWriter, r *http.Request) {
	name := noteName(r)
	var req RenameNoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody("invalid JSON body"))
		return
	}
	if req.NewName == "" {
		writeJSON(w, http.StatusBadRequest, errorBody("new_name is required"))
		return
	}
	note, err := h.db.Rename(name, req.NewName)
	if err != nil {
		writeDomainError(w, "rename note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}

// ClearNote handles POST /api/notes/{name}/clear.
func (h *Handler) ClearNote(w http.ResponseWriter, r *http.Request) {
	name := noteName(r)
	if err := h.db.Clear(name); err != nil {
		writeDomainError(w, "clear note", err)
		return
	}
	note, err := h.db.Get(name)
	if err != nil {
		writeDomainError(w, "clear note", err)
		return
	}
	writeJSON(w, http.StatusOK, note)
}
