package api

import "github.com/starford/laguz/internal/models"

// CreateNoteRequest is the request body for creating a note.
type CreateNoteRequest struct {
	Name string `json:"note_name" example:"groceries"`
	Note string `json:"note" example:"milk\neggs"`
}

// UpdateNoteRequest is the request body for replacing a note's content.
type UpdateNoteRequest struct {
	Note string `json:"note" example:"updated content"`
}

// RenameNoteRequest is the request body for renaming a note.
type RenameNoteRequest struct {
	NewName string `json:"new_name" example:"shopping"`
}

// NoteResponse is the full note representation (aliased from the domain layer).
type NoteResponse = models.Note

// NoteListResponse wraps note listings.
type NoteListResponse struct {
	Notes []NoteResponse `json:"notes"`
	Total int            `json:"total" example:"3"`
}

// DeleteAllResponse reports how many notes a bulk delete removed.
type DeleteAllResponse struct {
	Deleted int64 `json:"deleted" example:"3"`
}
