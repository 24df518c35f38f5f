// Package models defines the domain types for Laguz.
package models

// Note is a single named entry in the notebook. The store assigns ID on
// creation and it never changes afterwards; Name and Note may be updated
// independently. An empty Note is valid content, distinct from the row
// being absent.
type Note struct {
	ID   int64  `json:"id"`
	Name string `json:"note_name"`
	Note string `json:"note"`
}
