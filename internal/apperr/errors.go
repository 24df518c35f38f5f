// Package apperr defines the domain error set shared by the store and
// every front-end (CLI, HTTP, MCP).
package apperr

import (
	"errors"
	"fmt"
)

// Sentinels for errors.Is checks. The typed errors below match them, so
// callers that do not care about the offending notename can test against
// these directly.
var (
	ErrNotFound  = errors.New("note not found")
	ErrNameTaken = errors.New("notename already taken")
	ErrInput     = errors.New("failed to read note input")
)

// NotFoundError reports an operation against a notename with no row.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("note %q not found", e.Name)
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// NameTakenError reports a create or rename onto an existing notename.
type NameTakenError struct {
	Name string
}

func (e *NameTakenError) Error() string {
	return fmt.Sprintf("the notename %q is already taken; try another notename", e.Name)
}

func (e *NameTakenError) Is(target error) bool { return target == ErrNameTaken }

// NotFound returns a NotFoundError for the given notename.
func NotFound(name string) error { return &NotFoundError{Name: name} }

// NameTaken returns a NameTakenError for the given notename.
func NameTaken(name string) error { return &NameTakenError{Name: name} }
