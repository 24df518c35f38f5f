// Package command maps a parsed notebook command onto store operations,
// including the interactive multi-line note capture used by add and upd.
package command

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Kind selects which notebook operation a Command performs.
// The zero value means "no command given" and displays every note.
type Kind int

const (
	DisplayAll Kind = iota
	Add
	Delete
	DeleteAll
	Clear
	UpdateNote
	Rename
	Display
)

// Command is one fully parsed invocation. Name is the target notename;
// NewName is only set for Rename.
type Command struct {
	Kind    Kind
	Name    string
	NewName string
}

// Validate checks that the command carries the notename arguments its
// kind requires.
func (c Command) Validate() error {
	switch c.Kind {
	case DisplayAll, DeleteAll:
		return nil
	case Rename:
		if err := validateNotename(c.Name); err != nil {
			return err
		}
		return validateNotename(c.NewName)
	default:
		return validateNotename(c.Name)
	}
}

func validateNotename(name string) error {
	return validation.Validate(name,
		validation.Required.Error("notename is required"),
		validation.Length(1, 255),
	)
}
