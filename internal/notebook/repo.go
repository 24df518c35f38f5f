package notebook

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/starford/laguz/internal/apperr"
	"github.com/starford/laguz/internal/models"
)

// Create inserts a new note and returns it with its generated id.
// Returns apperr.NameTaken if the notename already exists.
func (db *DB) Create(name, content string) (*models.Note, error) {
	res, err := db.conn.Exec(`INSERT INTO notebook (note_name, note) VALUES (?, ?)`, name, content)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.NameTaken(name)
		}
		return nil, fmt.Errorf("notebook: insert %q: %w", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("notebook: insert id for %q: %w", name, err)
	}
	db.logger.Info("note added",
		slog.String("note_name", name),
		slog.String("note", content))
	return &models.Note{ID: id, Name: name, Note: content}, nil
}

// Delete removes the note with the given name.
// Returns apperr.NotFound if no row matches.
func (db *DB) Delete(name string) error {
	res, err := db.conn.Exec(`DELETE FROM notebook WHERE note_name = ?`, name)
	if err != nil {
		return fmt.Errorf("notebook: delete %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("notebook: delete %q: %w", name, err)
	}
	if n == 0 {
		return apperr.NotFound(name)
	}
	db.logger.Info("note deleted", slog.String("note_name", name))
	return nil
}

// DeleteAll removes every note and returns how many were removed.
// Zero is a valid count, not an error.
func (db *DB) DeleteAll() (int64, error) {
	res, err := db.conn.Exec(`DELETE FROM notebook`)
	if err != nil {
		return 0, fmt.Errorf("notebook: delete all: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("notebook: delete all: %w", err)
	}
	db.logger.Info("all notes deleted", slog.Int64("count", n))
	return n, nil
}

// Clear blanks the content of the note with the given name.
// Returns apperr.NotFound if no row matches.
func (db *DB) Clear(name string) error {
	res, err := db.conn.Exec(`UPDATE notebook SET note = '' WHERE note_name = ?`, name)
	if err != nil {
		return fmt.Errorf("notebook: clear %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("notebook: clear %q: %w", name, err)
	}
	if n == 0 {
		return apperr.NotFound(name)
	}
	db.logger.Info("note cleared", slog.String("note_name", name))
	return nil
}

// Update replaces the content of the note with the given name and
// returns the updated note. Returns apperr.NotFound if no row matches;
// a missing name is never an implicit create.
func (db *DB) Update(name, newContent string) (*models.Note, error) {
	res, err := db.conn.Exec(`UPDATE notebook SET note = ? WHERE note_name = ?`, newContent, name)
	if err != nil {
		return nil, fmt.Errorf("notebook: update %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("notebook: update %q: %w", name, err)
	}
	if n == 0 {
		return nil, apperr.NotFound(name)
	}
	db.logger.Info("note updated",
		slog.String("note_name", name),
		slog.String("note", newContent))
	return db.Get(name)
}

// Rename changes the notename of an existing note and returns it.
// Returns apperr.NotFound if name has no row, and apperr.NameTaken if
// newName collides with an existing row.
func (db *DB) Rename(name, newName string) (*models.Note, error) {
	res, err := db.conn.Exec(`UPDATE notebook SET note_name = ? WHERE note_name = ?`, newName, name)
	if err != nil {
		if isUniqueViolation(err) {
			return nil, apperr.NameTaken(newName)
		}
		return nil, fmt.Errorf("notebook: rename %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("notebook: rename %q: %w", name, err)
	}
	if n == 0 {
		return nil, apperr.NotFound(name)
	}
	db.logger.Info("note renamed",
		slog.String("old_name", name),
		slog.String("new_name", newName))
	return db.Get(newName)
}

// Get fetches the note with the given name.
// Returns apperr.NotFound if no row matches.
func (db *DB) Get(name string) (*models.Note, error) {
	var note models.Note
	err := db.conn.QueryRow(`SELECT id, note_name, note FROM notebook WHERE note_name = ?`, name).
		Scan(&note.ID, &note.Name, &note.Note)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperr.NotFound(name)
	}
	if err != nil {
		return nil, fmt.Errorf("notebook: get %q: %w", name, err)
	}
	return &note, nil
}

// GetAll fetches every note in insertion order, fully materialized.
func (db *DB) GetAll() ([]models.Note, error) {
	rows, err := db.conn.Query(`SELECT id, note_name, note FROM notebook ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("notebook: get all: %w", err)
	}
	defer rows.Close()

	var out []models.Note
	for rows.Next() {
		var note models.Note
		if err := rows.Scan(&note.ID, &note.Name, &note.Note); err != nil {
			return nil, err
		}
		out = append(out, note)
	}
	return out, rows.Err()
}
