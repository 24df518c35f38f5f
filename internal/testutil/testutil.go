// Package testutil provides shared test helpers for setting up notebook
// databases.
package testutil

import (
	"os"
	"testing"

	"github.com/starford/laguz/internal/notebook"
)

// TestDB creates a temporary SQLite notebook that is automatically
// cleaned up.
func TestDB(t *testing.T) *notebook.DB {
	t.Helper()
	dbFile, err := os.CreateTemp("", "laguz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	dbFile.Close()
	t.Cleanup(func() { os.Remove(dbFile.Name()) })

	db, err := notebook.Open(dbFile.Name(), nil)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
