package notebook

import (
	"errors"
	"os"
	"testing"

	"github.com/starford/laguz/internal/apperr"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	f, err := os.CreateTemp("", "laguz-test-*.db")
	if err != nil {
		t.Fatal(err)
	}
	f.Close()
	t.Cleanup(func() { os.Remove(f.Name()) })

	db, err := Open(f.Name(), nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestSchemaCreation(t *testing.T) {
	db := testDB(t)
	var count int
	if err := db.conn.QueryRow(`SELECT count(*) FROM notebook`).Scan(&count); err != nil {
		t.Fatalf("notebook table missing: %v", err)
	}
}

func TestCreateAndGet(t *testing.T) {
	db := testDB(t)
	created, err := db.Create("groceries", "milk\neggs")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == 0 {
		t.Error("expected a generated id")
	}

	got, err := db.Get("groceries")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "groceries" || got.Note != "milk\neggs" {
		t.Errorf("got %+v, want name=groceries note=milk\\neggs", got)
	}
	if got.ID != created.ID {
		t.Errorf("id = %d, want %d", got.ID, created.ID)
	}
}

func TestCreateEmptyContent(t *testing.T) {
	db := testDB(t)
	if _, err := db.Create("empty", ""); err != nil {
		t.Fatalf("Create with empty content: %v", err)
	}
	got, err := db.Get("empty")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Note != "" {
		t.Errorf("note = %q, want empty", got.Note)
	}
}

func TestCreateDuplicate(t *testing.T) {
	db := testDB(t)
	if _, err := db.Create("dup", "first"); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	_, err := db.Create("dup", "second")
	if !errors.Is(err, apperr.ErrNameTaken) {
		t.Fatalf("duplicate Create = %v, want ErrNameTaken", err)
	}
	var taken *apperr.NameTakenError
	if !errors.As(err, &taken) || taken.Name != "dup" {
		t.Errorf("error should carry the notename, got %v", err)
	}

	// First row must be unmodified.
	got, err := db.Get("dup")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Note != "first" {
		t.Errorf("note = %q, first row was modified", got.Note)
	}
}

func TestGetMissing(t *testing.T) {
	db := testDB(t)
	_, err := db.Get("nope")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("Get missing = %v, want ErrNotFound", err)
	}
	var nf *apperr.NotFoundError
	if !errors.As(err, &nf) || nf.Name != "nope" {
		t.Errorf("error should carry the notename, got %v", err)
	}
}

func TestDeleteThenGet(t *testing.T) {
	db := testDB(t)
	_, _ = db.Create("gone", "bye")

	if err := db.Delete("gone"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := db.Get("gone"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Get after Delete = %v, want ErrNotFound", err)
	}
}

func TestDeleteMissing(t *testing.T) {
	db := testDB(t)
	if err := db.Delete("never"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Delete missing = %v, want ErrNotFound", err)
	}
}

func TestDeleteAll(t *testing.T) {
	db := testDB(t)
	for _, name := range []string{"a", "b", "c"} {
		if _, err := db.Create(name, "x"); err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
	}

	n, err := db.DeleteAll()
	if err != nil {
		t.Fatalf("DeleteAll: %v", err)
	}
	if n != 3 {
		t.Errorf("deleted count = %d, want 3", n)
	}

	all, err := db.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != 0 {
		t.Errorf("GetAll after DeleteAll = %d notes, want 0", len(all))
	}
}

func TestDeleteAllEmpty(t *testing.T) {
	db := testDB(t)
	n, err := db.DeleteAll()
	if err != nil {
		t.Fatalf("DeleteAll on empty notebook: %v", err)
	}
	if n != 0 {
		t.Errorf("deleted count = %d, want 0", n)
	}
}

func TestClear(t *testing.T) {
	db := testDB(t)
	_, _ = db.Create("trash", "meow meow meow")

	if err := db.Clear("trash"); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	got, err := db.Get("trash")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Note != "" {
		t.Errorf("note = %q, want empty after Clear", got.Note)
	}
}

func TestClearMissing(t *testing.T) {
	db := testDB(t)
	if err := db.Clear("missing"); !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Clear missing = %v, want ErrNotFound", err)
	}
}

func TestUpdate(t *testing.T) {
	db := testDB(t)
	created, _ := db.Create("wrong_note", "Thos is erong nlte")

	upd, err := db.Update("wrong_note", "This is NOT a wrong note")
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if upd.Note != "This is NOT a wrong note" {
		t.Errorf("note = %q", upd.Note)
	}
	if upd.ID != created.ID {
		t.Errorf("id changed on update: %d -> %d", created.ID, upd.ID)
	}
}

func TestUpdateIdempotent(t *testing.T) {
	db := testDB(t)
	_, _ = db.Create("idem", "v0")

	first, err := db.Update("idem", "v1")
	if err != nil {
		t.Fatalf("first Update: %v", err)
	}
	second, err := db.Update("idem", "v1")
	if err != nil {
		t.Fatalf("second Update: %v", err)
	}
	if *first != *second {
		t.Errorf("repeated update changed state: %+v vs %+v", first, second)
	}
}

func TestUpdateMissing(t *testing.T) {
	db := testDB(t)
	_, err := db.Update("ghost", "content")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Update missing = %v, want ErrNotFound (no implicit create)", err)
	}
	if _, err := db.Get("ghost"); !errors.Is(err, apperr.ErrNotFound) {
		t.Error("Update on a missing name must not create a row")
	}
}

func TestRename(t *testing.T) {
	db := testDB(t)
	created, _ := db.Create("old", "content")

	renamed, err := db.Rename("old", "new")
	if err != nil {
		t.Fatalf("Rename: %v", err)
	}
	if renamed.Name != "new" || renamed.Note != "content" || renamed.ID != created.ID {
		t.Errorf("renamed = %+v", renamed)
	}
	if _, err := db.Get("old"); !errors.Is(err, apperr.ErrNotFound) {
		t.Error("old name should be gone after rename")
	}
}

func TestRenameCollision(t *testing.T) {
	db := testDB(t)
	_, _ = db.Create("x", "x-content")
	_, _ = db.Create("y", "y-content")

	_, err := db.Rename("x", "y")
	if !errors.Is(err, apperr.ErrNameTaken) {
		t.Fatalf("Rename collision = %v, want ErrNameTaken", err)
	}
	var taken *apperr.NameTakenError
	if !errors.As(err, &taken) || taken.Name != "y" {
		t.Errorf("error should carry the colliding name, got %v", err)
	}

	// Both rows must be unchanged.
	for name, want := range map[string]string{"x": "x-content", "y": "y-content"} {
		got, err := db.Get(name)
		if err != nil {
			t.Fatalf("Get %q: %v", name, err)
		}
		if got.Note != want {
			t.Errorf("%q note = %q, want %q", name, got.Note, want)
		}
	}
}

func TestRenameMissing(t *testing.T) {
	db := testDB(t)
	_, err := db.Rename("absent", "whatever")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Errorf("Rename missing = %v, want ErrNotFound", err)
	}
}

func TestGetAllInsertionOrder(t *testing.T) {
	db := testDB(t)
	names := []string{"zeta", "alpha", "mid"}
	for _, name := range names {
		if _, err := db.Create(name, "body of "+name); err != nil {
			t.Fatalf("Create %q: %v", name, err)
		}
	}

	all, err := db.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(all) != len(names) {
		t.Fatalf("got %d notes, want %d", len(all), len(names))
	}
	for i, name := range names {
		if all[i].Name != name {
			t.Errorf("all[%d].Name = %q, want %q (insertion order)", i, all[i].Name, name)
		}
	}
}
