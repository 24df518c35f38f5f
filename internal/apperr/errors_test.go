package apperr

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNotFoundMatchesSentinel(t *testing.T) {
	err := NotFound("passwords")
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFound should match ErrNotFound")
	}
	if errors.Is(err, ErrNameTaken) {
		t.Error("NotFound should not match ErrNameTaken")
	}
	if !strings.Contains(err.Error(), "passwords") {
		t.Errorf("error message %q should carry the notename", err.Error())
	}
}

func TestNameTakenMatchesSentinel(t *testing.T) {
	err := NameTaken("todo")
	if !errors.Is(err, ErrNameTaken) {
		t.Error("NameTaken should match ErrNameTaken")
	}
	if !strings.Contains(err.Error(), "todo") {
		t.Errorf("error message %q should carry the notename", err.Error())
	}
}

func TestWrappedErrorsStillMatch(t *testing.T) {
	err := fmt.Errorf("dispatch: %w", NotFound("gone"))
	if !errors.Is(err, ErrNotFound) {
		t.Error("wrapped NotFound should match ErrNotFound")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) || nf.Name != "gone" {
		t.Errorf("errors.As should recover the notename, got %+v", nf)
	}
}
