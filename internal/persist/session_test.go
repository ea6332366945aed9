package persist

import (
	"path/filepath"
	"testing"
)

func TestSaveAndLoadSessionRoundTrips(t *testing.T) {
	dir := t.TempDir()
	s := NewSession("foo.swe", "1 + 2")
	s.RecordStep("Fst.End")
	s.RecordStep("End")

	path, err := SaveSession(dir, s)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	loaded, err := LoadSession(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if loaded.ID != s.ID {
		t.Errorf("got ID %q, want %q", loaded.ID, s.ID)
	}
	if loaded.ExprText != "1 + 2" {
		t.Errorf("got ExprText %q, want %q", loaded.ExprText, "1 + 2")
	}
	if len(loaded.Steps) != 2 || loaded.Steps[0] != "Fst.End" || loaded.Steps[1] != "End" {
		t.Errorf("got Steps %v, want [Fst.End End]", loaded.Steps)
	}
}

func TestRecordStepAppendsInOrder(t *testing.T) {
	s := NewSession("foo.swe", "x")
	s.RecordStep("a")
	s.RecordStep("b")
	if len(s.Steps) != 2 || s.Steps[0] != "a" || s.Steps[1] != "b" {
		t.Errorf("got %v", s.Steps)
	}
}

func TestListSessionsReturnsIDsWithoutExtension(t *testing.T) {
	dir := t.TempDir()
	s := NewSession("foo.swe", "x")
	if _, err := SaveSession(dir, s); err != nil {
		t.Fatal(err)
	}
	ids, err := ListSessions(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 1 || ids[0] != s.ID {
		t.Errorf("got %v, want [%s]", ids, s.ID)
	}
}

func TestListSessionsMissingDirIsEmptyNotError(t *testing.T) {
	ids, err := ListSessions(filepath.Join(t.TempDir(), "nonexistent"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("expected no sessions, got %v", ids)
	}
}
