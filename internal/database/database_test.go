package database

import (
	"path/filepath"
	"testing"
)

func TestDefaultPath(t *testing.T) {
	dataHome := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dataHome)

	expected := filepath.Join(dataHome, "weather-terminal", "weather-terminal.db")
	if got := DefaultPath(); got != expected {
		t.Errorf("DefaultPath() = %v, want %v", got, expected)
	}
	if got := DataDir(); got != filepath.Dir(expected) {
		t.Errorf("DataDir() = %v, want %v", got, filepath.Dir(expected))
	}
}

func TestOpen_CreatesDirectory(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "dir", "places.db")

	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer db.Close()

	var name string
	err = db.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name='saved_places'").Scan(&name)
	if err != nil {
		t.Fatalf("saved_places table missing: %v", err)
	}
}
