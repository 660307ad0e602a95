package db

import (
	"path/filepath"
	"testing"
)

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	// Schema should be in place.
	var count int
	err = d.QueryRow(`SELECT COUNT(*) FROM questions`).Scan(&count)
	if err != nil {
		t.Fatalf("querying questions table: %v", err)
	}
	if count != 0 {
		t.Errorf("expected empty questions table, got %d rows", count)
	}
}

func TestOpenCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "docqa.db")
	d, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer d.Close()

	if _, err := d.Exec(`INSERT INTO questions (id, question) VALUES ('q1', 'hello')`); err != nil {
		t.Fatalf("insert: %v", err)
	}

	var got string
	if err := d.QueryRow(`SELECT question FROM questions WHERE id = 'q1'`).Scan(&got); err != nil {
		t.Fatalf("select: %v", err)
	}
	if got != "hello" {
		t.Errorf("question: got %q, want %q", got, "hello")
	}
}
