package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLocalUserID(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "benkyo.db")

	first, err := LocalUserID(dbPath)
	if err != nil {
		t.Fatalf("first call: %v", err)
	}

	second, err := LocalUserID(dbPath)
	if err != nil {
		t.Fatalf("second call: %v", err)
	}
	if first != second {
		t.Errorf("identity not stable: %s then %s", first, second)
	}
}

func TestLocalUserID_PerDirectory(t *testing.T) {
	a, err := LocalUserID(filepath.Join(t.TempDir(), "a.db"))
	if err != nil {
		t.Fatal(err)
	}
	b, err := LocalUserID(filepath.Join(t.TempDir(), "b.db"))
	if err != nil {
		t.Fatal(err)
	}
	if a == b {
		t.Error("distinct data directories share an identity")
	}
}

func TestLocalUserID_Corrupt(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "user_id"), []byte("garbage"), 0600); err != nil {
		t.Fatal(err)
	}
	if _, err := LocalUserID(filepath.Join(dir, "benkyo.db")); err == nil {
		t.Error("expected error for corrupt user_id file")
	}
}
