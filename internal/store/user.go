package store

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalUserID returns the stable user ID for this installation, creating it
// on first use. The ID lives in a user_id file next to the database so that
// pointing --db at a different directory yields a different identity.
func LocalUserID(dbPath string) (uuid.UUID, error) {
	idPath := filepath.Join(filepath.Dir(dbPath), "user_id")

	data, err := os.ReadFile(idPath)
	if err == nil {
		id, perr := uuid.Parse(strings.TrimSpace(string(data)))
		if perr != nil {
			return uuid.Nil, fmt.Errorf("parse %s: %w", idPath, perr)
		}
		return id, nil
	}
	if !os.IsNotExist(err) {
		return uuid.Nil, fmt.Errorf("read %s: %w", idPath, err)
	}

	id := uuid.New()
	if err := os.WriteFile(idPath, []byte(id.String()+"\n"), 0600); err != nil {
		return uuid.Nil, fmt.Errorf("write %s: %w", idPath, err)
	}
	return id, nil
}
