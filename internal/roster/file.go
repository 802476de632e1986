package roster

import (
	"encoding/json"
	"fmt"
	"os"
)

// rosterFile is the on-disk JSON shape the host's out-of-band fetcher
// writes.
type rosterFile struct {
	Members []Member `json:"members"`
}

// ImportFile upserts every member from a roster JSON file and returns how
// many were imported.
func (s *Store) ImportFile(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}

	var file rosterFile
	if err := json.Unmarshal(data, &file); err != nil {
		return 0, fmt.Errorf("parse roster file: %w", err)
	}

	count := 0
	for _, m := range file.Members {
		if err := s.Upsert(m); err != nil {
			return count, fmt.Errorf("import %s: %w", m.Address, err)
		}
		count++
	}
	return count, nil
}

// WriteFile saves members as a roster JSON file, the same shape ImportFile
// reads.
func WriteFile(path string, members []Member) error {
	data, err := json.MarshalIndent(rosterFile{Members: members}, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(data, '\n'), 0o644)
}
