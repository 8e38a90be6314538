package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
)

// Export serializes every present namespace into one JSON document,
// suitable for backup or transfer to another machine.
func (s *Store) Export() ([]byte, error) {
	snapshot := make(map[string]json.RawMessage, len(Namespaces))
	for _, key := range Namespaces {
		var raw string
		err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("export %s: %w", key, err)
		}
		snapshot[key] = json.RawMessage(raw)
	}
	return json.MarshalIndent(snapshot, "", "  ")
}

// Import replaces stored namespaces wholesale from a snapshot document.
// Returns false if the document fails to parse, in which case nothing
// is written. Keys are applied one by one after a successful parse;
// a write failure mid-way leaves earlier keys applied.
func (s *Store) Import(data []byte) bool {
	var snapshot map[string]json.RawMessage
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return false
	}
	for _, key := range Namespaces {
		raw, ok := snapshot[key]
		if !ok {
			continue
		}
		if !s.setRaw(key, raw) {
			return false
		}
	}
	return true
}
