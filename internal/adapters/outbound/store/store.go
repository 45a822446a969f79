package store

import (
	"bytes"
	"encoding/json"
	"os"

	"github.com/FranderUC/lol-itemset-id-fixer/internal/domain"
)

// FileStore implements domain.ItemSetStore on the local filesystem.
type FileStore struct{}

func New() *FileStore {
	return &FileStore{}
}

// Backup writes the original bytes to <path>.bak unless a backup already
// exists. The first backup of a file is never overwritten, so the pre-run
// original survives repeated runs.
func (s *FileStore) Backup(path string, original []byte) (string, error) {
	bak := path + ".bak"
	if _, err := os.Stat(bak); err == nil {
		return bak, nil
	} else if !os.IsNotExist(err) {
		return "", &domain.BackupError{Path: path, Err: err}
	}

	if err := os.WriteFile(bak, original, 0644); err != nil {
		return "", &domain.BackupError{Path: path, Err: err}
	}
	return bak, nil
}

// Write overwrites path with the minified serialization of doc. Riot ships
// these files minified; keep the same shape.
func (s *FileStore) Write(path string, doc map[string]any) error {
	data, err := marshalMinified(doc)
	if err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return &domain.WriteError{Path: path, Err: err}
	}
	return nil
}

// marshalMinified serializes without HTML escaping so item names keep their
// literal UTF-8 characters.
func marshalMinified(doc map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
