// Package storage is the boundary to blob storage. Uploaded images live
// behind opaque storage ids; nothing outside this package knows where the
// bytes actually are.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
)

// ErrEmptyBlob is returned when a save is attempted with no data.
var ErrEmptyBlob = errors.New("blob data is empty")

// Store resolves and deletes uploaded blobs by opaque id. Delete is
// idempotent: deleting an id that no longer exists is not an error.
type Store interface {
	Save(data []byte, ext string) (string, error)
	URL(id string) (string, bool)
	URLs(ids []string) map[string]string
	Delete(id string) error
}

// LocalStore keeps blobs as files in a directory served as static content.
// The file name doubles as the storage id.
type LocalStore struct {
	dir     string
	urlPath string
}

// NewLocalStore creates a LocalStore rooted at dir, serving under urlPath.
func NewLocalStore(dir, urlPath string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}
	return &LocalStore{
		dir:     dir,
		urlPath: strings.TrimRight(urlPath, "/"),
	}, nil
}

// Save writes the blob and returns its new storage id. Ids follow the
// date-uuid pattern so files stay roughly sorted on disk.
func (s *LocalStore) Save(data []byte, ext string) (string, error) {
	if len(data) == 0 {
		return "", ErrEmptyBlob
	}

	cleaned := strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if cleaned == "" {
		cleaned = "bin"
	}

	id := fmt.Sprintf("%s-%s.%s", time.Now().Format("20060102"), uuid.New().String(), cleaned)
	if err := os.WriteFile(filepath.Join(s.dir, id), data, 0o644); err != nil {
		return "", err
	}
	return id, nil
}

// URL resolves a storage id to a public URL. The second return is false
// when the blob does not exist (deleted, or never uploaded).
func (s *LocalStore) URL(id string) (string, bool) {
	if !validID(id) {
		return "", false
	}
	if _, err := os.Stat(filepath.Join(s.dir, id)); err != nil {
		return "", false
	}
	return s.urlPath + "/" + id, true
}

// URLs resolves many ids in one pass. Ids that do not resolve are left out
// of the returned map.
func (s *LocalStore) URLs(ids []string) map[string]string {
	urls := make(map[string]string, len(ids))
	for _, id := range ids {
		if _, seen := urls[id]; seen {
			continue
		}
		if url, ok := s.URL(id); ok {
			urls[id] = url
		}
	}
	return urls
}

// Delete removes a blob. A missing blob is treated as already deleted.
func (s *LocalStore) Delete(id string) error {
	if !validID(id) {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, id))
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// validID rejects anything that could escape the storage directory.
func validID(id string) bool {
	if strings.TrimSpace(id) == "" {
		return false
	}
	if strings.ContainsAny(id, "/\\") || strings.Contains(id, "..") {
		return false
	}
	return true
}
