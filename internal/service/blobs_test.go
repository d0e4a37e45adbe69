package service

import "fmt"

// memBlobStore is an in-memory storage.Store that records deletions, so
// tests can assert exactly which blobs a service cleaned up.
type memBlobStore struct {
	next    int
	blobs   map[string]bool
	deleted []string
}

func newMemBlobStore(ids ...string) *memBlobStore {
	store := &memBlobStore{blobs: map[string]bool{}}
	for _, id := range ids {
		store.blobs[id] = true
	}
	return store
}

func (m *memBlobStore) Save(data []byte, ext string) (string, error) {
	m.next++
	id := fmt.Sprintf("blob-%d.%s", m.next, ext)
	m.blobs[id] = true
	return id, nil
}

func (m *memBlobStore) URL(id string) (string, bool) {
	if !m.blobs[id] {
		return "", false
	}
	return "/static/uploads/" + id, true
}

func (m *memBlobStore) URLs(ids []string) map[string]string {
	urls := make(map[string]string, len(ids))
	for _, id := range ids {
		if url, ok := m.URL(id); ok {
			urls[id] = url
		}
	}
	return urls
}

func (m *memBlobStore) Delete(id string) error {
	delete(m.blobs, id)
	m.deleted = append(m.deleted, id)
	return nil
}

func (m *memBlobStore) deletedSet() map[string]bool {
	set := make(map[string]bool, len(m.deleted))
	for _, id := range m.deleted {
		set[id] = true
	}
	return set
}
