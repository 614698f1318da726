package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/cuemby/scribe/pkg/types"
)

// record is the on-disk layout: a single JSON object holding every user and
// document, written whole on each mutation.
type record struct {
	Users     map[string]*types.User     `json:"users"`
	Documents map[string]*types.Document `json:"documents"`
}

func newRecord() *record {
	return &record{
		Users:     make(map[string]*types.User),
		Documents: make(map[string]*types.Document),
	}
}

// FileStore implements Store on a single JSON file. One mutex serializes all
// operations; each operation reads the whole file, mutates, and writes the
// whole file back, so partial state is never observable.
type FileStore struct {
	mu   sync.Mutex
	path string
}

// NewFileStore creates a file-backed store at path. A missing file reads as
// an empty store; the file is created on the first write.
func NewFileStore(path string) (*FileStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}
	return &FileStore{path: path}, nil
}

// Close implements Store. The file store holds no open handles.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) load() (*record, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return newRecord(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store file: %w", err)
	}
	rec := newRecord()
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, fmt.Errorf("failed to decode store file: %w", err)
	}
	if rec.Users == nil {
		rec.Users = make(map[string]*types.User)
	}
	if rec.Documents == nil {
		rec.Documents = make(map[string]*types.Document)
	}
	return rec, nil
}

func (s *FileStore) save(rec *record) error {
	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode store file: %w", err)
	}
	// Write-then-rename keeps readers from ever seeing a torn file.
	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("failed to write store file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace store file: %w", err)
	}
	return nil
}

// User operations

func (s *FileStore) GetUser(username string) (*types.User, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return nil, false, err
	}
	user, ok := rec.Users[username]
	return user, ok, nil
}

func (s *FileStore) CreateUser(user *types.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return false, err
	}
	if _, exists := rec.Users[user.Username]; exists {
		return false, nil
	}
	rec.Users[user.Username] = user
	return true, s.save(rec)
}

func (s *FileStore) UpdateUser(user *types.User) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return false, err
	}
	if _, exists := rec.Users[user.Username]; !exists {
		return false, nil
	}
	rec.Users[user.Username] = user
	return true, s.save(rec)
}

func (s *FileStore) DeleteUser(username string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return false, err
	}
	if _, exists := rec.Users[username]; !exists {
		return false, nil
	}
	delete(rec.Users, username)
	// Keep document membership consistent with the users table.
	for _, doc := range rec.Documents {
		doc.Users = removeString(doc.Users, username)
	}
	return true, s.save(rec)
}

// Document operations

func (s *FileStore) GetDocument(id string) (*types.Document, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return nil, false, err
	}
	doc, ok := rec.Documents[id]
	return doc, ok, nil
}

func (s *FileStore) CreateDocument(doc *types.Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return false, err
	}
	if _, exists := rec.Documents[doc.ID]; exists {
		return false, nil
	}
	rec.Documents[doc.ID] = doc
	for _, username := range doc.Users {
		user, ok := rec.Users[username]
		if !ok {
			continue
		}
		if !containsString(user.Documents, doc.ID) {
			user.Documents = append(user.Documents, doc.ID)
		}
	}
	return true, s.save(rec)
}

func (s *FileStore) UpdateDocument(doc *types.Document) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return false, err
	}
	if _, exists := rec.Documents[doc.ID]; !exists {
		return false, nil
	}
	rec.Documents[doc.ID] = doc
	return true, s.save(rec)
}

func (s *FileStore) DeleteDocument(id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return false, err
	}
	doc, exists := rec.Documents[id]
	if !exists {
		return false, nil
	}
	for _, username := range doc.Users {
		user, ok := rec.Users[username]
		if !ok {
			continue
		}
		user.Documents = removeString(user.Documents, id)
	}
	delete(rec.Documents, id)
	return true, s.save(rec)
}

func (s *FileStore) GetUserDocuments(username string) ([]*types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	user, ok := rec.Users[username]
	if !ok {
		return nil, nil
	}
	docs := make([]*types.Document, 0, len(user.Documents))
	for _, id := range user.Documents {
		if doc, ok := rec.Documents[id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (s *FileStore) ListUsers() ([]*types.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	users := make([]*types.User, 0, len(rec.Users))
	for _, user := range rec.Users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].Username < users[j].Username })
	return users, nil
}

func (s *FileStore) ListDocuments() ([]*types.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	rec, err := s.load()
	if err != nil {
		return nil, err
	}
	docs := make([]*types.Document, 0, len(rec.Documents))
	for _, doc := range rec.Documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}

func containsString(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

func removeString(list []string, s string) []string {
	out := list[:0]
	for _, v := range list {
		if v != s {
			out = append(out, v)
		}
	}
	return out
}
