package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"

	"github.com/cuemby/scribe/pkg/types"
)

var (
	// Bucket names
	bucketUsers     = []byte("users")
	bucketDocuments = []byte("documents")
)

// BoltStore implements Store using BoltDB. Each operation runs in a single
// transaction, so multi-entity mutations (document creation and deletion
// touching user membership) stay atomic.
type BoltStore struct {
	db *bolt.DB
}

// NewBoltStore creates a BoltDB-backed store at path.
func NewBoltStore(path string) (*BoltStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Create buckets
	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketUsers, bucketDocuments} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltStore{db: db}, nil
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func getUser(tx *bolt.Tx, username string) (*types.User, bool, error) {
	data := tx.Bucket(bucketUsers).Get([]byte(username))
	if data == nil {
		return nil, false, nil
	}
	var user types.User
	if err := json.Unmarshal(data, &user); err != nil {
		return nil, false, fmt.Errorf("failed to decode user %s: %w", username, err)
	}
	return &user, true, nil
}

func putUser(tx *bolt.Tx, user *types.User) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketUsers).Put([]byte(user.Username), data)
}

func getDocument(tx *bolt.Tx, id string) (*types.Document, bool, error) {
	data := tx.Bucket(bucketDocuments).Get([]byte(id))
	if data == nil {
		return nil, false, nil
	}
	var doc types.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, false, fmt.Errorf("failed to decode document %s: %w", id, err)
	}
	return &doc, true, nil
}

func putDocument(tx *bolt.Tx, doc *types.Document) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return tx.Bucket(bucketDocuments).Put([]byte(doc.ID), data)
}

// User operations

func (s *BoltStore) GetUser(username string) (*types.User, bool, error) {
	var (
		user  *types.User
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		user, found, err = getUser(tx, username)
		return err
	})
	return user, found, err
}

func (s *BoltStore) CreateUser(user *types.User) (bool, error) {
	created := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketUsers).Get([]byte(user.Username)) != nil {
			return nil
		}
		created = true
		return putUser(tx, user)
	})
	return created, err
}

func (s *BoltStore) UpdateUser(user *types.User) (bool, error) {
	updated := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketUsers).Get([]byte(user.Username)) == nil {
			return nil
		}
		updated = true
		return putUser(tx, user)
	})
	return updated, err
}

func (s *BoltStore) DeleteUser(username string) (bool, error) {
	deleted := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		users := tx.Bucket(bucketUsers)
		if users.Get([]byte(username)) == nil {
			return nil
		}
		deleted = true
		if err := users.Delete([]byte(username)); err != nil {
			return err
		}

		// Keep document membership consistent with the users table. Collect
		// first: a bucket must not be mutated during ForEach.
		var touched []*types.Document
		docs := tx.Bucket(bucketDocuments)
		err := docs.ForEach(func(k, v []byte) error {
			var doc types.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to decode document %s: %w", k, err)
			}
			if containsString(doc.Users, username) {
				doc.Users = removeString(doc.Users, username)
				touched = append(touched, &doc)
			}
			return nil
		})
		if err != nil {
			return err
		}
		for _, doc := range touched {
			if err := putDocument(tx, doc); err != nil {
				return err
			}
		}
		return nil
	})
	return deleted, err
}

// Document operations

func (s *BoltStore) GetDocument(id string) (*types.Document, bool, error) {
	var (
		doc   *types.Document
		found bool
	)
	err := s.db.View(func(tx *bolt.Tx) error {
		var err error
		doc, found, err = getDocument(tx, id)
		return err
	})
	return doc, found, err
}

func (s *BoltStore) CreateDocument(doc *types.Document) (bool, error) {
	created := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketDocuments).Get([]byte(doc.ID)) != nil {
			return nil
		}
		created = true
		if err := putDocument(tx, doc); err != nil {
			return err
		}
		for _, username := range doc.Users {
			user, ok, err := getUser(tx, username)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			if !containsString(user.Documents, doc.ID) {
				user.Documents = append(user.Documents, doc.ID)
				if err := putUser(tx, user); err != nil {
					return err
				}
			}
		}
		return nil
	})
	return created, err
}

func (s *BoltStore) UpdateDocument(doc *types.Document) (bool, error) {
	updated := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		if tx.Bucket(bucketDocuments).Get([]byte(doc.ID)) == nil {
			return nil
		}
		updated = true
		return putDocument(tx, doc)
	})
	return updated, err
}

func (s *BoltStore) DeleteDocument(id string) (bool, error) {
	deleted := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		doc, ok, err := getDocument(tx, id)
		if err != nil {
			return err
		}
		if !ok {
			return nil
		}
		deleted = true
		for _, username := range doc.Users {
			user, ok, err := getUser(tx, username)
			if err != nil {
				return err
			}
			if !ok {
				continue
			}
			user.Documents = removeString(user.Documents, id)
			if err := putUser(tx, user); err != nil {
				return err
			}
		}
		return tx.Bucket(bucketDocuments).Delete([]byte(id))
	})
	return deleted, err
}

func (s *BoltStore) GetUserDocuments(username string) ([]*types.Document, error) {
	var docs []*types.Document
	err := s.db.View(func(tx *bolt.Tx) error {
		user, ok, err := getUser(tx, username)
		if err != nil || !ok {
			return err
		}
		docs = make([]*types.Document, 0, len(user.Documents))
		for _, id := range user.Documents {
			doc, ok, err := getDocument(tx, id)
			if err != nil {
				return err
			}
			if ok {
				docs = append(docs, doc)
			}
		}
		return nil
	})
	return docs, err
}

// ListUsers returns every user. Bolt iterates keys in byte order, which is
// the ordering the Store contract asks for.
func (s *BoltStore) ListUsers() ([]*types.User, error) {
	var users []*types.User
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketUsers).ForEach(func(k, v []byte) error {
			var user types.User
			if err := json.Unmarshal(v, &user); err != nil {
				return fmt.Errorf("failed to decode user %s: %w", k, err)
			}
			users = append(users, &user)
			return nil
		})
	})
	return users, err
}

func (s *BoltStore) ListDocuments() ([]*types.Document, error) {
	var docs []*types.Document
	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketDocuments).ForEach(func(k, v []byte) error {
			var doc types.Document
			if err := json.Unmarshal(v, &doc); err != nil {
				return fmt.Errorf("failed to decode document %s: %w", k, err)
			}
			docs = append(docs, &doc)
			return nil
		})
	})
	return docs, err
}
