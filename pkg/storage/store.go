package storage

import (
	"github.com/cuemby/scribe/pkg/types"
)

// Store defines the interface for replicated application state.
//
// Every replica owns its own store; cross-node consistency comes from the
// replicated log, never from sharing a store. Lookup methods report presence
// with a bool; mutation methods report whether the precondition held (create
// fails on an existing key, update/delete fail on a missing one). The error
// return is reserved for I/O failure, which callers treat as fatal to the
// command being applied.
type Store interface {
	// Users
	GetUser(username string) (*types.User, bool, error)
	CreateUser(user *types.User) (bool, error)
	UpdateUser(user *types.User) (bool, error)
	DeleteUser(username string) (bool, error)

	// Documents
	GetDocument(id string) (*types.Document, bool, error)
	CreateDocument(doc *types.Document) (bool, error)
	UpdateDocument(doc *types.Document) (bool, error)
	DeleteDocument(id string) (bool, error)

	// GetUserDocuments joins user.Documents against the documents table,
	// skipping any dangling id.
	GetUserDocuments(username string) ([]*types.Document, error)

	// ListUsers returns every user ordered by username.
	ListUsers() ([]*types.User, error)

	// ListDocuments returns every document ordered by id.
	ListDocuments() ([]*types.Document, error)

	// Utility
	Close() error
}

// New opens a store at path using the requested backend.
func New(backend types.StoreBackend, path string) (Store, error) {
	if backend == types.BackendBolt {
		return NewBoltStore(path)
	}
	return NewFileStore(path)
}
