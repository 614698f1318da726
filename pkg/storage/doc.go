/*
Package storage provides persistent state for Scribe's users and documents.

The storage package implements the Store interface with two interchangeable
backends: a JSON file store for small deployments and easy inspection, and a
BoltDB store for larger datasets with transactional writes. Both keep the
same cross-entity invariant: a document lists its members and each member
lists the document back.

# Architecture

Every replica owns one store. The consensus layer applies committed commands
to it, so stores never see uncommitted or out-of-order writes:

	┌──────────────────── STORAGE LAYER ───────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Store Interface                  │          │
	│  │  - User CRUD (keyed by username)            │          │
	│  │  - Document CRUD (keyed by UUID)             │          │
	│  │  - Membership queries (GetUserDocuments)    │          │
	│  └─────────┬────────────────────────┬─────────┘          │
	│            │                        │                      │
	│  ┌─────────▼──────────┐  ┌──────────▼─────────┐          │
	│  │     FileStore      │  │     BoltStore       │          │
	│  │  - Single JSON file│  │  - bbolt database   │          │
	│  │  - Re-read per op  │  │  - Bucket per type  │          │
	│  │  - Write + rename  │  │  - Tx per operation │          │
	│  └─────────┬──────────┘  └──────────┬─────────┘          │
	│            │                        │                      │
	│  ┌─────────▼──────────┐  ┌──────────▼─────────┐          │
	│  │   store.json       │  │   store.db          │          │
	│  │  {                 │  │  ┌───────────────┐  │          │
	│  │    "users": {...}, │  │  │ users         │  │          │
	│  │    "documents":{..}│  │  │ documents     │  │          │
	│  │  }                 │  │  └───────────────┘  │          │
	│  └────────────────────┘  └────────────────────┘          │
	└────────────────────────────────────────────────────────┘

# Core Components

Store Interface:
  - Single contract both backends satisfy
  - Lookups return (value, found, error)
  - Mutations return (applied, error) so callers can tell a no-op
    (already exists, not found) from a failure
  - storage.New(backend, path) selects the implementation

FileStore:
  - One JSON file holding all users and documents
  - Reads load the file, writes save to a temp file and rename
  - Missing file treated as an empty store
  - Human-readable, good for debugging and small datasets

BoltStore:
  - bbolt database with a users bucket and a documents bucket
  - Each operation is one transaction, so multi-entity mutations
    (document create/delete touching user membership) stay atomic
  - fsync on commit for crash recovery

CheckIntegrity:
  - Offline validation of the membership invariant
  - Used by scribe-admin verify against stopped stores

# CRUD Operations

User Operations:

Create User:
  - Keyed by username
  - Returns (false, nil) when the username is taken

Get User:
  - Direct lookup by username
  - (nil, false, nil) when absent

Update User:
  - Overwrites an existing user record
  - Returns (false, nil) when the user does not exist

Delete User:
  - Removes the user and strips the username from every document's
    member list in the same operation

List Users:
  - All users ordered by username

Document Operations:

Create Document:
  - Keyed by UUID string
  - Appends the document ID to each existing member's Documents list,
    skipping members already holding a reference

Get Document:
  - Direct lookup by ID

Update Document:
  - Overwrites title, content, timestamp, and membership
  - Returns (false, nil) when the document does not exist

Delete Document:
  - Removes the document and drops its ID from every member's
    Documents list

Get User Documents:
  - Resolves a user's Documents list to full document records
  - Nil result when the user does not exist

List Documents:
  - All documents ordered by ID

# Usage

Creating a Store:

	store, err := storage.New(types.BackendBolt, "/var/lib/scribe/node1.db")
	if err != nil {
		log.Fatal(err.Error())
	}
	defer store.Close()

User Operations:

	// Create user
	created, err := store.CreateUser(&types.User{
		Username: "alice",
		Password: password,
	})
	if !created {
		// username already taken
	}

	// Get user
	user, found, err := store.GetUser("alice")

	// List all users
	users, err := store.ListUsers()

Document Operations:

	// Create document
	doc := &types.Document{
		ID:         uuid.NewString(),
		Title:      "Design Notes",
		Data:       "",
		LastEdited: ts,
		Users:      []string{"alice"},
	}
	created, err := store.CreateDocument(doc)

	// Update content
	doc.Data = "Hello World"
	doc.LastEdited = ts
	updated, err := store.UpdateDocument(doc)

	// Documents a user can see
	docs, err := store.GetUserDocuments("alice")

	// Delete (also unlinks members)
	deleted, err := store.DeleteDocument(doc.ID)

Checking Integrity:

	users, _ := store.ListUsers()
	docs, _ := store.ListDocuments()
	for _, problem := range storage.CheckIntegrity(users, docs) {
		fmt.Println(problem)
	}

# Integration Points

This package integrates with:

  - pkg/statemachine: Applies committed commands to the store
  - pkg/gateway: Reads for queries and authentication
  - pkg/types: User, Document, and StoreBackend definitions
  - cmd/scribe: Opens the store at startup from configuration
  - cmd/scribe-admin: Dumps, verifies, and converts stopped stores

# Design Patterns

Found Flag Pattern:
  - Lookups return (value, bool, error) instead of sentinel errors
  - "absent" is an expected condition, not a failure
  - Keeps the state machine's duplicate/missing handling branch-free

Applied Flag Pattern:
  - Mutations return (bool, error)
  - false with nil error means the precondition failed (exists /
    not found); the caller chooses the user-facing message

Membership Maintenance:
  - CreateDocument, DeleteDocument, and DeleteUser repair both sides
    of the user↔document relation in a single operation
  - The duplicate guard keeps repeated creates from growing lists

Write-Then-Rename (FileStore):
  - Serialize to a temp file, rename over the original
  - Readers never see a torn file; a crash mid-write leaves the
    previous file intact

Single Transaction (BoltStore):
  - Each Store method is one db.View or db.Update
  - Rollback on error, commit with fsync on success

# Performance Characteristics

FileStore:
  - Every operation reads and/or rewrites the whole file
  - O(users + documents) per operation
  - Fine up to a few thousand entities, then switch to bolt

BoltStore:
  - Get/Put: O(log n) B+tree access, ~1-5ms per write with fsync
  - List: O(n) cursor scan in key order
  - Reads are concurrent (MVCC snapshots), writes serialized

Replication Context:
  - The consensus layer applies commands one at a time per replica,
    so store write throughput is not the bottleneck; network round
    trips are

# Troubleshooting

Common Issues:

Database Locked:
  - Symptom: "timeout" or lock error opening a bolt store
  - Cause: Another process (a running replica) holds the file
  - Solution: Stop the replica before using scribe-admin on its store

Corrupt JSON File:
  - Symptom: "failed to decode store" on startup
  - Cause: Manual edits or partial write from a crash before rename
  - Check: File parses with a JSON tool
  - Solution: Restore the file from a healthy replica's copy

Diverged Replicas:
  - Symptom: scribe-admin dump shows different content per replica
  - Cause: A replica missed committed entries while partitioned
  - Check: ClusterStatus commit and applied indexes
  - Solution: Replicas converge once reconnected; recheck after

Membership Drift:
  - Symptom: scribe-admin verify reports list-back violations
  - Cause: External writes to the store file
  - Solution: Only mutate stores through the replicated log

# Data Integrity

Invariants (checked by CheckIntegrity):
  - Every document ID parses as a UUID
  - No duplicate entries in member or document lists
  - Every document member exists as a user
  - Membership is symmetric: doc.Users and user.Documents agree

Backup and Restore:
  - Both backends are a single file (easy to copy)
  - Backup: copy while the replica is stopped
  - Restore: replace the file and restart; replication catches the
    replica up with entries committed since the copy

Conversion:
  - scribe-admin convert copies a store between backends
  - Users copy first so documents attach to existing members

# Security

Encryption at Rest:
  - Store files are not encrypted
  - Recommendation: use disk encryption for sensitive deployments
  - Passwords are stored as the gateway provides them

File Permissions:
  - Bolt file: 0600 (owner read/write only)
  - Store directory created 0755 by the backends

# See Also

  - pkg/statemachine for how commands reach the store
  - pkg/gateway for the read path
  - pkg/types for entity definitions
  - BoltDB documentation: https://github.com/etcd-io/bbolt
*/
package storage
