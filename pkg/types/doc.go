/*
Package types defines the core data structures used throughout Scribe.

This package contains the domain model shared by every other package: users,
documents, replica consensus state, and store backend selection. Keeping
these types dependency-free lets storage, consensus, gateway, and the CLIs
all import them without cycles.

# Core Types

Domain Model:
  - User: Account with a username, password, and document references
  - Document: Replicated text document with title, content, timestamp,
    and member usernames

Consensus:
  - NodeState: Replica role (follower, candidate, leader)
  - ServerStatus: Point-in-time snapshot of one replica's consensus
    state (term, leader, commit and applied indexes, log length)

Storage:
  - StoreBackend: Persistence backend selector (file or bolt)

All types are designed to be:
  - Serializable (JSON for storage, converted to Protocol Buffers in
    pkg/api for the wire)
  - Plain data (no methods with side effects, no hidden state)
  - Validated at the edges (the gateway and state machine enforce
    invariants; types carry the data)

# Usage

Creating a User:

	user := &types.User{
		Username:  "alice",
		Password:  password,
		Documents: nil, // filled in as documents are created and shared
	}

Creating a Document:

	doc := &types.Document{
		ID:         uuid.New().String(),
		Title:      "Design Notes",
		Data:       "",
		LastEdited: ts,
		Users:      []string{"alice"},
	}

Inspecting a Replica:

	status := node.Status()
	if status.State == types.StateLeader {
		fmt.Printf("%s leads term %d\n", status.ServerID, status.CurrentTerm)
	}

Selecting a Backend:

	store, err := storage.New(types.BackendBolt, path)

# State Machine

Replica roles follow the consensus state machine:

	Follower → Candidate → Leader
	    ↑          │          │
	    └──────────┴──────────┘

Valid role transitions:
  - Follower → Candidate (election timeout with no leader contact)
  - Candidate → Leader (majority of votes received)
  - Candidate → Follower (heartbeat from a current leader, or a
    higher term observed)
  - Leader → Follower (higher term observed)
  - Candidate → Candidate (split vote, new election in a later term)

# Design Patterns

Enumeration Pattern:

	Enums use typed string constants for safety and readable logs:
	  type NodeState string
	  const (
	      StateFollower NodeState = "follower"
	      StateLeader   NodeState = "leader"
	  )

Symmetric Membership:

	User.Documents and Document.Users reference each other. The
	storage layer maintains both sides; code holding a User can list
	their documents without scanning every document.

Snapshot Pattern:

	ServerStatus is a copy, not a live view. Fields are consistent
	with each other at the moment Status() was called and safe to
	read without locks.

# Integration Points

This package integrates with:

  - pkg/storage: Persists User and Document, keyed per StoreBackend
  - pkg/statemachine: Builds and mutates domain types from commands
  - pkg/gateway: Reads domain types to answer client queries
  - pkg/consensus: Reports NodeState and ServerStatus
  - pkg/api: Converts to/from Protocol Buffer messages
  - cmd/scribe, cmd/scribe-admin: Display and configuration

# Thread Safety

Types in this package are plain data:
  - Read-safe: Concurrent reads are fine
  - Write-unsafe: Mutations must be synchronized by callers

In practice the state machine is the only writer, and it applies one
command at a time, so synchronization lives there rather than here.

# Serialization

  - JSON tags on every field; both store backends persist JSON
  - time.Time round-trips through JSON with full precision, which
    keeps LastEdited identical across replicas
  - Wire messages in pkg/api mirror these types; conversion is
    explicit, not reflective

# See Also

  - pkg/storage for persistence
  - pkg/statemachine for mutation rules
  - pkg/api for wire conversions
*/
package types
