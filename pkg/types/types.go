package types

import (
	"time"
)

// User is an account that can own and collaborate on documents.
type User struct {
	Username  string   `json:"username"`
	Password  string   `json:"password"`
	Documents []string `json:"documents"`
}

// Document is a replicated text document.
//
// Users carries the usernames with access. Insertion order is preserved for
// display but membership is what matters semantically.
type Document struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Data       string    `json:"data"`
	LastEdited time.Time `json:"last_edited"`
	Users      []string  `json:"users"`
}

// NodeState identifies a replica's consensus role.
type NodeState string

const (
	StateFollower  NodeState = "follower"
	StateCandidate NodeState = "candidate"
	StateLeader    NodeState = "leader"
)

// ServerStatus is a point-in-time snapshot of one replica's consensus state.
type ServerStatus struct {
	ServerID    string    `json:"server_id"`
	State       NodeState `json:"state"`
	CurrentTerm int64     `json:"current_term"`
	LeaderID    string    `json:"leader_id"`
	CommitIndex int64     `json:"commit_index"`
	LastApplied int64     `json:"last_applied"`
	LogLength   int64     `json:"log_length"`
}

// StoreBackend selects the persistence implementation for a node.
type StoreBackend string

const (
	BackendFile StoreBackend = "file"
	BackendBolt StoreBackend = "bolt"
)
