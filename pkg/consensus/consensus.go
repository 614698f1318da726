package consensus

import (
	"errors"
	"fmt"
	"time"

	"github.com/cuemby/scribe/pkg/statemachine"
)

// ErrNodeStopped reports an operation attempted on a stopped node.
var ErrNodeStopped = errors.New("node stopped")

// NotLeaderError reports a write submitted to a replica that is not the
// leader. LeaderID names the leader of the current term when one is known
// and is empty otherwise.
type NotLeaderError struct {
	LeaderID string
}

func (e *NotLeaderError) Error() string {
	if e.LeaderID == "" {
		return "no leader available"
	}
	return fmt.Sprintf("not the leader, current leader: %s", e.LeaderID)
}

// LogEntry is one replicated command.
type LogEntry struct {
	Term    int64
	Index   int64
	Command []byte

	// Timestamp records when the leader appended the entry, in Unix
	// nanoseconds. Informational only; replicas never branch on it.
	Timestamp int64
}

// VoteRequest asks a peer for its vote in an election.
type VoteRequest struct {
	ServerID     string
	Term         int64
	LastLogIndex int64
	LastLogTerm  int64
}

// VoteResponse answers a VoteRequest.
type VoteResponse struct {
	ServerID    string
	Term        int64
	VoteGranted bool
}

// HeartbeatRequest is the append-entries RPC. An empty Entries slice is a
// pure heartbeat; PrevLogIndex/PrevLogTerm anchor the batch in the
// follower's log either way.
type HeartbeatRequest struct {
	LeaderID     string
	Term         int64
	PrevLogIndex int64
	PrevLogTerm  int64
	CommitIndex  int64
	Entries      []LogEntry
}

// HeartbeatResponse answers a HeartbeatRequest.
type HeartbeatResponse struct {
	ServerID    string
	Term        int64
	Success     bool
	LastApplied int64
}

// Transport delivers consensus RPCs to peers. Send methods enqueue the RPC
// on the peer's worker and return immediately; the outcome arrives later
// through the node's DeliverVoteResult and DeliverAppendResult methods, with
// a nil response once the transport has exhausted its retries.
type Transport interface {
	SendVoteRequest(peer string, req VoteRequest)
	SendHeartbeat(peer string, req HeartbeatRequest)
}

// Applier executes committed command bytes against the application state.
// Calls arrive from a single goroutine in log order.
type Applier interface {
	Apply(data []byte) statemachine.Result
}

// Config carries the tunables for one node. Zero durations take the listed
// defaults; tests shrink them to run in milliseconds.
type Config struct {
	ID    string
	Peers []string

	ElectionTimeoutMin time.Duration // default 2s
	ElectionTimeoutMax time.Duration // default 4s
	HeartbeatInterval  time.Duration // default 500ms
	TickInterval       time.Duration // default 10ms
	PeerDownCooldown   time.Duration // default 30s

	// LivenessShortcut lets a candidate take leadership directly when every
	// peer is circuit-broken, trading split-brain risk during a full
	// partition for availability when the rest of the cluster is truly gone.
	LivenessShortcut bool
}

// DefaultConfig returns the production tuning for a node.
func DefaultConfig(id string, peers []string) Config {
	return Config{
		ID:                 id,
		Peers:              peers,
		ElectionTimeoutMin: 2000 * time.Millisecond,
		ElectionTimeoutMax: 4000 * time.Millisecond,
		HeartbeatInterval:  500 * time.Millisecond,
		TickInterval:       10 * time.Millisecond,
		PeerDownCooldown:   30 * time.Second,
		LivenessShortcut:   true,
	}
}

func (c *Config) applyDefaults() {
	if c.ElectionTimeoutMin <= 0 {
		c.ElectionTimeoutMin = 2000 * time.Millisecond
	}
	if c.ElectionTimeoutMax <= 0 {
		c.ElectionTimeoutMax = 2 * c.ElectionTimeoutMin
	}
	if c.ElectionTimeoutMax < c.ElectionTimeoutMin {
		c.ElectionTimeoutMax = c.ElectionTimeoutMin
	}
	if c.HeartbeatInterval <= 0 {
		c.HeartbeatInterval = 500 * time.Millisecond
	}
	if c.TickInterval <= 0 {
		c.TickInterval = 10 * time.Millisecond
	}
	if c.PeerDownCooldown <= 0 {
		c.PeerDownCooldown = 30 * time.Second
	}
}
