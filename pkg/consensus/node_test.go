package consensus

import (
	"context"
	"errors"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/scribe/pkg/events"
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/storage"
)

// fakeTransport records every send. With failAll set it reports each vote
// request as exhausted, from a separate goroutine like the real transport.
type fakeTransport struct {
	mu         sync.Mutex
	node       *Node
	failAll    bool
	votes      []sentVote
	heartbeats []sentHeartbeat
}

type sentVote struct {
	peer string
	req  VoteRequest
}

type sentHeartbeat struct {
	peer string
	req  HeartbeatRequest
}

func (f *fakeTransport) SendVoteRequest(peer string, req VoteRequest) {
	f.mu.Lock()
	f.votes = append(f.votes, sentVote{peer: peer, req: req})
	f.mu.Unlock()
	if f.failAll {
		go f.node.DeliverVoteResult(peer, nil)
	}
}

func (f *fakeTransport) SendHeartbeat(peer string, req HeartbeatRequest) {
	f.mu.Lock()
	f.heartbeats = append(f.heartbeats, sentHeartbeat{peer: peer, req: req})
	f.mu.Unlock()
	if f.failAll {
		go f.node.DeliverAppendResult(peer, req, nil)
	}
}

func (f *fakeTransport) voteRequests() []sentVote {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]sentVote(nil), f.votes...)
}

func (f *fakeTransport) heartbeatsTo(peer string) []sentHeartbeat {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []sentHeartbeat
	for _, hb := range f.heartbeats {
		if hb.peer == peer {
			out = append(out, hb)
		}
	}
	return out
}

func newTestApplier(t *testing.T) (*statemachine.StateMachine, storage.Store) {
	t.Helper()
	store, err := storage.NewFileStore(filepath.Join(t.TempDir(), "state.json"))
	require.NoError(t, err)
	return statemachine.New(store), store
}

// newQuietNode builds a node without starting its goroutines, so tests can
// drive handlers directly and deterministically.
func newQuietNode(t *testing.T, id string, peers []string, shortcut bool) (*Node, *fakeTransport) {
	t.Helper()
	sm, _ := newTestApplier(t)
	ft := &fakeTransport{}
	node := NewNode(Config{
		ID:                 id,
		Peers:              peers,
		ElectionTimeoutMin: time.Minute,
		ElectionTimeoutMax: time.Minute,
		LivenessShortcut:   shortcut,
	}, sm, ft, nil)
	ft.node = node
	return node, ft
}

// drainApply synchronously runs the apply hand-off that the apply goroutine
// would perform on a started node.
func drainApply(n *Node) {
	for {
		select {
		case entry := <-n.applyCh:
			result := n.applier.Apply(entry.Command)
			n.handleApplyDone(applyDoneMsg{index: entry.Index, result: result})
		default:
			return
		}
	}
}

func mustEncode(t *testing.T, cmd statemachine.Command) []byte {
	t.Helper()
	data, err := statemachine.Encode(cmd)
	require.NoError(t, err)
	return data
}

// electLeader drives a quiet node through a won election.
func electLeader(t *testing.T, n *Node, grantFrom string) {
	t.Helper()
	n.startElection()
	n.handleVoteResult(voteResultMsg{peer: grantFrom, resp: &VoteResponse{
		ServerID:    grantFrom,
		Term:        n.currentTerm,
		VoteGranted: true,
	}})
	require.IsType(t, &leaderRole{}, n.role)
}

// TestNewNodeDefaults tests config normalization and the initial snapshot
func TestNewNodeDefaults(t *testing.T) {
	sm, _ := newTestApplier(t)
	node := NewNode(Config{ID: "n1"}, sm, &fakeTransport{}, nil)

	assert.Equal(t, 2000*time.Millisecond, node.cfg.ElectionTimeoutMin)
	assert.Equal(t, 4000*time.Millisecond, node.cfg.ElectionTimeoutMax)
	assert.Equal(t, 500*time.Millisecond, node.cfg.HeartbeatInterval)
	assert.Equal(t, 10*time.Millisecond, node.cfg.TickInterval)
	assert.Equal(t, 30*time.Second, node.cfg.PeerDownCooldown)
	assert.GreaterOrEqual(t, node.electionTimeout, node.cfg.ElectionTimeoutMin)
	assert.Less(t, node.electionTimeout, node.cfg.ElectionTimeoutMax)

	st := node.status()
	assert.Equal(t, "n1", st.ServerID)
	assert.Equal(t, "follower", string(st.State))
	assert.Equal(t, int64(0), st.CurrentTerm)
	assert.Equal(t, int64(-1), st.CommitIndex)
	assert.Equal(t, int64(-1), st.LastApplied)
	assert.Equal(t, int64(0), st.LogLength)
	assert.Empty(t, st.LeaderID)
}

// TestQuorum tests majority sizes across cluster sizes
func TestQuorum(t *testing.T) {
	tests := []struct {
		peers  int
		quorum int
	}{
		{peers: 0, quorum: 1},
		{peers: 1, quorum: 2},
		{peers: 2, quorum: 2},
		{peers: 3, quorum: 3},
		{peers: 4, quorum: 3},
	}
	for _, tt := range tests {
		peers := make([]string, tt.peers)
		for i := range peers {
			peers[i] = "p"
		}
		n := &Node{cfg: Config{Peers: peers}}
		assert.Equal(t, tt.quorum, n.quorum(), "peers=%d", tt.peers)
	}
}

// TestNotLeaderErrorMessage tests both renderings of the error
func TestNotLeaderErrorMessage(t *testing.T) {
	assert.Equal(t, "no leader available", (&NotLeaderError{}).Error())
	assert.Equal(t, "not the leader, current leader: n2", (&NotLeaderError{LeaderID: "n2"}).Error())
}

// TestSingletonElectionAndCommit tests that a node with no peers elects
// itself and commits a submitted command immediately
func TestSingletonElectionAndCommit(t *testing.T) {
	sm, store := newTestApplier(t)
	broker := events.NewBroker()
	broker.Start()
	t.Cleanup(broker.Stop)
	sub := broker.Subscribe()

	node := NewNode(Config{
		ID:                 "n1",
		ElectionTimeoutMin: 50 * time.Millisecond,
		ElectionTimeoutMax: 50 * time.Millisecond,
		HeartbeatInterval:  20 * time.Millisecond,
		TickInterval:       5 * time.Millisecond,
		LivenessShortcut:   true,
	}, sm, &fakeTransport{}, broker)
	node.Start()
	t.Cleanup(node.Stop)

	ctx := context.Background()
	require.Eventually(t, func() bool {
		st, err := node.Status(ctx)
		return err == nil && st.State == "leader"
	}, 2*time.Second, 10*time.Millisecond)

	result, err := node.Submit(ctx, mustEncode(t, &statemachine.RegisterUser{
		Username: "alice",
		Password: "pw",
	}))
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, "User registered successfully.", result.Message)

	st, err := node.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, "leader", string(st.State))
	assert.Equal(t, "n1", st.LeaderID)
	assert.Equal(t, int64(1), st.LogLength)
	assert.Equal(t, int64(0), st.CommitIndex)
	assert.Equal(t, int64(0), st.LastApplied)

	_, found, err := store.GetUser("alice")
	require.NoError(t, err)
	assert.True(t, found)

	// The election must have announced itself.
	sawLeader := false
	deadline := time.After(time.Second)
	for !sawLeader {
		select {
		case ev := <-sub:
			if ev.Type == events.EventLeaderElected {
				sawLeader = true
			}
		case <-deadline:
			t.Fatal("no leader.elected event observed")
		}
	}
}

// TestElectionWinsOnMajority tests vote counting in a three node cluster
func TestElectionWinsOnMajority(t *testing.T) {
	node, ft := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, false)

	node.startElection()
	assert.Equal(t, int64(1), node.currentTerm)
	require.IsType(t, &candidateRole{}, node.role)
	assert.Equal(t, "n1", node.votedFor)

	votes := ft.voteRequests()
	require.Len(t, votes, 2)
	for _, v := range votes {
		assert.Equal(t, "n1", v.req.ServerID)
		assert.Equal(t, int64(1), v.req.Term)
		assert.Equal(t, int64(-1), v.req.LastLogIndex)
		assert.Equal(t, int64(0), v.req.LastLogTerm)
	}

	// One grant plus the self vote is a majority of three.
	node.handleVoteResult(voteResultMsg{peer: "n2:50052", resp: &VoteResponse{
		ServerID: "n2", Term: 1, VoteGranted: true,
	}})
	require.IsType(t, &leaderRole{}, node.role)
	assert.Equal(t, "n1", node.leaderID)

	// Leadership opens with a heartbeat round.
	for _, peer := range []string{"n2:50052", "n3:50053"} {
		beats := ft.heartbeatsTo(peer)
		require.NotEmpty(t, beats, "no heartbeat to %s", peer)
		hb := beats[0]
		assert.Equal(t, "n1", hb.req.LeaderID)
		assert.Equal(t, int64(1), hb.req.Term)
		assert.Equal(t, int64(-1), hb.req.PrevLogIndex)
		assert.Equal(t, int64(-1), hb.req.CommitIndex)
		assert.Empty(t, hb.req.Entries)
	}

	lead := node.role.(*leaderRole)
	assert.Equal(t, int64(0), lead.nextIndex["n2:50052"])
	assert.Equal(t, int64(-1), lead.matchIndex["n2:50052"])
}

// TestStaleVoteGrantIgnored tests that a grant from an earlier term does not
// count toward the current election
func TestStaleVoteGrantIgnored(t *testing.T) {
	node, _ := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, false)

	node.startElection() // term 1
	node.startElection() // term 2

	node.handleVoteResult(voteResultMsg{peer: "n2:50052", resp: &VoteResponse{
		ServerID: "n2", Term: 1, VoteGranted: true,
	}})
	require.IsType(t, &candidateRole{}, node.role)
	assert.Equal(t, 1, node.role.(*candidateRole).votes)

	node.handleVoteResult(voteResultMsg{peer: "n2:50052", resp: &VoteResponse{
		ServerID: "n2", Term: 2, VoteGranted: true,
	}})
	require.IsType(t, &leaderRole{}, node.role)
}

// TestVoteGrantRules tests the handler side of elections
func TestVoteGrantRules(t *testing.T) {
	t.Run("lower term rejected", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, false)
		node.setTerm(5)

		resp := node.handleVoteRequest(VoteRequest{ServerID: "n2", Term: 3, LastLogIndex: -1})
		assert.False(t, resp.VoteGranted)
		assert.Equal(t, int64(5), resp.Term)
	})

	t.Run("one vote per term", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, false)

		resp := node.handleVoteRequest(VoteRequest{ServerID: "n2", Term: 1, LastLogIndex: -1})
		assert.True(t, resp.VoteGranted)

		resp = node.handleVoteRequest(VoteRequest{ServerID: "n3", Term: 1, LastLogIndex: -1})
		assert.False(t, resp.VoteGranted)

		// Re-voting for the same candidate is allowed.
		resp = node.handleVoteRequest(VoteRequest{ServerID: "n2", Term: 1, LastLogIndex: -1})
		assert.True(t, resp.VoteGranted)

		// A higher term clears the vote.
		resp = node.handleVoteRequest(VoteRequest{ServerID: "n3", Term: 2, LastLogIndex: -1})
		assert.True(t, resp.VoteGranted)
		assert.Equal(t, int64(2), node.currentTerm)
	})

	t.Run("stale log rejected but term adopted", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, false)
		node.log = []LogEntry{
			{Term: 1, Index: 0, Command: []byte("{}")},
			{Term: 2, Index: 1, Command: []byte("{}")},
		}
		node.setTerm(2)

		// Candidate's last entry is from an older term.
		resp := node.handleVoteRequest(VoteRequest{ServerID: "n2", Term: 3, LastLogIndex: 5, LastLogTerm: 1})
		assert.False(t, resp.VoteGranted)
		assert.Equal(t, int64(3), resp.Term)
		assert.Equal(t, int64(3), node.currentTerm)

		// Same last term but shorter log.
		resp = node.handleVoteRequest(VoteRequest{ServerID: "n2", Term: 4, LastLogIndex: 0, LastLogTerm: 2})
		assert.False(t, resp.VoteGranted)

		// At least as long with the same last term wins the vote.
		resp = node.handleVoteRequest(VoteRequest{ServerID: "n2", Term: 5, LastLogIndex: 1, LastLogTerm: 2})
		assert.True(t, resp.VoteGranted)
	})
}

// TestLeaderStepsDownOnHigherTermVote tests that a leader seeing a higher
// term becomes a follower and fails its pending submits
func TestLeaderStepsDownOnHigherTermVote(t *testing.T) {
	node, _ := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, false)

	node.startElection()
	node.startElection()
	node.startElection()
	assert.Equal(t, int64(3), node.currentTerm)
	node.handleVoteResult(voteResultMsg{peer: "n2:50052", resp: &VoteResponse{
		ServerID: "n2", Term: 3, VoteGranted: true,
	}})
	require.IsType(t, &leaderRole{}, node.role)

	reply := make(chan submitReply, 1)
	node.handleSubmit(submitMsg{
		command: mustEncode(t, &statemachine.RegisterUser{Username: "alice", Password: "pw"}),
		reply:   reply,
	})
	sub := <-reply
	require.NoError(t, sub.err)

	resp := node.handleVoteRequest(VoteRequest{ServerID: "n9", Term: 5, LastLogIndex: 0, LastLogTerm: 3})
	assert.True(t, resp.VoteGranted)
	assert.Equal(t, int64(5), resp.Term)

	st := node.status()
	assert.Equal(t, "follower", string(st.State))
	assert.Equal(t, int64(5), st.CurrentTerm)
	assert.Empty(t, st.LeaderID)

	out := <-sub.result
	var notLeader *NotLeaderError
	require.ErrorAs(t, out.err, &notLeader)
	assert.Empty(t, notLeader.LeaderID)
}

// TestFollowerAppend tests the handler side of replication: prev checks,
// truncation of conflicting suffixes, and commit clamping
func TestFollowerAppend(t *testing.T) {
	cmd := func(username string) []byte {
		data, err := statemachine.Encode(&statemachine.RegisterUser{Username: username, Password: "pw"})
		require.NoError(t, err)
		return data
	}

	t.Run("rejects lower term", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, false)
		node.setTerm(4)

		resp := node.handleAppendRequest(HeartbeatRequest{LeaderID: "n2", Term: 3, PrevLogIndex: -1, CommitIndex: -1})
		assert.False(t, resp.Success)
		assert.Equal(t, int64(4), resp.Term)
		assert.Empty(t, node.leaderID)
	})

	t.Run("rejects prev mismatch", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, false)

		// Nothing at index 0 yet.
		resp := node.handleAppendRequest(HeartbeatRequest{
			LeaderID: "n2", Term: 1, PrevLogIndex: 0, PrevLogTerm: 1, CommitIndex: -1,
		})
		assert.False(t, resp.Success)

		// Entry at the prev position carries a different term.
		node.log = []LogEntry{{Term: 1, Index: 0, Command: cmd("alice")}}
		resp = node.handleAppendRequest(HeartbeatRequest{
			LeaderID: "n2", Term: 2, PrevLogIndex: 0, PrevLogTerm: 2, CommitIndex: -1,
		})
		assert.False(t, resp.Success)
	})

	t.Run("appends and truncates conflicts", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, false)
		node.log = []LogEntry{
			{Term: 1, Index: 0, Command: cmd("alice")},
			{Term: 1, Index: 1, Command: cmd("bob")},
			{Term: 2, Index: 2, Command: cmd("carol")},
		}
		node.setTerm(2)

		// The new leader's log diverges at index 1.
		resp := node.handleAppendRequest(HeartbeatRequest{
			LeaderID: "n2", Term: 3, PrevLogIndex: 0, PrevLogTerm: 1, CommitIndex: -1,
			Entries: []LogEntry{
				{Term: 3, Index: 1, Command: cmd("dave")},
				{Term: 3, Index: 2, Command: cmd("erin")},
			},
		})
		assert.True(t, resp.Success)
		require.Len(t, node.log, 3)
		assert.Equal(t, int64(1), node.log[0].Term)
		assert.Equal(t, int64(3), node.log[1].Term)
		assert.Equal(t, int64(3), node.log[2].Term)
		assert.Equal(t, "n2", node.leaderID)

		// Entries the follower already holds are left in place.
		resp = node.handleAppendRequest(HeartbeatRequest{
			LeaderID: "n2", Term: 3, PrevLogIndex: 0, PrevLogTerm: 1, CommitIndex: -1,
			Entries: []LogEntry{
				{Term: 3, Index: 1, Command: cmd("dave")},
			},
		})
		assert.True(t, resp.Success)
		assert.Len(t, node.log, 3)
	})

	t.Run("clamps commit to log end and applies", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, false)

		resp := node.handleAppendRequest(HeartbeatRequest{
			LeaderID: "n2", Term: 1, PrevLogIndex: -1, CommitIndex: 10,
			Entries: []LogEntry{
				{Term: 1, Index: 0, Command: cmd("alice")},
				{Term: 1, Index: 1, Command: cmd("bob")},
			},
		})
		assert.True(t, resp.Success)
		assert.Equal(t, int64(1), node.commitIndex)

		drainApply(node)
		assert.Equal(t, int64(1), node.lastApplied)

		st := node.status()
		assert.Equal(t, int64(2), st.LogLength)
		assert.Equal(t, int64(1), st.LastApplied)
	})
}

// TestSubmitOnFollower tests that non-leaders refuse writes with the last
// known leader attached
func TestSubmitOnFollower(t *testing.T) {
	node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, false)

	reply := make(chan submitReply, 1)
	node.handleSubmit(submitMsg{command: []byte("{}"), reply: reply})
	sub := <-reply
	var notLeader *NotLeaderError
	require.ErrorAs(t, sub.err, &notLeader)
	assert.Empty(t, notLeader.LeaderID)

	// After hearing from a leader the refusal names it.
	node.handleAppendRequest(HeartbeatRequest{LeaderID: "n2", Term: 1, PrevLogIndex: -1, CommitIndex: -1})

	reply = make(chan submitReply, 1)
	node.handleSubmit(submitMsg{command: []byte("{}"), reply: reply})
	sub = <-reply
	require.ErrorAs(t, sub.err, &notLeader)
	assert.Equal(t, "n2", notLeader.LeaderID)
}

// TestLivenessShortcut tests leadership through the all-peers-down path
func TestLivenessShortcut(t *testing.T) {
	t.Run("enabled takes leadership when every peer is down", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, true)

		node.startElection()
		require.IsType(t, &candidateRole{}, node.role)

		node.handleVoteResult(voteResultMsg{peer: "n2:50052", resp: nil})
		require.IsType(t, &candidateRole{}, node.role, "one live peer should block the shortcut")

		node.handleVoteResult(voteResultMsg{peer: "n3:50053", resp: nil})
		require.IsType(t, &leaderRole{}, node.role)
	})

	t.Run("disabled stays candidate", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, false)

		node.startElection()
		node.handleVoteResult(voteResultMsg{peer: "n2:50052", resp: nil})
		node.handleVoteResult(voteResultMsg{peer: "n3:50053", resp: nil})
		require.IsType(t, &candidateRole{}, node.role)
	})

	t.Run("election with every peer already broken skips the sends", func(t *testing.T) {
		node, ft := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, true)
		node.markPeerDown("n2:50052")
		node.markPeerDown("n3:50053")

		node.startElection()
		require.IsType(t, &leaderRole{}, node.role)
		assert.Empty(t, ft.voteRequests())
	})

	t.Run("peer recovery clears the breaker", func(t *testing.T) {
		node, _ := newQuietNode(t, "n1", []string{"n2:50052"}, true)
		node.markPeerDown("n2:50052")
		assert.True(t, node.peerDown("n2:50052"))

		node.markPeerUp("n2:50052")
		assert.False(t, node.peerDown("n2:50052"))
		assert.Empty(t, node.peerDownUntil)
	})
}

// TestCommitRequiresCurrentTermMajority tests the leader's commit rule: only
// current-term entries count, and they commit earlier entries implicitly
func TestCommitRequiresCurrentTermMajority(t *testing.T) {
	node, _ := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, false)
	electLeader(t, node, "n2:50052")
	require.Equal(t, int64(1), node.currentTerm)

	// An entry inherited from an earlier leadership plus one of our own.
	node.log = []LogEntry{
		{Term: 0, Index: 0, Command: []byte("{}")},
		{Term: 1, Index: 1, Command: []byte("{}")},
	}
	lead := node.role.(*leaderRole)

	// The old-term entry alone never commits, however widely replicated.
	lead.matchIndex["n2:50052"] = 0
	lead.matchIndex["n3:50053"] = 0
	node.advanceCommit(lead)
	assert.Equal(t, int64(-1), node.commitIndex)

	// A majority on the current-term entry commits everything below it.
	lead.matchIndex["n2:50052"] = 1
	node.advanceCommit(lead)
	assert.Equal(t, int64(1), node.commitIndex)
}

// TestLeaderReplication tests the full leader-side path: append, replicate,
// advance indices, commit, apply, and deliver the result
func TestLeaderReplication(t *testing.T) {
	node, ft := newQuietNode(t, "n1", []string{"n2:50052", "n3:50053"}, false)
	electLeader(t, node, "n2:50052")

	reply := make(chan submitReply, 1)
	node.handleSubmit(submitMsg{
		command: mustEncode(t, &statemachine.RegisterUser{Username: "alice", Password: "pw"}),
		reply:   reply,
	})
	sub := <-reply
	require.NoError(t, sub.err)

	// The submit triggered an append round carrying the new entry.
	beats := ft.heartbeatsTo("n2:50052")
	require.NotEmpty(t, beats)
	last := beats[len(beats)-1]
	require.Len(t, last.req.Entries, 1)
	assert.Equal(t, int64(0), last.req.Entries[0].Index)
	assert.Equal(t, int64(-1), last.req.PrevLogIndex)

	// One follower acknowledging makes a majority of three.
	node.handleAppendResult(appendResultMsg{peer: "n2:50052", req: last.req, resp: &HeartbeatResponse{
		ServerID: "n2", Term: 1, Success: true, LastApplied: -1,
	}})

	lead := node.role.(*leaderRole)
	assert.Equal(t, int64(1), lead.nextIndex["n2:50052"])
	assert.Equal(t, int64(0), lead.matchIndex["n2:50052"])
	assert.Equal(t, int64(0), node.commitIndex)

	drainApply(node)
	assert.Equal(t, int64(0), node.lastApplied)

	out := <-sub.result
	require.NoError(t, out.err)
	assert.True(t, out.result.Success)
	assert.Equal(t, "User registered successfully.", out.result.Message)

	// A failure response walks the peer's next index back for the retry.
	lead.nextIndex["n3:50053"] = 1
	beats = ft.heartbeatsTo("n3:50053")
	require.NotEmpty(t, beats)
	node.handleAppendResult(appendResultMsg{peer: "n3:50053", req: beats[len(beats)-1].req, resp: &HeartbeatResponse{
		ServerID: "n3", Term: 1, Success: false, LastApplied: -1,
	}})
	assert.Equal(t, int64(0), lead.nextIndex["n3:50053"])
	assert.Equal(t, int64(-1), lead.matchIndex["n3:50053"])
}

// TestLeaderStepsDownOnAppendResponse tests that a higher term in a
// heartbeat response dethrones the leader
func TestLeaderStepsDownOnAppendResponse(t *testing.T) {
	node, ft := newQuietNode(t, "n1", []string{"n2:50052"}, true)
	node.markPeerDown("n2:50052")
	node.startElection()
	require.IsType(t, &leaderRole{}, node.role)
	node.markPeerUp("n2:50052")

	lead := node.role.(*leaderRole)
	node.sendAppend(lead, "n2:50052")
	beats := ft.heartbeatsTo("n2:50052")
	require.NotEmpty(t, beats)

	node.handleAppendResult(appendResultMsg{peer: "n2:50052", req: beats[len(beats)-1].req, resp: &HeartbeatResponse{
		ServerID: "n2", Term: 7, Success: false, LastApplied: -1,
	}})
	st := node.status()
	assert.Equal(t, "follower", string(st.State))
	assert.Equal(t, int64(7), st.CurrentTerm)
}

// TestStopFailsPendingSubmit tests that Stop aborts a submit waiting on a
// commit that can no longer happen
func TestStopFailsPendingSubmit(t *testing.T) {
	sm, _ := newTestApplier(t)
	ft := &fakeTransport{failAll: true}
	node := NewNode(Config{
		ID:                 "n1",
		Peers:              []string{"n2:50052"},
		ElectionTimeoutMin: 50 * time.Millisecond,
		ElectionTimeoutMax: 50 * time.Millisecond,
		HeartbeatInterval:  20 * time.Millisecond,
		TickInterval:       5 * time.Millisecond,
		LivenessShortcut:   true,
	}, sm, ft, nil)
	ft.node = node
	node.Start()

	ctx := context.Background()
	require.Eventually(t, func() bool {
		st, err := node.Status(ctx)
		return err == nil && st.State == "leader"
	}, 2*time.Second, 10*time.Millisecond)

	errCh := make(chan error, 1)
	go func() {
		_, err := node.Submit(ctx, mustEncode(t, &statemachine.RegisterUser{Username: "alice", Password: "pw"}))
		errCh <- err
	}()

	// The entry lands in the log but cannot commit without the peer.
	require.Eventually(t, func() bool {
		st, err := node.Status(ctx)
		return err == nil && st.LogLength == 1 && st.CommitIndex == -1
	}, 2*time.Second, 10*time.Millisecond)

	node.Stop()

	select {
	case err := <-errCh:
		assert.True(t, errors.Is(err, ErrNodeStopped) || isNotLeader(err),
			"unexpected submit error: %v", err)
	case <-time.After(2 * time.Second):
		t.Fatal("submit did not return after stop")
	}
}

func isNotLeader(err error) bool {
	var notLeader *NotLeaderError
	return errors.As(err, &notLeader)
}
