package transport

import (
	"context"
	"fmt"
	"net"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/consensus"
)

// fakePeer is an in-memory DistributedService that records requests and can
// fail a configured number of leading calls.
type fakePeer struct {
	proto.UnimplementedDistributedServiceServer

	mu       sync.Mutex
	failures int
	calls    int
	voteReqs []*proto.VoteRequest
	hbReqs   []*proto.HeartbeatRequest
	voteResp *proto.VoteResponse
	hbResp   *proto.HeartbeatResponse
}

func (f *fakePeer) RequestVote(_ context.Context, req *proto.VoteRequest) (*proto.VoteResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.voteReqs = append(f.voteReqs, req)
	if f.calls <= f.failures {
		return nil, status.Error(codes.Unavailable, "peer down")
	}
	if f.voteResp != nil {
		return f.voteResp, nil
	}
	return &proto.VoteResponse{ServerId: "peer", Term: req.Term, VoteGranted: true}, nil
}

func (f *fakePeer) SendHeartbeat(_ context.Context, req *proto.HeartbeatRequest) (*proto.HeartbeatResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.hbReqs = append(f.hbReqs, req)
	if f.calls <= f.failures {
		return nil, status.Error(codes.Unavailable, "peer down")
	}
	if f.hbResp != nil {
		return f.hbResp, nil
	}
	return &proto.HeartbeatResponse{ServerId: "peer", Term: req.Term, Success: true, LastApplied: -1}, nil
}

func (f *fakePeer) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

func (f *fakePeer) voteRequests() []*proto.VoteRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*proto.VoteRequest(nil), f.voteReqs...)
}

func (f *fakePeer) heartbeatRequests() []*proto.HeartbeatRequest {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]*proto.HeartbeatRequest(nil), f.hbReqs...)
}

// serveFakes runs each fake peer behind an in-memory listener and returns a
// dial option routing "passthrough:///<name>" targets to them.
func serveFakes(t *testing.T, fakes map[string]*fakePeer) grpc.DialOption {
	t.Helper()
	listeners := make(map[string]*bufconn.Listener, len(fakes))
	for name, fake := range fakes {
		lis := bufconn.Listen(1 << 20)
		srv := grpc.NewServer()
		proto.RegisterDistributedServiceServer(srv, fake)
		go srv.Serve(lis) //nolint:errcheck
		t.Cleanup(srv.Stop)
		listeners[name] = lis
	}
	return grpc.WithContextDialer(func(ctx context.Context, target string) (net.Conn, error) {
		lis, ok := listeners[target]
		if !ok {
			return nil, fmt.Errorf("no route to %s", target)
		}
		return lis.DialContext(ctx)
	})
}

type voteDelivery struct {
	peer string
	resp *consensus.VoteResponse
}

type appendDelivery struct {
	peer string
	req  consensus.HeartbeatRequest
	resp *consensus.HeartbeatResponse
}

type fakeSink struct {
	votes   chan voteDelivery
	appends chan appendDelivery
}

func newFakeSink() *fakeSink {
	return &fakeSink{
		votes:   make(chan voteDelivery, 16),
		appends: make(chan appendDelivery, 16),
	}
}

func (s *fakeSink) DeliverVoteResult(peer string, resp *consensus.VoteResponse) {
	s.votes <- voteDelivery{peer: peer, resp: resp}
}

func (s *fakeSink) DeliverAppendResult(peer string, req consensus.HeartbeatRequest, resp *consensus.HeartbeatResponse) {
	s.appends <- appendDelivery{peer: peer, req: req, resp: resp}
}

func awaitVote(t *testing.T, sink *fakeSink) voteDelivery {
	t.Helper()
	select {
	case d := <-sink.votes:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("no vote result delivered")
		return voteDelivery{}
	}
}

func awaitAppend(t *testing.T, sink *fakeSink) appendDelivery {
	t.Helper()
	select {
	case d := <-sink.appends:
		return d
	case <-time.After(5 * time.Second):
		t.Fatal("no append result delivered")
		return appendDelivery{}
	}
}

func newTestTransport(t *testing.T, peers []string, opts Options) (*GRPCTransport, *fakeSink) {
	t.Helper()
	tr := New(peers, opts)
	sink := newFakeSink()
	tr.Start(sink)
	t.Cleanup(tr.Stop)
	return tr, sink
}

// TestVoteRequestDelivery tests the request and response conversions on the
// vote path
func TestVoteRequestDelivery(t *testing.T) {
	fake := &fakePeer{voteResp: &proto.VoteResponse{ServerId: "n2", Term: 3, VoteGranted: true}}
	dial := serveFakes(t, map[string]*fakePeer{"n2": fake})

	peer := "passthrough:///n2"
	tr, sink := newTestTransport(t, []string{peer}, Options{
		Backoff:     time.Millisecond,
		CallTimeout: time.Second,
		DialOptions: []grpc.DialOption{dial},
	})

	tr.SendVoteRequest(peer, consensus.VoteRequest{
		ServerID:     "n1",
		Term:         3,
		LastLogIndex: 4,
		LastLogTerm:  2,
	})

	d := awaitVote(t, sink)
	assert.Equal(t, peer, d.peer)
	require.NotNil(t, d.resp)
	assert.Equal(t, "n2", d.resp.ServerID)
	assert.Equal(t, int64(3), d.resp.Term)
	assert.True(t, d.resp.VoteGranted)

	reqs := fake.voteRequests()
	require.Len(t, reqs, 1)
	assert.Equal(t, "n1", reqs[0].ServerId)
	assert.Equal(t, int64(3), reqs[0].Term)
	assert.Equal(t, int64(4), reqs[0].LastLogIndex)
	assert.Equal(t, int64(2), reqs[0].LastLogTerm)
}

// TestHeartbeatDelivery tests the heartbeat path, including log entries and
// the request echo in the delivery
func TestHeartbeatDelivery(t *testing.T) {
	fake := &fakePeer{hbResp: &proto.HeartbeatResponse{ServerId: "n2", Term: 2, Success: true, LastApplied: 7}}
	dial := serveFakes(t, map[string]*fakePeer{"n2": fake})

	peer := "passthrough:///n2"
	tr, sink := newTestTransport(t, []string{peer}, Options{
		Backoff:     time.Millisecond,
		CallTimeout: time.Second,
		DialOptions: []grpc.DialOption{dial},
	})

	req := consensus.HeartbeatRequest{
		LeaderID:     "n1",
		Term:         2,
		PrevLogIndex: 8,
		PrevLogTerm:  1,
		CommitIndex:  8,
		Entries: []consensus.LogEntry{
			{Term: 2, Index: 9, Command: []byte(`{"type":"register_user"}`), Timestamp: 42},
		},
	}
	tr.SendHeartbeat(peer, req)

	d := awaitAppend(t, sink)
	assert.Equal(t, peer, d.peer)
	assert.Equal(t, req.Term, d.req.Term)
	require.Len(t, d.req.Entries, 1)
	assert.Equal(t, int64(9), d.req.Entries[0].Index)
	require.NotNil(t, d.resp)
	assert.True(t, d.resp.Success)
	assert.Equal(t, int64(7), d.resp.LastApplied)

	sent := fake.heartbeatRequests()
	require.Len(t, sent, 1)
	assert.Equal(t, "n1", sent[0].LeaderId)
	assert.Equal(t, int64(8), sent[0].PrevLogIndex)
	assert.Equal(t, int64(1), sent[0].PrevLogTerm)
	assert.Equal(t, int64(8), sent[0].CommitIndex)
	require.Len(t, sent[0].Entries, 1)
	assert.Equal(t, []byte(`{"type":"register_user"}`), sent[0].Entries[0].Command)
	assert.Equal(t, int64(42), sent[0].Entries[0].Timestamp)
}

// TestRetriesUntilSuccess tests that transient failures are retried within
// the attempt budget
func TestRetriesUntilSuccess(t *testing.T) {
	fake := &fakePeer{failures: 2}
	dial := serveFakes(t, map[string]*fakePeer{"n2": fake})

	peer := "passthrough:///n2"
	tr, sink := newTestTransport(t, []string{peer}, Options{
		Attempts:    5,
		Backoff:     time.Millisecond,
		CallTimeout: time.Second,
		DialOptions: []grpc.DialOption{dial},
	})

	tr.SendVoteRequest(peer, consensus.VoteRequest{ServerID: "n1", Term: 1, LastLogIndex: -1})

	d := awaitVote(t, sink)
	require.NotNil(t, d.resp)
	assert.True(t, d.resp.VoteGranted)
	assert.Equal(t, 3, fake.callCount())
}

// TestExhaustedRetriesDeliverNil tests that an unreachable peer surfaces as
// a nil response after the final attempt
func TestExhaustedRetriesDeliverNil(t *testing.T) {
	dial := serveFakes(t, map[string]*fakePeer{}) // no routes at all

	peer := "passthrough:///ghost"
	tr, sink := newTestTransport(t, []string{peer}, Options{
		Attempts:    2,
		Backoff:     time.Millisecond,
		CallTimeout: 500 * time.Millisecond,
		DialOptions: []grpc.DialOption{dial},
	})

	tr.SendVoteRequest(peer, consensus.VoteRequest{ServerID: "n1", Term: 1, LastLogIndex: -1})

	d := awaitVote(t, sink)
	assert.Equal(t, peer, d.peer)
	assert.Nil(t, d.resp)
}

// TestUnknownPeerDropped tests that sends to peers outside the configured
// set are discarded rather than queued
func TestUnknownPeerDropped(t *testing.T) {
	fake := &fakePeer{}
	dial := serveFakes(t, map[string]*fakePeer{"n2": fake})

	peer := "passthrough:///n2"
	tr, sink := newTestTransport(t, []string{peer}, Options{
		Backoff:     time.Millisecond,
		CallTimeout: time.Second,
		DialOptions: []grpc.DialOption{dial},
	})

	tr.SendVoteRequest("passthrough:///stranger", consensus.VoteRequest{ServerID: "n1", Term: 1})
	tr.SendVoteRequest(peer, consensus.VoteRequest{ServerID: "n1", Term: 1, LastLogIndex: -1})

	d := awaitVote(t, sink)
	assert.Equal(t, peer, d.peer)
	assert.Empty(t, sink.votes)
}

// TestStopInterruptsBackoff tests that Stop does not wait out the remaining
// retry schedule
func TestStopInterruptsBackoff(t *testing.T) {
	dial := serveFakes(t, map[string]*fakePeer{})

	peer := "passthrough:///ghost"
	tr := New([]string{peer}, Options{
		Attempts:    5,
		Backoff:     10 * time.Second,
		CallTimeout: 500 * time.Millisecond,
		DialOptions: []grpc.DialOption{dial},
	})
	sink := newFakeSink()
	tr.Start(sink)

	tr.SendHeartbeat(peer, consensus.HeartbeatRequest{LeaderID: "n1", Term: 1, PrevLogIndex: -1, CommitIndex: -1})

	// Give the worker time to fail the first attempt and enter backoff.
	time.Sleep(100 * time.Millisecond)

	start := time.Now()
	tr.Stop()
	assert.Less(t, time.Since(start), 5*time.Second)

	// Sends after Stop are silently dropped.
	tr.SendVoteRequest(peer, consensus.VoteRequest{ServerID: "n1", Term: 1})
}
