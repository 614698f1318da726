package api

import (
	"context"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/consensus"
	"github.com/cuemby/scribe/pkg/gateway"
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/transport"
	"github.com/cuemby/scribe/pkg/types"
)

// testStack is a full single-node replica served over an in-memory listener.
type testStack struct {
	node   *consensus.Node
	api    proto.ScribeAPIClient
	dist   proto.DistributedServiceClient
	server *Server
}

// startStack boots a complete replica (store, state machine, consensus,
// gateway, gRPC server) on a bufconn listener and returns connected clients.
// With no peers and short timeouts the node elects itself within ~50ms; with
// peers and long timeouts it stays a quiet follower.
func startStack(t *testing.T, id string, peers []string, electionTimeout time.Duration) *testStack {
	t.Helper()

	store, err := storage.New(types.BackendFile, filepath.Join(t.TempDir(), "data.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	sm := statemachine.New(store)
	tr := transport.New(peers, transport.Options{})

	cfg := consensus.Config{
		ID:                 id,
		Peers:              peers,
		ElectionTimeoutMin: electionTimeout,
		ElectionTimeoutMax: electionTimeout,
		HeartbeatInterval:  25 * time.Millisecond,
	}
	node := consensus.NewNode(cfg, sm, tr, nil)
	tr.Start(node)
	node.Start()
	t.Cleanup(func() {
		node.Stop()
		tr.Stop()
	})

	srv := NewServer(node, gateway.New(node, store))
	lis := bufconn.Listen(1 << 20)
	go func() { _ = srv.Serve(lis) }()
	t.Cleanup(srv.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &testStack{
		node:   node,
		api:    proto.NewScribeAPIClient(conn),
		dist:   proto.NewDistributedServiceClient(conn),
		server: srv,
	}
}

// startLeaderStack boots a singleton replica and waits for it to lead.
func startLeaderStack(t *testing.T) *testStack {
	t.Helper()

	stack := startStack(t, "n1", nil, 50*time.Millisecond)

	deadline := time.Now().Add(5 * time.Second)
	for {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		resp, err := stack.api.ServerStatus(ctx, &proto.ServerStatusRequest{})
		cancel()
		if err == nil && resp.Status.State == string(types.StateLeader) {
			return stack
		}
		if time.Now().After(deadline) {
			t.Fatalf("node never became leader (last err: %v)", err)
		}
		time.Sleep(10 * time.Millisecond)
	}
}

// TestServerUserLifecycle tests user registration and authentication over gRPC
func TestServerUserLifecycle(t *testing.T) {
	stack := startLeaderStack(t)
	ctx := context.Background()

	reg, err := stack.api.RegisterUser(ctx, &proto.RegisterUserRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, reg.Success)
	assert.Equal(t, "User registered successfully.", reg.Message)

	dup, err := stack.api.RegisterUser(ctx, &proto.RegisterUserRequest{Username: "alice", Password: "other"})
	require.NoError(t, err)
	assert.False(t, dup.Success)
	assert.Equal(t, "Username already exists.", dup.Message)

	auth, err := stack.api.AuthenticateUser(ctx, &proto.AuthenticateUserRequest{Username: "alice", Password: "secret"})
	require.NoError(t, err)
	assert.True(t, auth.Success)
	assert.Equal(t, "Authentication successful.", auth.Message)

	bad, err := stack.api.AuthenticateUser(ctx, &proto.AuthenticateUserRequest{Username: "alice", Password: "wrong"})
	require.NoError(t, err)
	assert.False(t, bad.Success)
	assert.Equal(t, "Invalid password.", bad.Message)

	unknown, err := stack.api.AuthenticateUser(ctx, &proto.AuthenticateUserRequest{Username: "ghost", Password: "x"})
	require.NoError(t, err)
	assert.False(t, unknown.Success)
	assert.Equal(t, "User not found.", unknown.Message)
}

// TestServerDocumentLifecycle tests the full document flow over gRPC
func TestServerDocumentLifecycle(t *testing.T) {
	stack := startLeaderStack(t)
	ctx := context.Background()

	for _, user := range []string{"alice", "bob"} {
		resp, err := stack.api.RegisterUser(ctx, &proto.RegisterUserRequest{Username: user, Password: "pw"})
		require.NoError(t, err)
		require.True(t, resp.Success)
	}

	created, err := stack.api.CreateDocument(ctx, &proto.CreateDocumentRequest{Title: "Notes", Username: "alice"})
	require.NoError(t, err)
	require.True(t, created.Success)
	_, err = uuid.Parse(created.DocumentId)
	assert.NoError(t, err)
	docID := created.DocumentId

	got, err := stack.api.GetDocument(ctx, &proto.GetDocumentRequest{DocumentId: docID, Username: "alice"})
	require.NoError(t, err)
	require.True(t, got.Success)
	assert.Equal(t, "Notes", got.Document.Title)
	assert.Equal(t, "", got.Document.Data)
	assert.Equal(t, []string{"alice"}, got.Document.Users)
	assert.WithinDuration(t, time.Now(), got.Document.LastEdited.AsTime(), 5*time.Second)

	denied, err := stack.api.GetDocument(ctx, &proto.GetDocumentRequest{DocumentId: docID, Username: "bob"})
	require.NoError(t, err)
	assert.False(t, denied.Success)
	assert.Equal(t, "User does not have access to this document.", denied.Message)

	shared, err := stack.api.AddUserToDocument(ctx, &proto.AddUserToDocumentRequest{
		DocumentId: docID, Username: "bob", AddedBy: "alice",
	})
	require.NoError(t, err)
	assert.True(t, shared.Success)
	assert.Equal(t, "User added to document successfully.", shared.Message)

	list, err := stack.api.ListDocuments(ctx, &proto.ListDocumentsRequest{Username: "bob"})
	require.NoError(t, err)
	require.True(t, list.Success)
	require.Len(t, list.Documents, 1)
	assert.Equal(t, docID, list.Documents[0].Id)

	renamed, err := stack.api.UpdateDocumentTitle(ctx, &proto.UpdateDocumentTitleRequest{
		DocumentId: docID, Title: "Meeting Notes", Username: "alice",
	})
	require.NoError(t, err)
	assert.True(t, renamed.Success)
	assert.Equal(t, "Document title updated successfully.", renamed.Message)

	// Plain overwrite: no base content means last writer wins.
	updated, err := stack.api.UpdateDocumentContent(ctx, &proto.UpdateDocumentContentRequest{
		DocumentId: docID, Content: "Hello cruel World", Username: "alice",
	})
	require.NoError(t, err)
	assert.True(t, updated.Success)
	assert.Equal(t, "Document content updated successfully.", updated.Message)
	assert.Equal(t, "Hello cruel World", updated.Content)

	// Bob edits from a stale base, so his change merges with alice's.
	merged, err := stack.api.UpdateDocumentContent(ctx, &proto.UpdateDocumentContentRequest{
		DocumentId:  docID,
		Content:     "Hello World!",
		BaseContent: "Hello World",
		Username:    "bob",
	})
	require.NoError(t, err)
	assert.True(t, merged.Success)
	assert.Equal(t, "Document content merged successfully.", merged.Message)
	assert.Equal(t, "Hello cruel World!", merged.Content)

	removed, err := stack.api.RemoveUserFromDocument(ctx, &proto.RemoveUserFromDocumentRequest{
		DocumentId: docID, Username: "bob", RemovedBy: "alice",
	})
	require.NoError(t, err)
	assert.True(t, removed.Success)
	assert.Equal(t, "User removed from document successfully.", removed.Message)

	deniedAgain, err := stack.api.GetDocument(ctx, &proto.GetDocumentRequest{DocumentId: docID, Username: "bob"})
	require.NoError(t, err)
	assert.False(t, deniedAgain.Success)

	deleted, err := stack.api.DeleteDocument(ctx, &proto.DeleteDocumentRequest{DocumentId: docID, Username: "alice"})
	require.NoError(t, err)
	assert.True(t, deleted.Success)
	assert.Equal(t, "Document deleted successfully.", deleted.Message)

	gone, err := stack.api.GetDocument(ctx, &proto.GetDocumentRequest{DocumentId: docID, Username: "alice"})
	require.NoError(t, err)
	assert.False(t, gone.Success)
	assert.Equal(t, "Document not found.", gone.Message)
}

// TestServerStatusRPCs tests the status endpoints
func TestServerStatusRPCs(t *testing.T) {
	stack := startLeaderStack(t)
	ctx := context.Background()

	st, err := stack.api.ServerStatus(ctx, &proto.ServerStatusRequest{})
	require.NoError(t, err)
	assert.Equal(t, "n1", st.Status.ServerId)
	assert.Equal(t, string(types.StateLeader), st.Status.State)
	assert.Equal(t, "n1", st.Status.LeaderId)
	assert.GreaterOrEqual(t, st.Status.CurrentTerm, int64(1))

	cluster, err := stack.api.ClusterStatus(ctx, &proto.ClusterStatusRequest{})
	require.NoError(t, err)
	require.Len(t, cluster.Statuses, 1)
	assert.Equal(t, "n1", cluster.Statuses[0].ServerId)
}

// TestReplicateCommandOnLeader tests node-to-node command submission
func TestReplicateCommandOnLeader(t *testing.T) {
	stack := startLeaderStack(t)
	ctx := context.Background()

	command, err := statemachine.Encode(&statemachine.RegisterUser{Username: "carol", Password: "pw"})
	require.NoError(t, err)

	resp, err := stack.dist.ReplicateCommand(ctx, &proto.CommandRequest{ServerId: "n9", Command: command})
	require.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, "User registered successfully.", resp.Message)
	assert.Equal(t, "n1", resp.ServerId)
	assert.GreaterOrEqual(t, resp.Term, int64(1))

	// The command went through consensus; the replica can now serve it.
	auth, err := stack.api.AuthenticateUser(ctx, &proto.AuthenticateUserRequest{Username: "carol", Password: "pw"})
	require.NoError(t, err)
	assert.True(t, auth.Success)
}

// TestReplicateCommandOnFollower tests that non-leaders refuse commands
func TestReplicateCommandOnFollower(t *testing.T) {
	// Two unreachable peers and a one-minute election timeout keep the node
	// a follower for the whole test.
	stack := startStack(t, "n2", []string{"passthrough:///n1", "passthrough:///n3"}, time.Minute)
	ctx := context.Background()

	command, err := statemachine.Encode(&statemachine.RegisterUser{Username: "dave", Password: "pw"})
	require.NoError(t, err)

	t.Run("no leader known", func(t *testing.T) {
		_, err := stack.dist.ReplicateCommand(ctx, &proto.CommandRequest{ServerId: "n9", Command: command})
		require.Error(t, err)

		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.FailedPrecondition, st.Code())
		assert.Equal(t, "No leader available. Try again later.", st.Message())
	})

	t.Run("leader known after heartbeat", func(t *testing.T) {
		hb, err := stack.dist.SendHeartbeat(ctx, &proto.HeartbeatRequest{
			LeaderId:     "n1",
			Term:         1,
			PrevLogIndex: -1,
			PrevLogTerm:  0,
			CommitIndex:  -1,
		})
		require.NoError(t, err)
		require.True(t, hb.Success)

		_, err = stack.dist.ReplicateCommand(ctx, &proto.CommandRequest{ServerId: "n9", Command: command})
		require.Error(t, err)

		st, ok := status.FromError(err)
		require.True(t, ok)
		assert.Equal(t, codes.FailedPrecondition, st.Code())
		assert.Equal(t, "Not the leader. Current leader: n1", st.Message())
	})

	t.Run("client write is redirected not failed", func(t *testing.T) {
		resp, err := stack.api.RegisterUser(ctx, &proto.RegisterUserRequest{Username: "dave", Password: "pw"})
		require.NoError(t, err)
		assert.False(t, resp.Success)
		assert.Equal(t, "Not the leader. Current leader: n1", resp.Message)
	})
}

// TestVoteAndHeartbeatRPCs tests the consensus RPC surface end to end
func TestVoteAndHeartbeatRPCs(t *testing.T) {
	stack := startStack(t, "n2", []string{"passthrough:///n1", "passthrough:///n3"}, time.Minute)
	ctx := context.Background()

	granted, err := stack.dist.RequestVote(ctx, &proto.VoteRequest{
		ServerId:     "n1",
		Term:         1,
		LastLogIndex: -1,
		LastLogTerm:  0,
	})
	require.NoError(t, err)
	assert.True(t, granted.VoteGranted)
	assert.Equal(t, int64(1), granted.Term)
	assert.Equal(t, "n2", granted.ServerId)

	// One vote per term.
	refused, err := stack.dist.RequestVote(ctx, &proto.VoteRequest{
		ServerId:     "n3",
		Term:         1,
		LastLogIndex: -1,
		LastLogTerm:  0,
	})
	require.NoError(t, err)
	assert.False(t, refused.VoteGranted)

	// Stale heartbeats are refused.
	stale, err := stack.dist.SendHeartbeat(ctx, &proto.HeartbeatRequest{
		LeaderId:     "n0",
		Term:         0,
		PrevLogIndex: -1,
		PrevLogTerm:  0,
		CommitIndex:  -1,
	})
	require.NoError(t, err)
	assert.False(t, stale.Success)
	assert.Equal(t, int64(1), stale.Term)
}

// TestMethodName tests gRPC method name extraction
func TestMethodName(t *testing.T) {
	assert.Equal(t, "GetDocument", methodName("/scribe.ScribeAPI/GetDocument"))
	assert.Equal(t, "RequestVote", methodName("/scribe.DistributedService/RequestVote"))
	assert.Equal(t, "bare", methodName("bare"))
}
