package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/scribe/api/proto"
)

// TestClusterReplicatesWrites tests that commands accepted by the leader are
// applied identically on every replica
func TestClusterReplicatesWrites(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	c := startCluster(t, 3)
	leader := c.awaitLeader(t)

	reg, err := leader.client.RegisterUser(rpcCtx(t), &proto.RegisterUserRequest{
		Username: "alice", Password: "pw",
	})
	require.NoError(t, err)
	require.True(t, reg.Success)

	created, err := leader.client.CreateDocument(rpcCtx(t), &proto.CreateDocumentRequest{
		Title: "Design Notes", Username: "alice",
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	docID := created.DocumentId

	updated, err := leader.client.UpdateDocumentContent(rpcCtx(t), &proto.UpdateDocumentContentRequest{
		DocumentId: docID, Content: "Hello World", Username: "alice",
	})
	require.NoError(t, err)
	require.True(t, updated.Success)

	// Three commands: the leader has applied up to index 2, the followers
	// catch up within a heartbeat.
	leaderStatus := leader.status(t)
	require.NotNil(t, leaderStatus)
	assert.Equal(t, int64(2), leaderStatus.LastApplied)
	c.awaitApplied(t, 2)
	t.Logf("✓ all replicas applied index %d", leaderStatus.LastApplied)

	// Every replica serves the document from its own store.
	for _, n := range c.living() {
		got, err := n.client.GetDocument(rpcCtx(t), &proto.GetDocumentRequest{
			DocumentId: docID, Username: "alice",
		})
		require.NoError(t, err)
		require.True(t, got.Success, "replica %s should have the document", n.id)
		assert.Equal(t, "Design Notes", got.Document.Title)
		assert.Equal(t, "Hello World", got.Document.Data)
		assert.Equal(t, []string{"alice"}, got.Document.Users)
	}

	// The stores themselves are byte-for-byte in agreement, timestamps
	// included: every replica applied the same commands with the same
	// payloads.
	wantUsers, err := leader.store.ListUsers()
	require.NoError(t, err)
	wantDocs, err := leader.store.ListDocuments()
	require.NoError(t, err)
	for _, n := range c.living() {
		gotUsers, err := n.store.ListUsers()
		require.NoError(t, err)
		gotDocs, err := n.store.ListDocuments()
		require.NoError(t, err)
		assert.Equal(t, wantUsers, gotUsers, "replica %s users diverged", n.id)
		assert.Equal(t, wantDocs, gotDocs, "replica %s documents diverged", n.id)
	}
}

// TestConcurrentEditsMerge tests that a stale edit merges with the current
// content through the full replication path instead of overwriting it
func TestConcurrentEditsMerge(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	c := startCluster(t, 3)
	leader := c.awaitLeader(t)

	for _, username := range []string{"alice", "bob"} {
		resp, err := leader.client.RegisterUser(rpcCtx(t), &proto.RegisterUserRequest{
			Username: username, Password: "pw",
		})
		require.NoError(t, err)
		require.True(t, resp.Success)
	}

	created, err := leader.client.CreateDocument(rpcCtx(t), &proto.CreateDocumentRequest{
		Title: "Draft", Username: "alice",
	})
	require.NoError(t, err)
	require.True(t, created.Success)
	docID := created.DocumentId

	shared, err := leader.client.AddUserToDocument(rpcCtx(t), &proto.AddUserToDocumentRequest{
		DocumentId: docID, Username: "bob", AddedBy: "alice",
	})
	require.NoError(t, err)
	require.True(t, shared.Success)

	seed, err := leader.client.UpdateDocumentContent(rpcCtx(t), &proto.UpdateDocumentContentRequest{
		DocumentId: docID, Content: "Hello World", Username: "alice",
	})
	require.NoError(t, err)
	require.True(t, seed.Success)

	// Both editors start from "Hello World". Alice lands first and her base
	// still matches, so her edit is a plain update.
	alice, err := leader.client.UpdateDocumentContent(rpcCtx(t), &proto.UpdateDocumentContentRequest{
		DocumentId: docID, Content: "Hello cruel World", BaseContent: "Hello World", Username: "alice",
	})
	require.NoError(t, err)
	require.True(t, alice.Success)
	assert.Equal(t, "Document content updated successfully.", alice.Message)

	// Bob's base is now stale, so his insertion merges with Alice's.
	bob, err := leader.client.UpdateDocumentContent(rpcCtx(t), &proto.UpdateDocumentContentRequest{
		DocumentId: docID, Content: "Hello World!", BaseContent: "Hello World", Username: "bob",
	})
	require.NoError(t, err)
	require.True(t, bob.Success)
	assert.Equal(t, "Document content merged successfully.", bob.Message)
	assert.Equal(t, "Hello cruel World!", bob.Content)
	t.Logf("✓ merge produced %q", bob.Content)

	// Index 6: two users, create, share, seed, two edits.
	c.awaitApplied(t, 6)
	for _, n := range c.living() {
		got, err := n.client.GetDocument(rpcCtx(t), &proto.GetDocumentRequest{
			DocumentId: docID, Username: "bob",
		})
		require.NoError(t, err)
		require.True(t, got.Success)
		assert.Equal(t, "Hello cruel World!", got.Document.Data, "replica %s diverged", n.id)
	}
}
