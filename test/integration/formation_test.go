package integration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/events"
	"github.com/cuemby/scribe/pkg/types"
)

// TestClusterElectsSingleLeader tests that three replicas converge on one
// leader and agree on the term
func TestClusterElectsSingleLeader(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	c := startCluster(t, 3)
	leader := c.awaitLeader(t)
	t.Logf("✓ %s elected leader", leader.id)

	leaderStatus := leader.status(t)
	require.NotNil(t, leaderStatus)
	assert.GreaterOrEqual(t, leaderStatus.CurrentTerm, int64(1))
	assert.Equal(t, int64(-1), leaderStatus.CommitIndex)
	assert.Equal(t, int64(-1), leaderStatus.LastApplied)

	followers := 0
	for _, n := range c.nodes {
		st := n.status(t)
		require.NotNil(t, st)
		assert.Equal(t, leader.id, st.LeaderId)
		assert.Equal(t, leaderStatus.CurrentTerm, st.CurrentTerm)
		if st.State == string(types.StateFollower) {
			followers++
		}
	}
	assert.Equal(t, 2, followers)

	// The winner announced itself on its event broker.
	ev := awaitEvent(t, leader.events, events.EventLeaderElected)
	assert.Equal(t, leader.id, ev.ServerID)
}

// TestFollowerRedirectsWrites tests that a write sent to a follower comes
// back naming the leader instead of being applied or forwarded
func TestFollowerRedirectsWrites(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test")
	}

	c := startCluster(t, 3)
	leader := c.awaitLeader(t)

	var follower *testNode
	for _, n := range c.living() {
		if n != leader {
			follower = n
			break
		}
	}
	require.NotNil(t, follower)

	resp, err := follower.client.RegisterUser(rpcCtx(t), &proto.RegisterUserRequest{
		Username: "bob", Password: "secret",
	})
	require.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, "Not the leader. Current leader: "+leader.id, resp.Message)
	t.Logf("✓ follower %s redirected the write to %s", follower.id, leader.id)

	// The same write against the leader goes through.
	resp, err = leader.client.RegisterUser(rpcCtx(t), &proto.RegisterUserRequest{
		Username: "bob", Password: "secret",
	})
	require.NoError(t, err)
	require.True(t, resp.Success)

	// Once replicated, the follower serves the read locally.
	c.awaitApplied(t, 0)
	auth, err := follower.client.AuthenticateUser(rpcCtx(t), &proto.AuthenticateUserRequest{
		Username: "bob", Password: "secret",
	})
	require.NoError(t, err)
	assert.True(t, auth.Success)
	assert.Equal(t, "Authentication successful.", auth.Message)
}
