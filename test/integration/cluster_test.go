package integration

import (
	"context"
	"fmt"
	"net"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/test/bufconn"

	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/api"
	"github.com/cuemby/scribe/pkg/consensus"
	"github.com/cuemby/scribe/pkg/events"
	"github.com/cuemby/scribe/pkg/gateway"
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/transport"
	"github.com/cuemby/scribe/pkg/types"
)

// testNode is one fully wired replica: store, state machine, consensus node,
// transport, and gRPC server, reachable through an in-memory listener.
type testNode struct {
	id     string
	store  storage.Store
	node   *consensus.Node
	tr     *transport.GRPCTransport
	broker *events.Broker
	events events.Subscriber
	server *api.Server
	client proto.ScribeAPIClient

	killed bool
}

// cluster is an in-process replica group. Inter-node and client traffic run
// over real gRPC routed through per-node bufconn listeners.
type cluster struct {
	nodes []*testNode
}

// startCluster brings up size replicas named n1..nN. Election timeouts are
// fixed and distinct per node (150ms, 200ms, ...) so elections converge
// deterministically instead of relying on random draws.
func startCluster(t *testing.T, size int) *cluster {
	t.Helper()

	ids := make([]string, size)
	listeners := make(map[string]*bufconn.Listener, size)
	for i := range ids {
		ids[i] = fmt.Sprintf("n%d", i+1)
		listeners[ids[i]] = bufconn.Listen(1 << 20)
	}

	dialer := grpc.WithContextDialer(func(ctx context.Context, target string) (net.Conn, error) {
		lis, ok := listeners[target]
		if !ok {
			return nil, fmt.Errorf("no route to %s", target)
		}
		return lis.DialContext(ctx)
	})

	c := &cluster{}
	for i, id := range ids {
		peers := make([]string, 0, size-1)
		for _, other := range ids {
			if other != id {
				peers = append(peers, "passthrough:///"+other)
			}
		}

		store, err := storage.New(types.BackendFile, filepath.Join(t.TempDir(), id+".json"))
		require.NoError(t, err)

		broker := events.NewBroker()
		broker.Start()
		sub := broker.Subscribe()

		tr := transport.New(peers, transport.Options{
			Attempts:    2,
			Backoff:     25 * time.Millisecond,
			CallTimeout: time.Second,
			DialOptions: []grpc.DialOption{dialer},
		})

		timeout := time.Duration(150+50*i) * time.Millisecond
		node := consensus.NewNode(consensus.Config{
			ID:                 id,
			Peers:              peers,
			ElectionTimeoutMin: timeout,
			ElectionTimeoutMax: timeout,
			HeartbeatInterval:  50 * time.Millisecond,
			TickInterval:       10 * time.Millisecond,
			PeerDownCooldown:   500 * time.Millisecond,
			LivenessShortcut:   true,
		}, statemachine.New(store), tr, broker)

		srv := api.NewServer(node, gateway.New(node, store))
		go srv.Serve(listeners[id]) //nolint:errcheck

		conn, err := grpc.NewClient("passthrough:///"+id, dialer,
			grpc.WithTransportCredentials(insecure.NewCredentials()))
		require.NoError(t, err)

		n := &testNode{
			id:     id,
			store:  store,
			node:   node,
			tr:     tr,
			broker: broker,
			events: sub,
			server: srv,
			client: proto.NewScribeAPIClient(conn),
		}
		c.nodes = append(c.nodes, n)

		t.Cleanup(func() {
			n.kill()
			broker.Stop()
			store.Close() //nolint:errcheck
			conn.Close()  //nolint:errcheck
		})
	}

	// Every server is reachable; now let the nodes start electing.
	for _, n := range c.nodes {
		n.tr.Start(n.node)
		n.node.Start()
	}
	return c
}

// kill stops a replica the way a crash would look to its peers: it stops
// heartbeating and stops answering RPCs. Safe to call twice.
func (n *testNode) kill() {
	if n.killed {
		return
	}
	n.killed = true
	n.node.Stop()
	n.tr.Stop()
	n.server.Stop()
}

// living returns the replicas that have not been killed.
func (c *cluster) living() []*testNode {
	var nodes []*testNode
	for _, n := range c.nodes {
		if !n.killed {
			nodes = append(nodes, n)
		}
	}
	return nodes
}

// status fetches the node's consensus snapshot over gRPC.
func (n *testNode) status(t *testing.T) *proto.ServerStatus {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	resp, err := n.client.ServerStatus(ctx, &proto.ServerStatusRequest{})
	if err != nil {
		return nil
	}
	return resp.Status
}

// awaitLeader polls until every living replica agrees on a single leader and
// returns it.
func (c *cluster) awaitLeader(t *testing.T) *testNode {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		if leader := c.agreedLeader(t); leader != nil {
			return leader
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatal("no leader elected within deadline")
	return nil
}

// agreedLeader returns the leader when exactly one living replica holds the
// role and every living replica names it, nil while the view is still split.
func (c *cluster) agreedLeader(t *testing.T) *testNode {
	t.Helper()
	var leader *testNode
	leaderID := ""
	for _, n := range c.living() {
		st := n.status(t)
		if st == nil || st.LeaderId == "" {
			return nil
		}
		if st.State == string(types.StateLeader) {
			if leader != nil {
				return nil
			}
			leader = n
		}
		if leaderID == "" {
			leaderID = st.LeaderId
		} else if leaderID != st.LeaderId {
			return nil
		}
	}
	if leader == nil || leader.id != leaderID {
		return nil
	}
	return leader
}

// awaitApplied polls until every living replica has applied the log up to
// index.
func (c *cluster) awaitApplied(t *testing.T, index int64) {
	t.Helper()
	deadline := time.Now().Add(10 * time.Second)
	for time.Now().Before(deadline) {
		caughtUp := true
		for _, n := range c.living() {
			st := n.status(t)
			if st == nil || st.LastApplied < index {
				caughtUp = false
				break
			}
		}
		if caughtUp {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("replicas did not apply up to index %d within deadline", index)
}

// rpcCtx returns a context for one client call against the cluster.
func rpcCtx(t *testing.T) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)
	return ctx
}

// awaitEvent reads from sub until an event of the wanted type arrives.
func awaitEvent(t *testing.T, sub events.Subscriber, want events.EventType) *events.Event {
	t.Helper()
	deadline := time.After(5 * time.Second)
	for {
		select {
		case ev := <-sub:
			if ev.Type == want {
				return ev
			}
		case <-deadline:
			t.Fatalf("no %s event within deadline", want)
			return nil
		}
	}
}
