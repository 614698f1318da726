/*
Package consensus implements leader election and replicated-log consensus for
Scribe clusters.

Every server runs one Node. Nodes agree on a single, append-only log of
commands; each node applies committed commands, in log order, to its local
state machine. Because every node applies the same commands in the same order,
all replicas converge on identical state. Exactly one node at a time acts as
leader and accepts writes; the rest replicate.

# Architecture

All consensus state lives inside a single goroutine. Nothing else reads or
writes the term, the log, or the role, so the package has no locks around
consensus data. Every external interaction is a message through the node's
mailbox:

	                          ┌──────────────────────────┐
	  HandleVoteRequest ────▶ │                          │
	  HandleHeartbeat  ─────▶ │         mailbox          │
	  Submit ───────────────▶ │      (buffered chan)     │
	  Status ───────────────▶ │                          │
	  DeliverVoteResult ────▶ │                          │
	  DeliverAppendResult ──▶ └────────────┬─────────────┘
	                                       │
	  ┌──────────┐                         ▼
	  │ tickLoop │ ── tickMsg ──▶ ┌──────────────────┐
	  └──────────┘                │       run        │
	                              │  (owns all state)│
	  ┌───────────┐               │  term, log, role │
	  │ applyLoop │ ◀─ applyCh ── │  commit, peers   │
	  │ (executes │               └────────┬─────────┘
	  │ commands) │ ── applyDoneMsg ───────┘
	  └───────────┘

Three goroutines per node:

 1. run: the actor. Receives every message, mutates state, decides when to
    vote, replicate, commit, and step down.
 2. tickLoop: a 10ms metronome. Each tick the actor checks its timers: a
    leader past its heartbeat interval broadcasts, a follower past its
    election timeout stands for election.
 3. applyLoop: executes committed commands against the state machine. At most
    one command is in flight at a time, so applies stay ordered and the actor
    never blocks handing one over.

The transport is deliberately outside this picture. Sending to a peer is fire
and forget from the actor's point of view; the transport runs its own retry
policy and eventually calls DeliverVoteResult or DeliverAppendResult with the
peer's answer, or with nil when the peer could not be reached.

# Roles

A node is always in exactly one of three roles:

	                 election timeout
	  ┌──────────┐  without leader     ┌───────────┐
	  │ follower │ ──────────────────▶ │ candidate │
	  └──────────┘                     └─────┬─────┘
	       ▲  ▲                              │
	       │  │        timeout: new election │ │ majority of votes
	       │  └──────────────────────────────┘ │ (or liveness shortcut)
	       │                                   ▼
	       │      higher term seen        ┌────────┐
	       └───────────────────────────── │ leader │
	                                      └────────┘

Followers are passive: they answer vote requests, accept entries from the
leader, and reset their election timer on every valid contact. A follower
that hears nothing for its election timeout (drawn once per node, uniformly
between the configured minimum and maximum, 2s to 4s by default) increments
its term, votes for itself, and asks every reachable peer for a vote.

A candidate becomes leader on a strict majority of the full cluster, counting
its own vote. Votes are only counted when the response carries the current
term; grants from an earlier, abandoned election are ignored.

A leader sends heartbeats every 500ms. Heartbeats double as replication: the
same RPC carries any entries the peer is missing, tracked per peer through
nextIndex and matchIndex in classic Raft fashion. Any RPC or response that
carries a higher term immediately demotes the node to follower.

# Election Safety

A node grants at most one vote per term, and only to candidates whose log is
at least as up to date as its own (higher last term wins; equal last terms
compare length). The vote is cleared only when the term increases, never on
heartbeats within the current term, so two candidates can never both collect
a majority for the same term.

# Write Path

Submit is the only way to change replicated state:

	result, err := node.Submit(ctx, command)

On the leader, the command is appended to the local log and broadcast to all
reachable peers. Once a majority of the cluster holds the entry (counting the
leader) and the entry belongs to the current term, it commits; the apply
goroutine executes it and the submitter receives the state machine's result.
In a singleton cluster the leader alone is the majority, so entries commit as
soon as they are appended.

On any other node, Submit fails fast with NotLeaderError carrying the last
known leader ID so callers can redirect. If leadership is lost while a submit
is waiting for its commit, the submit fails with NotLeaderError rather than
hanging; if the node is stopped it fails with ErrNodeStopped.

Commit advancement only counts entries from the leader's current term.
Entries inherited from earlier terms commit implicitly when a current-term
entry above them reaches a majority.

# Peer Failure Handling

The node keeps a cooldown deadline per unreachable peer. When the transport
exhausts its retries for a send, the peer is marked down for 30 seconds and
skipped by every subsequent send until the deadline passes or a send succeeds.
That keeps a dead peer from eating a retry budget on every heartbeat.

A cluster can lose so many peers that no majority is reachable. With the
liveness shortcut enabled (the default) a candidate that finds every peer
marked down takes leadership anyway, keeping a surviving node writable. That
trades consistency for availability: if the "down" peers are actually alive
behind a partition, two leaders can coexist until the partition heals and the
higher term wins. Disable the shortcut when partition safety matters more
than single-survivor uptime.

# Usage

	sm := statemachine.New(store)
	node := consensus.NewNode(consensus.DefaultConfig("server1", peers), sm, transport, broker)
	node.Start()
	defer node.Stop()

	result, err := node.Submit(ctx, command)
	if err != nil {
		var notLeader *consensus.NotLeaderError
		if errors.As(err, &notLeader) {
			// redirect to notLeader.LeaderID
		}
	}

# Integration Points

  - pkg/statemachine: the Applier executed for every committed entry
  - pkg/transport: delivers RPCs to peers and feeds results back
  - pkg/api: exposes HandleVoteRequest and HandleHeartbeat over gRPC
  - pkg/gateway: routes writes through Submit and reads through Status
  - pkg/events: role changes, elections, commits, and peer state transitions
    are published for observability
  - pkg/metrics: term, commit index, log length, and peer health gauges

# See Also

  - pkg/statemachine: deterministic command execution
  - pkg/transport: per-peer delivery with retries and backoff
  - pkg/gateway: leader-aware request routing
*/
package consensus
