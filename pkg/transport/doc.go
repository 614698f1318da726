/*
Package transport carries consensus RPCs between Scribe servers over gRPC.

The consensus node treats sends as fire and forget; this package supplies the
asynchrony. Every send is queued for the target peer, delivered with retries,
and its outcome is pushed back into the node through the ResultSink.

# Architecture

One worker goroutine per peer, each draining its own bounded queue:

	  node (actor goroutine)
	     │  SendVoteRequest / SendHeartbeat
	     ▼
	┌─────────────────────────────────────────────┐
	│                GRPCTransport                │
	│                                             │
	│   peer A queue ──▶ worker A ──▶ conn A      │
	│   peer B queue ──▶ worker B ──▶ conn B      │
	│   peer C queue ──▶ worker C ──▶ conn C      │
	└──────────────────────┬──────────────────────┘
	                       │  DeliverVoteResult / DeliverAppendResult
	                       ▼
	                 node (mailbox)

A peer that is slow or dead only stalls its own worker. Queues are bounded;
when one fills, new sends are dropped, which is safe because heartbeats are
periodic and elections re-run on timeout.

# Delivery Policy

Each send gets 5 attempts spaced 1 second apart, 5 seconds per call. A send
that survives an attempt failure counts a retry in metrics; a send that
exhausts all attempts counts a failure and is delivered to the sink with a
nil response. The consensus node reacts to nil by putting the peer on a
cooldown, so the transport itself stays stateless about peer health.

Connections use insecure transport credentials, are established on first use,
and are reused for the life of the transport.

# Usage

	tr := transport.New(peers, transport.Options{})
	node := consensus.NewNode(cfg, applier, tr, broker)
	tr.Start(node)
	node.Start()

Start must run before the node starts sending. Stop discards queued sends
and interrupts any backoff in progress.

# See Also

  - pkg/consensus: the mailbox the results feed into
  - pkg/api: the server half of these RPCs
*/
package transport
