/*
Package events provides an in-memory event broker for Scribe's consensus
lifecycle notifications.

The events package implements a lightweight event bus that broadcasts what a
replica's consensus node is doing: role changes, elections, term movement,
log commits and applies, and peer reachability. It decouples the consensus
core from everything that merely observes it, so monitoring and tests can
watch a node without the node knowing who is listening.

# Architecture

Scribe's event system provides non-blocking pub/sub messaging with buffered
channels:

	┌──────────────────── EVENT BROKER ────────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │              Event Broker                   │          │
	│  │  - In-memory message bus                    │          │
	│  │  - Topic-agnostic (all events broadcast)    │          │
	│  │  - Non-blocking publish                     │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │          Event Distribution                 │          │
	│  │                                              │          │
	│  │  Consensus Node → Event Channel (buffer:    │          │
	│  │       ↓            100)                      │          │
	│  │  Broadcast Loop                              │          │
	│  │       ↓                                      │          │
	│  │  Subscriber Channels (buffer: 50 each)      │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Event Types                       │          │
	│  │                                              │          │
	│  │  Role Events:                               │          │
	│  │    - role.changed                           │          │
	│  │    - leader.elected                         │          │
	│  │    - term.changed                           │          │
	│  │                                              │          │
	│  │  Log Events:                                │          │
	│  │    - entry.committed                        │          │
	│  │    - entry.applied                          │          │
	│  │                                              │          │
	│  │  Peer Events:                               │          │
	│  │    - peer.down                              │          │
	│  │    - peer.up                                │          │
	│  └────────────────────────────────────────────┘           │
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Subscribers                      │          │
	│  │                                              │          │
	│  │  Tests: Await elections and applies         │          │
	│  │  Operators: Tail lifecycle from a sidecar   │          │
	│  │  Metrics: Gauges track the same transitions │          │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Event Broker:
  - Central message bus for event distribution
  - Manages subscriber lifecycle
  - Non-blocking publish (buffered channel)
  - Graceful shutdown via stop channel

Event:
  - Type: Event type (leader.elected, peer.down, etc.)
  - Timestamp: When the event occurred (filled on publish if zero)
  - ServerID: Replica that emitted the event
  - Message: Human-readable description
  - Metadata: Key-value pairs for additional context

Subscriber:
  - Channel that receives Event pointers
  - Buffered (50 events) to handle bursts
  - Created via broker.Subscribe()
  - Closed via broker.Unsubscribe()

# Event Flow

Publish Flow:
 1. The consensus node calls broker.Publish(event)
 2. Event added to main event channel (non-blocking)
 3. Broadcast loop receives event
 4. Event sent to all subscriber channels
 5. Subscribers receive event asynchronously
 6. Full subscriber buffers skip (no blocking)

Subscribe Flow:
 1. Subscriber calls broker.Subscribe()
 2. New buffered channel created
 3. Channel registered in subscriber map
 4. Subscriber receives events via channel
 5. Subscriber processes events in its own goroutine

Unsubscribe Flow:
 1. Subscriber calls broker.Unsubscribe(channel)
 2. Channel removed from subscriber map
 3. Channel closed

# Usage

Creating and Starting a Broker:

	import "github.com/cuemby/scribe/pkg/events"

	broker := events.NewBroker()
	broker.Start()
	defer broker.Stop()

The broker is handed to consensus.NewNode, which publishes into it for the
life of the node. A nil broker is also accepted there; publishing is then a
no-op.

Subscribing to Events:

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	go func() {
		for event := range sub {
			fmt.Printf("Event: %s - %v\n", event.Type, event.Metadata)
		}
	}()

Waiting for an Election (test idiom):

	sub := broker.Subscribe()
	defer broker.Unsubscribe(sub)

	node.Start()
	for event := range sub {
		if event.Type == events.EventLeaderElected {
			break
		}
	}

Filtering Events by Type:

	go func() {
		for event := range sub {
			switch event.Type {
			case events.EventLeaderElected:
				handleNewLeader(event)
			case events.EventPeerDown:
				handlePeerDown(event)
			default:
				// Ignore other events
			}
		}
	}()

# Integration Points

This package integrates with:

  - pkg/consensus: Publishes every lifecycle transition
  - cmd/scribe: Wires one broker per replica at startup
  - test/integration: Awaits elections without polling

# Event Types Catalog

Role Events:

EventRoleChanged:
  - Published when: The node moves between follower, candidate, and leader
  - Metadata: role, term
  - Every transition fires exactly one event

EventLeaderElected:
  - Published when: This node wins an election
  - Metadata: term
  - Followers do not fire this when they learn of a leader via heartbeat;
    watch EventRoleChanged on the winner instead

EventTermChanged:
  - Published when: The current term increases
  - Metadata: term

Log Events:

EventEntryCommitted:
  - Published when: The commit index advances
  - Metadata: index (the new commit index; intermediate indices are
    covered by the same event)

EventEntryApplied:
  - Published when: The state machine finished one entry
  - Metadata: index
  - Fires once per entry, in log order

Peer Events:

EventPeerDown:
  - Published when: A peer exhausts the transport's retry budget and is
    circuit-broken
  - Metadata: peer

EventPeerUp:
  - Published when: A previously down peer answers again
  - Metadata: peer

# Design Patterns

Non-Blocking Publish:
  - Publish sends to a buffered channel
  - Returns immediately (no waiting)
  - Events may be dropped if the buffer is full
  - Trade-off: the consensus actor never stalls on observers

Fan-Out:
  - Single event broadcast to all subscribers
  - Each subscriber gets its own channel
  - Independent processing rates
  - Full buffers skip to prevent blocking

Fire-and-Forget:
  - No acknowledgment from subscribers
  - No retry on delivery failure
  - Consensus correctness never depends on event delivery; anything that
    must be accurate (metrics gauges, status RPCs) reads the node directly

# Limitations

Current Limitations:
  - In-memory only (no persistence)
  - No event replay or history
  - No guaranteed delivery (best effort)
  - No topic-based filtering (all events broadcast)

Workarounds:
  - Persistence: Subscribe and write to a log or store
  - Filtering: Switch on event.Type at the subscriber

# Best Practices

Do:
  - Always defer broker.Unsubscribe(sub)
  - Process events asynchronously in a goroutine
  - Filter events by type at the subscriber
  - Start the broker before starting the node that publishes into it

Don't:
  - Block in the subscriber event loop
  - Rely on event delivery for correctness
  - Forget to unsubscribe (leaks the channel)

# See Also

  - pkg/consensus for the transitions behind each event
  - pkg/metrics for the gauge view of the same lifecycle
  - Pub/sub pattern: https://en.wikipedia.org/wiki/Publish%E2%80%93subscribe_pattern
*/
package events
