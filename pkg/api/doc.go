/*
Package api implements the Scribe gRPC server and its HTTP health endpoints.

Every replica runs one API server. It hosts both gRPC services defined in
api/proto/scribe.proto on a single listener: DistributedService, which peers
call to run elections and replicate the log, and ScribeAPI, which clients
call to work with users and documents.

# Architecture

	┌─────────────────────── CLIENT (CLI) ───────────────────────┐
	│                                                             │
	│   ScribeAPI: RegisterUser, CreateDocument, GetDocument ...  │
	└──────────────────────────────┬──────────────────────────────┘
	                               │ gRPC (port 50051)
	┌──────────────────────────────▼──── REPLICA ─────────────────┐
	│                                                              │
	│  ┌────────────────────────────────────────────────┐         │
	│  │              gRPC Server (pkg/api)             │         │
	│  │   ScribeAPI          DistributedService        │         │
	│  │      │                 │                       │         │
	│  └──────┼─────────────────┼───────────────────────┘         │
	│         ▼                 ▼                                  │
	│   pkg/gateway        pkg/consensus ◄──── peer replicas       │
	│   (reads: store,     (elections, log                         │
	│    writes: submit)    replication, apply)                    │
	└──────────────────────────────────────────────────────────────┘

ScribeAPI handlers delegate to the gateway, which serves reads from the
local store and turns writes into consensus commands. DistributedService
handlers feed directly into the consensus node's mailbox.

# gRPC Methods

DistributedService (replica to replica):
  - RequestVote: Candidate solicits a vote for a term
  - SendHeartbeat: Leader asserts authority and ships log entries
  - ReplicateCommand: Hands a pre-encoded command to the leader

ScribeAPI (client to replica):
  - RegisterUser / AuthenticateUser: Account management
  - CreateDocument / GetDocument / ListDocuments: Document basics
  - UpdateDocumentTitle / UpdateDocumentContent: Edits, with optional
    three-way merge when the client supplies its base content
  - DeleteDocument: Removal
  - AddUserToDocument / RemoveUserFromDocument: Sharing
  - ServerStatus / ClusterStatus: Consensus introspection

# Usage

	store, err := storage.New(types.BackendFile, "data/n1.json")
	if err != nil {
		log.Fatal(err)
	}
	sm := statemachine.New(store)
	tr := transport.New(peers, transport.Options{})
	node := consensus.NewNode(consensus.DefaultConfig("n1", peers), sm, tr, broker)
	tr.Start(node)
	node.Start()

	srv := api.NewServer(node, gateway.New(node, store))
	if err := srv.Start(":50051"); err != nil {
		log.Fatal(err)
	}

# Leader Redirection

Writes must run on the leader. The two services surface that differently:

ScribeAPI returns an application-level failure so a plain client can show
the message as is:

	{Success: false, Message: "Not the leader. Current leader: n1"}

ReplicateCommand is called by software, so it fails the RPC with gRPC
status FailedPrecondition carrying the same message. Commands are never
forwarded automatically; the caller owns the redirect.

Reads (authentication, document fetches, listings, status) are served from
the local replica and may trail the leader briefly.

# Metrics Instrumentation

A unary interceptor times every RPC on both services:

	scribe_api_requests_total{method, status}      request count
	scribe_api_request_duration_seconds{method}    request latency

The status label is the gRPC code string ("OK", "FailedPrecondition", ...).
Application-level failures such as a rejected duplicate username still count
as "OK"; the command was decided and applied, the outcome was a refusal.

# Health Endpoints

HealthServer serves plain HTTP for orchestration probes, separate from the
gRPC listener:

  - /health: Liveness. 200 whenever the process runs.
  - /ready: Readiness. 200 only when the replica knows a leader and the
    store answers reads; 503 otherwise, with per-check detail in the body.
  - /live: Bare liveness with uptime, for probes that want no detail.
  - /metrics: Prometheus exposition.

# Error Handling

Handlers keep application outcomes and transport failures apart. Anything
the state machine or gateway decided (bad password, missing document, no
access) travels as {Success, Message} in the response body. Only genuine
failures fail the RPC: Unavailable when the node is stopped, Canceled or
DeadlineExceeded from the caller's context, FailedPrecondition for
ReplicateCommand on a non-leader, Internal for the rest.

# Integration Points

This package integrates with:

  - pkg/consensus: Vote and heartbeat handling, command submission
  - pkg/gateway: Client operation semantics
  - pkg/storage: Readiness probe reads
  - pkg/metrics: RPC instrumentation and the /metrics endpoint
  - api/proto: Generated service stubs and messages

# See Also

  - api/proto/scribe.proto for the wire contract
  - pkg/gateway for read/write semantics
  - pkg/consensus for replication behavior
  - pkg/client for the Go client wrapper
*/
package api
