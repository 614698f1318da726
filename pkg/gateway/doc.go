/*
Package gateway routes client operations onto a Scribe replica.

Every operation a client can perform lands here, and the gateway decides
which of two paths it takes:

	            ┌─────────────────────────────────────┐
	            │               Gateway               │
	 client ──▶ │                                     │
	            │   reads            writes           │
	            │     │                 │             │
	            │     ▼                 ▼             │
	            │  local store    encode command      │
	            │  (this replica)  mint id/timestamp  │
	            │                       │             │
	            └───────────────────────┼─────────────┘
	                                    ▼
	                            consensus.Submit
	                        (leader only, replicated)

# Reads

AuthenticateUser, GetDocument, GetUserDocuments, ServerStatus, and
ClusterStatus answer from the local replica without touching the log. Any
server can serve them; a follower may briefly trail the leader by entries it
has not applied yet.

# Writes

Everything that mutates state is encoded as a typed command and submitted to
the consensus node. The reply is the state machine's own result from applying
the committed entry, so the client sees exactly what every replica stored.

Two things are pinned at submission time, here, rather than at apply time:
new document ids (uuid.New) and mutation timestamps (time.Now().UTC()). They
travel inside the command bytes, which keeps the state machine deterministic
across replicas.

Submitting to a non-leader does not forward the write. The client gets a
redirect message naming the leader when one is known:

	Not the leader. Current leader: server2
	No leader available. Try again later.

# See Also

  - pkg/consensus: Submit semantics and leadership
  - pkg/statemachine: the commands and their result messages
  - pkg/api: the gRPC surface in front of this package
*/
package gateway
