/*
Package statemachine defines the replicated commands of Scribe and applies
them to a local store.

Commands are the only way user and document state changes. Every replica
feeds the same committed command bytes, in the same order, through Apply;
because application is deterministic, every replica's store converges to
the same contents.

# Command Flow

	┌──────────────────── COMMAND LIFECYCLE ────────────────────┐
	│                                                            │
	│  ┌──────────────────────────────────────────┐             │
	│  │            Gateway (leader)               │             │
	│  │  - builds a typed Command                 │             │
	│  │  - mints document id + timestamp          │             │
	│  │  - Encode() → canonical JSON bytes        │             │
	│  └──────────────────┬───────────────────────┘             │
	│                     │                                      │
	│  ┌──────────────────▼───────────────────────┐             │
	│  │            Consensus log                  │             │
	│  │  - bytes replicate to every node          │             │
	│  │  - committed entries apply in order       │             │
	│  └──────────────────┬───────────────────────┘             │
	│                     │                                      │
	│  ┌──────────────────▼───────────────────────┐             │
	│  │            StateMachine.Apply             │             │
	│  │  - Decode() → typed Command               │             │
	│  │  - validate, mutate store                 │             │
	│  │  - Result{success, message, ...}          │             │
	│  └──────────────────────────────────────────┘             │
	└────────────────────────────────────────────────────────────┘

# Wire Format

Commands serialize as a two-field envelope:

	{"operation": "create_document", "args": {...}}

Encoding is canonical: struct fields marshal in declaration order with no
insignificant whitespace, so encoding the same command twice yields
byte-identical output. That property is what makes log entries comparable
and replay deterministic.

# Determinism

Nothing non-deterministic runs at apply time. Document ids (UUIDs) and
mutation timestamps are minted by the submitting node and travel inside the
command's args; a replica applying the entry a week later produces the same
bytes on disk as one applying it immediately.

# Commands

	register_user               create an account
	create_document             empty document owned by the creator
	update_document_title       rename (requires access)
	update_document_content     overwrite, or three-way merge when
	                            base_content is present
	delete_document             remove document and user references
	add_user_to_document        grant access (sharer must have access)
	remove_user_from_document   revoke access

Authentication is deliberately absent: checking a password mutates nothing,
so the gateway answers it from the local store without consuming a log slot.

# Results

Apply returns a Result with a fixed, user-facing message string per outcome
("User registered successfully.", "Document not found.", ...). Content
updates additionally report the stored content, which differs from the
submitted content when a merge ran. Store I/O failures map to the
operation's "Failed to ..." message; the surrounding consensus layer still
advances past the entry, so a sick disk on one replica never wedges the
cluster.

# Concurrency

A StateMachine instance is not self-synchronizing. The consensus node calls
Apply from a single goroutine (its apply loop), which is the only writer to
the underlying store during normal operation.
*/
package statemachine
