/*
Package log provides structured logging for Scribe using zerolog.

The log package wraps the zerolog library to provide JSON-structured logging
with component-specific loggers, configurable log levels, and helper functions
for common logging patterns. All logs include timestamps and support filtering
by severity level for production debugging.

# Architecture

Scribe's logging system provides structured JSON logging with minimal
overhead:

	┌──────────────────── LOGGING SYSTEM ──────────────────────┐
	│                                                            │
	│  ┌────────────────────────────────────────────┐          │
	│  │            Global Logger                    │          │
	│  │  - Zerolog instance                         │          │
	│  │  - Initialized via log.Init()               │          │
	│  │  - Thread-safe for concurrent use           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │           Configuration                     │          │
	│  │  - Level: debug/info/warn/error             │          │
	│  │  - Format: JSON or console (human)          │          │
	│  │  - Output: stdout, file, or custom writer   │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │         Component Loggers                   │          │
	│  │  - WithComponent("consensus")               │          │
	│  │  - WithServerID("node1")                    │          │
	│  │  - WithPeer("node2:50051")                  │          │
	│  │  - WithDocumentID("550e8400-...")           │          │
	│  └──────────────────┬─────────────────────────┘          │
	│                     │                                      │
	│  ┌──────────────────▼─────────────────────────┐          │
	│  │            Log Output                       │          │
	│  │                                              │          │
	│  │  JSON Format:                               │          │
	│  │  {                                           │          │
	│  │    "level": "info",                         │          │
	│  │    "component": "consensus",                │          │
	│  │    "time": "2026-08-25T10:30:00Z",         │          │
	│  │    "message": "became leader"               │          │
	│  │  }                                           │          │
	│  │                                              │          │
	│  │  Console Format:                            │          │
	│  │  10:30AM INF became leader component=consensus │       │
	│  └────────────────────────────────────────────┘           │
	└────────────────────────────────────────────────────────┘

# Core Components

Global Logger:
  - Package-level zerolog.Logger instance
  - Initialized once via log.Init()
  - Accessible from all Scribe packages
  - Thread-safe concurrent writes

Log Levels:
  - Debug: Detailed debugging information
  - Info: General informational messages
  - Warn: Warning messages (potential issues)
  - Error: Error messages (operation failed)
  - Fatal: Critical errors (process exits)

Configuration:
  - Level: Filter messages below threshold
  - JSONOutput: JSON vs human-readable console
  - Output: io.Writer for log destination (stdout, file)

Context Loggers:
  - WithComponent: Add component name to all logs
  - WithServerID: Add replica ID context
  - WithPeer: Add peer address context
  - WithDocumentID: Add document ID context

# Log Levels

Debug Level:
  - Purpose: Detailed debugging information
  - Usage: Development and troubleshooting
  - Performance: Verbose, may impact production
  - Example: "granted vote candidate=node2 term=3"

Info Level:
  - Purpose: General informational messages
  - Usage: Default production level
  - Performance: Moderate volume
  - Example: "became leader term=3"

Warn Level:
  - Purpose: Potential issues or unexpected conditions
  - Usage: Situations that may require attention
  - Performance: Low volume
  - Example: "peer marked down peer=node2:50051 cooldown=30s"

Error Level:
  - Purpose: Operation failures that need investigation
  - Usage: Failed operations, exceptions
  - Performance: Low volume
  - Example: "failed to apply command: store write failed"

Fatal Level:
  - Purpose: Critical errors causing process termination
  - Usage: Unrecoverable errors only
  - Behavior: Logs message and exits process (os.Exit(1))

# Usage

Initializing the Logger:

	import "github.com/cuemby/scribe/pkg/log"

	// JSON output (production)
	log.Init(log.Config{
		Level:      log.InfoLevel,
		JSONOutput: true,
		Output:     os.Stdout,
	})

	// Console output (development)
	log.Init(log.Config{
		Level:      log.DebugLevel,
		JSONOutput: false,
		Output:     os.Stdout,
	})

Simple Logging:

	log.Info("replica started")
	log.Debug("checking peer state")
	log.Warn("election timeout approaching")
	log.Error("failed to open store")
	log.Fatal("cannot start without a server ID") // Exits process

Structured Logging:

	log.Logger.Info().
		Str("document_id", docID).
		Str("username", username).
		Msg("document created")

	log.Logger.Error().
		Err(err).
		Str("peer", peer).
		Msg("heartbeat undeliverable")

Component Loggers:

	// Create component-specific logger
	consensusLog := log.WithComponent("consensus")
	consensusLog.Info().Msg("starting election")
	consensusLog.Debug().Int64("term", term).Msg("granted vote")

	// Multiple context fields
	nodeLog := log.WithComponent("consensus").
		With().Str("server_id", "node1").Logger()
	nodeLog.Info().Msg("node started")

Context Logger Helpers:

	// Replica-specific logs
	serverLog := log.WithServerID("node1")
	serverLog.Info().Msg("store opened")

	// Peer-specific logs
	peerLog := log.WithPeer("node2:50051")
	peerLog.Warn().Msg("send queue full")

	// Document-specific logs
	docLog := log.WithDocumentID("550e8400-e29b-41d4-a716-446655440000")
	docLog.Info().Msg("content merged")

# Integration Points

This package integrates with:

  - pkg/consensus: Logs role changes, elections, and replication
  - pkg/transport: Logs peer delivery retries and failures
  - pkg/gateway: Logs client operations and redirects
  - pkg/api: Logs server lifecycle and RPC errors
  - pkg/metrics: Logs collector lifecycle
  - cmd/scribe: Initializes the logger from flags and environment

# Log Output Examples

JSON Format (Production):

	{"level":"info","component":"consensus","server_id":"node1","time":"2026-08-25T10:30:00Z","message":"became leader"}
	{"level":"info","component":"gateway","document_id":"550e8400","time":"2026-08-25T10:30:01Z","message":"document created"}
	{"level":"warn","component":"transport","peer":"node2:50051","time":"2026-08-25T10:30:02Z","message":"heartbeat undeliverable"}

Console Format (Development):

	10:30:00 INF became leader component=consensus server_id=node1
	10:30:01 INF document created component=gateway document_id=550e8400
	10:30:02 WRN heartbeat undeliverable component=transport peer=node2:50051

# Design Patterns

Global Logger Pattern:
  - Single package-level Logger instance
  - Initialized once at application start
  - Accessible from all packages without passing
  - Simplifies logging in deeply nested calls

Context Logger Pattern:
  - Create child loggers with context fields
  - Store them on long-lived components at construction
  - Automatically includes context in all logs
  - Avoids repetitive field specification

Structured Logging Pattern:
  - Use typed fields (.Str, .Int64, .Err)
  - Enables log aggregation and querying
  - Better than string concatenation
  - Parseable by log analysis tools

# Performance Characteristics

Logging Overhead:
  - Disabled level: near zero (level check short-circuits)
  - JSON encode: ~500ns per log line
  - Console format: ~1µs per log line
  - String field: +50ns per field

Log Level Impact:
  - Debug: High volume (per-entry replication detail), development only
  - Info: Moderate volume, suitable for production
  - Warn/Error: Low volume, minimal impact
  - Recommendation: Info level in production

# Troubleshooting

Common Issues:

No Log Output:
  - Symptom: No logs appearing
  - Check: log.Init() called before logging
  - Check: Log level set appropriately (Debug < Info < Warn < Error)
  - Solution: Initialize logger in main() before any logging

Excessive Log Volume:
  - Symptom: Disk space fills quickly
  - Cause: Debug level in production (heartbeats log per tick at debug)
  - Check: Log level configuration
  - Solution: Use Info level in production, rotate logs

Missing Context Fields:
  - Symptom: Logs missing component or ID fields
  - Cause: Using global Logger instead of context logger
  - Solution: Use WithComponent() or create child loggers

# Security

Log Content:
  - Never log passwords; user commands carry credentials, so log usernames
    and document IDs only
  - Review logs before sharing externally

Log Injection:
  - Use structured logging (prevents injection)
  - Never concatenate user input into log messages
  - Use typed fields (.Str, .Int64) for user data

# Best Practices

Do:
  - Use Info level for production
  - Use structured fields for queryable data
  - Create component-specific loggers
  - Log errors with .Err() for consistent error fields
  - Include context (server ID, peer, document ID)

Don't:
  - Log sensitive data (passwords, credentials)
  - Use Debug level in production
  - Log in tight loops (the consensus tick path logs at debug only)
  - Concatenate strings (use .Str, .Int64)

# See Also

  - Zerolog documentation: https://github.com/rs/zerolog
  - Structured logging: https://www.thoughtworks.com/radar/techniques/structured-logging
  - 12-Factor App Logs: https://12factor.net/logs
*/
package log
