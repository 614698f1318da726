/*
Package metrics provides Prometheus metrics collection and exposition for Scribe.

The metrics package defines and registers every Scribe metric using the
Prometheus client library, giving operators visibility into consensus
progress, replication health, API traffic, and the document corpus. Metrics
are exposed over HTTP for scraping, alongside health and readiness endpoints
used by process supervisors and load balancers.

# Architecture

	┌──────────────────── METRICS SYSTEM ────────────────────────┐
	│                                                             │
	│  ┌────────────────────────────────────────────┐             │
	│  │          Prometheus Registry               │             │
	│  │  - Global DefaultRegistry                  │             │
	│  │  - MustRegister at package init            │             │
	│  │  - Automatic Go runtime metrics            │             │
	│  └──────────────────┬─────────────────────────┘             │
	│                     │                                       │
	│  ┌──────────────────▼─────────────────────────┐             │
	│  │           Metric Categories                │             │
	│  │                                            │             │
	│  │  Consensus: role, term, commit, applied    │             │
	│  │  Peers: breaker state, send failures       │             │
	│  │  API: request count, duration              │             │
	│  │  Documents: user/doc counts, merges        │             │
	│  └──────────────────┬─────────────────────────┘             │
	│                     │                                       │
	│  ┌──────────────────▼─────────────────────────┐             │
	│  │            Update Paths                    │             │
	│  │                                            │             │
	│  │  Transitions: consensus node sets gauges   │             │
	│  │  on every role/term/index change           │             │
	│  │                                            │             │
	│  │  Collector: 15s ticker refreshes gauges    │             │
	│  │  from node status and store counts         │             │
	│  └──────────────────┬─────────────────────────┘             │
	│                     │                                       │
	│  ┌──────────────────▼─────────────────────────┐             │
	│  │          HTTP Endpoints                    │             │
	│  │  - /metrics  Prometheus text exposition    │             │
	│  │  - /health   component health (JSON)       │             │
	│  │  - /ready    readiness for traffic (JSON)  │             │
	│  │  - /live     process liveness (JSON)       │             │
	│  └────────────────────────────────────────────┘             │
	└─────────────────────────────────────────────────────────────┘

# Metric Catalog

Consensus:

scribe_is_leader:
  - Type: Gauge
  - Description: 1 when this node is the cluster leader, 0 otherwise

scribe_current_term:
  - Type: Gauge
  - Description: Current election term

scribe_commit_index / scribe_last_applied / scribe_log_length:
  - Type: Gauge
  - Description: Replicated log progress; applied trails commit, commit
    trails length

scribe_elections_started_total:
  - Type: Counter
  - Description: Elections this node has started

scribe_entries_applied_total:
  - Type: Counter
  - Description: Log entries handed to the state machine

Peers:

scribe_peers_total / scribe_peers_down:
  - Type: Gauge
  - Description: Configured peer count and how many are currently marked
    down by the circuit breaker

scribe_peer_send_failures_total{peer} / scribe_peer_send_retries_total{peer}:
  - Type: Counter
  - Description: RPC jobs that exhausted retries, and individual retry
    attempts, per peer address

API:

scribe_api_requests_total{method, status}:
  - Type: Counter
  - Description: gRPC requests by method name and status code

scribe_api_request_duration_seconds{method}:
  - Type: Histogram
  - Description: Request latency distribution per method

Documents:

scribe_users_total / scribe_documents_total:
  - Type: Gauge
  - Description: Store entity counts, refreshed by the collector

scribe_document_merges_total / scribe_document_merge_fallbacks_total:
  - Type: Counter
  - Description: Three-way merges applied, and merges that fell back to
    last-writer-wins because the texts diverged beyond the diff limit

# Health Endpoints

Components register themselves with the health checker as they come up:

	metrics.RegisterComponent("consensus", true, "")
	metrics.UpdateComponent("consensus", false, "no leader elected")

/health reports every registered component and returns 503 when any is
unhealthy. /ready checks the critical set (consensus, store, api) and
returns 503 until all three are registered and healthy, which keeps load
balancers from routing to a node that cannot serve yet. /live always
returns 200 while the process runs.

# Usage

Updating metrics:

	import "github.com/cuemby/scribe/pkg/metrics"

	metrics.CurrentTerm.Set(float64(term))
	metrics.ElectionsStarted.Inc()
	metrics.APIRequestsTotal.WithLabelValues("CreateDocument", "OK").Inc()

Timing an operation:

	timer := metrics.NewTimer()
	// ... handle the request ...
	timer.ObserveDurationVec(metrics.APIRequestDuration, "CreateDocument")

Running the collector and endpoint:

	collector := metrics.NewCollector(node, store)
	collector.Start()
	defer collector.Stop()

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.HandleFunc("/health", metrics.HealthHandler())
	mux.HandleFunc("/ready", metrics.ReadyHandler())
	mux.HandleFunc("/live", metrics.LivenessHandler())
	http.ListenAndServe(":9090", mux)

# Integration Points

This package integrates with:

  - pkg/consensus: Sets consensus gauges on every transition
  - pkg/transport: Counts retries and exhausted sends per peer
  - pkg/statemachine: Counts merges and merge fallbacks
  - pkg/api: Instruments request count and duration per method
  - cmd/scribe: Serves the endpoints and runs the collector

# Design Patterns

Package Init Registration:
  - All metrics registered in init() function
  - MustRegister panics on duplicate registration
  - Ensures metrics available before main()

Label Discipline:
  - Peer label is bounded by the configured peer list
  - Method label is bounded by the proto service surface
  - No document ids or usernames as labels

# See Also

  - Prometheus documentation: https://prometheus.io/docs/
  - Prometheus client library: https://github.com/prometheus/client_golang
  - Histogram best practices: https://prometheus.io/docs/practices/histograms/
*/
package metrics
