package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Consensus metrics
	IsLeader = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_is_leader",
			Help: "Whether this node is the cluster leader (1 = leader, 0 = not)",
		},
	)

	CurrentTerm = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_current_term",
			Help: "Current election term of this node",
		},
	)

	CommitIndex = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_commit_index",
			Help: "Highest log index known to be committed",
		},
	)

	LastApplied = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_last_applied",
			Help: "Highest log index applied to the state machine",
		},
	)

	LogLength = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_log_length",
			Help: "Number of entries in the replicated log",
		},
	)

	ElectionsStarted = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scribe_elections_started_total",
			Help: "Total number of elections this node has started",
		},
	)

	EntriesApplied = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scribe_entries_applied_total",
			Help: "Total number of log entries applied to the state machine",
		},
	)

	// Peer metrics
	PeersTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_peers_total",
			Help: "Number of peers this node replicates to",
		},
	)

	PeersDown = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_peers_down",
			Help: "Number of peers currently marked down by the circuit breaker",
		},
	)

	PeerSendFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_peer_send_failures_total",
			Help: "Total number of peer RPCs that exhausted their retries",
		},
		[]string{"peer"},
	)

	PeerSendRetries = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_peer_send_retries_total",
			Help: "Total number of peer RPC retry attempts",
		},
		[]string{"peer"},
	)

	// API metrics
	APIRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scribe_api_requests_total",
			Help: "Total number of API requests by method and status",
		},
		[]string{"method", "status"},
	)

	APIRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "scribe_api_request_duration_seconds",
			Help:    "API request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method"},
	)

	// Document metrics
	UsersTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_users_total",
			Help: "Total number of registered users",
		},
	)

	DocumentsTotal = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "scribe_documents_total",
			Help: "Total number of documents",
		},
	)

	MergesTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scribe_document_merges_total",
			Help: "Total number of successful three-way content merges",
		},
	)

	MergeFallbacks = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "scribe_document_merge_fallbacks_total",
			Help: "Total number of merges that fell back to last-writer-wins",
		},
	)
)

func init() {
	// Register all metrics
	prometheus.MustRegister(IsLeader)
	prometheus.MustRegister(CurrentTerm)
	prometheus.MustRegister(CommitIndex)
	prometheus.MustRegister(LastApplied)
	prometheus.MustRegister(LogLength)
	prometheus.MustRegister(ElectionsStarted)
	prometheus.MustRegister(EntriesApplied)
	prometheus.MustRegister(PeersTotal)
	prometheus.MustRegister(PeersDown)
	prometheus.MustRegister(PeerSendFailures)
	prometheus.MustRegister(PeerSendRetries)
	prometheus.MustRegister(APIRequestsTotal)
	prometheus.MustRegister(APIRequestDuration)
	prometheus.MustRegister(UsersTotal)
	prometheus.MustRegister(DocumentsTotal)
	prometheus.MustRegister(MergesTotal)
	prometheus.MustRegister(MergeFallbacks)
}

// Handler returns the Prometheus HTTP handler
func Handler() http.Handler {
	return promhttp.Handler()
}
