package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/cuemby/scribe/pkg/metrics"
	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/types"
)

// HealthServer provides HTTP health check endpoints
type HealthServer struct {
	node  Consensus
	store storage.Store
	mux   *http.ServeMux
}

// NewHealthServer creates a new health check HTTP server
func NewHealthServer(node Consensus, store storage.Store) *HealthServer {
	mux := http.NewServeMux()
	hs := &HealthServer{
		node:  node,
		store: store,
		mux:   mux,
	}

	// Register endpoints
	mux.HandleFunc("/health", hs.healthHandler)
	mux.HandleFunc("/ready", hs.readyHandler)
	mux.HandleFunc("/live", metrics.LivenessHandler())
	mux.Handle("/metrics", metrics.Handler())

	return hs
}

// Start starts the health check HTTP server
func (hs *HealthServer) Start(addr string) error {
	server := &http.Server{
		Addr:         addr,
		Handler:      hs.mux,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return server.ListenAndServe()
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version,omitempty"`
}

// ReadyResponse represents the readiness check response
type ReadyResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
	Message   string            `json:"message,omitempty"`
}

// healthHandler implements the /health endpoint
// This is a simple liveness check - returns 200 if the process is alive
func (hs *HealthServer) healthHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   metrics.Version(),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(response)
}

// readyHandler implements the /ready endpoint
// This checks if the service is ready to accept traffic
func (hs *HealthServer) readyHandler(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}

	checks := make(map[string]string)
	ready := true
	var message string

	// Check 1: Consensus
	if hs.node != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		st, err := hs.node.Status(ctx)
		cancel()

		switch {
		case err != nil:
			checks["consensus"] = fmt.Sprintf("error: %v", err)
			ready = false
			message = "Consensus node not responding"
		case st.State == types.StateLeader:
			checks["consensus"] = "leader"
		case st.LeaderID != "":
			checks["consensus"] = fmt.Sprintf("follower (leader: %s)", st.LeaderID)
		default:
			checks["consensus"] = "no leader elected"
			ready = false
			message = "Waiting for leader election"
		}
	} else {
		checks["consensus"] = "not initialized"
		ready = false
		message = "Consensus node not initialized"
	}

	// Check 2: Storage (attempt a simple read to verify the store)
	if hs.store != nil {
		_, err := hs.store.ListUsers()
		if err != nil {
			checks["storage"] = fmt.Sprintf("error: %v", err)
			ready = false
			if message == "" {
				message = "Storage not accessible"
			}
		} else {
			checks["storage"] = "ok"
		}
	} else {
		checks["storage"] = "not initialized"
		ready = false
	}

	// Prepare response
	status := "ready"
	statusCode := http.StatusOK

	if !ready {
		status = "not ready"
		statusCode = http.StatusServiceUnavailable
	}

	response := ReadyResponse{
		Status:    status,
		Timestamp: time.Now(),
		Checks:    checks,
		Message:   message,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(response)
}

// GetHandler returns the HTTP handler for embedding in other servers
func (hs *HealthServer) GetHandler() http.Handler {
	return hs.mux
}
