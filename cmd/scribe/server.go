package main

import (
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/cuemby/scribe/pkg/api"
	"github.com/cuemby/scribe/pkg/consensus"
	"github.com/cuemby/scribe/pkg/events"
	"github.com/cuemby/scribe/pkg/gateway"
	"github.com/cuemby/scribe/pkg/log"
	"github.com/cuemby/scribe/pkg/metrics"
	"github.com/cuemby/scribe/pkg/statemachine"
	"github.com/cuemby/scribe/pkg/storage"
	"github.com/cuemby/scribe/pkg/transport"
	"github.com/cuemby/scribe/pkg/types"
)

var serverCmd = &cobra.Command{
	Use:   "server",
	Short: "Run a Scribe replica",
	Long: `Run one replica of a Scribe cluster.

The replica serves clients and peers on the gRPC port and exposes
health and Prometheus endpoints on the metrics port. Configuration is
resolved from built-in defaults, then the --config YAML file, then
environment variables (SERVER_ID, GRPC_PORT, PEER_ADDRESSES, DB_PATH,
DB_BACKEND, METRICS_PORT, LIVENESS_SHORTCUT), then explicit flags.

Examples:
  # Single node
  scribe server --id node1

  # Three node cluster, first member
  scribe server --id node1 --grpc-port 50051 \
    --peers localhost:50052,localhost:50053`,
	RunE: runServer,
}

func init() {
	serverCmd.Flags().String("id", "", "Unique server ID (required)")
	serverCmd.Flags().Int("grpc-port", 50051, "Port for the gRPC API")
	serverCmd.Flags().String("peers", "", "Comma-separated peer addresses (host:port)")
	serverCmd.Flags().String("db-path", "", "Store path (default data/<id>.json or data/<id>.db)")
	serverCmd.Flags().String("db-backend", "file", "Store backend: file or bolt")
	serverCmd.Flags().Int("metrics-port", 9090, "Port for health and metrics endpoints (0 disables)")
	serverCmd.Flags().Bool("liveness-shortcut", true, "Allow leadership when every peer is unreachable")
	serverCmd.Flags().String("config", "", "YAML config file with the same keys")
	serverCmd.Flags().String("log-level", "info", "Log level: debug, info, warn, error")
	serverCmd.Flags().Bool("log-json", false, "Emit JSON logs instead of console output")
}

// serverConfig is the resolved configuration for one replica.
type serverConfig struct {
	ID               string   `yaml:"server_id"`
	GRPCPort         int      `yaml:"grpc_port"`
	Peers            []string `yaml:"peers"`
	DBPath           string   `yaml:"db_path"`
	DBBackend        string   `yaml:"db_backend"`
	MetricsPort      int      `yaml:"metrics_port"`
	LivenessShortcut *bool    `yaml:"liveness_shortcut"`
	LogLevel         string   `yaml:"log_level"`
	LogJSON          bool     `yaml:"log_json"`
}

// resolveServerConfig layers defaults, config file, environment, and flags,
// in that order of increasing precedence.
func resolveServerConfig(cmd *cobra.Command) (serverConfig, error) {
	cfg := serverConfig{
		GRPCPort:    50051,
		DBBackend:   string(types.BackendFile),
		MetricsPort: 9090,
		LogLevel:    "info",
	}
	shortcut := true

	if path, _ := cmd.Flags().GetString("config"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config file: %v", err)
		}
		// Absent keys leave the defaults untouched.
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config file: %v", err)
		}
		if cfg.LivenessShortcut != nil {
			shortcut = *cfg.LivenessShortcut
		}
	}

	if v := os.Getenv("SERVER_ID"); v != "" {
		cfg.ID = v
	}
	if v := os.Getenv("GRPC_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid GRPC_PORT %q: %v", v, err)
		}
		cfg.GRPCPort = port
	}
	if v := os.Getenv("PEER_ADDRESSES"); v != "" {
		cfg.Peers = splitPeers(v)
	}
	if v := os.Getenv("DB_PATH"); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv("DB_BACKEND"); v != "" {
		cfg.DBBackend = v
	}
	if v := os.Getenv("METRICS_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid METRICS_PORT %q: %v", v, err)
		}
		cfg.MetricsPort = port
	}
	if v := os.Getenv("LIVENESS_SHORTCUT"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("invalid LIVENESS_SHORTCUT %q: %v", v, err)
		}
		shortcut = b
	}

	flags := cmd.Flags()
	if flags.Changed("id") {
		cfg.ID, _ = flags.GetString("id")
	}
	if flags.Changed("grpc-port") {
		cfg.GRPCPort, _ = flags.GetInt("grpc-port")
	}
	if flags.Changed("peers") {
		v, _ := flags.GetString("peers")
		cfg.Peers = splitPeers(v)
	}
	if flags.Changed("db-path") {
		cfg.DBPath, _ = flags.GetString("db-path")
	}
	if flags.Changed("db-backend") {
		cfg.DBBackend, _ = flags.GetString("db-backend")
	}
	if flags.Changed("metrics-port") {
		cfg.MetricsPort, _ = flags.GetInt("metrics-port")
	}
	if flags.Changed("liveness-shortcut") {
		shortcut, _ = flags.GetBool("liveness-shortcut")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	if flags.Changed("log-json") {
		cfg.LogJSON, _ = flags.GetBool("log-json")
	}
	cfg.LivenessShortcut = &shortcut

	if cfg.ID == "" {
		return cfg, fmt.Errorf("server ID is required (--id or SERVER_ID)")
	}

	backend := types.StoreBackend(cfg.DBBackend)
	if backend != types.BackendFile && backend != types.BackendBolt {
		return cfg, fmt.Errorf("invalid db backend %q: must be file or bolt", cfg.DBBackend)
	}

	if cfg.DBPath == "" {
		if backend == types.BackendBolt {
			cfg.DBPath = fmt.Sprintf("data/%s.db", cfg.ID)
		} else {
			cfg.DBPath = fmt.Sprintf("data/%s.json", cfg.ID)
		}
	}

	return cfg, nil
}

// splitPeers parses a comma-separated peer list, trimming whitespace and
// dropping empty items.
func splitPeers(s string) []string {
	var peers []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			peers = append(peers, p)
		}
	}
	return peers
}

func runServer(cmd *cobra.Command, args []string) error {
	cfg, err := resolveServerConfig(cmd)
	if err != nil {
		return err
	}

	log.Init(log.Config{
		Level:      log.Level(cfg.LogLevel),
		JSONOutput: cfg.LogJSON,
	})
	metrics.SetVersion(Version)
	logger := log.WithServerID(cfg.ID)

	fmt.Println("Starting Scribe replica...")
	fmt.Printf("  Server ID: %s\n", cfg.ID)
	fmt.Printf("  gRPC Port: %d\n", cfg.GRPCPort)
	if len(cfg.Peers) > 0 {
		fmt.Printf("  Peers: %s\n", strings.Join(cfg.Peers, ", "))
	} else {
		fmt.Println("  Peers: none (single-node cluster)")
	}
	fmt.Printf("  Store: %s (%s backend)\n", cfg.DBPath, cfg.DBBackend)
	fmt.Println()

	store, err := storage.New(types.StoreBackend(cfg.DBBackend), cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open store: %v", err)
	}
	metrics.RegisterComponent("store", true, "")

	broker := events.NewBroker()
	broker.Start()

	sm := statemachine.New(store)
	tr := transport.New(cfg.Peers, transport.Options{})

	nodeCfg := consensus.DefaultConfig(cfg.ID, cfg.Peers)
	nodeCfg.LivenessShortcut = *cfg.LivenessShortcut
	node := consensus.NewNode(nodeCfg, sm, tr, broker)
	tr.Start(node)
	node.Start()
	metrics.RegisterComponent("consensus", false, "no leader elected")
	fmt.Println("✓ Consensus node started")

	collector := metrics.NewCollector(node, store)
	collector.Start()

	if cfg.MetricsPort > 0 {
		health := api.NewHealthServer(node, store)
		go func() {
			if err := health.Start(fmt.Sprintf(":%d", cfg.MetricsPort)); err != nil {
				logger.Error().Err(err).Msg("health server stopped")
			}
		}()
		fmt.Printf("✓ Health and metrics listening on :%d\n", cfg.MetricsPort)
	}

	srv := api.NewServer(node, gateway.New(node, store))
	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(fmt.Sprintf(":%d", cfg.GRPCPort)); err != nil {
			errCh <- fmt.Errorf("API server error: %v", err)
		}
	}()
	metrics.RegisterComponent("api", true, "")
	fmt.Printf("✓ gRPC API listening on :%d\n", cfg.GRPCPort)

	fmt.Println()
	fmt.Println("Replica is running. Press Ctrl+C to stop.")

	// Wait for interrupt signal or API server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case <-sigCh:
		fmt.Println("\nShutting down...")
	case err := <-errCh:
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
	}

	// Shutdown
	srv.Stop()
	collector.Stop()
	node.Stop()
	tr.Stop()
	broker.Stop()
	if err := store.Close(); err != nil {
		return fmt.Errorf("failed to close store: %v", err)
	}

	fmt.Println("✓ Shutdown complete")
	return nil
}
