package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuemby/scribe/pkg/client"
)

var (
	// Version information (set via ldflags during build)
	Version   = "dev"
	Commit    = "unknown"
	BuildTime = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "scribe",
	Short: "Scribe - Replicated collaborative document service",
	Long: `Scribe is a distributed collaborative document service. A cluster of
replicas agrees on every change through leader-based log replication,
so any node can serve reads while the leader orders writes. Concurrent
edits to the same document are reconciled with character-level
three-way merging instead of being lost.`,
	Version: Version,
}

func init() {
	// Set version template
	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"Scribe version %s\nCommit: %s\nBuilt: %s\n",
		Version, Commit, BuildTime,
	))

	// Client commands all talk to one replica
	rootCmd.PersistentFlags().String("server", "localhost:50051", "Server address for client commands")

	// Add subcommands
	rootCmd.AddCommand(serverCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(registerCmd)
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(docsCmd)
}

// connect dials the replica targeted by the --server flag.
func connect(cmd *cobra.Command) (*client.Client, error) {
	addr, _ := cmd.Flags().GetString("server")
	c, err := client.NewClient(addr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to server: %v", err)
	}
	return c, nil
}
