package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuemby/scribe/api/proto"
	"github.com/cuemby/scribe/pkg/client"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show a replica's consensus status",
	Long: `Show the consensus status of the target replica.

With --cluster, also query each address given via --peers so the whole
cluster can be inspected from one command. Peers are contacted directly;
nothing is proxied through the target replica.

Examples:
  scribe status
  scribe status --server localhost:50052
  scribe status --cluster --peers localhost:50052,localhost:50053`,
	RunE: runStatus,
}

func init() {
	statusCmd.Flags().Bool("cluster", false, "Query every peer as well")
	statusCmd.Flags().String("peers", "", "Comma-separated peer addresses for --cluster")
}

func runStatus(cmd *cobra.Command, args []string) error {
	addr, _ := cmd.Flags().GetString("server")
	cluster, _ := cmd.Flags().GetBool("cluster")
	peersFlag, _ := cmd.Flags().GetString("peers")

	targets := []string{addr}
	if cluster {
		targets = append(targets, splitPeers(peersFlag)...)
	}

	printStatusHeader()
	for _, target := range targets {
		st, err := fetchStatus(target)
		if err != nil {
			fmt.Printf("%-22s %-10s (unreachable: %v)\n", target, "-", err)
			continue
		}
		printStatusRow(target, st)
	}

	return nil
}

func fetchStatus(addr string) (*proto.ServerStatus, error) {
	c, err := client.NewClient(addr)
	if err != nil {
		return nil, err
	}
	defer c.Close()

	return c.ServerStatus()
}

func printStatusHeader() {
	fmt.Printf("%-22s %-10s %-10s %-6s %-8s %-8s %-8s %-6s\n",
		"ADDRESS", "SERVER", "STATE", "TERM", "LEADER", "COMMIT", "APPLIED", "LOG")
}

func printStatusRow(addr string, st *proto.ServerStatus) {
	leader := st.LeaderId
	if leader == "" {
		leader = "-"
	}
	fmt.Printf("%-22s %-10s %-10s %-6d %-8s %-8d %-8d %-6d\n",
		addr, st.ServerId, st.State, st.CurrentTerm, leader,
		st.CommitIndex, st.LastApplied, st.LogLength)
}
