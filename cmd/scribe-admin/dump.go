package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

var dumpCmd = &cobra.Command{
	Use:   "dump PATH",
	Short: "Print the contents of a store file",
	Long: `Print every user and document in a store file.

Document bodies are summarized by size; pass --content to print them in
full. The backend is inferred from the file extension (.json for the
file backend, .db or .bolt for bolt) unless --backend is given.

Examples:
  scribe-admin dump data/node1.json
  scribe-admin dump data/node1.db --content`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		backendFlag, _ := cmd.Flags().GetString("backend")
		withContent, _ := cmd.Flags().GetBool("content")

		backend, err := resolveBackend(path, backendFlag)
		if err != nil {
			return err
		}
		store, err := openExisting(path, backend)
		if err != nil {
			return err
		}
		defer store.Close()

		users, err := store.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to list users: %v", err)
		}
		docs, err := store.ListDocuments()
		if err != nil {
			return fmt.Errorf("failed to list documents: %v", err)
		}

		fmt.Printf("Store: %s (backend: %s)\n", path, backend)
		fmt.Printf("\nUsers (%d):\n", len(users))
		for _, user := range users {
			fmt.Printf("  %s\n", user.Username)
			fmt.Printf("    password:  %s\n", user.Password)
			if len(user.Documents) == 0 {
				fmt.Printf("    documents: none\n")
			} else {
				fmt.Printf("    documents: %s\n", strings.Join(user.Documents, ", "))
			}
		}

		fmt.Printf("\nDocuments (%d):\n", len(docs))
		for _, doc := range docs {
			fmt.Printf("  %s\n", doc.ID)
			fmt.Printf("    title:       %s\n", doc.Title)
			fmt.Printf("    users:       %s\n", strings.Join(doc.Users, ", "))
			fmt.Printf("    last edited: %s\n", doc.LastEdited.Format(time.RFC3339))
			if withContent {
				fmt.Printf("    data:\n")
				for _, line := range strings.Split(doc.Data, "\n") {
					fmt.Printf("      %s\n", line)
				}
			} else {
				fmt.Printf("    data:        %d bytes\n", len(doc.Data))
			}
		}
		return nil
	},
}

func init() {
	dumpCmd.Flags().String("backend", "", "Store backend: file or bolt (default: inferred from extension)")
	dumpCmd.Flags().Bool("content", false, "Print full document bodies")
}
