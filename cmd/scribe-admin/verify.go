package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/cuemby/scribe/pkg/storage"
)

var verifyCmd = &cobra.Command{
	Use:   "verify PATH",
	Short: "Check a store file for cross-reference integrity",
	Long: `Check that the users and documents in a store file reference each
other consistently:

  - every member of a document's user list exists and lists the
    document back
  - every document a user lists exists and lists the user back
  - no duplicate references on either side
  - document IDs are well-formed UUIDs

Problems are printed one per line; the command fails if any are found.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]
		backendFlag, _ := cmd.Flags().GetString("backend")

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

		problems := storage.CheckIntegrity(users, docs)
		for _, p := range problems {
			fmt.Printf("⚠ %s\n", p)
		}
		if len(problems) > 0 {
			return fmt.Errorf("found %d integrity problems in %s", len(problems), path)
		}

		fmt.Printf("✓ Store is consistent: %d users, %d documents\n", len(users), len(docs))
		return nil
	},
}

func init() {
	verifyCmd.Flags().String("backend", "", "Store backend: file or bolt (default: inferred from extension)")
}
