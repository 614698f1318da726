package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cuemby/scribe/pkg/storage"
)

var convertCmd = &cobra.Command{
	Use:   "convert SRC DST",
	Short: "Copy a store file to another backend",
	Long: `Copy every user and document from one store file into a new one,
converting between the file and bolt backends. The source is never
modified; the destination must not already exist.

Backends are inferred from the file extensions unless overridden.

Examples:
  scribe-admin convert data/node1.json data/node1.db
  scribe-admin convert data/node1.db data/node1.json --dry-run`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		src, dst := args[0], args[1]
		fromFlag, _ := cmd.Flags().GetString("from-backend")
		toFlag, _ := cmd.Flags().GetString("to-backend")
		dryRun, _ := cmd.Flags().GetBool("dry-run")

		fromBackend, err := resolveBackend(src, fromFlag)
		if err != nil {
			return err
		}
		toBackend, err := resolveBackend(dst, toFlag)
		if err != nil {
			return err
		}

		srcStore, err := openExisting(src, fromBackend)
		if err != nil {
			return err
		}
		defer srcStore.Close()

		users, err := srcStore.ListUsers()
		if err != nil {
			return fmt.Errorf("failed to list users: %v", err)
		}
		docs, err := srcStore.ListDocuments()
		if err != nil {
			return fmt.Errorf("failed to list documents: %v", err)
		}

		fmt.Printf("Source:      %s (backend: %s)\n", src, fromBackend)
		fmt.Printf("Destination: %s (backend: %s)\n", dst, toBackend)
		fmt.Printf("Found %d users and %d documents\n", len(users), len(docs))

		if dryRun {
			fmt.Println("\nDry run completed. No changes made.")
			fmt.Println("Run without --dry-run to perform the conversion.")
			return nil
		}

		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("destination %s already exists: refusing to overwrite", dst)
		}

		dstStore, err := storage.New(toBackend, dst)
		if err != nil {
			return fmt.Errorf("failed to open destination store: %v", err)
		}
		defer dstStore.Close()

		// Users go first so documents attach to existing members; the
		// duplicate guard in CreateDocument keeps the copied membership
		// lists from growing a second reference.
		for _, user := range users {
			created, err := dstStore.CreateUser(user)
			if err != nil {
				return fmt.Errorf("failed to copy user %q: %v", user.Username, err)
			}
			if !created {
				return fmt.Errorf("user %q already exists in destination", user.Username)
			}
		}
		fmt.Printf("✓ Copied %d users\n", len(users))

		for i, doc := range docs {
			created, err := dstStore.CreateDocument(doc)
			if err != nil {
				return fmt.Errorf("failed to copy document %q: %v", doc.ID, err)
			}
			if !created {
				return fmt.Errorf("document %q already exists in destination", doc.ID)
			}
			if (i+1)%100 == 0 {
				fmt.Printf("  Copied %d/%d documents...\n", i+1, len(docs))
			}
		}
		fmt.Printf("✓ Copied %d documents\n", len(docs))

		fmt.Printf("\n✓ Conversion complete: %s\n", dst)
		return nil
	},
}

func init() {
	convertCmd.Flags().String("from-backend", "", "Source backend: file or bolt (default: inferred from extension)")
	convertCmd.Flags().String("to-backend", "", "Destination backend: file or bolt (default: inferred from extension)")
	convertCmd.Flags().Bool("dry-run", false, "Report what would be copied without writing")
}
