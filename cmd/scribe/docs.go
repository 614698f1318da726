package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/cuemby/scribe/api/proto"
)

var docsCmd = &cobra.Command{
	Use:   "docs",
	Short: "Work with documents",
}

var docsCreateCmd = &cobra.Command{
	Use:   "create TITLE",
	Short: "Create a new document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		username, _ := cmd.Flags().GetString("user")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.CreateDocument(title, username)
		if err != nil {
			return fmt.Errorf("failed to create document: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		fmt.Printf("  ID: %s\n", resp.DocumentId)
		return nil
	},
}

var docsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List documents the user can access",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.ListDocuments(username)
		if err != nil {
			return fmt.Errorf("failed to list documents: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		if len(resp.Documents) == 0 {
			fmt.Println("No documents.")
			return nil
		}

		fmt.Printf("%-38s %-24s %-20s %s\n", "ID", "TITLE", "LAST EDITED", "USERS")
		for _, doc := range resp.Documents {
			fmt.Printf("%-38s %-24s %-20s %s\n",
				doc.Id, doc.Title, formatTime(doc), strings.Join(doc.Users, ", "))
		}
		return nil
	},
}

var docsGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Print a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.GetDocument(args[0], username)
		if err != nil {
			return fmt.Errorf("failed to get document: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		doc := resp.Document
		fmt.Printf("ID:          %s\n", doc.Id)
		fmt.Printf("Title:       %s\n", doc.Title)
		fmt.Printf("Users:       %s\n", strings.Join(doc.Users, ", "))
		fmt.Printf("Last edited: %s\n", formatTime(doc))
		fmt.Println("---")
		fmt.Println(doc.Data)
		return nil
	},
}

var docsSetTitleCmd = &cobra.Command{
	Use:   "set-title ID TITLE",
	Short: "Rename a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.UpdateDocumentTitle(args[0], args[1], username)
		if err != nil {
			return fmt.Errorf("failed to update title: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		return nil
	},
}

var docsSetContentCmd = &cobra.Command{
	Use:   "set-content ID CONTENT",
	Short: "Replace a document's content",
	Long: `Replace a document's content.

With --base, the server merges this edit with any changes made since
the given base version instead of overwriting them. Pass the content
the edit started from:

  scribe docs set-content ID "new text" --base "text I started from" --user alice`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		base, _ := cmd.Flags().GetString("base")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.UpdateDocumentContent(args[0], args[1], base, username)
		if err != nil {
			return fmt.Errorf("failed to update content: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		if resp.Content != args[1] {
			fmt.Println("---")
			fmt.Println(resp.Content)
		}
		return nil
	},
}

var docsShareCmd = &cobra.Command{
	Use:   "share ID USERNAME",
	Short: "Grant a user access to a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.AddUserToDocument(args[0], args[1], username)
		if err != nil {
			return fmt.Errorf("failed to share document: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		return nil
	},
}

var docsUnshareCmd = &cobra.Command{
	Use:   "unshare ID USERNAME",
	Short: "Revoke a user's access to a document",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.RemoveUserFromDocument(args[0], args[1], username)
		if err != nil {
			return fmt.Errorf("failed to unshare document: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		return nil
	},
}

var docsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a document",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.DeleteDocument(args[0], username)
		if err != nil {
			return fmt.Errorf("failed to delete document: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		return nil
	},
}

func init() {
	docsCmd.PersistentFlags().StringP("user", "u", "", "Acting username (required)")
	_ = docsCmd.MarkPersistentFlagRequired("user")

	docsSetContentCmd.Flags().String("base", "", "Content this edit was based on (enables merging)")

	docsCmd.AddCommand(docsCreateCmd)
	docsCmd.AddCommand(docsListCmd)
	docsCmd.AddCommand(docsGetCmd)
	docsCmd.AddCommand(docsSetTitleCmd)
	docsCmd.AddCommand(docsSetContentCmd)
	docsCmd.AddCommand(docsShareCmd)
	docsCmd.AddCommand(docsUnshareCmd)
	docsCmd.AddCommand(docsDeleteCmd)
}

func formatTime(doc *proto.Document) string {
	if doc.LastEdited == nil {
		return "-"
	}
	return doc.LastEdited.AsTime().Format(time.RFC3339)
}
