package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var registerCmd = &cobra.Command{
	Use:   "register USERNAME",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		password, _ := cmd.Flags().GetString("password")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.RegisterUser(username, password)
		if err != nil {
			return fmt.Errorf("failed to register user: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		return nil
	},
}

var loginCmd = &cobra.Command{
	Use:   "login USERNAME",
	Short: "Check a user's credentials",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		username := args[0]
		password, _ := cmd.Flags().GetString("password")

		c, err := connect(cmd)
		if err != nil {
			return err
		}
		defer c.Close()

		resp, err := c.AuthenticateUser(username, password)
		if err != nil {
			return fmt.Errorf("failed to authenticate: %v", err)
		}
		if !resp.Success {
			return fmt.Errorf("%s", resp.Message)
		}

		fmt.Printf("✓ %s\n", resp.Message)
		return nil
	},
}

func init() {
	registerCmd.Flags().StringP("password", "p", "", "Password for the new user")
	_ = registerCmd.MarkFlagRequired("password")

	loginCmd.Flags().StringP("password", "p", "", "Password to check")
	_ = loginCmd.MarkFlagRequired("password")
}
