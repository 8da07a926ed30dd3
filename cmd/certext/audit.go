package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remiblancher/certext/internal/audit"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Audit log operations",
}

var auditVerifyCmd = &cobra.Command{
	Use:   "verify <file>",
	Short: "Verify the hash chain of an audit log",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := audit.VerifyChain(args[0])
		if err != nil {
			return fmt.Errorf("audit chain verification failed after %d events: %w", n, err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%d events verified\n", n)
		return nil
	},
}

func init() {
	auditCmd.AddCommand(auditVerifyCmd)
}
