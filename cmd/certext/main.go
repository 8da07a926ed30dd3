// Command certext validates and assembles custom X.509 extensions:
// object identifiers, Extended Key Usage purpose lists and arbitrary
// (OID, value) extensions.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/remiblancher/certext/internal/audit"
	"github.com/remiblancher/certext/internal/cli"
)

// Build-time variables (injected by GoReleaser)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		_ = audit.Close() // PersistentPostRunE does not run on failure
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "certext",
	Short: "Validate and assemble custom X.509 certificate extensions",
	Long: `certext validates object identifiers, hex-encoded extension values and
Extended Key Usage purpose lists before they are attached to a certificate.

OID lists are always printed in the same order, so identical inputs give
byte-identical output in every format.

Examples:
  # Check an object identifier
  certext oid validate 1.2.840.113549.1.1.1

  # Accept a custom Extended Key Usage list
  certext eku accept 1.3.6.1.5.5.7.3.2 1.3.6.1.5.5.7.3.1

  # Build an arbitrary extension from hex
  certext ext build --oid 1.3.6.1.4.1.99999.1 --value 0c0568656c6c6f

  # Check an edit-session document
  certext doc lint session.yaml`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := loadConfig(cmd.Root()); err != nil {
			return err
		}
		cli.Colors = !cfg.GetBool(keyNoColor)

		if path := cfg.GetString(keyAuditLog); path != "" {
			if err := audit.InitFile(path); err != nil {
				return fmt.Errorf("failed to initialize audit log: %w", err)
			}
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		return audit.Close()
	},
}

func init() {
	registerConfigFlags(rootCmd)

	rootCmd.AddCommand(oidCmd)   // certext oid ...
	rootCmd.AddCommand(hexCmd)   // certext hex ...
	rootCmd.AddCommand(ekuCmd)   // certext eku ...
	rootCmd.AddCommand(extCmd)   // certext ext ...
	rootCmd.AddCommand(docCmd)   // certext doc ...
	rootCmd.AddCommand(auditCmd) // certext audit ...
}
