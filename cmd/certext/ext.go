package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remiblancher/certext/internal/audit"
	"github.com/remiblancher/certext/internal/cli"
	"github.com/remiblancher/certext/internal/extdoc"
	"github.com/remiblancher/certext/pkg/customext"
)

var (
	extOID      string
	extValue    string
	extCritical bool
)

var extCmd = &cobra.Command{
	Use:   "ext",
	Short: "Assemble arbitrary certificate extensions",
}

var extBuildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build a custom extension from an OID and a hex value",
	Long: `Build a custom extension from an identifier and a hex-encoded value.

The value is usually the DER encoding of the extension content and is
taken as-is. Both --oid and --value are required.

Examples:
  certext ext build --oid 1.3.6.1.4.1.99999.1 --value 0c0568656c6c6f
  certext ext build --oid 1.3.6.1.4.1.99999.2 --value "05 00" --critical --format yaml`,
	Args: cobra.NoArgs,
	RunE: runExtBuild,
}

func init() {
	extCmd.AddCommand(extBuildCmd)

	flags := extBuildCmd.Flags()
	flags.StringVar(&extOID, "oid", "", "Extension identifier")
	flags.StringVar(&extValue, "value", "", "Extension value as hex")
	flags.BoolVar(&extCritical, "critical", false, "Mark the extension critical")
}

func runExtBuild(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	v, buildErr := customext.Build(extOID, extValue)
	if err := audit.LogExtensionBuild(extOID, v.Len(), extCritical, buildErr); err != nil {
		return err
	}
	if buildErr != nil {
		return fmt.Errorf("%s: %w", cli.DescribeError(buildErr), buildErr)
	}

	doc := &extdoc.Document{Extensions: []extdoc.Extension{{Value: v, Critical: extCritical}}}
	return writeDocument(cmd, doc, format)
}
