package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remiblancher/certext/internal/audit"
	"github.com/remiblancher/certext/internal/cli"
	"github.com/remiblancher/certext/internal/extdoc"
)

var docCmd = &cobra.Command{
	Use:   "doc",
	Short: "Check and render edit-session documents",
	Long: `Check and render edit-session documents.

A document is a YAML file:

  extKeyUsage:
    - 1.3.6.1.5.5.7.3.1
  customExtensions:
    - oid: 1.3.6.1.4.1.99999.1
      value: "0c0568656c6c6f"
      critical: false`,
}

var docLintCmd = &cobra.Command{
	Use:   "lint <file>",
	Short: "Validate a document and report every problem",
	Args:  cobra.ExactArgs(1),
	RunE:  runDocLint,
}

var docShowCmd = &cobra.Command{
	Use:   "show <file>",
	Short: "Print a document in normalized order",
	Long: `Print a document with EKU purposes and extensions in display order.

With --format cbor the output is deterministic CBOR.`,
	Args: cobra.ExactArgs(1),
	RunE: runDocShow,
}

func init() {
	docCmd.AddCommand(docLintCmd)
	docCmd.AddCommand(docShowCmd)
}

func loadDocument(path string) (*extdoc.Document, error) {
	doc, err := extdoc.LoadFile(path)
	count := 0
	if doc != nil {
		count = len(doc.Extensions)
	}
	if auditErr := audit.LogDocumentLoaded(path, count, err); auditErr != nil {
		return nil, auditErr
	}
	return doc, err
}

func runDocLint(cmd *cobra.Command, args []string) error {
	if _, err := loadDocument(args[0]); err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s\n", args[0], cli.FormatStatus("valid"))
	return nil
}

func runDocShow(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}
	doc, err := loadDocument(args[0])
	if err != nil {
		return err
	}
	return writeDocument(cmd, doc, format)
}
