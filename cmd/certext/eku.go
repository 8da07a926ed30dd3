package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remiblancher/certext/internal/audit"
	"github.com/remiblancher/certext/internal/cli"
	"github.com/remiblancher/certext/internal/extdoc"
	"github.com/remiblancher/certext/pkg/eku"
)

var ekuCertPath string

var ekuCmd = &cobra.Command{
	Use:   "eku",
	Short: "Assemble custom Extended Key Usage purpose lists",
}

var ekuAcceptCmd = &cobra.Command{
	Use:   "accept [oid...]",
	Short: "Accept a list of Extended Key Usage purposes",
	Long: `Validate the given purpose OIDs, drop duplicates and print the list in
display order. Purposes can be pre-populated from an existing certificate.

An empty list is rejected.

Examples:
  certext eku accept 1.3.6.1.5.5.7.3.2 1.3.6.1.5.5.7.3.1
  certext eku accept --cert server.pem 1.3.6.1.4.1.99999.1 --format json`,
	RunE: runEKUAccept,
}

func init() {
	ekuCmd.AddCommand(ekuAcceptCmd)

	ekuAcceptCmd.Flags().StringVar(&ekuCertPath, "cert", "", "Certificate whose purposes pre-populate the list (PEM or DER)")
}

func runEKUAccept(cmd *cobra.Command, args []string) error {
	format, err := outputFormat()
	if err != nil {
		return err
	}

	oids, err := parseOIDArgs(args)
	if err != nil {
		return err
	}
	if ekuCertPath != "" {
		cert, err := cli.LoadCertFromPath(ekuCertPath)
		if err != nil {
			return err
		}
		fromCert, err := eku.FromCertificate(cert)
		if err != nil {
			return err
		}
		oids = append(fromCert.Ordered(), oids...)
	}

	set := eku.NewSet(oids...)
	members, acceptErr := set.Accept()
	if err := audit.LogEKUAcceptance(set.Strings(), acceptErr); err != nil {
		return err
	}
	if acceptErr != nil {
		return acceptErr
	}

	if format == extdoc.FormatText {
		return cli.WriteOIDTable(cmd.OutOrStdout(), members)
	}
	return writeDocument(cmd, &extdoc.Document{ExtKeyUsage: set}, format)
}

func writeDocument(cmd *cobra.Command, doc *extdoc.Document, format extdoc.Format) error {
	out, err := doc.Marshal(format)
	if err != nil {
		return fmt.Errorf("failed to encode output: %w", err)
	}
	_, err = cmd.OutOrStdout().Write(out)
	return err
}

