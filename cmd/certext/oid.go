package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/remiblancher/certext/internal/audit"
	"github.com/remiblancher/certext/internal/cli"
	"github.com/remiblancher/certext/pkg/oid"
)

var oidCmd = &cobra.Command{
	Use:   "oid",
	Short: "Validate and order object identifiers",
	Long: `Validate and order object identifiers.

An OID is accepted when it has at least two dot-separated decimal arcs,
no arc has a leading zero, the first arc is 0, 1 or 2, and under 0 and 1
the second arc is at most 39.`,
}

var oidValidateCmd = &cobra.Command{
	Use:   "validate <oid>...",
	Short: "Validate object identifiers",
	Long: `Validate each argument and print its canonical form.

Examples:
  certext oid validate 1.2.840.113549.1.1.1
  certext oid validate 2.5.29.37 1.40`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOIDValidate,
}

var oidSortCmd = &cobra.Command{
	Use:   "sort <oid>...",
	Short: "Print object identifiers in display order",
	Long: `Print the arguments in display order.

The order compares canonical strings character by character, ignoring
case, so "2.10" comes before "2.2".`,
	Args: cobra.MinimumNArgs(1),
	RunE: runOIDSort,
}

func init() {
	oidCmd.AddCommand(oidValidateCmd)
	oidCmd.AddCommand(oidSortCmd)
}

func runOIDValidate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()
	invalid := 0
	for _, arg := range args {
		o, err := oid.Validate(arg)
		if auditErr := audit.LogOIDValidation(arg, err); auditErr != nil {
			return auditErr
		}
		if err != nil {
			invalid++
			fmt.Fprintf(out, "%s\t%s (%s): %v\n", arg, cli.FormatStatus("invalid"), cli.DescribeError(err), err)
			continue
		}
		fmt.Fprintf(out, "%s\t%s\n", o, cli.FormatStatus("valid"))
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d OIDs invalid", invalid, len(args))
	}
	return nil
}

func parseOIDArgs(args []string) ([]oid.OID, error) {
	oids := make([]oid.OID, 0, len(args))
	for _, arg := range args {
		o, err := oid.Validate(arg)
		if auditErr := audit.LogOIDValidation(arg, err); auditErr != nil {
			return nil, auditErr
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", cli.DescribeError(err), err)
		}
		oids = append(oids, o)
	}
	return oids, nil
}

func runOIDSort(cmd *cobra.Command, args []string) error {
	oids, err := parseOIDArgs(args)
	if err != nil {
		return err
	}
	for _, o := range oid.Sorted(oids) {
		fmt.Fprintln(cmd.OutOrStdout(), o)
	}
	return nil
}
