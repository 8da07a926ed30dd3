package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/remiblancher/certext/internal/cli"
	"github.com/remiblancher/certext/pkg/hexcodec"
)

var hexOut string

var hexCmd = &cobra.Command{
	Use:   "hex",
	Short: "Convert extension values between hex and raw bytes",
}

var hexDecodeCmd = &cobra.Command{
	Use:   "decode <hex>",
	Short: "Decode a hex string to raw bytes",
	Long: `Decode a hex string to raw bytes.

Whitespace between digits is ignored. Any other non-hex character, or an
odd number of digits, is an error.

Examples:
  certext hex decode "04 03 01 02 03" --out value.der`,
	Args: cobra.ExactArgs(1),
	RunE: runHexDecode,
}

var hexEncodeCmd = &cobra.Command{
	Use:   "encode [file]",
	Short: "Encode a file (or stdin) as lower-case hex",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHexEncode,
}

func init() {
	hexCmd.AddCommand(hexDecodeCmd)
	hexCmd.AddCommand(hexEncodeCmd)

	hexDecodeCmd.Flags().StringVarP(&hexOut, "out", "o", "", "Output file (default: stdout)")
}

func runHexDecode(cmd *cobra.Command, args []string) error {
	b, err := hexcodec.Decode(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", cli.DescribeError(err), err)
	}
	if hexOut != "" {
		if err := os.WriteFile(hexOut, b, 0644); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}
	_, err = cmd.OutOrStdout().Write(b)
	return err
}

func runHexEncode(cmd *cobra.Command, args []string) error {
	var (
		data []byte
		err  error
	)
	if len(args) == 0 || args[0] == "-" {
		data, err = io.ReadAll(cmd.InOrStdin())
	} else {
		data, err = os.ReadFile(args[0])
	}
	if err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), hexcodec.Encode(data))
	return nil
}
