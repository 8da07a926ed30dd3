package cli

import (
	"crypto/x509"
	"encoding/pem"
	"errors"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/remiblancher/certext/pkg/customext"
	"github.com/remiblancher/certext/pkg/hexcodec"
	"github.com/remiblancher/certext/pkg/oid"
)

// LoadCertFromPath loads a certificate from a PEM or DER file.
func LoadCertFromPath(path string) (*x509.Certificate, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read certificate file: %w", err)
	}

	if block, _ := pem.Decode(data); block != nil {
		if block.Type != "CERTIFICATE" {
			return nil, fmt.Errorf("unexpected PEM block %q", block.Type)
		}
		data = block.Bytes
	}

	cert, err := x509.ParseCertificate(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse certificate: %w", err)
	}
	return cert, nil
}

// WriteOIDTable writes oids, one per row, with their well-known names.
func WriteOIDTable(w io.Writer, oids []oid.OID) error {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, o := range oids {
		if name := oid.Name(o); name != "" {
			fmt.Fprintf(tw, "%s\t%s\n", o, name)
		} else {
			fmt.Fprintf(tw, "%s\t\n", o)
		}
	}
	return tw.Flush()
}

// DescribeError names the specific failure kind behind err for user
// output, e.g. "second arc out of range".
func DescribeError(err error) string {
	kinds := []struct {
		err  error
		name string
	}{
		{oid.ErrEmpty, "empty"},
		{oid.ErrMalformedArc, "malformed arc"},
		{oid.ErrTooFewArcs, "too few arcs"},
		{oid.ErrFirstArcOutOfRange, "first arc out of range"},
		{oid.ErrSecondArcOutOfRange, "second arc out of range"},
		{hexcodec.ErrOddLength, "odd length"},
		{hexcodec.ErrInvalidCharacter, "invalid character"},
		{customext.ErrMissingValue, "missing value"},
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "invalid"
}
