package extdoc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"

	"github.com/remiblancher/certext/pkg/hexcodec"
	"github.com/remiblancher/certext/pkg/oid"
)

// Format is an output encoding for documents.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatCBOR Format = "cbor"
)

// Formats lists the supported output formats.
var Formats = []Format{FormatText, FormatYAML, FormatJSON, FormatCBOR}

// ParseFormat maps a user-supplied name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}

// cborDocument keeps extension values as byte strings.
type cborDocument struct {
	ExtKeyUsage      []string        `cbor:"extKeyUsage,omitempty"`
	CustomExtensions []cborExtension `cbor:"customExtensions,omitempty"`
}

type cborExtension struct {
	OID      string `cbor:"oid"`
	Value    []byte `cbor:"value"`
	Critical bool   `cbor:"critical,omitempty"`
}

var cborEncMode = func() cbor.EncMode {
	em, err := cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// Marshal encodes d. Every format lists EKU purposes and extensions in
// oid.Compare order, so equal documents always encode to equal bytes.
func (d *Document) Marshal(f Format) ([]byte, error) {
	switch f {
	case FormatText:
		return d.marshalText()
	case FormatYAML:
		return yaml.Marshal(d.toYAML())
	case FormatJSON:
		out, err := json.MarshalIndent(d.toYAML(), "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case FormatCBOR:
		return cborEncMode.Marshal(d.toCBOR())
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
}

func (d *Document) ekuStrings() []string {
	oids := d.OIDs()
	out := make([]string, len(oids))
	for i, o := range oids {
		out[i] = o.String()
	}
	return out
}

func (d *Document) toYAML() documentYAML {
	var raw documentYAML
	if d.ExtKeyUsage != nil {
		oids := d.ekuStrings()
		raw.ExtKeyUsage = &oids
	}
	for _, e := range d.Extensions {
		raw.CustomExtensions = append(raw.CustomExtensions, extensionYAML{
			OID:      e.Value.OID().String(),
			Value:    e.Value.Hex(),
			Critical: e.Critical,
		})
	}
	return raw
}

func (d *Document) toCBOR() cborDocument {
	doc := cborDocument{ExtKeyUsage: d.ekuStrings()}
	for _, e := range d.Extensions {
		doc.CustomExtensions = append(doc.CustomExtensions, cborExtension{
			OID:      e.Value.OID().String(),
			Value:    e.Value.Bytes(),
			Critical: e.Critical,
		})
	}
	return doc
}

// UnmarshalCBOR decodes a document written with FormatCBOR and validates
// it like Parse.
func UnmarshalCBOR(data []byte) (*Document, error) {
	var doc cborDocument
	if err := cbor.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to decode CBOR document: %w", err)
	}
	raw := documentYAML{}
	if doc.ExtKeyUsage != nil {
		raw.ExtKeyUsage = &doc.ExtKeyUsage
	}
	for _, e := range doc.CustomExtensions {
		raw.CustomExtensions = append(raw.CustomExtensions, extensionYAML{
			OID:      e.OID,
			Value:    hexcodec.Encode(e.Value),
			Critical: e.Critical,
		})
	}
	return raw.validate()
}

func (d *Document) marshalText() ([]byte, error) {
	var buf bytes.Buffer
	tw := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)

	if d.ExtKeyUsage != nil {
		fmt.Fprintln(tw, "Extended Key Usage:")
		for _, o := range d.OIDs() {
			fmt.Fprintf(tw, "  %s\t%s\n", o, oid.Name(o))
		}
	}
	if len(d.Extensions) > 0 {
		fmt.Fprintln(tw, "Custom Extensions:")
		for _, e := range d.Extensions {
			critical := ""
			if e.Critical {
				critical = "critical"
			}
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", e.Value.OID(), e.Value.Hex(), critical)
		}
	}
	if err := tw.Flush(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
