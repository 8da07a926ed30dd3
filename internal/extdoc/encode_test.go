package extdoc

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mustParse(t *testing.T, s string) *Document {
	t.Helper()
	doc, err := Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	return doc
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"text", "YAML", " json ", "cbor"} {
		if _, err := ParseFormat(in); err != nil {
			t.Errorf("ParseFormat(%q) error = %v", in, err)
		}
	}
	if _, err := ParseFormat("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("ParseFormat(xml) error = %v", err)
	}
}

func TestMarshal_JSON(t *testing.T) {
	doc := mustParse(t, validDoc)
	got, err := doc.Marshal(FormatJSON)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	want := `{
  "extKeyUsage": [
    "1.3.6.1.5.5.7.3.1",
    "1.3.6.1.5.5.7.3.2"
  ],
  "customExtensions": [
    {
      "oid": "1.3.6.1.4.1.99999.1",
      "value": "0c0568656c6c6f",
      "critical": true
    },
    {
      "oid": "2.5.29.99",
      "value": "0500"
    }
  ]
}
`
	if diff := cmp.Diff(want, string(got)); diff != "" {
		t.Errorf("Marshal(json) mismatch (-want +got):\n%s", diff)
	}
}

func TestMarshal_YAMLRoundTrip(t *testing.T) {
	doc := mustParse(t, validDoc)
	out, err := doc.Marshal(FormatYAML)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	again := mustParse(t, string(out))
	out2, err := again.Marshal(FormatYAML)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(out, out2) {
		t.Errorf("YAML not stable:\n%s\n---\n%s", out, out2)
	}
}

func TestMarshal_CBORDeterministic(t *testing.T) {
	a := mustParse(t, validDoc)
	b := mustParse(t, `
customExtensions:
  - oid: 1.3.6.1.4.1.99999.1
    value: 0c0568656c6c6f
    critical: true
  - oid: 2.5.29.99
    value: "0500"
extKeyUsage:
  - 1.3.6.1.5.5.7.3.1
  - 1.3.6.1.5.5.7.3.2
`)

	outA, err := a.Marshal(FormatCBOR)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	outB, err := b.Marshal(FormatCBOR)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !bytes.Equal(outA, outB) {
		t.Errorf("CBOR differs for equal documents:\n%x\n%x", outA, outB)
	}

	back, err := UnmarshalCBOR(outA)
	if err != nil {
		t.Fatalf("UnmarshalCBOR() error = %v", err)
	}
	if diff := cmp.Diff(oidStrings(a.OIDs()), oidStrings(back.OIDs())); diff != "" {
		t.Errorf("EKU after CBOR round trip (-want +got):\n%s", diff)
	}
	if len(back.Extensions) != 2 || !back.Extensions[0].Value.Equal(a.Extensions[0].Value) {
		t.Errorf("extensions after CBOR round trip = %v", back.Extensions)
	}
}

func TestUnmarshalCBOR_Invalid(t *testing.T) {
	if _, err := UnmarshalCBOR([]byte{0xff}); err == nil {
		t.Error("UnmarshalCBOR() accepted garbage")
	}
}

func TestMarshal_Text(t *testing.T) {
	out, err := mustParse(t, validDoc).Marshal(FormatText)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	text := string(out)
	for _, want := range []string{
		"Extended Key Usage:",
		"1.3.6.1.5.5.7.3.1",
		"TLS Web Server Authentication",
		"Custom Extensions:",
		"0c0568656c6c6f",
		"critical",
	} {
		if !strings.Contains(text, want) {
			t.Errorf("text output missing %q:\n%s", want, text)
		}
	}
	if strings.Index(text, "1.3.6.1.5.5.7.3.1") > strings.Index(text, "1.3.6.1.5.5.7.3.2") {
		t.Error("text output not in OID order")
	}
}

func TestMarshal_UnknownFormat(t *testing.T) {
	if _, err := mustParse(t, validDoc).Marshal("xml"); !errors.Is(err, ErrUnknownFormat) {
		t.Errorf("Marshal(xml) error = %v", err)
	}
}
