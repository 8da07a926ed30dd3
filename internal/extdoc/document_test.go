package extdoc

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/remiblancher/certext/pkg/customext"
	"github.com/remiblancher/certext/pkg/eku"
	"github.com/remiblancher/certext/pkg/hexcodec"
	"github.com/remiblancher/certext/pkg/oid"
)

const validDoc = `
extKeyUsage:
  - 1.3.6.1.5.5.7.3.2
  - 1.3.6.1.5.5.7.3.1
  - 1.3.6.1.5.5.7.3.2
customExtensions:
  - oid: 2.5.29.99
    value: "05 00"
  - oid: 1.3.6.1.4.1.99999.1
    value: 0C0568656C6C6F
    critical: true
`

func oidStrings(oids []oid.OID) []string {
	out := make([]string, len(oids))
	for i, o := range oids {
		out[i] = o.String()
	}
	return out
}

func TestParse_Valid(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	wantEKU := []string{"1.3.6.1.5.5.7.3.1", "1.3.6.1.5.5.7.3.2"}
	if diff := cmp.Diff(wantEKU, oidStrings(doc.OIDs())); diff != "" {
		t.Errorf("EKU mismatch (-want +got):\n%s", diff)
	}

	if len(doc.Extensions) != 2 {
		t.Fatalf("got %d extensions, want 2", len(doc.Extensions))
	}
	if got := doc.Extensions[0].Value.OID().String(); got != "1.3.6.1.4.1.99999.1" {
		t.Errorf("first extension = %s, want ordered by OID", got)
	}
	if !doc.Extensions[0].Critical {
		t.Error("critical flag lost")
	}
	if got := doc.Extensions[1].Value.Hex(); got != "0500" {
		t.Errorf("second extension value = %s", got)
	}
}

func TestParse_NoEKUKey(t *testing.T) {
	doc, err := Parse([]byte("customExtensions:\n  - oid: 1.2.3\n    value: \"00\"\n"))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if doc.ExtKeyUsage != nil {
		t.Error("ExtKeyUsage set without extKeyUsage key")
	}
	if doc.OIDs() != nil {
		t.Errorf("OIDs() = %v, want nil", doc.OIDs())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name      string
		doc       string
		wantErr   []error
		wantField string
	}{
		{
			name:      "empty EKU list",
			doc:       "extKeyUsage: []\n",
			wantErr:   []error{eku.ErrEmptySet},
			wantField: "extKeyUsage",
		},
		{
			name:      "invalid EKU OID",
			doc:       "extKeyUsage:\n  - 1.2.3\n  - \"1.40\"\n",
			wantErr:   []error{oid.ErrSecondArcOutOfRange},
			wantField: "extKeyUsage[1]",
		},
		{
			name:      "extension missing value",
			doc:       "customExtensions:\n  - oid: 1.2.3\n",
			wantErr:   []error{customext.ErrMissingValue},
			wantField: "customExtensions[0].value",
		},
		{
			name:      "extension bad OID",
			doc:       "customExtensions:\n  - oid: \"\"\n    value: AB12\n",
			wantErr:   []error{customext.ErrInvalidOID, oid.ErrEmpty},
			wantField: "customExtensions[0].oid",
		},
		{
			name:      "extension odd value",
			doc:       "customExtensions:\n  - oid: 1.2.3\n    value: A\n",
			wantErr:   []error{customext.ErrInvalidValue, hexcodec.ErrOddLength},
			wantField: "customExtensions[0].value",
		},
		{
			name:      "duplicate extension",
			doc:       "customExtensions:\n  - oid: 1.2.3\n    value: \"00\"\n  - oid: \" 1.2.3\"\n    value: \"01\"\n",
			wantErr:   []error{ErrDuplicateExtension},
			wantField: "customExtensions[1].oid",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := Parse([]byte(tt.doc))
			if err == nil {
				t.Fatal("Parse() succeeded, want error")
			}
			if doc != nil {
				t.Error("Parse() returned a document with an error")
			}
			for _, want := range tt.wantErr {
				if !errors.Is(err, want) {
					t.Errorf("errors.Is(%v, %v) = false", err, want)
				}
			}
			var fieldErr *FieldError
			if !errors.As(err, &fieldErr) {
				t.Fatalf("error %v has no *FieldError", err)
			}
			if fieldErr.Field != tt.wantField {
				t.Errorf("Field = %q, want %q", fieldErr.Field, tt.wantField)
			}
		})
	}
}

func TestParse_ReportsAllFailures(t *testing.T) {
	_, err := Parse([]byte("extKeyUsage:\n  - \"3.1\"\ncustomExtensions:\n  - oid: 1.2.3\n    value: zz\n"))
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	if !errors.Is(err, oid.ErrFirstArcOutOfRange) || !errors.Is(err, hexcodec.ErrInvalidCharacter) {
		t.Errorf("Parse() error = %v, want both failures", err)
	}
}

func TestParse_ValueNotEchoed(t *testing.T) {
	_, err := Parse([]byte("customExtensions:\n  - oid: 1.2.3\n    value: secretzz\n"))
	if err == nil {
		t.Fatal("Parse() succeeded, want error")
	}
	if strings.Contains(err.Error(), "secretzz") {
		t.Errorf("error echoes the extension value: %v", err)
	}
}

func TestParse_MalformedYAML(t *testing.T) {
	if _, err := Parse([]byte("extKeyUsage: [unclosed")); err == nil {
		t.Error("Parse() accepted malformed YAML")
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(validDoc), 0644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	doc, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if doc.ExtKeyUsage.Len() != 2 {
		t.Errorf("EKU Len() = %d, want 2", doc.ExtKeyUsage.Len())
	}

	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() on missing file succeeded")
	}
}

func TestDocument_Extension(t *testing.T) {
	doc, err := Parse([]byte(validDoc))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, ok := doc.Extension(oid.MustParse("2.5.29.99")); !ok {
		t.Error("Extension(2.5.29.99) not found")
	}
	if _, ok := doc.Extension(oid.MustParse("1.2.3")); ok {
		t.Error("Extension(1.2.3) found")
	}
}
