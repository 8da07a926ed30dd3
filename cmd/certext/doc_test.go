package main

import (
	"errors"
	"testing"

	"github.com/remiblancher/certext/internal/extdoc"
	"github.com/remiblancher/certext/pkg/eku"
)

const sessionDoc = `
extKeyUsage:
  - 1.3.6.1.5.5.7.3.2
  - 1.3.6.1.5.5.7.3.1
customExtensions:
  - oid: 1.3.6.1.4.1.99999.1
    value: 0C0568656C6C6F
`

func TestDocLint(t *testing.T) {
	tc := newTestContext(t)
	path := tc.writeFile("session.yaml", sessionDoc)

	out, err := executeCommand(rootCmd, "doc", "lint", "--no-color", path)
	assertNoError(t, err)
	assertContains(t, out, "valid")
}

func TestDocLint_Invalid(t *testing.T) {
	tc := newTestContext(t)
	path := tc.writeFile("bad.yaml", "extKeyUsage: []\ncustomExtensions:\n  - oid: 1.2.3\n")

	_, err := executeCommand(rootCmd, "doc", "lint", path)
	if !errors.Is(err, eku.ErrEmptySet) {
		t.Errorf("error = %v, want ErrEmptySet", err)
	}
}

func TestDocShow_YAMLIsNormalized(t *testing.T) {
	tc := newTestContext(t)
	path := tc.writeFile("session.yaml", sessionDoc)

	out, err := executeCommand(rootCmd, "doc", "show", "--format", "yaml", path)
	assertNoError(t, err)

	doc, err := extdoc.Parse([]byte(out))
	assertNoError(t, err)
	oids := doc.OIDs()
	if len(oids) != 2 || oids[0].String() != "1.3.6.1.5.5.7.3.1" {
		t.Errorf("EKU = %v", oids)
	}
	assertContains(t, out, "0c0568656c6c6f")
}

func TestDocShow_Missing(t *testing.T) {
	tc := newTestContext(t)

	_, err := executeCommand(rootCmd, "doc", "show", tc.path("missing.yaml"))
	assertError(t, err)
}
