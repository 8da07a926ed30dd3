// Package extdoc reads and writes edit-session documents: a YAML file
// describing the custom Extended Key Usage purposes and custom extensions
// to attach to a certificate.
//
//	extKeyUsage:
//	  - 1.3.6.1.5.5.7.3.1
//	customExtensions:
//	  - oid: 1.3.6.1.4.1.99999.1
//	    value: "0c0568656c6c6f"
//	    critical: false
package extdoc

import (
	"errors"
	"fmt"
	"os"
	"slices"

	"gopkg.in/yaml.v3"

	"github.com/remiblancher/certext/pkg/customext"
	"github.com/remiblancher/certext/pkg/eku"
	"github.com/remiblancher/certext/pkg/oid"
)

// Extension is a custom extension together with its criticality.
type Extension struct {
	Value    customext.Value
	Critical bool
}

// Document is a validated edit session.
type Document struct {
	// ExtKeyUsage is nil when the document has no extKeyUsage key.
	ExtKeyUsage *eku.Set

	// Extensions are ordered by identifier.
	Extensions []Extension
}

type documentYAML struct {
	ExtKeyUsage      *[]string       `yaml:"extKeyUsage,omitempty" json:"extKeyUsage,omitempty"`
	CustomExtensions []extensionYAML `yaml:"customExtensions,omitempty" json:"customExtensions,omitempty"`
}

type extensionYAML struct {
	OID      string `yaml:"oid" json:"oid"`
	Value    string `yaml:"value" json:"value"`
	Critical bool   `yaml:"critical,omitempty" json:"critical,omitempty"`
}

// LoadFile reads and parses the document at path.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read document: %w", err)
	}
	doc, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes and validates a YAML document. All entry failures are
// reported together, each as a *FieldError. A present but empty
// extKeyUsage list is rejected the same way eku.Set.Accept rejects it.
func Parse(data []byte) (*Document, error) {
	var raw documentYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return raw.validate()
}

func (raw documentYAML) validate() (*Document, error) {
	var errs []error
	doc := &Document{}

	if raw.ExtKeyUsage != nil {
		oids := make([]oid.OID, 0, len(*raw.ExtKeyUsage))
		for i, s := range *raw.ExtKeyUsage {
			o, err := oid.Validate(s)
			if err != nil {
				errs = append(errs, &FieldError{Field: fmt.Sprintf("extKeyUsage[%d]", i), Value: s, Err: err})
				continue
			}
			oids = append(oids, o)
		}
		doc.ExtKeyUsage = eku.NewSet(oids...)
		if len(*raw.ExtKeyUsage) == 0 {
			_, err := doc.ExtKeyUsage.Accept()
			errs = append(errs, &FieldError{Field: "extKeyUsage", Err: err})
		}
	}

	seen := make(map[oid.OID]int)
	for i, e := range raw.CustomExtensions {
		v, err := customext.Build(e.OID, e.Value)
		if err != nil {
			errs = append(errs, &FieldError{Field: fieldFor(i, err), Value: valueFor(e, err), Err: err})
			continue
		}
		if j, dup := seen[v.OID()]; dup {
			errs = append(errs, &FieldError{
				Field: fmt.Sprintf("customExtensions[%d].oid", i),
				Value: v.OID().String(),
				Err:   fmt.Errorf("%w (also at customExtensions[%d])", ErrDuplicateExtension, j),
			})
			continue
		}
		seen[v.OID()] = i
		doc.Extensions = append(doc.Extensions, Extension{Value: v, Critical: e.Critical})
	}

	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	sortExtensions(doc.Extensions)
	return doc, nil
}

func fieldFor(i int, err error) string {
	if errors.Is(err, customext.ErrInvalidOID) {
		return fmt.Sprintf("customExtensions[%d].oid", i)
	}
	return fmt.Sprintf("customExtensions[%d].value", i)
}

// valueFor never echoes extension values, only identifiers.
func valueFor(e extensionYAML, err error) string {
	if errors.Is(err, customext.ErrInvalidOID) {
		return e.OID
	}
	return ""
}

func sortExtensions(exts []Extension) {
	slices.SortStableFunc(exts, func(a, b Extension) int {
		return oid.Compare(a.Value.OID(), b.Value.OID())
	})
}

// OIDs returns the ordered EKU purposes, or nil when there are none.
func (d *Document) OIDs() []oid.OID {
	if d.ExtKeyUsage == nil {
		return nil
	}
	return d.ExtKeyUsage.Ordered()
}

// Extension returns the custom extension with identifier id.
func (d *Document) Extension(id oid.OID) (Extension, bool) {
	for _, e := range d.Extensions {
		if e.Value.OID().Equal(id) {
			return e, true
		}
	}
	return Extension{}, false
}
