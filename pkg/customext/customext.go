// Package customext models one arbitrary certificate extension: an
// identifier paired with an opaque value.
package customext

import (
	"bytes"
	"crypto/x509/pkix"
	"fmt"
	"strings"

	"github.com/remiblancher/certext/pkg/hexcodec"
	"github.com/remiblancher/certext/pkg/oid"
)

// Value is an immutable (OID, bytes) pair. The bytes are usually the
// DER-encoded extension value and are never interpreted here.
//
// Values come from Build or New; the zero Value is incomplete.
type Value struct {
	id    oid.OID
	value []byte
}

// Build validates oidInput and decodes hexInput into a Value.
//
// The identifier is checked first. A hex input with no digits (empty or
// only whitespace) fails with ErrMissingValue rather than yielding an empty
// value.
func Build(oidInput, hexInput string) (Value, error) {
	id, err := oid.Validate(oidInput)
	if err != nil {
		return Value{}, &BuildError{Kind: KindInvalidOID, Err: err}
	}

	if strings.TrimSpace(hexInput) == "" {
		return Value{}, &BuildError{Kind: KindMissingValue}
	}
	value, err := hexcodec.Decode(hexInput)
	if err != nil {
		return Value{}, &BuildError{Kind: KindInvalidValue, Err: err}
	}

	return Value{id: id, value: value}, nil
}

// New pairs an already validated identifier with an existing value, for
// editing an extension taken from a certificate. value is copied.
func New(id oid.OID, value []byte) (Value, error) {
	if id.IsZero() {
		return Value{}, &BuildError{Kind: KindInvalidOID, Err: oid.ErrEmpty}
	}
	if len(value) == 0 {
		return Value{}, &BuildError{Kind: KindMissingValue}
	}
	return Value{id: id, value: bytes.Clone(value)}, nil
}

// OID returns the extension identifier.
func (v Value) OID() oid.OID { return v.id }

// Bytes returns a copy of the extension value.
func (v Value) Bytes() []byte { return bytes.Clone(v.value) }

// Hex returns the value as lower-case hex.
func (v Value) Hex() string { return hexcodec.Encode(v.value) }

// Len returns the value length in bytes.
func (v Value) Len() int { return len(v.value) }

// IsComplete reports whether both the identifier and the value are set.
// Incomplete values must not be used as output.
func (v Value) IsComplete() bool {
	return !v.id.IsZero() && len(v.value) > 0
}

// Equal reports whether v and other have the same identifier and value.
func (v Value) Equal(other Value) bool {
	return v.id.Equal(other.id) && bytes.Equal(v.value, other.value)
}

// String returns "oid=hex".
func (v Value) String() string {
	return fmt.Sprintf("%s=%s", v.id, v.Hex())
}

// Extension hands the value to certificate-building code as a
// pkix.Extension. The value bytes are copied verbatim into Value.
func (v Value) Extension(critical bool) (pkix.Extension, error) {
	if _, err := New(v.id, v.value); err != nil {
		return pkix.Extension{}, err
	}
	id, err := v.id.ASN1()
	if err != nil {
		return pkix.Extension{}, &BuildError{Kind: KindInvalidOID, Err: err}
	}
	return pkix.Extension{Id: id, Critical: critical, Value: v.Bytes()}, nil
}
