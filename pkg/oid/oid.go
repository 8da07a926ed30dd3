// Package oid validates, normalizes and orders ASN.1 object identifiers
// given in dotted-decimal text form.
package oid

import (
	"crypto/x509"
	"encoding/asn1"
	"strconv"
	"strings"
)

// OID is a validated object identifier in canonical dotted-decimal form.
//
// Values are only produced by Validate, MustParse and UnmarshalText, so any
// non-zero OID satisfies the arc rules of X.660. The zero value stands for
// an absent identifier.
type OID struct {
	id string
}

// Validate checks input and returns its canonical OID.
//
// Surrounding whitespace is removed. Every arc must be a run of ASCII digits
// without a leading zero (except "0" itself), there must be at least two arcs,
// the first arc must be 0, 1 or 2, and under roots 0 and 1 the second arc
// must not exceed 39. Digits are never rewritten.
func Validate(input string) (OID, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return OID{}, newError(input, -1, ErrEmpty)
	}

	arcs := strings.Split(s, ".")
	for i, arc := range arcs {
		if !wellFormedArc(arc) {
			return OID{}, newError(input, i, ErrMalformedArc)
		}
	}
	if len(arcs) < 2 {
		return OID{}, newError(input, -1, ErrTooFewArcs)
	}

	switch arcs[0] {
	case "0", "1":
		if len(arcs[1]) > 2 {
			return OID{}, newError(input, 1, ErrSecondArcOutOfRange)
		}
		if n, _ := strconv.Atoi(arcs[1]); n > 39 {
			return OID{}, newError(input, 1, ErrSecondArcOutOfRange)
		}
	case "2":
	default:
		return OID{}, newError(input, 0, ErrFirstArcOutOfRange)
	}

	return OID{id: s}, nil
}

// MustParse is like Validate but panics on error.
// It is meant for package-level constants.
func MustParse(s string) OID {
	o, err := Validate(s)
	if err != nil {
		panic(err)
	}
	return o
}

func wellFormedArc(arc string) bool {
	if arc == "" {
		return false
	}
	if len(arc) > 1 && arc[0] == '0' {
		return false
	}
	for i := 0; i < len(arc); i++ {
		if arc[i] < '0' || arc[i] > '9' {
			return false
		}
	}
	return true
}

// String returns the canonical dotted-decimal form, or "" for the zero OID.
func (o OID) String() string { return o.id }

// IsZero reports whether o is the absent identifier.
func (o OID) IsZero() bool { return o.id == "" }

// Equal reports whether o and other have the same canonical form.
func (o OID) Equal(other OID) bool { return Compare(o, other) == 0 }

// Arcs returns the arcs of o as decimal strings.
func (o OID) Arcs() []string {
	if o.id == "" {
		return nil
	}
	return strings.Split(o.id, ".")
}

// ASN1 converts o to an encoding/asn1 identifier.
// Arcs larger than an int fail with ErrArcOverflow.
func (o OID) ASN1() (asn1.ObjectIdentifier, error) {
	if o.IsZero() {
		return nil, newError("", -1, ErrEmpty)
	}
	arcs := o.Arcs()
	out := make(asn1.ObjectIdentifier, len(arcs))
	for i, arc := range arcs {
		n, err := strconv.Atoi(arc)
		if err != nil {
			return nil, newError(o.id, i, ErrArcOverflow)
		}
		out[i] = n
	}
	return out, nil
}

// X509 converts o to an x509.OID, which has no limit on arc size.
func (o OID) X509() (x509.OID, error) {
	if o.IsZero() {
		return x509.OID{}, newError("", -1, ErrEmpty)
	}
	return x509.ParseOID(o.id)
}

// FromASN1 validates an encoding/asn1 identifier.
func FromASN1(id asn1.ObjectIdentifier) (OID, error) {
	return Validate(id.String())
}

// MarshalText implements encoding.TextMarshaler.
func (o OID) MarshalText() ([]byte, error) {
	return []byte(o.id), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The text is validated.
func (o *OID) UnmarshalText(text []byte) error {
	v, err := Validate(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
