// Package eku holds the purpose list of a custom Extended Key Usage
// extension as an ordered, duplicate-free set of OIDs.
package eku

import (
	"crypto/x509"
	"errors"
	"fmt"
	"slices"
	"sync"

	"github.com/remiblancher/certext/pkg/oid"
)

// ErrEmptySet indicates an attempt to accept a set with no purposes.
var ErrEmptySet = errors.New("extended key usage requires at least one purpose")

// AcceptanceError reports why a set could not be accepted.
type AcceptanceError struct {
	Err error
}

// Error implements the error interface.
func (e *AcceptanceError) Error() string {
	return fmt.Sprintf("extended key usage not accepted: %v", e.Err)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *AcceptanceError) Unwrap() error { return e.Err }

// State is the population state of a Set.
type State int

const (
	StateEmpty State = iota
	StatePopulated
)

// String returns the state name.
func (s State) String() string {
	if s == StatePopulated {
		return "populated"
	}
	return "empty"
}

// Set is an ordered, duplicate-free collection of EKU purpose OIDs.
//
// The content is only ever replaced as a whole by Load; readers always see
// either the previous or the new content. A Set is safe for concurrent use.
type Set struct {
	mu      sync.RWMutex
	members []oid.OID // sorted by oid.Compare, no duplicates
}

// NewSet returns a set holding oids.
func NewSet(oids ...oid.OID) *Set {
	s := &Set{}
	s.Load(oids)
	return s
}

// Load replaces the whole content of the set with oids. Duplicates are
// collapsed on canonical form. The caller may reuse oids afterwards.
//
// Load panics if oids contains the zero OID: every member must come
// from oid.Validate.
func (s *Set) Load(oids []oid.OID) {
	members := normalize(oids)

	s.mu.Lock()
	s.members = members
	s.mu.Unlock()
}

func normalize(oids []oid.OID) []oid.OID {
	if len(oids) == 0 {
		return nil
	}
	members := make([]oid.OID, 0, len(oids))
	for _, o := range oids {
		if o.IsZero() {
			panic("eku: zero OID loaded into set")
		}
		members = append(members, o)
	}
	oid.Sort(members)
	return slices.CompactFunc(members, func(a, b oid.OID) bool {
		return oid.Compare(a, b) == 0
	})
}

// Ordered returns the members in oid.Compare order. The returned slice is
// a copy owned by the caller.
func (s *Set) Ordered() []oid.OID {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.members)
}

// Strings returns the canonical forms of the members in order.
func (s *Set) Strings() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]string, len(s.members))
	for i, o := range s.members {
		out[i] = o.String()
	}
	return out
}

// IsEmpty reports whether the set has no members.
func (s *Set) IsEmpty() bool {
	return s.Len() == 0
}

// Len returns the number of members.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.members)
}

// State returns StateEmpty or StatePopulated.
func (s *Set) State() State {
	if s.IsEmpty() {
		return StateEmpty
	}
	return StatePopulated
}

// Contains reports whether o is a member.
func (s *Set) Contains(o oid.OID) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, found := slices.BinarySearchFunc(s.members, o, oid.Compare)
	return found
}

// Accept returns the ordered members for committing the extension.
// An empty set fails with an *AcceptanceError wrapping ErrEmptySet.
func (s *Set) Accept() ([]oid.OID, error) {
	members := s.Ordered()
	if len(members) == 0 {
		return nil, &AcceptanceError{Err: ErrEmptySet}
	}
	return members, nil
}

var extKeyUsageOIDs = map[x509.ExtKeyUsage]oid.OID{
	x509.ExtKeyUsageAny:                            oid.AnyExtendedKeyUsage,
	x509.ExtKeyUsageServerAuth:                     oid.ServerAuth,
	x509.ExtKeyUsageClientAuth:                     oid.ClientAuth,
	x509.ExtKeyUsageCodeSigning:                    oid.CodeSigning,
	x509.ExtKeyUsageEmailProtection:                oid.EmailProtection,
	x509.ExtKeyUsageIPSECEndSystem:                 oid.IPSECEndSystem,
	x509.ExtKeyUsageIPSECTunnel:                    oid.IPSECTunnel,
	x509.ExtKeyUsageIPSECUser:                      oid.IPSECUser,
	x509.ExtKeyUsageTimeStamping:                   oid.TimeStamping,
	x509.ExtKeyUsageOCSPSigning:                    oid.OCSPSigning,
	x509.ExtKeyUsageMicrosoftServerGatedCrypto:     oid.MicrosoftSGC,
	x509.ExtKeyUsageNetscapeServerGatedCrypto:      oid.NetscapeSGC,
	x509.ExtKeyUsageMicrosoftCommercialCodeSigning: oid.MicrosoftCommercialCodeSigning,
	x509.ExtKeyUsageMicrosoftKernelCodeSigning:     oid.MicrosoftKernelCodeSigning,
}

// FromCertificate collects the extended key usage purposes of cert, both
// the ones Go recognises and the unknown ones, as a Set. It is used to
// pre-populate an edit session from an existing certificate.
func FromCertificate(cert *x509.Certificate) (*Set, error) {
	oids := make([]oid.OID, 0, len(cert.ExtKeyUsage)+len(cert.UnknownExtKeyUsage))
	for _, usage := range cert.ExtKeyUsage {
		o, ok := extKeyUsageOIDs[usage]
		if !ok {
			return nil, fmt.Errorf("unsupported extended key usage %d", usage)
		}
		oids = append(oids, o)
	}
	for _, id := range cert.UnknownExtKeyUsage {
		o, err := oid.FromASN1(id)
		if err != nil {
			return nil, fmt.Errorf("certificate extended key usage: %w", err)
		}
		oids = append(oids, o)
	}
	return NewSet(oids...), nil
}
