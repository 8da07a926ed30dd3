package oid

import (
	"slices"
	"unicode"
	"unicode/utf8"
)

// Compare orders OIDs by case-insensitive comparison of their canonical
// strings. It returns -1, 0 or +1.
//
// Arcs are compared as text, not numerically: "2.10" sorts before "2.2".
// Display and serialized output depend on this exact order.
// The zero OID sorts before every other OID.
func Compare(a, b OID) int {
	return compareFold(a.id, b.id)
}

// CompareNullable is Compare for optional OIDs. A nil OID sorts first.
func CompareNullable(a, b *OID) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}
	return Compare(*a, *b)
}

// Sort sorts oids in place in Compare order.
func Sort(oids []OID) {
	slices.SortStableFunc(oids, Compare)
}

// Sorted returns a sorted copy of oids.
func Sorted(oids []OID) []OID {
	out := slices.Clone(oids)
	Sort(out)
	return out
}

// compareFold compares rune by rune after folding each rune to upper and
// then lower case, then falls back to length.
func compareFold(a, b string) int {
	for a != "" && b != "" {
		ra, na := utf8.DecodeRuneInString(a)
		rb, nb := utf8.DecodeRuneInString(b)
		a, b = a[na:], b[nb:]
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToUpper(ra), unicode.ToUpper(rb)
		if ra == rb {
			continue
		}
		ra, rb = unicode.ToLower(ra), unicode.ToLower(rb)
		if ra != rb {
			if ra < rb {
				return -1
			}
			return 1
		}
	}
	switch {
	case a == "" && b == "":
		return 0
	case a == "":
		return -1
	default:
		return 1
	}
}
