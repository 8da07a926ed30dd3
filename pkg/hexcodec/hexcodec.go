// Package hexcodec converts between hexadecimal text and raw bytes with
// strict validation of the input.
package hexcodec

import (
	"encoding/hex"
	"errors"
	"fmt"
	"unicode"
)

// Sentinel errors for hex decoding.
var (
	// ErrOddLength indicates an odd number of hex digits after cleaning.
	ErrOddLength = errors.New("odd number of hex digits")

	// ErrInvalidCharacter indicates a character that is neither a hex digit nor whitespace.
	ErrInvalidCharacter = errors.New("invalid hex character")
)

// Error describes a decoding failure.
type Error struct {
	Pos  int   // Byte offset in the input; for ErrOddLength, the number of digits
	Char rune  // Offending character, zero for ErrOddLength
	Err  error // ErrOddLength or ErrInvalidCharacter
}

// Error implements the error interface.
func (e *Error) Error() string {
	if errors.Is(e.Err, ErrInvalidCharacter) {
		return fmt.Sprintf("%v %q at offset %d", e.Err, e.Char, e.Pos)
	}
	return fmt.Sprintf("%v (%d digits)", e.Err, e.Pos)
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *Error) Unwrap() error { return e.Err }

// Decode parses s as pairs of hex digits, most significant nibble first.
// Upper and lower case digits are accepted. Whitespace is skipped. Any
// other character fails with ErrInvalidCharacter; an odd digit count
// fails with ErrOddLength. No bytes are returned on failure.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s)/2)
	var (
		hi      byte
		pending bool
		digits  int
	)
	for pos, r := range s {
		if unicode.IsSpace(r) {
			continue
		}
		v, ok := nibble(r)
		if !ok {
			return nil, &Error{Pos: pos, Char: r, Err: ErrInvalidCharacter}
		}
		digits++
		if pending {
			out = append(out, hi<<4|v)
			pending = false
		} else {
			hi = v
			pending = true
		}
	}
	if pending {
		return nil, &Error{Pos: digits, Err: ErrOddLength}
	}
	return out, nil
}

// Encode returns b as lower-case hex, two digits per byte, no separators.
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}

// Clean removes whitespace from s, leaving only the characters Decode
// would interpret. It does not validate.
func Clean(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		if !unicode.IsSpace(r) {
			out = append(out, r)
		}
	}
	return string(out)
}

func nibble(r rune) (byte, bool) {
	switch {
	case r >= '0' && r <= '9':
		return byte(r - '0'), true
	case r >= 'a' && r <= 'f':
		return byte(r-'a') + 10, true
	case r >= 'A' && r <= 'F':
		return byte(r-'A') + 10, true
	}
	return 0, false
}
