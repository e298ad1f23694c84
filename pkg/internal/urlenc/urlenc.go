// Package urlenc implements percent encoding for QR payload bodies.
//
// Encode escapes control bytes, high bytes, and a fixed unsafe punctuation
// set as upper-case %XX sequences. EncodeNonBase45 instead escapes every
// character outside the 45-symbol alphabet shared with QR alphanumeric
// mode, so free text stays representable without switching the symbol to
// byte mode. Decode reverses both.
package urlenc

import (
	"errors"
	"fmt"
	"strings"
)

// unsafeSet holds the punctuation escaped by Encode in addition to
// control bytes and bytes >= 0x7F.
const unsafeSet = " $&+,:;=?@'\"<>#%{}|\\^~[]`/"

// alnumSet holds the characters that survive EncodeNonBase45 unescaped.
// It is the RFC 9285 alphabet, which is also the QR alphanumeric charset.
const alnumSet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

const upperHex = "0123456789ABCDEF"

var ErrInvalidEscape = errors.New("urlenc: invalid percent escape")

func isUnsafe(b byte) bool {
	return b <= 0x1F || b >= 0x7F || strings.IndexByte(unsafeSet, b) >= 0
}

// Encode percent-escapes every unsafe byte of data.
func Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow(len(data))
	for _, b := range data {
		if isUnsafe(b) {
			sb.WriteByte('%')
			sb.WriteByte(upperHex[b>>4])
			sb.WriteByte(upperHex[b&0x0F])
			continue
		}
		sb.WriteByte(b)
	}
	return sb.String()
}

// EncodeNonBase45 percent-escapes every byte of s that is not in the
// RFC 9285 alphabet. Since '%' is itself an alphabet character it passes
// through unescaped, so a literal "%41" in s is not distinguishable from
// an escape after decoding.
func EncodeNonBase45(s string) string {
	var sb strings.Builder
	sb.Grow(len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if strings.IndexByte(alnumSet, b) >= 0 {
			sb.WriteByte(b)
			continue
		}
		sb.WriteByte('%')
		sb.WriteByte(upperHex[b>>4])
		sb.WriteByte(upperHex[b&0x0F])
	}
	return sb.String()
}

// Decode resolves %XX escapes in s back to raw bytes. Both hex digit
// cases are accepted. A '%' not followed by two hex digits is an error.
func Decode(s string) ([]byte, error) {
	out := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		b := s[i]
		if b != '%' {
			out = append(out, b)
			continue
		}
		if i+2 >= len(s) {
			return nil, fmt.Errorf("at offset %d: %w", i, ErrInvalidEscape)
		}
		hi, ok1 := hexVal(s[i+1])
		lo, ok2 := hexVal(s[i+2])
		if !ok1 || !ok2 {
			return nil, fmt.Errorf("at offset %d: %w", i, ErrInvalidEscape)
		}
		out = append(out, hi<<4|lo)
		i += 2
	}
	return out, nil
}

func hexVal(b byte) (byte, bool) {
	switch {
	case b >= '0' && b <= '9':
		return b - '0', true
	case b >= 'A' && b <= 'F':
		return b - 'A' + 10, true
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10, true
	default:
		return 0, false
	}
}
