// Package vbyte packs ordered sequences of unsigned 32-bit integers in
// the Stream VByte layout: a little-endian 16-bit count, ceil(N/4)
// control bytes holding four 2-bit length fields each, then every value
// in one to four little-endian bytes as its control field dictates.
package vbyte

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// MaxValues is the largest sequence length the 16-bit count can carry.
const MaxValues = 65535

var (
	ErrTooManyValues = errors.New("vbyte: too many values")
	ErrTruncated     = errors.New("vbyte: truncated input")
)

// Encode packs values into a fresh blob.
func Encode(values []uint32) ([]byte, error) {
	n := len(values)
	if n > MaxValues {
		return nil, fmt.Errorf("%d values: %w", n, ErrTooManyValues)
	}

	controlLen := (n + 3) / 4
	out := make([]byte, 2+controlLen, 2+controlLen+n)
	binary.LittleEndian.PutUint16(out[0:2], uint16(n))

	for i, v := range values {
		field := byteLength(v) - 1
		out[2+i/4] |= byte(field) << ((i % 4) * 2)
		for b := 0; b <= field; b++ {
			out = append(out, byte(v))
			v >>= 8
		}
	}
	return out, nil
}

// Decode unpacks a blob produced by Encode. It returns the values and
// the number of bytes consumed, so callers can locate trailing data
// appended after the blob.
func Decode(data []byte) ([]uint32, int, error) {
	if len(data) < 2 {
		return nil, 0, fmt.Errorf("missing count: %w", ErrTruncated)
	}
	n := int(binary.LittleEndian.Uint16(data[0:2]))

	controlLen := (n + 3) / 4
	if len(data) < 2+controlLen {
		return nil, 0, fmt.Errorf("missing control bytes: %w", ErrTruncated)
	}

	values := make([]uint32, 0, n)
	pos := 2 + controlLen
	for i := 0; i < n; i++ {
		field := int(data[2+i/4]>>((i%4)*2)) & 3
		nbytes := field + 1
		if pos+nbytes > len(data) {
			return nil, 0, fmt.Errorf("value %d: %w", i, ErrTruncated)
		}
		var v uint32
		for b := nbytes - 1; b >= 0; b-- {
			v = v<<8 | uint32(data[pos+b])
		}
		values = append(values, v)
		pos += nbytes
	}
	return values, pos, nil
}

func byteLength(v uint32) int {
	switch {
	case v < 1<<8:
		return 1
	case v < 1<<16:
		return 2
	case v < 1<<24:
		return 3
	default:
		return 4
	}
}
