// Package base45 implements the RFC 9285 byte to text codec.
//
// Two input bytes become three alphabet characters and a trailing single
// byte becomes two, so encoded text fits the QR alphanumeric character
// set exactly. Decode is strict about length and value ranges but accepts
// lower-case letters for the alphabet's upper-case ones.
package base45

import (
	"errors"
	"fmt"
	"strings"
)

// Alphabet is the RFC 9285 character set, indexed by digit value.
const Alphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ $%*+-./:"

var (
	ErrInvalidLength    = errors.New("base45: invalid length")
	ErrInvalidCharacter = errors.New("base45: invalid character")
	ErrValueOverflow    = errors.New("base45: value overflow")
)

var decodeVals = makeDecodeTable()

func makeDecodeTable() [256]int16 {
	var table [256]int16
	for i := range table {
		table[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		ch := Alphabet[i]
		table[ch] = int16(i)
		if ch >= 'A' && ch <= 'Z' {
			table[ch+('a'-'A')] = int16(i)
		}
	}
	return table
}

// Encode converts data to base45 text.
func Encode(data []byte) string {
	var sb strings.Builder
	sb.Grow((len(data)/2)*3 + (len(data)%2)*2)

	for i := 0; i+1 < len(data); i += 2 {
		n := uint32(data[i])<<8 | uint32(data[i+1])
		sb.WriteByte(Alphabet[n%45])
		sb.WriteByte(Alphabet[(n/45)%45])
		sb.WriteByte(Alphabet[n/2025])
	}
	if len(data)%2 == 1 {
		a := data[len(data)-1]
		sb.WriteByte(Alphabet[a%45])
		sb.WriteByte(Alphabet[a/45])
	}
	return sb.String()
}

// Decode converts base45 text back to bytes.
func Decode(s string) ([]byte, error) {
	if rem := len(s) % 3; rem != 0 && rem != 2 {
		return nil, fmt.Errorf("length %d: %w", len(s), ErrInvalidLength)
	}

	out := make([]byte, 0, (len(s)/3)*2+1)
	for i := 0; i+2 < len(s); i += 3 {
		c, d, e := decodeVals[s[i]], decodeVals[s[i+1]], decodeVals[s[i+2]]
		if c < 0 || d < 0 || e < 0 {
			return nil, fmt.Errorf("at offset %d: %w", i, ErrInvalidCharacter)
		}
		n := uint32(c) + 45*uint32(d) + 2025*uint32(e)
		if n >= 65536 {
			return nil, fmt.Errorf("at offset %d: %w", i, ErrValueOverflow)
		}
		out = append(out, byte(n>>8), byte(n&0xFF))
	}
	if len(s)%3 == 2 {
		i := len(s) - 2
		c, d := decodeVals[s[i]], decodeVals[s[i+1]]
		if c < 0 || d < 0 {
			return nil, fmt.Errorf("at offset %d: %w", i, ErrInvalidCharacter)
		}
		n := uint32(c) + 45*uint32(d)
		if n > 255 {
			return nil, fmt.Errorf("at offset %d: %w", i, ErrValueOverflow)
		}
		out = append(out, byte(n))
	}
	return out, nil
}
