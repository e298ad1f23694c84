// Package zerorun run-length encodes the long stretches of zero counts
// common in gamma spectra. A zero in the compressed stream is a marker
// whose next element holds the run length; every other value passes
// through untouched.
package zerorun

import (
	"errors"
	"fmt"
)

// MaxExpandedLength bounds Expand output so a hostile run length cannot
// balloon memory. It is far above any real spectrum's channel count.
const MaxExpandedLength = 131072

var (
	ErrInvalidRunLength  = errors.New("zerorun: invalid run length")
	ErrExpansionTooLarge = errors.New("zerorun: expansion too large")
)

// Compress collapses each run of zeros in values to a zero marker
// followed by the run length.
func Compress(values []uint32) []uint32 {
	out := make([]uint32, 0, len(values))
	for i := 0; i < len(values); {
		if values[i] != 0 {
			out = append(out, values[i])
			i++
			continue
		}
		run := uint32(0)
		for i < len(values) && values[i] == 0 {
			run++
			i++
		}
		out = append(out, 0, run)
	}
	return out
}

// Expand reverses Compress. A zero anywhere but the final position is a
// run marker; a trailing zero with no room for a length passes through
// as a literal.
func Expand(values []uint32) ([]uint32, error) {
	out := make([]uint32, 0, len(values))
	for i := 0; i < len(values); i++ {
		if values[i] != 0 || i == len(values)-1 {
			out = append(out, values[i])
			continue
		}
		i++
		run := values[i]
		if run == 0 {
			return nil, fmt.Errorf("at index %d: %w", i, ErrInvalidRunLength)
		}
		if len(out)+int(run) > MaxExpandedLength {
			return nil, fmt.Errorf("at index %d: %w", i, ErrExpansionTooLarge)
		}
		for ; run > 0; run-- {
			out = append(out, 0)
		}
	}
	return out, nil
}
