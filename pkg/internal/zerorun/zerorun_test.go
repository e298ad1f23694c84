package zerorun_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/joeydtaylor/radqr/pkg/internal/zerorun"
)

// TestCompressKnownSequences tests marker and run length emission.
func TestCompressKnownSequences(t *testing.T) {
	cases := []struct {
		in       []uint32
		expected []uint32
	}{
		{[]uint32{5, 7, 9}, []uint32{5, 7, 9}},
		{[]uint32{0}, []uint32{0, 1}},
		{[]uint32{0, 0, 0, 4}, []uint32{0, 3, 4}},
		{[]uint32{4, 0, 0, 0}, []uint32{4, 0, 3}},
		{[]uint32{0, 0, 2, 0, 0, 0, 3}, []uint32{0, 2, 2, 0, 3, 3}},
	}

	for _, c := range cases {
		got := zerorun.Compress(c.in)
		if !reflect.DeepEqual(got, c.expected) {
			t.Errorf("Compress(%v) mismatch. Expected: %v, Got: %v", c.in, c.expected, got)
		}
	}
}

// TestRoundTrip tests expand(compress(v)) == v.
func TestRoundTrip(t *testing.T) {
	long := make([]uint32, 2048)
	long[0] = 12
	long[700] = 3
	long[2047] = 1

	cases := [][]uint32{
		{},
		{0},
		{0, 0, 0, 0, 0},
		{1, 2, 3},
		{0, 6, 38, 108, 0, 0, 0, 0, 12, 0, 1},
		long,
	}

	for _, in := range cases {
		expanded, err := zerorun.Expand(zerorun.Compress(in))
		if err != nil {
			t.Fatalf("Expand error for input of length %d: %v", len(in), err)
		}
		if len(expanded) != len(in) {
			t.Fatalf("Length mismatch. Expected: %v, Got: %v", len(in), len(expanded))
		}
		for i := range in {
			if expanded[i] != in[i] {
				t.Errorf("Value %d mismatch. Expected: %v, Got: %v", i, in[i], expanded[i])
			}
		}
	}
}

// TestExpandTrailingZeroLiteral tests that a final zero is not a marker.
func TestExpandTrailingZeroLiteral(t *testing.T) {
	got, err := zerorun.Expand([]uint32{7, 0})
	if err != nil {
		t.Fatalf("Expand error: %v", err)
	}
	if !reflect.DeepEqual(got, []uint32{7, 0}) {
		t.Errorf("Expected trailing zero to pass through, got %v", got)
	}
}

// TestExpandInvalidRunLength tests the zero run length error.
func TestExpandInvalidRunLength(t *testing.T) {
	if _, err := zerorun.Expand([]uint32{5, 0, 0, 9}); !errors.Is(err, zerorun.ErrInvalidRunLength) {
		t.Errorf("Expected ErrInvalidRunLength, got %v", err)
	}
}

// TestExpandTooLarge tests the expansion length bound.
func TestExpandTooLarge(t *testing.T) {
	if _, err := zerorun.Expand([]uint32{0, zerorun.MaxExpandedLength + 1}); !errors.Is(err, zerorun.ErrExpansionTooLarge) {
		t.Errorf("Expected ErrExpansionTooLarge, got %v", err)
	}

	// Exactly at the bound succeeds.
	got, err := zerorun.Expand([]uint32{0, zerorun.MaxExpandedLength})
	if err != nil {
		t.Fatalf("Expand error at bound: %v", err)
	}
	if len(got) != zerorun.MaxExpandedLength {
		t.Errorf("Expected %d zeros, got %d", zerorun.MaxExpandedLength, len(got))
	}
}
