package energycal_test

import (
	"errors"
	"math"
	"testing"

	"github.com/joeydtaylor/radqr/pkg/internal/energycal"
)

// TestPolynomialOnly tests plain polynomial evaluation.
func TestPolynomialOnly(t *testing.T) {
	cal, err := energycal.New([]float64{-0.5, 3, 0.001}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got := cal.Energy(100)
	expected := -0.5 + 3*100 + 0.001*100*100
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("Energy mismatch. Expected: %v, Got: %v", expected, got)
	}
}

// TestNoCalibration tests that empty coefficients are rejected.
func TestNoCalibration(t *testing.T) {
	if _, err := energycal.New(nil, nil); !errors.Is(err, energycal.ErrNoCalibration) {
		t.Errorf("Expected ErrNoCalibration, got %v", err)
	}
}

// TestSingleDeviationPair tests the constant offset case.
func TestSingleDeviationPair(t *testing.T) {
	cal, err := energycal.New([]float64{0, 3}, [][2]float64{{661.7, 5}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got := cal.Energy(100)
	if math.Abs(got-305) > 1e-9 {
		t.Errorf("Energy mismatch. Expected: %v, Got: %v", 305.0, got)
	}
}

// TestDeviationPairsAtKnots tests interpolation through the fitted points.
func TestDeviationPairsAtKnots(t *testing.T) {
	pairs := [][2]float64{{0, 0}, {300, 12}, {900, 0}}
	cal, err := energycal.New([]float64{0, 3}, pairs)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Channel 100 puts the polynomial energy exactly on the middle knot.
	got := cal.Energy(100)
	if math.Abs(got-312) > 1e-9 {
		t.Errorf("Energy at knot mismatch. Expected: %v, Got: %v", 312.0, got)
	}

	// Channel 300 lands on the last knot, offset back to zero.
	got = cal.Energy(300)
	if math.Abs(got-900) > 1e-9 {
		t.Errorf("Energy at end knot mismatch. Expected: %v, Got: %v", 900.0, got)
	}
}

// TestDeviationClampOutsideRange tests end-offset holding beyond the pairs.
func TestDeviationClampOutsideRange(t *testing.T) {
	pairs := [][2]float64{{300, 10}, {600, 20}}
	cal, err := energycal.New([]float64{0, 3}, pairs)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// Polynomial energy 30 sits below the first pair, so its offset holds.
	got := cal.Energy(10)
	if math.Abs(got-40) > 1e-9 {
		t.Errorf("Energy below range mismatch. Expected: %v, Got: %v", 40.0, got)
	}

	// Polynomial energy 3000 sits above the last pair.
	got = cal.Energy(1000)
	if math.Abs(got-3020) > 1e-9 {
		t.Errorf("Energy above range mismatch. Expected: %v, Got: %v", 3020.0, got)
	}
}

// TestEnergies tests the per-channel expansion.
func TestEnergies(t *testing.T) {
	cal, err := energycal.New([]float64{1, 2}, nil)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	got := cal.Energies(4)
	expected := []float64{1, 3, 5, 7}
	if len(got) != len(expected) {
		t.Fatalf("Length mismatch. Expected: %v, Got: %v", len(expected), len(got))
	}
	for i := range expected {
		if math.Abs(got[i]-expected[i]) > 1e-9 {
			t.Errorf("Energy %d mismatch. Expected: %v, Got: %v", i, expected[i], got[i])
		}
	}
}
