// Package energycal evaluates the energy calibration carried by a
// spectrum record: a polynomial over channel index plus optional
// deviation-pair offsets interpolated over energy.
package energycal

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/interp"
)

var ErrNoCalibration = errors.New("energycal: no calibration coefficients")

// Calibration maps channel index to energy. Immutable once built.
type Calibration struct {
	coeffs []float64

	// offset interpolates deviation over polynomial energy. Outside the
	// fitted range the input is clamped, holding the end offsets.
	offset     interp.Predictor
	minEnergy  float64
	maxEnergy  float64
	flatOffset float64
	hasOffset  bool
}

// New builds a Calibration from polynomial coefficients and optional
// deviation pairs of (energy, deviation).
func New(coeffs []float64, deviationPairs [][2]float64) (*Calibration, error) {
	if len(coeffs) == 0 {
		return nil, ErrNoCalibration
	}

	cal := &Calibration{coeffs: append([]float64(nil), coeffs...)}
	if len(deviationPairs) == 0 {
		return cal, nil
	}

	pairs := append([][2]float64(nil), deviationPairs...)
	sort.Slice(pairs, func(i, j int) bool { return pairs[i][0] < pairs[j][0] })

	xs := make([]float64, 0, len(pairs))
	ys := make([]float64, 0, len(pairs))
	for _, p := range pairs {
		if len(xs) > 0 && p[0] == xs[len(xs)-1] {
			continue
		}
		xs = append(xs, p[0])
		ys = append(ys, p[1])
	}

	cal.hasOffset = true
	cal.minEnergy = xs[0]
	cal.maxEnergy = xs[len(xs)-1]

	if len(xs) == 1 {
		cal.flatOffset = ys[0]
		return cal, nil
	}

	var fitter interp.FittablePredictor
	if len(xs) >= 3 {
		fitter = &interp.AkimaSpline{}
	} else {
		fitter = &interp.PiecewiseLinear{}
	}
	if err := fitter.Fit(xs, ys); err != nil {
		return nil, fmt.Errorf("fit deviation pairs: %w", err)
	}
	cal.offset = fitter
	return cal, nil
}

// Energy returns the calibrated energy of a possibly fractional channel.
func (c *Calibration) Energy(channel float64) float64 {
	e := 0.0
	for i := len(c.coeffs) - 1; i >= 0; i-- {
		e = e*channel + c.coeffs[i]
	}
	if !c.hasOffset {
		return e
	}
	if c.offset == nil {
		return e + c.flatOffset
	}
	x := e
	if x < c.minEnergy {
		x = c.minEnergy
	}
	if x > c.maxEnergy {
		x = c.maxEnergy
	}
	return e + c.offset.Predict(x)
}

// Energies returns the energy of every channel in [0, nchannels).
func (c *Calibration) Energies(nchannels int) []float64 {
	out := make([]float64, nchannels)
	for i := range out {
		out[i] = c.Energy(float64(i))
	}
	return out
}
