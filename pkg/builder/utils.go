package builder

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
	"gonum.org/v1/gonum/floats"

	"github.com/joeydtaylor/radqr/pkg/internal/spectrum"
	"github.com/joeydtaylor/radqr/pkg/internal/utils"
)

// Map applies a function to each element in the slice.
func Map[T any](elems []T, f func(T) T) []T {
	return utils.Map[T](elems, f)
}

// Filter returns a new slice holding only the elements of elems that satisfy f().
func Filter[T any](elems []T, f func(T) bool) []T {
	return utils.Filter[T](elems, f)
}

// Contains reports whether slice holds element.
func Contains[T comparable](slice []T, element T) bool {
	return utils.Contains[T](slice, element)
}

// AnalyzeSpectrum summarizes one spectrum: gross counts, live-time count
// rate, the peak channel with its energy when a calibration is present, and
// the power spectrum of the channel histogram for spotting periodic noise.
func AnalyzeSpectrum(rec *spectrum.Record) map[string]interface{} {
	analysis := make(map[string]interface{})
	if rec == nil || len(rec.ChannelData) == 0 {
		return analysis
	}

	counts := make([]float64, len(rec.ChannelData))
	for i, v := range rec.ChannelData {
		counts[i] = float64(v)
	}

	gross := floats.Sum(counts)
	analysis["gross_counts"] = gross
	if rec.LiveTime > 0 {
		analysis["count_rate"] = gross / rec.LiveTime
	}

	peak := floats.MaxIdx(counts)
	analysis["peak_channel"] = peak
	analysis["peak_counts"] = counts[peak]
	if cal, err := CalibrationFromRecord(rec); err == nil {
		analysis["peak_energy"] = cal.Energy(float64(peak))
	}

	transformed := fft.FFTReal(counts)
	power := make([]float64, len(transformed)/2)
	for i := range power {
		magnitude := cmplx.Abs(transformed[i])
		power[i] = magnitude * magnitude
	}
	analysis["power_spectrum"] = power

	return analysis
}
