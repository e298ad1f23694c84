package builder

import (
	"github.com/joeydtaylor/radqr/pkg/internal/energycal"
	"github.com/joeydtaylor/radqr/pkg/internal/spectrum"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
)

// SpectrumRecord is one gamma spectrum with its acquisition metadata.
type SpectrumRecord = spectrum.Record

// SourceType classifies what a spectrum was acquired from.
type SourceType = spectrum.SourceType

const (
	SourceUnknown           = spectrum.SourceUnknown
	SourceForeground        = spectrum.SourceForeground
	SourceBackground        = spectrum.SourceBackground
	SourceCalibration       = spectrum.SourceCalibration
	SourceIntrinsicActivity = spectrum.SourceIntrinsicActivity
)

// NewSpectrumRecord returns a record with every optional field marked absent.
func NewSpectrumRecord() *spectrum.Record {
	return spectrum.NewRecord()
}

// EncodeOptions is the transform flag nibble carried in every payload header.
type EncodeOptions = types.EncodeOptions

const (
	OptionNoDeflate      = types.OptionNoDeflate
	OptionNoBase45       = types.OptionNoBase45
	OptionCsvChannelData = types.OptionCsvChannelData
	OptionNoZeroCompress = types.OptionNoZeroCompress
)

// Calibration maps channel numbers to energies.
type Calibration = energycal.Calibration

// NewCalibration creates an energy calibration from polynomial coefficients
// and deviation pairs.
func NewCalibration(coeffs []float64, deviationPairs [][2]float64) (*energycal.Calibration, error) {
	return energycal.New(coeffs, deviationPairs)
}

// CalibrationFromRecord creates the energy calibration a record carries.
func CalibrationFromRecord(rec *spectrum.Record) (*energycal.Calibration, error) {
	return energycal.New(rec.EnergyCalCoeffs, rec.DeviationPairs)
}
