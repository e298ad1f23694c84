// Package spectrum serializes one gamma spectrum's metadata and channel
// counts to and from the single-record wire text used inside QR payload
// bodies.
//
// A record is a run of space-separated KEY:VALUE tokens in a fixed key
// order followed by the counts payload, which the final "S:" token
// carries either as comma-separated decimals or as a packed vbyte blob.
// Absent optional fields are omitted entirely.
package spectrum

import (
	"math"
	"time"
)

// SourceType classifies what a spectrum was acquired from.
type SourceType int

const (
	SourceUnknown SourceType = iota
	SourceForeground
	SourceBackground
	SourceCalibration
	SourceIntrinsicActivity
)

// String returns the single-letter wire form, or "" for SourceUnknown.
func (s SourceType) String() string {
	switch s {
	case SourceForeground:
		return "F"
	case SourceBackground:
		return "B"
	case SourceCalibration:
		return "C"
	case SourceIntrinsicActivity:
		return "I"
	default:
		return ""
	}
}

func sourceFromLetter(b byte) SourceType {
	switch b {
	case 'F':
		return SourceForeground
	case 'B':
		return SourceBackground
	case 'C':
		return SourceCalibration
	case 'I':
		return SourceIntrinsicActivity
	default:
		return SourceUnknown
	}
}

// Record is one spectrum. Optional fields use in-band absence markers:
// NaN coordinates, a negative neutron sum, and a zero start time.
type Record struct {
	SourceType      SourceType
	EnergyCalCoeffs []float64
	DeviationPairs  [][2]float64
	DetectorModel   string
	Title           string
	StartTime       time.Time
	Latitude        float64
	Longitude       float64
	NeutronSum      int64
	LiveTime        float64
	RealTime        float64
	ChannelData     []uint32
}

// NewRecord returns a Record with every optional field marked absent.
func NewRecord() *Record {
	return &Record{
		Latitude:   math.NaN(),
		Longitude:  math.NaN(),
		NeutronSum: -1,
	}
}

// HasCalibration reports whether energy calibration coefficients are set.
func (r *Record) HasCalibration() bool {
	return len(r.EnergyCalCoeffs) > 0
}

// HasLocation reports whether both coordinates are present and in range.
func (r *Record) HasLocation() bool {
	return !math.IsNaN(r.Latitude) && !math.IsNaN(r.Longitude) &&
		math.Abs(r.Latitude) <= 90 && math.Abs(r.Longitude) <= 180
}

// HasNeutronSum reports whether a neutron count sum is present.
func (r *Record) HasNeutronSum() bool {
	return r.NeutronSum >= 0
}

// HasStartTime reports whether an acquisition start time is present.
func (r *Record) HasStartTime() bool {
	return !r.StartTime.IsZero()
}
