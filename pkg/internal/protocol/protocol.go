// Package protocol frames gamma-ray spectrum records into scannable URI
// payloads and reassembles them from scanned text. It is the top of the
// transport stack: record serialization, zero-run compression, stream
// compression, base-45, and percent encoding all hang off the two components
// defined here.
//
// The Encoder works in one of two mutually exclusive shapes. A single
// spectrum may be split across up to ten payloads, with the channel counts
// sliced into contiguous ranges and a CRC-16 binding the parts to one
// message. Alternatively up to ten spectra may share one payload, with
// fields common to the first record elided from the rest. The part-count
// search asks a QR symbol renderer whether each candidate split fits at the
// requested minimum error-correction level, so payloads always land inside a
// physical symbol.
//
// The Decoder accepts the scanned payloads in any order, keys parts by the
// index carried in each header, verifies the CRC across a multi-part set,
// and back-fills elided fields on multi-spectrum sets.
package protocol

import (
	"sync"

	"github.com/joeydtaylor/radqr/pkg/internal/qrsymbol"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
	"github.com/joeydtaylor/radqr/pkg/internal/utils"
)

// Encoder turns spectrum records into URI payload sets.
type Encoder struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
	loggerCount       int32

	options       types.EncodeOptions
	renderer      types.SymbolRenderer
	minCorrection types.ErrorCorrection
}

// EncoderOption configures an Encoder at construction time.
type EncoderOption func(*Encoder)

// NewEncoder constructs an Encoder with every body transform enabled and the
// default symbol renderer, then applies options.
func NewEncoder(options ...EncoderOption) *Encoder {
	e := &Encoder{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PAYLOAD_ENCODER",
		},
		loggers:       make([]types.Logger, 0),
		renderer:      qrsymbol.NewRenderer(),
		minCorrection: types.ECLow,
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(e)
	}

	return e
}

// Decoder reconstructs spectrum records from scanned URI payloads.
type Decoder struct {
	componentMetadata types.ComponentMetadata
	loggers           []types.Logger
	loggersLock       sync.Mutex
	loggerCount       int32
}

// DecoderOption configures a Decoder at construction time.
type DecoderOption func(*Decoder)

// NewDecoder constructs a Decoder and applies options. Every transform the
// decoder needs is named in each payload header, so there is nothing else to
// configure.
func NewDecoder(options ...DecoderOption) *Decoder {
	d := &Decoder{
		componentMetadata: types.ComponentMetadata{
			ID:   utils.GenerateUniqueHash(),
			Type: "PAYLOAD_DECODER",
		},
		loggers: make([]types.Logger, 0),
	}

	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(d)
	}

	return d
}
