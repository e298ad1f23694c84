package protocol

import (
	"github.com/joeydtaylor/radqr/pkg/internal/types"
)

// EncoderWithLogger attaches loggers to the encoder.
func EncoderWithLogger(l ...types.Logger) EncoderOption {
	return func(e *Encoder) {
		e.ConnectLogger(l...)
	}
}

// EncoderWithEncodeOptions sets the transform flag nibble stamped into every
// payload header. The zero value enables every transform.
func EncoderWithEncodeOptions(flags types.EncodeOptions) EncoderOption {
	return func(e *Encoder) {
		e.options = flags
	}
}

// EncoderWithRenderer replaces the symbol renderer used for the capacity
// probe. A nil renderer disables probing, so a single spectrum always
// encodes as one part and payload sizes go unchecked.
func EncoderWithRenderer(r types.SymbolRenderer) EncoderOption {
	return func(e *Encoder) {
		e.renderer = r
	}
}

// EncoderWithMinCorrection sets the minimum error-correction level every
// rendered payload must reach.
func EncoderWithMinCorrection(ec types.ErrorCorrection) EncoderOption {
	return func(e *Encoder) {
		e.minCorrection = ec
	}
}

// DecoderWithLogger attaches loggers to the decoder.
func DecoderWithLogger(l ...types.Logger) DecoderOption {
	return func(d *Decoder) {
		d.ConnectLogger(l...)
	}
}
