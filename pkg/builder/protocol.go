package builder

import (
	"github.com/joeydtaylor/radqr/pkg/internal/protocol"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
)

// EncodedPayload pairs one payload URI with the symbol geometry the renderer
// achieved for it.
type EncodedPayload = protocol.EncodedPayload

// Header holds the framing fields parsed from one payload URI.
type Header = protocol.Header

// NewEncoder creates a new payload encoder with the provided configuration options.
func NewEncoder(options ...protocol.EncoderOption) *protocol.Encoder {
	return protocol.NewEncoder(options...)
}

// EncoderWithLogger adds one or more loggers to the encoder.
func EncoderWithLogger(logger ...types.Logger) protocol.EncoderOption {
	return protocol.EncoderWithLogger(logger...)
}

// EncoderWithEncodeOptions sets the transform flag nibble stamped into every
// payload header.
func EncoderWithEncodeOptions(flags EncodeOptions) protocol.EncoderOption {
	return protocol.EncoderWithEncodeOptions(flags)
}

// EncoderWithRenderer replaces the QR symbol renderer consulted during the
// part-count search.
func EncoderWithRenderer(r types.SymbolRenderer) protocol.EncoderOption {
	return protocol.EncoderWithRenderer(r)
}

// EncoderWithMinCorrection sets the minimum error-correction level every
// rendered payload must reach.
func EncoderWithMinCorrection(ec ErrorCorrection) protocol.EncoderOption {
	return protocol.EncoderWithMinCorrection(ec)
}

// NewDecoder creates a new payload decoder with the provided configuration options.
func NewDecoder(options ...protocol.DecoderOption) *protocol.Decoder {
	return protocol.NewDecoder(options...)
}

// DecoderWithLogger adds one or more loggers to the decoder.
func DecoderWithLogger(logger ...types.Logger) protocol.DecoderOption {
	return protocol.DecoderWithLogger(logger...)
}

// ParseHeader splits one payload URI into its header fields and the encoded
// body that follows them.
func ParseHeader(uri string) (Header, string, error) {
	return protocol.ParseHeader(uri)
}

// Checksum returns the CRC-16 that binds the parts of a multi-part set.
func Checksum(data []byte) uint16 {
	return protocol.Checksum(data)
}
