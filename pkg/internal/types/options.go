package types

// EncodeOptions is the 4-bit flag set controlling which optional transforms are
// applied to a payload body. The zero value applies every transform: counts are
// zero-run compressed, packed with the binary varint codec, deflated, and
// base-45 encoded. Flags are carried verbatim in the payload header nibble, so
// a decoder recovers them without out-of-band knowledge.
type EncodeOptions uint8

const (
	// OptionNoDeflate skips stream compression of the payload body.
	OptionNoDeflate EncodeOptions = 0x01
	// OptionNoBase45 skips the base-45 text encoding of the body.
	OptionNoBase45 EncodeOptions = 0x02
	// OptionCsvChannelData stores channel counts as comma-separated decimal
	// integers instead of the binary varint blob.
	OptionCsvChannelData EncodeOptions = 0x04
	// OptionNoZeroCompress skips the zero-run transform of the channel counts.
	OptionNoZeroCompress EncodeOptions = 0x08
)

// Has reports whether flag is set.
func (o EncodeOptions) Has(flag EncodeOptions) bool { return o&flag != 0 }

// Valid reports whether o fits the single header nibble.
func (o EncodeOptions) Valid() bool { return o <= 0x0F }
