package protocol

import "errors"

var (
	// ErrNoRecords indicates Encode was called with an empty record set.
	ErrNoRecords = errors.New("protocol: no records to encode")
	// ErrNoPayloads indicates Decode was called with no payload text.
	ErrNoPayloads = errors.New("protocol: no payloads to decode")
	// ErrTooManySpectra indicates a record set larger than one payload can carry.
	ErrTooManySpectra = errors.New("protocol: spectrum count exceeds 10")
	// ErrTooManyParts indicates a split into more parts than there are counts.
	ErrTooManyParts = errors.New("protocol: part count exceeds channel data length")
	// ErrCapacityExceeded indicates no part count up to 9 produced payloads
	// that fit the target symbol.
	ErrCapacityExceeded = errors.New("protocol: payload does not fit any symbol split")
	// ErrUnknownScheme indicates a payload URI with an unrecognized prefix.
	ErrUnknownScheme = errors.New("protocol: unknown uri scheme")
	// ErrMalformedHeader indicates header text that violates the wire format.
	ErrMalformedHeader = errors.New("protocol: malformed header")
	// ErrMissingPart indicates a multi-part set with an absent part index.
	ErrMissingPart = errors.New("protocol: missing part")
	// ErrCrcMismatch indicates reassembled parts whose checksum disagrees
	// with the one embedded in the headers.
	ErrCrcMismatch = errors.New("protocol: crc mismatch")
)
