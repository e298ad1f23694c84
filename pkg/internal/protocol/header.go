package protocol

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/joeydtaylor/radqr/pkg/internal/types"
)

// Payload URIs open with a case-sensitive scheme literal and the protocol
// generation tag, then three hex nibbles and a slash: the options nibble,
// the part count minus one, and either the part index (multi-part sets) or
// the spectrum count minus one (single-part sets). Multi-part sets carry a
// decimal CRC-16 and one more slash before the body.
const (
	// SchemeEmit is the scheme written on every encoded payload.
	SchemeEmit = "RADDATA://"
	// SchemeAccept is the legacy scheme recognized on decode only.
	SchemeAccept = "INTERSPEC://"

	generationTag = "G0/"
)

// Header holds the framing fields parsed from one payload URI.
type Header struct {
	Options types.EncodeOptions
	Parts   int    // total parts in the set, 1..10
	Index   int    // this part's index when Parts > 1, else 0
	Spectra int    // spectrum count when Parts == 1, else 1
	CRC     uint16 // checksum across the set, meaningful when HasCRC
	HasCRC  bool
}

// String renders h in the emit scheme, without a body.
func (h Header) String() string {
	third := h.Index
	if h.Parts == 1 {
		third = h.Spectra - 1
	}
	var b strings.Builder
	b.WriteString(SchemeEmit)
	b.WriteString(generationTag)
	fmt.Fprintf(&b, "%X%X%X/", uint8(h.Options), h.Parts-1, third)
	if h.HasCRC {
		fmt.Fprintf(&b, "%d/", h.CRC)
	}
	return b.String()
}

// ParseHeader splits one payload URI into its header fields and the encoded
// body that follows them.
func ParseHeader(uri string) (Header, string, error) {
	var h Header
	rest := uri
	switch {
	case strings.HasPrefix(rest, SchemeEmit):
		rest = rest[len(SchemeEmit):]
	case strings.HasPrefix(rest, SchemeAccept):
		rest = rest[len(SchemeAccept):]
	default:
		return Header{}, "", fmt.Errorf("%w: %.24q", ErrUnknownScheme, uri)
	}
	if !strings.HasPrefix(rest, generationTag) {
		return Header{}, "", fmt.Errorf("%w: missing generation tag", ErrMalformedHeader)
	}
	rest = rest[len(generationTag):]

	if len(rest) < 4 {
		return Header{}, "", fmt.Errorf("%w: truncated nibbles", ErrMalformedHeader)
	}
	n1, ok1 := hexNibble(rest[0])
	n2, ok2 := hexNibble(rest[1])
	n3, ok3 := hexNibble(rest[2])
	if !ok1 || !ok2 || !ok3 || rest[3] != '/' {
		return Header{}, "", fmt.Errorf("%w: nibbles %q", ErrMalformedHeader, rest[:4])
	}
	rest = rest[4:]

	h.Options = types.EncodeOptions(n1)
	if n2 > 9 {
		return Header{}, "", fmt.Errorf("%w: part count %d exceeds 10", ErrMalformedHeader, n2+1)
	}
	h.Parts = n2 + 1

	if h.Parts > 1 {
		if n3 >= h.Parts {
			return Header{}, "", fmt.Errorf("%w: part index %d outside %d parts", ErrMalformedHeader, n3, h.Parts)
		}
		h.Index = n3
		h.Spectra = 1
		slash := strings.IndexByte(rest, '/')
		if slash <= 0 {
			return Header{}, "", fmt.Errorf("%w: missing crc", ErrMalformedHeader)
		}
		crc, err := strconv.ParseUint(rest[:slash], 10, 16)
		if err != nil {
			return Header{}, "", fmt.Errorf("%w: crc %q", ErrMalformedHeader, rest[:slash])
		}
		h.CRC = uint16(crc)
		h.HasCRC = true
		rest = rest[slash+1:]
	} else {
		if n3 > 9 {
			return Header{}, "", fmt.Errorf("%w: spectrum count %d exceeds 10", ErrMalformedHeader, n3+1)
		}
		h.Spectra = n3 + 1
	}

	return h, rest, nil
}

func hexNibble(c byte) (int, bool) {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0'), true
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10, true
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10, true
	}
	return 0, false
}
