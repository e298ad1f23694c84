package spectrum

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/joeydtaylor/radqr/pkg/internal/types"
	"github.com/joeydtaylor/radqr/pkg/internal/vbyte"
)

// MultiSpectrumDelimiter separates consecutive records packed into one
// payload body.
const MultiSpectrumDelimiter = ":0A:"

const startTimeLayout = "20060102T150405"

var (
	ErrMissingField   = errors.New("spectrum: missing required field")
	ErrMalformedField = errors.New("spectrum: malformed field")
)

// EncodeRecord serializes rec's metadata tokens followed by the "S:"
// counts payload. The counts argument is the sequence to embed, which
// the caller may already have zero-run compressed or sliced; colons in
// free-text fields are replaced with spaces since they delimit keys.
func EncodeRecord(rec *Record, counts []uint32, opts types.EncodeOptions) ([]byte, error) {
	if len(counts) == 0 {
		return nil, fmt.Errorf("S: %w", ErrMissingField)
	}

	var buf bytes.Buffer

	if letter := rec.SourceType.String(); letter != "" {
		buf.WriteString("I:")
		buf.WriteString(letter)
		buf.WriteByte(' ')
	}

	realTime, liveTime := rec.RealTime, rec.LiveTime
	if realTime <= 0 {
		realTime = liveTime
	}
	if liveTime <= 0 {
		liveTime = realTime
	}
	buf.WriteString("T:")
	buf.WriteString(formatCompact(realTime))
	buf.WriteByte(',')
	buf.WriteString(formatCompact(liveTime))

	if rec.HasCalibration() {
		buf.WriteString(" C:")
		writeFloatList(&buf, rec.EnergyCalCoeffs)
		if len(rec.DeviationPairs) > 0 {
			buf.WriteString(" D:")
			for i, pair := range rec.DeviationPairs {
				if i > 0 {
					buf.WriteByte(',')
				}
				buf.WriteString(formatCompact(pair[0]))
				buf.WriteByte(',')
				buf.WriteString(formatCompact(pair[1]))
			}
		}
	}
	if rec.DetectorModel != "" {
		buf.WriteString(" M:")
		buf.WriteString(stripColons(rec.DetectorModel))
	}
	if rec.HasStartTime() {
		buf.WriteString(" P:")
		buf.WriteString(rec.StartTime.Format(startTimeLayout))
	}
	if rec.HasLocation() {
		buf.WriteString(" G:")
		buf.WriteString(formatCoord(rec.Latitude))
		buf.WriteByte(',')
		buf.WriteString(formatCoord(rec.Longitude))
	}
	if rec.HasNeutronSum() {
		buf.WriteString(" N:")
		buf.WriteString(strconv.FormatInt(rec.NeutronSum, 10))
	}
	if rec.Title != "" {
		buf.WriteString(" O:")
		buf.WriteString(stripColons(rec.Title))
	}

	buf.WriteString(" S:")
	payload, err := EncodeCounts(counts, opts)
	if err != nil {
		return nil, err
	}
	buf.Write(payload)

	return buf.Bytes(), nil
}

// EncodeCounts serializes a counts sequence alone, as the continuation
// parts of a split spectrum carry it.
func EncodeCounts(counts []uint32, opts types.EncodeOptions) ([]byte, error) {
	if opts.Has(types.OptionCsvChannelData) {
		var sb strings.Builder
		for i, v := range counts {
			if i > 0 {
				sb.WriteByte(',')
			}
			sb.WriteString(strconv.FormatUint(uint64(v), 10))
		}
		return []byte(sb.String()), nil
	}
	return vbyte.Encode(counts)
}

// ParseRecord parses one record from data and returns it together with
// the unconsumed remainder, which begins with MultiSpectrumDelimiter
// when another record follows. The returned ChannelData holds the raw
// embedded sequence; zero-run expansion is the caller's concern.
//
// Key order is not assumed. T and S are mandatory; on duplicate keys the
// first occurrence wins; unknown single-letter keys are ignored.
func ParseRecord(data []byte, opts types.EncodeOptions) (*Record, []byte, error) {
	meta, payload, err := splitCounts(data)
	if err != nil {
		return nil, nil, err
	}

	rec := NewRecord()
	sawT := false
	seen := make(map[byte]bool)

	for _, tok := range metaTokens(meta) {
		if len(tok) < 2 || tok[1] != ':' {
			continue
		}
		key := tok[0]
		if seen[key] {
			continue
		}
		seen[key] = true
		value := string(tok[2:])

		switch key {
		case 'I':
			if value == "" {
				return nil, nil, fmt.Errorf("I token: %w", ErrMalformedField)
			}
			rec.SourceType = sourceFromLetter(value[0])
		case 'T':
			realTime, liveTime, err := parseTimePair(value)
			if err != nil {
				return nil, nil, err
			}
			rec.RealTime, rec.LiveTime = realTime, liveTime
			sawT = true
		case 'C':
			coeffs, err := parseFloatList(value)
			if err != nil {
				return nil, nil, fmt.Errorf("C token: %w", err)
			}
			rec.EnergyCalCoeffs = coeffs
		case 'D':
			flat, err := parseFloatList(value)
			if err != nil || len(flat)%2 != 0 {
				return nil, nil, fmt.Errorf("D token: %w", ErrMalformedField)
			}
			pairs := make([][2]float64, len(flat)/2)
			for i := range pairs {
				pairs[i] = [2]float64{flat[2*i], flat[2*i+1]}
			}
			rec.DeviationPairs = pairs
		case 'M':
			rec.DetectorModel = value
		case 'P':
			start, err := parseStartTime(value)
			if err != nil {
				return nil, nil, fmt.Errorf("P token %q: %w", value, ErrMalformedField)
			}
			rec.StartTime = start
		case 'G':
			coords, err := parseFloatList(value)
			if err != nil || len(coords) != 2 {
				return nil, nil, fmt.Errorf("G token: %w", ErrMalformedField)
			}
			rec.Latitude, rec.Longitude = coords[0], coords[1]
		case 'N':
			sum, err := strconv.ParseInt(value, 10, 64)
			if err != nil || sum < 0 {
				return nil, nil, fmt.Errorf("N token: %w", ErrMalformedField)
			}
			rec.NeutronSum = sum
		case 'O':
			rec.Title = value
		}
	}

	if !sawT {
		return nil, nil, fmt.Errorf("T: %w", ErrMissingField)
	}

	counts, rest, err := DecodeCounts(payload, opts)
	if err != nil {
		return nil, nil, err
	}
	rec.ChannelData = counts
	return rec, rest, nil
}

// DecodeCounts parses a bare counts payload and returns the sequence
// plus the unconsumed remainder. CSV payloads extend to the next
// MultiSpectrumDelimiter or end of input; vbyte payloads extend exactly
// as far as the blob reports consuming.
func DecodeCounts(payload []byte, opts types.EncodeOptions) ([]uint32, []byte, error) {
	if opts.Has(types.OptionCsvChannelData) {
		csv := payload
		var rest []byte
		if end := bytes.Index(payload, []byte(MultiSpectrumDelimiter)); end >= 0 {
			csv = payload[:end]
			rest = payload[end:]
		}
		values, err := parseCountList(string(csv))
		if err != nil {
			return nil, nil, err
		}
		return values, rest, nil
	}

	values, consumed, err := vbyte.Decode(payload)
	if err != nil {
		return nil, nil, err
	}
	if len(values) == 0 {
		return nil, nil, fmt.Errorf("empty counts: %w", ErrMalformedField)
	}
	return values, payload[consumed:], nil
}

func splitCounts(data []byte) (meta, payload []byte, err error) {
	if idx := bytes.Index(data, []byte(" S:")); idx >= 0 {
		return data[:idx], data[idx+3:], nil
	}
	if bytes.HasPrefix(data, []byte("S:")) {
		return nil, data[2:], nil
	}
	return nil, nil, fmt.Errorf("S: %w", ErrMissingField)
}

// metaTokens splits the metadata region at every "space, upper-case
// ASCII letter, colon" boundary. Keys are required to be single capital
// letters; free text containing that pattern cannot be represented.
func metaTokens(meta []byte) [][]byte {
	var tokens [][]byte
	start := 0
	for i := 0; i+2 < len(meta); i++ {
		if meta[i] == ' ' && meta[i+1] >= 'A' && meta[i+1] <= 'Z' && meta[i+2] == ':' {
			if i > start {
				tokens = append(tokens, meta[start:i])
			}
			start = i + 1
		}
	}
	if start < len(meta) {
		tokens = append(tokens, meta[start:])
	}
	return tokens
}

func parseTimePair(value string) (realTime, liveTime float64, err error) {
	parts := strings.Split(value, ",")
	switch len(parts) {
	case 1:
		v, err := strconv.ParseFloat(parts[0], 64)
		if err != nil {
			return 0, 0, fmt.Errorf("T token: %w", ErrMalformedField)
		}
		return v, v, nil
	case 2:
		r, err1 := strconv.ParseFloat(parts[0], 64)
		l, err2 := strconv.ParseFloat(parts[1], 64)
		if err1 != nil || err2 != nil {
			return 0, 0, fmt.Errorf("T token: %w", ErrMalformedField)
		}
		return r, l, nil
	default:
		return 0, 0, fmt.Errorf("T token: %w", ErrMalformedField)
	}
}

func parseStartTime(value string) (time.Time, error) {
	for _, layout := range []string{startTimeLayout, "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized time %q", value)
}

func parseFloatList(value string) ([]float64, error) {
	if value == "" {
		return nil, ErrMalformedField
	}
	parts := strings.Split(value, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, ErrMalformedField
		}
		out[i] = v
	}
	return out, nil
}

func parseCountList(value string) ([]uint32, error) {
	if value == "" {
		return nil, fmt.Errorf("empty counts: %w", ErrMalformedField)
	}
	parts := strings.Split(value, ",")
	out := make([]uint32, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseUint(p, 10, 32)
		if err != nil {
			return nil, fmt.Errorf("count %d: %w", i, ErrMalformedField)
		}
		out[i] = uint32(v)
	}
	return out, nil
}

func writeFloatList(buf *bytes.Buffer, values []float64) {
	for i, v := range values {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(formatCompact(v))
	}
}

// formatCompact renders floats in the shortest form that survives a
// round trip at float32 precision, keeping record text small.
func formatCompact(v float64) string {
	return strconv.FormatFloat(v, 'G', -1, 32)
}

// formatCoord keeps seven significant digits, roughly metre resolution.
func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'G', 7, 64)
}

func stripColons(s string) string {
	return strings.ReplaceAll(s, ":", " ")
}
