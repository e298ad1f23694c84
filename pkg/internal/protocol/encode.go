package protocol

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/joeydtaylor/radqr/pkg/internal/spectrum"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
	"github.com/joeydtaylor/radqr/pkg/internal/zerorun"
)

// EncodedPayload pairs one payload URI with the geometry of the symbol the
// renderer achieved for it. Symbol is zero when no renderer is attached.
type EncodedPayload struct {
	URI    string
	Symbol types.SymbolInfo
}

// Encode frames records into payload URIs. One record may span several
// payloads; several records always share a single payload.
func (e *Encoder) Encode(records []*spectrum.Record) ([]EncodedPayload, error) {
	if len(records) == 0 {
		return nil, ErrNoRecords
	}
	if len(records) > 10 {
		e.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, result: FAILURE, event: Encode => %d records exceed the 10 spectra one payload can carry", e.componentMetadata, len(records))
		return nil, fmt.Errorf("%w: got %d", ErrTooManySpectra, len(records))
	}
	e.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, result: SUCCESS, event: Encode => Encoding %d record(s) with options %04b", e.componentMetadata, len(records), uint8(e.options))
	if len(records) == 1 {
		return e.encodeSingle(records[0])
	}
	return e.encodeMulti(records)
}

// encodeSingle splits one spectrum across the fewest parts whose rendered
// payloads all fit the minimum error-correction level.
func (e *Encoder) encodeSingle(rec *spectrum.Record) ([]EncodedPayload, error) {
	if len(rec.ChannelData) == 0 {
		return nil, fmt.Errorf("channel data: %w", spectrum.ErrMissingField)
	}
	seq := rec.ChannelData
	if !e.options.Has(types.OptionNoZeroCompress) {
		seq = zerorun.Compress(seq)
	}

	for parts := 1; parts <= 9; parts++ {
		bodies, err := e.buildParts(rec, seq, parts)
		if err != nil {
			if errors.Is(err, ErrTooManyParts) {
				break
			}
			return nil, err
		}
		payloads, fits, err := e.assemble(bodies)
		if err != nil {
			return nil, err
		}
		if fits {
			e.NotifyLoggers(types.InfoLevel, "%s => level: INFO, result: SUCCESS, event: Encode => Encoded spectrum into %d part(s)", e.componentMetadata, parts)
			return payloads, nil
		}
	}
	e.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, result: FAILURE, event: Encode => No split up to 9 parts fits at minimum level %s", e.componentMetadata, e.minCorrection)
	return nil, fmt.Errorf("%w: minimum level %s", ErrCapacityExceeded, e.minCorrection)
}

// buildParts slices the count sequence into contiguous, roughly equal
// ranges. Only the first part carries the record's metadata tokens; the
// rest are bare count payloads.
func (e *Encoder) buildParts(rec *spectrum.Record, seq []uint32, parts int) ([][]byte, error) {
	if parts > len(seq) {
		return nil, fmt.Errorf("%w: %d parts over %d counts", ErrTooManyParts, parts, len(seq))
	}
	bodies := make([][]byte, parts)
	base := len(seq) / parts
	for i := 0; i < parts; i++ {
		lo := i * base
		hi := lo + base
		if i == parts-1 {
			hi = len(seq)
		}
		var body []byte
		var err error
		if i == 0 {
			body, err = spectrum.EncodeRecord(rec, seq[lo:hi], e.options)
		} else {
			body, err = spectrum.EncodeCounts(seq[lo:hi], e.options)
		}
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		bodies[i] = body
	}
	return bodies, nil
}

// assemble encodes part bodies into URIs and probes the renderer with each.
// A false fit result means some part overflowed the symbol and the caller
// should try a larger split.
func (e *Encoder) assemble(bodies [][]byte) ([]EncodedPayload, bool, error) {
	parts := len(bodies)
	var crc uint16
	if parts > 1 {
		for _, body := range bodies {
			crc = crcUpdate(crc, body)
		}
	}
	payloads := make([]EncodedPayload, parts)
	for i, body := range bodies {
		text, err := encodeBody(body, e.options)
		if err != nil {
			return nil, false, err
		}
		header := Header{Options: e.options, Parts: parts, Index: i, Spectra: 1, CRC: crc, HasCRC: parts > 1}
		payloads[i] = EncodedPayload{URI: header.String() + text}
		if e.renderer == nil {
			continue
		}
		info, err := e.renderer.Render(payloads[i].URI, e.minCorrection)
		if err != nil {
			e.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, result: SUCCESS, event: Encode => Part %d of %d overflows the symbol, widening the split: %v", e.componentMetadata, i, parts, err)
			return nil, false, nil
		}
		payloads[i].Symbol = info
	}
	return payloads, true, nil
}

// encodeMulti joins up to ten records into one payload, eliding fields that
// repeat the first record's values.
func (e *Encoder) encodeMulti(records []*spectrum.Record) ([]EncodedPayload, error) {
	first := records[0]
	var joined bytes.Buffer
	for k, rec := range records {
		if len(rec.ChannelData) == 0 {
			return nil, fmt.Errorf("record %d channel data: %w", k, spectrum.ErrMissingField)
		}
		out := rec
		if k > 0 {
			joined.WriteString(spectrum.MultiSpectrumDelimiter)
			out = elideShared(rec, first)
		}
		counts := rec.ChannelData
		if !e.options.Has(types.OptionNoZeroCompress) {
			counts = zerorun.Compress(counts)
		}
		body, err := spectrum.EncodeRecord(out, counts, e.options)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", k, err)
		}
		joined.Write(body)
	}

	text, err := encodeBody(joined.Bytes(), e.options)
	if err != nil {
		return nil, err
	}
	header := Header{Options: e.options, Parts: 1, Spectra: len(records)}
	payload := EncodedPayload{URI: header.String() + text}
	if e.renderer != nil {
		info, err := e.renderer.Render(payload.URI, e.minCorrection)
		if err != nil {
			e.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, result: FAILURE, event: Encode => %d spectra overflow a single payload: %v", e.componentMetadata, len(records), err)
			return nil, fmt.Errorf("%w: %d spectra in one payload", ErrCapacityExceeded, len(records))
		}
		payload.Symbol = info
	}
	e.NotifyLoggers(types.InfoLevel, "%s => level: INFO, result: SUCCESS, event: Encode => Encoded %d spectra into one payload", e.componentMetadata, len(records))
	return []EncodedPayload{payload}, nil
}

// elideShared returns a copy of rec with fields cleared wherever they repeat
// the first record, so the record codec omits their tokens.
func elideShared(rec, first *spectrum.Record) *spectrum.Record {
	out := *rec
	if out.DetectorModel == first.DetectorModel {
		out.DetectorModel = ""
	}
	if len(rec.ChannelData) == len(first.ChannelData) && sameCalibration(rec, first) {
		out.EnergyCalCoeffs = nil
		out.DeviationPairs = nil
	}
	if sameLocation(rec, first) {
		out.Latitude = math.NaN()
		out.Longitude = math.NaN()
	}
	if out.Title == first.Title {
		out.Title = ""
	}
	return &out
}

func sameCalibration(a, b *spectrum.Record) bool {
	if len(a.EnergyCalCoeffs) == 0 || len(a.EnergyCalCoeffs) != len(b.EnergyCalCoeffs) {
		return false
	}
	if len(a.DeviationPairs) != len(b.DeviationPairs) {
		return false
	}
	for i, c := range a.EnergyCalCoeffs {
		if c != b.EnergyCalCoeffs[i] {
			return false
		}
	}
	for i, p := range a.DeviationPairs {
		if p != b.DeviationPairs[i] {
			return false
		}
	}
	return true
}

func sameLocation(a, b *spectrum.Record) bool {
	return a.HasLocation() && b.HasLocation() &&
		a.Latitude == b.Latitude && a.Longitude == b.Longitude
}
