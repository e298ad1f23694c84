package protocol

import (
	"bytes"
	"fmt"

	"github.com/joeydtaylor/radqr/pkg/internal/spectrum"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
	"github.com/joeydtaylor/radqr/pkg/internal/zerorun"
)

// Decode reassembles spectrum records from scanned payload URIs. Parts may
// arrive in any order; each lands at the index its own header names. Every
// payload must belong to the same set: options, part count, spectrum count,
// and CRC have to agree across all of them.
func (d *Decoder) Decode(uris []string) ([]*spectrum.Record, error) {
	if len(uris) == 0 {
		return nil, ErrNoPayloads
	}

	ref, _, err := ParseHeader(uris[0])
	if err != nil {
		return nil, err
	}
	d.NotifyLoggers(types.DebugLevel, "%s => level: DEBUG, result: SUCCESS, event: Decode => Decoding %d payload(s), %d part(s) declared, options %04b", d.componentMetadata, len(uris), ref.Parts, uint8(ref.Options))

	bodies := make([]string, ref.Parts)
	seen := make([]bool, ref.Parts)
	for _, uri := range uris {
		h, body, err := ParseHeader(uri)
		if err != nil {
			return nil, err
		}
		if h.Options != ref.Options || h.Parts != ref.Parts || h.Spectra != ref.Spectra ||
			h.HasCRC != ref.HasCRC || h.CRC != ref.CRC {
			d.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, result: FAILURE, event: Decode => Payload headers disagree, parts belong to different sets", d.componentMetadata)
			return nil, fmt.Errorf("%w: payloads from different sets", ErrMalformedHeader)
		}
		if seen[h.Index] && bodies[h.Index] != body {
			return nil, fmt.Errorf("%w: conflicting bodies for part %d", ErrMalformedHeader, h.Index)
		}
		bodies[h.Index] = body
		seen[h.Index] = true
	}
	for i, ok := range seen {
		if !ok {
			d.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, result: FAILURE, event: Decode => Part %d of %d was never supplied", d.componentMetadata, i, ref.Parts)
			return nil, fmt.Errorf("%w: part %d of %d", ErrMissingPart, i, ref.Parts)
		}
	}

	decoded := make([][]byte, ref.Parts)
	for i, body := range bodies {
		blob, err := decodeBody(body, ref.Options)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		decoded[i] = blob
	}

	if ref.Parts > 1 {
		rec, err := d.reassembleParts(decoded, ref)
		if err != nil {
			return nil, err
		}
		d.NotifyLoggers(types.InfoLevel, "%s => level: INFO, result: SUCCESS, event: Decode => Reassembled %d part(s) into one spectrum of %d channels", d.componentMetadata, ref.Parts, len(rec.ChannelData))
		return []*spectrum.Record{rec}, nil
	}

	records, err := d.splitSpectra(decoded[0], ref)
	if err != nil {
		return nil, err
	}
	d.NotifyLoggers(types.InfoLevel, "%s => level: INFO, result: SUCCESS, event: Decode => Decoded %d spectrum record(s) from one payload", d.componentMetadata, len(records))
	return records, nil
}

// reassembleParts verifies the CRC across all decoded part bodies, parses
// the record from part 0, and splices the bare count payloads of the later
// parts onto it before zero-run expansion.
func (d *Decoder) reassembleParts(decoded [][]byte, ref Header) (*spectrum.Record, error) {
	var crc uint16
	for _, blob := range decoded {
		crc = crcUpdate(crc, blob)
	}
	if crc != ref.CRC {
		d.NotifyLoggers(types.ErrorLevel, "%s => level: ERROR, result: FAILURE, event: Decode => CRC mismatch, header %d against computed %d", d.componentMetadata, ref.CRC, crc)
		return nil, fmt.Errorf("%w: header %d, computed %d", ErrCrcMismatch, ref.CRC, crc)
	}

	rec, rest, err := spectrum.ParseRecord(decoded[0], ref.Options)
	if err != nil {
		return nil, fmt.Errorf("part 0: %w", err)
	}
	if len(rest) != 0 {
		return nil, fmt.Errorf("part 0: %d trailing bytes: %w", len(rest), spectrum.ErrMalformedField)
	}

	seq := rec.ChannelData
	for i := 1; i < len(decoded); i++ {
		values, rest, err := spectrum.DecodeCounts(decoded[i], ref.Options)
		if err != nil {
			return nil, fmt.Errorf("part %d: %w", i, err)
		}
		if len(rest) != 0 {
			return nil, fmt.Errorf("part %d: %d trailing bytes: %w", i, len(rest), spectrum.ErrMalformedField)
		}
		seq = append(seq, values...)
	}

	if !ref.Options.Has(types.OptionNoZeroCompress) {
		expanded, err := zerorun.Expand(seq)
		if err != nil {
			return nil, fmt.Errorf("expand counts: %w", err)
		}
		seq = expanded
	}
	rec.ChannelData = seq
	return rec, nil
}

// splitSpectra parses the declared number of records out of one decoded
// body, then back-fills fields the encoder elided from records after the
// first.
func (d *Decoder) splitSpectra(blob []byte, ref Header) ([]*spectrum.Record, error) {
	records := make([]*spectrum.Record, 0, ref.Spectra)
	data := blob
	for k := 0; k < ref.Spectra; k++ {
		rec, rest, err := spectrum.ParseRecord(data, ref.Options)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", k, err)
		}
		if !ref.Options.Has(types.OptionNoZeroCompress) {
			expanded, err := zerorun.Expand(rec.ChannelData)
			if err != nil {
				return nil, fmt.Errorf("record %d: expand counts: %w", k, err)
			}
			rec.ChannelData = expanded
		}
		records = append(records, rec)
		data = rest
		if k+1 < ref.Spectra {
			data = bytes.TrimPrefix(data, []byte(spectrum.MultiSpectrumDelimiter))
		}
	}
	if len(data) != 0 {
		return nil, fmt.Errorf("%d trailing bytes after %d record(s): %w", len(data), ref.Spectra, spectrum.ErrMalformedField)
	}

	for _, rec := range records[1:] {
		backfillShared(rec, records[0])
	}
	return records, nil
}

// backfillShared restores fields omitted from rec because they matched the
// first record of a multi-spectrum payload.
func backfillShared(rec, first *spectrum.Record) {
	if rec.DetectorModel == "" {
		rec.DetectorModel = first.DetectorModel
	}
	if !rec.HasCalibration() && first.HasCalibration() {
		rec.EnergyCalCoeffs = append([]float64(nil), first.EnergyCalCoeffs...)
		rec.DeviationPairs = append([][2]float64(nil), first.DeviationPairs...)
	}
	if !rec.HasLocation() && first.HasLocation() {
		rec.Latitude = first.Latitude
		rec.Longitude = first.Longitude
	}
	if rec.Title == "" {
		rec.Title = first.Title
	}
}
