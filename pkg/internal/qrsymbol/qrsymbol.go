// Package qrsymbol renders payload text into QR symbols. It selects the
// smallest symbol version whose capacity holds the payload at the requested
// minimum error-correction level, then raises the level as far as that same
// version allows, so a payload never pays for a bigger symbol than it needs
// but still gets the strongest damage tolerance the symbol has room for.
package qrsymbol

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/joeydtaylor/radqr/pkg/internal/types"
	"github.com/unixdj/qr/coding"
)

var (
	ErrPayloadTooLarge = errors.New("qrsymbol: payload exceeds version 40 capacity")
)

// Renderer is the default types.SymbolRenderer backed by the coding package.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

// Render reports the geometry of the smallest symbol that fits payload at
// min or better. It satisfies types.SymbolRenderer.
func (r *Renderer) Render(payload string, min types.ErrorCorrection) (types.SymbolInfo, error) {
	info, _, err := r.RenderCode(payload, min)
	return info, err
}

// RenderCode renders payload into a module bitmap along with its geometry,
// for callers that draw the symbol rather than just size it.
func (r *Renderer) RenderCode(payload string, min types.ErrorCorrection) (types.SymbolInfo, *coding.Code, error) {
	seg := segmentFor(payload)
	minLevel := levelFor(min)
	runes := utf8.RuneCountInString(payload)

	for v := coding.MinVersion; v <= coding.MaxVersion; v++ {
		bits := seg.Mode.Length(len(payload), runes, v.SizeClass())
		if bits > v.DataBits(minLevel) {
			continue
		}
		level := minLevel
		for next := level + 1; next <= coding.H; next++ {
			if bits > v.DataBits(next) {
				break
			}
			level = next
		}
		code, err := coding.Encode(v, level, seg)
		if err != nil {
			return types.SymbolInfo{}, nil, fmt.Errorf("render version %d: %w", int(v), err)
		}
		info := types.SymbolInfo{
			Version:         int(v),
			ErrorCorrection: correctionFor(level),
			Size:            code.Size,
		}
		return info, code, nil
	}
	return types.SymbolInfo{}, nil, fmt.Errorf("%w: %d payload bytes at level %s", ErrPayloadTooLarge, len(payload), min)
}

// segmentFor picks the densest mode the payload is eligible for. Payloads
// made entirely of the QR alphanumeric set pack 5.5 bits per character;
// anything else falls back to byte mode.
func segmentFor(payload string) coding.Segment {
	mode := coding.Alphanumeric
	for _, r := range payload {
		if !coding.Is(r, coding.Alphanumeric) {
			mode = coding.Byte
			break
		}
	}
	return coding.Segment{Text: payload, Mode: mode}
}

func levelFor(ec types.ErrorCorrection) coding.Level {
	switch ec {
	case types.ECMedium:
		return coding.M
	case types.ECQuartile:
		return coding.Q
	case types.ECHigh:
		return coding.H
	default:
		return coding.L
	}
}

func correctionFor(level coding.Level) types.ErrorCorrection {
	switch level {
	case coding.M:
		return types.ECMedium
	case coding.Q:
		return types.ECQuartile
	case coding.H:
		return types.ECHigh
	default:
		return types.ECLow
	}
}
