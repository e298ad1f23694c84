package builder

import (
	"github.com/unixdj/qr/coding"

	"github.com/joeydtaylor/radqr/pkg/internal/qrsymbol"
	"github.com/joeydtaylor/radqr/pkg/internal/types"
)

// SymbolInfo reports the geometry a renderer achieved for one payload.
type SymbolInfo = types.SymbolInfo

// ErrorCorrection represents a QR error-correction level.
type ErrorCorrection = types.ErrorCorrection

const (
	ECLow      = types.ECLow
	ECMedium   = types.ECMedium
	ECQuartile = types.ECQuartile
	ECHigh     = types.ECHigh
)

// NewSymbolRenderer creates the stock QR symbol renderer.
func NewSymbolRenderer() types.SymbolRenderer {
	return qrsymbol.NewRenderer()
}

// RenderSymbolBitmap renders payload text into symbol geometry together with
// the module bitmap, for callers that draw the symbol themselves.
func RenderSymbolBitmap(payload string, min ErrorCorrection) (SymbolInfo, *coding.Code, error) {
	return qrsymbol.NewRenderer().RenderCode(payload, min)
}
