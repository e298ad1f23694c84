package types

// ErrorCorrection represents a QR error-correction level, from least to most
// tolerant of symbol damage.
type ErrorCorrection int

const (
	ECLow ErrorCorrection = iota
	ECMedium
	ECQuartile
	ECHigh
)

func (e ErrorCorrection) String() string {
	switch e {
	case ECLow:
		return "L"
	case ECMedium:
		return "M"
	case ECQuartile:
		return "Q"
	case ECHigh:
		return "H"
	default:
		return "?"
	}
}

// SymbolInfo reports the geometry a renderer achieved for one payload: the QR
// version, the error-correction level actually used (it may exceed the minimum
// a caller asked for), and the number of modules per symbol side.
type SymbolInfo struct {
	Version         int
	ErrorCorrection ErrorCorrection
	Size            int
}

// SymbolRenderer produces a physical QR symbol for payload text, or fails when
// the text exceeds the capacity available at the requested minimum
// error-correction level.
type SymbolRenderer interface {
	Render(payload string, min ErrorCorrection) (SymbolInfo, error)
}
