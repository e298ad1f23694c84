package main

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/unixdj/qr/coding"

	"github.com/joeydtaylor/radqr/pkg/builder"
)

type spectrumFile struct {
	Spectrum spectrumConfig `toml:"spectrum"`
}

type spectrumConfig struct {
	Title           string      `toml:"title"`
	SourceType      string      `toml:"source_type"`
	DetectorModel   string      `toml:"detector_model"`
	StartTime       time.Time   `toml:"start_time"`
	LiveTime        float64     `toml:"live_time"`
	RealTime        float64     `toml:"real_time"`
	EnergyCalCoeffs []float64   `toml:"energy_cal_coeffs"`
	DeviationPairs  [][]float64 `toml:"deviation_pairs"`
	Latitude        *float64    `toml:"latitude"`
	Longitude       *float64    `toml:"longitude"`
	NeutronSum      *int64      `toml:"neutron_sum"`
	ChannelData     []uint32    `toml:"channel_data"`
}

func (c spectrumConfig) record() (*builder.SpectrumRecord, error) {
	rec := builder.NewSpectrumRecord()
	rec.Title = c.Title
	rec.DetectorModel = c.DetectorModel
	rec.StartTime = c.StartTime
	rec.LiveTime = c.LiveTime
	rec.RealTime = c.RealTime
	rec.EnergyCalCoeffs = c.EnergyCalCoeffs
	rec.ChannelData = c.ChannelData

	switch strings.ToLower(c.SourceType) {
	case "", "unknown":
		rec.SourceType = builder.SourceUnknown
	case "foreground":
		rec.SourceType = builder.SourceForeground
	case "background":
		rec.SourceType = builder.SourceBackground
	case "calibration":
		rec.SourceType = builder.SourceCalibration
	case "intrinsic":
		rec.SourceType = builder.SourceIntrinsicActivity
	default:
		return nil, fmt.Errorf("unknown source_type %q", c.SourceType)
	}

	for _, pair := range c.DeviationPairs {
		if len(pair) != 2 {
			return nil, fmt.Errorf("deviation pair needs 2 values, got %d", len(pair))
		}
		rec.DeviationPairs = append(rec.DeviationPairs, [2]float64{pair[0], pair[1]})
	}

	if c.Latitude != nil && c.Longitude != nil {
		rec.Latitude = *c.Latitude
		rec.Longitude = *c.Longitude
	}
	if c.NeutronSum != nil {
		rec.NeutronSum = *c.NeutronSum
	}
	return rec, nil
}

func main() {
	path := builder.EnvOr("RADQR_SPECTRUM_TOML", "spectrum.toml")
	if _, err := os.Stat(path); os.IsNotExist(err) {
		path = "example/tomlspectrum/spectrum.toml"
	}

	var file spectrumFile
	if _, err := toml.DecodeFile(path, &file); err != nil {
		fmt.Printf("Load %s failed: %v\n", path, err)
		os.Exit(1)
	}

	rec, err := file.Spectrum.record()
	if err != nil {
		fmt.Printf("Bad spectrum description: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Loaded %q: %d channels, %s detector\n",
		rec.Title, len(rec.ChannelData), rec.DetectorModel)

	logger := builder.NewLogger(builder.LoggerWithLevel("info"))
	encoder := builder.NewEncoder(builder.EncoderWithLogger(logger))
	payloads, err := encoder.Encode([]*builder.SpectrumRecord{rec})
	if err != nil {
		fmt.Printf("Encode failed: %v\n", err)
		os.Exit(1)
	}

	for i, p := range payloads {
		fmt.Printf("Symbol %d: version %d, correction %s, %dx%d modules, %d characters\n",
			i, p.Symbol.Version, p.Symbol.ErrorCorrection, p.Symbol.Size, p.Symbol.Size, len(p.URI))
	}

	info, code, err := builder.RenderSymbolBitmap(payloads[0].URI, builder.ECLow)
	if err != nil {
		fmt.Printf("Render failed: %v\n", err)
		os.Exit(1)
	}
	if info.Size > 57 {
		fmt.Printf("Symbol too large to draw here (%d modules)\n", info.Size)
		return
	}
	fmt.Println()
	printSymbol(code)
}

// printSymbol draws the module grid with a two-module quiet zone, two text
// columns per module to keep the aspect ratio near square.
func printSymbol(code *coding.Code) {
	quiet := strings.Repeat(" ", 2*(code.Size+4))
	fmt.Println(quiet)
	fmt.Println(quiet)
	for y := 0; y < code.Size; y++ {
		var row strings.Builder
		row.WriteString("    ")
		for x := 0; x < code.Size; x++ {
			if code.Black(x, y) {
				row.WriteString("##")
			} else {
				row.WriteString("  ")
			}
		}
		row.WriteString("    ")
		fmt.Println(row.String())
	}
	fmt.Println(quiet)
	fmt.Println(quiet)
}
