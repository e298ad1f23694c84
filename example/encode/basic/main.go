package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joeydtaylor/radqr/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	rec := builder.NewSpectrumRecord()
	rec.SourceType = builder.SourceForeground
	rec.Title = "Survey point 12"
	rec.DetectorModel = "Detective-EX100"
	rec.StartTime = time.Date(2021, time.May, 17, 14, 2, 9, 0, time.UTC)
	rec.EnergyCalCoeffs = []float64{-0.533, 2.986, 0.0000522}
	rec.DeviationPairs = [][2]float64{{59.5, -1.2}, {661.7, 0}}
	rec.Latitude = 37.6761
	rec.Longitude = -121.7058
	rec.NeutronSum = 4
	rec.LiveTime = 299.2
	rec.RealTime = 300
	rec.ChannelData = simulatedChannelData(1024)

	analysis := builder.AnalyzeSpectrum(rec)
	fmt.Printf("Spectrum: %s (%d channels)\n", rec.Title, len(rec.ChannelData))
	fmt.Printf("  Gross Counts: %.0f\n", analysis["gross_counts"])
	fmt.Printf("  Count Rate: %.2f cps\n", analysis["count_rate"])
	fmt.Printf("  Peak Channel: %d (%.0f counts", analysis["peak_channel"], analysis["peak_counts"])
	if energy, ok := analysis["peak_energy"]; ok {
		fmt.Printf(", %.1f keV", energy)
	}
	fmt.Println(")")

	encoder := builder.NewEncoder(
		builder.EncoderWithLogger(logger),
		builder.EncoderWithMinCorrection(builder.ECMedium),
	)

	payloads, err := encoder.Encode([]*builder.SpectrumRecord{rec})
	if err != nil {
		fmt.Printf("Encode failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Encoded into %d payload(s):\n", len(payloads))
	for i, p := range payloads {
		fmt.Printf("  Payload %d: %d characters, QR version %d (%s), %dx%d modules\n",
			i, len(p.URI), p.Symbol.Version, p.Symbol.ErrorCorrection, p.Symbol.Size, p.Symbol.Size)
		fmt.Printf("    %s...\n", p.URI[:60])
	}
}

// simulatedChannelData builds a Poisson-flavored histogram with a continuum,
// two photopeaks, and the long zero tail a real detector records.
func simulatedChannelData(n int) []uint32 {
	counts := make([]uint32, n)
	for i := 0; i < n*3/4; i++ {
		continuum := 40 - i/32
		if continuum < 1 {
			continuum = 1
		}
		jitter := int(uint64(i) * 2654435761 % 7)
		counts[i] = uint32(continuum + jitter)
	}
	addPeak(counts, 220, 9, 450)
	addPeak(counts, 510, 6, 180)
	return counts
}

func addPeak(counts []uint32, center, width, height int) {
	for i := center - 3*width; i <= center+3*width; i++ {
		if i < 0 || i >= len(counts) {
			continue
		}
		d := i - center
		counts[i] += uint32(height * 100 / (100 + 4*d*d/width))
	}
}
