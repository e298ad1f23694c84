package main

import (
	"fmt"
	"os"
	"time"

	"github.com/joeydtaylor/radqr/pkg/builder"
)

func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	uris := scannedPayloads(logger)
	fmt.Printf("Scanned %d payload(s)\n", len(uris))

	header, _, err := builder.ParseHeader(uris[0])
	if err != nil {
		fmt.Printf("ParseHeader failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("First header: options=%#x parts=%d spectra=%d\n",
		uint8(header.Options), header.Parts, header.Spectra)

	decoder := builder.NewDecoder(builder.DecoderWithLogger(logger))
	records, err := decoder.Decode(uris)
	if err != nil {
		fmt.Printf("Decode failed: %v\n", err)
		os.Exit(1)
	}

	for i, rec := range records {
		fmt.Printf("Record %d: %q\n", i, rec.Title)
		fmt.Printf("  Source: %s  Detector: %s\n", rec.SourceType, rec.DetectorModel)
		if rec.HasStartTime() {
			fmt.Printf("  Started: %s\n", rec.StartTime.Format(time.RFC3339))
		}
		fmt.Printf("  Live/Real Time: %.1f/%.1f s\n", rec.LiveTime, rec.RealTime)
		if rec.HasLocation() {
			fmt.Printf("  Location: %.4f, %.4f\n", rec.Latitude, rec.Longitude)
		}
		if rec.HasNeutronSum() {
			fmt.Printf("  Neutron Sum: %d\n", rec.NeutronSum)
		}
		fmt.Printf("  Channels: %d, first eight %v\n", len(rec.ChannelData), rec.ChannelData[:8])
	}
}

// scannedPayloads stands in for a camera pipeline: it encodes a foreground
// and a background spectrum into one symbol and returns the scanned text.
func scannedPayloads(logger builder.Logger) []string {
	foreground := builder.NewSpectrumRecord()
	foreground.SourceType = builder.SourceForeground
	foreground.Title = "Checkpoint lane 3"
	foreground.DetectorModel = "RadEagle"
	foreground.StartTime = time.Date(2022, time.October, 4, 9, 30, 0, 0, time.UTC)
	foreground.EnergyCalCoeffs = []float64{0, 3.1}
	foreground.LiveTime = 120
	foreground.RealTime = 122.5
	foreground.ChannelData = []uint32{
		12, 40, 133, 245, 221, 210, 198, 160, 151, 144, 139, 140,
		95, 67, 71, 52, 40, 41, 22, 18, 9, 4, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	background := builder.NewSpectrumRecord()
	background.SourceType = builder.SourceBackground
	background.Title = "Checkpoint lane 3"
	background.DetectorModel = "RadEagle"
	background.StartTime = time.Date(2022, time.October, 4, 9, 24, 0, 0, time.UTC)
	background.EnergyCalCoeffs = []float64{0, 3.1}
	background.LiveTime = 300
	background.RealTime = 300
	background.ChannelData = []uint32{
		4, 14, 41, 80, 77, 70, 66, 55, 50, 48, 44, 46,
		30, 22, 24, 17, 13, 14, 8, 6, 3, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	}

	encoder := builder.NewEncoder(builder.EncoderWithLogger(logger))
	payloads, err := encoder.Encode([]*builder.SpectrumRecord{foreground, background})
	if err != nil {
		fmt.Printf("Encode failed: %v\n", err)
		os.Exit(1)
	}

	uris := make([]string, len(payloads))
	for i, p := range payloads {
		uris[i] = p.URI
	}
	return uris
}
