package main

import (
	"fmt"
	"os"

	"github.com/joeydtaylor/radqr/pkg/builder"
)

// A 4096-channel spectrum in comma-separated form outgrows a single QR
// symbol, so the encoder splits it across a part set. Parts scan in any
// order; the decoder reassembles by header index and verifies the CRC.
func main() {
	logger := builder.NewLogger(builder.LoggerWithLevel("info"))

	rec := builder.NewSpectrumRecord()
	rec.SourceType = builder.SourceForeground
	rec.Title = "Ore shipment pallet 7"
	rec.DetectorModel = "Falcon 5000"
	rec.EnergyCalCoeffs = []float64{-0.3, 0.731}
	rec.LiveTime = 600
	rec.RealTime = 612.4
	rec.ChannelData = noisyChannelData(4096)

	encoder := builder.NewEncoder(
		builder.EncoderWithLogger(logger),
		builder.EncoderWithEncodeOptions(builder.OptionCsvChannelData),
	)

	payloads, err := encoder.Encode([]*builder.SpectrumRecord{rec})
	if err != nil {
		fmt.Printf("Encode failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Split %d channels across %d symbols:\n", len(rec.ChannelData), len(payloads))
	for _, p := range payloads {
		header, body, err := builder.ParseHeader(p.URI)
		if err != nil {
			fmt.Printf("ParseHeader failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("  Part %d/%d: crc=%d, %d body characters, QR version %d (%dx%d)\n",
			header.Index+1, header.Parts, header.CRC, len(body),
			p.Symbol.Version, p.Symbol.Size, p.Symbol.Size)
	}

	// Present the parts in reverse to mimic an arbitrary scan order.
	uris := make([]string, 0, len(payloads))
	for i := len(payloads) - 1; i >= 0; i-- {
		uris = append(uris, payloads[i].URI)
	}

	decoder := builder.NewDecoder(builder.DecoderWithLogger(logger))
	records, err := decoder.Decode(uris)
	if err != nil {
		fmt.Printf("Decode failed: %v\n", err)
		os.Exit(1)
	}

	got := records[0]
	if len(got.ChannelData) != len(rec.ChannelData) {
		fmt.Printf("Channel count mismatch: %d != %d\n", len(got.ChannelData), len(rec.ChannelData))
		os.Exit(1)
	}
	for i := range got.ChannelData {
		if got.ChannelData[i] != rec.ChannelData[i] {
			fmt.Printf("Channel %d mismatch: %d != %d\n", i, got.ChannelData[i], rec.ChannelData[i])
			os.Exit(1)
		}
	}
	fmt.Printf("Reassembled %q from reverse scan order: %d channels intact\n",
		got.Title, len(got.ChannelData))
}

// noisyChannelData resists compression enough to keep the split honest.
func noisyChannelData(n int) []uint32 {
	counts := make([]uint32, n)
	for i := range counts {
		counts[i] = 1 + uint32(uint64(i)*2654435761%900)
	}
	return counts
}
