package builder

import (
	"math"
	"testing"
)

func TestAnalyzeSpectrum(t *testing.T) {
	rec := NewSpectrumRecord()
	rec.SourceType = SourceForeground
	rec.EnergyCalCoeffs = []float64{0, 3}
	rec.LiveTime = 13
	rec.RealTime = 14
	rec.ChannelData = []uint32{0, 4, 9, 25, 9, 4, 1, 0}

	analysis := AnalyzeSpectrum(rec)

	if got := analysis["gross_counts"].(float64); got != 52 {
		t.Fatalf("expected gross counts 52, got %v", got)
	}
	if got := analysis["count_rate"].(float64); got != 4 {
		t.Fatalf("expected count rate 4, got %v", got)
	}
	if got := analysis["peak_channel"].(int); got != 3 {
		t.Fatalf("expected peak channel 3, got %d", got)
	}
	if got := analysis["peak_counts"].(float64); got != 25 {
		t.Fatalf("expected peak counts 25, got %v", got)
	}
	if got := analysis["peak_energy"].(float64); math.Abs(got-9) > 1e-9 {
		t.Fatalf("expected peak energy 9, got %v", got)
	}

	power, ok := analysis["power_spectrum"].([]float64)
	if !ok {
		t.Fatalf("expected power spectrum, got %T", analysis["power_spectrum"])
	}
	if len(power) != len(rec.ChannelData)/2 {
		t.Fatalf("expected %d power bins, got %d", len(rec.ChannelData)/2, len(power))
	}
	// The DC bin carries the squared gross counts.
	if math.Abs(power[0]-52*52) > 1e-6 {
		t.Fatalf("expected DC power 2704, got %v", power[0])
	}
}

func TestAnalyzeSpectrumWithoutOptionalFields(t *testing.T) {
	rec := NewSpectrumRecord()
	rec.RealTime = 10
	rec.ChannelData = []uint32{5, 1}

	analysis := AnalyzeSpectrum(rec)
	if _, ok := analysis["count_rate"]; ok {
		t.Fatalf("expected no count rate without live time")
	}
	if _, ok := analysis["peak_energy"]; ok {
		t.Fatalf("expected no peak energy without calibration")
	}
	if got := analysis["peak_channel"].(int); got != 0 {
		t.Fatalf("expected peak channel 0, got %d", got)
	}

	if got := AnalyzeSpectrum(nil); len(got) != 0 {
		t.Fatalf("expected empty analysis for nil record, got %v", got)
	}
	if got := AnalyzeSpectrum(NewSpectrumRecord()); len(got) != 0 {
		t.Fatalf("expected empty analysis for empty channel data, got %v", got)
	}
}

func TestFunctorHelpers(t *testing.T) {
	doubled := Map([]int{1, 2, 3}, func(v int) int { return v * 2 })
	if len(doubled) != 3 || doubled[2] != 6 {
		t.Fatalf("expected doubled slice, got %v", doubled)
	}

	odd := Filter([]int{1, 2, 3, 4}, func(v int) bool { return v%2 == 1 })
	if len(odd) != 2 || odd[1] != 3 {
		t.Fatalf("expected odd values, got %v", odd)
	}

	if !Contains([]string{"L", "M", "Q", "H"}, "Q") {
		t.Fatalf("expected Contains to find Q")
	}
	if Contains([]string{"L", "M"}, "H") {
		t.Fatalf("expected Contains to miss H")
	}
}
