package phantom

import (
	"math"
	"testing"
)

func TestSolarDeclinationSolstice(t *testing.T) {
	// Day 172 is June 21: the sun sits near the Tropic of Cancer.
	δ := SolarDeclination(172, 43200) / deg2rad
	if math.Abs(δ-23.43) > 0.5 {
		t.Fatalf("declination on the summer solstice: expected ~23.43 deg, got %f", δ)
	}
	// Day 355 is December 21.
	δ = SolarDeclination(355, 43200) / deg2rad
	if math.Abs(δ+23.43) > 0.5 {
		t.Fatalf("declination on the winter solstice: expected ~-23.43 deg, got %f", δ)
	}
}

func TestSolarFluxDayNight(t *testing.T) {
	if f := SolarFlux(20, 172, 0); f != 0 {
		t.Fatalf("flux at midnight must be zero, got %f", f)
	}
	noon := SolarFlux(20, 172, 43200)
	if noon < 700 || noon > 1100 {
		t.Fatalf("noon flux out of clear-sky range: %f", noon)
	}
	morning := SolarFlux(20, 172, 8*3600)
	if morning <= 0 || morning >= noon {
		t.Fatalf("morning flux should be positive and below noon: %f vs %f", morning, noon)
	}
}

func TestSolarFluxLatitude(t *testing.T) {
	// Winter solstice: the equator sees far more sun than 60N.
	equator := SolarFlux(0, 355, 43200)
	north := SolarFlux(60, 355, 43200)
	if north >= equator {
		t.Fatalf("winter flux at 60N (%f) should be below the equator (%f)", north, equator)
	}
	// Polar night above the arctic circle.
	if f := SolarFlux(75, 355, 43200); f != 0 {
		t.Fatalf("polar night must have zero flux, got %f", f)
	}
}

func TestFluxProfileShape(t *testing.T) {
	times, fluxes := FluxProfile(20, 172, DefaultSamples)
	if len(times) != DefaultSamples || len(fluxes) != DefaultSamples {
		t.Fatal("profile length mismatch")
	}
	var peak float64
	var peakIdx int
	for i, f := range fluxes {
		if f < 0 {
			t.Fatalf("negative flux at sample %d", i)
		}
		if f > peak {
			peak, peakIdx = f, i
		}
	}
	// Peak within an hour of local noon.
	if math.Abs(times[peakIdx]-43200) > 3600 {
		t.Fatalf("flux peak at %f s, expected near noon", times[peakIdx])
	}
}

func TestCollectedPowerChain(t *testing.T) {
	got := CollectedPower(1000, 49)
	exp := 1000 * 49 * SolarCellEfficiency * SolarFillFactor * MPPTEfficiency
	if math.Abs(got-exp) > 1e-9 {
		t.Fatalf("efficiency chain: expected %f, got %f", exp, got)
	}
}
