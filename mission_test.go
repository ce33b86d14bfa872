package phantom

import "testing"

func TestReferenceDesignSurvivesSolstice(t *testing.T) {
	prof := NewMission(ReferenceDesign()).Run()
	if !prof.Survives() {
		t.Fatalf("reference design should survive the night at 20N on day 172, margin %f J", prof.MinMargin())
	}
	if !prof.Cyclic() {
		t.Fatal("reference design should end the day at least as charged as it started")
	}
}

func TestReferenceDesignFailsPolarWinter(t *testing.T) {
	m := NewMission(ReferenceDesign())
	m.Latitude = 70
	m.DayOfYear = 355
	prof := m.Run()
	if prof.Survives() {
		t.Fatal("no design survives polar night on battery alone")
	}
	if prof.MinMargin() >= 0 {
		t.Fatalf("expected negative margin, got %f", prof.MinMargin())
	}
}

func TestMissionChargeClamping(t *testing.T) {
	prof := NewMission(ReferenceDesign()).Run()
	for i, e := range prof.Energy {
		if e > prof.Capacity {
			t.Fatalf("sample %d overcharged: %f > %f", i, e, prof.Capacity)
		}
	}
	// A summer day must pin the pack at capacity at some point.
	var full bool
	for _, e := range prof.Energy {
		if e == prof.Capacity {
			full = true
			break
		}
	}
	if !full {
		t.Fatal("pack never reached capacity on the solstice")
	}
}

func TestMissionDefaults(t *testing.T) {
	spec := ReferenceDesign()
	prof := NewMission(spec).Run()
	if len(prof.Time) != DefaultSamples {
		t.Fatalf("expected %d samples, got %d", DefaultSamples, len(prof.Time))
	}
	if prof.Energy[0] != 0.5*spec.BatteryCapacity() {
		t.Fatal("default start state of charge is 50%")
	}
	if prof.PowerOut <= AvionicsPower {
		t.Fatal("cruise draw must exceed the avionics floor")
	}
}

func TestMissionEfficiencyOverrides(t *testing.T) {
	spec := ReferenceDesign()
	nominal := NewMission(spec).Run()
	worse := NewMission(spec)
	worse.PropulsiveEff = 0.5
	degraded := worse.Run()
	if degraded.PowerOut <= nominal.PowerOut {
		t.Fatal("a worse propulsive chain must draw more power")
	}
	better := NewMission(spec)
	better.SystemSolarEff = 0.5
	boosted := better.Run()
	if boosted.PowerIn[len(boosted.PowerIn)/2] <= nominal.PowerIn[len(nominal.PowerIn)/2] {
		t.Fatal("a better solar chain must collect more at noon")
	}
}

func TestMissionZeroOverridesHonored(t *testing.T) {
	spec := ReferenceDesign() // sited at 20N
	nominal := NewMission(spec).Run()

	// Latitude zero targets the equator, where the solstice noon sun sits
	// lower than at 20N.
	m := NewMission(spec)
	m.Latitude = 0
	equator := m.Run()
	noon := len(nominal.PowerIn) / 2
	if equator.PowerIn[noon] >= nominal.PowerIn[noon] {
		t.Fatalf("equator override ignored: %f >= %f W at noon", equator.PowerIn[noon], nominal.PowerIn[noon])
	}

	// StartSOC zero starts with an empty pack.
	m = NewMission(spec)
	m.StartSOC = 0
	if e0 := m.Run().Energy[0]; e0 != 0 {
		t.Fatalf("empty pack override ignored: %f J at midnight", e0)
	}
}
