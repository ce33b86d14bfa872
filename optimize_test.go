package phantom

import (
	"errors"
	"testing"
)

func TestSizingSolveTropics(t *testing.T) {
	if testing.Short() {
		t.Skip("solver run")
	}
	p := NewSizingProblem(5, 20, 350)
	spec, err := p.Solve()
	if err != nil {
		t.Fatalf("expected a feasible design at 20N with 350 Wh/kg: %s", err)
	}
	// The solver's feasibility gate already enforces the constraints; spot
	// check the returned design is physically sane.
	if spec.Wingspan < wingspanBound.lo || spec.Wingspan > wingspanBound.hi {
		t.Fatalf("wingspan out of bounds: %f", spec.Wingspan)
	}
	if spec.TotalMass <= spec.BatteryMass+spec.PayloadMass {
		t.Fatalf("total mass %f cannot be below battery plus payload", spec.TotalMass)
	}
	if res := spec.Masses().ClosureResidual(spec.TotalMass); res > 0.05*spec.TotalMass {
		t.Fatalf("mass budget does not close: residual %f kg", res)
	}
}

func TestSizingInfeasiblePolarNight(t *testing.T) {
	if testing.Short() {
		t.Skip("solver run")
	}
	p := NewSizingProblem(5, 70, 350)
	p.DayOfYear = 355 // the sun never rises
	if _, err := p.Solve(); !errors.Is(err, ErrInfeasible) {
		t.Fatalf("expected ErrInfeasible, got %v", err)
	}
}

func TestTechProblemEquator(t *testing.T) {
	if testing.Short() {
		t.Skip("solver run")
	}
	p := NewTechProblem(2, 0)
	spec, err := p.Solve()
	if err != nil {
		t.Fatalf("expected a feasible technology level at the equator: %s", err)
	}
	if spec.SpecificEnergy < densityBound.lo || spec.SpecificEnergy > densityBound.hi {
		t.Fatalf("required density out of bounds: %f", spec.SpecificEnergy)
	}
}

func TestCandidateViolations(t *testing.T) {
	p := NewSizingProblem(5, 20, 350)
	// A design that closes and holds charge shows only the energy-cycle
	// residual of its (unbalanced) daily budget.
	_, violGood := p.candidate([]float64{20, 20, 200, 50, 11, 0.5}, 350)
	// Out-of-bounds span and an impossible mass budget.
	_, violBad := p.candidate([]float64{120, 20, 20, 50, 11, 0.5}, 350)
	if violBad <= violGood {
		t.Fatalf("violations not ordered: bad %f <= good %f", violBad, violGood)
	}
	if violGood > 0.1 {
		t.Fatalf("warm-start candidate should be nearly feasible, violation %f", violGood)
	}
}

func TestFluxCacheTracksProblemSite(t *testing.T) {
	p := NewSizingProblem(5, 20, 350)
	x := []float64{20, 20, 200, 50, 11, 0.5}
	_, summer := p.candidate(x, 350)
	_, again := p.candidate(x, 350)
	if summer != again {
		t.Fatal("repeated evaluation must reuse the cached flux profile")
	}
	p.DayOfYear = 355
	_, winter := p.candidate(x, 350)
	if winter <= summer {
		t.Fatalf("a winter day must violate the energy balance more: %f <= %f", winter, summer)
	}
}

func TestBoundViolation(t *testing.T) {
	b := bound{10, 80}
	if b.violation(45) != 0 {
		t.Fatal("interior point must not be penalized")
	}
	if b.violation(5) == 0 || b.violation(100) == 0 {
		t.Fatal("exterior points must be penalized")
	}
}
