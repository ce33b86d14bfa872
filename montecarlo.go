package phantom

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"
)

// RobustnessStudy perturbs the efficiency chain and the battery technology of
// a fixed design with a correlated Gaussian and reports how often the design
// still survives the night. Cell and MPPT losses move together (temperature),
// hence the positive covariance between the solar chain and the pack.
type RobustnessStudy struct {
	Spec DesignSpec // sited by its own Latitude and DayOfYear
	Runs int        // zero value means 1000 samples
	Seed uint64
}

// Perturbed holds one sampled efficiency chain.
type Perturbed struct {
	SystemSolarEff float64
	PropulsiveEff  float64
	SpecificEnergy float64 // Wh/kg
}

// Run samples the perturbations and simulates each. It returns the surviving
// fraction and the per-sample minimum energy margins in J.
func (s RobustnessStudy) Run() (survival float64, margins []float64) {
	runs := s.Runs
	if runs == 0 {
		runs = 1000
	}
	mean := []float64{SystemSolarEfficiency(), PropulsiveEfficiency, s.Spec.SpecificEnergy}
	cov := mat.NewSymDense(3, []float64{
		1e-4, 0, 5e-2,
		0, 4e-4, 0,
		5e-2, 0, 225,
	})
	dist, ok := distmv.NewNormal(mean, cov, rand.NewSource(s.Seed))
	if !ok {
		panic("NOK in Gaussian")
	}

	margins = make([]float64, runs)
	var survived int
	sample := make([]float64, 3)
	for i := 0; i < runs; i++ {
		dist.Rand(sample)
		p := Perturbed{
			SystemSolarEff: clamp(sample[0], 0.01, 1),
			PropulsiveEff:  clamp(sample[1], 0.1, 1),
			SpecificEnergy: clamp(sample[2], 1, 2000),
		}
		spec := s.Spec
		spec.SpecificEnergy = p.SpecificEnergy
		m := NewMission(spec)
		m.SystemSolarEff = p.SystemSolarEff
		m.PropulsiveEff = p.PropulsiveEff
		prof := m.Run()
		margins[i] = prof.MinMargin()
		if prof.Survives() {
			survived++
		}
	}
	return float64(survived) / float64(runs), margins
}
