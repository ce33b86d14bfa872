package phantom

import (
	"errors"
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
	"gonum.org/v1/gonum/optimize"
)

/* Problem setup for the external nonlinear solver. All of the mathematical
programming lives in gonum/optimize; this file only transcribes the sizing
problem (variables, bounds, constraint residuals, objective) into a penalty
form that solver can minimize. */

// ErrInfeasible is returned when the solver cannot find a design satisfying
// the perpetual flight constraints.
var ErrInfeasible = errors.New("perpetual flight infeasible for these inputs")

// feasibilityTol is the largest summed normalized constraint violation still
// accepted as a feasible design.
const feasibilityTol = 2e-3

// bound is a box constraint on one decision variable.
type bound struct {
	lo, hi float64
}

func (b bound) violation(v float64) float64 {
	return relViolation(v, b.lo, b.hi, b.hi-b.lo)
}

// Decision variable bounds, matching the flight envelope of the airframe.
var (
	wingspanBound    = bound{10, 80}
	aspectRatioBound = bound{10, 40}
	totalMassBound   = bound{10, 600}
	batteryMassBound = bound{5, 300}
	velocityBound    = bound{10, 50}
	socBound         = bound{0.02, 1}
	densityBound     = bound{100, 1000}
)

// SizingProblem sizes the aircraft for minimum all-up mass given a payload,
// an operating latitude and the available battery technology.
type SizingProblem struct {
	PayloadMass    float64 // kg
	Latitude       float64 // deg N
	DayOfYear      int
	SpecificEnergy float64 // Wh/kg
	Samples        int     // energy balance samples over 24 h
	MaxEvaluations int     // per solver stage
	Logger         kitlog.Logger

	// Flux profile cache. The profile depends only on the problem site and
	// the discretization, not on the decision vector.
	fluxLat float64
	fluxDay int
	fluxN   int
	flux    []float64
}

// fluxProfile returns the flux samples for the problem's site, recomputing
// the ephemeris only when the site or the discretization changes.
func (p *SizingProblem) fluxProfile(n int) []float64 {
	if p.flux == nil || p.fluxN != n || p.fluxDay != p.DayOfYear || p.fluxLat != p.Latitude {
		_, p.flux = FluxProfile(p.Latitude, p.DayOfYear, n)
		p.fluxN, p.fluxDay, p.fluxLat = n, p.DayOfYear, p.Latitude
	}
	return p.flux
}

// NewSizingProblem returns a sizing problem on the summer solstice with the
// default discretization and a logfmt logger on stdout.
func NewSizingProblem(payloadMass, latitude, specificEnergy float64) *SizingProblem {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "subsys", "sizer")
	return &SizingProblem{
		PayloadMass:    payloadMass,
		Latitude:       latitude,
		DayOfYear:      172,
		SpecificEnergy: specificEnergy,
		Samples:        DefaultSamples,
		MaxEvaluations: 40000,
		Logger:         klog,
	}
}

// candidate evaluates one decision vector: the design it encodes and the
// summed normalized violation of all constraints.
// x = [wingspan, aspect ratio, total mass, battery mass, velocity, soc0].
func (p *SizingProblem) candidate(x []float64, specificEnergy float64) (DesignSpec, float64) {
	// Box violations are charged on the raw point; the physics is evaluated
	// on the projection into the box so the model stays finite wherever the
	// solver wanders.
	viol := wingspanBound.violation(x[0]) +
		aspectRatioBound.violation(x[1]) +
		totalMassBound.violation(x[2]) +
		batteryMassBound.violation(x[3]) +
		velocityBound.violation(x[4]) +
		socBound.violation(x[5])

	spec := DesignSpec{
		Wingspan:       clamp(x[0], wingspanBound.lo, wingspanBound.hi),
		AspectRatio:    clamp(x[1], aspectRatioBound.lo, aspectRatioBound.hi),
		TotalMass:      clamp(x[2], totalMassBound.lo, totalMassBound.hi),
		BatteryMass:    clamp(x[3], batteryMassBound.lo, batteryMassBound.hi),
		Velocity:       clamp(x[4], velocityBound.lo, velocityBound.hi),
		PayloadMass:    p.PayloadMass,
		SpecificEnergy: math.Max(specificEnergy, 1),
		Latitude:       p.Latitude,
		DayOfYear:      p.DayOfYear,
	}
	soc := clamp(x[5], socBound.lo, socBound.hi)

	// Mass closure: the assumed all-up mass must cover the component budget.
	if res := spec.Masses().ClosureResidual(spec.TotalMass); res > 0 {
		rel := res / spec.TotalMass
		viol += rel * rel
	}

	// Energy balance: explicit Euler recurrence, charge within [0, capacity]
	// at every sample and cyclic closure over the 24 h period.
	n := p.Samples
	if n == 0 {
		n = DefaultSamples
	}
	capacity := spec.BatteryCapacity()
	powerOut := spec.Cruise().TotalPowerDraw()
	fluxes := p.fluxProfile(n)
	area := spec.WingArea()
	dt := SecondsPerDay / float64(n-1)
	e := soc * capacity
	first := e
	for i := 0; i < n; i++ {
		viol += relViolation(e, 0, capacity, capacity)
		if i < n-1 {
			e += (CollectedPower(fluxes[i], area) - powerOut) * dt
		}
	}
	cyc := (e - first) / capacity
	viol += cyc * cyc

	return spec, viol
}

// solveStages runs the solver with an escalating penalty weight, warm-starting
// each stage from the previous optimum.
func (p *SizingProblem) solveStages(x0 []float64, objective func(x []float64) float64, violAt func(x []float64) float64) ([]float64, error) {
	weights := []float64{10, 100, 1000, 5000}
	x := append([]float64(nil), x0...)
	for _, µ := range weights {
		µ := µ
		prob := optimize.Problem{
			Func: func(x []float64) float64 {
				return objective(x) + µ*violAt(x)
			},
		}
		settings := &optimize.Settings{
			FuncEvaluations: p.MaxEvaluations,
			Converger: &optimize.FunctionConverge{
				Absolute:   1e-10,
				Iterations: 500,
			},
		}
		result, err := optimize.Minimize(prob, x, settings, &optimize.NelderMead{})
		if err != nil && result == nil {
			return nil, fmt.Errorf("%w: solver error: %v", ErrInfeasible, err)
		}
		x = append(x[:0], result.X...)
		p.Logger.Log("level", "debug", "penalty", µ, "objective", result.F, "violation", violAt(x))
	}
	return x, nil
}

// Solve hands the sizing problem to the external solver and returns the
// mass-minimal feasible design.
func (p *SizingProblem) Solve() (DesignSpec, error) {
	p.Logger.Log("level", "info", "status", "solving",
		"payload(kg)", p.PayloadMass, "lat(deg)", p.Latitude, "battery(Wh/kg)", p.SpecificEnergy, "day", p.DayOfYear)

	// Warm start from a design that very nearly closes, so the solver starts
	// close to the feasible manifold.
	x0 := []float64{20, 20, 200, 50, 11, 0.5}
	x, err := p.solveStages(x0,
		func(x []float64) float64 { return x[2] / totalMassBound.hi },
		func(x []float64) float64 {
			_, viol := p.candidate(x, p.SpecificEnergy)
			return viol
		})
	if err != nil {
		p.Logger.Log("level", "error", "status", "failed", "err", err)
		return DesignSpec{}, err
	}

	spec, viol := p.candidate(x, p.SpecificEnergy)
	if viol > feasibilityTol {
		p.Logger.Log("level", "warning", "status", "infeasible", "violation", viol)
		return DesignSpec{}, fmt.Errorf("%w: constraint violation %.2e", ErrInfeasible, viol)
	}
	p.Logger.Log("level", "notice", "status", "solved",
		"wingspan(m)", spec.Wingspan, "mass(kg)", spec.TotalMass, "battery(kg)", spec.BatteryMass, "v(m/s)", spec.Velocity)
	return spec, nil
}

// TechProblem is the inverse sizing problem: find the minimum battery
// specific energy (Wh/kg) for which perpetual flight closes at a latitude.
type TechProblem struct {
	SizingProblem
}

// NewTechProblem returns the inverse problem for a payload and latitude.
func NewTechProblem(payloadMass, latitude float64) *TechProblem {
	p := NewSizingProblem(payloadMass, latitude, 0)
	p.Logger = kitlog.With(kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout)), "subsys", "techsweep")
	return &TechProblem{SizingProblem: *p}
}

// Solve minimizes the required battery technology instead of the mass.
// x gains a seventh variable, the specific energy.
func (p *TechProblem) Solve() (DesignSpec, error) {
	p.Logger.Log("level", "info", "status", "solving",
		"payload(kg)", p.PayloadMass, "lat(deg)", p.Latitude, "day", p.DayOfYear)

	x0 := []float64{20, 20, 200, 50, 11, 0.5, 400}
	x, err := p.solveStages(x0,
		func(x []float64) float64 { return x[6] / densityBound.hi },
		func(x []float64) float64 {
			_, viol := p.candidate(x[:6], x[6])
			return viol + densityBound.violation(x[6])
		})
	if err != nil {
		p.Logger.Log("level", "error", "status", "failed", "err", err)
		return DesignSpec{}, err
	}

	spec, viol := p.candidate(x[:6], x[6])
	viol += densityBound.violation(x[6])
	if viol > feasibilityTol {
		p.Logger.Log("level", "warning", "status", "infeasible", "violation", viol)
		return DesignSpec{}, fmt.Errorf("%w: constraint violation %.2e", ErrInfeasible, viol)
	}
	p.Logger.Log("level", "notice", "status", "solved",
		"battery(Wh/kg)", spec.SpecificEnergy, "wingspan(m)", spec.Wingspan, "mass(kg)", spec.TotalMass)
	return spec, nil
}
