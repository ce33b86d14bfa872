package phantom

/* Handles the day/night energy balance simulation. */

// DefaultSamples is the number of time samples over the 24 h cycle.
const DefaultSamples = 50

// Mission simulates one 24 hour day/night cycle of a fixed design at a given
// latitude and day of year. Build it with NewMission and override fields
// before Run to study off-design conditions; Latitude, DayOfYear and StartSOC
// are honored verbatim, so zero means the equator, day zero and an empty pack.
type Mission struct {
	Spec      DesignSpec
	Latitude  float64 // deg N
	DayOfYear int
	Samples   int     // zero value uses DefaultSamples
	StartSOC  float64 // state of charge fraction at local midnight

	// Efficiency chain; zero values use the nominal chain.
	SystemSolarEff float64
	PropulsiveEff  float64
}

// MissionProfile is the simulated battery history over one cycle.
type MissionProfile struct {
	Time     []float64 // s past local midnight
	Energy   []float64 // J stored, clamped at capacity, may go negative
	PowerIn  []float64 // W collected
	PowerOut float64   // W constant draw
	Capacity float64   // J
}

// NewMission returns a mission at the design's own latitude and day, half
// charged at local midnight with the nominal efficiency chain.
func NewMission(spec DesignSpec) Mission {
	return Mission{
		Spec:           spec,
		Latitude:       spec.Latitude,
		DayOfYear:      spec.DayOfYear,
		Samples:        DefaultSamples,
		StartSOC:       0.5,
		SystemSolarEff: SystemSolarEfficiency(),
		PropulsiveEff:  PropulsiveEfficiency,
	}
}

// Run integrates the battery state with explicit Euler steps. Charge is
// clamped at capacity (the array cannot overcharge the pack) but is allowed
// to go negative so MinMargin reports how deeply the night was missed.
func (m Mission) Run() MissionProfile {
	n := m.Samples
	if n < 2 {
		n = DefaultSamples
	}
	solarEff := m.SystemSolarEff
	if solarEff == 0 {
		solarEff = SystemSolarEfficiency()
	}
	propEff := m.PropulsiveEff
	if propEff == 0 {
		propEff = PropulsiveEfficiency
	}

	cruise := m.Spec.Cruise()
	powerOut := cruise.AeroPower/propEff + AvionicsPower

	times, fluxes := FluxProfile(m.Latitude, m.DayOfYear, n)
	area := m.Spec.WingArea()
	powerIn := make([]float64, n)
	for i, f := range fluxes {
		powerIn[i] = f * area * solarEff
	}

	capacity := m.Spec.BatteryCapacity()
	energy := make([]float64, n)
	energy[0] = m.StartSOC * capacity
	dt := SecondsPerDay / float64(n-1)
	for i := 1; i < n; i++ {
		e := energy[i-1] + (powerIn[i-1]-powerOut)*dt
		if e > capacity {
			e = capacity
		}
		energy[i] = e
	}

	return MissionProfile{
		Time:     times,
		Energy:   energy,
		PowerIn:  powerIn,
		PowerOut: powerOut,
		Capacity: capacity,
	}
}

// MinMargin returns the lowest stored energy seen over the cycle, in J.
// Negative means the aircraft did not survive the night.
func (p MissionProfile) MinMargin() float64 {
	min := p.Energy[0]
	for _, e := range p.Energy[1:] {
		if e < min {
			min = e
		}
	}
	return min
}

// Survives reports whether the battery stayed charged through the cycle.
func (p MissionProfile) Survives() bool {
	return p.MinMargin() > 0
}

// Cyclic reports whether the cycle closed: at least as much energy at the end
// of the day as at the start, so the profile repeats indefinitely.
func (p MissionProfile) Cyclic() bool {
	return p.Energy[len(p.Energy)-1] >= p.Energy[0]
}
