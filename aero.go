package phantom

import (
	"fmt"
	"math"
)

// FlightPoint is the steady level flight condition of a design at one speed.
type FlightPoint struct {
	CL         float64 // lift coefficient from L = W
	CD         float64 // drag polar CD0 + CL^2/(pi e AR)
	Drag       float64 // N
	AeroPower  float64 // W, drag * velocity
	ShaftPower float64 // W, through the propulsive efficiency chain
}

// SteadyLevel trims the aircraft at the given speed. Lift equals weight; the
// induced term uses the classic parabolic polar.
func SteadyLevel(totalMass, velocity, wingArea, aspectRatio float64) FlightPoint {
	q := 0.5 * AirDensity * velocity * velocity
	lift := totalMass * EarthGravity
	cl := lift / (q * wingArea)
	k := 1 / (math.Pi * OswaldEfficiency * aspectRatio)
	cd := ParasiticDragCoeff + k*cl*cl
	drag := cd * q * wingArea
	aeroPower := drag * velocity
	return FlightPoint{
		CL:         cl,
		CD:         cd,
		Drag:       drag,
		AeroPower:  aeroPower,
		ShaftPower: aeroPower / PropulsiveEfficiency,
	}
}

// TotalPowerDraw is the bus power needed to hold this flight point, avionics
// included, in W.
func (f FlightPoint) TotalPowerDraw() float64 {
	return f.ShaftPower + AvionicsPower
}

func (f FlightPoint) String() string {
	return fmt.Sprintf("CL=%.3f CD=%.4f D=%.1fN P=%.0fW", f.CL, f.CD, f.Drag, f.ShaftPower)
}
