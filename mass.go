package phantom

import "math"

// MassBreakdown is the component mass budget of the airframe, in kg.
type MassBreakdown struct {
	Structure  float64
	Propulsion float64
	Solar      float64
	MPPT       float64
	Avionics   float64
	Battery    float64
	Payload    float64
}

// Masses computes the component budget for a candidate design. totalMass is
// the all-up mass the propulsion sizing scales with; the mass-closure
// constraint requires totalMass to cover Total().
func Masses(wingspan, wingArea, totalMass, batteryMass, payloadMass float64) MassBreakdown {
	return MassBreakdown{
		Structure:  StructuralMassCoeff * math.Pow(wingspan, StructuralMassExp),
		Propulsion: PropulsionMassFraction * totalMass,
		Solar:      SolarArealDensity * wingArea,
		MPPT:       MPPTMass,
		Avionics:   AvionicsMass,
		Battery:    batteryMass,
		Payload:    payloadMass,
	}
}

// Total sums all components.
func (m MassBreakdown) Total() float64 {
	return m.Structure + m.Propulsion + m.Solar + m.MPPT + m.Avionics + m.Battery + m.Payload
}

// ClosureResidual is positive when the component budget exceeds the assumed
// all-up mass, i.e. when the design does not close.
func (m MassBreakdown) ClosureResidual(totalMass float64) float64 {
	return m.Total() - totalMass
}
