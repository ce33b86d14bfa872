package phantom

import "fmt"

// DesignSpec is the solved aircraft design, the only artifact persisted
// between pipeline stages. Scalar physical quantities only.
type DesignSpec struct {
	Wingspan       float64 `json:"wingspan"`       // m
	AspectRatio    float64 `json:"aspect_ratio"`
	TotalMass      float64 `json:"total_weight"` // kg
	BatteryMass    float64 `json:"battery_mass"` // kg
	Velocity       float64 `json:"velocity"`     // m/s
	PayloadMass    float64 `json:"payload_mass"` // kg
	SpecificEnergy float64 `json:"energy_density"` // Wh/kg
	Latitude       float64 `json:"latitude"`       // deg N
	DayOfYear      int     `json:"day_of_year"`
}

// WingArea returns b^2 / AR, in m^2.
func (d DesignSpec) WingArea() float64 {
	return d.Wingspan * d.Wingspan / d.AspectRatio
}

// BatteryCapacity returns the stored energy ceiling, in J.
func (d DesignSpec) BatteryCapacity() float64 {
	return d.BatteryMass * d.SpecificEnergy * JoulesPerWh
}

// Masses returns the component budget of this design.
func (d DesignSpec) Masses() MassBreakdown {
	return Masses(d.Wingspan, d.WingArea(), d.TotalMass, d.BatteryMass, d.PayloadMass)
}

// Cruise returns the steady level flight point at the design cruise speed.
func (d DesignSpec) Cruise() FlightPoint {
	return SteadyLevel(d.TotalMass, d.Velocity, d.WingArea(), d.AspectRatio)
}

func (d DesignSpec) String() string {
	return fmt.Sprintf("b=%.2fm AR=%.1f m=%.1fkg battery=%.1fkg v=%.1fm/s @%.0fWh/kg",
		d.Wingspan, d.AspectRatio, d.TotalMass, d.BatteryMass, d.Velocity, d.SpecificEnergy)
}

// ReferenceDesign is the baseline Solar Phantom used by the sweep tools when
// no solved design file is available.
func ReferenceDesign() DesignSpec {
	return DesignSpec{
		Wingspan:       35,
		AspectRatio:    25,
		TotalMass:      120,
		BatteryMass:    60,
		Velocity:       12,
		PayloadMass:    5,
		SpecificEnergy: 350,
		Latitude:       20,
		DayOfYear:      172,
	}
}
