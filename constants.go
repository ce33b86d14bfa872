package phantom

const (
	// EarthGravity is the gravitational acceleration at sea level, in m/s^2.
	EarthGravity = 9.81
	// AirDensity is the sea-level air density, in kg/m^3. Station keeping
	// happens low enough that the ISA correction is below model fidelity.
	AirDensity = 1.225

	// ParasiticDragCoeff is the zero-lift drag coefficient of the clean airframe.
	ParasiticDragCoeff = 0.018
	// OswaldEfficiency is the span efficiency factor of the high-AR planform.
	OswaldEfficiency = 0.92

	// Structural mass follows mass = coeff * span^exp (carbon spar scaling).
	StructuralMassCoeff = 0.06
	StructuralMassExp   = 2.45
	// PropulsionMassFraction scales motors and ESCs with the all-up mass.
	PropulsionMassFraction = 0.15
	// SolarArealDensity is the panel plus encapsulation mass, in kg/m^2.
	SolarArealDensity = 0.35
	// MPPTMass and AvionicsMass are fixed equipment masses, in kg.
	MPPTMass     = 2.0
	AvionicsMass = 1.0

	// Efficiency chain from raw flux to stored energy.
	SolarCellEfficiency = 0.22
	SolarFillFactor     = 0.90
	MPPTEfficiency      = 0.96
	// PropulsiveEfficiency lumps propeller, motor and ESC.
	PropulsiveEfficiency = 0.72
	// AvionicsPower is the constant autopilot and radio draw, in W.
	AvionicsPower = 50.0

	// SolarConstant is the mean extraterrestrial flux, in W/m^2.
	SolarConstant = 1367.0

	SecondsPerDay = 86400.0
	JoulesPerWh   = 3600.0
)

// SystemSolarEfficiency is the net conversion from incident flux to bus power.
func SystemSolarEfficiency() float64 {
	return SolarCellEfficiency * SolarFillFactor * MPPTEfficiency
}
