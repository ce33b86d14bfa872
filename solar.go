package phantom

import (
	"math"

	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/solar"
)

// referenceYear anchors day-of-year to a calendar for the ephemeris and for
// operational window reporting.
const referenceYear = 2025

// SolarDeclination returns the apparent solar declination in radians for the
// given day of year and time of day (seconds past local midnight).
func SolarDeclination(dayOfYear int, tSec float64) float64 {
	jde := julian.CalendarGregorianToJD(referenceYear, 1, float64(dayOfYear)+tSec/SecondsPerDay)
	_, δ := solar.ApparentEquatorial(jde)
	return δ.Rad()
}

// SolarElevation returns the solar elevation angle in radians at a latitude
// (degrees) for the given day of year and local solar time in seconds.
// Negative below the horizon.
func SolarElevation(latitude float64, dayOfYear int, tSec float64) float64 {
	φ := latitude * deg2rad
	δ := SolarDeclination(dayOfYear, tSec)
	// Hour angle, zero at local solar noon.
	ω := 2*math.Pi*tSec/SecondsPerDay - math.Pi
	sinElev := math.Sin(φ)*math.Sin(δ) + math.Cos(φ)*math.Cos(δ)*math.Cos(ω)
	return math.Asin(sinElev)
}

// SolarFlux returns the flux on a horizontal panel in W/m^2 at a latitude
// (degrees) for the given day of year and local solar time in seconds.
// Direct beam only, attenuated by a clear-sky air mass model; zero at night.
func SolarFlux(latitude float64, dayOfYear int, tSec float64) float64 {
	elev := SolarElevation(latitude, dayOfYear, tSec)
	if elev <= 0 {
		return 0
	}
	// Sun-Earth distance correction.
	flux0 := SolarConstant * (1 + 0.033*math.Cos(2*math.Pi*float64(dayOfYear)/365))
	// Kasten & Young air mass, elevation in degrees for the empirical term.
	elevDeg := elev / deg2rad
	airMass := 1 / (math.Sin(elev) + 0.50572*math.Pow(elevDeg+6.07995, -1.6364))
	atmosphere := math.Pow(0.7, math.Pow(airMass, 0.678))
	return flux0 * atmosphere * math.Sin(elev)
}

// FluxProfile samples the horizontal flux at n points over one 24 h cycle.
// It returns the sample times in seconds and the fluxes in W/m^2.
func FluxProfile(latitude float64, dayOfYear, n int) (times, fluxes []float64) {
	times = linspace(0, SecondsPerDay, n)
	fluxes = make([]float64, n)
	for i, t := range times {
		fluxes[i] = SolarFlux(latitude, dayOfYear, t)
	}
	return times, fluxes
}

// CollectedPower converts raw panel flux to usable bus power through the
// cell, fill factor and MPPT efficiency chain, in W.
func CollectedPower(flux, wingArea float64) float64 {
	return flux * wingArea * SystemSolarEfficiency()
}
