package main

import (
	"errors"
	"flag"
	"fmt"
	"log"

	phantom "github.com/sidthebuilder/Solar-Phantom"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// Inverse sizing sweep: the minimum battery technology for perpetual flight
// at each latitude.

var (
	payload float64
	day     int
	outPath string
	csvPath string
)

func init() {
	flag.Float64Var(&payload, "payload", 2.0, "payload mass in kg")
	flag.IntVar(&day, "day", 172, "day of year (172 = summer solstice)")
	flag.StringVar(&outPath, "o", "tech_roadmap.png", "roadmap plot output")
	flag.StringVar(&csvPath, "csv", "", "optional sweep CSV output")
}

func tier(tech float64) string {
	switch {
	case tech > 500:
		return "FUTURE TECH (2030+)"
	case tech > 350:
		return "NEXT GEN (2026)"
	default:
		return "AVAILABLE NOW"
	}
}

func main() {
	flag.Parse()

	fmt.Println("Running Enterprise Technology Boundary Analysis...")
	fmt.Printf("Payload: %.1f kg (Radio)\n", payload)
	fmt.Println("----------------------------------------")
	fmt.Printf("%-10s | %-25s | %s\n", "Lat (deg)", "Req. Battery (Wh/kg)", "Feasibility")
	fmt.Println("--------------------------------------------------")

	latitudes := []float64{0, 10, 20, 30, 40, 50, 60}
	var validLats, validTech []float64
	for _, lat := range latitudes {
		prob := phantom.NewTechProblem(payload, lat)
		prob.DayOfYear = day
		spec, err := prob.Solve()
		if err != nil {
			if !errors.Is(err, phantom.ErrInfeasible) {
				log.Fatalf("solver: %s", err)
			}
			fmt.Printf("%-10.0f | %-25s | IMPOSSIBLE\n", lat, "Infeasible")
			continue
		}
		fmt.Printf("%-10.0f | %-25.1f | %s\n", lat, spec.SpecificEnergy, tier(spec.SpecificEnergy))
		validLats = append(validLats, lat)
		validTech = append(validTech, spec.SpecificEnergy)
	}

	if csvPath != "" {
		if err := phantom.WriteSweepCSV(csvPath, "latitude_deg", "required_Wh_per_kg", validLats, validTech); err != nil {
			log.Fatalf("csv: %s", err)
		}
	}
	if len(validLats) > 0 {
		if err := plotRoadmap(outPath, payload, validLats, validTech); err != nil {
			log.Fatalf("plot: %s", err)
		}
		fmt.Printf("\nRoadmap written to %s\n", outPath)
	}
}

func plotRoadmap(path string, payload float64, lats, tech []float64) error {
	pts := make(plotter.XYs, len(lats))
	for i := range lats {
		pts[i].X = lats[i]
		pts[i].Y = tech[i]
	}
	refLine := func(level float64) plotter.XYs {
		return plotter.XYs{{X: lats[0], Y: level}, {X: lats[len(lats)-1], Y: level}}
	}
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Strategic Technology Roadmap: Solar Drone (%.0fkg Payload)", payload)
	p.X.Label.Text = "Latitude (Degrees)"
	p.Y.Label.Text = "Required Battery Energy Density (Wh/kg)"
	err := plotutil.AddLinePoints(p,
		"Required", pts,
		"Cheap Li-Ion (250 Wh/kg)", refLine(250),
		"High-End Li-Ion (350 Wh/kg)", refLine(350),
		"Solid State / Li-S (500 Wh/kg)", refLine(500),
	)
	if err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
