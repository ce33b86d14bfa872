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

// This tool only sets up the sizing problem and hands it to the solver.

var (
	payload  float64
	latitude float64
	tech     float64
	day      int
	scenario string
	outSpec  string
	report   string
	plotPath string
	csvPath  string
)

func init() {
	flag.Float64Var(&payload, "payload", 5.0, "payload mass in kg")
	flag.Float64Var(&latitude, "lat", 20.0, "target latitude in degrees")
	flag.Float64Var(&tech, "tech", 350.0, "battery energy density in Wh/kg")
	flag.IntVar(&day, "day", 172, "day of year (172 = summer solstice)")
	flag.StringVar(&scenario, "scenario", "", "mission scenario TOML file (overrides the other flags)")
	flag.StringVar(&outSpec, "o", "design_specs.json", "design record output")
	flag.StringVar(&report, "report", "simulation_report.md", "Markdown report output")
	flag.StringVar(&plotPath, "plot", "battery_state.png", "battery state plot output")
	flag.StringVar(&csvPath, "csv", "", "optional battery history CSV output")
}

func main() {
	flag.Parse()

	var prob *phantom.SizingProblem
	if scenario != "" {
		sc, err := phantom.LoadScenario(scenario)
		if err != nil {
			log.Fatalf("scenario: %s", err)
		}
		fmt.Printf("Optimizing scenario %q...\n", sc.Name)
		prob = sc.Problem()
	} else {
		fmt.Printf("Optimizing for %.1fkg payload at %.0fN...\n", payload, latitude)
		prob = phantom.NewSizingProblem(payload, latitude, tech)
		prob.DayOfYear = day
	}

	spec, err := prob.Solve()
	if err != nil {
		if errors.Is(err, phantom.ErrInfeasible) {
			log.Fatalf("PHYSICS LIMIT REACHED: Perpetual Flight Infeasible for these inputs (%s)", err)
		}
		log.Fatalf("solver: %s", err)
	}

	fmt.Println("--------------------------------------------------")
	fmt.Println("OPTIMIZATION SUCCESSFUL")
	fmt.Printf("Wingspan: %.2f m\n", spec.Wingspan)
	fmt.Printf("Weight  : %.2f kg\n", spec.TotalMass)
	fmt.Println("--------------------------------------------------")

	if err := spec.Save(outSpec); err != nil {
		log.Fatalf("saving design: %s", err)
	}
	fmt.Printf("Design specifications saved to '%s'\n", outSpec)
	if err := phantom.WriteReport(report, spec); err != nil {
		log.Fatalf("report: %s", err)
	}
	fmt.Printf("Report generated: %s\n", report)

	profile := phantom.NewMission(spec).Run()
	if csvPath != "" {
		if err := phantom.WriteProfileCSV(csvPath, profile); err != nil {
			log.Fatalf("csv: %s", err)
		}
	}
	if err := plotBatteryState(plotPath, spec, profile); err != nil {
		log.Fatalf("plot: %s", err)
	}
	fmt.Printf("Mission profile plotted to %s\n", plotPath)
}

func plotBatteryState(path string, spec phantom.DesignSpec, prof phantom.MissionProfile) error {
	pts := make(plotter.XYs, len(prof.Time))
	capLine := make(plotter.XYs, len(prof.Time))
	for i := range prof.Time {
		tHours := prof.Time[i] / 3600
		pts[i].X = tHours
		pts[i].Y = prof.Energy[i] / 3.6e6 // kWh
		capLine[i].X = tHours
		capLine[i].Y = prof.Capacity / 3.6e6
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Perpetual Flight (%.0f deg Lat): Battery State", spec.Latitude)
	p.X.Label.Text = "Time of Day (Hours)"
	p.Y.Label.Text = "Energy Stored (kWh)"
	if err := plotutil.AddLinePoints(p, "Battery Energy", pts, "Max Capacity", capLine); err != nil {
		return err
	}
	return p.Save(10*vg.Inch, 6*vg.Inch, path)
}
